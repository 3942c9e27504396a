package domain

import "fmt"

// QuizDraft is the authoring payload for quiz creation. YAML tags let the
// CLI read drafts from files; JSON tags match the creation endpoint.
type QuizDraft struct {
	Title       string          `json:"title" yaml:"title"`
	Description string          `json:"description" yaml:"description"`
	Questions   []QuestionDraft `json:"questions" yaml:"questions"`
}

type QuestionDraft struct {
	Text               string        `json:"text" yaml:"text"`
	Options            []OptionDraft `json:"options" yaml:"options"`
	CorrectOptionIndex int           `json:"correct_option_index" yaml:"correct"`
}

type OptionDraft struct {
	Text string `json:"text" yaml:"text"`
}

// Validate applies the same rules the service enforces on creation, so a
// bad draft fails before any request is made.
func (d QuizDraft) Validate() error {
	if d.Title == "" {
		return fmt.Errorf("quiz title is required")
	}
	if len(d.Questions) == 0 {
		return fmt.Errorf("quiz needs at least one question")
	}
	for i, q := range d.Questions {
		if q.Text == "" {
			return fmt.Errorf("question #%d: text is required", i+1)
		}
		if len(q.Options) < 2 {
			return fmt.Errorf("question #%d: needs at least two options", i+1)
		}
		if q.CorrectOptionIndex < 0 || q.CorrectOptionIndex >= len(q.Options) {
			return fmt.Errorf("question #%d: correct option index out of range", i+1)
		}
	}
	return nil
}
