package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"quizogram-client/internal/api"
	"quizogram-client/internal/domain"
)

// QuizSource resolves quiz content (direct fetch or cache).
type QuizSource interface {
	GetQuiz(ctx context.Context, quizID int) (domain.Quiz, error)
}

// AttemptAPI is the slice of the remote service the session needs.
type AttemptAPI interface {
	CheckAnswer(ctx context.Context, quizID int, answer domain.Answer) (bool, error)
	SubmitAttempt(ctx context.Context, quizID int, answers []domain.Answer) (domain.AttemptResult, error)
}

// Phase is the attempt session's lifecycle state.
type Phase int

const (
	PhaseLoading Phase = iota
	PhasePresenting
	PhaseSubmitting
	PhaseAdvancing
	PhaseFinished
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhasePresenting:
		return "presenting"
	case PhaseSubmitting:
		return "submitting"
	case PhaseAdvancing:
		return "advancing"
	case PhaseFinished:
		return "finished"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}

const (
	// DefaultSettleDelay separates per-question feedback from advancement
	// so the feedback is perceivable even on a fast network.
	DefaultSettleDelay = time.Second
	// DefaultFinalizeRetries bounds how many times a failed final
	// submission restarts the session before it fails terminally.
	DefaultFinalizeRetries = 3
)

// AttemptSession drives one stepwise run through a quiz: present a question,
// check the answer for immediate feedback, pause, advance, and finally
// submit the full answer sequence for authoritative scoring. One session
// serves one attempt; restarting a quiz means constructing a new session.
type AttemptSession struct {
	source QuizSource
	api    AttemptAPI
	quizID int

	settle      time.Duration
	pause       func(time.Duration)
	maxFinalize int

	mu            sync.Mutex
	phase         Phase
	quiz          domain.Quiz
	current       int
	answers       []domain.Answer
	finalizeFails int
	result        *domain.AttemptResult
}

type SessionOption func(*AttemptSession)

// WithSettleDelay overrides the pause between feedback and advancement.
func WithSettleDelay(d time.Duration) SessionOption {
	return func(s *AttemptSession) { s.settle = d }
}

// WithPause replaces the sleep function, letting tests run without
// wall-clock delays.
func WithPause(f func(time.Duration)) SessionOption {
	return func(s *AttemptSession) { s.pause = f }
}

// WithFinalizeRetries overrides the bound on final-submission restarts.
func WithFinalizeRetries(n int) SessionOption {
	return func(s *AttemptSession) { s.maxFinalize = n }
}

func NewAttemptSession(source QuizSource, attemptAPI AttemptAPI, quizID int, opts ...SessionOption) *AttemptSession {
	s := &AttemptSession{
		source:      source,
		api:         attemptAPI,
		quizID:      quizID,
		settle:      DefaultSettleDelay,
		pause:       time.Sleep,
		maxFinalize: DefaultFinalizeRetries,
		phase:       PhaseLoading,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load fetches the quiz and moves the session to the first question.
// A quiz with no questions is an immediate failure, not an empty
// presenting state.
func (s *AttemptSession) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.phase != PhaseLoading {
		s.mu.Unlock()
		return domain.ErrSessionClosed
	}
	s.mu.Unlock()

	quiz, err := s.source.GetQuiz(ctx, s.quizID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.phase = PhaseFailed
		return err
	}
	if len(quiz.Questions) == 0 {
		s.phase = PhaseFailed
		return domain.ErrEmptyQuiz
	}
	s.quiz = quiz
	s.answers = make([]domain.Answer, len(quiz.Questions))
	s.current = 0
	s.phase = PhasePresenting
	return nil
}

func (s *AttemptSession) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

func (s *AttemptSession) Quiz() domain.Quiz {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quiz
}

// Current returns the presented question and its zero-based position.
// ok is false outside the Presenting phase.
func (s *AttemptSession) Current() (q domain.Question, index int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhasePresenting {
		return domain.Question{}, 0, false
	}
	return s.quiz.Questions[s.current], s.current, true
}

// Answers returns a copy of the recorded answer sequence so far.
func (s *AttemptSession) Answers() []domain.Answer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Answer, len(s.answers))
	copy(out, s.answers)
	return out
}

// Result returns the authoritative score once the session is finished.
func (s *AttemptSession) Result() (domain.AttemptResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return domain.AttemptResult{}, false
	}
	return *s.result, true
}

// StepOutcome reports what one submission produced.
type StepOutcome struct {
	// Correct is the per-question feedback for the submitted answer.
	Correct bool
	// Finished is set when this submission completed the attempt; Result
	// then carries the server's score.
	Finished bool
	Result   domain.AttemptResult
	// Restarted is set when final scoring failed and the session reset to
	// the first question. The accompanying error describes the failure.
	Restarted bool
}

// SubmitCurrent submits an answer for the presented question. A nil
// selection falls back to option 0, the documented default. While the
// check call or the settle delay is outstanding any further submission is
// rejected with ErrSubmissionInFlight; that rejection is the sole guard
// against duplicate answers for one question.
func (s *AttemptSession) SubmitCurrent(ctx context.Context, selected *int) (StepOutcome, error) {
	s.mu.Lock()
	switch s.phase {
	case PhasePresenting:
	case PhaseSubmitting, PhaseAdvancing:
		s.mu.Unlock()
		return StepOutcome{}, domain.ErrSubmissionInFlight
	default:
		s.mu.Unlock()
		return StepOutcome{}, domain.ErrSessionClosed
	}

	index := 0
	if selected != nil {
		index = *selected
	}
	question := s.quiz.Questions[s.current]
	if index < 0 || index >= len(question.Options) {
		s.mu.Unlock()
		return StepOutcome{}, domain.ErrOptionOutOfRange
	}
	position := s.current
	s.phase = PhaseSubmitting
	s.mu.Unlock()

	answer := domain.Answer{QuestionID: question.ID, SelectedOptionIndex: index}
	correct, err := s.api.CheckAnswer(ctx, s.quizID, answer)
	if err != nil {
		s.mu.Lock()
		if errors.Is(err, api.ErrUnauthenticated) {
			s.phase = PhaseFailed
		} else {
			// Recoverable: stay on the same question and accept a resubmit.
			s.phase = PhasePresenting
		}
		s.mu.Unlock()
		return StepOutcome{}, err
	}

	s.mu.Lock()
	s.answers[position] = answer
	last := position == len(s.quiz.Questions)-1
	s.phase = PhaseAdvancing
	s.mu.Unlock()

	// Feedback must register before anything else happens on screen.
	s.pause(s.settle)

	if !last {
		s.mu.Lock()
		// Guard against a double-fired continuation: advance exactly once
		// per completed submission.
		if s.phase == PhaseAdvancing && s.current == position {
			s.current = position + 1
			s.phase = PhasePresenting
		}
		s.mu.Unlock()
		return StepOutcome{Correct: correct}, nil
	}
	return s.finalize(ctx, correct)
}

// finalize submits the complete answer sequence for scoring. On failure the
// quiz and the per-question signals remain valid, so the session restarts
// from the first question instead of being discarded, up to maxFinalize
// consecutive failures.
func (s *AttemptSession) finalize(ctx context.Context, correct bool) (StepOutcome, error) {
	s.mu.Lock()
	answers := make([]domain.Answer, len(s.answers))
	copy(answers, s.answers)
	s.mu.Unlock()

	result, err := s.api.SubmitAttempt(ctx, s.quizID, answers)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		if errors.Is(err, api.ErrUnauthenticated) {
			s.phase = PhaseFailed
			return StepOutcome{}, err
		}
		s.finalizeFails++
		if s.finalizeFails >= s.maxFinalize {
			s.phase = PhaseFailed
			return StepOutcome{}, err
		}
		s.current = 0
		s.phase = PhasePresenting
		return StepOutcome{Correct: correct, Restarted: true}, err
	}

	s.result = &result
	s.phase = PhaseFinished
	return StepOutcome{Correct: correct, Finished: true, Result: result}, nil
}
