package domain

// Option is one selectable answer for a question. Its position within the
// question's option list is the answer encoding; the service never sends
// the correct index to clients.
type Option struct {
	Text string `json:"text"`
}

// Question models an MCQ question as served to takers.
type Question struct {
	ID      int      `json:"id"`
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

// Quiz is a quiz definition. Immutable once loaded into an attempt session;
// server-side edits require a fresh fetch.
type Quiz struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	OwnerID     int        `json:"owner_id"`
	Questions   []Question `json:"questions"`
}

// Answer pairs a question with the option index the taker picked.
type Answer struct {
	QuestionID          int `json:"question_id"`
	SelectedOptionIndex int `json:"selected_option_index"`
}

// AttemptResult carries the authoritative score computed by the service.
type AttemptResult struct {
	Score int `json:"score"`
	Total int `json:"total"`
}

// AttemptAnswer is a single graded answer inside a stored attempt.
type AttemptAnswer struct {
	QuestionID          int  `json:"question_id"`
	SelectedOptionIndex int  `json:"selected_option_index"`
	IsCorrect           bool `json:"is_correct"`
}

// AttemptRecord is a past attempt as reported by the history endpoint.
type AttemptRecord struct {
	ID        int             `json:"id"`
	QuizID    int             `json:"quiz_id"`
	UserID    int             `json:"user_id"`
	Score     int             `json:"score"`
	Total     int             `json:"total"`
	CreatedAt string          `json:"created_at"`
	Answers   []AttemptAnswer `json:"answers"`
}

// LeaderboardRow is one user's best result on a quiz.
type LeaderboardRow struct {
	UserID    int `json:"user_id"`
	BestScore int `json:"best_score"`
	Total     int `json:"total"`
}

// FeedItem is a quiz card in the social feed.
type FeedItem struct {
	QuizID        int    `json:"quiz_id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	OwnerID       int    `json:"owner_id"`
	OwnerUsername string `json:"owner_username"`
	LikeCount     int    `json:"like_count"`
	IsLikedByMe   bool   `json:"is_liked_by_me"`
}

// Snapshot is the locally cached view of a server-owned counted relation
// (a like on a quiz, a follow on a user). The toggle controller is its
// single writer while a toggle is in flight.
type Snapshot struct {
	TargetID string
	Active   bool
	Count    int
}

// Profile is a user's profile page, the viewer's own or someone else's.
// IsMe and IsFollowing are relative to the authenticated viewer.
type Profile struct {
	Username    string        `json:"username"`
	Bio         string        `json:"bio"`
	AvatarURL   string        `json:"avatar_url"`
	QuizCount   int           `json:"quiz_count"`
	Followers   int           `json:"followers"`
	Following   int           `json:"following"`
	Quizzes     []QuizSummary `json:"quizzes"`
	IsMe        bool          `json:"is_me"`
	IsFollowing bool          `json:"is_following"`
}

// UserSummary is a row in the people-search results.
type UserSummary struct {
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}

// QuizSummary is the compact quiz form used in profile listings.
type QuizSummary struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AvatarOption is one of the selectable profile avatars.
type AvatarOption struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// User is a registered account.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
