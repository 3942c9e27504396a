package domain

import "errors"

var (
	// ErrQuizNotFound indicates the quiz content could not be loaded.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrEmptyQuiz is returned when a fetched quiz carries no questions;
	// a session cannot present anything and fails immediately.
	ErrEmptyQuiz = errors.New("quiz has no questions")
	// ErrOptionOutOfRange indicates a selected index that is not a valid
	// position in the current question's option list.
	ErrOptionOutOfRange = errors.New("selected option index out of range")
	// ErrSubmissionInFlight is returned when an answer submission is
	// attempted while the previous one has not settled yet.
	ErrSubmissionInFlight = errors.New("answer submission already in flight")
	// ErrSessionClosed is returned for submissions against a session that
	// already reached a terminal phase.
	ErrSessionClosed = errors.New("attempt session is closed")
	// ErrToggleInFlight is returned when a second toggle is attempted on a
	// snapshot whose previous toggle has not resolved.
	ErrToggleInFlight = errors.New("toggle already in flight for this target")
)
