package api

import (
	"context"
	"fmt"
	"net/http"

	"quizogram-client/internal/domain"
)

// GetQuiz fetches a full quiz definition, questions and options included.
func (c *Client) GetQuiz(ctx context.Context, quizID int) (domain.Quiz, error) {
	var quiz domain.Quiz
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/quizzes/%d", quizID), nil, &quiz)
	return quiz, err
}

// ListQuizzes pages through the public quiz list.
func (c *Client) ListQuizzes(ctx context.Context, skip, limit int) ([]domain.Quiz, error) {
	var quizzes []domain.Quiz
	path := fmt.Sprintf("/api/v1/quizzes/?skip=%d&limit=%d", skip, limit)
	err := c.do(ctx, http.MethodGet, path, nil, &quizzes)
	return quizzes, err
}

// CreateQuiz publishes a validated draft and returns the stored quiz.
func (c *Client) CreateQuiz(ctx context.Context, draft domain.QuizDraft) (domain.Quiz, error) {
	var quiz domain.Quiz
	if err := draft.Validate(); err != nil {
		return quiz, err
	}
	err := c.do(ctx, http.MethodPost, "/api/v1/quizzes/", draft, &quiz)
	return quiz, err
}
