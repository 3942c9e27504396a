package api

import (
	"context"
	"fmt"
	"net/http"

	"quizogram-client/internal/domain"
)

type checkResponse struct {
	Correct bool `json:"correct"`
}

// CheckAnswer submits a single answer for immediate right/wrong feedback.
// The result is purely informational and does not affect the final score.
func (c *Client) CheckAnswer(ctx context.Context, quizID int, answer domain.Answer) (bool, error) {
	var resp checkResponse
	path := fmt.Sprintf("/api/v1/attempts/%d/check", quizID)
	if err := c.do(ctx, http.MethodPost, path, answer, &resp); err != nil {
		return false, err
	}
	return resp.Correct, nil
}

type attemptRequest struct {
	Answers []domain.Answer `json:"answers"`
}

// SubmitAttempt sends the complete answer sequence for authoritative
// scoring. The returned score wins over any per-question feedback the
// caller accumulated along the way.
func (c *Client) SubmitAttempt(ctx context.Context, quizID int, answers []domain.Answer) (domain.AttemptResult, error) {
	var result domain.AttemptResult
	path := fmt.Sprintf("/api/v1/attempts/%d", quizID)
	err := c.do(ctx, http.MethodPost, path, attemptRequest{Answers: answers}, &result)
	return result, err
}

// MyAttempts lists the current user's attempt history, newest first.
func (c *Client) MyAttempts(ctx context.Context) ([]domain.AttemptRecord, error) {
	var records []domain.AttemptRecord
	err := c.do(ctx, http.MethodGet, "/api/v1/attempts/my", nil, &records)
	return records, err
}

// Leaderboard returns each user's best result on a quiz, best first.
func (c *Client) Leaderboard(ctx context.Context, quizID int) ([]domain.LeaderboardRow, error) {
	var rows []domain.LeaderboardRow
	path := fmt.Sprintf("/api/v1/attempts/leaderboard/%d", quizID)
	err := c.do(ctx, http.MethodGet, path, nil, &rows)
	return rows, err
}
