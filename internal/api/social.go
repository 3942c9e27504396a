package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"quizogram-client/internal/domain"
)

// Feed returns quizzes from followed authors plus the user's own.
func (c *Client) Feed(ctx context.Context, skip, limit int) ([]domain.FeedItem, error) {
	var items []domain.FeedItem
	path := fmt.Sprintf("/api/v1/social/feed?skip=%d&limit=%d", skip, limit)
	err := c.do(ctx, http.MethodGet, path, nil, &items)
	return items, err
}

func (c *Client) Like(ctx context.Context, quizID int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/v1/social/like/%d", quizID), nil, nil)
}

func (c *Client) Unlike(ctx context.Context, quizID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/social/like/%d", quizID), nil, nil)
}

func (c *Client) Follow(ctx context.Context, username string) error {
	return c.do(ctx, http.MethodPost, "/api/v1/follow/"+url.PathEscape(username), nil, nil)
}

func (c *Client) Unfollow(ctx context.Context, username string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/follow/"+url.PathEscape(username), nil, nil)
}
