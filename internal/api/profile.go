package api

import (
	"context"
	"net/http"
	"net/url"

	"quizogram-client/internal/domain"
)

func (c *Client) MyProfile(ctx context.Context) (domain.Profile, error) {
	var profile domain.Profile
	err := c.do(ctx, http.MethodGet, "/api/v1/profile/me", nil, &profile)
	return profile, err
}

// UserProfile fetches another user's public profile, including follower
// counts and whether the viewer already follows them.
func (c *Client) UserProfile(ctx context.Context, username string) (domain.Profile, error) {
	var profile domain.Profile
	err := c.do(ctx, http.MethodGet, "/api/v1/profile/user/"+url.PathEscape(username), nil, &profile)
	return profile, err
}

// SearchUsers finds people by username substring, case-insensitively.
func (c *Client) SearchUsers(ctx context.Context, query string) ([]domain.UserSummary, error) {
	var payload struct {
		Results []domain.UserSummary `json:"results"`
	}
	path := "/api/v1/profile/search_users?q=" + url.QueryEscape(query)
	err := c.do(ctx, http.MethodGet, path, nil, &payload)
	return payload.Results, err
}

type profileUpdate struct {
	Bio       *string `json:"bio,omitempty"`
	AvatarKey *string `json:"avatar_key,omitempty"`
}

// UpdateProfile patches bio and/or avatar. Nil fields are left untouched.
func (c *Client) UpdateProfile(ctx context.Context, bio, avatarKey *string) (domain.Profile, error) {
	var profile domain.Profile
	err := c.do(ctx, http.MethodPatch, "/api/v1/profile/me",
		profileUpdate{Bio: bio, AvatarKey: avatarKey}, &profile)
	return profile, err
}

func (c *Client) Avatars(ctx context.Context) ([]domain.AvatarOption, error) {
	var options []domain.AvatarOption
	err := c.do(ctx, http.MethodGet, "/api/v1/profile/avatars", nil, &options)
	return options, err
}
