package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"quizogram-client/internal/domain"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login exchanges credentials for an access token (form-encoded, as the
// service's OAuth2 password flow expects) and stores it for later calls.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	raw, err := c.call(ctx, http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
	if err != nil {
		return "", err
	}
	if raw == nil {
		return "", fmt.Errorf("%w: empty body", ErrDecode)
	}
	var resp tokenResponse
	if err := unmarshal(raw, &resp); err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", fmt.Errorf("%w: missing access_token", ErrDecode)
	}
	if err := c.tokens.Set(resp.AccessToken); err != nil {
		return "", fmt.Errorf("store credential: %w", err)
	}
	return resp.AccessToken, nil
}

// Logout drops the stored credential. Purely local; the service keeps no
// session state beyond token expiry.
func (c *Client) Logout() error {
	return c.tokens.Clear()
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) Register(ctx context.Context, username, email, password string) (domain.User, error) {
	var user domain.User
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/register",
		registerRequest{Username: username, Email: email, Password: password}, &user)
	return user, err
}
