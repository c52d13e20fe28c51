package sdk

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

// LoginInput carries the credentials for Login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token   string `json:"token"`
	User    *User  `json:"user"`
	Message string `json:"message"`
}

// Login exchanges credentials for a session. The backend must return both a
// token and a user payload; anything less fails with InvalidCredentialsError.
// The role is checked before anything is persisted: a non-administrator must
// not end up with a lingering valid session, so on AccessDeniedError the
// credential store is guaranteed untouched. On success the token and profile
// are persisted and the client's active token is updated.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	input := LoginInput{Email: email, Password: password}
	if err := c.validate.Struct(input); err != nil {
		return nil, &InvalidCredentialsError{Message: "email and password are required"}
	}

	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", nil, input, &resp)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && (apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusBadRequest) {
			return nil, &InvalidCredentialsError{Message: apiErr.Message}
		}
		return nil, err
	}

	if resp.Token == "" || resp.User == nil {
		return nil, &InvalidCredentialsError{Message: resp.Message}
	}

	if !resp.User.IsAdmin() {
		return nil, &AccessDeniedError{Role: resp.User.Role}
	}

	if err := c.SetToken(resp.Token); err != nil {
		return nil, err
	}
	if err := c.store.SetUser(resp.User); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// Logout ends the session. The remote revoke is best-effort: a failing
// backend call is logged and ignored, the local session is always cleared.
// Logging out while already logged out is not an error.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil); err != nil {
		c.logger.Warn("remote logout failed, clearing local session anyway", "error", err)
	}
	if err := c.store.Clear(); err != nil {
		return err
	}
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
	return nil
}

// CurrentUser returns the stored profile snapshot, if any. Missing or
// malformed data is reported as absent.
func (c *Client) CurrentUser() (*User, bool) {
	return c.store.User()
}

// IsAuthenticated reports whether a token is present. It does not verify the
// role; SessionGuard rechecks that from the stored profile.
func (c *Client) IsAuthenticated() bool {
	_, ok := c.store.Token()
	return ok
}

// Me fetches the authenticated account's profile from the backend. Unlike
// CurrentUser it does not touch the stored snapshot.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &raw); err != nil {
		return nil, err
	}
	return decodeObject[User](raw, "user")
}

// Refresh exchanges the current session for a fresh token and persists it.
func (c *Client) Refresh(ctx context.Context) error {
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/refresh", nil, nil, &resp); err != nil {
		return err
	}
	if resp.Token == "" {
		return &APIError{StatusCode: http.StatusOK, Message: "refresh response missing token"}
	}
	return c.SetToken(resp.Token)
}

// UpdateProfileInput carries the editable profile fields. Zero-value fields
// are omitted from the request.
type UpdateProfileInput struct {
	Email    string         `json:"email,omitempty" validate:"omitempty,email"`
	Avatar   string         `json:"avatar,omitempty"`
	Settings map[string]any `json:"configuracion,omitempty"`
}

// UpdateProfile sends the profile changes and overwrites the stored snapshot
// with the server's returned representation. The server is authoritative:
// client-supplied fields are never merged into storage directly.
func (c *Client) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*User, error) {
	if err := c.validate.Struct(input); err != nil {
		return nil, err
	}

	var resp struct {
		User *User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPut, "/auth/profile", nil, input, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, &APIError{StatusCode: http.StatusOK, Message: "profile response missing user"}
	}
	if err := c.store.SetUser(resp.User); err != nil {
		return nil, err
	}
	return resp.User, nil
}

type changePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

// ChangePassword is a pure passthrough to the backend; no local state
// changes. Backend failures surface with their message intact.
func (c *Client) ChangePassword(ctx context.Context, current, newPassword string) error {
	input := changePasswordInput{CurrentPassword: current, NewPassword: newPassword}
	if err := c.validate.Struct(input); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, "/auth/change-password", nil, input, nil)
}
