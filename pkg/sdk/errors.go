package sdk

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrInvalidCredentials is returned when a login attempt fails because the
	// backend rejected the credentials or returned an incomplete payload.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccessDenied is returned when credentials are valid but the account
	// does not hold the administrator role.
	ErrAccessDenied = errors.New("access denied")

	// ErrUnauthorized is returned when the backend rejects the bearer token
	// on an authenticated call.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrTimeout is returned when a request exceeds the client's fixed timeout.
	// Timeouts are not authorization failures; the session is left untouched.
	ErrTimeout = errors.New("request timed out")
)

// APIError is returned for any non-2xx response from the backend. The message
// is extracted from the response body's "error" or "message" field when the
// backend supplies one.
type APIError struct {
	// StatusCode is the HTTP status returned by the backend.
	StatusCode int
	// Message is the backend-supplied error message, if any.
	Message string
	// RequestID is the X-Request-Id the client attached to the failed call.
	RequestID string
}

// Error returns a human-readable description of the backend failure.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("gestory api: %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
	}
	return fmt.Sprintf("gestory api: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Is reports whether this error matches the target sentinel. It supports
// errors.Is(err, ErrUnauthorized) and errors.Is(err, ErrNotFound).
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// InvalidCredentialsError is returned by Login when the backend reports bad
// credentials or the response is missing the token or user payload.
type InvalidCredentialsError struct {
	// Message is the backend-supplied message, or a default when absent.
	Message string
}

// Error returns the login failure message.
func (e *InvalidCredentialsError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "invalid credentials"
}

// Is reports whether this error matches ErrInvalidCredentials.
func (e *InvalidCredentialsError) Is(target error) bool {
	return target == ErrInvalidCredentials
}

// AccessDeniedError is returned by Login when the credentials are valid but
// the account's role does not grant access. Nothing is persisted in that case.
type AccessDeniedError struct {
	// Role is the role the backend reported for the account.
	Role Role
}

// Error returns a human-readable description of the denial.
func (e *AccessDeniedError) Error() string {
	if e.Role != "" {
		return fmt.Sprintf("access denied: administrator role required, account has role %q", e.Role)
	}
	return "access denied: administrator role required"
}

// Is reports whether this error matches ErrAccessDenied.
func (e *AccessDeniedError) Is(target error) bool {
	return target == ErrAccessDenied
}
