package sdk

import (
	"log/slog"
	"net/http"
	"time"
)

// ClientOptions configures SDK client construction.
type ClientOptions struct {
	HTTPClient    *http.Client
	Timeout       time.Duration
	Store         CredentialStore
	Logger        *slog.Logger
	OnAuthFailure func()
}

// ClientOption mutates ClientOptions.
type ClientOption func(*ClientOptions)

// WithHTTPClient overrides the HTTP client used for API calls. When supplied,
// the caller owns the timeout configuration.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(opts *ClientOptions) {
		opts.HTTPClient = client
	}
}

// WithTimeout overrides the fixed per-request timeout (default 10s). Ignored
// when a custom HTTP client is supplied.
func WithTimeout(d time.Duration) ClientOption {
	return func(opts *ClientOptions) {
		opts.Timeout = d
	}
}

// WithCredentialStore sets the durable credential store backing the session.
// Without one, an in-process MemoryStore is used and the session does not
// survive the process.
func WithCredentialStore(store CredentialStore) ClientOption {
	return func(opts *ClientOptions) {
		opts.Store = store
	}
}

// WithOnAuthFailure registers a handler invoked when the backend rejects the
// bearer token on an authenticated call. The handler runs at most once per
// client, after the stored session has been cleared. The CLI uses it to tell
// the user to log in again.
func WithOnAuthFailure(fn func()) ClientOption {
	return func(opts *ClientOptions) {
		opts.OnAuthFailure = fn
	}
}

// WithLogger sets the structured logger used for request logging.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(opts *ClientOptions) {
		opts.Logger = logger
	}
}
