package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	// DefaultBaseURL is the backend API endpoint used when none is configured.
	DefaultBaseURL = "http://localhost:5000/api"

	// DefaultTimeout is the fixed per-request timeout. Exceeding it surfaces
	// as ErrTimeout; the session is not cleared on timeout.
	DefaultTimeout = 10 * time.Second
)

// Client is the Gestory SDK client. It is the single egress point for all
// backend calls: every outbound request carries the current bearer token,
// and an authorization failure on any response clears the stored session
// and notifies the registered handler exactly once.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      CredentialStore
	logger     *slog.Logger
	validate   *validator.Validate

	// token mirrors the last value read from the store. The store remains
	// the source of truth; requests re-read it so externally cleared
	// sessions are picked up before the next send.
	mu    sync.Mutex
	token string

	onAuthFailure   func()
	authFailureOnce sync.Once
}

// NewClient creates a new Gestory SDK client for the API server at baseURL.
// When baseURL is empty, DefaultBaseURL is used. A credential store, HTTP
// client and logger are created automatically when not supplied.
func NewClient(baseURL string, optFns ...ClientOption) *Client {
	opts := ClientOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}

	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if opts.Store == nil {
		opts.Store = NewMemoryStore()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: opts.Timeout}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	c := &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		httpClient:    opts.HTTPClient,
		store:         opts.Store,
		logger:        opts.Logger,
		validate:      validator.New(),
		onAuthFailure: opts.OnAuthFailure,
	}

	if tok, ok := c.store.Token(); ok {
		c.token = tok
	}
	return c
}

// BaseURL returns the backend endpoint this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetToken updates the active bearer token: it persists the token through the
// credential store and refreshes the in-memory copy. An empty token clears
// the entry. This is the only sanctioned way to change the active token; it
// keeps the cache and the store synchronized by construction.
func (c *Client) SetToken(token string) error {
	if err := c.store.SetToken(token); err != nil {
		return err
	}
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
	return nil
}

// ClearToken removes the active bearer token from the store and the cache.
func (c *Client) ClearToken() error {
	return c.SetToken("")
}

// currentToken re-reads the token from the credential store so the value
// attached to a request reflects the session at send time, not at call-site
// time. The cached copy is refreshed as a side effect.
func (c *Client) currentToken() (string, bool) {
	tok, ok := c.store.Token()
	c.mu.Lock()
	if ok {
		c.token = tok
	} else {
		c.token = ""
	}
	c.mu.Unlock()
	return tok, ok
}

// sessionEndpoints are the auth endpoints whose callers manage the session
// themselves; a 401 from them must not trigger the central clear-and-notify
// reaction (it would loop on failed logins and fire during logout).
func isSessionEndpoint(path string) bool {
	return path == "/auth/login" || path == "/auth/logout"
}

// do performs a JSON request against the backend and decodes the response
// into result when non-nil. Absence of a token is not an error at this layer;
// the call proceeds unauthenticated and the backend decides.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, reqID, err := c.newRequest(ctx, method, path, query, bodyReader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, path, reqID, result)
}

// doMultipart uploads a file as multipart/form-data, with the same token
// injection and authorization-failure handling as do.
func (c *Client) doMultipart(ctx context.Context, method, path, field, filename string, file io.Reader, result any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("failed to read upload: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, reqID, err := c.newRequest(ctx, method, path, nil, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	return c.send(req, path, reqID, result)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, string, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}

	reqID := uuid.NewString()
	req.Header.Set("X-Request-Id", reqID)
	if tok, ok := c.currentToken(); ok {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	return req, reqID, nil
}

func (c *Client) send(req *http.Request, path, reqID string, result any) error {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Transport failures and timeouts are not authorization failures;
		// the session stays untouched.
		if isTimeoutError(err) {
			return fmt.Errorf("%s %s: %w", req.Method, path, ErrTimeout)
		}
		return fmt.Errorf("%s %s: %w", req.Method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug("request completed",
		"method", req.Method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", reqID,
		"duration", time.Since(start),
	)

	if resp.StatusCode == http.StatusUnauthorized && !isSessionEndpoint(path) {
		c.handleAuthFailure(path)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    extractErrorMessage(respBody),
			RequestID:  reqID,
		}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// handleAuthFailure reacts to a rejected bearer token: the stored session is
// cleared on every failure, but the registered handler runs exactly once per
// client so concurrent failing calls cannot stack notifications. The original
// 401 is still surfaced to the caller by send.
func (c *Client) handleAuthFailure(path string) {
	if err := c.store.Clear(); err != nil {
		c.logger.Warn("failed to clear session after authorization failure", "error", err)
	}
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()

	c.authFailureOnce.Do(func() {
		c.logger.Warn("authorization failure: session cleared", "path", path)
		if c.onAuthFailure != nil {
			c.onAuthFailure()
		}
	})
}

// extractErrorMessage pulls a backend-supplied message out of an error body.
// The backend is inconsistent about the field name, so both are accepted.
func extractErrorMessage(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Error != "" {
		return payload.Error
	}
	return payload.Message
}

func isTimeoutError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
