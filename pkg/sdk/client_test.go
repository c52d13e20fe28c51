package sdk_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestory/gestoryctl/pkg/sdk"
)

func adminUser() *sdk.User {
	return &sdk.User{ID: 1, Email: "admin@campus.edu", Role: sdk.RoleAdministrator}
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	store := sdk.NewMemoryStore()
	client := sdk.NewClient(server.URL, sdk.WithCredentialStore(store))
	require.NoError(t, client.SetToken("abc123"))

	_, err := client.ListBuildings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", gotAuth)
}

func TestClient_SetsRequestID(t *testing.T) {
	var gotReqID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReqID = r.Header.Get("X-Request-Id")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := sdk.NewClient(server.URL)
	_, err := client.ListBuildings(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, gotReqID)
}

// The token attached to a request must reflect the store at send time, not
// the value cached when the client was built.
func TestClient_ReadsTokenFromStoreAtSendTime(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	store := sdk.NewMemoryStore()
	require.NoError(t, store.SetToken("stale"))
	client := sdk.NewClient(server.URL, sdk.WithCredentialStore(store))

	// Another writer rotates the token behind the client's back.
	require.NoError(t, store.SetToken("rotated"))

	_, err := client.ListBuildings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer rotated", gotAuth)

	// A cleared store means the next request goes out unauthenticated.
	require.NoError(t, store.Clear())
	_, err = client.ListBuildings(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_AuthFailureClearsSessionAndNotifiesOnce(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "token expired"}`))
	}))
	defer server.Close()

	store := sdk.NewMemoryStore()
	require.NoError(t, store.SetToken("abc123"))
	require.NoError(t, store.SetUser(adminUser()))

	var notifications int32
	client := sdk.NewClient(server.URL,
		sdk.WithCredentialStore(store),
		sdk.WithOnAuthFailure(func() { atomic.AddInt32(&notifications, 1) }),
	)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.ListBuildings(context.Background())
			assert.ErrorIs(t, err, sdk.ErrUnauthorized)
		}()
	}
	wg.Wait()

	_, hasToken := store.Token()
	assert.False(t, hasToken, "session token should be cleared after 401")
	_, hasUser := store.User()
	assert.False(t, hasUser, "user snapshot should be cleared after 401")
	assert.Equal(t, int32(1), atomic.LoadInt32(&notifications), "handler should fire exactly once")
}

// A rejected login must not trigger the central clear-and-notify reaction:
// the caller already knows the credentials were bad.
func TestClient_LoginRejectionDoesNotClearSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "wrong password"}`))
	}))
	defer server.Close()

	store := sdk.NewMemoryStore()
	require.NoError(t, store.SetToken("existing"))

	var notified bool
	client := sdk.NewClient(server.URL,
		sdk.WithCredentialStore(store),
		sdk.WithOnAuthFailure(func() { notified = true }),
	)

	_, err := client.Login(context.Background(), "admin@campus.edu", "nope")
	assert.ErrorIs(t, err, sdk.ErrInvalidCredentials)

	tok, hasToken := store.Token()
	assert.True(t, hasToken, "existing session must survive a failed login")
	assert.Equal(t, "existing", tok)
	assert.False(t, notified)
}

func TestClient_APIErrorCarriesBackendMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"error field", `{"error": "building not found"}`, "building not found"},
		{"message field", `{"message": "building not found"}`, "building not found"},
		{"no body", ``, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := sdk.NewClient(server.URL)
			_, err := client.GetBuilding(context.Background(), "b1")
			require.Error(t, err)

			var apiErr *sdk.APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
			assert.Equal(t, tt.want, apiErr.Message)
			assert.ErrorIs(t, err, sdk.ErrNotFound)
		})
	}
}

func TestClient_TimeoutLeavesSessionIntact(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	store := sdk.NewMemoryStore()
	require.NoError(t, store.SetToken("abc123"))
	require.NoError(t, store.SetUser(adminUser()))

	var notified bool
	client := sdk.NewClient(server.URL,
		sdk.WithCredentialStore(store),
		sdk.WithTimeout(50*time.Millisecond),
		sdk.WithOnAuthFailure(func() { notified = true }),
	)

	_, err := client.ListBuildings(context.Background())
	assert.ErrorIs(t, err, sdk.ErrTimeout)

	_, hasToken := store.Token()
	assert.True(t, hasToken, "timeouts are not authorization failures")
	_, hasUser := store.User()
	assert.True(t, hasUser)
	assert.False(t, notified)
}

func TestClient_ClearToken(t *testing.T) {
	store := sdk.NewMemoryStore()
	client := sdk.NewClient("", sdk.WithCredentialStore(store))

	require.NoError(t, client.SetToken("abc123"))
	assert.True(t, client.IsAuthenticated())

	require.NoError(t, client.ClearToken())
	assert.False(t, client.IsAuthenticated())
	_, ok := store.Token()
	assert.False(t, ok)
}

func TestClient_DefaultBaseURL(t *testing.T) {
	client := sdk.NewClient("")
	assert.Equal(t, sdk.DefaultBaseURL, client.BaseURL())

	client = sdk.NewClient("http://example.com/api/")
	assert.Equal(t, "http://example.com/api", client.BaseURL())
}
