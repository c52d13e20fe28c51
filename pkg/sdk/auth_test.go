package sdk_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestory/gestoryctl/pkg/sdk"
)

func loginHandler(t *testing.T, token string, user map[string]any) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.NotEmpty(t, body.Email)
		require.NotEmpty(t, body.Password)

		resp := map[string]any{}
		if token != "" {
			resp["token"] = token
		}
		if user != nil {
			resp["user"] = user
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}

func TestLogin_Success(t *testing.T) {
	server := httptest.NewServer(loginHandler(t, "abc123", map[string]any{
		"id":    1,
		"email": "admin@campus.edu",
		"role":  "administrador",
	}))
	defer server.Close()

	store := sdk.NewMemoryStore()
	client := sdk.NewClient(server.URL, sdk.WithCredentialStore(store))

	user, err := client.Login(context.Background(), "admin@campus.edu", "secret")
	require.NoError(t, err)
	assert.Equal(t, "admin@campus.edu", user.Email)
	assert.True(t, user.IsAdmin())

	tok, ok := store.Token()
	require.True(t, ok)
	assert.Equal(t, "abc123", tok)

	stored, ok := store.User()
	require.True(t, ok)
	assert.Equal(t, sdk.RoleAdministrator, stored.Role)
	assert.True(t, client.IsAuthenticated())
}

// Valid credentials with the wrong role must be rejected before anything is
// persisted: no token, no user snapshot, no session.
func TestLogin_NonAdministratorLeavesStoreUntouched(t *testing.T) {
	server := httptest.NewServer(loginHandler(t, "abc123", map[string]any{
		"id":    2,
		"email": "student@campus.edu",
		"role":  "estudiante",
	}))
	defer server.Close()

	store := sdk.NewMemoryStore()
	client := sdk.NewClient(server.URL, sdk.WithCredentialStore(store))

	_, err := client.Login(context.Background(), "student@campus.edu", "secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, sdk.ErrAccessDenied)

	var denied *sdk.AccessDeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, sdk.RoleStudent, denied.Role)

	_, hasToken := store.Token()
	assert.False(t, hasToken)
	_, hasUser := store.User()
	assert.False(t, hasUser)
	assert.False(t, client.IsAuthenticated())
}

func TestLogin_IncompleteResponse(t *testing.T) {
	tests := []struct {
		name  string
		token string
		user  map[string]any
	}{
		{"missing token", "", map[string]any{"id": 1, "email": "a@b.edu", "role": "administrador"}},
		{"missing user", "abc123", nil},
		{"missing both", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(loginHandler(t, tt.token, tt.user))
			defer server.Close()

			store := sdk.NewMemoryStore()
			client := sdk.NewClient(server.URL, sdk.WithCredentialStore(store))

			_, err := client.Login(context.Background(), "admin@campus.edu", "secret")
			assert.ErrorIs(t, err, sdk.ErrInvalidCredentials)

			_, hasToken := store.Token()
			assert.False(t, hasToken)
		})
	}
}

func TestLogin_EmptyInputRejectedLocally(t *testing.T) {
	// No server: validation must fail before any request goes out.
	client := sdk.NewClient("http://127.0.0.1:1")

	_, err := client.Login(context.Background(), "", "secret")
	assert.ErrorIs(t, err, sdk.ErrInvalidCredentials)

	_, err = client.Login(context.Background(), "not-an-email", "secret")
	assert.ErrorIs(t, err, sdk.ErrInvalidCredentials)

	_, err = client.Login(context.Background(), "admin@campus.edu", "")
	assert.ErrorIs(t, err, sdk.ErrInvalidCredentials)
}

func TestLogout_ClearsSessionEvenWhenRemoteFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	store := sdk.NewMemoryStore()
	require.NoError(t, store.SetToken("abc123"))
	require.NoError(t, store.SetUser(adminUser()))

	client := sdk.NewClient(server.URL, sdk.WithCredentialStore(store))

	require.NoError(t, client.Logout(context.Background()))

	_, hasToken := store.Token()
	assert.False(t, hasToken)
	_, hasUser := store.User()
	assert.False(t, hasUser)
	assert.False(t, client.IsAuthenticated())

	// Logging out twice is fine.
	require.NoError(t, client.Logout(context.Background()))
}

func TestMe_DecodesEnvelopeAndBareObject(t *testing.T) {
	bodies := map[string]string{
		"envelope": `{"user": {"id": 1, "email": "admin@campus.edu", "role": "administrador"}}`,
		"bare":     `{"id": 1, "email": "admin@campus.edu", "role": "administrador"}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/auth/me", r.URL.Path)
				w.Write([]byte(body))
			}))
			defer server.Close()

			client := sdk.NewClient(server.URL)
			user, err := client.Me(context.Background())
			require.NoError(t, err)
			assert.Equal(t, "admin@campus.edu", user.Email)
		})
	}
}

func TestRefresh_PersistsNewToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/refresh", r.URL.Path)
		w.Write([]byte(`{"token": "fresh456"}`))
	}))
	defer server.Close()

	store := sdk.NewMemoryStore()
	require.NoError(t, store.SetToken("abc123"))
	client := sdk.NewClient(server.URL, sdk.WithCredentialStore(store))

	require.NoError(t, client.Refresh(context.Background()))

	tok, ok := store.Token()
	require.True(t, ok)
	assert.Equal(t, "fresh456", tok)
}

// The server's returned profile overwrites the stored snapshot wholesale;
// client-side input is never merged into storage.
func TestUpdateProfile_OverwritesStoredSnapshot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/auth/profile", r.URL.Path)
		w.Write([]byte(`{"user": {"id": 1, "email": "renamed@campus.edu", "role": "administrador", "configuracion": {"tiempo_sesion": 45}}}`))
	}))
	defer server.Close()

	store := sdk.NewMemoryStore()
	require.NoError(t, store.SetUser(adminUser()))
	client := sdk.NewClient(server.URL, sdk.WithCredentialStore(store))

	updated, err := client.UpdateProfile(context.Background(), sdk.UpdateProfileInput{Email: "renamed@campus.edu"})
	require.NoError(t, err)
	assert.Equal(t, "renamed@campus.edu", updated.Email)

	stored, ok := store.User()
	require.True(t, ok)
	assert.Equal(t, "renamed@campus.edu", stored.Email)
	assert.Equal(t, 45*60., stored.SessionTimeout().Seconds())
}

func TestChangePassword_Passthrough(t *testing.T) {
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/change-password", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"message": "ok"}`))
	}))
	defer server.Close()

	store := sdk.NewMemoryStore()
	require.NoError(t, store.SetToken("abc123"))
	client := sdk.NewClient(server.URL, sdk.WithCredentialStore(store))

	require.NoError(t, client.ChangePassword(context.Background(), "old", "new"))
	assert.Equal(t, "old", gotBody["currentPassword"])
	assert.Equal(t, "new", gotBody["newPassword"])

	// Local state untouched.
	_, hasToken := store.Token()
	assert.True(t, hasToken)

	// Empty fields rejected locally.
	assert.Error(t, client.ChangePassword(context.Background(), "", "new"))
}
