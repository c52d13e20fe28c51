package auth

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestory/gestoryctl/pkg/sdk"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStoreAt(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestFileStore_TokenRoundTrip(t *testing.T) {
	store := newTestStore(t)

	_, ok := store.Token()
	assert.False(t, ok, "fresh store has no token")

	require.NoError(t, store.SetToken("abc123"))
	tok, ok := store.Token()
	require.True(t, ok)
	assert.Equal(t, "abc123", tok)

	// Empty token removes the entry.
	require.NoError(t, store.SetToken(""))
	_, ok = store.Token()
	assert.False(t, ok)
}

func TestFileStore_UserRoundTrip(t *testing.T) {
	store := newTestStore(t)

	_, ok := store.User()
	assert.False(t, ok)

	u := &sdk.User{ID: 1, Email: "admin@campus.edu", Role: sdk.RoleAdministrator}
	require.NoError(t, store.SetUser(u))

	got, ok := store.User()
	require.True(t, ok)
	assert.Equal(t, "admin@campus.edu", got.Email)
	assert.Equal(t, sdk.RoleAdministrator, got.Role)
}

func TestFileStore_MalformedUserIsAbsent(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStoreAt(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "user.json"), []byte("{not json"), 0600))

	_, ok := store.User()
	assert.False(t, ok, "malformed profile must read as absent, not error")
}

func TestFileStore_ClearIsIdempotent(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Clear(), "clearing an empty store succeeds")

	require.NoError(t, store.SetToken("abc123"))
	require.NoError(t, store.SetUser(&sdk.User{ID: 1, Role: sdk.RoleAdministrator}))

	require.NoError(t, store.Clear())
	_, hasToken := store.Token()
	assert.False(t, hasToken)
	_, hasUser := store.User()
	assert.False(t, hasUser)

	require.NoError(t, store.Clear())
}

func TestFileStore_Permissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}

	dir := t.TempDir()
	store, err := NewFileStoreAt(dir)
	require.NoError(t, err)
	require.NoError(t, store.SetToken("abc123"))

	info, err := os.Stat(filepath.Join(dir, "token"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
