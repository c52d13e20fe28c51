package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gestory/gestoryctl/pkg/sdk"
)

const (
	tokenFile = "token"
	userFile  = "user.json"
)

// FileStore implements sdk.CredentialStore on top of two files under the
// gestory home directory: the raw token and the serialized user profile.
// They are written independently, mirroring the two entries the session
// conceptually consists of; SessionGuard requires both to be present.
type FileStore struct {
	dir string
}

// Ensure FileStore implements sdk.CredentialStore at compile time.
var _ sdk.CredentialStore = (*FileStore)(nil)

// NewFileStore creates a FileStore rooted at ~/.gestory.
func NewFileStore() (*FileStore, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	return NewFileStoreAt(filepath.Join(home, ".gestory"))
}

// NewFileStoreAt creates a FileStore rooted at the given directory, creating
// it when needed.
func NewFileStoreAt(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create credential directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// SetToken writes the token entry, or removes it when the token is empty.
func (s *FileStore) SetToken(token string) error {
	path := filepath.Join(s.dir, tokenFile)
	if token == "" {
		return removeIfExists(path)
	}
	return os.WriteFile(path, []byte(token), 0600)
}

// Token returns the stored token, if any.
func (s *FileStore) Token() (string, bool) {
	data, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil {
		return "", false
	}
	token := strings.TrimSpace(string(data))
	return token, token != ""
}

// SetUser serializes and persists the profile snapshot.
func (s *FileStore) SetUser(u *sdk.User) error {
	data, err := json.MarshalIndent(u, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal user profile: %w", err)
	}
	return os.WriteFile(filepath.Join(s.dir, userFile), data, 0600)
}

// User returns the stored profile. Missing or malformed data is absent, not
// an error: the files are user-editable and may be stale or tampered with.
func (s *FileStore) User() (*sdk.User, bool) {
	data, err := os.ReadFile(filepath.Join(s.dir, userFile))
	if err != nil {
		return nil, false
	}
	var u sdk.User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, false
	}
	return &u, true
}

// Clear removes both entries. Clearing an empty store succeeds.
func (s *FileStore) Clear() error {
	if err := removeIfExists(filepath.Join(s.dir, tokenFile)); err != nil {
		return err
	}
	return removeIfExists(filepath.Join(s.dir, userFile))
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
