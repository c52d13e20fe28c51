package sdk

import (
	"encoding/json"
	"sync"
)

// CredentialStore is durable, process-wide storage for the session: the
// bearer token and the last-known user profile. The two entries are written
// independently, so there is a transient window where only one of them is
// set; SessionGuard treats the session as valid only when both are present.
//
// Write discipline: only the auth operations on Client (token and user) and
// the client's authorization-failure handler (Clear) write to the store.
// Everything else reads.
type CredentialStore interface {
	// SetToken writes the bearer token. An empty token removes the entry.
	SetToken(token string) error
	// Token returns the stored token, reporting whether one is present.
	Token() (string, bool)
	// SetUser serializes and persists the profile snapshot.
	SetUser(u *User) error
	// User returns the stored profile. Missing or malformed data is reported
	// as absent, never as an error: the storage is user-editable and may be
	// tampered with or stale.
	User() (*User, bool)
	// Clear removes both entries. Clearing an empty store is not an error.
	Clear() error
}

// MemoryStore is an in-process CredentialStore. It backs tests and embedded
// use where no durable storage is wanted. The user snapshot is held in its
// serialized form so reads exercise the same decode path as durable stores.
type MemoryStore struct {
	mu       sync.Mutex
	token    string
	hasToken bool
	userData []byte
}

// NewMemoryStore creates an empty in-process credential store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// SetToken writes or removes the token entry.
func (s *MemoryStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.hasToken = token != ""
	return nil
}

// Token returns the current token, if any.
func (s *MemoryStore) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.hasToken
}

// SetUser persists the serialized profile.
func (s *MemoryStore) SetUser(u *User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userData = data
	return nil
}

// User returns the stored profile, or absent when missing or malformed.
func (s *MemoryStore) User() (*User, bool) {
	s.mu.Lock()
	data := s.userData
	s.mu.Unlock()
	if len(data) == 0 {
		return nil, false
	}
	var u User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, false
	}
	return &u, true
}

// Clear removes both entries.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.hasToken = false
	s.userData = nil
	return nil
}
