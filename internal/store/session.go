package store

import (
	"encoding/json"
	"fmt"

	"depthjournal/internal/journal"
)

// currentUserKey is the fixed key the signed-in user lives under.
const currentUserKey = "current-user"

// SessionStore holds the "who is signed in" record. The session is
// explicit substrate state, created on sign-in and removed on sign-out;
// nothing reads it implicitly.
type SessionStore struct {
	kv KV
}

// NewSessionStore wraps a KV substrate.
func NewSessionStore(kv KV) *SessionStore {
	return &SessionStore{kv: kv}
}

// SaveCurrentUser records the signed-in user.
func (s *SessionStore) SaveCurrentUser(u journal.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	if err := s.kv.Set(currentUserKey, string(data)); err != nil {
		return fmt.Errorf("write current user: %w", err)
	}
	return nil
}

// CurrentUser returns the signed-in user, or nil when nobody is.
func (s *SessionStore) CurrentUser() (*journal.User, error) {
	raw, ok, err := s.kv.Get(currentUserKey)
	if err != nil {
		return nil, fmt.Errorf("read current user: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var u journal.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, fmt.Errorf("decode current user: %w", err)
	}
	return &u, nil
}

// ClearCurrentUser signs the user out. Clearing an empty session is a no-op.
func (s *SessionStore) ClearCurrentUser() error {
	return s.kv.Remove(currentUserKey)
}
