package store

import (
	"testing"

	"depthjournal/internal/journal"
)

func TestSessionRoundTrip(t *testing.T) {
	s := NewSessionStore(NewMemory())

	// Nobody signed in yet
	u, err := s.CurrentUser()
	if err != nil {
		t.Fatalf("CurrentUser: %v", err)
	}
	if u != nil {
		t.Errorf("expected nil user, got %+v", u)
	}

	want := journal.User{ID: "alice-example-com", Email: "alice@example.com"}
	if err := s.SaveCurrentUser(want); err != nil {
		t.Fatalf("SaveCurrentUser: %v", err)
	}

	u, err = s.CurrentUser()
	if err != nil {
		t.Fatalf("CurrentUser: %v", err)
	}
	if u == nil || *u != want {
		t.Errorf("CurrentUser = %+v, want %+v", u, want)
	}
}

func TestSessionClear(t *testing.T) {
	s := NewSessionStore(NewMemory())

	s.SaveCurrentUser(journal.User{ID: "x", Email: "x@y"})
	if err := s.ClearCurrentUser(); err != nil {
		t.Fatalf("ClearCurrentUser: %v", err)
	}
	u, err := s.CurrentUser()
	if err != nil {
		t.Fatalf("CurrentUser: %v", err)
	}
	if u != nil {
		t.Errorf("expected nil after clear, got %+v", u)
	}

	// Clearing again is a no-op
	if err := s.ClearCurrentUser(); err != nil {
		t.Errorf("second ClearCurrentUser: %v", err)
	}
}
