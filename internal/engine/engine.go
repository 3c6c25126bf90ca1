// Package engine is the caller-facing surface of the journal core. It
// glues validation, scoring and the stores together; presentation layers
// (CLI, HTTP) never touch the substrate directly.
package engine

import (
	"fmt"
	"time"

	"depthjournal/internal/journal"
	"depthjournal/internal/metrics"
	"depthjournal/internal/store"
)

// Engine owns the entry and session stores over one KV substrate.
type Engine struct {
	kv       store.KV
	entries  *store.EntryStore
	sessions *store.SessionStore
}

// New builds an Engine on top of a KV substrate.
func New(kv store.KV) *Engine {
	return &Engine{
		kv:       kv,
		entries:  store.NewEntryStore(kv),
		sessions: store.NewSessionStore(kv),
	}
}

// Ping reports whether the substrate is reachable. In-memory substrates
// are always healthy.
func (e *Engine) Ping() error {
	type pinger interface{ Ping() error }
	if p, ok := e.kv.(pinger); ok {
		return p.Ping()
	}
	return nil
}

// SignIn derives a User from the email, records it as the current
// session and returns it. The only check is the presence of an '@'.
func (e *Engine) SignIn(email string) (journal.User, error) {
	u, err := journal.NewUser(email)
	if err != nil {
		return journal.User{}, err
	}
	if err := e.sessions.SaveCurrentUser(u); err != nil {
		return journal.User{}, fmt.Errorf("sign in: %w", err)
	}
	return u, nil
}

// SignOut clears the current session. Signing out twice is a no-op.
func (e *Engine) SignOut() error {
	return e.sessions.ClearCurrentUser()
}

// CurrentUser returns the signed-in user, or nil.
func (e *Engine) CurrentUser() (*journal.User, error) {
	return e.sessions.CurrentUser()
}

// CreateEntry validates the draft and persists it for the user. The
// returned entry carries the assigned ID, timestamp and frozen score.
// On a validation error nothing is written and the draft is untouched.
func (e *Engine) CreateEntry(userID string, d journal.Draft) (*journal.Entry, error) {
	if !journal.ValidUserID(userID) {
		return nil, &journal.ValidationError{Field: "user_id", Reason: "must match [a-z0-9-]"}
	}
	emotions, err := d.Validate()
	if err != nil {
		return nil, err
	}

	entry := &journal.Entry{
		UserID:   userID,
		Title:    d.Title,
		Content:  d.Content,
		Emotions: emotions,
		Sensory:  d.Sensory,
		Media:    d.Media,
	}

	start := time.Now()
	if err := e.entries.Save(entry); err != nil {
		return nil, err
	}
	metrics.SaveDuration.Observe(time.Since(start).Seconds())
	metrics.EntriesSaved.Inc()
	return entry, nil
}

// DeleteEntry removes one entry. Idempotent.
func (e *Engine) DeleteEntry(userID string, id int64) error {
	if !journal.ValidUserID(userID) {
		return &journal.ValidationError{Field: "user_id", Reason: "must match [a-z0-9-]"}
	}
	if err := e.entries.Delete(userID, id); err != nil {
		return err
	}
	metrics.EntriesDeleted.Inc()
	return nil
}

// ListRanked returns the user's entries sorted by relevance score
// descending, plus any per-record decode errors encountered during the
// scan. Partial results are returned alongside the errors.
func (e *Engine) ListRanked(userID string) ([]journal.Entry, []store.DecodeError, error) {
	if !journal.ValidUserID(userID) {
		return nil, nil, &journal.ValidationError{Field: "user_id", Reason: "must match [a-z0-9-]"}
	}
	entries, decodeErrs, err := e.entries.ListAll(userID)
	if err != nil {
		return nil, decodeErrs, err
	}
	if len(decodeErrs) > 0 {
		metrics.DecodeFailures.Add(float64(len(decodeErrs)))
	}
	return journal.Ranked(entries), decodeErrs, nil
}
