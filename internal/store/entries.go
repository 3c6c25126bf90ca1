package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"depthjournal/internal/journal"
)

// entryKey builds the namespaced key for one entry. Every store operation
// rejects user IDs outside [a-z0-9-] first, so the colon separator is
// unambiguous and one user's prefix can never alias another's.
func entryKey(userID string, id int64) string {
	return fmt.Sprintf("entry:%s:%d", userID, id)
}

func entryPrefix(userID string) string {
	return "entry:" + userID + ":"
}

// DecodeError reports one stored record that could not be deserialized
// during a scan. The scan continues past it.
type DecodeError struct {
	Key string
	Err error
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Key, e.Err)
}

func (e DecodeError) Unwrap() error { return e.Err }

// EntryStore persists journal entries in a KV substrate, one JSON record
// per entry under entry:{userID}:{id}. It is the only writer of entry
// keys. Entries are append/delete only; there is no update.
type EntryStore struct {
	kv  KV
	now func() time.Time
}

// NewEntryStore wraps a KV substrate.
func NewEntryStore(kv KV) *EntryStore {
	return &EntryStore{kv: kv, now: time.Now}
}

// Save assigns the entry an ID and creation timestamp, freezes its
// relevance score, and writes it. IDs are unix-millisecond timestamps;
// if the millisecond is already taken for this user the ID advances to
// the next free value, so an existing record is never overwritten.
func (s *EntryStore) Save(e *journal.Entry) error {
	if !journal.ValidUserID(e.UserID) {
		return fmt.Errorf("save entry: invalid user id %q", e.UserID)
	}

	now := s.now()
	if e.ID == 0 {
		id := now.UnixMilli()
		for {
			_, exists, err := s.kv.Get(entryKey(e.UserID, id))
			if err != nil {
				return fmt.Errorf("probe id %d: %w", id, err)
			}
			if !exists {
				break
			}
			id++
		}
		e.ID = id
	} else {
		_, exists, err := s.kv.Get(entryKey(e.UserID, e.ID))
		if err != nil {
			return fmt.Errorf("probe id %d: %w", e.ID, err)
		}
		if exists {
			return fmt.Errorf("save entry: id %d already exists for user %s", e.ID, e.UserID)
		}
	}

	if e.CreatedAt == "" {
		e.CreatedAt = now.UTC().Format(time.RFC3339)
	}
	e.RelevanceScore = journal.Score(*e)

	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal entry %d: %w", e.ID, err)
	}
	if err := s.kv.Set(entryKey(e.UserID, e.ID), string(data)); err != nil {
		return fmt.Errorf("write entry %d: %w", e.ID, err)
	}
	return nil
}

// ListAll returns every entry stored for the user, in key order. Records
// that fail to deserialize are reported as DecodeErrors alongside the
// entries that did parse; a bad record never aborts the scan.
func (s *EntryStore) ListAll(userID string) ([]journal.Entry, []DecodeError, error) {
	if !journal.ValidUserID(userID) {
		return nil, nil, fmt.Errorf("list entries: invalid user id %q", userID)
	}
	keys, err := s.kv.Keys()
	if err != nil {
		return nil, nil, fmt.Errorf("list keys: %w", err)
	}

	prefix := entryPrefix(userID)
	var entries []journal.Entry
	var decodeErrs []DecodeError
	for _, key := range keys {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		raw, ok, err := s.kv.Get(key)
		if err != nil {
			return entries, decodeErrs, fmt.Errorf("read %s: %w", key, err)
		}
		if !ok {
			continue
		}
		var e journal.Entry
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			decodeErrs = append(decodeErrs, DecodeError{Key: key, Err: err})
			continue
		}
		entries = append(entries, e)
	}
	return entries, decodeErrs, nil
}

// Delete removes one entry. Deleting an absent ID is not an error.
func (s *EntryStore) Delete(userID string, id int64) error {
	if !journal.ValidUserID(userID) {
		return fmt.Errorf("delete entry: invalid user id %q", userID)
	}
	return s.kv.Remove(entryKey(userID, id))
}
