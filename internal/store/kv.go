package store

import "sort"

// KV is the flat key-value substrate entries live in. Implementations
// provide atomic single-key reads and writes; there are no multi-key
// transactions and nothing in the store needs them. Keys returns every
// key in a deterministic order so prefix scans are stable across calls.
type KV interface {
	Set(key, value string) error
	Get(key string) (string, bool, error)
	Remove(key string) error
	Keys() ([]string, error)
}

// Memory is a map-backed KV for tests and ephemeral use.
type Memory struct {
	m map[string]string
}

// NewMemory returns an empty in-memory KV.
func NewMemory() *Memory {
	return &Memory{m: make(map[string]string)}
}

func (s *Memory) Set(key, value string) error {
	s.m[key] = value
	return nil
}

func (s *Memory) Get(key string) (string, bool, error) {
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *Memory) Remove(key string) error {
	delete(s.m, key)
	return nil
}

func (s *Memory) Keys() ([]string, error) {
	keys := make([]string, 0, len(s.m))
	for k := range s.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
