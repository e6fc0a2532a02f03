package kvstore

import (
	"encoding/json"
	"sync"
)

type memoryStore struct {
	mu   sync.Mutex
	data map[string]json.RawMessage
}

// NewMemoryStore returns a non-persistent store with the same read/write
// semantics as the file backend. Values round-trip through JSON so callers
// never share memory with the store.
func NewMemoryStore() Store {
	return &memoryStore{data: map[string]json.RawMessage{}}
}

func (s *memoryStore) Get(key string, out any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

func (s *memoryStore) Set(key string, value any) error {
	return s.SetAll(map[string]any{key: value})
}

func (s *memoryStore) SetAll(values map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := make(map[string]json.RawMessage, len(values))
	for key, value := range values {
		raw, err := json.Marshal(value)
		if err != nil {
			return err
		}
		staged[key] = raw
	}
	for key, raw := range staged {
		s.data[key] = raw
	}
	return nil
}
