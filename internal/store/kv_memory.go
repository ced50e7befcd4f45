package store

import (
	"context"
	"sync"
)

// memoryKeyValue is the volatile [KeyValue] backend. It lives only as long
// as the process, which makes it the equivalent of tab-scoped storage: the
// session stored here disappears when the application exits.
type memoryKeyValue struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryKeyValue constructs an empty volatile key-value store.
func NewMemoryKeyValue() KeyValue {
	return &memoryKeyValue{values: make(map[string][]byte)}
}

func (s *memoryKeyValue) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}

	copied := make([]byte, len(value))
	copy(copied, value)
	return copied, true, nil
}

func (s *memoryKeyValue) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]byte, len(value))
	copy(copied, value)
	s.values[key] = copied
	return nil
}

func (s *memoryKeyValue) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}
