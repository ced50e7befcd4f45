package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/avidalm/petkeeper/internal/logger"
)

// fileKeyValue is the default persistent [KeyValue] backend: the whole key
// space is one JSON file, loaded on open and rewritten after every mutation.
//
// This mirrors the storage discipline of the application as a whole:
// synchronous whole-state read-modify-write, safe only because a single
// process mutates the file. Two processes sharing one file race and the last
// writer wins; accepted limitation, not fixed here.
type fileKeyValue struct {
	path string

	mu     sync.RWMutex
	values map[string]json.RawMessage
}

// NewFileKeyValue opens (or lazily creates) the JSON file at path and loads
// its contents. A file that does not exist yet yields an empty store; a file
// that cannot be parsed also yields an empty store, because corrupt stored
// state is recovered by treating it as absent, never by failing startup.
func NewFileKeyValue(path string, log *logger.Logger) (KeyValue, error) {
	if path == "" {
		return nil, fmt.Errorf("file storage path is empty")
	}

	s := &fileKeyValue{
		path:   path,
		values: make(map[string]json.RawMessage),
	}
	if err := s.load(log); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *fileKeyValue) load(log *logger.Logger) error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read storage file: %w", err)
	}

	var values map[string]json.RawMessage
	if err = json.Unmarshal(data, &values); err != nil {
		// self-heal: corrupt state is indistinguishable from no state
		log.Warn().Err(err).Str("path", s.path).Msg("storage file is corrupt, starting empty")
		return nil
	}

	if values != nil {
		s.values = values
	}

	return nil
}

func (s *fileKeyValue) persist() error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create storage dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode storage: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write storage file: %w", err)
	}

	return nil
}

func (s *fileKeyValue) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}

	return value, true, nil
}

func (s *fileKeyValue) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = json.RawMessage(value)
	return s.persist()
}

func (s *fileKeyValue) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return s.persist()
}
