package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/avidalm/petkeeper/internal/logger"
	"github.com/avidalm/petkeeper/models"
)

// sessionKey is the single key the active session lives under in the
// volatile store.
const sessionKey = "session"

type sessionStore struct {
	kv     KeyValue
	logger *logger.Logger
}

// NewSessionStore constructs a [SessionStore] over the given key-value
// store. Pass the volatile in-memory backend: the session must not survive
// the process, the same way tab-scoped storage does not survive the tab.
func NewSessionStore(kv KeyValue, log *logger.Logger) SessionStore {
	log.Debug().Msg("SessionStore created")
	return &sessionStore{
		kv:     kv,
		logger: log,
	}
}

func (s *sessionStore) Save(ctx context.Context, session models.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err = s.kv.Set(ctx, sessionKey, raw); err != nil {
		return fmt.Errorf("write session: %w", err)
	}

	return nil
}

// Current returns the active session, or ErrNoActiveSession when none is
// stored. A session blob that fails to parse counts as absent.
func (s *sessionStore) Current(ctx context.Context) (models.Session, error) {
	raw, found, err := s.kv.Get(ctx, sessionKey)
	if err != nil {
		return models.Session{}, fmt.Errorf("read session: %w", err)
	}
	if !found {
		return models.Session{}, ErrNoActiveSession
	}

	var session models.Session
	if err = json.Unmarshal(raw, &session); err != nil {
		s.logger.Warn().Err(err).Msg("stored session is corrupt, treating as absent")
		return models.Session{}, ErrNoActiveSession
	}

	return session, nil
}

func (s *sessionStore) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, sessionKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
