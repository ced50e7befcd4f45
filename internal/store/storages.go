package store

import (
	"fmt"

	"github.com/avidalm/petkeeper/internal/config"
	"github.com/avidalm/petkeeper/internal/logger"
)

// Storages bundles every repository the application uses, each bound to the
// appropriate key-value backend: accounts and pets to the persistent one,
// the session to the volatile one.
type Storages struct {
	Accounts AccountRepository
	Pets     PetRepository
	Sessions SessionStore
}

// NewStorages opens the configured persistent backend and wires all
// repositories.
func NewStorages(cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var persistent KeyValue
	var err error

	switch cfg.Backend {
	case config.BackendSQLite:
		persistent, err = NewSQLiteKeyValue(cfg.Path, log)
	case config.BackendFile:
		persistent, err = NewFileKeyValue(cfg.Path, log)
	default:
		err = fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("open persistent storage: %w", err)
	}

	return &Storages{
		Accounts: NewAccountRepository(persistent, log),
		Pets:     NewPetRepository(persistent, log),
		Sessions: NewSessionStore(NewMemoryKeyValue(), log),
	}, nil
}
