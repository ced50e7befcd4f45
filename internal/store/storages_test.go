package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/avidalm/petkeeper/internal/config"
	"github.com/avidalm/petkeeper/internal/logger"
	"github.com/avidalm/petkeeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStorages_FileBackend(t *testing.T) {
	storages, err := NewStorages(config.Storage{
		Backend: config.BackendFile,
		Path:    filepath.Join(t.TempDir(), "petkeeper.json"),
	}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, storages.Accounts)
	assert.NotNil(t, storages.Pets)
	assert.NotNil(t, storages.Sessions)
}

func TestNewStorages_SQLiteBackend(t *testing.T) {
	storages, err := NewStorages(config.Storage{
		Backend: config.BackendSQLite,
		Path:    filepath.Join(t.TempDir(), "petkeeper.db"),
	}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, storages.Accounts)
}

func TestNewStorages_UnknownBackend(t *testing.T) {
	_, err := NewStorages(config.Storage{Backend: "redis"}, logger.Nop())
	assert.Error(t, err)
}

// The session store built by NewStorages must be volatile: it never shares
// the persistent backend.
func TestNewStorages_SessionIsVolatile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "petkeeper.json")

	storages, err := NewStorages(config.Storage{Backend: config.BackendFile, Path: path}, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, storages.Sessions.Save(ctx, models.Session{UserID: "account-1", Username: "ana", Token: "jwt"}))

	reopened, err := NewStorages(config.Storage{Backend: config.BackendFile, Path: path}, logger.Nop())
	require.NoError(t, err)

	_, err = reopened.Sessions.Current(ctx)
	assert.ErrorIs(t, err, ErrNoActiveSession)
}
