package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/avidalm/petkeeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileKeyValue_EmptyPath(t *testing.T) {
	_, err := NewFileKeyValue("", logger.Nop())
	assert.Error(t, err)
}

func TestFileKeyValue_Roundtrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "petkeeper.json")

	kv, err := NewFileKeyValue(path, logger.Nop())
	require.NoError(t, err)

	_, found, err := kv.Get(ctx, "accounts")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, kv.Set(ctx, "accounts", []byte(`[{"id":"1"}]`)))

	value, found, err := kv.Get(ctx, "accounts")
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `[{"id":"1"}]`, string(value))

	require.NoError(t, kv.Delete(ctx, "accounts"))
	_, found, err = kv.Get(ctx, "accounts")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileKeyValue_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "petkeeper.json")

	kv, err := NewFileKeyValue(path, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "records:user-1", []byte(`[{"id":"pet-1","name":"Rex"}]`)))

	reopened, err := NewFileKeyValue(path, logger.Nop())
	require.NoError(t, err)

	value, found, err := reopened.Get(ctx, "records:user-1")
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `[{"id":"pet-1","name":"Rex"}]`, string(value))
}

func TestFileKeyValue_CreatesParentDir(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "dir", "petkeeper.json")

	kv, err := NewFileKeyValue(path, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "session", []byte(`{}`)))

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestFileKeyValue_CorruptFileStartsEmpty(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "petkeeper.json")
	require.NoError(t, os.WriteFile(path, []byte("esto no es JSON{"), 0o600))

	kv, err := NewFileKeyValue(path, logger.Nop())
	require.NoError(t, err)

	_, found, err := kv.Get(ctx, "accounts")
	require.NoError(t, err)
	assert.False(t, found)

	// the store stays usable after recovery
	require.NoError(t, kv.Set(ctx, "accounts", []byte(`[]`)))
	_, found, err = kv.Get(ctx, "accounts")
	require.NoError(t, err)
	assert.True(t, found)
}
