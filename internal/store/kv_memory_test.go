package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKeyValue_Roundtrip(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValue()

	_, found, err := kv.Get(ctx, "session")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, kv.Set(ctx, "session", []byte(`{"user_id":"1"}`)))

	value, found, err := kv.Get(ctx, "session")
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `{"user_id":"1"}`, string(value))

	require.NoError(t, kv.Delete(ctx, "session"))
	_, found, err = kv.Get(ctx, "session")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryKeyValue_CopiesValues(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValue()

	original := []byte(`abc`)
	require.NoError(t, kv.Set(ctx, "k", original))
	original[0] = 'x'

	stored, _, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`abc`), stored)

	// mutating the returned slice must not leak back into the store
	stored[0] = 'y'
	again, _, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`abc`), again)
}
