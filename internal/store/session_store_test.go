package store

import (
	"context"
	"testing"

	"github.com/avidalm/petkeeper/internal/logger"
	"github.com/avidalm/petkeeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_SaveCurrentClear(t *testing.T) {
	ctx := context.Background()
	sessions := NewSessionStore(NewMemoryKeyValue(), logger.Nop())

	_, err := sessions.Current(ctx)
	assert.ErrorIs(t, err, ErrNoActiveSession)

	saved := models.Session{UserID: "account-1", Username: "ana", Token: "jwt"}
	require.NoError(t, sessions.Save(ctx, saved))

	current, err := sessions.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, current)

	// saving again replaces the single session
	replaced := models.Session{UserID: "account-2", Username: "benito", Token: "jwt2"}
	require.NoError(t, sessions.Save(ctx, replaced))
	current, err = sessions.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, replaced, current)

	require.NoError(t, sessions.Clear(ctx))
	_, err = sessions.Current(ctx)
	assert.ErrorIs(t, err, ErrNoActiveSession)

	// clearing an already absent session is not an error
	assert.NoError(t, sessions.Clear(ctx))
}

func TestSessionStore_CorruptSessionTreatedAsAbsent(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValue()
	require.NoError(t, kv.Set(ctx, sessionKey, []byte("{rota")))

	sessions := NewSessionStore(kv, logger.Nop())

	_, err := sessions.Current(ctx)
	assert.ErrorIs(t, err, ErrNoActiveSession)
}
