package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_Empty(t *testing.T) {
	cfg := &ClientConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, ClientConfig{}, *cfg)
}

func TestParseEnv_AllFields(t *testing.T) {
	t.Setenv("APP_VERSION", "1.2.3")
	t.Setenv("STORAGE_BACKEND", "sqlite")
	t.Setenv("STORAGE_PATH", "/tmp/petkeeper.db")
	t.Setenv("AUTH_TOKEN_SIGN_KEY", "secret-key")
	t.Setenv("AUTH_TOKEN_ISSUER", "petkeeper-test")
	t.Setenv("AUTH_TOKEN_DURATION", "30m")
	t.Setenv("CONFIG", "/tmp/config.json")

	cfg := &ClientConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "/tmp/petkeeper.db", cfg.Storage.Path)
	assert.Equal(t, "secret-key", cfg.Auth.TokenSignKey)
	assert.Equal(t, "petkeeper-test", cfg.Auth.TokenIssuer)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenDuration)
	assert.Equal(t, "/tmp/config.json", cfg.JSONFilePath)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("AUTH_TOKEN_DURATION", "not-a-duration")

	cfg := &ClientConfig{}
	assert.Error(t, parseEnv(cfg))
}
