package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {"version": "2.0.0"},
		"storage": {"backend": "sqlite", "path": "/tmp/pk.db"},
		"auth": {"token_sign_key": "json-key", "token_issuer": "json-issuer", "token_duration": "1h"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "/tmp/pk.db", cfg.Storage.Path)
	assert.Equal(t, "json-key", cfg.Auth.TokenSignKey)
	assert.Equal(t, "json-issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.Auth.TokenDuration)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	path := writeTempJSON(t, `{"auth": {"token_duration": 60000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, cfg.Auth.TokenDuration)
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	path := writeTempJSON(t, `{"auth": {"token_duration": "soon"}}`)

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempJSON(t, `{"storage":`)

	_, err := parseJSON(path)
	assert.Error(t, err)
}
