// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// ClientConfig is the top-level configuration container for the petkeeper
// application. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type ClientConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the persistent key-value backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Auth holds the session token parameters.
	Auth Auth `envPrefix:"AUTH_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Shown in the TUI version overlay.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Backend names accepted by Storage.Backend.
const (
	// BackendFile stores all collections in one JSON file.
	BackendFile = "file"

	// BackendSQLite stores each collection in a row of an embedded sqlite
	// database.
	BackendSQLite = "sqlite"
)

// Storage holds configuration for the persistent key-value backend.
type Storage struct {
	// Backend selects the persistence implementation: "file" or "sqlite".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// Path is the file path of the JSON store or the sqlite database,
	// depending on Backend.
	// Env: STORAGE_PATH
	Path string `env:"PATH"`
}

// Auth holds the session token parameters.
type Auth struct {
	// TokenSignKey is the secret key used to sign and verify session JWTs.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued session token.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session token remains valid after
	// issuance (e.g. "12h", "30m"). The session cannot outlive its token.
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Defaults applied by GetClientConfig for values no source provided. The
// sign key default is acceptable only because the whole application is a
// local single-user program; there is no server-side trust boundary.
const (
	defaultBackend       = BackendFile
	defaultStoragePath   = "petkeeper.json"
	defaultTokenSignKey  = "petkeeper-local-dev-key"
	defaultTokenIssuer   = "petkeeper"
	defaultTokenDuration = 12 * time.Hour
)

// GetClientConfig builds the final application configuration from all
// sources. Precedence: environment variables, then flags, then the optional
// JSON file, then built-in defaults.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err = cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = defaultBackend
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = defaultStoragePath
	}
	if cfg.Auth.TokenSignKey == "" {
		cfg.Auth.TokenSignKey = defaultTokenSignKey
	}
	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = defaultTokenIssuer
	}
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = defaultTokenDuration
	}
}
