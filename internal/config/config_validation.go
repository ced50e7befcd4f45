// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [ClientConfig] satisfies all
// application invariants before it is used at startup.
//
// It runs after applyDefaults, so only values no source could provide a
// sensible default for are checked here.
func (cfg *ClientConfig) validate() error {
	if cfg.Storage.Backend != BackendFile && cfg.Storage.Backend != BackendSQLite {
		return ErrInvalidStorageConfigs
	}

	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenIssuer == "" || cfg.Auth.TokenDuration == 0 {
		return ErrInvalidAuthConfigs
	}

	return nil
}
