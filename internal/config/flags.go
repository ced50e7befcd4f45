package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-f storage file path (JSON store or sqlite database)
//	-b storage backend ("file" or "sqlite")
//	-c/-config json file path with configs
//	-token-sign-key session token signing key
//	-token-issuer session token issuer name
//	-token-duration session token duration (e.g., "12h", "30m")
func ParseFlags() *ClientConfig {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

// parseFlags is the testable core of ParseFlags; it binds all flags on the
// given flag set and parses args.
func parseFlags(fs *flag.FlagSet, args []string) *ClientConfig {
	var storagePath string
	var storageBackend string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration

	fs.StringVar(&storagePath, "f", "", "Storage file path")
	fs.StringVar(&storageBackend, "b", "", "Storage backend (file or sqlite)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Session token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Session token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Session token duration (e.g., 12h, 30m)")

	_ = fs.Parse(args)

	return &ClientConfig{
		Storage: Storage{
			Backend: storageBackend,
			Path:    storagePath,
		},
		Auth: Auth{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		JSONFilePath: jsonConfigPath,
	}
}
