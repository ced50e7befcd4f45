package config

import "errors"

var (
	// ErrInvalidStorageConfigs is returned when the storage backend is not
	// one of the supported names.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs")

	// ErrInvalidAuthConfigs is returned when the session token parameters
	// are incomplete.
	ErrInvalidAuthConfigs = errors.New("invalid auth configs")
)
