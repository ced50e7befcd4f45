package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when registration fails because an account
	// with the same username (compared case-insensitively) already exists.
	ErrUsernameTaken = errors.New("el usuario ya existe")

	// ErrEmailTaken is returned when registration fails because an account
	// with the same e-mail already exists.
	ErrEmailTaken = errors.New("email ya registrado")

	// ErrAccountNotFound is returned when a lookup by identifier or ID
	// matches no stored account.
	ErrAccountNotFound = errors.New("usuario no encontrado")

	// ErrPetNotFound is returned when an operation targets a pet ID that is
	// not present in the owning user's collection.
	ErrPetNotFound = errors.New("mascota no encontrada")

	// ErrHistoryEntryNotFound is returned when a history operation targets an
	// entry ID that is not present in the pet's history.
	ErrHistoryEntryNotFound = errors.New("entrada de historial no encontrada")

	// ErrNoActiveSession is returned when an operation requires an
	// authenticated session and none is stored.
	ErrNoActiveSession = errors.New("no hay sesión iniciada")
)
