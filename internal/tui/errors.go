package tui

import (
	"errors"

	"github.com/avidalm/petkeeper/internal/store"
	"github.com/avidalm/petkeeper/internal/validators"
)

var ErrUserQuit = errors.New("salió del programa")

// humanizeError prefers the bare sentinel text over the wrapped chain, so
// the overlay reads "mascota no encontrada" and not the plumbing around it.
func humanizeError(err error) string {
	for _, sentinel := range []error{
		store.ErrPetNotFound,
		store.ErrHistoryEntryNotFound,
		store.ErrAccountNotFound,
		store.ErrNoActiveSession,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}

// splitFieldErrors separates an operation error into per-field messages and
// a general one. Field-level failures come back as [validators.FieldErrors]
// and are shown inline next to the offending input; anything else becomes a
// single general message.
func splitFieldErrors(err error) (fields map[string]string, general string) {
	if err == nil {
		return nil, ""
	}

	var fieldErrors validators.FieldErrors
	if !errors.As(err, &fieldErrors) {
		return nil, err.Error()
	}

	fields = make(map[string]string, len(fieldErrors))
	for field, fieldErr := range fieldErrors {
		fields[field] = fieldErr.Error()
	}
	return fields, ""
}
