package service

import (
	"context"

	"github.com/avidalm/petkeeper/models"
)

// RegisterRequest carries the raw registration form input.
type RegisterRequest struct {
	FullName        string
	Username        string
	Email           string
	Password        string
	PasswordConfirm string
}

// AuthService implements the account and session lifecycle.
//
// Validation failures are returned as [validators.FieldErrors] so callers
// can render one message per offending field; duplicate username/e-mail and
// wrong-password conditions are mapped into the same shape.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (models.Session, error)
	Login(ctx context.Context, identifier, password string) (models.Session, error)
	Logout(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
	CurrentSession(ctx context.Context) (models.Session, error)
}

// PetService implements CRUD over the active user's pet collection plus the
// "currently selected pet" cursor backing the detail view.
//
// Every operation requires an active session and fails with
// store.ErrNoActiveSession otherwise; that is an explicit precondition, not
// a silent no-op.
type PetService interface {
	List(ctx context.Context) ([]models.Pet, error)
	Create(ctx context.Context, pet models.Pet) (models.Pet, error)
	Select(ctx context.Context, petID string) (models.Pet, error)
	Selected(ctx context.Context) (models.Pet, error)
	Update(ctx context.Context, petID string, patch models.Pet) (models.Pet, error)
	Delete(ctx context.Context, petID string) error
	AppendHistory(ctx context.Context, petID, text string) (models.Pet, error)
	RemoveHistory(ctx context.Context, petID, entryID string) (models.Pet, error)
}
