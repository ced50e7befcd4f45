package store

import (
	"context"

	"github.com/avidalm/petkeeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValue is the persistence primitive of the application: a flat string
// keyed blob store. The persistent backends (JSON file, sqlite) hold the
// account and pet collections; the in-memory backend holds the session.
//
// Get reports found=false for an absent key; absence is not an error.
type KeyValue interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// AccountRepository manages the registered account collection stored under a
// single key. Uniqueness of username and e-mail is checked here, at write
// time, because the underlying store enforces nothing.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	FindByIdentifier(ctx context.Context, identifier string) (models.Account, error)
	FindByID(ctx context.Context, id string) (models.Account, error)
	ListAccounts(ctx context.Context) ([]models.Account, error)
	DeleteAccount(ctx context.Context, id string) error
}

// PetRepository manages one pet collection per account, stored under
// recordsKey(userID) and created lazily on first write. Every mutation is a
// whole-collection read-modify-write; pets and history entries are addressed
// by their stable IDs.
type PetRepository interface {
	ListPets(ctx context.Context, userID string) ([]models.Pet, error)
	AppendPet(ctx context.Context, userID string, pet models.Pet) (models.Pet, error)
	GetPet(ctx context.Context, userID, petID string) (models.Pet, error)
	UpdatePet(ctx context.Context, userID string, pet models.Pet) (models.Pet, error)
	DeletePet(ctx context.Context, userID, petID string) error
	AppendHistory(ctx context.Context, userID, petID string, entry models.HistoryEntry) (models.Pet, error)
	RemoveHistory(ctx context.Context, userID, petID, entryID string) (models.Pet, error)
	DeleteAllPets(ctx context.Context, userID string) error
}

// SessionStore holds the single active session. Backed by the volatile
// in-memory store, so a new process always starts logged out.
type SessionStore interface {
	Save(ctx context.Context, session models.Session) error
	Current(ctx context.Context) (models.Session, error)
	Clear(ctx context.Context) error
}
