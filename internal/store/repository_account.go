package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/avidalm/petkeeper/internal/logger"
	"github.com/avidalm/petkeeper/models"
)

// accountsKey is the key holding the whole account collection as one JSON
// array, the way the original key-value contract defines it.
const accountsKey = "accounts"

type accountRepository struct {
	kv     KeyValue
	logger *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository] over the given
// persistent key-value store.
func NewAccountRepository(kv KeyValue, log *logger.Logger) AccountRepository {
	log.Debug().Msg("AccountRepository created")
	return &accountRepository{
		kv:     kv,
		logger: log,
	}
}

// loadAccounts reads and decodes the account collection. A missing key means
// no accounts yet; a blob that fails to parse is treated the same way so a
// corrupt store degrades to "empty" rather than tearing down the caller.
func (r *accountRepository) loadAccounts(ctx context.Context) ([]models.Account, error) {
	raw, found, err := r.kv.Get(ctx, accountsKey)
	if err != nil {
		return nil, fmt.Errorf("read account collection: %w", err)
	}
	if !found {
		return []models.Account{}, nil
	}

	var accounts []models.Account
	if err = json.Unmarshal(raw, &accounts); err != nil {
		r.logger.Warn().Err(err).Msg("account collection is corrupt, treating as empty")
		return []models.Account{}, nil
	}
	if accounts == nil {
		accounts = []models.Account{}
	}

	return accounts, nil
}

func (r *accountRepository) saveAccounts(ctx context.Context, accounts []models.Account) error {
	raw, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("encode account collection: %w", err)
	}

	if err = r.kv.Set(ctx, accountsKey, raw); err != nil {
		return fmt.Errorf("write account collection: %w", err)
	}

	return nil
}

// CreateAccount appends the account to the collection after checking the
// uniqueness invariants. Nothing is written when a duplicate is found, so a
// rejected registration leaves the collection untouched.
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	accounts, err := r.loadAccounts(ctx)
	if err != nil {
		return models.Account{}, err
	}

	for _, existing := range accounts {
		if strings.EqualFold(existing.Username, account.Username) {
			return models.Account{}, ErrUsernameTaken
		}
		if strings.EqualFold(existing.Email, account.Email) {
			return models.Account{}, ErrEmailTaken
		}
	}

	accounts = append(accounts, account)
	if err = r.saveAccounts(ctx, accounts); err != nil {
		r.logger.Err(err).Str("username", account.Username).Msg("error persisting new account")
		return models.Account{}, err
	}

	return account, nil
}

// FindByIdentifier looks an account up by username or e-mail. Both are
// compared case-insensitively, matching the login form contract.
func (r *accountRepository) FindByIdentifier(ctx context.Context, identifier string) (models.Account, error) {
	accounts, err := r.loadAccounts(ctx)
	if err != nil {
		return models.Account{}, err
	}

	for _, account := range accounts {
		if strings.EqualFold(account.Username, identifier) || strings.EqualFold(account.Email, identifier) {
			return account, nil
		}
	}

	return models.Account{}, ErrAccountNotFound
}

func (r *accountRepository) FindByID(ctx context.Context, id string) (models.Account, error) {
	accounts, err := r.loadAccounts(ctx)
	if err != nil {
		return models.Account{}, err
	}

	for _, account := range accounts {
		if account.ID == id {
			return account, nil
		}
	}

	return models.Account{}, ErrAccountNotFound
}

func (r *accountRepository) ListAccounts(ctx context.Context) ([]models.Account, error) {
	return r.loadAccounts(ctx)
}

// DeleteAccount removes the account with the given ID. Removing an account
// that does not exist is reported with ErrAccountNotFound and writes nothing.
func (r *accountRepository) DeleteAccount(ctx context.Context, id string) error {
	accounts, err := r.loadAccounts(ctx)
	if err != nil {
		return err
	}

	remaining := accounts[:0:0]
	found := false
	for _, account := range accounts {
		if account.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, account)
	}
	if !found {
		return ErrAccountNotFound
	}

	return r.saveAccounts(ctx, remaining)
}
