package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avidalm/petkeeper/internal/config"
	"github.com/avidalm/petkeeper/internal/logger"
	"github.com/avidalm/petkeeper/internal/store"
	"github.com/avidalm/petkeeper/internal/utils"
	"github.com/avidalm/petkeeper/internal/validators"
	"github.com/avidalm/petkeeper/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification and the session
// lifecycle, using an AccountRepository for persistence and bcrypt for
// password digests. bcrypt embeds a random per-account salt in the digest,
// which is why no salt is stored alongside the account.
type authService struct {
	accounts  store.AccountRepository
	pets      store.PetRepository
	sessions  store.SessionStore
	validator *validators.AccountValidator
	uuid      *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify session JWTs.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued session token.
	tokenIssuer string

	// tokenDuration controls how long a session token remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given storages and
// populated with the token parameters from cfg.
//
// The returned service is safe for concurrent use; all of its own state is
// read-only after construction.
func NewAuthService(storages *store.Storages, cfg config.Auth, log *logger.Logger) AuthService {
	return &authService{
		accounts:      storages.Accounts,
		pets:          storages.Pets,
		sessions:      storages.Sessions,
		validator:     validators.NewAccountValidator(),
		uuid:          utils.NewUUIDGenerator(),
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        log,
	}
}

// Register creates a new account and logs it in.
//
// The form is validated as a whole and any failure aborts before the first
// write, so a rejected registration never mutates the account collection.
// Duplicate username/e-mail failures reported by the repository are mapped
// onto the corresponding field so the UI shows them inline.
func (a *authService) Register(ctx context.Context, req RegisterRequest) (models.Session, error) {
	log := logger.FromContext(ctx)

	if fieldErrors := a.validator.ValidateRegistration(validators.RegisterInput{
		FullName:        req.FullName,
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	}); len(fieldErrors) > 0 {
		log.Error().Str("username", req.Username).Msg("invalid registration data provided")
		return models.Session{}, fieldErrors
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.Session{}, fmt.Errorf("hashing password failed: %w", err)
	}

	account := models.Account{
		ID:             a.uuid.Generate(),
		Username:       strings.TrimSpace(req.Username),
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordDigest: string(digest),
		FullName:       strings.TrimSpace(req.FullName),
	}

	created, err := a.accounts.CreateAccount(ctx, account)
	if err != nil {
		log.Err(err).Str("username", account.Username).Msg("account creation ended with error")
		switch {
		case errors.Is(err, store.ErrUsernameTaken):
			return models.Session{}, validators.FieldErrors{validators.FieldUsername: store.ErrUsernameTaken}
		case errors.Is(err, store.ErrEmailTaken):
			return models.Session{}, validators.FieldErrors{validators.FieldEmail: store.ErrEmailTaken}
		default:
			return models.Session{}, fmt.Errorf("account creation ended with error: %w", err)
		}
	}

	return a.openSession(ctx, created)
}

// Login authenticates an existing account by username or e-mail
// (case-insensitive) and opens a session.
//
// "Account not found" and "wrong password" are distinct field-level results:
// the first is attached to the identifier field, the second to the password
// field.
func (a *authService) Login(ctx context.Context, identifier, password string) (models.Session, error) {
	log := logger.FromContext(ctx)

	if fieldErrors := a.validator.ValidateLogin(identifier, password); len(fieldErrors) > 0 {
		return models.Session{}, fieldErrors
	}

	account, err := a.accounts.FindByIdentifier(ctx, strings.TrimSpace(identifier))
	if err != nil {
		log.Err(err).Str("identifier", identifier).Msg("account search by identifier failed")
		if errors.Is(err, store.ErrAccountNotFound) {
			return models.Session{}, validators.FieldErrors{validators.FieldIdentifier: store.ErrAccountNotFound}
		}
		return models.Session{}, fmt.Errorf("account search by identifier failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(account.PasswordDigest), []byte(password)); err != nil {
		log.Error().Str("username", account.Username).Msg("wrong password")
		return models.Session{}, validators.FieldErrors{validators.FieldPassword: ErrWrongPassword}
	}

	return a.openSession(ctx, account)
}

// Logout clears the session only; accounts and pet collections are untouched.
func (a *authService) Logout(ctx context.Context) error {
	return a.sessions.Clear(ctx)
}

// DeleteAccount removes the active user's account, their pet collection and
// the session. Asking the user for confirmation is the caller's job; by the
// time this method runs the decision has been made.
func (a *authService) DeleteAccount(ctx context.Context) error {
	session, err := a.CurrentSession(ctx)
	if err != nil {
		return err
	}

	if err = a.accounts.DeleteAccount(ctx, session.UserID); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}

	// cascade, so no orphaned pet collection stays behind
	if err = a.pets.DeleteAllPets(ctx, session.UserID); err != nil {
		a.logger.Err(err).Str("user_id", session.UserID).Msg("error deleting pet collection of removed account")
		return fmt.Errorf("delete pet collection: %w", err)
	}

	return a.sessions.Clear(ctx)
}

// CurrentSession returns the active session. A stored session whose token no
// longer validates (expired, tampered) is cleared and reported as absent.
func (a *authService) CurrentSession(ctx context.Context) (models.Session, error) {
	session, err := a.sessions.Current(ctx)
	if err != nil {
		return models.Session{}, err
	}

	if _, err = utils.ValidateAndParseJWTToken(session.Token, a.tokenSignKey, a.tokenIssuer); err != nil {
		a.logger.Warn().Err(err).Str("username", session.Username).Msg("stored session token is invalid, clearing session")
		if clearErr := a.sessions.Clear(ctx); clearErr != nil {
			return models.Session{}, clearErr
		}
		return models.Session{}, store.ErrNoActiveSession
	}

	return session, nil
}

func (a *authService) openSession(ctx context.Context, account models.Account) (models.Session, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, account.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Session{}, fmt.Errorf("generating session token failed: %w", err)
	}

	session := models.Session{
		UserID:   account.ID,
		Username: account.Username,
		Token:    token.SignedString,
	}
	if err = a.sessions.Save(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("saving session failed: %w", err)
	}

	return session, nil
}
