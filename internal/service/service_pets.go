package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"dario.cat/mergo"
	"github.com/avidalm/petkeeper/internal/logger"
	"github.com/avidalm/petkeeper/internal/store"
	"github.com/avidalm/petkeeper/internal/utils"
	"github.com/avidalm/petkeeper/internal/validators"
	"github.com/avidalm/petkeeper/models"
)

// petService implements PetService over a PetRepository.
//
// The "currently selected pet" cursor lives here, keyed by pet ID. Keeping
// the cursor inside the service instance (instead of a package-level
// variable) means two services never share selection state, and keying it by
// ID means the selection survives reorderings of the collection.
type petService struct {
	pets      store.PetRepository
	auth      AuthService
	validator *validators.AccountValidator
	uuid      *utils.UUIDGenerator

	mu         sync.Mutex
	selectedID string

	logger *logger.Logger
}

// NewPetService constructs a PetService. The AuthService is consulted on
// every operation to resolve the active user.
func NewPetService(storages *store.Storages, auth AuthService, log *logger.Logger) PetService {
	return &petService{
		pets:      storages.Pets,
		auth:      auth,
		validator: validators.NewAccountValidator(),
		uuid:      utils.NewUUIDGenerator(),
		logger:    log,
	}
}

// List returns the active user's pets in insertion order.
func (p *petService) List(ctx context.Context) ([]models.Pet, error) {
	userID, err := p.activeUserID(ctx)
	if err != nil {
		return nil, err
	}

	pets, err := p.pets.ListPets(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing pets failed: %w", err)
	}
	return pets, nil
}

// Create validates the given pet data, assigns it a fresh ID and appends it
// to the active user's collection.
func (p *petService) Create(ctx context.Context, pet models.Pet) (models.Pet, error) {
	log := logger.FromContext(ctx)

	userID, err := p.activeUserID(ctx)
	if err != nil {
		return models.Pet{}, err
	}

	if fieldErrors := p.validator.ValidatePet(pet); len(fieldErrors) > 0 {
		log.Error().Str("name", pet.Name).Msg("invalid pet data provided")
		return models.Pet{}, fieldErrors
	}

	pet.ID = p.uuid.Generate()
	pet.Name = strings.TrimSpace(pet.Name)
	pet.History = []models.HistoryEntry{}

	created, err := p.pets.AppendPet(ctx, userID, pet)
	if err != nil {
		return models.Pet{}, fmt.Errorf("appending pet failed: %w", err)
	}
	return created, nil
}

// Select marks the pet with the given ID as the current one and returns it.
func (p *petService) Select(ctx context.Context, petID string) (models.Pet, error) {
	userID, err := p.activeUserID(ctx)
	if err != nil {
		return models.Pet{}, err
	}

	pet, err := p.pets.GetPet(ctx, userID, petID)
	if err != nil {
		return models.Pet{}, err
	}

	p.mu.Lock()
	p.selectedID = pet.ID
	p.mu.Unlock()

	return pet, nil
}

// Selected returns the current pet, re-read from storage so the caller
// always sees the latest state. ErrNothingSelected is returned when no
// selection was made or the selected pet was deleted meanwhile.
func (p *petService) Selected(ctx context.Context) (models.Pet, error) {
	userID, err := p.activeUserID(ctx)
	if err != nil {
		return models.Pet{}, err
	}

	p.mu.Lock()
	selectedID := p.selectedID
	p.mu.Unlock()

	if selectedID == "" {
		return models.Pet{}, ErrNothingSelected
	}

	pet, err := p.pets.GetPet(ctx, userID, selectedID)
	if err != nil {
		p.clearSelection(selectedID)
		return models.Pet{}, ErrNothingSelected
	}
	return pet, nil
}

// Update merges the non-empty fields of patch into the stored pet. ID and
// history are never touched by an update; history changes go through
// AppendHistory/RemoveHistory.
func (p *petService) Update(ctx context.Context, petID string, patch models.Pet) (models.Pet, error) {
	userID, err := p.activeUserID(ctx)
	if err != nil {
		return models.Pet{}, err
	}

	current, err := p.pets.GetPet(ctx, userID, petID)
	if err != nil {
		return models.Pet{}, err
	}

	patch.ID = ""
	patch.History = nil
	if err = mergo.Merge(&current, patch, mergo.WithOverride); err != nil {
		return models.Pet{}, fmt.Errorf("merging pet patch failed: %w", err)
	}

	if fieldErrors := p.validator.ValidatePet(current); len(fieldErrors) > 0 {
		return models.Pet{}, fieldErrors
	}

	updated, err := p.pets.UpdatePet(ctx, userID, current)
	if err != nil {
		return models.Pet{}, fmt.Errorf("updating pet failed: %w", err)
	}
	return updated, nil
}

// Delete removes the pet with the given ID. Deleting the selected pet also
// clears the selection; deleting any other pet leaves it intact.
func (p *petService) Delete(ctx context.Context, petID string) error {
	userID, err := p.activeUserID(ctx)
	if err != nil {
		return err
	}

	if err = p.pets.DeletePet(ctx, userID, petID); err != nil {
		return err
	}

	p.clearSelection(petID)
	return nil
}

// AppendHistory adds a history entry with the given text to the pet and
// returns the updated pet.
func (p *petService) AppendHistory(ctx context.Context, petID, text string) (models.Pet, error) {
	userID, err := p.activeUserID(ctx)
	if err != nil {
		return models.Pet{}, err
	}

	if strings.TrimSpace(text) == "" {
		return models.Pet{}, validators.FieldErrors{validators.FieldHistoryText: validators.ErrHistoryTextRequired}
	}

	entry := models.HistoryEntry{
		ID:   p.uuid.Generate(),
		Text: strings.TrimSpace(text),
	}

	pet, err := p.pets.AppendHistory(ctx, userID, petID, entry)
	if err != nil {
		return models.Pet{}, fmt.Errorf("appending history entry failed: %w", err)
	}
	return pet, nil
}

// RemoveHistory deletes the history entry with the given ID from the pet and
// returns the updated pet.
func (p *petService) RemoveHistory(ctx context.Context, petID, entryID string) (models.Pet, error) {
	userID, err := p.activeUserID(ctx)
	if err != nil {
		return models.Pet{}, err
	}

	pet, err := p.pets.RemoveHistory(ctx, userID, petID, entryID)
	if err != nil {
		return models.Pet{}, err
	}
	return pet, nil
}

func (p *petService) activeUserID(ctx context.Context) (string, error) {
	session, err := p.auth.CurrentSession(ctx)
	if err != nil {
		return "", err
	}
	return session.UserID, nil
}

// clearSelection drops the cursor if it points at petID.
func (p *petService) clearSelection(petID string) {
	p.mu.Lock()
	if p.selectedID == petID {
		p.selectedID = ""
	}
	p.mu.Unlock()
}
