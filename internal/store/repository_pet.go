package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/avidalm/petkeeper/internal/logger"
	"github.com/avidalm/petkeeper/models"
)

// recordsKey derives the storage key of one user's pet collection. One
// collection per account, created lazily on first write.
func recordsKey(userID string) string {
	return "records:" + userID
}

type petRepository struct {
	kv     KeyValue
	logger *logger.Logger
}

// NewPetRepository constructs a [PetRepository] over the given persistent
// key-value store.
func NewPetRepository(kv KeyValue, log *logger.Logger) PetRepository {
	log.Debug().Msg("PetRepository created")
	return &petRepository{
		kv:     kv,
		logger: log,
	}
}

func (r *petRepository) loadPets(ctx context.Context, userID string) ([]models.Pet, error) {
	raw, found, err := r.kv.Get(ctx, recordsKey(userID))
	if err != nil {
		return nil, fmt.Errorf("read pet collection: %w", err)
	}
	if !found {
		return []models.Pet{}, nil
	}

	var pets []models.Pet
	if err = json.Unmarshal(raw, &pets); err != nil {
		r.logger.Warn().Err(err).Str("user_id", userID).Msg("pet collection is corrupt, treating as empty")
		return []models.Pet{}, nil
	}
	if pets == nil {
		pets = []models.Pet{}
	}

	return pets, nil
}

func (r *petRepository) savePets(ctx context.Context, userID string, pets []models.Pet) error {
	raw, err := json.Marshal(pets)
	if err != nil {
		return fmt.Errorf("encode pet collection: %w", err)
	}

	if err = r.kv.Set(ctx, recordsKey(userID), raw); err != nil {
		return fmt.Errorf("write pet collection: %w", err)
	}

	return nil
}

// indexOf returns the position of petID within pets, or -1.
func indexOf(pets []models.Pet, petID string) int {
	for i := range pets {
		if pets[i].ID == petID {
			return i
		}
	}
	return -1
}

// ListPets returns the user's pets in insertion order. A user with no
// collection yet gets an empty slice, not an error.
func (r *petRepository) ListPets(ctx context.Context, userID string) ([]models.Pet, error) {
	return r.loadPets(ctx, userID)
}

// AppendPet adds the pet to the end of the user's collection.
func (r *petRepository) AppendPet(ctx context.Context, userID string, pet models.Pet) (models.Pet, error) {
	pets, err := r.loadPets(ctx, userID)
	if err != nil {
		return models.Pet{}, err
	}

	if pet.History == nil {
		pet.History = []models.HistoryEntry{}
	}

	pets = append(pets, pet)
	if err = r.savePets(ctx, userID, pets); err != nil {
		r.logger.Err(err).Str("user_id", userID).Msg("error persisting new pet")
		return models.Pet{}, err
	}

	return pet, nil
}

func (r *petRepository) GetPet(ctx context.Context, userID, petID string) (models.Pet, error) {
	pets, err := r.loadPets(ctx, userID)
	if err != nil {
		return models.Pet{}, err
	}

	i := indexOf(pets, petID)
	if i < 0 {
		return models.Pet{}, ErrPetNotFound
	}

	return pets[i], nil
}

// UpdatePet replaces the stored pet that shares pet.ID, keeping its position
// in the display order. The caller is responsible for having merged the
// history; the repository writes the record as given.
func (r *petRepository) UpdatePet(ctx context.Context, userID string, pet models.Pet) (models.Pet, error) {
	pets, err := r.loadPets(ctx, userID)
	if err != nil {
		return models.Pet{}, err
	}

	i := indexOf(pets, pet.ID)
	if i < 0 {
		return models.Pet{}, ErrPetNotFound
	}

	pets[i] = pet
	if err = r.savePets(ctx, userID, pets); err != nil {
		return models.Pet{}, err
	}

	return pet, nil
}

// DeletePet removes the pet; pets after it shift down one display position.
func (r *petRepository) DeletePet(ctx context.Context, userID, petID string) error {
	pets, err := r.loadPets(ctx, userID)
	if err != nil {
		return err
	}

	i := indexOf(pets, petID)
	if i < 0 {
		return ErrPetNotFound
	}

	pets = append(pets[:i], pets[i+1:]...)
	return r.savePets(ctx, userID, pets)
}

// AppendHistory adds one entry to the end of the pet's history and returns
// the updated pet.
func (r *petRepository) AppendHistory(ctx context.Context, userID, petID string, entry models.HistoryEntry) (models.Pet, error) {
	pets, err := r.loadPets(ctx, userID)
	if err != nil {
		return models.Pet{}, err
	}

	i := indexOf(pets, petID)
	if i < 0 {
		return models.Pet{}, ErrPetNotFound
	}

	pets[i].History = append(pets[i].History, entry)
	if err = r.savePets(ctx, userID, pets); err != nil {
		return models.Pet{}, err
	}

	return pets[i], nil
}

// RemoveHistory deletes one history entry by ID and returns the updated pet.
func (r *petRepository) RemoveHistory(ctx context.Context, userID, petID, entryID string) (models.Pet, error) {
	pets, err := r.loadPets(ctx, userID)
	if err != nil {
		return models.Pet{}, err
	}

	i := indexOf(pets, petID)
	if i < 0 {
		return models.Pet{}, ErrPetNotFound
	}

	history := pets[i].History
	entryIdx := -1
	for j := range history {
		if history[j].ID == entryID {
			entryIdx = j
			break
		}
	}
	if entryIdx < 0 {
		return models.Pet{}, ErrHistoryEntryNotFound
	}

	pets[i].History = append(history[:entryIdx], history[entryIdx+1:]...)
	if err = r.savePets(ctx, userID, pets); err != nil {
		return models.Pet{}, err
	}

	return pets[i], nil
}

// DeleteAllPets drops the user's whole collection. Used when an account is
// deleted so no orphaned collection stays behind.
func (r *petRepository) DeleteAllPets(ctx context.Context, userID string) error {
	if err := r.kv.Delete(ctx, recordsKey(userID)); err != nil {
		return fmt.Errorf("delete pet collection: %w", err)
	}
	return nil
}
