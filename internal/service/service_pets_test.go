package service

import (
	"context"
	"testing"

	"github.com/avidalm/petkeeper/internal/logger"
	"github.com/avidalm/petkeeper/internal/store"
	"github.com/avidalm/petkeeper/internal/validators"
	"github.com/avidalm/petkeeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServices builds real services over in-memory storage and logs a
// user in, so pet operations run with an active session.
func newTestServices(t *testing.T) (*Services, models.Session) {
	t.Helper()
	ctx := context.Background()
	log := logger.Nop()

	kv := store.NewMemoryKeyValue()
	storages := &store.Storages{
		Accounts: store.NewAccountRepository(kv, log),
		Pets:     store.NewPetRepository(kv, log),
		Sessions: store.NewSessionStore(store.NewMemoryKeyValue(), log),
	}
	services := NewServices(storages, testAuthCfg, log)

	session, err := services.Auth.Register(ctx, RegisterRequest{
		FullName:        "Ana García",
		Username:        "ana",
		Email:           "ana@example.com",
		Password:        "secreta1",
		PasswordConfirm: "secreta1",
	})
	require.NoError(t, err)

	return services, session
}

func rexInput() models.Pet {
	return models.Pet{
		Name:     "Rex",
		Species:  "Perro",
		Breed:    "Pastor Alemán",
		Age:      "3 años",
		ImageRef: "rex.jpg",
	}
}

func TestPetService_CreateAndList(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	pets, err := services.Pets.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, pets)

	rex, err := services.Pets.Create(ctx, rexInput())
	require.NoError(t, err)
	assert.NotEmpty(t, rex.ID)
	assert.Equal(t, "Rex", rex.Name)
	assert.NotNil(t, rex.History)
	assert.Empty(t, rex.History)

	luna, err := services.Pets.Create(ctx, models.Pet{
		Name: "Luna", Species: "Gato", Breed: "Siamés", Age: "2 años", ImageRef: "luna.jpg",
	})
	require.NoError(t, err)
	assert.NotEqual(t, rex.ID, luna.ID)

	pets, err = services.Pets.List(ctx)
	require.NoError(t, err)
	require.Len(t, pets, 2)
	// insertion order is preserved
	assert.Equal(t, "Rex", pets[0].Name)
	assert.Equal(t, "Luna", pets[1].Name)
}

func TestPetService_Create_InvalidData(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	_, err := services.Pets.Create(ctx, models.Pet{Name: "Rex"})
	require.Error(t, err)

	var fieldErrors validators.FieldErrors
	require.ErrorAs(t, err, &fieldErrors)
	assert.ErrorIs(t, fieldErrors[validators.FieldPetSpecies], validators.ErrPetSpeciesRequired)
	assert.ErrorIs(t, fieldErrors[validators.FieldPetBreed], validators.ErrPetBreedRequired)

	pets, err := services.Pets.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, pets)
}

func TestPetService_SelectAndSelected(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	_, err := services.Pets.Selected(ctx)
	assert.ErrorIs(t, err, ErrNothingSelected)

	rex, err := services.Pets.Create(ctx, rexInput())
	require.NoError(t, err)

	selected, err := services.Pets.Select(ctx, rex.ID)
	require.NoError(t, err)
	assert.Equal(t, rex.ID, selected.ID)

	// Selected re-reads storage, so later changes are visible
	_, err = services.Pets.AppendHistory(ctx, rex.ID, "Vacunado")
	require.NoError(t, err)

	selected, err = services.Pets.Selected(ctx)
	require.NoError(t, err)
	require.Len(t, selected.History, 1)
	assert.Equal(t, "Vacunado", selected.History[0].Text)
}

func TestPetService_Select_UnknownID(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	_, err := services.Pets.Select(ctx, "no-existe")
	assert.ErrorIs(t, err, store.ErrPetNotFound)
}

func TestPetService_Update_MergesPatch(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	rex, err := services.Pets.Create(ctx, rexInput())
	require.NoError(t, err)
	_, err = services.Pets.AppendHistory(ctx, rex.ID, "Vacunado")
	require.NoError(t, err)

	updated, err := services.Pets.Update(ctx, rex.ID, models.Pet{Age: "4 años"})
	require.NoError(t, err)

	// only the patched field changed; identity and history survive
	assert.Equal(t, rex.ID, updated.ID)
	assert.Equal(t, "Rex", updated.Name)
	assert.Equal(t, "4 años", updated.Age)
	require.Len(t, updated.History, 1)
}

func TestPetService_Update_UnknownID(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	_, err := services.Pets.Update(ctx, "no-existe", models.Pet{Age: "4 años"})
	assert.ErrorIs(t, err, store.ErrPetNotFound)
}

func TestPetService_Delete(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	rex, err := services.Pets.Create(ctx, rexInput())
	require.NoError(t, err)
	luna, err := services.Pets.Create(ctx, models.Pet{
		Name: "Luna", Species: "Gato", Breed: "Siamés", Age: "2 años", ImageRef: "luna.jpg",
	})
	require.NoError(t, err)

	// deleting a non-selected pet keeps the selection
	_, err = services.Pets.Select(ctx, luna.ID)
	require.NoError(t, err)
	require.NoError(t, services.Pets.Delete(ctx, rex.ID))

	selected, err := services.Pets.Selected(ctx)
	require.NoError(t, err)
	assert.Equal(t, luna.ID, selected.ID)

	// deleting the selected pet clears the selection
	require.NoError(t, services.Pets.Delete(ctx, luna.ID))
	_, err = services.Pets.Selected(ctx)
	assert.ErrorIs(t, err, ErrNothingSelected)

	pets, err := services.Pets.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, pets)
}

func TestPetService_History(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	rex, err := services.Pets.Create(ctx, rexInput())
	require.NoError(t, err)

	withFirst, err := services.Pets.AppendHistory(ctx, rex.ID, "Vacunado")
	require.NoError(t, err)
	require.Len(t, withFirst.History, 1)
	assert.NotEmpty(t, withFirst.History[0].ID)

	withSecond, err := services.Pets.AppendHistory(ctx, rex.ID, "Desparasitado")
	require.NoError(t, err)
	require.Len(t, withSecond.History, 2)
	assert.Equal(t, "Vacunado", withSecond.History[0].Text)
	assert.Equal(t, "Desparasitado", withSecond.History[1].Text)

	afterRemove, err := services.Pets.RemoveHistory(ctx, rex.ID, withFirst.History[0].ID)
	require.NoError(t, err)
	require.Len(t, afterRemove.History, 1)
	assert.Equal(t, "Desparasitado", afterRemove.History[0].Text)

	// removing the same entry again fails and leaves the list untouched
	_, err = services.Pets.RemoveHistory(ctx, rex.ID, withFirst.History[0].ID)
	assert.ErrorIs(t, err, store.ErrHistoryEntryNotFound)

	current, err := services.Pets.Select(ctx, rex.ID)
	require.NoError(t, err)
	require.Len(t, current.History, 1)
}

func TestPetService_AppendHistory_EmptyText(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	rex, err := services.Pets.Create(ctx, rexInput())
	require.NoError(t, err)

	_, err = services.Pets.AppendHistory(ctx, rex.ID, "   ")
	require.Error(t, err)

	var fieldErrors validators.FieldErrors
	require.ErrorAs(t, err, &fieldErrors)
	assert.ErrorIs(t, fieldErrors[validators.FieldHistoryText], validators.ErrHistoryTextRequired)
}

func TestPetService_RequiresSession(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	rex, err := services.Pets.Create(ctx, rexInput())
	require.NoError(t, err)
	require.NoError(t, services.Auth.Logout(ctx))

	_, err = services.Pets.List(ctx)
	assert.ErrorIs(t, err, store.ErrNoActiveSession)
	_, err = services.Pets.Create(ctx, rexInput())
	assert.ErrorIs(t, err, store.ErrNoActiveSession)
	_, err = services.Pets.Update(ctx, rex.ID, models.Pet{Age: "5 años"})
	assert.ErrorIs(t, err, store.ErrNoActiveSession)
	err = services.Pets.Delete(ctx, rex.ID)
	assert.ErrorIs(t, err, store.ErrNoActiveSession)
	_, err = services.Pets.AppendHistory(ctx, rex.ID, "Vacunado")
	assert.ErrorIs(t, err, store.ErrNoActiveSession)
}

func TestPetService_CollectionsAreScopedByUser(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	_, err := services.Pets.Create(ctx, rexInput())
	require.NoError(t, err)

	// second user starts with an empty collection
	_, err = services.Auth.Register(ctx, RegisterRequest{
		FullName:        "Benito Pérez",
		Username:        "benito",
		Email:           "benito@example.com",
		Password:        "secreta2",
		PasswordConfirm: "secreta2",
	})
	require.NoError(t, err)

	pets, err := services.Pets.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, pets)

	// ana's collection is still intact
	_, err = services.Auth.Login(ctx, "ana", "secreta1")
	require.NoError(t, err)
	pets, err = services.Pets.List(ctx)
	require.NoError(t, err)
	assert.Len(t, pets, 1)
}

func TestAuthService_DeleteAccount_RemovesPetCollection(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	_, err := services.Pets.Create(ctx, rexInput())
	require.NoError(t, err)

	require.NoError(t, services.Auth.DeleteAccount(ctx))

	_, err = services.Auth.CurrentSession(ctx)
	assert.ErrorIs(t, err, store.ErrNoActiveSession)

	// logging in again is impossible and the old collection is gone
	_, err = services.Auth.Login(ctx, "ana", "secreta1")
	var fieldErrors validators.FieldErrors
	require.ErrorAs(t, err, &fieldErrors)
	assert.ErrorIs(t, fieldErrors[validators.FieldIdentifier], store.ErrAccountNotFound)
}
