// Package service contains the application logic sitting between the TUI
// and the storage layer: account lifecycle, session handling and pet
// collection management.
package service

import (
	"github.com/avidalm/petkeeper/internal/config"
	"github.com/avidalm/petkeeper/internal/logger"
	"github.com/avidalm/petkeeper/internal/store"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Services bundles every application service behind one handle.
type Services struct {
	Auth AuthService
	Pets PetService
}

// NewServices wires the services to the given storages.
func NewServices(storages *store.Storages, cfg config.Auth, log *logger.Logger) *Services {
	auth := NewAuthService(storages, cfg, log)
	return &Services{
		Auth: auth,
		Pets: NewPetService(storages, auth, log),
	}
}
