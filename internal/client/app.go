package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/avidalm/petkeeper/internal/logger"
	"github.com/avidalm/petkeeper/internal/service"
	"github.com/avidalm/petkeeper/internal/store"
	"github.com/avidalm/petkeeper/internal/tui"
	"github.com/avidalm/petkeeper/models"
)

type App struct {
	services *service.Services
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.Services, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("services and ui are required")
	}
	return &App{services: services, tui: ui, logger: log}, nil
}

// Run drives the session lifecycle: an existing valid session goes straight
// to the dashboard, otherwise the login flow runs first. Logging out starts
// the cycle over; quitting ends it.
func (a *App) Run() error {
	ctx := context.Background()

	session, err := a.services.Auth.CurrentSession(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrNoActiveSession) {
			return fmt.Errorf("restore session: %w", err)
		}

		session, err = a.loginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}
	}

	logout, err := a.tui.MainLoop(ctx, session)
	if err != nil {
		return err
	}
	if logout {
		a.logger.Info().Str("username", session.Username).Msg("user logged out")
		return a.Run()
	}

	return nil
}

func (a *App) loginFlow(ctx context.Context) (models.Session, error) {
	session, err := a.tui.LoginFlow(ctx)
	if err != nil {
		return models.Session{}, err
	}

	a.logger.Info().Str("username", session.Username).Msg("session opened")
	return session, nil
}
