package tui

import (
	"context"

	"github.com/avidalm/petkeeper/internal/logger"
	"github.com/avidalm/petkeeper/internal/service"
	"github.com/avidalm/petkeeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI owns the two interactive phases of the application: the login flow
// (welcome / login / register) and the main loop (dashboard, detail, forms).
// Each phase is its own tea.Program; the seam between them is the session.
type TUI struct {
	services  *service.Services
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.Services, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{services: services, buildInfo: buildInfo, logger: log}
}

// LoginFlow runs the welcome/login/register screens until a session is
// opened or the user quits (ErrUserQuit).
func (t *TUI) LoginFlow(ctx context.Context) (models.Session, error) {
	model := newLoginAppModel(ctx, t.services, t.buildInfo)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return models.Session{}, err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.err != nil {
		return models.Session{}, result.err
	}
	if result.resultSession.Token == "" {
		return models.Session{}, ErrUserQuit
	}

	return result.resultSession, nil
}

// MainLoop runs the dashboard for the given session. It reports
// logout=true when the user logged out (or the session expired) and the
// login flow should run again, logout=false when the user quit.
func (t *TUI) MainLoop(ctx context.Context, session models.Session) (logout bool, err error) {
	model := newMainAppModel(ctx, t.services, session, t.buildInfo)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
