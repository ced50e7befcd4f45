package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/avidalm/petkeeper/internal/service"
	"github.com/avidalm/petkeeper/internal/store"
	"github.com/avidalm/petkeeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenList
	screenDetail
	screenPetForm
)

type appMode int

const (
	modeLogin appMode = iota
	modeMain
)

// appModel is the single Bubble Tea model of the application. It routes
// every message to the current screen and layers the confirm/error/build
// info overlays on top of whatever that screen renders.
type appModel struct {
	ctx      context.Context
	services *service.Services
	mode     appMode

	currentScreen screen

	welcome  welcomeModel
	login    loginModel
	register registerModel
	list     listModel
	detail   detailModel
	petForm  petFormModel

	session models.Session
	err     error

	showError            bool
	errorOverlay         errorOverlayModel
	showConfirm          bool
	confirm              confirmModel
	pendingDeletePetID   string
	pendingDeleteAccount bool

	buildInfo     models.AppBuildInfo
	showBuildInfo bool

	logout        bool
	resultSession models.Session
}

func newLoginAppModel(ctx context.Context, services *service.Services, buildInfo models.AppBuildInfo) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		mode:          modeLogin,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		register:      newRegisterModel(),
		buildInfo:     buildInfo,
	}
}

func newMainAppModel(ctx context.Context, services *service.Services, session models.Session, buildInfo models.AppBuildInfo) appModel {
	m := newLoginAppModel(ctx, services, buildInfo)
	m.mode = modeMain
	m.session = session
	m.currentScreen = screenList
	m.list = newListModel()
	m.list.username = session.Username
	m.list.loading = true
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.mode == modeMain {
		return m.cmdLoadPets()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.enter) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
	case loginDoneMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.login.setErrors(msg.err)
			return m, nil
		}
		m.resultSession = msg.session
		return m, tea.Quit
	case registerDoneMsg:
		m.register.submitting = false
		if msg.err != nil {
			m.register.setErrors(msg.err)
			return m, nil
		}
		// registering opens a session right away, same as logging in
		m.resultSession = msg.session
		return m, tea.Quit
	case petsLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			return m.handleDashboardError(msg.err)
		}
		m.list.pets = msg.pets
		if m.list.idx >= len(m.list.pets) {
			m.list.idx = len(m.list.pets) - 1
		}
		if m.list.idx < 0 {
			m.list.idx = 0
		}
		return m, nil
	case petSelectedMsg:
		if msg.err != nil {
			return m.handleDashboardError(msg.err)
		}
		m.detail = newDetailModel(msg.pet)
		m.detail.view.Open(m.list.idx)
		m.currentScreen = screenDetail
		return m, nil
	case petSavedMsg:
		m.petForm.submitting = false
		if msg.err != nil {
			if fields, _ := splitFieldErrors(msg.err); len(fields) > 0 {
				m.petForm.setErrors(msg.err)
				return m, nil
			}
			return m.handleDashboardError(msg.err)
		}
		m.list.idx = m.petForm.form.Close()
		m.currentScreen = screenList
		m.list.loading = true
		m.list.status = "Guardado"
		return m, tea.Batch(m.cmdLoadPets(), cmdClearStatus())
	case petDeletedMsg:
		m.pendingDeletePetID = ""
		if msg.err != nil {
			return m.handleDashboardError(msg.err)
		}
		m.list.status = "Mascota eliminada"
		m.list.loading = true
		return m, tea.Batch(m.cmdLoadPets(), cmdClearStatus())
	case historyChangedMsg:
		if msg.err != nil {
			if fields, _ := splitFieldErrors(msg.err); len(fields) > 0 {
				for _, text := range fields {
					m.detail.entryErr = text
				}
				return m, nil
			}
			return m.handleDashboardError(msg.err)
		}
		m.detail.addingNote = false
		m.detail.entryErr = ""
		m.detail.entry.Close()
		m.detail.setPet(msg.pet)
		return m, nil
	case accountDeletedMsg:
		if msg.err != nil {
			return m.handleDashboardError(msg.err)
		}
		m.logout = true
		return m, tea.Quit
	case logoutDoneMsg:
		if msg.err != nil {
			return m.handleDashboardError(msg.err)
		}
		m.logout = true
		return m, tea.Quit
	case copiedMsg:
		m.detail.status = "¡Copiado!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.detail.status = ""
		m.list.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if cmd, handled := m.globalKey(keyMsg); handled {
			return m, cmd
		}
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenPetForm:
		return m.updatePetForm(msg)
	}

	return m, nil
}

// globalKey handles hotkeys that work regardless of screen. Text-entry
// screens keep their keystrokes: q must still be typeable in a form.
func (m *appModel) globalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if msg.String() == "ctrl+c" {
		m.err = ErrUserQuit
		return tea.Quit, true
	}

	switch m.currentScreen {
	case screenWelcome, screenList, screenDetail:
		if m.currentScreen == screenDetail && m.detail.addingNote {
			// q belongs to the history entry being typed
			return nil, false
		}
		if key.Matches(msg, keys.quit) {
			m.err = ErrUserQuit
			return tea.Quit, true
		}
		if msg.String() == "v" && m.currentScreen == screenWelcome {
			m.showBuildInfo = true
			return nil, true
		}
	}

	return nil, false
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenList:
		body = m.list.View()
	case screenDetail:
		body = m.detail.View()
	case screenPetForm:
		body = m.petForm.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

// handleDashboardError routes storage/session failures. A lost session sends
// the user back to the login flow instead of showing an error on a
// dashboard that can no longer load anything.
func (m appModel) handleDashboardError(err error) (tea.Model, tea.Cmd) {
	if errors.Is(err, store.ErrNoActiveSession) {
		m.logout = true
		return m, tea.Quit
	}
	m.showErrorf(humanizeError(err))
	return m, nil
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		if m.pendingDeleteAccount {
			m.pendingDeleteAccount = false
			return m, m.cmdDeleteAccount()
		}
		if m.pendingDeletePetID != "" {
			return m, m.cmdDeletePet(m.pendingDeletePetID)
		}
		return m, nil
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		// declining leaves everything untouched
		m.showConfirm = false
		m.pendingDeletePetID = ""
		m.pendingDeleteAccount = false
	}
	return m, nil
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.login.reset()
			m.login.form.Open(m.welcome.idx)
			m.currentScreen = screenLogin
		} else {
			m.register.reset()
			m.register.form.Open(m.welcome.idx)
			m.currentScreen = screenRegister
		}
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.welcome.idx = m.login.form.Close()
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login.form.Next()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login.form.Prev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			m.login.submitting = true
			m.login.generalErr = ""
			identifier := strings.TrimSpace(m.login.form.Value(0))
			password := m.login.form.Value(1)
			return m, m.cmdLogin(identifier, password)
		}

		m.login.clearFocusedFieldError()
	}

	cmd := m.login.form.Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.welcome.idx = m.register.form.Close()
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register.form.Next()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register.form.Prev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}
			m.register.submitting = true
			m.register.generalErr = ""
			return m, m.cmdRegister(service.RegisterRequest{
				FullName:        m.register.form.Value(0),
				Username:        m.register.form.Value(1),
				Email:           m.register.form.Value(2),
				Password:        m.register.form.Value(3),
				PasswordConfirm: m.register.form.Value(4),
			})
		}

		m.register.clearFocusedFieldError()
	}

	cmd := m.register.form.Update(msg)
	return m, cmd
}

func (m appModel) cmdLogin(identifier, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.Auth
	return func() tea.Msg {
		session, err := auth.Login(ctx, identifier, password)
		return loginDoneMsg{session: session, err: err}
	}
}

func (m appModel) cmdRegister(req service.RegisterRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.services.Auth
	return func() tea.Msg {
		session, err := auth.Register(ctx, req)
		return registerDoneMsg{session: session, err: err}
	}
}

func (m appModel) cmdLoadPets() tea.Cmd {
	ctx := m.ctx
	pets := m.services.Pets
	return func() tea.Msg {
		items, err := pets.List(ctx)
		return petsLoadedMsg{pets: items, err: err}
	}
}

func (m appModel) cmdSelectPet(petID string) tea.Cmd {
	ctx := m.ctx
	pets := m.services.Pets
	return func() tea.Msg {
		pet, err := pets.Select(ctx, petID)
		return petSelectedMsg{pet: pet, err: err}
	}
}

func (m appModel) cmdCreatePet(pet models.Pet) tea.Cmd {
	ctx := m.ctx
	pets := m.services.Pets
	return func() tea.Msg {
		_, err := pets.Create(ctx, pet)
		return petSavedMsg{err: err}
	}
}

func (m appModel) cmdUpdatePet(petID string, patch models.Pet) tea.Cmd {
	ctx := m.ctx
	pets := m.services.Pets
	return func() tea.Msg {
		_, err := pets.Update(ctx, petID, patch)
		return petSavedMsg{err: err}
	}
}

func (m appModel) cmdDeletePet(petID string) tea.Cmd {
	ctx := m.ctx
	pets := m.services.Pets
	return func() tea.Msg {
		err := pets.Delete(ctx, petID)
		return petDeletedMsg{err: err}
	}
}

func (m appModel) cmdAppendHistory(petID, text string) tea.Cmd {
	ctx := m.ctx
	pets := m.services.Pets
	return func() tea.Msg {
		pet, err := pets.AppendHistory(ctx, petID, text)
		return historyChangedMsg{pet: pet, err: err}
	}
}

func (m appModel) cmdRemoveHistory(petID, entryID string) tea.Cmd {
	ctx := m.ctx
	pets := m.services.Pets
	return func() tea.Msg {
		pet, err := pets.RemoveHistory(ctx, petID, entryID)
		return historyChangedMsg{pet: pet, err: err}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.services.Auth
	return func() tea.Msg {
		return logoutDoneMsg{err: auth.Logout(ctx)}
	}
}

func (m appModel) cmdDeleteAccount() tea.Cmd {
	ctx := m.ctx
	auth := m.services.Auth
	return func() tea.Msg {
		return accountDeletedMsg{err: auth.DeleteAccount(ctx)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return petsLoadedMsg{err: fmt.Errorf("copiar al portapapeles: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
