package tui

import (
	"fmt"
	"strings"

	"github.com/avidalm/petkeeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// listModel is the dashboard: the active user's pets in insertion order.
type listModel struct {
	username string
	pets     []models.Pet
	idx      int
	loading  bool
	status   string
}

func newListModel() listModel {
	return listModel{}
}

func (m listModel) current() (models.Pet, bool) {
	if len(m.pets) == 0 || m.idx < 0 || m.idx >= len(m.pets) {
		return models.Pet{}, false
	}
	return m.pets[m.idx], true
}

func (m listModel) View() string {
	var b strings.Builder

	b.WriteString("Sesión iniciada como ")
	b.WriteString(m.username)
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Cargando mascotas...\n")
		return renderPage("MIS MASCOTAS", strings.TrimRight(b.String(), "\n"), listHotKeys)
	}

	if m.status != "" {
		b.WriteString("Estado: ")
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}

	if len(m.pets) == 0 {
		b.WriteString("Aún no has registrado mascotas\n")
		return renderPage("MIS MASCOTAS", strings.TrimRight(b.String(), "\n"), listHotKeys)
	}

	b.WriteString("    │ Nombre                │ Especie        │ Edad\n")
	b.WriteString("────┼───────────────────────┼────────────────┼──────────────\n")
	for i, pet := range m.pets {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf(
			"%s %-2d│ %-21s │ %-14s │ %s\n",
			cursor,
			i+1,
			fitText(pet.Name, 21),
			fitText(pet.Species, 14),
			valueOrDash(pet.Age),
		))
	}

	return renderPage("MIS MASCOTAS", strings.TrimRight(b.String(), "\n"), listHotKeys)
}

const listHotKeys = "a: añadir │ enter: ver │ e: editar │ ctrl+d: eliminar │ l: cerrar sesión │ ctrl+x: borrar cuenta"

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.pets)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.add):
		m.petForm = newPetFormModel()
		m.petForm.form.Open(m.list.idx)
		m.currentScreen = screenPetForm
	case key.Matches(keyMsg, keys.edit):
		pet, ok := m.list.current()
		if !ok {
			m.list.status = "No hay mascotas"
			return m, nil
		}
		m.petForm = newPetFormModelForEdit(pet)
		m.petForm.form.Open(m.list.idx)
		m.currentScreen = screenPetForm
	case key.Matches(keyMsg, keys.enter):
		pet, ok := m.list.current()
		if !ok {
			m.list.status = "No hay mascotas"
			return m, nil
		}
		return m, m.cmdSelectPet(pet.ID)
	case key.Matches(keyMsg, keys.delete):
		pet, ok := m.list.current()
		if !ok {
			m.list.status = "No hay mascotas"
			return m, nil
		}
		m.showConfirm = true
		m.confirm = confirmModel{message: "¿Eliminar a \"" + pet.Name + "\"?"}
		m.pendingDeletePetID = pet.ID
	case key.Matches(keyMsg, keys.dropAcct):
		m.showConfirm = true
		m.confirm = confirmModel{message: "¿Borrar tu cuenta y todas tus mascotas?"}
		m.pendingDeleteAccount = true
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	}

	return m, nil
}
