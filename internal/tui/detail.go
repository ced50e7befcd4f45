package tui

import (
	"fmt"
	"strings"

	"github.com/avidalm/petkeeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// detailModel shows one pet and its history. The view itself is an overlay
// with no inputs (it only swallows focus movement); adding a history entry
// opens a one-input overlay on top of it.
type detailModel struct {
	view  overlay
	entry overlay

	pet        models.Pet
	histIdx    int
	status     string
	entryErr   string
	addingNote bool
}

func newDetailModel(pet models.Pet) detailModel {
	text := textinput.New()
	text.Placeholder = "nueva entrada del historial"
	text.CharLimit = 200
	text.Width = 46

	return detailModel{
		view:  newOverlay(nil),
		entry: newOverlay([]textinput.Model{text}),
		pet:   pet,
	}
}

// summary is the text copied to the clipboard from the detail view.
func (m detailModel) summary() string {
	return fmt.Sprintf("%s (%s, %s), %s", m.pet.Name, m.pet.Species, m.pet.Breed, m.pet.Age)
}

func (m detailModel) currentEntry() (models.HistoryEntry, bool) {
	if len(m.pet.History) == 0 || m.histIdx < 0 || m.histIdx >= len(m.pet.History) {
		return models.HistoryEntry{}, false
	}
	return m.pet.History[m.histIdx], true
}

func (m *detailModel) setPet(pet models.Pet) {
	m.pet = pet
	if m.histIdx >= len(pet.History) {
		m.histIdx = len(pet.History) - 1
	}
	if m.histIdx < 0 {
		m.histIdx = 0
	}
}

func (m detailModel) View() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Nombre   : %s\n", m.pet.Name))
	b.WriteString(fmt.Sprintf("Especie  : %s\n", m.pet.Species))
	b.WriteString(fmt.Sprintf("Raza     : %s\n", m.pet.Breed))
	b.WriteString(fmt.Sprintf("Edad     : %s\n", valueOrDash(m.pet.Age)))
	b.WriteString(fmt.Sprintf("Imagen   : %s\n", valueOrDash(m.pet.ImageRef)))
	b.WriteString("\nHistorial:\n")

	if len(m.pet.History) == 0 {
		b.WriteString("  (sin entradas)\n")
	} else {
		for i, entry := range m.pet.History {
			cursor := "  "
			if i == m.histIdx {
				cursor = "> "
			}
			b.WriteString(cursor)
			b.WriteString(fitText(entry.Text, 50))
			b.WriteString("\n")
		}
	}

	if m.addingNote {
		b.WriteString("\nNueva entrada: [")
		b.WriteString(m.entry.inputs[0].View())
		b.WriteString("]\n")
		if m.entryErr != "" {
			b.WriteString("! " + m.entryErr + "\n")
		}
		return renderPage("FICHA DE "+strings.ToUpper(m.pet.Name), strings.TrimRight(b.String(), "\n"), "enter: guardar │ esc: cancelar")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return renderPage(
		"FICHA DE "+strings.ToUpper(m.pet.Name),
		strings.TrimRight(b.String(), "\n"),
		"n: nueva entrada │ d: borrar entrada │ c: copiar │ e: editar │ ↑/↓: historial │ esc: volver",
	)
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.detail.addingNote {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.detail.addingNote = false
			m.detail.entryErr = ""
			m.detail.entry.Close()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			text := strings.TrimSpace(m.detail.entry.Value(0))
			return m, m.cmdAppendHistory(m.detail.pet.ID, text)
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
			// single input, nowhere to go
			return m, nil
		}
		m.detail.entryErr = ""
		cmd := m.detail.entry.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.list.idx = m.detail.view.Close()
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.up):
		if m.detail.histIdx > 0 {
			m.detail.histIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.detail.histIdx < len(m.detail.pet.History)-1 {
			m.detail.histIdx++
		}
	case key.Matches(keyMsg, keys.newEntry):
		m.detail.addingNote = true
		m.detail.entry.Reset()
		m.detail.entry.Open(m.detail.histIdx)
	case key.Matches(keyMsg, keys.dropEntry):
		entry, ok := m.detail.currentEntry()
		if !ok {
			m.detail.status = "No hay entradas"
			return m, nil
		}
		return m, m.cmdRemoveHistory(m.detail.pet.ID, entry.ID)
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(m.detail.summary())
	case key.Matches(keyMsg, keys.edit):
		m.petForm = newPetFormModelForEdit(m.detail.pet)
		m.petForm.form.Open(m.list.idx)
		m.currentScreen = screenPetForm
	case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
		// no focusable inputs here; swallow instead of leaking to the list
		m.detail.view.Next()
	}

	return m, nil
}
