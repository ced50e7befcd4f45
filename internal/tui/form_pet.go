package tui

import (
	"strings"

	"github.com/avidalm/petkeeper/internal/validators"
	"github.com/avidalm/petkeeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// petFormModel is the add/edit pet form, layered over the dashboard. An
// empty editingID means the form creates a new pet; otherwise it patches the
// pet with that ID.
type petFormModel struct {
	form       overlay
	fieldNames []string
	fieldErrs  map[string]string
	generalErr string
	submitting bool
	editingID  string
}

func newPetFormModel() petFormModel {
	fields := make([]textinput.Model, 5)

	fields[0] = textinput.New()
	fields[0].Placeholder = "nombre"
	fields[0].Width = 40

	fields[1] = textinput.New()
	fields[1].Placeholder = "especie"
	fields[1].Width = 40

	fields[2] = textinput.New()
	fields[2].Placeholder = "raza"
	fields[2].Width = 40

	fields[3] = textinput.New()
	fields[3].Placeholder = "edad"
	fields[3].Width = 40

	fields[4] = textinput.New()
	fields[4].Placeholder = "imagen (url o ruta)"
	fields[4].Width = 40

	return petFormModel{
		form: newOverlay(fields),
		fieldNames: []string{
			validators.FieldPetName,
			validators.FieldPetSpecies,
			validators.FieldPetBreed,
			validators.FieldPetAge,
			validators.FieldPetImageRef,
		},
		fieldErrs: map[string]string{},
	}
}

func newPetFormModelForEdit(pet models.Pet) petFormModel {
	m := newPetFormModel()
	m.editingID = pet.ID
	m.form.inputs[0].SetValue(pet.Name)
	m.form.inputs[1].SetValue(pet.Species)
	m.form.inputs[2].SetValue(pet.Breed)
	m.form.inputs[3].SetValue(pet.Age)
	m.form.inputs[4].SetValue(pet.ImageRef)
	return m
}

func (m *petFormModel) clearFocusedFieldError() {
	delete(m.fieldErrs, m.fieldNames[m.form.focus])
	m.generalErr = ""
}

func (m *petFormModel) setErrors(err error) {
	fields, general := splitFieldErrors(err)
	m.fieldErrs = fields
	if m.fieldErrs == nil {
		m.fieldErrs = map[string]string{}
	}
	m.generalErr = general
}

func (m petFormModel) pet() models.Pet {
	return models.Pet{
		ID:       m.editingID,
		Name:     strings.TrimSpace(m.form.Value(0)),
		Species:  strings.TrimSpace(m.form.Value(1)),
		Breed:    strings.TrimSpace(m.form.Value(2)),
		Age:      strings.TrimSpace(m.form.Value(3)),
		ImageRef: strings.TrimSpace(m.form.Value(4)),
	}
}

func (m petFormModel) View() string {
	labels := []string{"Nombre   ", "Especie  ", "Raza     ", "Edad     ", "Imagen   "}

	var b strings.Builder
	b.WriteString("Campo    │ Valor\n")
	b.WriteString("─────────┼──────────────────────────────────────────\n")
	for i, label := range labels {
		b.WriteString(label)
		b.WriteString("│ [")
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("]\n")
		if e := m.fieldErrs[m.fieldNames[i]]; e != "" {
			b.WriteString("         │ ! " + e + "\n")
		}
	}

	action := "[Guardar]"
	if m.submitting {
		action = "[Guardando...]"
	}
	b.WriteString("\n")
	b.WriteString(action)
	b.WriteString("\n")

	if m.generalErr != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.generalErr)
		b.WriteString("\n")
	}

	title := "NUEVA MASCOTA"
	if m.editingID != "" {
		title = "EDITAR MASCOTA"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: cancelar │ tab: campo sig. │ enter: guardar")
}

func (m appModel) updatePetForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.list.idx = m.petForm.form.Close()
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.petForm.form.Next()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.petForm.form.Prev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.petForm.submitting {
				return m, nil
			}
			m.petForm.submitting = true
			m.petForm.generalErr = ""
			pet := m.petForm.pet()
			if m.petForm.editingID != "" {
				return m, m.cmdUpdatePet(m.petForm.editingID, pet)
			}
			return m, m.cmdCreatePet(pet)
		}

		m.petForm.clearFocusedFieldError()
	}

	cmd := m.petForm.form.Update(msg)
	return m, cmd
}
