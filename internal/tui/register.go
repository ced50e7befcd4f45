package tui

import (
	"strings"

	"github.com/avidalm/petkeeper/internal/validators"
	"github.com/charmbracelet/bubbles/textinput"
)

// registerModel is the registration form: full name, username, e-mail,
// password and its confirmation. All fields are validated in a single pass
// on submit, so every broken field gets its message at once.
type registerModel struct {
	form       overlay
	fieldNames []string
	fieldErrs  map[string]string
	generalErr string
	submitting bool
}

func newRegisterModel() registerModel {
	fields := make([]textinput.Model, 5)

	fields[0] = textinput.New()
	fields[0].Placeholder = "nombre completo"
	fields[0].Width = 40

	fields[1] = textinput.New()
	fields[1].Placeholder = "usuario"
	fields[1].CharLimit = 30
	fields[1].Width = 40

	fields[2] = textinput.New()
	fields[2].Placeholder = "email"
	fields[2].CharLimit = 100
	fields[2].Width = 40

	fields[3] = textinput.New()
	fields[3].Placeholder = "contraseña"
	fields[3].EchoMode = textinput.EchoPassword
	fields[3].EchoCharacter = '*'
	fields[3].Width = 40

	fields[4] = textinput.New()
	fields[4].Placeholder = "repetir contraseña"
	fields[4].EchoMode = textinput.EchoPassword
	fields[4].EchoCharacter = '*'
	fields[4].Width = 40

	return registerModel{
		form: newOverlay(fields),
		fieldNames: []string{
			validators.FieldFullName,
			validators.FieldUsername,
			validators.FieldEmail,
			validators.FieldPassword,
			validators.FieldPasswordConfirm,
		},
		fieldErrs: map[string]string{},
	}
}

func (m *registerModel) clearFocusedFieldError() {
	delete(m.fieldErrs, m.fieldNames[m.form.focus])
	m.generalErr = ""
}

func (m *registerModel) setErrors(err error) {
	fields, general := splitFieldErrors(err)
	m.fieldErrs = fields
	if m.fieldErrs == nil {
		m.fieldErrs = map[string]string{}
	}
	m.generalErr = general
}

func (m *registerModel) reset() {
	m.form.Reset()
	m.fieldErrs = map[string]string{}
	m.generalErr = ""
	m.submitting = false
}

func (m registerModel) View() string {
	labels := []string{"Nombre         ", "Usuario        ", "Email          ", "Contraseña     ", "Repetir        "}

	var b strings.Builder
	b.WriteString("Campo          │ Valor\n")
	b.WriteString("───────────────┼────────────────────────────────────\n")
	for i, label := range labels {
		b.WriteString(label)
		b.WriteString("│ [")
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("]\n")
		if e := m.fieldErrs[m.fieldNames[i]]; e != "" {
			b.WriteString("               │ ! " + e + "\n")
		}
	}

	if m.submitting {
		b.WriteString("\n[Registrando...]\n")
	} else {
		b.WriteString("\n[Registrarse]\n")
	}

	if m.generalErr != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.generalErr)
		b.WriteString("\n")
	}

	return renderPage("REGISTRO", strings.TrimRight(b.String(), "\n"), "esc: volver │ tab: campo sig. │ enter: confirmar")
}
