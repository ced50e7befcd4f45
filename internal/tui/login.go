package tui

import (
	"strings"

	"github.com/avidalm/petkeeper/internal/validators"
	"github.com/charmbracelet/bubbles/textinput"
)

// loginModel is the login form: identifier (username or e-mail) plus
// password. Validation failures arrive as field errors and are rendered next
// to the offending input; editing a field clears its error.
type loginModel struct {
	form       overlay
	fieldNames []string
	fieldErrs  map[string]string
	generalErr string
	submitting bool
}

func newLoginModel() loginModel {
	identifier := textinput.New()
	identifier.Placeholder = "usuario o email"
	identifier.CharLimit = 100
	identifier.Width = 40

	password := textinput.New()
	password.Placeholder = "contraseña"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return loginModel{
		form:       newOverlay([]textinput.Model{identifier, password}),
		fieldNames: []string{validators.FieldIdentifier, validators.FieldPassword},
		fieldErrs:  map[string]string{},
	}
}

// clearFocusedFieldError drops the inline error of the input being edited.
func (m *loginModel) clearFocusedFieldError() {
	delete(m.fieldErrs, m.fieldNames[m.form.focus])
	m.generalErr = ""
}

func (m *loginModel) setErrors(err error) {
	fields, general := splitFieldErrors(err)
	m.fieldErrs = fields
	if m.fieldErrs == nil {
		m.fieldErrs = map[string]string{}
	}
	m.generalErr = general
}

func (m *loginModel) reset() {
	m.form.Reset()
	m.fieldErrs = map[string]string{}
	m.generalErr = ""
	m.submitting = false
}

func (m loginModel) fieldError(name string) string {
	return m.fieldErrs[name]
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString("Campo       │ Valor\n")
	b.WriteString("────────────┼────────────────────────────────────────────\n")
	b.WriteString("Usuario     │ [")
	b.WriteString(m.form.inputs[0].View())
	b.WriteString("]\n")
	if e := m.fieldError(validators.FieldIdentifier); e != "" {
		b.WriteString("            │ ! " + e + "\n")
	}
	b.WriteString("Contraseña  │ [")
	b.WriteString(m.form.inputs[1].View())
	b.WriteString("]\n")
	if e := m.fieldError(validators.FieldPassword); e != "" {
		b.WriteString("            │ ! " + e + "\n")
	}

	if m.submitting {
		b.WriteString("\n[Entrando...]\n")
	} else {
		b.WriteString("\n[Entrar]\n")
	}

	if m.generalErr != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.generalErr)
		b.WriteString("\n")
	}

	return renderPage("INICIAR SESIÓN", strings.TrimRight(b.String(), "\n"), "esc: volver │ tab: campo sig. │ enter: confirmar")
}
