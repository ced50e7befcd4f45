package tui

import "strings"

type welcomeModel struct {
	items []string
	idx   int
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{items: []string{"Iniciar sesión", "Registrarse"}}
}

func (m welcomeModel) View() string {
	var b strings.Builder
	b.WriteString("No hay sesión iniciada\n\n")
	b.WriteString("Elige una acción:\n\n")
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor)
		b.WriteString(item)
		b.WriteString("\n")
	}

	return renderPage("PETKEEPER", strings.TrimRight(b.String(), "\n"), "enter: elegir │ ↑/↓: navegar │ v: versión │ q: salir")
}
