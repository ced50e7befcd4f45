package tui

type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	content := m.message + "\n\n"
	content += "y sí    n no"
	return overlayBoxStyle.Render(content)
}
