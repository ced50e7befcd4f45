package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	logout    key.Binding
	add       key.Binding
	edit      key.Binding
	delete    key.Binding
	copy      key.Binding
	newEntry  key.Binding
	dropEntry key.Binding
	dropAcct  key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:    key.NewBinding(key.WithKeys("l")),
	add:       key.NewBinding(key.WithKeys("a")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("ctrl+d")),
	copy:      key.NewBinding(key.WithKeys("c")),
	newEntry:  key.NewBinding(key.WithKeys("n")),
	dropEntry: key.NewBinding(key.WithKeys("d")),
	dropAcct:  key.NewBinding(key.WithKeys("ctrl+x")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
}
