package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// overlay manages the keyboard focus of a modal form layered over a screen.
//
// Opening records the focus position of the screen below and moves focus to
// the overlay's first input; closing restores the recorded position. Tab and
// shift+tab cycle across the overlay's inputs with first/last wrap. An
// overlay with no inputs still participates: it swallows focus movement
// instead of letting it fall through to the screen below.
//
// One overlay at a time: the models open a new one only after closing the
// previous, nothing here enforces it.
type overlay struct {
	inputs []textinput.Model
	focus  int

	open      bool
	prevFocus int
}

func newOverlay(inputs []textinput.Model) overlay {
	return overlay{inputs: inputs}
}

// Open shows the overlay, remembering screenFocus so Close can hand it back.
func (o *overlay) Open(screenFocus int) {
	o.open = true
	o.prevFocus = screenFocus
	o.focus = 0
	for i := range o.inputs {
		o.inputs[i].Blur()
	}
	if len(o.inputs) > 0 {
		o.inputs[0].Focus()
	}
}

// Close hides the overlay and returns the focus position recorded at Open.
func (o *overlay) Close() int {
	o.open = false
	for i := range o.inputs {
		o.inputs[i].Blur()
	}
	return o.prevFocus
}

// Next moves focus to the following input, wrapping from last to first.
func (o *overlay) Next() {
	if len(o.inputs) == 0 {
		return
	}
	o.inputs[o.focus].Blur()
	o.focus = (o.focus + 1) % len(o.inputs)
	o.inputs[o.focus].Focus()
}

// Prev moves focus to the preceding input, wrapping from first to last.
func (o *overlay) Prev() {
	if len(o.inputs) == 0 {
		return
	}
	o.inputs[o.focus].Blur()
	o.focus = (o.focus - 1 + len(o.inputs)) % len(o.inputs)
	o.inputs[o.focus].Focus()
}

// Update forwards the message to the focused input.
func (o *overlay) Update(msg tea.Msg) tea.Cmd {
	if len(o.inputs) == 0 {
		return nil
	}
	var cmd tea.Cmd
	o.inputs[o.focus], cmd = o.inputs[o.focus].Update(msg)
	return cmd
}

// Value returns the current value of input i.
func (o *overlay) Value(i int) string {
	return o.inputs[i].Value()
}

// Reset clears every input and puts focus back on the first one.
func (o *overlay) Reset() {
	for i := range o.inputs {
		o.inputs[i].SetValue("")
		o.inputs[i].Blur()
	}
	o.focus = 0
	if o.open && len(o.inputs) > 0 {
		o.inputs[0].Focus()
	}
}
