package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOverlay(n int) overlay {
	inputs := make([]textinput.Model, n)
	for i := range inputs {
		inputs[i] = textinput.New()
	}
	return newOverlay(inputs)
}

func TestOverlay_OpenFocusesFirstInput(t *testing.T) {
	o := newTestOverlay(3)

	o.Open(7)

	assert.True(t, o.open)
	assert.Equal(t, 0, o.focus)
	assert.True(t, o.inputs[0].Focused())
	assert.False(t, o.inputs[1].Focused())
}

func TestOverlay_CloseRestoresPreviousFocus(t *testing.T) {
	o := newTestOverlay(3)

	o.Open(7)
	o.Next()

	restored := o.Close()

	assert.Equal(t, 7, restored)
	assert.False(t, o.open)
	for i := range o.inputs {
		assert.False(t, o.inputs[i].Focused())
	}
}

func TestOverlay_NextWrapsLastToFirst(t *testing.T) {
	o := newTestOverlay(3)
	o.Open(0)

	o.Next()
	o.Next()
	assert.Equal(t, 2, o.focus)

	o.Next()
	assert.Equal(t, 0, o.focus)
	assert.True(t, o.inputs[0].Focused())
	assert.False(t, o.inputs[2].Focused())
}

func TestOverlay_PrevWrapsFirstToLast(t *testing.T) {
	o := newTestOverlay(3)
	o.Open(0)

	o.Prev()
	assert.Equal(t, 2, o.focus)
	assert.True(t, o.inputs[2].Focused())
}

func TestOverlay_NoInputsSwallowsFocusMovement(t *testing.T) {
	o := newTestOverlay(0)
	o.Open(4)

	// must not panic and must not change anything
	o.Next()
	o.Prev()
	assert.Nil(t, o.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}))

	assert.Equal(t, 4, o.Close())
}

func TestOverlay_UpdateReachesFocusedInput(t *testing.T) {
	o := newTestOverlay(2)
	o.Open(0)
	o.Next()

	o.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hola")})

	assert.Equal(t, "", o.Value(0))
	assert.Equal(t, "hola", o.Value(1))
}

func TestOverlay_ResetClearsValues(t *testing.T) {
	o := newTestOverlay(2)
	o.Open(0)
	o.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("rex")})
	require.Equal(t, "rex", o.Value(0))

	o.Reset()

	assert.Equal(t, "", o.Value(0))
	assert.Equal(t, 0, o.focus)
	assert.True(t, o.inputs[0].Focused())
}

func TestOverlay_ReopenRecordsNewScreenFocus(t *testing.T) {
	o := newTestOverlay(1)

	o.Open(2)
	assert.Equal(t, 2, o.Close())

	o.Open(5)
	assert.Equal(t, 5, o.Close())
}
