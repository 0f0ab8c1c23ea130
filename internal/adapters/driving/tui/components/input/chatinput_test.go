package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChatInput(t *testing.T) {
	ci := NewChatInput(nil)

	require.NotNil(t, ci)
	assert.Equal(t, "", ci.Value())
	assert.True(t, ci.Focused())
}

func TestChatInput_SetValue(t *testing.T) {
	ci := NewChatInput(nil)

	ci.SetValue("what is react")

	assert.Equal(t, "what is react", ci.Value())
}

func TestChatInput_Update_Typing(t *testing.T) {
	ci := NewChatInput(nil)

	for _, r := range "hi" {
		ci, _ = ci.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	assert.Equal(t, "hi", ci.Value())
}

func TestChatInput_FocusBlur(t *testing.T) {
	ci := NewChatInput(nil)

	ci.Blur()
	assert.False(t, ci.Focused())

	ci.Focus()
	assert.True(t, ci.Focused())
}

func TestChatInput_Reset(t *testing.T) {
	ci := NewChatInput(nil)
	ci.SetValue("draft")

	ci.Reset()

	assert.Equal(t, "", ci.Value())
}

func TestChatInput_SetWidth(t *testing.T) {
	ci := NewChatInput(nil)

	ci.SetWidth(120)
	assert.Equal(t, 120, ci.Width())

	// Narrow widths are clamped internally
	ci.SetWidth(10)
	assert.Equal(t, 10, ci.Width())
}

func TestChatInput_View(t *testing.T) {
	ci := NewChatInput(nil)

	view := ci.View()

	assert.Contains(t, view, "You:")
}
