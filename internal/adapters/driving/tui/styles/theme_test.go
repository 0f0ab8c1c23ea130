package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	assert.Equal(t, lipgloss.Color("#3B82F6"), theme.Primary)
	assert.Equal(t, lipgloss.Color("#F38BA8"), theme.Error)
}

func TestNewStyles_NilThemeUsesDefault(t *testing.T) {
	s := NewStyles(nil)

	require.NotNil(t, s)
	assert.Equal(t, DefaultTheme().Primary, s.Theme().Primary)
}

func TestNewStyles_CustomTheme(t *testing.T) {
	theme := DefaultTheme()
	theme.Primary = lipgloss.Color("#FF0000")

	s := NewStyles(theme)

	assert.Equal(t, lipgloss.Color("#FF0000"), s.Theme().Primary)
}

func TestDefaultStyles(t *testing.T) {
	s := DefaultStyles()

	require.NotNil(t, s)
	// Styles render without panicking
	assert.NotPanics(t, func() {
		_ = s.Title.Render("title")
		_ = s.UserLabel.Render("You")
		_ = s.AssistantLabel.Render("Assistant")
		_ = s.Citation.Render("[1] Doc, p.1")
	})
}
