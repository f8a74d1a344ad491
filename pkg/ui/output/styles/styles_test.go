package styles

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStylesLoaded(t *testing.T) {
	for _, name := range []string{"Target", "LinkPath", "Name", "Version", "Error", "Muted", "Bold"} {
		_, ok := StyleRegistry[name]
		assert.True(t, ok, "style %s missing from registry", name)
	}
	assert.True(t, GetStyle("Error").GetBold())
	assert.True(t, GetStyle("Name").GetBold())
}

func TestGetStyleUnknownIsPlain(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	assert.Equal(t, "text", GetStyle("NoSuchStyle").Render("text"))
}

func TestLoadStylesFromData(t *testing.T) {
	t.Cleanup(func() {
		require.NoError(t, LoadStylesFromData(embeddedStyles))
	})

	data := []byte(`
colors:
  accent:
    light: "#000000"
    dark: "#FFFFFF"
styles:
  Accent:
    foreground: accent
    italic: true
`)
	require.NoError(t, LoadStylesFromData(data))
	assert.True(t, GetStyle("Accent").GetItalic())
	assert.Equal(t, lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}, GetStyle("Accent").GetForeground())

	assert.Error(t, LoadStylesFromData([]byte("styles: [unclosed")))
}

func TestRenderWithoutColor(t *testing.T) {
	var buf bytes.Buffer
	ConfigureColor(&buf, false)

	assert.Equal(t, "../foo/cli.js", Render("Target", "../foo/cli.js"))
	assert.Equal(t, "error", Render("Error", "error"))
}

func TestIsTerminal(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, IsTerminal(&buf))
}

func TestConfigureColorRespectsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	ConfigureColor(&buf, false)
	assert.Equal(t, termenv.Ascii, lipgloss.ColorProfile())
}
