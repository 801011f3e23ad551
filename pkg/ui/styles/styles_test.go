package styles_test

import (
	"os"
	"testing"

	"github.com/arthur-debert/chatstyle/pkg/ui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleRegistry(t *testing.T) {
	expected := []string{
		"Header", "SubHeader", "Success", "Warning", "Error",
		"Muted", "MutedItalic", "Bold", "StyleName", "Slot",
		"Trigger", "Key", "Indent", "Absent", "Suppressed",
	}

	for _, name := range expected {
		t.Run(name, func(t *testing.T) {
			_, exists := styles.StyleRegistry[name]
			assert.True(t, exists, "style %s should exist in registry", name)
		})
	}
}

func TestStyleProperties(t *testing.T) {
	assert.True(t, styles.GetStyle("Header").GetBold())
	assert.Equal(t, 1, styles.GetStyle("Header").GetMarginBottom())
	assert.True(t, styles.GetStyle("MutedItalic").GetItalic())
	assert.Equal(t, 2, styles.GetStyle("Indent").GetMarginLeft())

	fg, ok := styles.GetStyle("Error").GetForeground().(lipgloss.AdaptiveColor)
	require.True(t, ok)
	assert.Equal(t, "#F85149", fg.Dark)
}

func TestGetStyleUnknown(t *testing.T) {
	assert.Equal(t, "x", styles.GetStyle("NoSuchStyle").Render("x"))
}

func TestRenderPlainProfile(t *testing.T) {
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })

	assert.Equal(t, "  hi", styles.Render("Indent", "hi"))
}

func TestMergeStyles(t *testing.T) {
	merged := styles.MergeStyles("Bold", "Muted")
	assert.True(t, merged.GetBold())
	assert.Equal(t, styles.GetStyle("Muted").GetForeground(), merged.GetForeground())
}

func TestLoadStylesFromData(t *testing.T) {
	t.Cleanup(func() {
		// restore the embedded definitions for other tests
		require.NoError(t, styles.LoadStylesFromData([]byte(embedded(t))))
	})

	err := styles.LoadStylesFromData([]byte("colors:\n  c: {light: '#000', dark: '#fff'}\nstyles:\n  Only: {bold: true, foreground: c}\n"))
	require.NoError(t, err)
	assert.Len(t, styles.StyleRegistry, 1)
	assert.True(t, styles.GetStyle("Only").GetBold())

	assert.Error(t, styles.LoadStylesFromData([]byte("styles: [not, a, map")))
}

func embedded(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile("styles.yaml")
	require.NoError(t, err)
	return string(data)
}
