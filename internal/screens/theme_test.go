package screens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownReusesRendererPerWidth(t *testing.T) {
	theme := NewTheme("", "notty")
	copied := theme

	out := theme.Markdown("**hello**", 40)
	assert.Contains(t, out, "hello")
	require.NotNil(t, theme.md.renderer)
	first := theme.md.renderer

	copied.Markdown("again", 40)
	assert.Same(t, first, theme.md.renderer, "copies share the cached renderer")

	theme.Markdown("narrow", 10)
	assert.NotSame(t, first, theme.md.renderer)
	assert.Equal(t, 20, theme.md.width, "width is clamped before caching")
}

func TestMarkdownWithZeroTheme(t *testing.T) {
	var theme Theme
	theme.MarkdownStyle = "notty"
	assert.Contains(t, theme.Markdown("plain text", 40), "plain text")
}
