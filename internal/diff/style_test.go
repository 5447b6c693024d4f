package diff

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func renderer(profile termenv.Profile) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)
	r.SetHasDarkBackground(true)
	return r
}

func TestRenderStyled_NoColourMatchesRender(t *testing.T) {
	before, after := "a\n\tb\n", "a\n\t\tb\n"

	got := RenderStyled(before, after, NewStyles(renderer(termenv.Ascii)))

	require.Equal(t, Render(before, after), got)
	require.Contains(t, got, "+\t\tb", "tabs are not expanded")
}

func TestRenderStyled_Colours(t *testing.T) {
	before, after := "a\nb\n", "a\n  b\n"

	got := RenderStyled(before, after, NewStyles(renderer(termenv.ANSI256)))

	require.Contains(t, got, "\x1b[")
	require.Equal(t, Render(before, after), ansi.Strip(got))
}

func TestRenderStyled_Equal(t *testing.T) {
	require.Equal(t, "", RenderStyled("x", "x", NewStyles(renderer(termenv.ANSI256))))
}
