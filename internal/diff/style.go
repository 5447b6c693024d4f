package diff

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	additionColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	deletionColor = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}
)

// Styles colours rendered diff lines.
type Styles struct {
	Addition lipgloss.Style
	Deletion lipgloss.Style
	Context  lipgloss.Style
}

// NewStyles builds diff styles for output through r. Tabs are left as is so
// indentation in the diff stays exact.
func NewStyles(r *lipgloss.Renderer) Styles {
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return Styles{
		Addition: base.Foreground(additionColor),
		Deletion: base.Foreground(deletionColor),
		Context:  base,
	}
}

func (s Styles) forType(t LineType) lipgloss.Style {
	switch t {
	case LineAddition:
		return s.Addition
	case LineDeletion:
		return s.Deletion
	default:
		return s.Context
	}
}

// RenderStyled is Render with each line coloured by its type. With a renderer
// that has no colour support the output equals Render.
func RenderStyled(before, after string, s Styles) string {
	if before == after {
		return ""
	}

	var b strings.Builder
	for _, l := range Lines(before, after) {
		b.WriteString(s.forType(l.Type).Render(l.Type.Prefix() + l.Text))
		b.WriteByte('\n')
	}
	return b.String()
}
