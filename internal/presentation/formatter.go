package presentation

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/zjrosen/textindent/internal/diff"
)

// Formatter handles output formatting
type Formatter struct {
	writer     io.Writer
	diffStyles *diff.Styles
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
	}
}

// WithDiffStyles colours FormatDiff output with s.
func (f *Formatter) WithDiffStyles(s diff.Styles) *Formatter {
	f.diffStyles = &s
	return f
}

// FormatJSON writes the result as indented JSON.
func (f *Formatter) FormatJSON(result ResultDTO) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// FormatText writes the edited document as is.
func (f *Formatter) FormatText(result ResultDTO) error {
	_, err := io.WriteString(f.writer, result.Text)
	return err
}

// FormatDiff writes a line diff between before and the edited document,
// followed by the new selection.
func (f *Formatter) FormatDiff(before string, result ResultDTO) error {
	var rendered string
	if f.diffStyles != nil {
		rendered = diff.RenderStyled(before, result.Text, *f.diffStyles)
	} else {
		rendered = diff.Render(before, result.Text)
	}
	if _, err := io.WriteString(f.writer, rendered); err != nil {
		return err
	}
	_, err := fmt.Fprintf(f.writer, "selection %s\n", result.Selection)
	return err
}
