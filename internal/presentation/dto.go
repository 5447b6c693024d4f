package presentation

import (
	"github.com/zjrosen/textindent/internal/edit"
	"github.com/zjrosen/textindent/internal/linereader"
	"github.com/zjrosen/textindent/internal/selection"
)

// ResultDTO is the JSON shape of an edit result.
type ResultDTO struct {
	Op        string               `json:"op"`
	Text      string               `json:"text"`
	Selection selection.Selection  `json:"selection"`
	Block     selection.Selection  `json:"block"`
	From      *linereader.Position `json:"from,omitempty"`
	To        *linereader.Position `json:"to,omitempty"`
	Changed   bool                 `json:"changed"`
}

// FromOutcome converts an edit outcome to its DTO. Line/column positions are
// included when the new selection lies inside the document.
func FromOutcome(op edit.Op, out edit.Outcome) ResultDTO {
	dto := ResultDTO{
		Op:        op.String(),
		Text:      out.Text,
		Selection: out.Selection,
		Block:     out.Block,
		Changed:   out.Changed,
	}

	reader := linereader.New(out.Text)
	if from, err := reader.Position(out.Selection.Start); err == nil {
		dto.From = &from
	}
	if to, err := reader.Position(out.Selection.End); err == nil {
		dto.To = &to
	}
	return dto
}
