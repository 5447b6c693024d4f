// Package edit applies indent and outdent to a whole document.
//
// It is the glue between the line reader and the pure engine: it validates
// the request, reads the block touched by the cursor, runs the engine and
// splices the rewritten block back into the document.
package edit

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/zjrosen/textindent/internal/indent"
	"github.com/zjrosen/textindent/internal/linereader"
	"github.com/zjrosen/textindent/internal/log"
	"github.com/zjrosen/textindent/internal/selection"
)

var (
	// ErrEmptyToken is returned when the indent token is empty.
	ErrEmptyToken = errors.New("indent token is empty")
	// ErrInvalidCount is returned for a negative repeat count.
	ErrInvalidCount = errors.New("count must be at least 1")
	// ErrUnknownOp is returned by ParseOp for an unrecognized operation name.
	ErrUnknownOp = errors.New("unknown operation")
	// ErrOutOfRange is returned when the cursor does not fit the document.
	ErrOutOfRange = linereader.ErrOutOfRange
)

// Op selects the operation to apply.
type Op int

const (
	OpIndent Op = iota
	OpOutdent
)

func (o Op) String() string {
	switch o {
	case OpIndent:
		return "indent"
	case OpOutdent:
		return "outdent"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// ParseOp parses an operation name. "reverse-indent" and "dedent" are
// accepted for outdent.
func ParseOp(name string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "indent":
		return OpIndent, nil
	case "outdent", "reverse-indent", "dedent":
		return OpOutdent, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownOp)
	}
}

func (o Op) run(lines []string, token string, block, cursor selection.Selection) indent.Result {
	if o == OpOutdent {
		return indent.ReverseIndent(lines, token, block, cursor)
	}
	return indent.Indent(lines, token, block, cursor)
}

// Request describes one edit.
type Request struct {
	Text   string              // whole document
	Cursor selection.Selection // user selection, rune offsets
	Token  string              // indent token
	Op     Op
	Count  int // passes to apply; 0 means 1
}

// Outcome is the result of Apply.
type Outcome struct {
	Text      string              // whole document after the edit
	Selection selection.Selection // new cursor selection
	Block     selection.Selection // block span before the edit
	Replaced  string              // new text of the block
	Lines     int                 // number of lines in the block
	Changed   bool                // whether the document text changed
}

// Apply runs the requested operation over the lines touched by the cursor.
//
// With Count > 1 the engine runs repeatedly over the same lines, each pass
// taking the previous pass's block text and selection as input.
func Apply(req Request) (Outcome, error) {
	if req.Token == "" {
		return Outcome{}, ErrEmptyToken
	}
	count := req.Count
	if count == 0 {
		count = 1
	}
	if count < 1 {
		return Outcome{}, fmt.Errorf("count %d: %w", req.Count, ErrInvalidCount)
	}

	reader := linereader.New(req.Text)
	block, err := reader.Select(req.Cursor)
	if err != nil {
		return Outcome{}, fmt.Errorf("reading block: %w", err)
	}

	lines := block.Texts()
	span := block.Selection
	cursor := req.Cursor
	text := strings.Join(lines, "\n")

	for pass := 1; pass <= count; pass++ {
		res := req.Op.run(lines, req.Token, span, cursor)
		log.Debug(log.CatEdit, "Applied pass",
			"op", req.Op, "pass", pass, "lines", len(lines),
			"before", cursor, "after", res.Selection)

		text = res.Text
		cursor = res.Selection
		lines = strings.Split(text, "\n")
		span = selection.New(span.Start, span.Start+utf8.RuneCountInString(text))
	}

	doc, err := reader.Splice(block.Selection, text)
	if err != nil {
		return Outcome{}, fmt.Errorf("splicing block: %w", err)
	}

	out := Outcome{
		Text:      doc,
		Selection: cursor,
		Block:     block.Selection,
		Replaced:  text,
		Lines:     len(lines),
		Changed:   doc != req.Text,
	}
	log.Info(log.CatEdit, "Edit complete",
		"op", req.Op, "count", count, "block", out.Block,
		"selection", out.Selection, "changed", out.Changed)
	return out, nil
}
