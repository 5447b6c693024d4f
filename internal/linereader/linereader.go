// Package linereader maps a document and a selection to the full lines the
// selection touches.
//
// This is the collaborator the indent engine expects: it yields the line
// texts of a block plus the block's absolute start and end offsets. All
// offsets are rune indices into the document. Lines are split on "\n" only;
// a trailing "\r" stays part of the line text.
package linereader

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/zjrosen/textindent/internal/selection"
)

// ErrOutOfRange is returned when an offset or position falls outside the document.
var ErrOutOfRange = errors.New("out of range")

// Line is one line of the document.
type Line struct {
	Number int    // zero-based line index
	Text   string // content without the terminator
	Start  int    // rune offset of the first character
	End    int    // rune offset one past the last character

	byteStart int
}

// Block is the run of full lines touched by a selection.
type Block struct {
	Lines     []Line
	Selection selection.Selection // Start of the first line to End of the last
}

// Texts returns the line contents of the block, in order.
func (b Block) Texts() []string {
	texts := make([]string, len(b.Lines))
	for i, l := range b.Lines {
		texts[i] = l.Text
	}
	return texts
}

// First returns the zero-based number of the first line in the block.
func (b Block) First() int {
	if len(b.Lines) == 0 {
		return 0
	}
	return b.Lines[0].Number
}

// Last returns the zero-based number of the last line in the block.
func (b Block) Last() int {
	if len(b.Lines) == 0 {
		return 0
	}
	return b.Lines[len(b.Lines)-1].Number
}

// Position is a zero-based line/column location. Col counts grapheme clusters
// from the start of the line; DisplayCol counts terminal cells.
type Position struct {
	Line       int `json:"line"`
	Col        int `json:"col"`
	DisplayCol int `json:"display_col"`
}

// String formats the position as one-based "line:col".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Col+1)
}

// Reader indexes the lines of a document.
type Reader struct {
	text  string
	lines []Line
	runes int
}

// New splits text into lines.
func New(text string) *Reader {
	r := &Reader{text: text}

	offset, byteOffset := 0, 0
	for i, s := range strings.Split(text, "\n") {
		n := utf8.RuneCountInString(s)
		r.lines = append(r.lines, Line{
			Number:    i,
			Text:      s,
			Start:     offset,
			End:       offset + n,
			byteStart: byteOffset,
		})
		offset += n + 1
		byteOffset += len(s) + 1
	}
	r.runes = offset - 1

	return r
}

// Text returns the indexed document.
func (r *Reader) Text() string {
	return r.text
}

// Len returns the document length in runes.
func (r *Reader) Len() int {
	return r.runes
}

// LineCount returns the number of lines. An empty document has one empty line.
func (r *Reader) LineCount() int {
	return len(r.lines)
}

// Lines returns every line of the document.
func (r *Reader) Lines() []Line {
	return r.lines
}

// Line returns line n (zero-based).
func (r *Reader) Line(n int) (Line, error) {
	if n < 0 || n >= len(r.lines) {
		return Line{}, fmt.Errorf("line %d: %w", n+1, ErrOutOfRange)
	}
	return r.lines[n], nil
}

// Select returns the block of full lines touched by sel.
func (r *Reader) Select(sel selection.Selection) (Block, error) {
	if !sel.Valid() || sel.End > r.runes {
		return Block{}, fmt.Errorf("selection %s in document of length %d: %w", sel, r.runes, ErrOutOfRange)
	}

	first := r.lineAt(sel.Start)
	last := r.lineAt(sel.End)

	lines := r.lines[first : last+1]
	return Block{
		Lines:     lines,
		Selection: selection.New(lines[0].Start, lines[len(lines)-1].End),
	}, nil
}

// Offset converts a zero-based line and grapheme column into a rune offset.
// Columns past the end of the line clamp to the line end.
func (r *Reader) Offset(line, col int) (int, error) {
	l, err := r.Line(line)
	if err != nil {
		return 0, err
	}
	if col < 0 {
		return 0, fmt.Errorf("column %d: %w", col, ErrOutOfRange)
	}

	runes := 0
	state := -1
	rest := l.Text
	for i := 0; i < col && len(rest) > 0; i++ {
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)
		runes += utf8.RuneCountInString(cluster)
	}
	return l.Start + runes, nil
}

// Position converts a rune offset into a line/column position. An offset that
// falls inside a grapheme cluster reports the column after that cluster.
func (r *Reader) Position(offset int) (Position, error) {
	if offset < 0 || offset > r.runes {
		return Position{}, fmt.Errorf("offset %d: %w", offset, ErrOutOfRange)
	}

	l := r.lines[r.lineAt(offset)]
	prefix := l.Text[:runeToByte(l.Text, offset-l.Start)]
	return Position{
		Line:       l.Number,
		Col:        uniseg.GraphemeClusterCount(prefix),
		DisplayCol: runewidth.StringWidth(prefix),
	}, nil
}

// Splice replaces the runes covered by sel with replacement and returns the
// resulting document.
func (r *Reader) Splice(sel selection.Selection, replacement string) (string, error) {
	if !sel.Valid() || sel.End > r.runes {
		return "", fmt.Errorf("splice %s in document of length %d: %w", sel, r.runes, ErrOutOfRange)
	}

	start, end := r.byteOffset(sel.Start), r.byteOffset(sel.End)

	var b strings.Builder
	b.Grow(len(r.text) - (end - start) + len(replacement))
	b.WriteString(r.text[:start])
	b.WriteString(replacement)
	b.WriteString(r.text[end:])
	return b.String(), nil
}

// lineAt returns the index of the line containing offset. An offset equal to
// a line's End belongs to that line.
func (r *Reader) lineAt(offset int) int {
	lo, hi := 0, len(r.lines)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if r.lines[mid].Start <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

func (r *Reader) byteOffset(offset int) int {
	l := r.lines[r.lineAt(offset)]
	return l.byteStart + runeToByte(l.Text, offset-l.Start)
}

// runeToByte returns the byte index of rune n in s, or len(s) when n is past the end.
func runeToByte(s string, n int) int {
	i := 0
	for off := range s {
		if i == n {
			return off
		}
		i++
	}
	return len(s)
}
