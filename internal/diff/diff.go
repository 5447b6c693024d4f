// Package diff renders a line diff between two versions of a document.
package diff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// LineType marks how a line changed.
type LineType int

const (
	LineContext LineType = iota
	LineDeletion
	LineAddition
)

// Prefix returns the marker printed before a line of this type.
func (t LineType) Prefix() string {
	switch t {
	case LineDeletion:
		return "-"
	case LineAddition:
		return "+"
	default:
		return " "
	}
}

// Line is one line of diff output.
type Line struct {
	Type LineType
	Text string
}

// Lines computes a line-level diff of before and after.
func Lines(before, after string) []Line {
	dmp := diffmatchpatch.New()

	// Map each distinct line to a rune so the diff runs line by line
	a, b, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var out []Line
	for _, d := range diffs {
		var typ LineType
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			typ = LineDeletion
		case diffmatchpatch.DiffInsert:
			typ = LineAddition
		default:
			typ = LineContext
		}
		for _, text := range splitLines(d.Text) {
			out = append(out, Line{Type: typ, Text: text})
		}
	}
	return out
}

// Render formats a diff of before and after, one prefixed line per entry.
// Returns "" when the documents are equal.
func Render(before, after string) string {
	if before == after {
		return ""
	}

	var b strings.Builder
	for _, l := range Lines(before, after) {
		b.WriteString(l.Type.Prefix())
		b.WriteString(l.Text)
		b.WriteByte('\n')
	}
	return b.String()
}

// splitLines splits a diff chunk into lines, dropping the empty tail left by
// a trailing newline.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
