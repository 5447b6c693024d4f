// Package indent computes block indent and reverse-indent edits.
//
// Both operations are pure: they take the texts of the touched lines, the
// indent token, the block span and the cursor selection, and return the
// rewritten block plus the selection the cursor should move to. Offsets and
// lengths are measured in runes.
package indent

import (
	"strings"
	"unicode/utf8"

	"github.com/zjrosen/textindent/internal/selection"
)

// Tab is the single-tab indent token.
const Tab = "\t"

// Result is the outcome of an indent or reverse-indent.
type Result struct {
	// Text is the rewritten block, lines joined with "\n".
	Text string
	// Selection is where the cursor selection lands after the edit.
	Selection selection.Selection
}

// Spaces returns an indent token of n spaces.
func Spaces(n int) string {
	return strings.Repeat(" ", n)
}

// Indent prefixes every line with token.
//
// A cursor sitting exactly at the block start stays there; the inserted
// token ends up after it. Any other cursor start shifts right by one token.
// The end always shifts by one token per line.
func Indent(lines []string, token string, block, cursor selection.Selection) Result {
	tokenLen := utf8.RuneCountInString(token)

	indented := make([]string, len(lines))
	for i, line := range lines {
		indented[i] = token + line
	}

	start := cursor.Start + tokenLen
	if cursor.Start == block.Start {
		start = block.Start
	}

	return Result{
		Text: strings.Join(indented, "\n"),
		Selection: selection.Selection{
			Start: start,
			End:   cursor.End + len(lines)*tokenLen,
		},
	}
}

// ReverseIndent strips one level of indentation from every line.
//
// Per line, the first matching rule wins: a leading tab removes one rune, a
// leading token removes the token, otherwise the whole leading whitespace run
// is removed (possibly nothing). When nothing was removed anywhere the cursor
// selection is returned unchanged.
func ReverseIndent(lines []string, token string, block, cursor selection.Selection) Result {
	var (
		firstLineRemoved *int
		totalRemoved     int
	)

	outdented := make([]string, len(lines))
	for i, line := range lines {
		n, rest := strip(line, token)
		outdented[i] = rest
		if firstLineRemoved == nil {
			firstLineRemoved = &n
		}
		totalRemoved += n
	}

	text := strings.Join(outdented, "\n")
	if totalRemoved == 0 {
		return Result{Text: text, Selection: cursor}
	}

	first := 0
	if firstLineRemoved != nil {
		first = *firstLineRemoved
	}

	var sel selection.Selection
	if cursor.Start >= block.Start+first {
		sel.Start = cursor.Start - first
		sel.End = cursor.End - totalRemoved
	} else {
		// Cursor started inside the stripped prefix of the first line.
		sel.Start = block.Start
		if cursor.IsCaret() {
			sel.End = sel.Start
		} else {
			// Not clamped: a short range inside the prefix can end before Start.
			sel.End = cursor.End - totalRemoved
		}
	}

	return Result{Text: text, Selection: sel}
}

// Removal reports how many runes ReverseIndent strips from line.
func Removal(line, token string) int {
	n, _ := strip(line, token)
	return n
}

// strip applies the per-line removal rules and returns the rune count removed
// along with the remaining text.
func strip(line, token string) (int, string) {
	switch {
	case strings.HasPrefix(line, Tab):
		return 1, line[len(Tab):]
	case token != "" && strings.HasPrefix(line, token):
		return utf8.RuneCountInString(token), line[len(token):]
	}

	n := LeadingWhitespace(line)
	if n == 0 {
		return 0, line
	}
	return n, line[byteOffset(line, n):]
}

// LeadingWhitespace returns the number of leading runes of s that belong to
// the blank set (see IsBlank).
func LeadingWhitespace(s string) int {
	n := 0
	for _, r := range s {
		if !IsBlank(r) {
			break
		}
		n++
	}
	return n
}

// IsBlank reports whether r is in the whitespace class stripped by
// ReverseIndent: ASCII space, tab, line feed, vertical tab, form feed,
// carriage return, the Unicode space separators, U+2028, U+2029 and the
// byte order mark. U+0085 is not included.
func IsBlank(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r',
		'\u00a0', '\u1680', '\u2028', '\u2029', '\u202f', '\u205f', '\u3000', '\ufeff':
		return true
	}
	return r >= '\u2000' && r <= '\u200a'
}

// byteOffset returns the byte index of the rune with index n in s.
func byteOffset(s string, n int) int {
	i := 0
	for off := range s {
		if i == n {
			return off
		}
		i++
	}
	return len(s)
}
