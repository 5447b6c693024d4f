// Package selection provides the offset range value used by the indent engine.
//
// Offsets are absolute rune indices into whatever document the caller holds.
// A Selection never refers back to that document.
package selection

import "fmt"

// Selection is a half-open range [Start, End) of rune offsets.
// Start == End describes a caret.
type Selection struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// New creates a selection covering a and b, ordering the pair so that
// Start <= End.
func New(a, b int) Selection {
	if a > b {
		a, b = b, a
	}
	return Selection{Start: a, End: b}
}

// Caret creates a zero-width selection at offset.
func Caret(offset int) Selection {
	return Selection{Start: offset, End: offset}
}

// IsCaret reports whether the selection has zero width.
func (s Selection) IsCaret() bool {
	return s.Start == s.End
}

// Len returns the number of runes covered.
func (s Selection) Len() int {
	return s.End - s.Start
}

// Contains reports whether other lies within s (bounds inclusive).
func (s Selection) Contains(other Selection) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// Equal reports whether both selections cover the same offsets.
func (s Selection) Equal(other Selection) bool {
	return s.Start == other.Start && s.End == other.End
}

// Valid reports whether the selection is non-negative and ordered.
func (s Selection) Valid() bool {
	return s.Start >= 0 && s.Start <= s.End
}

func (s Selection) String() string {
	return fmt.Sprintf("(%d, %d)", s.Start, s.End)
}
