package selection

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNew_OrdersPair(t *testing.T) {
	require.Equal(t, Selection{Start: 2, End: 9}, New(2, 9))
	require.Equal(t, Selection{Start: 2, End: 9}, New(9, 2))
}

func TestCaret(t *testing.T) {
	s := Caret(4)
	require.True(t, s.IsCaret())
	require.Equal(t, 0, s.Len())
	require.Equal(t, 4, s.Start)
	require.Equal(t, 4, s.End)
}

func TestContains(t *testing.T) {
	block := New(0, 15)

	tests := []struct {
		name string
		sel  Selection
		want bool
	}{
		{"equal", New(0, 15), true},
		{"inner range", New(3, 7), true},
		{"caret at start", Caret(0), true},
		{"caret at end", Caret(15), true},
		{"past end", New(3, 16), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, block.Contains(tt.sel))
		})
	}
}

func TestValid(t *testing.T) {
	require.True(t, Caret(0).Valid())
	require.False(t, Selection{Start: -1, End: 0}.Valid())
	require.False(t, Selection{Start: 5, End: 4}.Valid())
}

func TestString(t *testing.T) {
	require.Equal(t, "(0, 21)", New(0, 21).String())
}

func TestNew_Property_AlwaysValid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.IntRange(0, 1000).Draw(t, "a")
		b := rapid.IntRange(0, 1000).Draw(t, "b")

		s := New(a, b)
		require.True(t, s.Valid(), "New(%d, %d) = %s", a, b, s)
		require.True(t, s.Equal(New(b, a)))
	})
}
