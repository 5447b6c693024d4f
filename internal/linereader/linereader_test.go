package linereader

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zjrosen/textindent/internal/selection"
)

func TestNew_Lines(t *testing.T) {
	r := New("0123\n5678\nabcde")

	require.Equal(t, 3, r.LineCount())
	require.Equal(t, 15, r.Len())

	lines := r.Lines()
	require.Equal(t, "0123", lines[0].Text)
	require.Equal(t, 0, lines[0].Start)
	require.Equal(t, 4, lines[0].End)
	require.Equal(t, 5, lines[1].Start)
	require.Equal(t, 10, lines[2].Start)
	require.Equal(t, 15, lines[2].End)
}

func TestNew_EmptyDocument(t *testing.T) {
	r := New("")

	require.Equal(t, 1, r.LineCount())
	require.Equal(t, 0, r.Len())

	block, err := r.Select(selection.Caret(0))
	require.NoError(t, err)
	require.Equal(t, []string{""}, block.Texts())
	require.Equal(t, selection.Caret(0), block.Selection)
}

func TestNew_TrailingNewline(t *testing.T) {
	r := New("a\nb\n")

	require.Equal(t, 3, r.LineCount())
	require.Equal(t, 4, r.Len())
	line, err := r.Line(2)
	require.NoError(t, err)
	require.Equal(t, "", line.Text)
	require.Equal(t, 4, line.Start)
}

func TestSelect(t *testing.T) {
	r := New("0123\n5678\nabcde")

	tests := []struct {
		name      string
		sel       selection.Selection
		wantTexts []string
		wantBlock selection.Selection
	}{
		{"whole document", selection.New(0, 15), []string{"0123", "5678", "abcde"}, selection.New(0, 15)},
		{"caret mid line", selection.Caret(7), []string{"5678"}, selection.New(5, 9)},
		{"caret at line end", selection.Caret(4), []string{"0123"}, selection.New(0, 4)},
		{"caret at line start", selection.Caret(5), []string{"5678"}, selection.New(5, 9)},
		{"range across newline", selection.New(3, 6), []string{"0123", "5678"}, selection.New(0, 9)},
		{"last two lines", selection.New(8, 12), []string{"5678", "abcde"}, selection.New(5, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block, err := r.Select(tt.sel)
			require.NoError(t, err)
			require.Equal(t, tt.wantTexts, block.Texts())
			require.Equal(t, tt.wantBlock, block.Selection)
		})
	}
}

func TestSelect_OutOfRange(t *testing.T) {
	r := New("abc")

	_, err := r.Select(selection.New(0, 4))
	require.ErrorIs(t, err, ErrOutOfRange)

	_, err = r.Select(selection.Selection{Start: -1, End: 2})
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestBlock_FirstLast(t *testing.T) {
	r := New("a\nb\nc\nd")

	block, err := r.Select(selection.New(2, 4))
	require.NoError(t, err)
	require.Equal(t, 1, block.First())
	require.Equal(t, 2, block.Last())

	require.Equal(t, 0, Block{}.First())
	require.Equal(t, 0, Block{}.Last())
}

func TestOffset(t *testing.T) {
	r := New("abc\nhe\u0301llo\n\U0001F44B\U0001F3FDx")

	tests := []struct {
		name      string
		line, col int
		want      int
	}{
		{"start", 0, 0, 0},
		{"mid first line", 0, 2, 2},
		{"past line end clamps", 0, 10, 3},
		{"combining accent counts once", 1, 2, 7},
		{"skin tone emoji is one column", 2, 1, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Offset(tt.line, tt.col)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	_, err := r.Offset(3, 0)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = r.Offset(0, -1)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestPosition(t *testing.T) {
	r := New("abc\n中文x")

	pos, err := r.Position(2)
	require.NoError(t, err)
	require.Equal(t, Position{Line: 0, Col: 2, DisplayCol: 2}, pos)

	pos, err = r.Position(6)
	require.NoError(t, err)
	require.Equal(t, Position{Line: 1, Col: 2, DisplayCol: 4}, pos)
	require.Equal(t, "2:3", pos.String())

	_, err = r.Position(8)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestSplice(t *testing.T) {
	r := New("0123\n5678\nabcde")

	got, err := r.Splice(selection.New(5, 9), "  5678")
	require.NoError(t, err)
	require.Equal(t, "0123\n  5678\nabcde", got)

	_, err = r.Splice(selection.New(5, 99), "")
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestSplice_MultibyteOffsets(t *testing.T) {
	r := New("π=3\n  λx")

	got, err := r.Splice(selection.New(4, 8), "λx")
	require.NoError(t, err)
	require.Equal(t, "π=3\nλx", got)
}

func TestSelect_Property_BlockCoversSelection(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[a-zπ \t\n]{0,40}`).Draw(t, "text")
		r := New(text)
		n := utf8.RuneCountInString(text)

		a := rapid.IntRange(0, n).Draw(t, "a")
		b := rapid.IntRange(0, n).Draw(t, "b")
		sel := selection.New(a, b)

		block, err := r.Select(sel)
		require.NoError(t, err)
		require.True(t, block.Selection.Contains(sel), "block %s does not contain %s", block.Selection, sel)

		joined := strings.Join(block.Texts(), "\n")
		require.Equal(t, block.Selection.Len(), utf8.RuneCountInString(joined))

		// Splicing the block's own text back is the identity.
		out, err := r.Splice(block.Selection, joined)
		require.NoError(t, err)
		require.Equal(t, text, out)
	})
}
