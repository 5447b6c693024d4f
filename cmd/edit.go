package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/zjrosen/textindent/internal/config"
	"github.com/zjrosen/textindent/internal/diff"
	"github.com/zjrosen/textindent/internal/edit"
	"github.com/zjrosen/textindent/internal/indent"
	"github.com/zjrosen/textindent/internal/linereader"
	"github.com/zjrosen/textindent/internal/log"
	"github.com/zjrosen/textindent/internal/presentation"
	"github.com/zjrosen/textindent/internal/selection"
)

// unset marks an offset flag that was not given.
const unset = -1

var errWriteNeedsFile = errors.New("--write needs a file argument")

// editOptions holds the flags shared by indent and outdent.
type editOptions struct {
	start, end int
	from, to   string
	token      string
	tabs       bool
	width      int
	count      int
	write      bool
	diff       bool
	color      string
	format     string
}

var (
	indentOpts  editOptions
	outdentOpts editOptions
)

var indentCmd = &cobra.Command{
	Use:   "indent [file]",
	Short: "Indent the lines touched by the selection",
	Long: `Prefix every line touched by the selection with the indent token.

Reads the file argument, or stdin when none is given.

Examples:
  # Indent lines 2-4 of main.go by one level and rewrite the file
  textindent indent main.go --from 2:1 --to 4:1 -w

  # Indent with a tab and print the new selection as JSON
  printf 'a\nb' | textindent indent --tabs --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEditCmd(cmd, args, edit.OpIndent, indentOpts)
	},
}

var outdentCmd = &cobra.Command{
	Use:     "outdent [file]",
	Aliases: []string{"reverse-indent", "dedent"},
	Short:   "Remove one indent level from the lines touched by the selection",
	Long: `Strip one indent level from every line touched by the selection.

A leading tab removes one character, a leading indent token removes the
token, and anything else removes the line's leading whitespace run.

Examples:
  # Outdent the whole file, showing a coloured diff
  textindent outdent main.go --diff --color always

  # Outdent twice around rune offset 120
  textindent outdent main.go --start 120 --count 2`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEditCmd(cmd, args, edit.OpOutdent, outdentOpts)
	},
}

func init() {
	bindEditFlags(indentCmd, &indentOpts)
	bindEditFlags(outdentCmd, &outdentOpts)
	rootCmd.AddCommand(indentCmd, outdentCmd)
}

func bindEditFlags(c *cobra.Command, o *editOptions) {
	f := c.Flags()
	f.IntVar(&o.start, "start", unset, "selection start (rune offset)")
	f.IntVar(&o.end, "end", unset, "selection end (rune offset, default: start)")
	f.StringVar(&o.from, "from", "", "selection start as line:col (one-based)")
	f.StringVar(&o.to, "to", "", "selection end as line:col (one-based)")
	f.StringVar(&o.token, "token", "", `literal indent token, "\t" for a tab (overrides config)`)
	f.BoolVar(&o.tabs, "tabs", false, "indent with a tab")
	f.IntVar(&o.width, "width", 0, "indent with this many spaces")
	f.IntVar(&o.count, "count", 1, "number of levels")
	f.BoolVarP(&o.write, "write", "w", false, "write the result back to the file")
	f.BoolVar(&o.diff, "diff", false, "print a line diff instead of the document")
	f.StringVar(&o.color, "color", "", "diff colours: auto, always or never (default from config)")
	f.StringVar(&o.format, "format", "", "output format: text or json (default from config)")
}

func runEditCmd(cmd *cobra.Command, args []string, op edit.Op, opts editOptions) error {
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	return runEdit(op, opts, cfg, path, cmd.InOrStdin(), cmd.OutOrStdout())
}

// runEdit reads the document from path (or in), applies op and writes the
// result to out, or back to path with --write.
func runEdit(op edit.Op, opts editOptions, c config.Config, path string, in io.Reader, out io.Writer) error {
	if opts.write && path == "" {
		return errWriteNeedsFile
	}

	text, err := readInput(path, in)
	if err != nil {
		return err
	}

	cursor, err := resolveCursor(linereader.New(text), opts)
	if err != nil {
		return err
	}

	token, err := resolveToken(opts, c.Indent)
	if err != nil {
		return err
	}

	outcome, err := edit.Apply(edit.Request{
		Text:   text,
		Cursor: cursor,
		Token:  token,
		Op:     op,
		Count:  opts.count,
	})
	if err != nil {
		return err
	}

	if opts.write && outcome.Changed {
		if err := writeFile(path, outcome.Text); err != nil {
			return err
		}
		log.Info(log.CatCLI, "Wrote file", "path", path, "op", op)
	}

	dto := presentation.FromOutcome(op, outcome)
	formatter := presentation.NewFormatter(out)

	format := opts.format
	if format == "" {
		format = c.Output.Format
	}
	switch {
	case strings.EqualFold(format, config.FormatJSON):
		return formatter.FormatJSON(dto)
	case opts.diff || c.Output.Diff:
		color := opts.color
		if color == "" {
			color = c.Output.Color
		}
		styles, err := newDiffStyles(out, color)
		if err != nil {
			return err
		}
		return formatter.WithDiffStyles(styles).FormatDiff(text, dto)
	case opts.write:
		return nil
	default:
		return formatter.FormatText(dto)
	}
}

// newDiffStyles binds diff colours to out. In auto mode colour is used only
// when out is a terminal.
func newDiffStyles(out io.Writer, mode string) (diff.Styles, error) {
	if err := config.ValidateColor(mode); err != nil {
		return diff.Styles{}, err
	}

	r := lipgloss.NewRenderer(out)
	switch strings.ToLower(mode) {
	case config.ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}
	return diff.NewStyles(r), nil
}

func readInput(path string, in io.Reader) (string, error) {
	if path == "" {
		data, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // G304: path is the user's input file
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	log.Debug(log.CatCLI, "Read input", "path", path, "bytes", len(data))
	return string(data), nil
}

func writeFile(path, text string) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(text), mode); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// resolveCursor builds the cursor selection from the offset or line:col
// flags. With neither given the whole document is selected.
func resolveCursor(r *linereader.Reader, opts editOptions) (selection.Selection, error) {
	byPosition := opts.from != "" || opts.to != ""
	if byPosition && (opts.start != unset || opts.end != unset) {
		return selection.Selection{}, errors.New("use either --start/--end or --from/--to, not both")
	}

	start, end := opts.start, opts.end
	if byPosition {
		var err error
		if start, err = parsePosition(r, opts.from); err != nil {
			return selection.Selection{}, fmt.Errorf("--from: %w", err)
		}
		if end, err = parsePosition(r, opts.to); err != nil {
			return selection.Selection{}, fmt.Errorf("--to: %w", err)
		}
	}

	switch {
	case start == unset && end == unset:
		return selection.New(0, r.Len()), nil
	case start == unset:
		return selection.Caret(end), nil
	case end == unset:
		return selection.Caret(start), nil
	default:
		return selection.New(start, end), nil
	}
}

// parsePosition converts a one-based "line:col" into a rune offset. A bare
// line number means column 1. An empty string returns unset.
func parsePosition(r *linereader.Reader, s string) (int, error) {
	if s == "" {
		return unset, nil
	}

	lineStr, colStr, hasCol := strings.Cut(s, ":")
	line, err := strconv.Atoi(lineStr)
	if err != nil {
		return 0, fmt.Errorf("invalid line in %q", s)
	}
	col := 1
	if hasCol {
		if col, err = strconv.Atoi(colStr); err != nil {
			return 0, fmt.Errorf("invalid column in %q", s)
		}
	}
	if line < 1 || col < 1 {
		return 0, fmt.Errorf("position %q must be one-based", s)
	}
	return r.Offset(line-1, col-1)
}

// resolveToken picks the indent token: --token, then --tabs, then --width,
// then the configured indent.
func resolveToken(opts editOptions, ic config.IndentConfig) (string, error) {
	switch {
	case opts.token != "":
		return strings.ReplaceAll(opts.token, `\t`, "\t"), nil
	case opts.tabs:
		return indent.Tab, nil
	case opts.width > 0:
		if opts.width > config.MaxWidth {
			return "", fmt.Errorf("--width %d: %w", opts.width, config.ErrInvalidWidth)
		}
		return indent.Spaces(opts.width), nil
	default:
		if err := config.ValidateIndent(ic); err != nil {
			return "", err
		}
		return ic.Token(), nil
	}
}
