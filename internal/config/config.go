// Package config provides configuration types and defaults for textindent.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zjrosen/textindent/internal/indent"
	"github.com/zjrosen/textindent/internal/log"
)

// Indent styles.
const (
	StyleSpaces = "spaces"
	StyleTabs   = "tabs"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Diff colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// MaxWidth bounds the number of spaces per indent level.
const MaxWidth = 16

var (
	// ErrInvalidStyle is returned for an indent style other than spaces or tabs.
	ErrInvalidStyle = errors.New("invalid indent style")
	// ErrInvalidWidth is returned for a space width outside 1..MaxWidth.
	ErrInvalidWidth = errors.New("invalid indent width")
	// ErrInvalidFormat is returned for an unknown output format.
	ErrInvalidFormat = errors.New("invalid output format")
	// ErrInvalidColor is returned for an unknown diff colour mode.
	ErrInvalidColor = errors.New("invalid color mode")
)

// Config holds all configuration options for textindent.
type Config struct {
	Indent  IndentConfig `mapstructure:"indent" yaml:"indent"`
	Output  OutputConfig `mapstructure:"output" yaml:"output"`
	Debug   bool         `mapstructure:"debug" yaml:"debug"`
	LogPath string       `mapstructure:"log_path" yaml:"log_path"`
}

// IndentConfig selects the indent token.
type IndentConfig struct {
	Style string `mapstructure:"style" yaml:"style"` // "spaces" (default) or "tabs"
	Width int    `mapstructure:"width" yaml:"width"` // spaces per level, ignored for tabs
}

// OutputConfig controls how results are written.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"` // "text" (default) or "json"
	Diff   bool   `mapstructure:"diff" yaml:"diff"`     // print a line diff instead of the document
	Color  string `mapstructure:"color" yaml:"color"`   // diff colours: "auto" (default), "always" or "never"
}

// Token returns the literal indent token for this configuration.
func (c IndentConfig) Token() string {
	if c.Style == StyleTabs {
		return indent.Tab
	}
	return indent.Spaces(c.Width)
}

// DefaultLogPath is the debug log written when log_path is empty.
const DefaultLogPath = "textindent-debug.log"

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Indent: IndentConfig{
			Style: StyleSpaces,
			Width: 2,
		},
		Output: OutputConfig{
			Format: FormatText,
			Color:  ColorAuto,
		},
		LogPath: "",
	}
}

// ValidateIndent checks the indent section.
func ValidateIndent(c IndentConfig) error {
	switch c.Style {
	case "", StyleSpaces:
		if c.Width < 1 || c.Width > MaxWidth {
			return fmt.Errorf("indent.width must be between 1 and %d, got %d: %w", MaxWidth, c.Width, ErrInvalidWidth)
		}
	case StyleTabs:
		// width is ignored for tabs
	default:
		return fmt.Errorf("indent.style must be %q or %q, got %q: %w", StyleSpaces, StyleTabs, c.Style, ErrInvalidStyle)
	}
	return nil
}

// ValidateOutput checks the output section.
func ValidateOutput(c OutputConfig) error {
	switch strings.ToLower(c.Format) {
	case "", FormatText, FormatJSON:
	default:
		return fmt.Errorf("output.format must be %q or %q, got %q: %w", FormatText, FormatJSON, c.Format, ErrInvalidFormat)
	}
	return ValidateColor(c.Color)
}

// ValidateColor checks a diff colour mode. Empty means auto.
func ValidateColor(mode string) error {
	switch strings.ToLower(mode) {
	case "", ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("color must be %q, %q or %q, got %q: %w", ColorAuto, ColorAlways, ColorNever, mode, ErrInvalidColor)
	}
}

// Validate checks the whole configuration.
func Validate(c Config) error {
	if err := ValidateIndent(c.Indent); err != nil {
		return err
	}
	return ValidateOutput(c.Output)
}

// DefaultConfigPath returns ~/.config/textindent/config.yaml or an empty
// string if the home directory is unavailable.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "textindent", "config.yaml")
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# textindent configuration

# Indent token used by indent and outdent
indent:
  style: spaces   # "spaces" (default) or "tabs"
  width: 2        # spaces per level, 1-16 (ignored for tabs)

# Output settings
output:
  format: text    # "text" prints the document, "json" prints text and selection
  diff: false     # print a line diff of the change instead of the document
  color: auto     # diff colours: "auto", "always" or "never"

# Debug logging (also enabled by --debug or TEXTINDENT_DEBUG=1)
debug: false
# log_path: textindent-debug.log
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
