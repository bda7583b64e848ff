// Package cli provides Cargo/rustc-style diagnostic output for tstamp.
// It handles colored output and error formatting for the terminal.
package cli

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
)

// OutputMode determines how output is formatted.
type OutputMode int

const (
	// ModeTTY enables rich colored output for interactive terminals.
	ModeTTY OutputMode = iota
	// ModePlain outputs plain text without colors (for pipes/CI).
	ModePlain
)

// defaultWidth is used when the writer is not a terminal.
const defaultWidth = 80

// Config describes the stream tstamp is about to write to.
type Config struct {
	Mode   OutputMode
	Width  int
	Writer io.Writer
}

// DetectConfig inspects w. Terminals get colors and their real width unless
// NO_COLOR is set or TERM is "dumb"; pipes, files and buffers are plain and
// 80 columns wide.
func DetectConfig(w io.Writer) *Config {
	cfg := &Config{Mode: ModePlain, Width: defaultWidth, Writer: w}

	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return cfg
	}
	fd := f.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return cfg
	}

	if colorAllowed() {
		cfg.Mode = ModeTTY
	}
	if width, _, err := term.GetSize(fd); err == nil && width > 0 {
		cfg.Width = width
	}
	return cfg
}

// colorAllowed honours NO_COLOR (https://no-color.org/) and TERM=dumb.
func colorAllowed() bool {
	return os.Getenv("NO_COLOR") == "" && os.Getenv("TERM") != "dumb"
}

// DefaultConfig returns the detected configuration for stderr, where
// diagnostics are written.
func DefaultConfig() *Config {
	return DetectConfig(os.Stderr)
}

func (c *Config) IsTTY() bool   { return c.Mode == ModeTTY }
func (c *Config) IsPlain() bool { return c.Mode == ModePlain }

var defaultCfg *Config

// Default returns the package-wide configuration, detecting it on first use.
func Default() *Config {
	if defaultCfg == nil {
		defaultCfg = DefaultConfig()
	}
	return defaultCfg
}

// SetDefault replaces the package-wide configuration.
func SetDefault(cfg *Config) {
	defaultCfg = cfg
}

// Use installs cfg as the default for the duration of one write and returns a
// func that puts the previous configuration back:
//
//	defer cli.Use(cli.DetectConfig(w))()
func Use(cfg *Config) (restore func()) {
	prev := defaultCfg
	defaultCfg = cfg
	return func() { defaultCfg = prev }
}

// EnableColors reports whether style functions emit ANSI sequences.
func EnableColors() bool {
	return Default().IsTTY()
}

// Wrap breaks text into lines no wider than width, splitting on spaces.
// A width below 20 leaves the text on one line.
func Wrap(text string, width int) []string {
	if width < 20 || lipgloss.Width(text) <= width {
		return []string{text}
	}
	wrapped := lipgloss.NewStyle().Width(width).Render(text)
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return lines
}
