// Package searchio centralizes the output streams of search and the
// terminal capabilities they are attached to.
package searchio

import (
	stdio "io"
	"os"
	"strconv"

	"golang.org/x/term"
)

// IOManager centralizes IO and terminal capabilities
type IOManager struct {
	out stdio.Writer
	err stdio.Writer

	forceColor bool
	noColor    bool

	getenv func(string) string
}

// New returns a manager bound to process stdio
func New() *IOManager {
	return &IOManager{out: os.Stdout, err: os.Stderr, getenv: os.Getenv}
}

// WithOut sets the standard output writer and returns the manager for chaining.
func (m *IOManager) WithOut(w stdio.Writer) *IOManager { m.out = w; return m }

// WithErr sets the standard error writer and returns the manager for chaining.
func (m *IOManager) WithErr(w stdio.Writer) *IOManager { m.err = w; return m }

// WithEnv replaces the environment lookup used for colour detection.
func (m *IOManager) WithEnv(getenv func(string) string) *IOManager { m.getenv = getenv; return m }

// ForceColor forces color output on, regardless of environment.
func (m *IOManager) ForceColor() *IOManager { m.forceColor = true; m.noColor = false; return m }

// NoColor disables color output, regardless of environment.
func (m *IOManager) NoColor() *IOManager { m.noColor = true; m.forceColor = false; return m }

// Out returns the configured standard output writer.
func (m *IOManager) Out() stdio.Writer { return m.out }

// Err returns the configured standard error writer.
func (m *IOManager) Err() stdio.Writer { return m.err }

// IsTTY reports whether the output writer is a terminal.
func (m *IOManager) IsTTY() bool {
	f, ok := m.out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Width returns the terminal width, falling back to $COLUMNS and then 80.
func (m *IOManager) Width() int {
	if f, ok := m.out.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	if w, err := strconv.Atoi(m.getenv("COLUMNS")); err == nil && w > 0 {
		return w
	}
	return 80
}

// SupportsColor determines whether ANSI colour sequences should be written.
// NO_COLOR wins over FORCE_COLOR, which wins over terminal detection.
func (m *IOManager) SupportsColor() bool {
	if m.noColor || m.getenv("NO_COLOR") != "" {
		return false
	}
	if m.forceColor || m.getenv("FORCE_COLOR") != "" {
		return true
	}
	if !m.IsTTY() {
		return false
	}
	t := m.getenv("TERM")
	return t != "" && t != "dumb"
}
