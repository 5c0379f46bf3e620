// Package builtins implements the shell's fixed table of in-process
// commands: each reads a byte buffer as stdin, writes to a byte buffer as
// stdout, and returns a typed Result.
package builtins

import (
	"bytes"

	"github.com/ardenvale/shoe/internal/pathindex"
	"github.com/ardenvale/shoe/internal/theme"
)

// Outcome discriminates what a built-in's invocation produced.
type Outcome int

const (
	// Ok is the normal, successful outcome.
	Ok Outcome = iota
	// Exit tells the shell loop to terminate.
	Exit
	// UpdateTheme tells the shell to switch its active theme.
	UpdateTheme
	// NotACommand names the "not a built-in" outcome. No Handler returns
	// it and the executor does not act on it: Lookup alone decides whether
	// a keyword is a built-in or goes to external-process resolution.
	NotACommand
)

// Result is what a Handler returns alongside a nil error.
type Result struct {
	Outcome    Outcome
	ThemeIndex int // meaningful only when Outcome == UpdateTheme
}

var okResult = Result{Outcome: Ok}

// Context carries everything a Handler needs: its input, somewhere to
// write output, and read access to shell-owned state.
type Context struct {
	Stdin      []byte
	Stdout     *bytes.Buffer
	Colors     *theme.ColorScheme
	PathIndex  *pathindex.Index
	Extensions []string
}

// Handler implements one built-in command.
type Handler func(ctx *Context, args []string) (Result, error)

// Definition names a built-in and its handler. Registry order is the
// declaration order here, which the Autocompleter's keyword-position
// fallback depends on.
type Definition struct {
	Name    string
	Handler Handler
}

// Registry is the fixed, ordered built-in table. Lookup is a deliberate
// linear scan: the table is tiny, and declaration order is load-bearing.
var Registry = []Definition{
	{Name: "ls", Handler: ls},
	{Name: "cd", Handler: cd},
	{Name: "pwd", Handler: pwd},
	{Name: "echo", Handler: echo},
	{Name: "cat", Handler: cat},
	{Name: "cp", Handler: cp},
	{Name: "mv", Handler: mv},
	{Name: "rm", Handler: rm},
	{Name: "mkdir", Handler: mkdir},
	{Name: "cls", Handler: cls},
	{Name: "column", Handler: column},
	{Name: "copy", Handler: copyCmd},
	{Name: "theme", Handler: themeCmd},
	{Name: "which", Handler: which},
	{Name: "help", Handler: help},
	{Name: "exit", Handler: exit},
}

// Lookup finds a built-in by exact name.
func Lookup(name string) (Handler, bool) {
	for _, d := range Registry {
		if d.Name == name {
			return d.Handler, true
		}
	}
	return nil, false
}

// Names returns every built-in name, in declaration order.
func Names() []string {
	names := make([]string, len(Registry))
	for i, d := range Registry {
		names[i] = d.Name
	}
	return names
}
