// Package shell wires together the tokenizer, pipeline assembler, executor,
// line editor, history, and completion into the interactive REPL.
package shell

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ardenvale/shoe/internal/completion"
	"github.com/ardenvale/shoe/internal/config"
	"github.com/ardenvale/shoe/internal/env"
	"github.com/ardenvale/shoe/internal/executor"
	"github.com/ardenvale/shoe/internal/history"
	"github.com/ardenvale/shoe/internal/pathindex"
	"github.com/ardenvale/shoe/internal/pipeline"
	"github.com/ardenvale/shoe/internal/terminal"
	"github.com/ardenvale/shoe/internal/theme"
	"github.com/ardenvale/shoe/internal/token"
)

// Shell owns every piece of process-wide state the spec calls out: the
// PathIndex built once at startup, the history buffer, the active theme,
// and the terminal's raw-mode toggling.
type Shell struct {
	term   *terminal.Terminal
	editor *terminal.LineEditor
	colors *theme.ColorScheme
	state  *config.State
	hist   *history.Buffer
	idx    *pathindex.Index
	exec   *executor.Executor

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	noHistory bool
	noRC      bool
}

// Option configures a Shell at construction time.
type Option func(*Shell)

// WithStdin overrides the shell's input source.
func WithStdin(r io.Reader) Option { return func(s *Shell) { s.stdin = r } }

// WithStdout overrides the shell's output sink.
func WithStdout(w io.Writer) Option { return func(s *Shell) { s.stdout = w } }

// WithStderr overrides the shell's error sink.
func WithStderr(w io.Writer) Option { return func(s *Shell) { s.stderr = w } }

// WithNoHistory disables history loading and persistence.
func WithNoHistory() Option { return func(s *Shell) { s.noHistory = true } }

// WithNoRC skips executing ~/.shoerc at startup.
func WithNoRC() Option { return func(s *Shell) { s.noRC = true } }

// New builds a Shell, loading persisted theme/tab-width state, scanning
// PATH once, and wiring the line editor's history and completion sources.
func New(opts ...Option) *Shell {
	s := &Shell{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	for _, opt := range opts {
		opt(s)
	}

	st, err := config.Load()
	if err != nil {
		st = config.Default()
	}
	s.state = st
	s.colors = theme.New(st.ThemeIndex)

	s.idx = pathindex.Build(env.PathValue())

	if !s.noHistory {
		hist, err := history.Load(history.DefaultPath(env.Home()))
		if err == nil {
			s.hist = hist
		}
	}
	if s.hist == nil {
		s.hist = history.New()
	}

	s.exec = &executor.Executor{
		Colors:    s.colors,
		PathIndex: s.idx,
		Stdout:    s.stdout,
		Stderr:    s.stderr,
	}
	s.exec.OnThemeChange = s.setTheme

	s.term = terminal.New()
	s.editor = terminal.NewLineEditor(s.term)
	s.editor.SetColors(s.colors)
	s.editor.SetHistory(s.hist)
	s.editor.SetCompleter(func(word string, cycleIndex int, keywordPosition bool) (string, bool) {
		return completion.Complete(word, cycleIndex, keywordPosition, s.idx)
	})

	return s
}

func (s *Shell) setTheme(index int) {
	s.state.ThemeIndex = index
	s.colors = theme.New(index)
	s.exec.Colors = s.colors
	s.editor.SetColors(s.colors)
	s.state.Save()
}

// Run executes ~/.shoerc (unless disabled) and then drives the
// interactive REPL until the exit built-in runs or reading input fails.
// Ctrl-C at the prompt does not exit: it discards the line and a fresh
// prompt is shown.
func (s *Shell) Run() {
	ignoreInterrupt()

	if !s.noRC {
		s.runRC()
	}

	for {
		line, err := s.editor.ReadLine(terminal.Prompt())
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !s.noHistory {
			s.hist.Add(line)
		}

		s.RunLine(line)
		if s.exec.ExitRequested {
			return
		}
	}
}

// RunLine tokenizes, substitutes, assembles, and executes one input line.
func (s *Shell) RunLine(line string) {
	cmds, err := s.assemble(line)
	if err != nil {
		fmt.Fprintln(s.stderr, s.colors.Error(err.Error()))
		return
	}
	if len(cmds) == 0 {
		return
	}
	s.exec.Run(cmds)
}

func (s *Shell) assemble(line string) ([]pipeline.Command, error) {
	toks := token.Tokenize(line, false)
	toks = token.Substitute(toks, env.Lookup, true, env.Home())
	return pipeline.Assemble(toks)
}

// runRC executes ~/.shoerc line by line at startup, creating it empty if
// absent, without adding any of its lines to history.
func (s *Shell) runRC() {
	path := rcPath(env.Home())
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			os.WriteFile(path, nil, 0o644)
		}
		return
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		s.RunLine(line)
	}
}

func rcPath(home string) string {
	return home + "/.shoerc"
}
