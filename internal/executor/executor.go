// Package executor runs an assembled pipeline: it gates each command on
// the previous one's outcome, threads stdout between stages, dispatches
// to built-ins or external processes, and applies redirection.
package executor

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"unicode/utf8"

	"github.com/google/renameio/v2/maybe"

	"github.com/ardenvale/shoe/internal/ansi"
	"github.com/ardenvale/shoe/internal/builtins"
	"github.com/ardenvale/shoe/internal/pathindex"
	"github.com/ardenvale/shoe/internal/pipeline"
	"github.com/ardenvale/shoe/internal/shellerr"
	"github.com/ardenvale/shoe/internal/theme"
)

// Executor carries the state a pipeline run needs: where to render
// built-in/external output, the active theme for error coloring, and the
// PathIndex for external command resolution.
type Executor struct {
	Colors    *theme.ColorScheme
	PathIndex *pathindex.Index
	Stdout    io.Writer
	Stderr    io.Writer

	// OnThemeChange is invoked when the theme built-in requests a switch.
	OnThemeChange func(index int)

	// ExitRequested is set once the exit built-in runs; callers should
	// stop feeding further input after a Run() that sets this.
	ExitRequested bool

	lastSuccess *bool
}

// New creates an Executor writing to the process's real stdout/stderr.
func New(colors *theme.ColorScheme, idx *pathindex.Index) *Executor {
	return &Executor{Colors: colors, PathIndex: idx, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run executes every command in cmds in order, applying run-condition
// gating and threading last_piped_output between stages.
func (ex *Executor) Run(cmds []pipeline.Command) {
	var pipedInput []byte
	havePiped := false

	for _, cmd := range cmds {
		if !ex.shouldRun(cmd.RunCondition) {
			continue
		}

		stdin, err := ex.resolveStdin(cmd, pipedInput, havePiped)
		if err != nil {
			ex.reportError(err)
			ex.lastSuccess = boolPtr(false)
			havePiped = false
			continue
		}

		out, success, err := ex.runOne(cmd, stdin)
		if err != nil {
			ex.reportError(err)
			ex.lastSuccess = boolPtr(false)
			havePiped = false
			continue
		}
		ex.lastSuccess = boolPtr(success)

		out = ansiGuard(out)

		switch cmd.Output.Kind {
		case pipeline.OutputPiped:
			pipedInput = out
			havePiped = true
		case pipeline.OutputWriteTo:
			if werr := writeRedirect(cmd.Output.Path, cmd.Output.Append, out); werr != nil {
				ex.reportError(werr)
			}
			havePiped = false
		default:
			ex.writeDefault(out)
			havePiped = false
		}

		if ex.ExitRequested {
			return
		}
	}
}

func (ex *Executor) shouldRun(cond pipeline.RunCondition) bool {
	switch cond {
	case pipeline.Success:
		return ex.lastSuccess == nil || *ex.lastSuccess
	case pipeline.Fail:
		return ex.lastSuccess != nil && !*ex.lastSuccess
	default:
		return true
	}
}

func (ex *Executor) resolveStdin(cmd pipeline.Command, pipedInput []byte, havePiped bool) ([]byte, error) {
	if havePiped {
		return pipedInput, nil
	}
	if cmd.Input.Kind == pipeline.InputReadFrom {
		return os.ReadFile(cmd.Input.Path)
	}
	return nil, nil
}

// runOne dispatches to a built-in or an external process, returning its
// captured stdout, whether it succeeded, and any error worth reporting to
// the user (built-in domain errors or spawn failures).
func (ex *Executor) runOne(cmd pipeline.Command, stdin []byte) (out []byte, success bool, err error) {
	if handler, ok := builtins.Lookup(cmd.Keyword); ok {
		bctx := &builtins.Context{
			Stdin:      stdin,
			Stdout:     &bytes.Buffer{},
			Colors:     ex.Colors,
			PathIndex:  ex.PathIndex,
			Extensions: pathindex.PathExtensions(),
		}
		result, herr := handler(bctx, cmd.Args)
		if herr != nil {
			return nil, false, herr
		}
		switch result.Outcome {
		case builtins.Exit:
			ex.ExitRequested = true
		case builtins.UpdateTheme:
			if ex.OnThemeChange != nil {
				ex.OnThemeChange(result.ThemeIndex)
			}
		}
		return bctx.Stdout.Bytes(), true, nil
	}
	return ex.runExternal(cmd, stdin)
}

// runExternal resolves keyword to a script runtime and/or an executable
// via BinaryFinder and spawns it, piping stdin/stdout per the command's
// modifiers.
func (ex *Executor) runExternal(cmd pipeline.Command, stdin []byte) (out []byte, success bool, err error) {
	keyword := cmd.Keyword
	args := cmd.Args
	if runtime, ok := pathindex.ScriptRuntime(keyword); ok {
		args = append([]string{keyword}, args...)
		keyword = runtime
	}

	resolved := pathindex.Find(keyword, ex.PathIndex)

	extCmd := exec.Command(resolved, args...)
	if len(stdin) > 0 {
		extCmd.Stdin = bytes.NewReader(stdin)
	}

	var outBuf bytes.Buffer
	if cmd.Output.Kind != pipeline.OutputDefault {
		extCmd.Stdout = &outBuf
	} else {
		extCmd.Stdout = ex.Stdout
	}
	extCmd.Stderr = ex.Stderr

	runErr := extCmd.Run()
	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			return outBuf.Bytes(), false, nil
		}
		return nil, false, errors.New(shellerr.SpawnNotFound(cmd.Keyword))
	}
	return outBuf.Bytes(), true, nil
}

// writeDefault writes captured built-in output to the terminal, ensuring
// the cursor ends at column 0. Externally-inherited output was already
// streamed straight to the terminal, so out is empty in that case and
// nothing extra happens.
func (ex *Executor) writeDefault(out []byte) {
	ex.Stdout.Write(out)
	if len(out) > 0 && out[len(out)-1] != '\n' {
		fmt.Fprintln(ex.Stdout)
	}
}

func (ex *Executor) reportError(err error) {
	fmt.Fprintln(ex.Stderr, ex.Colors.Error(err.Error()))
}

// ansiGuard strips ANSI escapes from captured bytes only when they're
// valid UTF-8 text that actually contains an escape byte, so binary pipe
// payloads are left untouched.
func ansiGuard(b []byte) []byte {
	if len(b) > 0 && utf8.Valid(b) && ansi.ContainsEscape(b) {
		return ansi.Strip(b)
	}
	return b
}

// writeRedirect implements the two file sinks: > overwrites atomically,
// >> appends, inserting a separating newline only when the existing file
// doesn't already end in one and the new content doesn't start with one.
func writeRedirect(path string, appendMode bool, data []byte) error {
	if !appendMode {
		return maybe.WriteFile(path, data, 0o644)
	}

	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	needsSep := len(existing) > 0 && existing[len(existing)-1] != '\n' && len(data) > 0 && data[0] != '\n'

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	if needsSep {
		if _, err := f.Write([]byte{'\n'}); err != nil {
			return err
		}
	}
	_, err = f.Write(data)
	return err
}

func boolPtr(b bool) *bool { return &b }
