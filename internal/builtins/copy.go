package builtins

import (
	"unicode/utf8"

	"github.com/atotto/clipboard"

	"github.com/ardenvale/shoe/internal/ansi"
	"github.com/ardenvale/shoe/internal/shellerr"
)

// copyCmd strips ANSI escapes from stdin and writes the resulting UTF-8
// text to the system clipboard.
func copyCmd(ctx *Context, args []string) (Result, error) {
	stripped := ansi.Strip(ctx.Stdin)
	if !utf8.Valid(stripped) {
		return Result{}, shellerr.ErrStdinNotUTF8
	}
	if err := clipboard.WriteAll(string(stripped)); err != nil {
		return Result{}, shellerr.ErrClipboardUnavailable
	}
	return okResult, nil
}
