package builtins

import (
	"strings"

	"github.com/ardenvale/shoe/internal/ansi"
	"github.com/ardenvale/shoe/internal/terminal"
	"github.com/mattn/go-runewidth"
)

// column breaks stdin (newline-separated items) into as many columns as fit
// in the current terminal width, padding by the items' visible width after
// ANSI stripping. For non-empty input at least one column and one row is
// always produced; empty input produces no output.
func column(ctx *Context, args []string) (Result, error) {
	raw := strings.Split(strings.TrimRight(string(ctx.Stdin), "\n"), "\n")
	var items []string
	for _, s := range raw {
		if s != "" {
			items = append(items, s)
		}
	}
	if len(items) == 0 {
		return okResult, nil
	}

	maxWidth := 0
	for _, it := range items {
		w := runewidth.StringWidth(string(ansi.Strip([]byte(it))))
		if w > maxWidth {
			maxWidth = w
		}
	}

	termWidth := terminal.Width()
	colWidth := maxWidth + 2
	numCols := termWidth / colWidth
	if numCols < 1 {
		numCols = 1
	}

	for i, it := range items {
		w := runewidth.StringWidth(string(ansi.Strip([]byte(it))))
		ctx.Stdout.WriteString(it)
		if (i+1)%numCols == 0 || i == len(items)-1 {
			ctx.Stdout.WriteByte('\n')
		} else {
			ctx.Stdout.WriteString(strings.Repeat(" ", colWidth-w))
		}
	}
	return okResult, nil
}
