package builtins

import (
	"fmt"

	"github.com/ardenvale/shoe/internal/shellerr"
	"github.com/ardenvale/shoe/internal/theme"
)

// themeCmd lists the fixed theme collection (highlighting the active one)
// with no argument, or switches the active theme by name.
func themeCmd(ctx *Context, args []string) (Result, error) {
	if len(args) == 0 {
		active := ctx.Colors.Theme().Name
		for _, t := range theme.All {
			if t.Name == active {
				fmt.Fprintln(ctx.Stdout, ctx.Colors.Primary(t.Name))
			} else {
				fmt.Fprintln(ctx.Stdout, t.Name)
			}
		}
		return okResult, nil
	}

	idx := theme.ByName(args[0])
	if idx < 0 {
		return Result{}, fmt.Errorf("%w: '%s'", shellerr.ErrUnknownTheme, args[0])
	}
	return Result{Outcome: UpdateTheme, ThemeIndex: idx}, nil
}
