package builtins

import (
	"fmt"

	"github.com/ardenvale/shoe/internal/pathindex"
)

// which prints the resolved executable path for a keyword via BinaryFinder.
func which(ctx *Context, args []string) (Result, error) {
	if len(args) == 0 {
		return Result{}, fmt.Errorf("usage: which name")
	}
	fmt.Fprintln(ctx.Stdout, pathindex.Find(args[0], ctx.PathIndex))
	return okResult, nil
}
