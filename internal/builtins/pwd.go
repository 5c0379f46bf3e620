package builtins

import (
	"fmt"
	"os"

	"github.com/ardenvale/shoe/internal/env"
)

// pwd prints the current directory, forward-slashed with the home prefix
// collapsed to "~".
func pwd(ctx *Context, args []string) (Result, error) {
	wd, err := os.Getwd()
	if err != nil {
		return Result{}, err
	}
	fmt.Fprintln(ctx.Stdout, env.DisplayPath(wd))
	return okResult, nil
}
