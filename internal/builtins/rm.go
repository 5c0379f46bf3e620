package builtins

import (
	"fmt"
	"os"

	"github.com/ardenvale/shoe/internal/shellerr"
)

// rm removes target, a literal path or a prefix*suffix glob.
func rm(ctx *Context, args []string) (Result, error) {
	if len(args) == 0 {
		return Result{}, fmt.Errorf("usage: rm target")
	}

	matches, err := resolveGlob(args[0])
	if err != nil {
		return Result{}, err
	}
	if len(matches) == 0 {
		return Result{}, fmt.Errorf("%w: %s", shellerr.ErrSourceNotFound, args[0])
	}
	for _, m := range matches {
		if err := os.RemoveAll(m); err != nil {
			return Result{}, err
		}
	}
	return okResult, nil
}
