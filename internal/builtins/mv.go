package builtins

import (
	"fmt"
	"os"

	"github.com/ardenvale/shoe/internal/shellerr"
)

// mv moves src (a literal path or a prefix*suffix glob) to dest: the
// glob's matches are copied, then the originals removed.
func mv(ctx *Context, args []string) (Result, error) {
	if len(args) < 2 {
		return Result{}, fmt.Errorf("usage: mv src dest")
	}
	src, dest := args[0], args[1]

	matches, err := resolveGlob(src)
	if err != nil {
		return Result{}, err
	}
	if len(matches) == 0 {
		return Result{}, fmt.Errorf("%w: %s", shellerr.ErrSourceNotFound, src)
	}

	if err := copyGlob(src, dest); err != nil {
		return Result{}, err
	}
	for _, m := range matches {
		if err := os.RemoveAll(m); err != nil {
			return Result{}, err
		}
	}
	return okResult, nil
}
