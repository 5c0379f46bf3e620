package builtins

import "os"

// mkdir recursively creates path.
func mkdir(ctx *Context, args []string) (Result, error) {
	if len(args) == 0 {
		return Result{}, nil
	}
	if err := os.MkdirAll(args[0], 0o755); err != nil {
		return Result{}, err
	}
	return okResult, nil
}
