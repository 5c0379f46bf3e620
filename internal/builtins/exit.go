package builtins

// exit signals the shell's run loop to terminate.
func exit(ctx *Context, args []string) (Result, error) {
	return Result{Outcome: Exit}, nil
}
