package builtins

// cls clears the screen and moves the cursor to (0,0).
func cls(ctx *Context, args []string) (Result, error) {
	ctx.Stdout.WriteString("\x1b[2J\x1b[H")
	return okResult, nil
}
