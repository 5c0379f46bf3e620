package builtins

import "os"

// cat dumps a file's contents; with no argument it prints "meow".
func cat(ctx *Context, args []string) (Result, error) {
	if len(args) == 0 {
		ctx.Stdout.WriteString("meow\n")
		return okResult, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return Result{}, err
	}
	ctx.Stdout.Write(data)
	return okResult, nil
}
