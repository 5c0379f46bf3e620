package builtins

import (
	"fmt"
	"os"
	"sort"

	"github.com/ardenvale/shoe/internal/shellerr"
)

// ls lists a directory: subdirectories first in the theme's primary color,
// then files in the default foreground.
func ls(ctx *Context, args []string) (Result, error) {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	info, err := os.Stat(path)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s", shellerr.ErrDirectoryNotFound, path)
	}
	if !info.IsDir() {
		return Result{}, fmt.Errorf("%w: %s", shellerr.ErrPathIsFile, path)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return Result{}, err
	}

	var dirs, files []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e.Name())
		} else {
			files = append(files, e.Name())
		}
	}
	sort.Strings(dirs)
	sort.Strings(files)

	for _, name := range dirs {
		fmt.Fprintln(ctx.Stdout, ctx.Colors.Primary(name))
	}
	for _, name := range files {
		fmt.Fprintln(ctx.Stdout, name)
	}
	return okResult, nil
}
