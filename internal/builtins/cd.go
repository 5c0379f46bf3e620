package builtins

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ardenvale/shoe/internal/env"
	"github.com/ardenvale/shoe/internal/shellerr"
)

var lastWorkDir string

// cd changes the process working directory. With no argument it goes home;
// "-" returns to the directory cd was last called from; a leading "~" is
// expanded against the home directory.
func cd(ctx *Context, args []string) (Result, error) {
	target := env.Home()
	if len(args) > 0 {
		target = args[0]
	}

	switch {
	case target == "-":
		if lastWorkDir == "" {
			return Result{}, fmt.Errorf("%w: no previous directory", shellerr.ErrDirectoryNotFound)
		}
		target = lastWorkDir
	case strings.HasPrefix(target, "~"):
		target = filepath.Join(env.Home(), strings.TrimPrefix(target, "~"))
	}

	info, err := os.Stat(target)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s", shellerr.ErrDirectoryNotFound, target)
	}
	if !info.IsDir() {
		return Result{}, fmt.Errorf("%w: %s", shellerr.ErrPathIsFile, target)
	}

	prev, err := os.Getwd()
	if err != nil {
		return Result{}, err
	}
	if err := os.Chdir(target); err != nil {
		return Result{}, err
	}
	lastWorkDir = prev
	return okResult, nil
}
