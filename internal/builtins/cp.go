package builtins

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ardenvale/shoe/internal/shellerr"
)

// cp copies src (a literal path or a prefix*suffix glob) to dest.
func cp(ctx *Context, args []string) (Result, error) {
	if len(args) < 2 {
		return Result{}, fmt.Errorf("usage: cp src dest")
	}
	return Result{}, copyGlob(args[0], args[1])
}

// copyGlob implements cp's src/dest semantics, shared with mv (mv copies
// then deletes the sources).
func copyGlob(src, dest string) error {
	matches, err := resolveGlob(src)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		return fmt.Errorf("%w: %s", shellerr.ErrSourceNotFound, src)
	}

	destIsDir := false
	if info, err := os.Stat(dest); err == nil && info.IsDir() {
		destIsDir = true
	}
	if len(matches) > 1 && !destIsDir {
		return fmt.Errorf("%w: %s", shellerr.ErrAmbiguousGlobTarget, dest)
	}

	for _, m := range matches {
		target := dest
		if destIsDir {
			target = filepath.Join(dest, filepath.Base(m))
		}
		if err := copyOne(m, target); err != nil {
			return err
		}
	}
	return nil
}

func copyOne(src, dest string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return copyDir(src, dest, info.Mode())
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode())
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}

func copyDir(src, dest string, mode os.FileMode) error {
	if err := os.MkdirAll(dest, mode); err != nil {
		return err
	}
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := copyOne(filepath.Join(src, e.Name()), filepath.Join(dest, e.Name())); err != nil {
			return err
		}
	}
	return nil
}
