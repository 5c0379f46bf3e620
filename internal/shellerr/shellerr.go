// Package shellerr defines the sentinel errors surfaced by the shell's
// built-in commands and executor, in the taxonomy spec'd for the shell:
// parse, built-in, spawn, and I/O errors.
package shellerr

import "errors"

var (
	// ErrDirectoryNotFound is returned when a path argument naming a
	// directory does not exist.
	ErrDirectoryNotFound = errors.New("directory doesn't exist")
	// ErrPathIsFile is returned when a directory operation is given a file.
	ErrPathIsFile = errors.New("path is a file")
	// ErrSourceNotFound is returned when cp/mv/rm's source glob matches
	// nothing.
	ErrSourceNotFound = errors.New("source item(s) not found")
	// ErrAmbiguousGlobTarget is returned when a glob matches more than one
	// entry but the destination is not a directory.
	ErrAmbiguousGlobTarget = errors.New("can't copy the files, destination is not a directory")
	// ErrUnknownTheme is returned by the theme builtin for an unrecognized
	// theme name.
	ErrUnknownTheme = errors.New("no theme by that name")
	// ErrStdinNotUTF8 is returned by the copy builtin when stdin bytes are
	// not valid UTF-8 text.
	ErrStdinNotUTF8 = errors.New("stdin was not UTF-8 text")
	// ErrClipboardUnavailable is returned by the copy builtin when the
	// system clipboard cannot be reached.
	ErrClipboardUnavailable = errors.New("couldn't access clipboard")
)

// SpawnNotFound formats the executor's external-process-not-found message.
func SpawnNotFound(keyword string) string {
	return "file/command '" + keyword + "' not found! :("
}
