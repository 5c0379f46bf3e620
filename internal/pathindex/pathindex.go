// Package pathindex builds a one-shot, lowercased-filename-to-absolute-path
// mapping from the PATH environment variable, and resolves a command
// keyword to an executable via that mapping plus filesystem checks.
package pathindex

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
)

// Index is the cached mapping of executable filenames observed on PATH at
// startup. It is never refreshed during the session.
type Index struct {
	byName map[string]string // lowercased filename -> first absolute path seen
	stems  []string          // executable stems, length-ascending, for completion fallback
}

// Build scans every directory named by the platform PATH variable, in
// order, inserting lowercased-filename -> absolute-path for every
// non-directory entry found (symlinks included). The first directory to contribute a given filename wins;
// later directories with the same filename are ignored.
func Build(pathEnv string) *Index {
	idx := &Index{byName: make(map[string]string)}

	sep := string(os.PathListSeparator)
	for _, dir := range strings.Split(pathEnv, sep) {
		if dir == "" {
			continue
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			name := strings.ToLower(e.Name())
			if _, exists := idx.byName[name]; exists {
				continue
			}
			abs, err := filepath.Abs(filepath.Join(dir, e.Name()))
			if err != nil {
				continue
			}
			idx.byName[name] = abs
		}
	}

	idx.stems = make([]string, 0, len(idx.byName))
	for name := range idx.byName {
		idx.stems = append(idx.stems, stem(name))
	}
	sort.Slice(idx.stems, func(i, j int) bool {
		if len(idx.stems[i]) != len(idx.stems[j]) {
			return len(idx.stems[i]) < len(idx.stems[j])
		}
		return idx.stems[i] < idx.stems[j]
	})

	return idx
}

// Lookup returns the absolute path for a lowercased filename, if any was
// observed while scanning PATH.
func (idx *Index) Lookup(lowercasedName string) (string, bool) {
	p, ok := idx.byName[lowercasedName]
	return p, ok
}

// Stems returns the executable filename stems (a .exe, .bat or .cmd
// extension stripped; any other name kept whole), sorted
// shortest-first, for use as an Autocompleter fallback source.
func (idx *Index) Stems() []string {
	return idx.stems
}

func stem(name string) string {
	ext := filepath.Ext(name)
	if ext == "" {
		return name
	}
	switch ext {
	case ".exe", ".bat", ".cmd":
		return strings.TrimSuffix(name, ext)
	default:
		return name
	}
}

// PathExtensions returns the executable-file extension variants this
// platform's BinaryFinder should try appending to a bare keyword: none on
// POSIX, ".exe"/".bat"/".cmd" on Windows.
func PathExtensions() []string {
	if runtime.GOOS == "windows" {
		return []string{".exe", ".bat", ".cmd"}
	}
	return nil
}
