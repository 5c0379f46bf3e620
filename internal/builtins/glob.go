package builtins

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// resolveGlob expands a `prefix*suffix` pattern in the final path component
// of pattern against the entries of its parent directory. A pattern with no
// '*' in its final component is treated as a literal path. Matches are
// returned as full paths (directory + matched name), sorted by name.
func resolveGlob(pattern string) ([]string, error) {
	dir, base := filepath.Split(pattern)
	if dir == "" {
		dir = "."
	}

	star := strings.IndexByte(base, '*')
	if star < 0 {
		if _, err := os.Stat(pattern); err != nil {
			return nil, nil
		}
		return []string{pattern}, nil
	}

	prefix, suffix := base[:star], base[star+1:]

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var matches []string
	for _, e := range entries {
		name := e.Name()
		if len(name) < len(prefix)+len(suffix) {
			continue
		}
		if strings.HasPrefix(name, prefix) && strings.HasSuffix(name, suffix) {
			matches = append(matches, filepath.Join(dir, name))
		}
	}
	sort.Strings(matches)
	return matches, nil
}
