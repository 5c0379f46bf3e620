// Package completion implements Tab-key autocompletion: filesystem paths
// first, falling back to built-in and PATH-indexed names in keyword
// position.
package completion

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/ardenvale/shoe/internal/builtins"
	"github.com/ardenvale/shoe/internal/env"
	"github.com/ardenvale/shoe/internal/pathindex"
)

// Complete returns the cycleIndex-th candidate for word, or ok=false if
// nothing matches. Path completion is tried first; keyword completion
// (builtin names, then PathIndex stems) is a fallback used only in
// keyword position.
func Complete(word string, cycleIndex int, keywordPosition bool, idx *pathindex.Index) (string, bool) {
	if c, ok := completePath(word, cycleIndex); ok {
		return c, true
	}
	if keywordPosition {
		return completeKeyword(word, idx)
	}
	return "", false
}

func completePath(word string, cycleIndex int) (string, bool) {
	origParent, filename := splitWord(word)

	var dir string
	switch {
	case strings.HasPrefix(word, "~/") || word == "~":
		dir = filepath.Join(env.Home(), strings.TrimPrefix(origParent, "~/"))
	case filepath.IsAbs(word):
		dir = origParent
		if dir == "" {
			dir = string(filepath.Separator)
		}
	default:
		wd, err := os.Getwd()
		if err != nil {
			return "", false
		}
		dir = filepath.Join(wd, origParent)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}

	lowerNames := runtime.GOOS == "windows"
	target := filename
	if lowerNames {
		target = strings.ToLower(target)
	}

	var matches []os.DirEntry
	for _, e := range entries {
		name := e.Name()
		if lowerNames {
			name = strings.ToLower(name)
		}
		if strings.HasPrefix(name, target) {
			matches = append(matches, e)
		}
	}
	if len(matches) == 0 {
		return "", false
	}

	chosen := matches[cycleIndex%len(matches)]
	result := origParent + chosen.Name()
	if chosen.IsDir() {
		result += "/"
	}
	return result, true
}

// splitWord decomposes word into parent (including any trailing slash,
// and any leading ~/ or absolute prefix) and filename.
func splitWord(word string) (parent, filename string) {
	idx := strings.LastIndexByte(word, '/')
	if idx < 0 {
		return "", word
	}
	return word[:idx+1], word[idx+1:]
}

func completeKeyword(word string, idx *pathindex.Index) (string, bool) {
	for _, name := range builtins.Names() {
		if strings.HasPrefix(name, word) {
			return name, true
		}
	}
	if idx == nil {
		return "", false
	}
	for _, stem := range idx.Stems() {
		if strings.HasPrefix(stem, word) {
			return stem, true
		}
	}
	return "", false
}
