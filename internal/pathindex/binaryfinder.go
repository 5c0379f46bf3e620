package pathindex

import (
	"os"
	"path/filepath"
	"strings"
)

// scriptRuntimes maps a recognized script extension to the interpreter
// binary that should run it: py -> python3, js -> node, vbs -> wscript.
var scriptRuntimes = map[string]string{
	"py":  "python3",
	"js":  "node",
	"vbs": "wscript",
}

// ScriptRuntime returns the interpreter for keyword's extension, if the
// extension names a recognized scripting language.
func ScriptRuntime(keyword string) (string, bool) {
	ext := strings.TrimPrefix(filepath.Ext(keyword), ".")
	rt, ok := scriptRuntimes[strings.ToLower(ext)]
	return rt, ok
}

// pathVariants lists the filesystem paths a keyword could resolve to on
// this platform: the bare keyword, plus (Windows only) the keyword with
// each platform extension appended.
func pathVariants(keyword string) []string {
	variants := []string{keyword}
	for _, ext := range PathExtensions() {
		variants = append(variants, keyword+ext)
	}
	return variants
}

// Find resolves keyword to an executable path:
//
//  1. Try each platform variant as a filesystem path (absolute as-is,
//     relative resolved against the current working directory); the first
//     one that names a regular file wins.
//  2. Otherwise look each variant up in idx (case-insensitively).
//  3. Otherwise return keyword unchanged; the caller's spawn attempt will
//     then fail on its own.
func Find(keyword string, idx *Index) string {
	for _, variant := range pathVariants(keyword) {
		candidate := variant
		if !filepath.IsAbs(candidate) {
			if wd, err := os.Getwd(); err == nil {
				candidate = filepath.Join(wd, candidate)
			}
		}
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate
		}
	}

	for _, variant := range pathVariants(keyword) {
		if p, ok := idx.Lookup(strings.ToLower(variant)); ok {
			return p
		}
	}

	return keyword
}
