// Package ansi implements ANSI escape-sequence stripping as a pure
// byte-to-byte function, independent of any terminal or I/O concerns.
package ansi

import (
	"bytes"
	"regexp"
)

// escapeSequence matches a CSI-style escape: ESC '[' followed by decimal
// parameters separated by ';', terminated by an ASCII letter. Sequences
// with other parameter or final bytes (such as ESC[?25l) are not matched.
var escapeSequence = regexp.MustCompile("\x1b\\[[0-9;]*[A-Za-z]")

// Strip removes ANSI escape sequences from b, returning a new slice.
func Strip(b []byte) []byte {
	return escapeSequence.ReplaceAll(b, nil)
}

// ContainsEscape reports whether b contains the raw ESC byte, the signal
// the executor uses to decide whether stripping is worth attempting at all.
func ContainsEscape(b []byte) bool {
	return bytes.IndexByte(b, 0x1B) >= 0
}

// VisibleWidth returns the rune count of s after escape sequences are
// stripped; callers needing display-column width should further run the
// result through a rune-width function (see internal/terminal).
func VisibleWidth(s string) int {
	return len([]rune(string(Strip([]byte(s)))))
}
