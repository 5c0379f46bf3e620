// Package history implements the shell's command history: a flat,
// append-only list of past input lines, persisted one-per-line to
// ~/.shoehistory.
package history

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Buffer holds past command lines, oldest first.
type Buffer struct {
	lines   []string
	path    string
	enabled bool
}

// New creates an in-memory-only Buffer (used when history is disabled).
func New() *Buffer {
	return &Buffer{}
}

// Load reads path (one command per line, blank lines ignored) into a Buffer
// that rewrites path on every subsequent non-duplicate Add. A missing file
// is created empty and yields an empty Buffer.
func Load(path string) (*Buffer, error) {
	b := &Buffer{path: path, enabled: true}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return nil, fmt.Errorf("creating history directory: %w", err)
			}
			if err := os.WriteFile(path, nil, 0o644); err != nil {
				return nil, fmt.Errorf("creating history file: %w", err)
			}
			return b, nil
		}
		return nil, fmt.Errorf("opening history file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		b.lines = append(b.lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading history file: %w", err)
	}
	return b, nil
}

// Len returns the number of remembered commands.
func (b *Buffer) Len() int { return len(b.lines) }

// At returns the command at index i, 0 being the oldest.
func (b *Buffer) At(i int) string { return b.lines[i] }

// Entries returns every remembered command, oldest first.
func (b *Buffer) Entries() []string { return b.lines }

// Add appends command unless it duplicates the most recent entry, then
// rewrites the whole history file when persistence is enabled.
func (b *Buffer) Add(command string) error {
	if command == "" {
		return nil
	}
	if len(b.lines) > 0 && b.lines[len(b.lines)-1] == command {
		return nil
	}
	b.lines = append(b.lines, command)
	if !b.enabled {
		return nil
	}
	return b.save()
}

func (b *Buffer) save() error {
	var sb strings.Builder
	for _, l := range b.lines {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	return os.WriteFile(b.path, []byte(sb.String()), 0o644)
}

// DefaultPath returns ~/.shoehistory.
func DefaultPath(home string) string {
	return filepath.Join(home, ".shoehistory")
}
