// Package terminal provides the LineEditor for interactive line editing.
package terminal

import (
	"strings"

	"github.com/ardenvale/shoe/internal/theme"
	"github.com/ardenvale/shoe/internal/token"
	"github.com/mattn/go-runewidth"
)

// HistoryProvider is the read-only view of command history the editor
// needs: index-based navigation and a newest-first ghost-suggestion scan.
type HistoryProvider interface {
	Len() int
	At(i int) string // 0 = oldest
}

// Completer proposes the cycleIndex-th completion for word, or ok=false.
type Completer func(word string, cycleIndex int, keywordPosition bool) (string, bool)

// tabState is the Tab-cycling snapshot: the input/cursor as they stood
// before the first Tab press in this cycle, plus how many Tabs since.
type tabState struct {
	input  string
	cursor int
	cycle  int
}

// LineEditor drives one interactive input line: raw-mode key handling,
// cycling Tab completion, a history ghost suggestion, and wrap-aware
// cursor placement.
type LineEditor struct {
	input  []rune
	cursor int

	terminal *Terminal
	colors   *theme.ColorScheme
	history  HistoryProvider
	complete Completer

	historyIndex int // 0..history.Len(); Len() means "not navigating"
	tab          *tabState
}

// NewLineEditor creates a LineEditor bound to term.
func NewLineEditor(term *Terminal) *LineEditor {
	return &LineEditor{terminal: term}
}

// SetColors sets the theme used to render tokens, the prompt and the
// ghost suggestion.
func (e *LineEditor) SetColors(c *theme.ColorScheme) { e.colors = c }

// SetHistory sets the history source for navigation and ghost suggestions.
func (e *LineEditor) SetHistory(h HistoryProvider) { e.history = h }

// SetCompleter sets the Tab-completion callback.
func (e *LineEditor) SetCompleter(c Completer) { e.complete = c }

// ReadLine prints prompt, enters raw mode, and processes key events until
// Enter or Ctrl-C. It returns the finished line (empty on Ctrl-C).
func (e *LineEditor) ReadLine(prompt string) (string, error) {
	restore, err := e.terminal.EnterRawMode()
	if err != nil {
		return "", err
	}
	defer restore()

	e.input = e.input[:0]
	e.cursor = 0
	e.tab = nil
	if e.history != nil {
		e.historyIndex = e.history.Len()
	}

	e.render(prompt)

	for {
		key, err := e.terminal.ReadKey()
		if err != nil {
			return "", err
		}

		if key.Special != KeyTab {
			e.tab = nil
		}

		switch key.Special {
		case KeyEnter:
			e.terminal.WriteString("\r\n")
			return string(e.input), nil

		case KeyCtrlC:
			e.input = e.input[:0]
			e.cursor = 0
			e.terminal.WriteString("\r\n")
			return "", nil

		case KeyBackspace:
			if e.cursor > 0 {
				e.cursor--
				e.deleteAt(e.cursor)
			}

		case KeyDelete:
			if e.cursor < len(e.input) {
				e.deleteAt(e.cursor)
			}

		case KeyEscape:
			e.input = e.input[:0]
			e.cursor = 0

		case KeyLeft:
			if e.cursor > 0 {
				e.cursor--
			}

		case KeyRight:
			if e.cursor == len(e.input) {
				if g := e.ghostSuggestion(); g != "" {
					e.insertString(g)
					break
				}
			}
			if e.cursor < len(e.input) {
				e.cursor++
			}

		case KeyHome, KeyCtrlA:
			e.cursor = 0

		case KeyEnd, KeyCtrlE:
			e.cursor = len(e.input)

		case KeyUp:
			e.historyPrevious()

		case KeyDown:
			e.historyNext()

		case KeyTab:
			e.handleTab()

		case KeyCtrlL:
			e.terminal.Clear()

		case KeyNone:
			if key.Rune != 0 && !key.Ctrl && !key.Alt {
				e.insert(key.Rune)
			}

		default:
			if key.Rune != 0 && !key.Ctrl && !key.Alt {
				e.insert(key.Rune)
			}
		}

		e.render(prompt)
	}
}

func (e *LineEditor) insert(r rune) {
	e.input = append(e.input, 0)
	copy(e.input[e.cursor+1:], e.input[e.cursor:])
	e.input[e.cursor] = r
	e.cursor++
}

func (e *LineEditor) insertString(s string) {
	for _, r := range s {
		e.insert(r)
	}
}

func (e *LineEditor) deleteAt(pos int) {
	copy(e.input[pos:], e.input[pos+1:])
	e.input = e.input[:len(e.input)-1]
}

func (e *LineEditor) historyPrevious() {
	if e.history == nil || e.historyIndex == 0 {
		return
	}
	e.historyIndex--
	e.input = []rune(e.history.At(e.historyIndex))
	e.cursor = len(e.input)
}

func (e *LineEditor) historyNext() {
	if e.history == nil {
		return
	}
	if e.historyIndex >= e.history.Len() {
		return
	}
	e.historyIndex++
	if e.historyIndex == e.history.Len() {
		e.input = e.input[:0]
	} else {
		e.input = []rune(e.history.At(e.historyIndex))
	}
	e.cursor = len(e.input)
}

// ghostSuggestion scans history newest-first for the first line starting
// with the current input, returning just its unmatched suffix.
func (e *LineEditor) ghostSuggestion() string {
	if e.history == nil || len(e.input) == 0 {
		return ""
	}
	line := string(e.input)
	for i := e.history.Len() - 1; i >= 0; i-- {
		cmd := e.history.At(i)
		if cmd != line && strings.HasPrefix(cmd, line) {
			return cmd[len(line):]
		}
	}
	return ""
}

// handleTab implements the spec's snapshot/cycle Tab semantics: the first
// Tab since an edit snapshots the input and starts cycling at 0; further
// Tabs restore the snapshot and advance the cycle index.
func (e *LineEditor) handleTab() {
	if e.complete == nil {
		return
	}

	if e.tab == nil {
		e.tab = &tabState{input: string(e.input), cursor: e.cursor, cycle: 0}
	} else {
		e.input = []rune(e.tab.input)
		e.cursor = e.tab.cursor
		e.tab.cycle++
	}

	word, start, end, quoted, keywordPos := e.currentWord()
	completion, ok := e.complete(word, e.tab.cycle, keywordPos)
	if !ok {
		return
	}

	replacement := completion
	if !quoted && strings.ContainsRune(completion, ' ') {
		isLastToken := end == len(e.input)
		if isLastToken {
			replacement = "\"" + completion
		} else {
			replacement = "\"" + completion + "\""
		}
	}

	e.input = append(e.input[:start:start], append([]rune(replacement), e.input[end:]...)...)
	e.cursor = start + len([]rune(replacement))
}

// currentWord locates the token under the cursor using the tokenizer with
// separators retained, so offsets reconstruct exactly from token lengths.
// Returns the token's raw text (quotes stripped), its [start,end) rune
// range in e.input, whether it was quoted, and whether it sits in keyword
// position (the first token of its pipeline segment).
func (e *LineEditor) currentWord() (word string, start, end int, quoted bool, keywordPos bool) {
	toks := token.Tokenize(string(e.input), true)

	offset := 0
	segmentStart := true
	for _, t := range toks {
		runes := []rune(t.Text)
		tStart, tEnd := offset, offset+len(runes)

		if t.IsRunBoundary() {
			segmentStart = true
			offset = tEnd
			continue
		}

		if e.cursor > tStart && e.cursor <= tEnd && t.Kind != token.Special {
			raw := strings.Trim(t.Text, "\"")
			return raw, tStart, tEnd, t.Kind == token.QuotedArg, segmentStart
		}

		if strings.TrimSpace(t.Text) != "" {
			segmentStart = false
		}
		offset = tEnd
	}

	// No token covers the cursor (start of line, or after whitespace):
	// insert a new word at the cursor.
	return "", e.cursor, e.cursor, false, segmentStart
}

// render redraws the prompt, the token-colored input, and the ghost
// suggestion, then repositions the cursor accounting for line wrap.
func (e *LineEditor) render(prompt string) {
	e.terminal.WriteString("\r")
	e.terminal.WriteString("\x1b[J")

	if e.colors != nil {
		e.terminal.WriteString(e.colors.Primary(prompt))
	} else {
		e.terminal.WriteString(prompt)
	}

	line := string(e.input)
	for _, t := range token.Tokenize(line, true) {
		if e.colors != nil {
			e.terminal.WriteString(e.colors.RenderToken(t))
		} else {
			e.terminal.WriteString(t.Text)
		}
	}

	ghost := e.ghostSuggestion()
	if ghost != "" {
		if e.colors != nil {
			e.terminal.WriteString(e.colors.Ghost(ghost))
		} else {
			e.terminal.WriteString(ghost)
		}
	}

	termWidth := Width()
	promptWidth := runewidth.StringWidth(prompt)
	endOffset := promptWidth + runewidth.StringWidth(line) + runewidth.StringWidth(ghost)
	targetOffset := promptWidth + runewidth.StringWidth(string(e.input[:e.cursor]))

	curRow, _ := cellPos(termWidth, endOffset)
	targetRow, targetCol := cellPos(termWidth, targetOffset)

	if curRow > targetRow {
		e.terminal.MoveCursorUp(curRow - targetRow)
	}
	e.terminal.WriteString("\r")
	if targetCol > 0 {
		e.terminal.MoveCursorRight(targetCol)
	}
}

func cellPos(termWidth, offset int) (row, col int) {
	if termWidth <= 0 {
		termWidth = 80
	}
	return offset / termWidth, offset % termWidth
}
