package theme

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/ardenvale/shoe/internal/token"
)

// ColorScheme wraps the active Theme with lipgloss renderers. It degrades
// to plain text automatically when the output profile or NO_COLOR says
// colors should not be emitted.
type ColorScheme struct {
	theme   Theme
	enabled bool

	primary   lipgloss.Style
	secondary lipgloss.Style
	errStyle  lipgloss.Style
	ghost     lipgloss.Style
}

// New builds a ColorScheme for the theme at index i in All (clamped into
// range), detecting color support from the environment the way the
// teacher's terminal.color package detects NO_COLOR/TERM=dumb.
func New(i int) *ColorScheme {
	if i < 0 || i >= len(All) {
		i = 0
	}
	t := All[i]
	enabled := IsSupported()

	style := func(hex string) lipgloss.Style {
		s := lipgloss.NewStyle()
		if enabled {
			s = s.Foreground(lipgloss.Color(hex))
		}
		return s
	}

	return &ColorScheme{
		theme:     t,
		enabled:   enabled,
		primary:   style(t.Primary),
		secondary: style(t.Secondary),
		errStyle:  style(t.Error),
		ghost:     style(t.Secondary).Faint(true).Italic(true),
	}
}

// IsSupported reports whether the current terminal environment should
// receive ANSI color escapes at all.
func IsSupported() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}

// Theme returns the underlying color palette.
func (c *ColorScheme) Theme() Theme { return c.theme }

// Primary renders s in the theme's primary color.
func (c *ColorScheme) Primary(s string) string { return c.primary.Render(s) }

// Secondary renders s in the theme's secondary color.
func (c *ColorScheme) Secondary(s string) string { return c.secondary.Render(s) }

// Error renders s in the theme's error color.
func (c *ColorScheme) Error(s string) string { return c.errStyle.Render(s) }

// Ghost renders s as a dim italic suggestion preview.
func (c *ColorScheme) Ghost(s string) string { return c.ghost.Render(s) }

// RenderToken colors one lexical token the way the line editor's display
// pass does: Keyword and EnvVar in primary, QuotedArg and Special in
// secondary, a RegularArg starting with '-' in secondary, everything else
// left in the default foreground.
func (c *ColorScheme) RenderToken(t token.Token) string {
	switch t.Kind {
	case token.Keyword, token.EnvVar:
		return c.Primary(t.Text)
	case token.QuotedArg, token.Special:
		return c.Secondary(t.Text)
	case token.RegularArg:
		if len(t.Text) > 0 && t.Text[0] == '-' {
			return c.Secondary(t.Text)
		}
		return t.Text
	default:
		return t.Text
	}
}
