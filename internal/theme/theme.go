// Package theme holds the shell's fixed collection of RGB color themes and
// the rendering helpers built on top of the active one.
package theme

// Theme is a named RGB palette: primary, secondary, and error colors.
type Theme struct {
	Name      string
	Primary   string // "#RRGGBB"
	Secondary string
	Error     string
}

// defaultErr is the error color shared by every theme.
const defaultErr = "#FF0000"

// All is the fixed, static collection of themes. Order is significant: it
// is the order `theme` (no args) lists them in, and the order their index
// is addressed by.
var All = []Theme{
	{Name: "gold", Primary: "#FFC145", Secondary: "#5B5F97", Error: defaultErr},
	{Name: "earth", Primary: "#45FF8C", Secondary: "#97645B", Error: defaultErr},
	{Name: "element", Primary: "#FF4C4F", Secondary: "#89B4E5", Error: defaultErr},
	{Name: "lime", Primary: "#9DE64E", Secondary: "#72A6FF", Error: defaultErr},
	{Name: "fire", Primary: "#FF2B32", Secondary: "#FF6E00", Error: defaultErr},
}

// ByName returns the index of the theme with the given name, or -1 if none
// matches.
func ByName(name string) int {
	for i, t := range All {
		if t.Name == name {
			return i
		}
	}
	return -1
}
