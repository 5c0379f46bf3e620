package terminal

import (
	"os"

	"github.com/ardenvale/shoe/internal/env"
)

// Prompt renders the shell's fixed prompt: the working directory, with the
// home directory collapsed to ~, wrapped in brackets.
func Prompt() string {
	wd, err := os.Getwd()
	if err != nil {
		return "[?]> "
	}
	return "[" + env.DisplayPath(wd) + "]> "
}
