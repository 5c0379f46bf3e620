// Package config persists the shell's small amount of cross-session state:
// the active theme and the line editor's tab width.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultTabWidth is used when no state file exists yet.
	DefaultTabWidth = 4
	stateFileName   = "state.yaml"
)

// State is the persisted shell state.
type State struct {
	ThemeIndex int `yaml:"theme_index"`
	TabWidth   int `yaml:"tab_width"`
}

// Default returns the state a fresh install starts with.
func Default() *State {
	return &State{ThemeIndex: 0, TabWidth: DefaultTabWidth}
}

// Dir returns the directory state.yaml lives in, honoring XDG_CONFIG_HOME.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "shoe")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".shoe"
	}
	return filepath.Join(home, ".config", "shoe")
}

// Path returns the full path to state.yaml.
func Path() string {
	return filepath.Join(Dir(), stateFileName)
}

// Load reads state.yaml, returning Default() if it doesn't exist yet.
func Load() (*State, error) {
	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading state file: %w", err)
	}

	st := Default()
	if err := yaml.Unmarshal(data, st); err != nil {
		return nil, fmt.Errorf("parsing state file: %w", err)
	}
	if st.TabWidth < 1 {
		st.TabWidth = DefaultTabWidth
	}
	return st, nil
}

// Save writes state.yaml, creating its directory if needed.
func (s *State) Save() error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling state: %w", err)
	}

	if err := os.WriteFile(Path(), data, 0o644); err != nil {
		return fmt.Errorf("writing state file: %w", err)
	}
	return nil
}
