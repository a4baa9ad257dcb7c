package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

const layoutFile = "layout.json"

// Layout is the part of the tab layout remembered between runs.
type Layout struct {
	HiddenTabs []string `json:"hidden_tabs"` // container ids
}

// Hidden reports whether the tab container id was hidden.
func (l Layout) Hidden(id string) bool {
	return slices.Contains(l.HiddenTabs, id)
}

// Store keeps preferences under Dir.
type Store struct {
	Dir string
}

// Default returns the store under the user config directory.
func Default() (*Store, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return &Store{Dir: filepath.Join(dir, "reactornav")}, nil
}

func (s *Store) layoutPath() string {
	return filepath.Join(s.Dir, layoutFile)
}

func (s *Store) SaveLayout(l Layout) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.layoutPath() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.layoutPath())
}

// LoadLayout returns the saved layout, or the zero layout when none was saved.
func (s *Store) LoadLayout() (Layout, error) {
	data, err := os.ReadFile(s.layoutPath())
	if err != nil {
		if os.IsNotExist(err) {
			return Layout{}, nil
		}
		return Layout{}, err
	}
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("decode %s: %w", s.layoutPath(), err)
	}
	return l, nil
}
