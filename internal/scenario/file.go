// Package scenario replays navigation events against a recording view
// hierarchy. A scenario file describes the starting tree and a list of
// steps; replaying it yields the native operations the reconcilers issued.
package scenario

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/jask/reactornav/internal/navigation"
)

// File is a parsed scenario.
type File struct {
	Name  string        `toml:"name"`
	Root  ContainerSpec `toml:"root"`
	Steps []Step        `toml:"steps"`
}

// ContainerSpec describes a container subtree.
type ContainerSpec struct {
	Kind     string         `toml:"kind"`
	Tag      string         `toml:"tag"`
	Stack    []string       `toml:"stack"`
	Selected int            `toml:"selected"`
	Tabs     []TabSpec      `toml:"tabs"`
	Modal    *ContainerSpec `toml:"modal"`
}

// TabSpec describes one tab of a tabs container.
type TabSpec struct {
	Tag    string   `toml:"tag"`
	Title  string   `toml:"title"`
	Hidden bool     `toml:"hidden"`
	Stack  []string `toml:"stack"`
}

// Step is one scripted input.
type Step struct {
	Event  string         `toml:"event"`
	Target string         `toml:"target"`
	View   string         `toml:"view"`
	Index  int            `toml:"index"`
	Hidden bool           `toml:"hidden"`
	Modal  *ContainerSpec `toml:"modal"`
}

// ErrInvalid reports a malformed scenario.
var ErrInvalid = errors.New("invalid scenario")

// View is the view state used by scenarios; its id is the string itself.
type View string

func (v View) UniqueID() string { return string(v) }

// Load reads and parses the scenario at path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read scenario: %w", err)
	}
	return Parse(data)
}

// Parse decodes a scenario and checks that every container in it builds.
func Parse(data []byte) (File, error) {
	var f File
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return File{}, fmt.Errorf("decode scenario: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return File{}, fmt.Errorf("%w: unknown key %q", ErrInvalid, undecoded[0].String())
	}
	if _, err := f.Root.Build(); err != nil {
		return File{}, err
	}
	for i, s := range f.Steps {
		if _, ok := stepKinds[s.Event]; !ok {
			return File{}, fmt.Errorf("%w: step %d: unknown event %q", ErrInvalid, i+1, s.Event)
		}
		if s.Event != "complete" && s.Target == "" {
			return File{}, fmt.Errorf("%w: step %d: %s needs a target", ErrInvalid, i+1, s.Event)
		}
		if s.Event == "push" && s.View == "" {
			return File{}, fmt.Errorf("%w: step %d: push needs a view", ErrInvalid, i+1)
		}
		if s.Event == "present" {
			if s.Modal == nil {
				return File{}, fmt.Errorf("%w: step %d: present needs a modal", ErrInvalid, i+1)
			}
			if _, err := s.Modal.Build(); err != nil {
				return File{}, fmt.Errorf("step %d: %w", i+1, err)
			}
		}
	}
	return f, nil
}

var stepKinds = map[string]struct{}{
	"push": {}, "pop": {}, "present": {}, "dismiss": {}, "change_tab": {},
	"set_hidden": {}, "complete": {}, "back": {}, "tap_tab": {},
}

// Build turns the description into container state.
func (c ContainerSpec) Build() (navigation.ContainerState, error) {
	if c.Tag == "" {
		return nil, fmt.Errorf("%w: container without tag", ErrInvalid)
	}
	var modal navigation.ContainerState
	if c.Modal != nil {
		m, err := c.Modal.Build()
		if err != nil {
			return nil, err
		}
		modal = m
	}
	switch c.Kind {
	case "", "navigation":
		nav, err := buildNavigation(c.Tag, c.Stack)
		if err != nil {
			return nil, err
		}
		nav.Modal = modal
		return nav, nil
	case "tabs":
		tabs := navigation.TabsState{
			Tag:           navigation.NamedTag(c.Tag),
			SelectedIndex: c.Selected,
			Modal:         modal,
		}
		for _, t := range c.Tabs {
			nav, err := buildNavigation(t.Tag, t.Stack)
			if err != nil {
				return nil, err
			}
			tabs.Tabs = append(tabs.Tabs, navigation.TabState{Navigation: nav, Hidden: t.Hidden, Title: t.Title})
		}
		return tabs, nil
	default:
		return nil, fmt.Errorf("%w: container %q has unknown kind %q", ErrInvalid, c.Tag, c.Kind)
	}
}

func buildNavigation(tag string, stack []string) (navigation.NavigationState, error) {
	if tag == "" {
		return navigation.NavigationState{}, fmt.Errorf("%w: container without tag", ErrInvalid)
	}
	s := navigation.NavigationState{Tag: navigation.NamedTag(tag)}
	for _, id := range stack {
		s.Stack = append(s.Stack, View(id))
	}
	if err := s.Validate(); err != nil {
		return navigation.NavigationState{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return s, nil
}
