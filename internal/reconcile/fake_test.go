package reconcile

import (
	"fmt"

	"github.com/jask/reactornav/internal/navigation"
)

type screen string

func (s screen) UniqueID() string { return string(s) }

type liveScreen string

func (s liveScreen) StateID() string { return string(s) }

type liveContainer string

func (c liveContainer) ContainerID() string { return string(c) }

type factory struct{ built []string }

func (f *factory) Screen(state navigation.ViewState) Screen {
	f.built = append(f.built, "screen:"+state.UniqueID())
	return liveScreen(state.UniqueID())
}

func (f *factory) Container(state navigation.ContainerState) View {
	id := state.ContainerTag().UniqueID()
	f.built = append(f.built, "container:"+id)
	return liveContainer(id)
}

type sink struct{ events []navigation.Event }

func (s *sink) Fire(e navigation.Event) { s.events = append(s.events, e) }

// modalHost records transitions and holds completions until finish is called.
type modalHost struct {
	ops     []string
	pending []func()
}

func (h *modalHost) Present(view View, done func()) {
	h.ops = append(h.ops, "present "+view.ContainerID())
	h.pending = append(h.pending, done)
}

func (h *modalHost) Dismiss(done func()) {
	h.ops = append(h.ops, "dismiss")
	h.pending = append(h.pending, done)
}

// finish runs the completions queued so far, including ones they queue.
func (h *modalHost) finish() {
	for len(h.pending) > 0 {
		done := h.pending[0]
		h.pending = h.pending[1:]
		done()
	}
}

type navHost struct {
	modalHost
	live []Screen
}

func (h *navHost) Screens() []Screen { return h.live }

func (h *navHost) Push(s Screen, animated bool) {
	h.ops = append(h.ops, "push "+s.StateID())
	h.live = append(h.live, s)
}

func (h *navHost) PopTo(s Screen, animated bool) {
	h.ops = append(h.ops, "pop-to "+s.StateID())
	for i, l := range h.live {
		if l.StateID() == s.StateID() {
			h.live = h.live[:i+1]
			return
		}
	}
}

type tabHost struct {
	modalHost
	slots    []Slot
	selected int
}

func (h *tabHost) SetSlots(slots []Slot, animated bool) {
	ids := make([]string, len(slots))
	for i, s := range slots {
		ids[i] = s.View.ContainerID()
	}
	h.ops = append(h.ops, fmt.Sprintf("set-slots %v", ids))
	h.slots = slots
}

func (h *tabHost) SelectedIndex() int { return h.selected }

func (h *tabHost) Select(i int) {
	h.ops = append(h.ops, fmt.Sprintf("select %d", i))
	h.selected = i
}
