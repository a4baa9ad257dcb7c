package reconcile

import (
	"log"
	"slices"

	"github.com/jask/reactornav/internal/navigation"
)

// Tabs reconciles one tab container. The navigation containers inside the
// tabs are reconciled by their own Navigation reconcilers; Tabs only decides
// which slots exist and which one is selected.
type Tabs struct {
	tag     navigation.Tag
	host    TabHost
	factory Factory
	sink    EventSink
	logger  *log.Logger

	applied []navigation.TabState
	slots   []*Slot
	modal   modalSlot
}

func NewTabs(tag navigation.Tag, host TabHost, factory Factory, sink EventSink, opts ...Option) *Tabs {
	o := buildOptions(opts)
	return &Tabs{
		tag:     tag,
		host:    host,
		factory: factory,
		sink:    sink,
		logger:  o.logger,
		modal:   modalSlot{owner: tag.UniqueID()},
	}
}

func (r *Tabs) Tag() navigation.Tag { return r.tag }

// Update applies state: tab slots, selection, then the modal slot. While a
// modal animation is in flight the whole call is dropped.
func (r *Tabs) Update(state navigation.TabsState) {
	if r.modal.animating {
		r.logger.Printf("container %q: modal transition in flight, update dropped", r.tag)
		return
	}
	if !navigation.TabsEqual(state.Tabs, r.applied) {
		prevCount := len(r.applied)
		r.applied = slices.Clone(state.Tabs)
		r.updateSlots(prevCount != len(state.Tabs))
	}
	r.updateSelection(state.SelectedIndex)
	r.modal.reconcile(state.Modal, r.host, r.factory, r.logger)
}

func (r *Tabs) updateSlots(rebuild bool) {
	if rebuild {
		r.slots = make([]*Slot, len(r.applied))
		for i, tab := range r.applied {
			if !tab.Hidden {
				r.slots[i] = r.materialize(i, tab)
			}
		}
	} else {
		for i, tab := range r.applied {
			switch {
			case tab.Hidden:
				r.slots[i] = nil
			case r.slots[i] == nil:
				r.slots[i] = r.materialize(i, tab)
			}
		}
	}
	r.host.SetSlots(r.visibleSlots(), true)
}

func (r *Tabs) materialize(index int, tab navigation.TabState) *Slot {
	return &Slot{
		View:  r.factory.Container(tab.Navigation),
		Title: tab.Title,
		Index: index,
	}
}

func (r *Tabs) visibleSlots() []Slot {
	out := make([]Slot, 0, len(r.slots))
	for _, s := range r.slots {
		if s != nil {
			out = append(out, *s)
		}
	}
	return out
}

func (r *Tabs) updateSelection(index int) {
	if index == r.host.SelectedIndex() {
		return
	}
	if index < 0 || index >= len(r.visibleSlots()) {
		r.logger.Printf("container %q: selection %d out of range, ignored", r.tag, index)
		return
	}
	r.host.Select(index)
}

// ShouldSelect is called by the host when the user picks a tab. The change
// is reported as a ChangeTab event and the live selection is left alone; it
// moves once the reduced state comes back through Update.
func (r *Tabs) ShouldSelect(index int) bool {
	r.sink.Fire(navigation.ChangeTab{Container: r.tag, Index: index})
	return false
}

// AnimatingModal reports whether a modal transition is in flight.
func (r *Tabs) AnimatingModal() bool { return r.modal.animating }

// AppliedModal returns the modal last applied.
func (r *Tabs) AppliedModal() navigation.ContainerState { return r.modal.current() }

// Slots returns the materialised slots, hidden tabs included as nil views.
func (r *Tabs) Slots() []Slot {
	out := make([]Slot, len(r.slots))
	for i, s := range r.slots {
		if s != nil {
			out[i] = *s
		} else {
			out[i] = Slot{Index: i}
		}
	}
	return out
}
