// Package reconcile keeps a live, mutable view hierarchy in step with the
// immutable container tree.
//
// There is one reconciler per live container. Each keeps a private shadow of
// what it last applied and a guard flag for modal animations; nothing is
// shared between instances. All calls are expected on the host's single
// control loop, including animation completions.
package reconcile

import "github.com/jask/reactornav/internal/navigation"

// View is a live container: a navigation stack or a tab set.
type View interface {
	ContainerID() string
}

// Screen is a live screen bound to the view state it was built from.
type Screen interface {
	StateID() string
}

// ModalHost presents and dismisses a modal above a container. done must be
// called on the control loop once the animation has finished.
type ModalHost interface {
	Present(view View, done func())
	Dismiss(done func())
}

// NavigationHost is the live side of a navigation container.
type NavigationHost interface {
	ModalHost
	Screens() []Screen
	Push(screen Screen, animated bool)
	PopTo(screen Screen, animated bool)
}

// Slot is one materialised tab.
type Slot struct {
	View  View
	Title string
	Index int
}

// TabHost is the live side of a tab container.
type TabHost interface {
	ModalHost
	SetSlots(slots []Slot, animated bool)
	SelectedIndex() int
	Select(index int)
}

// Factory builds live objects from state. It is supplied by the host
// application.
type Factory interface {
	Screen(state navigation.ViewState) Screen
	Container(state navigation.ContainerState) View
}

// EventSink receives events that originate in the live hierarchy.
type EventSink interface {
	Fire(event navigation.Event)
}

// SinkFunc adapts a function to EventSink.
type SinkFunc func(navigation.Event)

func (f SinkFunc) Fire(event navigation.Event) { f(event) }
