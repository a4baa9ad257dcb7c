package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/reactornav/internal/navigation"
	"github.com/jask/reactornav/internal/reconcile"
)

// animDoneMsg is posted back onto the loop when a modal animation ends.
type animDoneMsg struct {
	done func()
}

// liveContainer is one container of the live hierarchy.
type liveContainer interface {
	reconcile.View
	update(state navigation.ContainerState)
	presented() reconcile.View
	animating() bool
}

// screen is a live screen bound to a view state. The cursor is purely
// presentational and never enters the state tree.
type screen struct {
	state  navigation.ViewState
	cursor int
}

func (s *screen) StateID() string { return s.state.UniqueID() }

// modalHost animates the single modal slot of a container.
type modalHost struct {
	app     *App
	id      string
	modal   reconcile.View
	running int
}

func (m *modalHost) ContainerID() string { return m.id }

func (m *modalHost) Present(view reconcile.View, done func()) {
	m.modal = view
	m.app.animate(m, done)
}

func (m *modalHost) Dismiss(done func()) {
	m.modal = nil
	m.app.animate(m, done)
}

func (m *modalHost) presented() reconcile.View { return m.modal }

func (m *modalHost) animating() bool { return m.running > 0 }

// animate schedules done after the configured animation duration.
func (a *App) animate(m *modalHost, done func()) {
	m.running++
	finish := func() {
		m.running--
		done()
	}
	if a.cfg.UI.AnimationDuration <= 0 {
		a.cmds = append(a.cmds, func() tea.Msg { return animDoneMsg{done: finish} })
		return
	}
	a.cmds = append(a.cmds, tea.Tick(a.cfg.UI.AnimationDuration, func(time.Time) tea.Msg {
		return animDoneMsg{done: finish}
	}))
}

type navView struct {
	modalHost
	rec     *reconcile.Navigation
	screens []reconcile.Screen
}

func (n *navView) update(s navigation.ContainerState) {
	n.rec.Update(s.(navigation.NavigationState))
}

func (n *navView) Screens() []reconcile.Screen { return n.screens }

func (n *navView) Push(s reconcile.Screen, _ bool) {
	n.screens = append(n.screens, s)
}

func (n *navView) PopTo(s reconcile.Screen, _ bool) {
	for i, l := range n.screens {
		if l.StateID() == s.StateID() {
			n.screens = n.screens[:i+1]
			return
		}
	}
}

func (n *navView) top() *screen {
	if len(n.screens) == 0 {
		return nil
	}
	return n.screens[len(n.screens)-1].(*screen)
}

// back removes the top screen the way a native back gesture does and tells
// the reconciler afterwards.
func (n *navView) back() bool {
	if len(n.screens) < 2 {
		return false
	}
	n.screens = n.screens[:len(n.screens)-1]
	n.rec.DidPop()
	return true
}

type tabView struct {
	modalHost
	rec      *reconcile.Tabs
	slots    []reconcile.Slot
	selected int
}

func (t *tabView) update(s navigation.ContainerState) {
	t.rec.Update(s.(navigation.TabsState))
}

func (t *tabView) SetSlots(slots []reconcile.Slot, _ bool) {
	t.slots = slots
	if t.selected >= len(slots) {
		t.selected = max(len(slots)-1, 0)
	}
}

func (t *tabView) SelectedIndex() int { return t.selected }

func (t *tabView) Select(index int) { t.selected = index }

// tap asks the reconciler before moving the selection.
func (t *tabView) tap(index int) {
	if index < 0 || index >= len(t.slots) || index == t.selected {
		return
	}
	if t.rec.ShouldSelect(index) {
		t.selected = index
	}
}

func (t *tabView) current() *navView {
	if t.selected < 0 || t.selected >= len(t.slots) {
		return nil
	}
	nav, _ := t.slots[t.selected].View.(*navView)
	return nav
}

// Screen implements reconcile.Factory.
func (a *App) Screen(state navigation.ViewState) reconcile.Screen {
	return &screen{state: state}
}

// Container implements reconcile.Factory. A container built for an id that
// is already live replaces the old one. Navigation containers start with
// their whole stack in place.
func (a *App) Container(state navigation.ContainerState) reconcile.View {
	id := state.ContainerTag().UniqueID()
	var c liveContainer
	switch state.Kind() {
	case navigation.KindNavigation:
		n := &navView{modalHost: modalHost{app: a, id: id}}
		n.rec = reconcile.NewNavigation(state.ContainerTag(), n, a, a, reconcile.WithLogger(a.logger))
		n.rec.Seed(state.(navigation.NavigationState).Stack)
		c = n
	case navigation.KindTabs:
		t := &tabView{modalHost: modalHost{app: a, id: id}}
		t.rec = reconcile.NewTabs(state.ContainerTag(), t, a, a, reconcile.WithLogger(a.logger))
		c = t
	default:
		return nil
	}
	a.live[id] = c
	return c
}

// Fire implements reconcile.EventSink. Events are queued and reduced on the
// same Update call that produced them.
func (a *App) Fire(ev navigation.Event) {
	a.queue = append(a.queue, ev)
}
