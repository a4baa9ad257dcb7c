package scenario

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/jask/reactornav/internal/navigation"
	"github.com/jask/reactornav/internal/reconcile"
)

// Op is one native operation issued against the recording hierarchy.
type Op struct {
	Container string
	Action    string
	Detail    string
}

func (o Op) String() string {
	if o.Detail == "" {
		return o.Container + ": " + o.Action
	}
	return o.Container + ": " + o.Action + " " + o.Detail
}

// Runner owns a state tree and one recording container per live container.
// Like the real host it re-runs reconciliation over the whole tree after
// every reduced event and after animation completions.
type Runner struct {
	root    navigation.ContainerState
	live    map[string]container
	ops     []Op
	pending []func()
	queue   []navigation.Event
	logger  *log.Logger
}

type container interface {
	reconcile.View
	update(state navigation.ContainerState)
}

// NewRunner builds the live hierarchy for root and applies it once.
func NewRunner(root navigation.ContainerState, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	r := &Runner{root: root, live: make(map[string]container), logger: logger}
	r.Container(root)
	r.sync()
	return r
}

// Root returns the current state tree.
func (r *Runner) Root() navigation.ContainerState { return r.root }

// Ops returns every operation recorded so far.
func (r *Runner) Ops() []Op { return append([]Op(nil), r.ops...) }

// Pending reports how many animation completions are outstanding.
func (r *Runner) Pending() int { return len(r.pending) }

// Dispatch reduces ev into the tree and reconciles. Events fired by the
// hierarchy while reconciling are dispatched after it, in order.
func (r *Runner) Dispatch(ev navigation.Event) {
	r.queue = append(r.queue, ev)
	for len(r.queue) > 0 {
		next := r.queue[0]
		r.queue = r.queue[1:]
		if !navigation.Routes(r.root, next) {
			if guess, ok := navigation.Suggest(r.root, next.TargetContainer().UniqueID()); ok {
				r.logger.Printf("no container %q in tree (closest: %q)", next.TargetContainer(), guess)
			}
		}
		r.root = navigation.Reduce(r.root, next)
		r.sync()
	}
}

// Complete finishes every animation in flight, then reconciles again so the
// latest state is caught up.
func (r *Runner) Complete() {
	for len(r.pending) > 0 {
		done := r.pending[0]
		r.pending = r.pending[1:]
		done()
	}
	r.sync()
}

// Back simulates a native back gesture on a navigation container.
func (r *Runner) Back(target string) error {
	c, ok := r.live[target].(*recNavigation)
	if !ok {
		return fmt.Errorf("%w: no live navigation container %q", ErrInvalid, target)
	}
	c.nativePop()
	r.flush()
	return nil
}

// TapTab simulates the user picking a tab.
func (r *Runner) TapTab(target string, index int) error {
	c, ok := r.live[target].(*recTabs)
	if !ok {
		return fmt.Errorf("%w: no live tab container %q", ErrInvalid, target)
	}
	c.tap(index)
	r.flush()
	return nil
}

func (r *Runner) flush() {
	if len(r.queue) == 0 {
		return
	}
	ev := r.queue[0]
	r.queue = r.queue[1:]
	r.Dispatch(ev)
}

// sync drives every live container from the one tree, parents first.
func (r *Runner) sync() {
	navigation.Walk(r.root, func(s navigation.ContainerState) bool {
		if c, ok := r.live[s.ContainerTag().UniqueID()]; ok {
			c.update(s)
		}
		return true
	})
}

func (r *Runner) record(container, action, detail string) {
	r.ops = append(r.ops, Op{Container: container, Action: action, Detail: detail})
}

// Fire implements reconcile.EventSink.
func (r *Runner) Fire(ev navigation.Event) { r.queue = append(r.queue, ev) }

// Screen implements reconcile.Factory.
func (r *Runner) Screen(state navigation.ViewState) reconcile.Screen {
	return recScreen(state.UniqueID())
}

// Container implements reconcile.Factory. The new container replaces any
// earlier one with the same id and starts with its whole stack pushed.
func (r *Runner) Container(state navigation.ContainerState) reconcile.View {
	id := state.ContainerTag().UniqueID()
	var c container
	switch state.Kind() {
	case navigation.KindNavigation:
		n := &recNavigation{recModal: recModal{id: id, runner: r}}
		n.rec = reconcile.NewNavigation(state.ContainerTag(), n, r, r, reconcile.WithLogger(r.logger))
		n.rec.Seed(state.(navigation.NavigationState).Stack)
		c = n
	case navigation.KindTabs:
		t := &recTabs{recModal: recModal{id: id, runner: r}}
		t.rec = reconcile.NewTabs(state.ContainerTag(), t, r, r, reconcile.WithLogger(r.logger))
		c = t
	}
	r.live[id] = c
	return c
}

type recScreen string

func (s recScreen) StateID() string { return string(s) }

type recModal struct {
	id        string
	runner    *Runner
	presented reconcile.View
}

func (m *recModal) ContainerID() string { return m.id }

func (m *recModal) Present(view reconcile.View, done func()) {
	m.presented = view
	m.runner.record(m.id, "present", view.ContainerID())
	m.runner.pending = append(m.runner.pending, done)
}

func (m *recModal) Dismiss(done func()) {
	detail := ""
	if m.presented != nil {
		detail = m.presented.ContainerID()
	}
	m.presented = nil
	m.runner.record(m.id, "dismiss", detail)
	m.runner.pending = append(m.runner.pending, done)
}

type recNavigation struct {
	recModal
	rec     *reconcile.Navigation
	screens []reconcile.Screen
}

func (n *recNavigation) update(s navigation.ContainerState) {
	n.rec.Update(s.(navigation.NavigationState))
}

func (n *recNavigation) Screens() []reconcile.Screen { return n.screens }

func (n *recNavigation) Push(s reconcile.Screen, _ bool) {
	n.screens = append(n.screens, s)
	n.runner.record(n.id, "push", s.StateID())
}

func (n *recNavigation) PopTo(s reconcile.Screen, _ bool) {
	for i, l := range n.screens {
		if l.StateID() == s.StateID() {
			n.screens = n.screens[:i+1]
			break
		}
	}
	n.runner.record(n.id, "pop-to", s.StateID())
}

func (n *recNavigation) nativePop() {
	if len(n.screens) < 2 {
		return
	}
	top := n.screens[len(n.screens)-1]
	n.screens = n.screens[:len(n.screens)-1]
	n.runner.record(n.id, "native-pop", top.StateID())
	n.rec.DidPop()
}

type recTabs struct {
	recModal
	rec      *reconcile.Tabs
	slots    []reconcile.Slot
	selected int
}

func (t *recTabs) update(s navigation.ContainerState) {
	t.rec.Update(s.(navigation.TabsState))
}

func (t *recTabs) SetSlots(slots []reconcile.Slot, _ bool) {
	t.slots = slots
	ids := make([]string, len(slots))
	for i, s := range slots {
		ids[i] = s.View.ContainerID()
	}
	t.runner.record(t.id, "set-slots", "["+strings.Join(ids, " ")+"]")
}

func (t *recTabs) SelectedIndex() int { return t.selected }

func (t *recTabs) Select(index int) {
	t.selected = index
	t.runner.record(t.id, "select", fmt.Sprint(index))
}

func (t *recTabs) tap(index int) {
	if index < 0 || index >= len(t.slots) {
		return
	}
	if t.rec.ShouldSelect(index) {
		t.Select(index)
	}
}
