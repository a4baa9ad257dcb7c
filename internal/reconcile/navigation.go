package reconcile

import (
	"io"
	"log"
	"slices"

	"github.com/jask/reactornav/internal/navigation"
)

// Option configures a reconciler.
type Option func(*options)

type options struct {
	logger *log.Logger
}

// WithLogger sets the logger used for dropped or unsupported updates.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: log.New(io.Discard, "", 0)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Navigation reconciles one navigation container.
type Navigation struct {
	tag     navigation.Tag
	host    NavigationHost
	factory Factory
	sink    EventSink
	logger  *log.Logger

	applied []string
	modal   modalSlot
}

func NewNavigation(tag navigation.Tag, host NavigationHost, factory Factory, sink EventSink, opts ...Option) *Navigation {
	o := buildOptions(opts)
	return &Navigation{
		tag:     tag,
		host:    host,
		factory: factory,
		sink:    sink,
		logger:  o.logger,
		modal:   modalSlot{owner: tag.UniqueID()},
	}
}

func (r *Navigation) Tag() navigation.Tag { return r.tag }

// Update applies state to the live hierarchy: stack first, then the modal
// slot. While a modal animation is in flight the whole call is dropped; the
// host re-delivers the latest state once it completes.
func (r *Navigation) Update(state navigation.NavigationState) {
	if r.modal.animating {
		r.logger.Printf("container %q: modal transition in flight, update dropped", r.tag)
		return
	}
	r.updateStack(state.Stack)
	r.modal.reconcile(state.Modal, r.host, r.factory, r.logger)
}

func (r *Navigation) updateStack(stack []navigation.ViewState) {
	next := stateIDs(stack)
	prev := r.applied
	r.applied = next

	switch {
	case len(next) > len(prev):
		if !slices.Equal(prev, next[:len(prev)]) {
			r.logger.Printf("container %q: stack %v -> %v is not a push, left as is", r.tag, prev, next)
			return
		}
		if len(next)-len(prev) > 1 {
			r.logger.Printf("container %q: %d views pushed at once, only the top is shown", r.tag, len(next)-len(prev))
		}
		top := stack[len(stack)-1]
		if live := r.host.Screens(); len(live) > 0 && live[len(live)-1].StateID() == top.UniqueID() {
			return
		}
		r.host.Push(r.factory.Screen(top), true)
	case len(next) < len(prev):
		if len(next) == 0 {
			return
		}
		target := next[len(next)-1]
		live := r.host.Screens()
		idx := slices.IndexFunc(live, func(s Screen) bool { return s.StateID() == target })
		if idx < 0 {
			r.logger.Printf("container %q: no live screen for %q, pop skipped", r.tag, target)
			return
		}
		if idx == len(live)-1 {
			return
		}
		r.host.PopTo(live[idx], true)
	}
}

// Seed fills the live stack of a freshly built container with every view of
// stack, unanimated, and records it as applied. Hosts call it from their
// factory so a container rebuilt with a deep stack can still go back. It does
// nothing once the container holds screens.
func (r *Navigation) Seed(stack []navigation.ViewState) {
	if len(r.applied) > 0 || len(r.host.Screens()) > 0 {
		return
	}
	for _, v := range stack {
		r.host.Push(r.factory.Screen(v), false)
	}
	r.applied = stateIDs(stack)
}

// DidPop is called by the host after a native back navigation removed a
// screen. The state is told through a PopView event.
func (r *Navigation) DidPop() {
	if len(r.applied) > len(r.host.Screens()) {
		r.sink.Fire(navigation.PopView{Container: r.tag})
	}
}

// AnimatingModal reports whether a modal transition is in flight.
func (r *Navigation) AnimatingModal() bool { return r.modal.animating }

// Applied returns the identity sequence last applied.
func (r *Navigation) Applied() []string { return slices.Clone(r.applied) }

// AppliedModal returns the modal last applied.
func (r *Navigation) AppliedModal() navigation.ContainerState { return r.modal.current() }

func stateIDs(stack []navigation.ViewState) []string {
	out := make([]string, len(stack))
	for i, v := range stack {
		out[i] = v.UniqueID()
	}
	return out
}
