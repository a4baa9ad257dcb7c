package reconcile

import (
	"log"

	"github.com/jask/reactornav/internal/navigation"
)

// modalSlot reconciles the single modal slot of a container.
type modalSlot struct {
	owner     string
	applied   navigation.ContainerState
	animating bool
}

// reconcile starts at most one transition. A request that arrives while a
// transition is in flight is dropped, not queued.
func (m *modalSlot) reconcile(next navigation.ContainerState, host ModalHost, factory Factory, logger *log.Logger) {
	if m.animating {
		return
	}
	switch {
	case next != nil && m.applied == nil:
		m.animating = true
		m.applied = next
		host.Present(factory.Container(next), m.finish)
	case next == nil && m.applied != nil:
		m.animating = true
		m.applied = nil
		host.Dismiss(m.finish)
	case next != nil && !navigation.SameSlot(next, m.applied):
		logger.Printf("container %q: swapping modal %q for %q", m.owner, m.applied.ContainerTag(), next.ContainerTag())
		m.animating = true
		m.applied = next
		view := factory.Container(next)
		host.Dismiss(func() {
			host.Present(view, m.finish)
		})
	}
}

// finish only clears the guard; it never re-enters reconciliation.
func (m *modalSlot) finish() { m.animating = false }

func (m *modalSlot) current() navigation.ContainerState { return m.applied }
