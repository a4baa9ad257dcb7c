// Package requeststate tracks the lifecycle of named asynchronous commands.
package requeststate

import (
	"errors"
	"fmt"
	"reflect"
	"sort"

	"github.com/jask/reactornav/internal/navigation"
)

// State is the lifecycle stage of one command.
type State int

const (
	None State = iota
	Requested
	Success
	Error
)

func (s State) String() string {
	switch s {
	case None:
		return "Reset Network State"
	case Requested:
		return "Requested"
	case Success:
		return "Completed Successfully"
	case Error:
		return "Error Occurred:"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// CanMoveTo reports whether the transition s -> next is allowed. A command
// that is already requested cannot be requested again.
func (s State) CanMoveTo(next State) bool {
	if s == Requested {
		return next != Requested
	}
	return true
}

// ErrRejectedTransition is returned when a transition breaks the policy.
var ErrRejectedTransition = errors.New("request state transition rejected")

// Keyer lets a command choose its own key.
type Keyer interface {
	CommandKey() string
}

// CommandKey returns the tracker key for cmd: its own key when it implements
// Keyer, otherwise the name of its Go type.
func CommandKey(cmd any) string {
	if cmd == nil {
		return ""
	}
	if k, ok := cmd.(Keyer); ok {
		return k.CommandKey()
	}
	return navigation.TypeName(reflect.TypeOf(cmd))
}

// Change is the lifecycle event that feeds the tracker.
type Change struct {
	CommandKey string
	State      State
	Err        error
}

func (c Change) String() string {
	msg := ""
	if c.Err != nil {
		msg = c.Err.Error()
	}
	return fmt.Sprintf("%s: %s %s", c.CommandKey, c.State, msg)
}

// Tracker holds the last state and the last error of every command key.
// It is not safe for concurrent use; it lives on the host's control loop.
type Tracker struct {
	states map[string]State
	errs   map[string]error
}

func NewTracker() *Tracker {
	return &Tracker{
		states: make(map[string]State),
		errs:   make(map[string]error),
	}
}

// Record moves key to next. An illegal transition leaves the tracker
// unchanged and returns ErrRejectedTransition. A non-nil err is stored under
// key; stored errors are only ever overwritten, never cleared.
func (t *Tracker) Record(key string, next State, err error) error {
	cur := t.State(key)
	if !cur.CanMoveTo(next) {
		return fmt.Errorf("%s: %s -> %s: %w", key, cur, next, ErrRejectedTransition)
	}
	t.states[key] = next
	if err != nil {
		t.errs[key] = err
	}
	return nil
}

// React applies a Change event. Other events are ignored.
func (t *Tracker) React(event any) error {
	c, ok := event.(Change)
	if !ok {
		return nil
	}
	return t.Record(c.CommandKey, c.State, c.Err)
}

// State returns the current state of key, None if never recorded.
func (t *Tracker) State(key string) State {
	return t.states[key]
}

// Err returns the last error stored for key.
func (t *Tracker) Err(key string) error {
	return t.errs[key]
}

// Keys lists every recorded key in order.
func (t *Tracker) Keys() []string {
	out := make([]string, 0, len(t.states))
	for k := range t.states {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
