// Package navigation holds the immutable view-container state tree and the
// reducer that routes navigation events to the node they address.
//
// The tree is plain value data. Reduce never mutates its input; nodes on the
// path from the root to the changed node are copied, everything else is
// carried over as is.
package navigation

import (
	"errors"
	"fmt"
)

// ViewState describes one screen. The host turns it into a live screen.
type ViewState interface {
	Identifiable
}

// Kind discriminates the container variants.
type Kind int

const (
	KindNavigation Kind = iota + 1
	KindTabs
)

func (k Kind) String() string {
	switch k {
	case KindNavigation:
		return "navigation"
	case KindTabs:
		return "tabs"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ContainerState is the recursive unit of the tree. It is implemented only by
// NavigationState and TabsState.
type ContainerState interface {
	Kind() Kind
	ContainerTag() Tag
	ModalState() ContainerState
	isContainer()
}

// ErrEmptyStack reports a navigation container built without any view state.
var ErrEmptyStack = errors.New("navigation stack is empty")

// ErrZeroTag reports a container built without an identity.
var ErrZeroTag = errors.New("container tag is zero")

// NavigationState is a linear stack of screens with an optional modal.
type NavigationState struct {
	Tag   Tag
	Stack []ViewState
	Modal ContainerState
}

// NewNavigation builds a navigation container rooted at root.
func NewNavigation(tag Tag, root ViewState, rest ...ViewState) NavigationState {
	stack := make([]ViewState, 0, len(rest)+1)
	stack = append(stack, root)
	stack = append(stack, rest...)
	return NavigationState{Tag: tag, Stack: stack}
}

func (NavigationState) Kind() Kind                   { return KindNavigation }
func (s NavigationState) ContainerTag() Tag          { return s.Tag }
func (s NavigationState) ModalState() ContainerState { return s.Modal }
func (NavigationState) isContainer()                 {}

// Top returns the last view state on the stack.
func (s NavigationState) Top() ViewState {
	if len(s.Stack) == 0 {
		return nil
	}
	return s.Stack[len(s.Stack)-1]
}

// StackIDs returns the identity sequence of the stack.
func (s NavigationState) StackIDs() []string {
	return stackIDs(s.Stack)
}

func (s NavigationState) Validate() error {
	if s.Tag.IsZero() {
		return ErrZeroTag
	}
	if len(s.Stack) == 0 {
		return fmt.Errorf("container %q: %w", s.Tag.UniqueID(), ErrEmptyStack)
	}
	return nil
}

// TabState is one slot of a tab container.
type TabState struct {
	Navigation NavigationState
	Hidden     bool
	Title      string
}

// Equal compares slot identity and visibility only. Title and the nested
// stack do not take part; they are not part of the tab set.
func (t TabState) Equal(other TabState) bool {
	return t.Navigation.Tag.Is(other.Navigation.Tag) && t.Hidden == other.Hidden
}

// TabsEqual reports whether two tab sets have the same slots.
func TabsEqual(a, b []TabState) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// TabsState is an ordered set of tabs, each wrapping a navigation container.
type TabsState struct {
	Tag           Tag
	SelectedIndex int
	Tabs          []TabState
	Modal         ContainerState
}

func (TabsState) Kind() Kind                   { return KindTabs }
func (s TabsState) ContainerTag() Tag          { return s.Tag }
func (s TabsState) ModalState() ContainerState { return s.Modal }
func (TabsState) isContainer()                 {}

// VisibleCount is the number of tabs that are not hidden.
func (s TabsState) VisibleCount() int {
	n := 0
	for _, t := range s.Tabs {
		if !t.Hidden {
			n++
		}
	}
	return n
}

func (s TabsState) Validate() error {
	if s.Tag.IsZero() {
		return ErrZeroTag
	}
	for _, t := range s.Tabs {
		if err := Validate(t.Navigation); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks a whole subtree.
func Validate(s ContainerState) error {
	if s == nil {
		return nil
	}
	switch c := s.(type) {
	case NavigationState:
		if err := c.Validate(); err != nil {
			return err
		}
	case TabsState:
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return Validate(s.ModalState())
}

// SameSlot reports whether a and b occupy the same slot by identity.
// Two absent containers are the same slot.
func SameSlot(a, b ContainerState) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ContainerTag().Is(b.ContainerTag())
}

func stackIDs(stack []ViewState) []string {
	out := make([]string, len(stack))
	for i, v := range stack {
		out[i] = v.UniqueID()
	}
	return out
}
