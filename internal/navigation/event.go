package navigation

import "fmt"

// Event is a navigation-kind event addressed to exactly one container.
type Event interface {
	TargetContainer() Tag
}

// PushView appends View to the target navigation stack.
type PushView struct {
	Container Tag
	View      ViewState
}

// PopView removes the top of the target navigation stack, never the last one.
type PopView struct {
	Container Tag
}

// PresentModal fills the target's modal slot, replacing any current modal.
type PresentModal struct {
	Container Tag
	Modal     ContainerState
}

// DismissModal empties the target's modal slot.
type DismissModal struct {
	Container Tag
}

// ChangeTab selects a tab. The index is not validated here.
type ChangeTab struct {
	Container Tag
	Index     int
}

// SetTabHidden shows or hides one tab of the target tab container.
type SetTabHidden struct {
	Container Tag
	Index     int
	Hidden    bool
}

func (e PushView) TargetContainer() Tag     { return e.Container }
func (e PopView) TargetContainer() Tag      { return e.Container }
func (e PresentModal) TargetContainer() Tag { return e.Container }
func (e DismissModal) TargetContainer() Tag { return e.Container }
func (e ChangeTab) TargetContainer() Tag    { return e.Container }
func (e SetTabHidden) TargetContainer() Tag { return e.Container }

func (e PushView) String() string {
	return fmt.Sprintf("push %s -> %s", viewID(e.View), e.Container)
}

func (e PopView) String() string { return fmt.Sprintf("pop %s", e.Container) }

func (e PresentModal) String() string {
	id := ""
	if e.Modal != nil {
		id = e.Modal.ContainerTag().UniqueID()
	}
	return fmt.Sprintf("present %s on %s", id, e.Container)
}

func (e DismissModal) String() string { return fmt.Sprintf("dismiss modal of %s", e.Container) }

func (e ChangeTab) String() string {
	return fmt.Sprintf("change tab of %s to %d", e.Container, e.Index)
}

func (e SetTabHidden) String() string {
	return fmt.Sprintf("set tab %d of %s hidden=%t", e.Index, e.Container, e.Hidden)
}

func viewID(v ViewState) string {
	if v == nil {
		return "<nil>"
	}
	return v.UniqueID()
}
