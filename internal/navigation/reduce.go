package navigation

import "slices"

// Reduce applies event to tree and returns the new tree. Events that are not
// navigation events pass through untouched. A navigation event is applied at
// the node whose tag matches its target; every other node is offered the
// event recursively through tab navigations and modal slots.
func Reduce(tree ContainerState, event any) ContainerState {
	ev, ok := event.(Event)
	if !ok || tree == nil {
		return tree
	}
	return reduce(tree, ev)
}

func reduce(tree ContainerState, ev Event) ContainerState {
	switch s := tree.(type) {
	case NavigationState:
		return reduceNavigation(s, ev)
	case TabsState:
		return reduceTabs(s, ev)
	default:
		return tree
	}
}

// ReduceNavigation is Reduce specialised to a navigation container.
func ReduceNavigation(s NavigationState, event any) NavigationState {
	ev, ok := event.(Event)
	if !ok {
		return s
	}
	return reduceNavigation(s, ev)
}

func reduceNavigation(s NavigationState, ev Event) NavigationState {
	if !ev.TargetContainer().Is(s.Tag) {
		if s.Modal != nil {
			s.Modal = reduce(s.Modal, ev)
		}
		return s
	}
	switch e := ev.(type) {
	case PushView:
		if e.View == nil {
			return s
		}
		stack := make([]ViewState, len(s.Stack), len(s.Stack)+1)
		copy(stack, s.Stack)
		s.Stack = append(stack, e.View)
	case PopView:
		if len(s.Stack) > 1 {
			s.Stack = slices.Clip(s.Stack[:len(s.Stack)-1])
		}
	case PresentModal:
		s.Modal = e.Modal
	case DismissModal:
		s.Modal = nil
	}
	return s
}

func reduceTabs(s TabsState, ev Event) TabsState {
	if !ev.TargetContainer().Is(s.Tag) {
		tabs := make([]TabState, len(s.Tabs))
		for i, t := range s.Tabs {
			t.Navigation = reduceNavigation(t.Navigation, ev)
			tabs[i] = t
		}
		s.Tabs = tabs
		if s.Modal != nil {
			s.Modal = reduce(s.Modal, ev)
		}
		return s
	}
	switch e := ev.(type) {
	case ChangeTab:
		s.SelectedIndex = e.Index
	case PresentModal:
		s.Modal = e.Modal
	case DismissModal:
		s.Modal = nil
	case SetTabHidden:
		if e.Index < 0 || e.Index >= len(s.Tabs) {
			return s
		}
		tabs := slices.Clone(s.Tabs)
		tabs[e.Index].Hidden = e.Hidden
		s.Tabs = tabs
	}
	return s
}
