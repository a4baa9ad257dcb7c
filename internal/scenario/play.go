package scenario

import (
	"fmt"
	"log"

	"github.com/jask/reactornav/internal/navigation"
)

// Play replays f and returns the runner in its final state.
func Play(f File, logger *log.Logger) (*Runner, error) {
	root, err := f.Root.Build()
	if err != nil {
		return nil, err
	}
	r := NewRunner(root, logger)
	for i, s := range f.Steps {
		if err := r.Step(s); err != nil {
			return r, fmt.Errorf("step %d (%s): %w", i+1, s.Event, err)
		}
	}
	return r, nil
}

// Step applies one scripted input.
func (r *Runner) Step(s Step) error {
	target := navigation.NamedTag(s.Target)
	switch s.Event {
	case "push":
		r.Dispatch(navigation.PushView{Container: target, View: View(s.View)})
	case "pop":
		r.Dispatch(navigation.PopView{Container: target})
	case "present":
		if s.Modal == nil {
			return fmt.Errorf("%w: present needs a modal", ErrInvalid)
		}
		modal, err := s.Modal.Build()
		if err != nil {
			return err
		}
		r.Dispatch(navigation.PresentModal{Container: target, Modal: modal})
	case "dismiss":
		r.Dispatch(navigation.DismissModal{Container: target})
	case "change_tab":
		r.Dispatch(navigation.ChangeTab{Container: target, Index: s.Index})
	case "set_hidden":
		r.Dispatch(navigation.SetTabHidden{Container: target, Index: s.Index, Hidden: s.Hidden})
	case "complete":
		r.Complete()
	case "back":
		return r.Back(s.Target)
	case "tap_tab":
		return r.TapTab(s.Target, s.Index)
	default:
		return fmt.Errorf("%w: unknown event %q", ErrInvalid, s.Event)
	}
	return nil
}
