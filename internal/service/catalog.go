package service

import (
	"context"
	"fmt"

	"github.com/jask/reactornav/internal/database/repository"
	"github.com/jask/reactornav/internal/requeststate"
)

// LoadSections fetches every catalog section.
type LoadSections struct{}

// LoadItems fetches the items of one section.
type LoadItems struct {
	SectionID string
}

func (c LoadItems) CommandKey() string { return "service.LoadItems/" + c.SectionID }

// LoadFavorites fetches the favourite items.
type LoadFavorites struct{}

// ToggleFavorite flips the favourite flag of one item.
type ToggleFavorite struct {
	ItemID   string
	Favorite bool
}

// Result carries whatever a command produced.
type Result struct {
	Command  any
	Sections []repository.Section
	Items    []repository.Item
	Err      error
}

// CatalogService runs catalog commands. It performs I/O only; lifecycle
// bookkeeping happens on the caller's loop through Requested and Outcome.
type CatalogService struct {
	Sections *repository.SectionRepo
	Items    *repository.ItemRepo
}

// Execute runs cmd. It is safe to call off the control loop.
func (s *CatalogService) Execute(ctx context.Context, cmd any) Result {
	res := Result{Command: cmd}
	switch c := cmd.(type) {
	case LoadSections:
		res.Sections, res.Err = s.Sections.List(ctx)
	case LoadItems:
		res.Items, res.Err = s.Items.ListBySection(ctx, c.SectionID)
	case LoadFavorites:
		res.Items, res.Err = s.Items.ListFavorites(ctx)
	case ToggleFavorite:
		res.Err = s.Items.SetFavorite(ctx, c.ItemID, c.Favorite)
	default:
		res.Err = fmt.Errorf("catalog: unsupported command %T", cmd)
	}
	if res.Err != nil {
		res.Err = fmt.Errorf("%s: %w", requeststate.CommandKey(cmd), res.Err)
	}
	return res
}

// Requested is the change recorded before cmd starts.
func Requested(cmd any) requeststate.Change {
	return requeststate.Change{CommandKey: requeststate.CommandKey(cmd), State: requeststate.Requested}
}

// Outcome is the change recorded once cmd has finished.
func Outcome(cmd any, err error) requeststate.Change {
	c := requeststate.Change{CommandKey: requeststate.CommandKey(cmd), State: requeststate.Success}
	if err != nil {
		c.State = requeststate.Error
		c.Err = err
	}
	return c
}
