package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/reactornav/internal/database/repository"
	"github.com/jask/reactornav/internal/navigation"
	"github.com/jask/reactornav/internal/requeststate"
)

// Container types. Their tags are derived from the type names.
type (
	rootTabs     struct{}
	browseNav    struct{}
	favoritesNav struct{}
	activityNav  struct{}
	aboutNav     struct{}
)

var (
	rootTag      = navigation.TagFor[rootTabs]()
	browseTag    = navigation.TagFor[browseNav]()
	favoritesTag = navigation.TagFor[favoritesNav]()
	activityTag  = navigation.TagFor[activityNav]()
	aboutTag     = navigation.TagFor[aboutNav]()
)

const favoritesIndex = 1

// View states.

type sectionsView struct{}

func (sectionsView) UniqueID() string { return "sections" }

type sectionView struct {
	ID   string
	Name string
}

func (v sectionView) UniqueID() string { return "section:" + v.ID }

type itemView struct {
	ID string
}

func (v itemView) UniqueID() string { return "item:" + v.ID }

type favoritesView struct{}

func (favoritesView) UniqueID() string { return "favorites" }

type activityView struct{}

func (activityView) UniqueID() string { return "activity" }

type aboutView struct {
	Page int
}

func (v aboutView) UniqueID() string { return fmt.Sprintf("about:%d", v.Page) }

var aboutPages = []string{
	"reactornav keeps one immutable navigation tree.\nEvery key press becomes an event; the tree is reduced\nand the live views are reconciled against it.",
	"Modals animate. While one is in flight the container\nignores updates and catches up once it completes.",
	"Tabs never switch on their own: a tap is reported\nas an event and the reduced state moves the selection.",
}

// initialTree is the tree the app starts with.
func initialTree() navigation.TabsState {
	return navigation.TabsState{
		Tag: rootTag,
		Tabs: []navigation.TabState{
			{Title: "Browse", Navigation: navigation.NewNavigation(browseTag, sectionsView{})},
			{Title: "Favorites", Navigation: navigation.NewNavigation(favoritesTag, favoritesView{})},
			{Title: "Activity", Navigation: navigation.NewNavigation(activityTag, activityView{})},
		},
	}
}

func aboutModal() navigation.NavigationState {
	return navigation.NewNavigation(aboutTag, aboutView{})
}

// rows lists the selectable rows of a screen.
func (a *App) rows(s *screen) []string {
	switch v := s.state.(type) {
	case sectionsView:
		out := make([]string, len(a.sections))
		for i, sec := range a.sections {
			out[i] = sec.Name
		}
		return out
	case sectionView:
		return itemTitles(a.items[v.ID])
	case favoritesView:
		return itemTitles(a.favorites)
	case activityView:
		return a.tracker.Keys()
	}
	return nil
}

func itemTitles(items []repository.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		mark := "  "
		if it.Favorite {
			mark = "★ "
		}
		out[i] = mark + it.Title
	}
	return out
}

// next returns the view state that enter on s pushes, if any.
func (a *App) next(s *screen) (navigation.ViewState, bool) {
	switch v := s.state.(type) {
	case sectionsView:
		if s.cursor < len(a.sections) {
			sec := a.sections[s.cursor]
			return sectionView{ID: sec.ID, Name: sec.Name}, true
		}
	case sectionView:
		if items := a.items[v.ID]; s.cursor < len(items) {
			return itemView{ID: items[s.cursor].ID}, true
		}
	case favoritesView:
		if s.cursor < len(a.favorites) {
			return itemView{ID: a.favorites[s.cursor].ID}, true
		}
	case aboutView:
		if v.Page+1 < len(aboutPages) {
			return aboutView{Page: v.Page + 1}, true
		}
	}
	return nil, false
}

func (a *App) findItem(id string) (repository.Item, bool) {
	for _, items := range a.items {
		for _, it := range items {
			if it.ID == id {
				return it, true
			}
		}
	}
	for _, it := range a.favorites {
		if it.ID == id {
			return it, true
		}
	}
	return repository.Item{}, false
}

func (a *App) title(s *screen) string {
	switch v := s.state.(type) {
	case sectionsView:
		return "Sections"
	case sectionView:
		return v.Name
	case itemView:
		if it, ok := a.findItem(v.ID); ok {
			return it.Title
		}
		return v.ID
	case favoritesView:
		return "Favorites"
	case activityView:
		return "Activity"
	case aboutView:
		return fmt.Sprintf("About %d/%d", v.Page+1, len(aboutPages))
	}
	return s.StateID()
}

// renderScreen draws the body of s.
func (a *App) renderScreen(s *screen, width int) string {
	switch v := s.state.(type) {
	case itemView:
		it, ok := a.findItem(v.ID)
		if !ok {
			return a.styles.muted.Render("item not loaded")
		}
		fav := "no"
		if it.Favorite {
			fav = "yes"
		}
		return strings.Join([]string{
			a.styles.heading.Render(it.Title),
			"",
			lipgloss.NewStyle().Width(max(width-2, 10)).Render(it.Summary),
			"",
			a.styles.muted.Render("favorite: " + fav + "   added: " + it.CreatedAt.Format("2006-01-02")),
		}, "\n")
	case aboutView:
		return aboutPages[v.Page]
	case activityView:
		return a.renderActivity()
	}
	rows := a.rows(s)
	if len(rows) == 0 {
		return a.styles.muted.Render("nothing here yet")
	}
	lines := make([]string, len(rows))
	for i, r := range rows {
		if i == s.cursor {
			lines[i] = a.styles.cursor.Render("> " + r)
		} else {
			lines[i] = "  " + r
		}
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderActivity() string {
	keys := a.tracker.Keys()
	if len(keys) == 0 {
		return a.styles.muted.Render("no commands yet")
	}
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		st := a.tracker.State(k)
		line := k + "  " + st.String()
		if err := a.tracker.Err(k); st == requeststate.Error && err != nil {
			line += " " + err.Error()
			line = a.styles.err.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
