// Package tui hosts the navigation tree in a bubbletea program. The live
// containers implement the reconcile host interfaces; events, command
// results and animation completions all arrive as messages on the one
// Update loop.
package tui

import (
	"context"
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/reactornav/internal/config"
	"github.com/jask/reactornav/internal/database/repository"
	"github.com/jask/reactornav/internal/navigation"
	"github.com/jask/reactornav/internal/prefs"
	"github.com/jask/reactornav/internal/requeststate"
	"github.com/jask/reactornav/internal/service"
)

// App is the bubbletea model.
type App struct {
	ctx      context.Context
	cfg      config.Config
	services Services
	logger   *log.Logger

	root    navigation.ContainerState
	live    map[string]liveContainer
	queue   []navigation.Event
	cmds    []tea.Cmd
	tracker *requeststate.Tracker

	sections  []repository.Section
	items     map[string][]repository.Item // section id -> items
	favorites []repository.Item

	keys     keyMap
	styles   styles
	spinner  spinner.Model
	spinning bool
	status   string
	width    int
	height   int
}

type Services struct {
	Catalog     *service.CatalogService
	Maintenance *service.MaintenanceService
	Prefs       *prefs.Store // optional; nil keeps the layout in memory only
}

type resultMsg service.Result

// New builds the app and its live hierarchy. A nil logger logs through the
// standard logger, which the caller may have pointed at a file.
func New(ctx context.Context, cfg config.Config, services Services, logger *log.Logger) *App {
	if logger == nil {
		logger = log.Default()
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	a := &App{
		ctx:      ctx,
		cfg:      cfg,
		services: services,
		logger:   logger,
		root:     initialTree(),
		live:     make(map[string]liveContainer),
		tracker:  requeststate.NewTracker(),
		items:    make(map[string][]repository.Item),
		keys:     defaultKeys(),
		styles:   newStyles(cfg.UI.AccentColor),
		spinner:  sp,
	}
	a.Container(a.root)
	a.sync()
	a.restoreLayout()
	return a
}

// restoreLayout hides the tabs that were hidden when the app last ran.
func (a *App) restoreLayout() {
	if a.services.Prefs == nil {
		return
	}
	layout, err := a.services.Prefs.LoadLayout()
	if err != nil {
		a.logger.Printf("load layout: %v", err)
		return
	}
	tabs, ok := a.root.(navigation.TabsState)
	if !ok {
		return
	}
	for i, tab := range tabs.Tabs {
		if layout.Hidden(tab.Navigation.Tag.UniqueID()) {
			a.dispatch(navigation.SetTabHidden{Container: rootTag, Index: i, Hidden: true})
		}
	}
}

func (a *App) saveLayout() {
	if a.services.Prefs == nil {
		return
	}
	tabs, ok := a.root.(navigation.TabsState)
	if !ok {
		return
	}
	var layout prefs.Layout
	for _, tab := range tabs.Tabs {
		if tab.Hidden {
			layout.HiddenTabs = append(layout.HiddenTabs, tab.Navigation.Tag.UniqueID())
		}
	}
	if err := a.services.Prefs.SaveLayout(layout); err != nil {
		a.logger.Printf("save layout: %v", err)
	}
}

func (a *App) Init() tea.Cmd {
	a.run(service.LoadSections{})
	a.run(service.LoadFavorites{})
	return a.flush()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
	case tea.KeyMsg:
		a.handleKey(m)
	case animDoneMsg:
		m.done()
		// the guard is clear again; catch up with whatever was dropped
		a.sync()
		a.drain()
	case resultMsg:
		a.handleResult(service.Result(m))
	case spinner.TickMsg:
		if !a.busy() {
			a.spinning = false
			break
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(m)
		a.cmds = append(a.cmds, cmd)
	}
	return a, a.flush()
}

func (a *App) handleKey(m tea.KeyMsg) {
	switch {
	case key.Matches(m, a.keys.Quit):
		a.cmds = append(a.cmds, tea.Quit)
	case key.Matches(m, a.keys.Up):
		a.moveCursor(-1)
	case key.Matches(m, a.keys.Down):
		a.moveCursor(1)
	case key.Matches(m, a.keys.Open):
		a.open()
	case key.Matches(m, a.keys.Back):
		if nav := a.focus(); nav != nil && nav.back() {
			a.drain()
		}
	case key.Matches(m, a.keys.NextTab):
		a.tapRelative(1)
	case key.Matches(m, a.keys.PrevTab):
		a.tapRelative(-1)
	case key.Matches(m, a.keys.JumpTab):
		a.rootView().tap(int(m.String()[0] - '1'))
		a.drain()
	case key.Matches(m, a.keys.About):
		a.dispatch(navigation.PresentModal{Container: rootTag, Modal: aboutModal()})
	case key.Matches(m, a.keys.Dismiss):
		a.dispatch(navigation.DismissModal{Container: rootTag})
	case key.Matches(m, a.keys.Favorite):
		a.toggleFavorite()
	case key.Matches(m, a.keys.HideTab):
		tabs, ok := a.root.(navigation.TabsState)
		if ok && favoritesIndex < len(tabs.Tabs) {
			hidden := tabs.Tabs[favoritesIndex].Hidden
			a.dispatch(navigation.SetTabHidden{Container: rootTag, Index: favoritesIndex, Hidden: !hidden})
			a.saveLayout()
		}
	case key.Matches(m, a.keys.Reload):
		a.reload()
	case key.Matches(m, a.keys.ResetData):
		a.run(service.ResetCatalog{})
	}
}

// dispatch reduces ev and every event fired while reconciling it.
func (a *App) dispatch(ev navigation.Event) {
	a.queue = append(a.queue, ev)
	a.drain()
}

func (a *App) drain() {
	for len(a.queue) > 0 {
		ev := a.queue[0]
		a.queue = a.queue[1:]
		if !navigation.Routes(a.root, ev) {
			if guess, ok := navigation.Suggest(a.root, ev.TargetContainer().UniqueID()); ok {
				a.logger.Printf("event %s: no container %q (closest: %q)", ev, ev.TargetContainer(), guess)
			}
		}
		a.root = navigation.Reduce(a.root, ev)
		a.observe(ev)
		a.sync()
	}
}

// observe starts the loads a pushed screen needs.
func (a *App) observe(ev navigation.Event) {
	push, ok := ev.(navigation.PushView)
	if !ok {
		return
	}
	if v, ok := push.View.(sectionView); ok {
		a.run(service.LoadItems{SectionID: v.ID})
	}
}

// sync drives every live container from the current tree, parents first.
func (a *App) sync() {
	navigation.Walk(a.root, func(s navigation.ContainerState) bool {
		if c, ok := a.live[s.ContainerTag().UniqueID()]; ok {
			c.update(s)
		}
		return true
	})
}

func (a *App) flush() tea.Cmd {
	cmds := a.cmds
	a.cmds = nil
	return tea.Batch(cmds...)
}

func (a *App) rootView() *tabView {
	t, _ := a.live[rootTag.UniqueID()].(*tabView)
	return t
}

// focus returns the navigation container that receives keys: the presented
// modal if any, otherwise the selected tab.
func (a *App) focus() *navView {
	t := a.rootView()
	if t == nil {
		return nil
	}
	if m, ok := t.presented().(*navView); ok {
		return m
	}
	return t.current()
}

func (a *App) moveCursor(delta int) {
	nav := a.focus()
	if nav == nil {
		return
	}
	s := nav.top()
	if s == nil {
		return
	}
	n := len(a.rows(s))
	if n == 0 {
		s.cursor = 0
		return
	}
	s.cursor = min(max(s.cursor+delta, 0), n-1)
}

func (a *App) open() {
	nav := a.focus()
	if nav == nil || nav.top() == nil {
		return
	}
	if next, ok := a.next(nav.top()); ok {
		a.dispatch(navigation.PushView{Container: nav.rec.Tag(), View: next})
	}
}

func (a *App) tapRelative(delta int) {
	t := a.rootView()
	if t == nil || len(t.slots) == 0 {
		return
	}
	n := len(t.slots)
	t.tap(((t.selected+delta)%n + n) % n)
	a.drain()
}

func (a *App) toggleFavorite() {
	nav := a.focus()
	if nav == nil || nav.top() == nil {
		return
	}
	v, ok := nav.top().state.(itemView)
	if !ok {
		return
	}
	it, ok := a.findItem(v.ID)
	if !ok {
		return
	}
	a.run(service.ToggleFavorite{ItemID: it.ID, Favorite: !it.Favorite})
}

// reload refreshes the sections and, when a section is on screen, its items.
func (a *App) reload() {
	a.run(service.LoadSections{})
	if nav := a.focus(); nav != nil && nav.top() != nil {
		if v, ok := nav.top().state.(sectionView); ok {
			a.run(service.LoadItems{SectionID: v.ID})
		}
	}
}

// run records cmd as requested and executes it off the loop. A command that
// is already in flight is rejected by the tracker and not started again.
func (a *App) run(cmd any) {
	if err := a.tracker.React(service.Requested(cmd)); err != nil {
		a.status = err.Error()
		a.logger.Printf("run: %v", err)
		return
	}
	a.startSpinner()
	ctx, svc := a.ctx, a.services
	a.cmds = append(a.cmds, func() tea.Msg {
		if _, ok := cmd.(service.ResetCatalog); ok {
			res := service.Result{Command: cmd}
			if err := svc.Maintenance.Reset(ctx); err != nil {
				res.Err = fmt.Errorf("%s: %w", requeststate.CommandKey(cmd), err)
			}
			return resultMsg(res)
		}
		return resultMsg(svc.Catalog.Execute(ctx, cmd))
	})
}

func (a *App) handleResult(res service.Result) {
	change := service.Outcome(res.Command, res.Err)
	if err := a.tracker.React(change); err != nil {
		a.logger.Printf("result: %v", err)
	}
	a.status = change.String()
	if res.Err != nil {
		a.logger.Printf("command failed: %v", res.Err)
		return
	}
	switch c := res.Command.(type) {
	case service.LoadSections:
		a.sections = res.Sections
	case service.LoadItems:
		a.items[c.SectionID] = res.Items
	case service.LoadFavorites:
		a.favorites = res.Items
	case service.ToggleFavorite:
		for sec, items := range a.items {
			for i := range items {
				if items[i].ID == c.ItemID {
					a.items[sec][i].Favorite = c.Favorite
				}
			}
		}
		a.run(service.LoadFavorites{})
	case service.ResetCatalog:
		a.items = make(map[string][]repository.Item)
		a.favorites = nil
		a.run(service.LoadSections{})
		a.run(service.LoadFavorites{})
	}
	a.clampCursors()
}

func (a *App) clampCursors() {
	for _, c := range a.live {
		nav, ok := c.(*navView)
		if !ok {
			continue
		}
		for _, s := range nav.screens {
			sc := s.(*screen)
			if n := len(a.rows(sc)); sc.cursor >= n {
				sc.cursor = max(n-1, 0)
			}
		}
	}
}

func (a *App) busy() bool {
	for _, k := range a.tracker.Keys() {
		if a.tracker.State(k) == requeststate.Requested {
			return true
		}
	}
	return false
}

func (a *App) startSpinner() {
	if a.spinning {
		return
	}
	a.spinning = true
	a.cmds = append(a.cmds, a.spinner.Tick)
}

// Root returns the current state tree.
func (a *App) Root() navigation.ContainerState { return a.root }

// Tracker exposes the request-state tracker.
func (a *App) Tracker() *requeststate.Tracker { return a.tracker }
