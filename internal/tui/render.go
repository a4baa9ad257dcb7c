package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/reactornav/internal/requeststate"
)

type styles struct {
	tab       lipgloss.Style
	activeTab lipgloss.Style
	crumbs    lipgloss.Style
	heading   lipgloss.Style
	cursor    lipgloss.Style
	muted     lipgloss.Style
	err       lipgloss.Style
	status    lipgloss.Style
	card      lipgloss.Style
}

func newStyles(accent string) styles {
	if accent == "" {
		accent = "69"
	}
	c := lipgloss.Color(accent)
	return styles{
		tab:       lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245")),
		activeTab: lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("0")).Background(c),
		crumbs:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		heading:   lipgloss.NewStyle().Bold(true).Foreground(c),
		cursor:    lipgloss.NewStyle().Foreground(c).Bold(true),
		muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		err:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		status:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(c).Padding(1, 2),
	}
}

func (a *App) View() string {
	width, height := a.width, a.height
	if width <= 0 || height <= 0 {
		width, height = 80, 24
	}
	t := a.rootView()
	if t == nil {
		return ""
	}
	header := a.renderTabBar(t)
	footer := a.renderStatus() + "\n" + a.renderHelp()
	body := ""
	if nav := t.current(); nav != nil {
		body = a.renderNav(nav, width)
	}
	bodyHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 1)
	body = lipgloss.NewStyle().Width(width).Height(bodyHeight).MaxHeight(bodyHeight).Render(body)
	base := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)

	if m, ok := t.presented().(*navView); ok {
		content := a.renderNav(m, min(width-8, 60))
		if t.animating() {
			content = a.styles.muted.Render(content)
		}
		return renderPopup(base, a.styles.card.Render(content), width, height)
	}
	return base
}

func (a *App) renderTabBar(t *tabView) string {
	parts := make([]string, 0, len(t.slots))
	for i, s := range t.slots {
		label := s.Title
		if label == "" && s.View != nil {
			label = s.View.ContainerID()
		}
		if i == t.selected {
			parts = append(parts, a.styles.activeTab.Render(label))
		} else {
			parts = append(parts, a.styles.tab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...) + "\n"
}

// renderNav draws the breadcrumb of the live stack and its top screen.
func (a *App) renderNav(nav *navView, width int) string {
	top := nav.top()
	if top == nil {
		return ""
	}
	crumbs := make([]string, len(nav.screens))
	for i, s := range nav.screens {
		crumbs[i] = a.title(s.(*screen))
	}
	return a.styles.crumbs.Render(strings.Join(crumbs, " › ")) + "\n\n" + a.renderScreen(top, width)
}

func (a *App) renderStatus() string {
	if !a.busy() {
		return a.styles.status.Render(a.status)
	}
	var pending []string
	for _, k := range a.tracker.Keys() {
		if a.tracker.State(k) == requeststate.Requested {
			pending = append(pending, k)
		}
	}
	return a.spinner.View() + " " + a.styles.status.Render(strings.Join(pending, ", "))
}

func (a *App) renderHelp() string {
	bindings := a.keys.shortHelp()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		parts = append(parts, helpEntry(b))
	}
	return a.styles.muted.Render(strings.Join(parts, "  "))
}

func helpEntry(b key.Binding) string {
	h := b.Help()
	return h.Key + " " + h.Desc
}
