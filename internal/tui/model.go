// Package tui is a terminal rendition of the site. Keyboard focus drives the
// same highlight tracker the web lists use.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lucasaraujonrt/portfolio/internal/highlight"
	"github.com/lucasaraujonrt/portfolio/internal/models"
	"github.com/lucasaraujonrt/portfolio/internal/typography"
	"github.com/lucasaraujonrt/portfolio/internal/views"
)

type section struct {
	title   string
	list    views.RowList
	tracker *highlight.Tracker
}

// Model is the bubbletea model for `portfolio tui`
type Model struct {
	profile  models.Profile
	theme    typography.Theme
	sections []section
	current  int

	keys keyMap
	help help.Model

	// Opened holds every link printed with enter, in order
	opened []string
	width  int
}

// NewModel builds one focusable section per list. It fails when a list has
// duplicate ids.
func NewModel(c models.Content, theme typography.Theme) (Model, error) {
	lists := []struct {
		title string
		list  views.RowList
	}{
		{"Projects", views.ProjectRows(c.Projects)},
		{"Work experience", views.WorkRows(c.Work)},
		{"Blog", views.PostRows(c.Posts)},
		{"Social", views.SocialRows(c.SocialLinks)},
	}

	m := Model{
		profile: c.Profile,
		theme:   theme,
		keys:    defaultKeyMap(),
		help:    help.New(),
		width:   80,
	}
	for _, l := range lists {
		tracker, err := highlight.New(l.list.IDs(), highlight.Options{
			EnableHover:  l.list.EnableHover,
			ResetOnLeave: l.list.ResetOnLeave,
			DefaultID:    l.list.DefaultID,
		})
		if err != nil {
			return Model{}, fmt.Errorf("%s: %w", l.title, err)
		}
		m.sections = append(m.sections, section{title: l.title, list: l.list, tracker: tracker})
	}
	return m, nil
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sec := m.sections[m.current]

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Down):
		sec.tracker.Next()

	case key.Matches(msg, m.keys.Up):
		sec.tracker.Prev()

	case key.Matches(msg, m.keys.NextSection):
		m.moveSection(1)

	case key.Matches(msg, m.keys.PrevSection):
		m.moveSection(-1)

	case key.Matches(msg, m.keys.Leave):
		sec.tracker.Leave()

	case key.Matches(msg, m.keys.Open):
		row, ok := m.ActiveRow()
		if !ok {
			return m, nil
		}
		m.opened = append(m.opened, row.Href)
		return m, tea.Println(row.Href)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// moveSection blurs the current list and focuses the first row of the next
// non-empty one
func (m *Model) moveSection(delta int) {
	n := len(m.sections)
	m.sections[m.current].tracker.Blur()

	for range n {
		m.current = (m.current + delta + n) % n
		if len(m.sections[m.current].list.Rows) > 0 {
			break
		}
	}

	t := m.sections[m.current].tracker
	if _, ok := t.Active(); !ok {
		t.Next()
	}
}

// ActiveRow returns the focused row of the current section
func (m Model) ActiveRow() (views.Row, bool) {
	sec := m.sections[m.current]
	id, ok := sec.tracker.Active()
	if !ok {
		return views.Row{}, false
	}
	for _, r := range sec.list.Rows {
		if r.ID == id {
			return r, true
		}
	}
	return views.Row{}, false
}

// Opened returns the links printed so far
func (m Model) Opened() []string {
	return m.opened
}
