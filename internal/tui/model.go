package tui

import (
	"strings"

	"fexplorer/internal/explorer"
	"fexplorer/internal/tui/components"
	"fexplorer/internal/tui/styles"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

type linkItem struct {
	link explorer.Link
}

func (i linkItem) FilterValue() string { return i.link.Label }

func (i linkItem) Title() string {
	switch {
	case i.link.Up:
		return "↑ .."
	case i.link.IsDirectory:
		return "▸ " + i.link.Label + explorer.Separator
	default:
		return "  " + i.link.Label
	}
}

func (i linkItem) Description() string { return i.link.URL }

// Model presents one page and finishes when a link is chosen or the view
// is closed.
type Model struct {
	page      explorer.Page
	list      list.Model
	keys      keyMap
	help      help.Model
	statusBar *components.StatusBar
	styles    styles.Styles
	choice    string
	done      bool
}

func NewModel(page explorer.Page, st styles.Styles) *Model {
	items := make([]list.Item, len(page.Links))
	for i, l := range page.Links {
		items[i] = linkItem{link: l}
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(st.Selected.GetForeground()).
		BorderForeground(st.Title.GetForeground())

	l := list.New(items, delegate, 80, 20)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetStatusBarItemName("entry", "entries")
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)

	m := &Model{
		page:      page,
		list:      l,
		keys:      defaultKeyMap(),
		help:      help.New(),
		statusBar: components.NewStatusBar(st),
		styles:    st,
	}
	m.syncStatus()
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		header := strings.Count(m.page.Markup, "\n") + 1
		m.list.SetSize(msg.Width-4, msg.Height-header-6)
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Open):
			if item, ok := m.list.SelectedItem().(linkItem); ok {
				return m.finish(item.link.URL)
			}
			return m, nil
		case key.Matches(msg, m.keys.Up):
			if up, ok := m.upLink(); ok {
				return m.finish(up.URL)
			}
			return m, nil
		case key.Matches(msg, m.keys.Quit):
			if m.list.FilterState() == list.FilterApplied && msg.String() == "esc" {
				break
			}
			return m.finish("")
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.syncStatus()
	return m, cmd
}

// View implements tea.Model
func (m *Model) View() string {
	if m.done {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(m.page.Markup)
	sb.WriteString("\n\n")
	if len(m.page.Links) == 0 {
		sb.WriteString(m.styles.Unselected.Render("This folder is empty"))
		sb.WriteString("\n")
	} else {
		sb.WriteString(m.list.View())
		sb.WriteString("\n")
	}
	if status := m.statusBar.View(); status != "" {
		sb.WriteString(status + "\n")
	}
	sb.WriteString(m.help.View(m.keys))
	return m.styles.App.Render(sb.String())
}

// Choice is the URL of the chosen link, or "" when the view was closed.
func (m *Model) Choice() string {
	return m.choice
}

// Done reports whether the user has made a choice or closed the view.
func (m *Model) Done() bool {
	return m.done
}

func (m *Model) finish(choice string) (tea.Model, tea.Cmd) {
	m.choice = choice
	m.done = true
	return m, tea.Quit
}

func (m *Model) upLink() (explorer.Link, bool) {
	for _, l := range m.page.Links {
		if l.Up {
			return l, true
		}
	}
	return explorer.Link{}, false
}

func (m *Model) syncStatus() {
	if item, ok := m.list.SelectedItem().(linkItem); ok {
		m.statusBar.Focus(item.link, m.list.Index()+1, len(m.list.VisibleItems()))
		return
	}
	m.statusBar.Clear()
}
