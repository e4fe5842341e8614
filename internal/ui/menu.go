package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/list"

	"navstack/internal/nav"
)

// menuEntry is one destination reachable from the menu, with the
// transition it opens under.
type menuEntry struct {
	title string
	id    ScreenID
	kind  nav.TransitionKind
}

func (e menuEntry) Title() string       { return e.title }
func (e menuEntry) Description() string { return "" }
func (e menuEntry) FilterValue() string { return e.title }

// MenuScreen is the stack's root: a list of destinations. Selecting one
// pushes the matching screen.
type MenuScreen struct {
	nav.BaseUnit
	list list.Model
}

var _ Screen = (*MenuScreen)(nil)

// NewMenuScreen creates the menu. The view itself is built lazily in Load.
func NewMenuScreen() *MenuScreen {
	return &MenuScreen{}
}

// Title implements nav.Titled.
func (m *MenuScreen) Title() string { return "navstack" }

// Load implements nav.Unit.
func (m *MenuScreen) Load(width, height int) error {
	if err := m.BaseUnit.Load(width, height); err != nil {
		return err
	}
	items := []list.Item{
		menuEntry{title: "Pager", id: ScreenPager, kind: nav.TransitionSlideLeft},
		menuEntry{title: "Shell", id: ScreenShell, kind: nav.TransitionSlideUp},
		menuEntry{title: "Inspector", id: ScreenInspector, kind: nav.TransitionFade},
	}
	l := list.New(items, NewCompactListDelegate(), width, height)
	l.Title = "Where to?"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = Styles.Title
	m.list = l
	return nil
}

// Resize implements nav.Unit.
func (m *MenuScreen) Resize(width, height int) {
	m.BaseUnit.Resize(width, height)
	m.list.SetSize(width, height)
}

// Init implements Screen.
func (m *MenuScreen) Init() tea.Cmd { return nil }

// Update implements Screen.
func (m *MenuScreen) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		if e, ok := m.list.SelectedItem().(menuEntry); ok {
			return func() tea.Msg {
				return OpenScreenMsg{ID: e.id, Kind: e.kind}
			}
		}
		return nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return cmd
}

// Render implements nav.Unit.
func (m *MenuScreen) Render() string {
	if !m.ViewLoaded() {
		return ""
	}
	return m.list.View()
}
