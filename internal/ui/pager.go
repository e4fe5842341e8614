package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/viewport"

	"navstack/internal/nav"
)

const guideText = `Navigation

  enter    open the selected screen
  esc      go back one screen (quits from the menu)
  ctrl+g   back to the menu, popping everything above it
  ctrl+c   quit

Each destination opens under a different transition: the pager slides in
from the right, the shell rises from the bottom, the inspector fades.
Going back plays the same transition in reverse.

The stack keeps only the topmost screens' views alive. Screens pushed
deep enough below the top are unloaded and rebuilt when revealed again;
the inspector shows which ones are currently loaded.`

// PagerScreen shows scrollable text in a viewport.
type PagerScreen struct {
	nav.BaseUnit
	title    string
	content  string
	viewport viewport.Model
}

var _ Screen = (*PagerScreen)(nil)

// NewPagerScreen creates a pager over static content.
func NewPagerScreen(title, content string) *PagerScreen {
	return &PagerScreen{title: title, content: content}
}

// Title implements nav.Titled.
func (p *PagerScreen) Title() string { return p.title }

// Load implements nav.Unit.
func (p *PagerScreen) Load(width, height int) error {
	if err := p.BaseUnit.Load(width, height); err != nil {
		return err
	}
	vp := viewport.New(width, height)
	vp.SetContent(Styles.Normal.Render(p.content))
	p.viewport = vp
	return nil
}

// Resize implements nav.Unit.
func (p *PagerScreen) Resize(width, height int) {
	p.BaseUnit.Resize(width, height)
	p.viewport.Width = width
	p.viewport.Height = height
}

// Init implements Screen.
func (p *PagerScreen) Init() tea.Cmd { return nil }

// Update implements Screen.
func (p *PagerScreen) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

// Render implements nav.Unit.
func (p *PagerScreen) Render() string {
	if !p.ViewLoaded() {
		return ""
	}
	return p.viewport.View()
}
