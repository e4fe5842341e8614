package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"navstack/internal/nav"
	"navstack/internal/textutil"
)

// InspectorScreen shows the stack's own bookkeeping: every entry with its
// position, lifecycle phase, transition, and whether its view is loaded.
// The snapshot is pulled fresh on every render, so it always reflects the
// stack as it currently stands, itself included.
type InspectorScreen struct {
	nav.BaseUnit
	entries func() []nav.EntryInfo
}

var _ Screen = (*InspectorScreen)(nil)

// NewInspectorScreen creates an inspector over the given snapshot source,
// typically Controller.Entries.
func NewInspectorScreen(entries func() []nav.EntryInfo) *InspectorScreen {
	return &InspectorScreen{entries: entries}
}

// Title implements nav.Titled.
func (v *InspectorScreen) Title() string { return "Inspector" }

// Init implements Screen.
func (v *InspectorScreen) Init() tea.Cmd { return nil }

// Update implements Screen.
func (v *InspectorScreen) Update(tea.Msg) tea.Cmd { return nil }

// Render implements nav.Unit.
func (v *InspectorScreen) Render() string {
	if !v.ViewLoaded() {
		return ""
	}
	width, _ := v.Size()

	var b strings.Builder
	b.WriteString(Styles.Section.Render("Stack, root first") + "\n\n")
	infos := v.entries()
	for i, info := range infos {
		marker := " "
		if i == len(infos)-1 {
			marker = Styles.Selected.Render(">")
		}
		loaded := Styles.Muted.Render("unloaded")
		if info.ViewLoaded {
			loaded = Styles.Normal.Render("loaded")
		}
		line := fmt.Sprintf("%s %2d  %-12s %-14s %-12s %s",
			marker, i,
			entryTitle(info.Unit),
			info.Phase.String(),
			info.Kind.String(),
			loaded,
		)
		b.WriteString(textutil.Clip(line, width) + "\n")
	}
	return b.String()
}

func entryTitle(u nav.Unit) string {
	if t, ok := u.(nav.Titled); ok {
		return t.Title()
	}
	return fmt.Sprintf("%T", u)
}
