package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"navstack/internal/nav"
)

// Screen is a stacked unit that additionally speaks Bubble Tea. The stack
// drives the nav.Unit half (loading, lifecycle, rendering); the App routes
// messages to the Update half while the screen is on top.
type Screen interface {
	nav.Unit

	// Init is run once, right after the screen is pushed.
	Init() tea.Cmd

	// Update handles a message routed to this screen. Unlike tea.Model,
	// the screen mutates in place; only the follow-up command is returned.
	Update(msg tea.Msg) tea.Cmd
}

// ScreenID names the screens reachable from the menu.
type ScreenID int

const (
	ScreenPager ScreenID = iota
	ScreenShell
	ScreenInspector
)

// OpenScreenMsg asks the App to push a screen with the given transition.
type OpenScreenMsg struct {
	ID   ScreenID
	Kind nav.TransitionKind
}
