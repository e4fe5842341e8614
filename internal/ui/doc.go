// Package ui is the demo application for the navigation stack: a Bubble
// Tea program whose screens are pushed and popped on a nav.Controller.
//
// Core abstractions:
//   - Screen: a nav.Unit that additionally speaks Bubble Tea (Init/Update)
//   - App: the root tea.Model owning the controller and the transition engine
//
// Screens: Menu (entry point), Pager (scrollable text), Shell (PTY-backed
// terminal), Inspector (live view of the stack's bookkeeping).
package ui
