package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"navstack/internal/nav"
	"navstack/internal/pty"
	"navstack/internal/trace"
	"navstack/internal/ui"
)

func main() {
	ctx := context.Background()

	recorder, err := trace.NewOTLPRecorder(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tracing disabled: %v\n", err)
	}
	var delegate nav.ControllerDelegate
	if recorder != nil {
		delegate = recorder
	}

	app, err := ui.NewApp(pty.System{}, delegate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := recorder.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "flush traces: %v\n", err)
	}
}
