package ui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"navstack/internal/anim"
	"navstack/internal/nav"
	"navstack/internal/pty"
)

// App is the root tea.Model. It owns the controller, translates terminal
// events into host lifecycle calls (the first WindowSizeMsg attaches the
// surface, quitting detaches it), and renders either the top screen or the
// in-flight transition frame.
type App struct {
	nav    *nav.Controller
	engine *anim.Engine
	runner pty.Runner

	width  int
	height int
	ready  bool
	status string
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the application with the menu screen as the stack root.
// delegate may be nil; pass a trace recorder to measure transitions.
func NewApp(runner pty.Runner, delegate nav.ControllerDelegate) (*App, error) {
	engine := anim.NewEngine()
	c, err := nav.NewController(NewMenuScreen(), nav.Config{
		Capacity: nav.DefaultCapacity,
		Animator: engine,
	})
	if err != nil {
		return nil, err
	}
	c.SetDelegate(delegate)
	return &App{nav: c, engine: engine, runner: runner}, nil
}

// Init implements tea.Model. Nothing runs until the first WindowSizeMsg
// attaches the stack to the terminal.
func (a *App) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		if !a.ready {
			if err := a.nav.SetSurface(&nav.Surface{Width: msg.Width, Height: a.bodyHeight()}); err != nil {
				a.status = err.Error()
				return a, nil
			}
			a.nav.WillAppear(false)
			a.nav.DidAppear(false)
			a.ready = true
			return a, a.top().Init()
		}
		a.nav.Resize(msg.Width, a.bodyHeight())
		return a, nil

	case anim.TickMsg:
		cmd := a.engine.Update(msg)
		if cmd == nil {
			// Transition done; the screen it revealed resumes.
			return a, a.top().Init()
		}
		return a, cmd

	case OpenScreenMsg:
		return a, a.open(msg)

	case shellOutputMsg:
		// Routed to its owner even while covered, so the pump stays alive.
		return a, msg.owner.Update(msg)

	case shellExitedMsg:
		return a, msg.owner.Update(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, a.quit()
		case "esc":
			if a.nav.Count() == 1 {
				return a, a.quit()
			}
			return a, a.pop(func() error { return a.nav.Pop(true) })
		case "ctrl+g":
			return a, a.pop(func() error { return a.nav.PopToRoot(true) })
		}
	}

	if !a.ready {
		return a, nil
	}
	return a, a.top().Update(msg)
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return ""
	}
	bar := Styles.TitleBar.Render(a.nav.Title())
	if a.status != "" {
		bar += Styles.Muted.Render("  " + a.status)
	}
	var body string
	if frame, ok := a.engine.Frame(a.width, a.bodyHeight()); ok {
		body = frame
	} else {
		body = a.top().Render()
	}
	return bar + "\n" + body
}

// Controller exposes the navigation controller, mainly for tests.
func (a *App) Controller() *nav.Controller { return a.nav }

func (a *App) bodyHeight() int {
	if a.height <= 1 {
		return 1
	}
	return a.height - 1 // title bar
}

func (a *App) top() Screen {
	s, _ := a.nav.Top().(Screen)
	return s
}

func (a *App) open(msg OpenScreenMsg) tea.Cmd {
	var s Screen
	switch msg.ID {
	case ScreenPager:
		s = NewPagerScreen("Guide", guideText)
	case ScreenShell:
		s = NewShellScreen(a.runner, "")
	case ScreenInspector:
		s = NewInspectorScreen(a.nav.Entries)
	default:
		return nil
	}
	if err := a.nav.Push(s, msg.Kind, nav.DefaultTransitionDuration, true); err != nil {
		if !errors.Is(err, nav.ErrTransitionInFlight) {
			a.status = err.Error()
		}
		return nil
	}
	return tea.Batch(s.Init(), a.engine.Tick())
}

// pop runs a pop-style mutation and schedules the transition. Pressing esc
// while a transition plays is not an error, just ignored.
func (a *App) pop(mutate func() error) tea.Cmd {
	if err := mutate(); err != nil {
		if !errors.Is(err, nav.ErrTransitionInFlight) {
			a.status = err.Error()
		}
		return nil
	}
	if tick := a.engine.Tick(); tick != nil {
		return tick
	}
	// Completed synchronously; resume the revealed screen.
	return a.top().Init()
}

func (a *App) quit() tea.Cmd {
	if a.engine.Animating() {
		a.engine.Skip()
	}
	a.nav.WillDisappear(false)
	a.nav.DidDisappear(false)
	a.nav.ReleaseViews()
	return tea.Quit
}
