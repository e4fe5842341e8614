// Package anim is the transition engine behind internal/nav: it builds
// frame-based terminal transitions (slide, fade) between two loaded units
// and plays them on the Bubble Tea update loop.
//
// Playback is tick-driven: Play only registers the animation; the owning
// program schedules frames with Tick and feeds the resulting TickMsg back
// into Update, where completion fires. That keeps the completion callback
// on the same goroutine as every stack mutation, which the nav package
// requires.
package anim

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"navstack/internal/nav"
)

// FrameInterval is the delay between transition frames (~30 fps).
const FrameInterval = time.Second / 30

// TickMsg advances the in-flight transition by one frame.
type TickMsg struct {
	Time time.Time
}

// Engine builds and plays transitions. One engine drives at most one
// transition at a time, matching the stack's single-mutation rule.
type Engine struct {
	active *animation
}

// Ensure Engine implements the stack's animator contract.
var _ nav.Animator = (*Engine)(nil)

// NewEngine creates an idle engine.
func NewEngine() *Engine { return &Engine{} }

// Build implements nav.Animator.
func (e *Engine) Build(outgoing, incoming nav.Unit, kind nav.TransitionKind, duration time.Duration) (nav.Animation, error) {
	if outgoing == nil || incoming == nil {
		return nil, errors.New("anim: transition needs an outgoing and an incoming unit")
	}
	if duration <= 0 {
		duration = nav.DefaultTransitionDuration
	}
	return &animation{
		engine:   e,
		outgoing: outgoing,
		incoming: incoming,
		kind:     kind,
		duration: duration,
	}, nil
}

// Animating reports whether a transition is playing.
func (e *Engine) Animating() bool { return e.active != nil }

// Tick returns the command that schedules the next frame, nil when idle.
func (e *Engine) Tick() tea.Cmd {
	if e.active == nil {
		return nil
	}
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// Update advances playback by one frame and returns the command for the
// next one. When the duration is up it completes the animation, invoking
// the done callback handed to Play, and returns nil.
func (e *Engine) Update(msg TickMsg) tea.Cmd {
	a := e.active
	if a == nil {
		return nil
	}
	if a.started.IsZero() {
		a.started = msg.Time
	}
	a.now = msg.Time
	if msg.Time.Sub(a.started) >= a.duration {
		e.finish(nil)
		return nil
	}
	return e.Tick()
}

// Skip abbreviates the in-flight transition: playback ends now and the
// completion callback still runs. Used on teardown, since the stack
// exposes no cancellation of its own.
func (e *Engine) Skip() { e.finish(nil) }

func (e *Engine) finish(err error) {
	a := e.active
	e.active = nil
	if a != nil && a.done != nil {
		a.done(err)
	}
}

// Frame returns the current composited transition frame for a host of the
// given size. ok is false when no transition is playing and the caller
// should render the top unit directly.
func (e *Engine) Frame(width, height int) (frame string, ok bool) {
	if e.active == nil || width <= 0 || height <= 0 {
		return "", false
	}
	return e.active.frame(width, height), true
}

type animation struct {
	engine   *Engine
	outgoing nav.Unit
	incoming nav.Unit
	kind     nav.TransitionKind
	duration time.Duration
	reversed bool

	started time.Time
	now     time.Time
	done    func(error)
}

// Play implements nav.Animation. A transition registered while another is
// still playing abbreviates the earlier one first; the stack's in-flight
// guard makes that path unreachable in normal use.
func (a *animation) Play(done func(err error)) {
	if a.engine.active != nil {
		a.engine.finish(nil)
	}
	a.done = done
	a.started = time.Time{}
	a.engine.active = a
}

// Reverse implements nav.Animation: same pair of units, mirrored kind.
func (a *animation) Reverse() nav.Animation {
	cp := *a
	cp.reversed = !cp.reversed
	return &cp
}

func (a *animation) effectiveKind() nav.TransitionKind {
	if a.reversed {
		return a.kind.Reverse()
	}
	return a.kind
}

// progress is in [0, 1]; 0 until the first frame arrives.
func (a *animation) progress() float64 {
	if a.started.IsZero() || a.duration <= 0 {
		return 0
	}
	p := float64(a.now.Sub(a.started)) / float64(a.duration)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

func (a *animation) frame(width, height int) string {
	return compose(
		a.outgoing.Render(),
		a.incoming.Render(),
		a.effectiveKind(),
		a.progress(),
		width, height,
	)
}
