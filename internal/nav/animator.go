package nav

import "time"

// Animator is the transition-engine collaborator. The stack asks it to
// build a transition between two loaded units; the engine decides how the
// transition looks and when it completes.
type Animator interface {
	Build(outgoing, incoming Unit, kind TransitionKind, duration time.Duration) (Animation, error)
}

// Animation is one playable transition. Play must not block: it schedules
// playback and returns, and done is invoked exactly once when playback
// finishes, on the same goroutine that drives the stack. done always runs,
// even when playback fails; the error then carries the failure.
//
// Reverse returns the transition that visually undoes this one, used when
// popping a unit that was pushed with an animated transition. The engine
// exposes no cancellation: an in-flight animation always runs to
// completion (possibly abbreviated by the engine itself).
type Animation interface {
	Play(done func(err error))
	Reverse() Animation
}
