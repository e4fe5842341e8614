package nav

// LifecyclePhase tracks where a unit's view is in its appearance lifecycle.
// Transitions only ever move between adjacent states, which is what makes
// double-fired lifecycle events detectable.
type LifecyclePhase int

const (
	PhaseUnloaded LifecyclePhase = iota
	PhaseLoaded
	PhaseAppearing
	PhaseAppeared
	PhaseDisappearing
)

func (p LifecyclePhase) String() string {
	switch p {
	case PhaseUnloaded:
		return "Unloaded"
	case PhaseLoaded:
		return "Loaded"
	case PhaseAppearing:
		return "Appearing"
	case PhaseAppeared:
		return "Appeared"
	case PhaseDisappearing:
		return "Disappearing"
	default:
		return "Unknown"
	}
}

// hostPhase is the container's own appearance state, as reported by the
// owner through the Stack's lifecycle-forwarding methods.
type hostPhase int

const (
	hostHidden hostPhase = iota
	hostAppearing
	hostAppeared
	hostDisappearing
)

func (h hostPhase) visible() bool {
	return h == hostAppearing || h == hostAppeared
}
