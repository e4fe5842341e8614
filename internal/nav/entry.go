package nav

import (
	"fmt"
	"io"
	"time"
)

// entry is the stack's bookkeeping record for one unit: the unit itself,
// the transition it was pushed with (whose reverse plays when it is
// popped), and the current lifecycle phase. Position is implicit: the
// entry's index in Stack.entries, index 0 being the root.
type entry struct {
	unit     Unit
	kind     TransitionKind
	duration time.Duration
	phase    LifecyclePhase
	closed   bool
}

func (e *entry) viewLoaded() bool {
	return e.phase >= PhaseLoaded
}

// close releases non-view resources, once. Units opt in via io.Closer.
func (e *entry) close() {
	if e.closed {
		return
	}
	e.closed = true
	if c, ok := e.unit.(io.Closer); ok {
		_ = c.Close()
	}
}

// EntryInfo is a read-only snapshot of one entry, exposed for inspection
// and tests.
type EntryInfo struct {
	Unit       Unit
	Kind       TransitionKind
	Duration   time.Duration
	Phase      LifecyclePhase
	ViewLoaded bool
}

// unitName returns a human-readable identifier for a unit, preferring its
// title when it has one.
func unitName(u Unit) string {
	if u == nil {
		return "<nil>"
	}
	if t, ok := u.(Titled); ok {
		return t.Title()
	}
	return fmt.Sprintf("%T", u)
}
