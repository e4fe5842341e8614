package nav

import (
	"math"
	"time"
)

// TransitionKind selects the visual transition played when a unit is pushed.
// Popping a unit plays the reverse of the kind it was pushed with. The set
// is closed: custom transitions are added here, not through open-ended type
// substitution.
type TransitionKind int

const (
	TransitionNone TransitionKind = iota
	TransitionSlideLeft
	TransitionSlideRight
	TransitionSlideUp
	TransitionSlideDown
	TransitionFade
)

func (k TransitionKind) String() string {
	switch k {
	case TransitionNone:
		return "none"
	case TransitionSlideLeft:
		return "slide-left"
	case TransitionSlideRight:
		return "slide-right"
	case TransitionSlideUp:
		return "slide-up"
	case TransitionSlideDown:
		return "slide-down"
	case TransitionFade:
		return "fade"
	default:
		return "unknown"
	}
}

// Reverse returns the kind that visually undoes k.
func (k TransitionKind) Reverse() TransitionKind {
	switch k {
	case TransitionSlideLeft:
		return TransitionSlideRight
	case TransitionSlideRight:
		return TransitionSlideLeft
	case TransitionSlideUp:
		return TransitionSlideDown
	case TransitionSlideDown:
		return TransitionSlideUp
	default:
		return k
	}
}

// DefaultTransitionDuration is used when a mutation passes duration 0.
const DefaultTransitionDuration = 250 * time.Millisecond

// Standard capacities. Capacity is the number of entries at the top of the
// stack whose views are kept loaded; during a transition one extra view may
// transiently be loaded on top of that.
const (
	MinimalCapacity   = 1
	DefaultCapacity   = 2
	UnlimitedCapacity = math.MaxInt
)

// Config carries the construction-time settings of a Stack. Zero value is
// usable: default capacity, non-removing, no mandatory root, no animator
// (animated mutations then complete synchronously).
type Config struct {
	// Capacity bounds the number of loaded views. Values below
	// MinimalCapacity are replaced by DefaultCapacity.
	Capacity int

	// Removing destroys entries that fall permanently below the capacity
	// window instead of merely unloading their views. Useful for flows
	// with no way back.
	Removing bool

	// RootMandatory protects the bottommost entry against removal,
	// replacement and popping past. It does not exempt the root's view
	// from capacity-driven unloading.
	RootMandatory bool

	// Animator builds transitions for animated mutations. May be nil.
	Animator Animator
}

func (c Config) normalized() Config {
	if c.Capacity < MinimalCapacity {
		c.Capacity = DefaultCapacity
	}
	return c
}
