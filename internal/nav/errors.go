package nav

import "errors"

// Programmer-error preconditions. Mutations failing with one of these are
// no-ops: the sequence is left exactly as it was.
var (
	ErrNilUnit            = errors.New("nav: nil unit")
	ErrDuplicateUnit      = errors.New("nav: unit already in stack")
	ErrIndexOutOfRange    = errors.New("nav: index out of range")
	ErrRootImmovable      = errors.New("nav: root unit is immovable")
	ErrTransitionInFlight = errors.New("nav: transition in flight")
)
