package nav

import (
	"fmt"
	"time"
)

// ControllerDelegate mirrors Delegate for the Controller façade, with the
// same ordering contract. NopControllerDelegate provides no-op defaults.
type ControllerDelegate interface {
	WillPush(c *Controller, pushed, covered Unit, animated bool)
	WillShow(c *Controller, u Unit, animated bool)
	DidShow(c *Controller, u Unit, animated bool)
	DidPush(c *Controller, pushed, covered Unit, animated bool)

	WillPop(c *Controller, popped, revealed Unit, animated bool)
	WillHide(c *Controller, u Unit, animated bool)
	DidHide(c *Controller, u Unit, animated bool)
	DidPop(c *Controller, popped, revealed Unit, animated bool)
}

// NopControllerDelegate implements ControllerDelegate with no-ops.
type NopControllerDelegate struct{}

var _ ControllerDelegate = NopControllerDelegate{}

func (NopControllerDelegate) WillPush(*Controller, Unit, Unit, bool) {}
func (NopControllerDelegate) WillShow(*Controller, Unit, bool)       {}
func (NopControllerDelegate) DidShow(*Controller, Unit, bool)        {}
func (NopControllerDelegate) DidPush(*Controller, Unit, Unit, bool)  {}
func (NopControllerDelegate) WillPop(*Controller, Unit, Unit, bool)  {}
func (NopControllerDelegate) WillHide(*Controller, Unit, bool)       {}
func (NopControllerDelegate) DidHide(*Controller, Unit, bool)        {}
func (NopControllerDelegate) DidPop(*Controller, Unit, Unit, bool)   {}

// Controller is the owning façade around exactly one Stack. It installs a
// mandatory root unit at construction (with no transition), re-emits every
// stack notification under its own delegate interface, and forwards host
// lifecycle and resize events down to the stack. The controller never
// reaches into entries directly; everything goes through stack operations.
type Controller struct {
	stack    *Stack
	delegate ControllerDelegate
}

// NewController creates a controller with the given root unit, which is
// installed without a transition and can never be replaced or removed.
func NewController(root Unit, cfg Config) (*Controller, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: controller needs a root unit", ErrNilUnit)
	}
	cfg.RootMandatory = true
	c := &Controller{stack: New(cfg)}
	c.stack.SetDelegate(stackTap{c})
	if err := c.stack.Push(root, TransitionNone, 0, false); err != nil {
		return nil, fmt.Errorf("install root: %w", err)
	}
	return c, nil
}

// SetDelegate installs the controller's delegate. The controller does not
// own it; pass nil to unregister.
func (c *Controller) SetDelegate(d ControllerDelegate) { c.delegate = d }

func (c *Controller) notify() ControllerDelegate {
	if c.delegate == nil {
		return NopControllerDelegate{}
	}
	return c.delegate
}

// Push pushes a unit with an explicit transition.
func (c *Controller) Push(u Unit, kind TransitionKind, duration time.Duration, animated bool) error {
	return c.stack.Push(u, kind, duration, animated)
}

// PushDefault pushes a unit with the default transition and duration.
func (c *Controller) PushDefault(u Unit, animated bool) error {
	return c.stack.Push(u, TransitionSlideLeft, DefaultTransitionDuration, animated)
}

// Pop removes the top unit; the root is never popped.
func (c *Controller) Pop(animated bool) error { return c.stack.Pop(animated) }

// PopTo pops every unit above u. A unit not in the stack is a no-op.
func (c *Controller) PopTo(u Unit, animated bool) error { return c.stack.PopTo(u, animated) }

// PopToRoot pops every unit above the root.
func (c *Controller) PopToRoot(animated bool) error { return c.stack.PopToRoot(animated) }

// Root returns the root unit.
func (c *Controller) Root() Unit { return c.stack.Root() }

// Top returns the topmost unit.
func (c *Controller) Top() Unit { return c.stack.Top() }

// Units returns the ordered sequence of units, root first.
func (c *Controller) Units() []Unit { return c.stack.Units() }

// Count returns the number of stacked units.
func (c *Controller) Count() int { return c.stack.Count() }

// Entries returns a snapshot of the stack's bookkeeping.
func (c *Controller) Entries() []EntryInfo { return c.stack.Entries() }

// Animating reports whether a transition is in flight.
func (c *Controller) Animating() bool { return c.stack.Animating() }

// Title returns the top unit's title when it has one, for forwarding to
// the host chrome.
func (c *Controller) Title() string {
	if t, ok := c.stack.Top().(Titled); ok {
		return t.Title()
	}
	return ""
}

// SetSurface attaches the controller's stack to a host surface.
func (c *Controller) SetSurface(s *Surface) error { return c.stack.SetSurface(s) }

// Resize forwards a host size change to every loaded unit.
func (c *Controller) Resize(width, height int) { c.stack.Resize(width, height) }

// ReleaseViews unloads every view; used when the host view is torn down.
func (c *Controller) ReleaseViews() { c.stack.ReleaseViews() }

// WillAppear forwards the host's appearance event to the stack.
func (c *Controller) WillAppear(animated bool) { c.stack.WillAppear(animated) }

// DidAppear forwards the host's appearance event to the stack.
func (c *Controller) DidAppear(animated bool) { c.stack.DidAppear(animated) }

// WillDisappear forwards the host's disappearance event to the stack.
func (c *Controller) WillDisappear(animated bool) { c.stack.WillDisappear(animated) }

// DidDisappear forwards the host's disappearance event to the stack.
func (c *Controller) DidDisappear(animated bool) { c.stack.DidDisappear(animated) }

// stackTap adapts the stack's delegate callbacks to the controller's own
// delegate, 1:1 and in the same order.
type stackTap struct {
	c *Controller
}

var _ Delegate = stackTap{}

func (t stackTap) WillPush(_ *Stack, pushed, covered Unit, animated bool) {
	t.c.notify().WillPush(t.c, pushed, covered, animated)
}

func (t stackTap) WillShow(_ *Stack, u Unit, animated bool) {
	t.c.notify().WillShow(t.c, u, animated)
}

func (t stackTap) DidShow(_ *Stack, u Unit, animated bool) {
	t.c.notify().DidShow(t.c, u, animated)
}

func (t stackTap) DidPush(_ *Stack, pushed, covered Unit, animated bool) {
	t.c.notify().DidPush(t.c, pushed, covered, animated)
}

func (t stackTap) WillPop(_ *Stack, popped, revealed Unit, animated bool) {
	t.c.notify().WillPop(t.c, popped, revealed, animated)
}

func (t stackTap) WillHide(_ *Stack, u Unit, animated bool) {
	t.c.notify().WillHide(t.c, u, animated)
}

func (t stackTap) DidHide(_ *Stack, u Unit, animated bool) {
	t.c.notify().DidHide(t.c, u, animated)
}

func (t stackTap) DidPop(_ *Stack, popped, revealed Unit, animated bool) {
	t.c.notify().DidPop(t.c, popped, revealed, animated)
}
