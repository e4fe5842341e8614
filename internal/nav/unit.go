package nav

// Unit is one presentable screen managed by a Stack. The stack owns the
// unit exclusively once it has been added: it decides when the view is
// loaded and unloaded, and it forwards appearance events so that the unit
// never sees an inconsistent sequence (a DidAppear without a WillAppear,
// a double DidDisappear, and so on).
//
// Load is called lazily, only when the unit enters the capacity window of
// an attached stack. Unload releases view resources; the unit itself stays
// alive and may be reloaded later. Units that hold non-view resources can
// additionally implement io.Closer; Close is called exactly once when the
// owning entry is destroyed (popped or evicted), but not when the caller
// reclaims the unit through Remove/RemoveAt.
type Unit interface {
	Load(width, height int) error
	Unload()
	ViewLoaded() bool

	// Render returns the unit's current view. Only called while loaded.
	Render() string

	WillAppear(animated bool)
	DidAppear(animated bool)
	WillDisappear(animated bool)
	DidDisappear(animated bool)

	// Resize is forwarded to every loaded unit when the host container
	// changes size, the terminal analog of rotation forwarding.
	Resize(width, height int)
}

// Titled is an optional capability: units implementing it have their title
// forwarded to the host chrome by the Controller.
type Titled interface {
	Title() string
}

// BaseUnit is an embeddable default implementation of Unit. Every method
// is a usable no-op, so screens only override what they need.
type BaseUnit struct {
	loaded        bool
	width, height int
}

// Ensure BaseUnit implements Unit.
var _ Unit = (*BaseUnit)(nil)

// Load implements Unit. Records the view as loaded at the given size.
func (b *BaseUnit) Load(width, height int) error {
	b.loaded = true
	b.width, b.height = width, height
	return nil
}

// Unload implements Unit.
func (b *BaseUnit) Unload() { b.loaded = false }

// ViewLoaded implements Unit.
func (b *BaseUnit) ViewLoaded() bool { return b.loaded }

// Render implements Unit.
func (b *BaseUnit) Render() string { return "" }

// Size returns the dimensions the view was last loaded or resized at.
func (b *BaseUnit) Size() (width, height int) { return b.width, b.height }

// WillAppear implements Unit.
func (b *BaseUnit) WillAppear(bool) {}

// DidAppear implements Unit.
func (b *BaseUnit) DidAppear(bool) {}

// WillDisappear implements Unit.
func (b *BaseUnit) WillDisappear(bool) {}

// DidDisappear implements Unit.
func (b *BaseUnit) DidDisappear(bool) {}

// Resize implements Unit.
func (b *BaseUnit) Resize(width, height int) {
	b.width, b.height = width, height
}
