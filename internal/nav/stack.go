package nav

import (
	"fmt"
	"time"
)

// Surface is the attachment point for the stack's views: the region of the
// host container the units draw into. The stack holds it as a non-owning
// reference; a nil surface means the stack is detached and no views are
// loaded.
type Surface struct {
	Width  int
	Height int
}

// Stack owns an ordered sequence of entries, index 0 being the root and
// the last index the top. It implements insertion and removal at arbitrary
// positions, capacity-driven view loading, lifecycle-event forwarding to
// the units, and transition orchestration through an Animator.
//
// The sequence returned by Units always reflects the logical target state
// of the last mutation immediately, even while its transition is still
// playing. At most one transition may be in flight: any mutation attempted
// while one plays fails with ErrTransitionInFlight.
type Stack struct {
	cfg      Config
	entries  []*entry
	surface  *Surface
	delegate Delegate

	host      hostPhase
	animating bool
}

// New creates a stack with the given configuration. The stack starts empty
// and detached; attach it with SetSurface once the host view exists.
func New(cfg Config) *Stack {
	return &Stack{cfg: cfg.normalized()}
}

// SetDelegate installs the delegate notified of stack mutations. The stack
// does not own the delegate; pass nil to unregister.
func (s *Stack) SetDelegate(d Delegate) { s.delegate = d }

func (s *Stack) notify() Delegate {
	if s.delegate == nil {
		return NopDelegate{}
	}
	return s.delegate
}

// Capacity returns the configured capacity.
func (s *Stack) Capacity() int { return s.cfg.Capacity }

// Count returns the number of entries.
func (s *Stack) Count() int { return len(s.entries) }

// Root returns the bottommost unit, or nil if the stack is empty.
func (s *Stack) Root() Unit {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[0].unit
}

// Top returns the topmost unit, or nil if the stack is empty.
func (s *Stack) Top() Unit {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1].unit
}

// Units returns the ordered sequence of units, root first. The slice is a
// copy.
func (s *Stack) Units() []Unit {
	units := make([]Unit, len(s.entries))
	for i, e := range s.entries {
		units[i] = e.unit
	}
	return units
}

// Entries returns a snapshot of the stack's bookkeeping, root first.
func (s *Stack) Entries() []EntryInfo {
	infos := make([]EntryInfo, len(s.entries))
	for i, e := range s.entries {
		infos[i] = EntryInfo{
			Unit:       e.unit,
			Kind:       e.kind,
			Duration:   e.duration,
			Phase:      e.phase,
			ViewLoaded: e.viewLoaded(),
		}
	}
	return infos
}

// Animating reports whether a transition is in flight.
func (s *Stack) Animating() bool { return s.animating }

// Surface returns the current attachment point, nil when detached.
func (s *Stack) Surface() *Surface { return s.surface }

// SetSurface attaches the stack to a host surface (or detaches it, when
// nil). Attaching loads the views inside the capacity window; detaching
// unloads every view. Must not be called while a transition is in flight.
func (s *Stack) SetSurface(surface *Surface) error {
	if s.animating {
		return ErrTransitionInFlight
	}
	s.surface = surface
	if surface == nil {
		s.ReleaseViews()
		return nil
	}
	if err := s.refreshWindow(); err != nil {
		return err
	}
	// Attaching under an already visible host: the top unit appears now.
	s.beginAppear(s.topEntry(), false)
	if s.host == hostAppeared {
		s.endAppear(s.topEntry(), false)
	}
	return nil
}

func (s *Stack) attached() bool { return s.surface != nil }

func (s *Stack) indexOf(u Unit) int {
	for i, e := range s.entries {
		if e.unit == u {
			return i
		}
	}
	return -1
}

// Push adds a unit on top of the stack. See insert for the shared
// mutation contract.
func (s *Stack) Push(u Unit, kind TransitionKind, duration time.Duration, animated bool) error {
	return s.InsertAt(u, len(s.entries), kind, duration, animated)
}

// InsertAt inserts a unit at the given index, 0 being below everything and
// Count() on top. Inserting on top behaves like Push, including the
// transition; inserting anywhere else changes nothing visible and fires no
// delegate events, it only reshuffles the capacity window.
func (s *Stack) InsertAt(u Unit, index int, kind TransitionKind, duration time.Duration, animated bool) error {
	if s.animating {
		return ErrTransitionInFlight
	}
	if u == nil {
		return ErrNilUnit
	}
	if s.indexOf(u) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateUnit, unitName(u))
	}
	if index < 0 || index > len(s.entries) {
		return fmt.Errorf("%w: insert at %d of %d", ErrIndexOutOfRange, index, len(s.entries))
	}
	if index == 0 && s.cfg.RootMandatory && len(s.entries) > 0 {
		return fmt.Errorf("%w: cannot insert below the root", ErrRootImmovable)
	}
	if duration <= 0 {
		duration = DefaultTransitionDuration
	}

	e := &entry{unit: u, kind: kind, duration: duration}
	if index == len(s.entries) {
		return s.push(e, animated)
	}

	// Silent insertion below the top.
	if s.attached() && s.inWindow(index, len(s.entries)+1) {
		if err := s.loadEntry(e); err != nil {
			return err
		}
	}
	s.entries = append(s.entries[:index], append([]*entry{e}, s.entries[index:]...)...)
	err := s.refreshWindow()
	s.evict()
	return err
}

// InsertBelow inserts a unit directly below sibling.
func (s *Stack) InsertBelow(u, sibling Unit, kind TransitionKind, duration time.Duration, animated bool) error {
	i := s.indexOf(sibling)
	if i < 0 {
		return fmt.Errorf("%w: sibling %s", ErrIndexOutOfRange, unitName(sibling))
	}
	return s.InsertAt(u, i, kind, duration, animated)
}

// InsertAbove inserts a unit directly above sibling.
func (s *Stack) InsertAbove(u, sibling Unit, kind TransitionKind, duration time.Duration, animated bool) error {
	i := s.indexOf(sibling)
	if i < 0 {
		return fmt.Errorf("%w: sibling %s", ErrIndexOutOfRange, unitName(sibling))
	}
	return s.InsertAt(u, i+1, kind, duration, animated)
}

// push appends e on top, playing the transition when warranted. The
// incoming view is loaded and the transition built before anything is
// mutated or announced, so collaborator failures leave the stack
// untouched.
func (s *Stack) push(e *entry, animated bool) error {
	var covered *entry
	if len(s.entries) > 0 {
		covered = s.entries[len(s.entries)-1]
	}

	if s.attached() {
		if err := s.loadEntry(e); err != nil {
			return err
		}
	}
	anim, err := s.buildTransition(covered, e, e.kind, e.duration, animated)
	if err != nil {
		s.unloadEntry(e)
		return err
	}

	d := s.notify()
	d.WillPush(s, e.unit, entryUnit(covered), animated)
	s.entries = append(s.entries, e)
	d.WillShow(s, e.unit, animated)
	if covered != nil {
		d.WillHide(s, covered.unit, animated)
	}
	s.beginAppear(e, animated)
	s.beginDisappear(covered, animated)

	finish := func() {
		s.endAppear(e, animated)
		d.DidShow(s, e.unit, animated)
		s.endDisappear(covered, animated)
		_ = s.refreshWindow()
		s.evict()
		d.DidPush(s, e.unit, entryUnit(covered), animated)
	}
	if anim == nil {
		finish()
		return nil
	}
	s.play(anim, finish)
	return nil
}

// Pop removes the top unit, playing the reverse of the transition it was
// pushed with. Popping an empty stack, or the root of a root-mandatory
// stack, is a successful no-op.
func (s *Stack) Pop(animated bool) error {
	if s.animating {
		return ErrTransitionInFlight
	}
	n := len(s.entries)
	if n == 0 {
		return nil
	}
	if n == 1 && s.cfg.RootMandatory {
		return nil
	}
	return s.popAbove(n-2, animated, true)
}

// PopTo removes every entry strictly above u in one step, with a single
// compound transition from the current top to u. Intermediate entries are
// destroyed without individual events. PopTo(nil) pops to the root; a unit
// not in the stack is a successful no-op.
func (s *Stack) PopTo(u Unit, animated bool) error {
	if s.animating {
		return ErrTransitionInFlight
	}
	if u == nil {
		return s.PopToRoot(animated)
	}
	i := s.indexOf(u)
	if i < 0 {
		return nil
	}
	return s.popAbove(i, animated, true)
}

// PopAllIndex is the PopToIndex sentinel that removes every entry above
// the root.
const PopAllIndex = -1

// PopToIndex pops every entry strictly above the given index. Pass
// PopAllIndex to pop everything above the root.
func (s *Stack) PopToIndex(index int, animated bool) error {
	if s.animating {
		return ErrTransitionInFlight
	}
	n := len(s.entries)
	if n == 0 {
		return nil
	}
	if index == PopAllIndex {
		index = 0
	}
	if index < 0 || index > n-1 {
		return fmt.Errorf("%w: pop to %d of %d", ErrIndexOutOfRange, index, n)
	}
	return s.popAbove(index, animated, true)
}

// PopToRoot pops every entry above the root.
func (s *Stack) PopToRoot(animated bool) error {
	if s.animating {
		return ErrTransitionInFlight
	}
	if len(s.entries) == 0 {
		return nil
	}
	return s.popAbove(0, animated, true)
}

// PopAll is PopToRoot under its historical name: the root entry is never
// removed by a pop.
func (s *Stack) PopAll(animated bool) error {
	return s.PopToRoot(animated)
}

// RemoveAt removes the entry at the given index. Removing the top entry
// behaves like a pop (reverse transition, pop delegate sequence); removing
// below the top is silent. Unlike popping, removal returns ownership of
// the unit to the caller: its view is unloaded but it is not closed.
func (s *Stack) RemoveAt(index int, animated bool) error {
	if s.animating {
		return ErrTransitionInFlight
	}
	n := len(s.entries)
	if index < 0 || index >= n {
		return fmt.Errorf("%w: remove at %d of %d", ErrIndexOutOfRange, index, n)
	}
	if index == 0 && s.cfg.RootMandatory {
		return fmt.Errorf("%w: cannot remove the root", ErrRootImmovable)
	}
	if index == n-1 {
		return s.popAbove(n-2, animated, false)
	}

	e := s.entries[index]
	s.entries = append(s.entries[:index], s.entries[index+1:]...)
	s.unloadEntry(e)
	err := s.refreshWindow()
	s.evict()
	return err
}

// Remove removes the given unit wherever it sits. A unit not in the stack
// is a successful no-op.
func (s *Stack) Remove(u Unit, animated bool) error {
	i := s.indexOf(u)
	if i < 0 {
		return nil
	}
	return s.RemoveAt(i, animated)
}

// popAbove removes every entry strictly above index target (-1 meaning
// "pop everything", only reachable when the root is not mandatory). The
// popped entry's unit is closed when destroy is set, and merely unloaded
// when the caller reclaims it through RemoveAt.
func (s *Stack) popAbove(target int, animated, destroy bool) error {
	n := len(s.entries)
	if target >= n-1 {
		return nil
	}
	popped := s.entries[n-1]
	var revealed *entry
	if target >= 0 {
		revealed = s.entries[target]
	}

	if revealed != nil && s.attached() {
		if err := s.loadEntry(revealed); err != nil {
			return err
		}
	}
	anim, err := s.buildTransition(popped, revealed, popped.kind, popped.duration, animated)
	if err != nil {
		return err
	}
	if anim != nil {
		anim = anim.Reverse()
	}

	d := s.notify()
	d.WillPop(s, popped.unit, entryUnit(revealed), animated)
	intermediates := make([]*entry, n-1-(target+1))
	copy(intermediates, s.entries[target+1:n-1])
	s.entries = s.entries[:target+1]
	d.WillHide(s, popped.unit, animated)
	if revealed != nil {
		d.WillShow(s, revealed.unit, animated)
	}
	s.beginDisappear(popped, animated)
	s.beginAppear(revealed, animated)

	// Intermediate entries leave without individual transitions or events.
	for _, e := range intermediates {
		s.unloadEntry(e)
		e.close()
	}

	finish := func() {
		s.endAppear(revealed, animated)
		if revealed != nil {
			d.DidShow(s, revealed.unit, animated)
		}
		s.endDisappear(popped, animated)
		d.DidHide(s, popped.unit, animated)
		s.unloadEntry(popped)
		if destroy {
			popped.close()
		}
		_ = s.refreshWindow()
		s.evict()
		d.DidPop(s, popped.unit, entryUnit(revealed), animated)
	}
	if anim == nil {
		finish()
		return nil
	}
	s.play(anim, finish)
	return nil
}

// buildTransition decides whether a transition should play for a mutation
// and builds it. A nil Animation (with nil error) means the mutation
// completes synchronously.
func (s *Stack) buildTransition(outgoing, incoming *entry, kind TransitionKind, duration time.Duration, animated bool) (Animation, error) {
	if !animated || kind == TransitionNone || s.cfg.Animator == nil {
		return nil, nil
	}
	if !s.attached() || !s.host.visible() {
		return nil, nil
	}
	if outgoing == nil || incoming == nil || !outgoing.viewLoaded() || !incoming.viewLoaded() {
		return nil, nil
	}
	anim, err := s.cfg.Animator.Build(outgoing.unit, incoming.unit, kind, duration)
	if err != nil {
		return nil, fmt.Errorf("build transition %s: %w", kind, err)
	}
	return anim, nil
}

func (s *Stack) play(anim Animation, finish func()) {
	s.animating = true
	anim.Play(func(error) {
		// Completion always runs, failed playback included: the logical
		// mutation already happened, only the visuals were cut short.
		s.animating = false
		finish()
	})
}

// inWindow reports whether index lies in the capacity window of a stack
// with count entries.
func (s *Stack) inWindow(index, count int) bool {
	if s.cfg.Capacity == UnlimitedCapacity {
		return true
	}
	return index >= count-s.cfg.Capacity
}

// refreshWindow loads the views of entries inside the capacity window and
// unloads those below it. During a transition the outgoing view survives
// outside the window because refreshWindow only runs once the transition
// has completed, which is what bounds loaded views to capacity + 1.
func (s *Stack) refreshWindow() error {
	if !s.attached() {
		return nil
	}
	n := len(s.entries)
	for i, e := range s.entries {
		if s.inWindow(i, n) {
			if err := s.loadEntry(e); err != nil {
				return err
			}
		} else {
			s.unloadEntry(e)
		}
	}
	return nil
}

// evict applies the removing policy: entries permanently below the
// capacity window are destroyed outright, not merely unloaded. A
// mandatory root survives eviction (unloaded only).
func (s *Stack) evict() {
	if !s.cfg.Removing {
		return
	}
	n := len(s.entries)
	kept := s.entries[:0]
	for i, e := range s.entries {
		if s.inWindow(i, n) || (i == 0 && s.cfg.RootMandatory) {
			kept = append(kept, e)
			continue
		}
		s.unloadEntry(e)
		e.close()
	}
	s.entries = kept
}

func (s *Stack) loadEntry(e *entry) error {
	if e.phase != PhaseUnloaded {
		return nil
	}
	if err := e.unit.Load(s.surface.Width, s.surface.Height); err != nil {
		return fmt.Errorf("load view of %s: %w", unitName(e.unit), err)
	}
	e.phase = PhaseLoaded
	return nil
}

func (s *Stack) unloadEntry(e *entry) {
	if e.phase == PhaseUnloaded {
		return
	}
	// Entries being unloaded while mid-appearance get a consistent
	// disappearance first.
	s.beginDisappear(e, false)
	s.endDisappear(e, false)
	e.unit.Unload()
	e.phase = PhaseUnloaded
}

// ReleaseViews unloads every entry's view regardless of the capacity
// window. Used when the host's own view is being torn down. Must not be
// called while a transition is in flight.
func (s *Stack) ReleaseViews() {
	for i := len(s.entries) - 1; i >= 0; i-- {
		s.unloadEntry(s.entries[i])
	}
}

// Resize updates the surface dimensions and forwards the new size to every
// loaded unit, not only the top one.
func (s *Stack) Resize(width, height int) {
	if !s.attached() {
		return
	}
	s.surface.Width, s.surface.Height = width, height
	for _, e := range s.entries {
		if e.viewLoaded() {
			e.unit.Resize(width, height)
		}
	}
}

// WillAppear tells the stack its host container is about to appear. The
// event is forwarded to the top unit only if its phase is consistent with
// receiving it.
func (s *Stack) WillAppear(animated bool) {
	s.host = hostAppearing
	s.beginAppear(s.topEntry(), animated)
}

// DidAppear tells the stack its host container finished appearing.
func (s *Stack) DidAppear(animated bool) {
	s.host = hostAppeared
	s.endAppear(s.topEntry(), animated)
}

// WillDisappear tells the stack its host container is about to disappear.
func (s *Stack) WillDisappear(animated bool) {
	s.host = hostDisappearing
	s.beginDisappear(s.topEntry(), animated)
}

// DidDisappear tells the stack its host container finished disappearing.
func (s *Stack) DidDisappear(animated bool) {
	s.host = hostHidden
	s.endDisappear(s.topEntry(), animated)
}

func (s *Stack) topEntry() *entry {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1]
}

// beginAppear forwards WillAppear if the entry has a view, the host is
// visible, and the phase allows it. Phase guards are what prevent double
// lifecycle events when the host and a mutation both report appearance.
func (s *Stack) beginAppear(e *entry, animated bool) {
	if e == nil || e.phase == PhaseUnloaded || !s.host.visible() {
		return
	}
	if e.phase == PhaseLoaded || e.phase == PhaseDisappearing {
		e.unit.WillAppear(animated)
		e.phase = PhaseAppearing
	}
}

func (s *Stack) endAppear(e *entry, animated bool) {
	if e == nil || e.phase != PhaseAppearing {
		return
	}
	e.unit.DidAppear(animated)
	e.phase = PhaseAppeared
}

func (s *Stack) beginDisappear(e *entry, animated bool) {
	if e == nil {
		return
	}
	if e.phase == PhaseAppeared || e.phase == PhaseAppearing {
		e.unit.WillDisappear(animated)
		e.phase = PhaseDisappearing
	}
}

func (s *Stack) endDisappear(e *entry, animated bool) {
	if e == nil || e.phase != PhaseDisappearing {
		return
	}
	e.unit.DidDisappear(animated)
	e.phase = PhaseLoaded
}

func entryUnit(e *entry) Unit {
	if e == nil {
		return nil
	}
	return e.unit
}
