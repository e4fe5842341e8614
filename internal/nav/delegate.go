package nav

// Delegate receives stack state-change notifications in a fixed order that
// callers may rely on:
//
//	push: WillPush → WillShow(new) → WillHide(covered, if any)
//	      → transition → DidShow(new) → DidPush
//	pop:  WillPop → WillHide(popped) → WillShow(revealed, if any)
//	      → reverse transition → DidShow(revealed) → DidHide(popped) → DidPop
//
// For unanimated mutations the whole sequence fires synchronously before
// the mutating call returns. Pop-to removes intermediate entries without
// any per-entry events: exactly one pop sequence fires, naming the old top
// and the target.
//
// WillPush fires before the pushed unit is in Units(); by DidPush it is.
// DidHide fires while the popped unit is no longer in Units() (the
// sequence reflects the logical target state as soon as the mutation call
// returns). Callers that only care about a few events embed NopDelegate.
type Delegate interface {
	WillPush(s *Stack, pushed, covered Unit, animated bool)
	WillShow(s *Stack, u Unit, animated bool)
	DidShow(s *Stack, u Unit, animated bool)
	DidPush(s *Stack, pushed, covered Unit, animated bool)

	WillPop(s *Stack, popped, revealed Unit, animated bool)
	WillHide(s *Stack, u Unit, animated bool)
	DidHide(s *Stack, u Unit, animated bool)
	DidPop(s *Stack, popped, revealed Unit, animated bool)
}

// NopDelegate implements Delegate with no-ops. Embed it to implement only
// the callbacks you need.
type NopDelegate struct{}

var _ Delegate = NopDelegate{}

func (NopDelegate) WillPush(*Stack, Unit, Unit, bool) {}
func (NopDelegate) WillShow(*Stack, Unit, bool)       {}
func (NopDelegate) DidShow(*Stack, Unit, bool)        {}
func (NopDelegate) DidPush(*Stack, Unit, Unit, bool)  {}
func (NopDelegate) WillPop(*Stack, Unit, Unit, bool)  {}
func (NopDelegate) WillHide(*Stack, Unit, bool)       {}
func (NopDelegate) DidHide(*Stack, Unit, bool)        {}
func (NopDelegate) DidPop(*Stack, Unit, Unit, bool)   {}
