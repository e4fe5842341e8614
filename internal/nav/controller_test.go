package nav

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// recordingControllerDelegate mirrors recordingDelegate for the façade.
type recordingControllerDelegate struct {
	events []string
}

func (d *recordingControllerDelegate) log(format string, args ...any) {
	d.events = append(d.events, fmt.Sprintf(format, args...))
}

func (d *recordingControllerDelegate) WillPush(_ *Controller, pushed, covered Unit, _ bool) {
	d.log("willPush %s covers %s", name(pushed), name(covered))
}
func (d *recordingControllerDelegate) WillShow(_ *Controller, u Unit, _ bool) {
	d.log("willShow %s", name(u))
}
func (d *recordingControllerDelegate) DidShow(_ *Controller, u Unit, _ bool) {
	d.log("didShow %s", name(u))
}
func (d *recordingControllerDelegate) DidPush(_ *Controller, pushed, covered Unit, _ bool) {
	d.log("didPush %s covers %s", name(pushed), name(covered))
}
func (d *recordingControllerDelegate) WillPop(_ *Controller, popped, revealed Unit, _ bool) {
	d.log("willPop %s reveals %s", name(popped), name(revealed))
}
func (d *recordingControllerDelegate) WillHide(_ *Controller, u Unit, _ bool) {
	d.log("willHide %s", name(u))
}
func (d *recordingControllerDelegate) DidHide(_ *Controller, u Unit, _ bool) {
	d.log("didHide %s", name(u))
}
func (d *recordingControllerDelegate) DidPop(_ *Controller, popped, revealed Unit, _ bool) {
	d.log("didPop %s reveals %s", name(popped), name(revealed))
}

func TestController_InstallsRootWithoutTransition(t *testing.T) {
	root := newTestUnit("root")
	c, err := NewController(root, Config{Capacity: DefaultCapacity})
	require.NoError(t, err)

	require.Same(t, root, c.Root())
	require.Same(t, root, c.Top())
	require.Equal(t, 1, c.Count())
	require.Equal(t, TransitionNone, c.Entries()[0].Kind)
}

func TestController_NilRootRejected(t *testing.T) {
	_, err := NewController(nil, Config{})
	require.ErrorIs(t, err, ErrNilUnit)
}

func TestController_RootIsProtected(t *testing.T) {
	root := newTestUnit("root")
	// RootMandatory is forced on, whatever the caller passed.
	c, err := NewController(root, Config{Capacity: DefaultCapacity, RootMandatory: false})
	require.NoError(t, err)

	require.NoError(t, c.Pop(false))
	require.NoError(t, c.PopToRoot(false))
	require.Equal(t, 1, c.Count())
	require.Same(t, root, c.Root())
}

func TestController_DelegatePassThroughOrdering(t *testing.T) {
	root := newTestUnit("root")
	c, err := NewController(root, Config{Capacity: DefaultCapacity})
	require.NoError(t, err)
	require.NoError(t, c.SetSurface(&Surface{Width: 80, Height: 24}))
	c.WillAppear(false)
	c.DidAppear(false)

	d := &recordingControllerDelegate{}
	c.SetDelegate(d)

	a := newTestUnit("A")
	require.NoError(t, c.PushDefault(a, false))
	require.NoError(t, c.Pop(false))

	require.Equal(t, []string{
		"willPush A covers root",
		"willShow A",
		"willHide root",
		"didShow A",
		"didPush A covers root",
		"willPop A reveals root",
		"willHide A",
		"willShow root",
		"didShow root",
		"didHide A",
		"didPop A reveals root",
	}, d.events)
}

func TestController_TitleForwardsTopChrome(t *testing.T) {
	root := newTestUnit("Home")
	c, err := NewController(root, Config{Capacity: DefaultCapacity})
	require.NoError(t, err)
	require.Equal(t, "Home", c.Title())

	detail := newTestUnit("Detail")
	require.NoError(t, c.PushDefault(detail, false))
	require.Equal(t, "Detail", c.Title())

	require.NoError(t, c.Pop(false))
	require.Equal(t, "Home", c.Title())
}

func TestController_UnitsIsACopy(t *testing.T) {
	root := newTestUnit("root")
	c, err := NewController(root, Config{Capacity: DefaultCapacity})
	require.NoError(t, err)
	require.NoError(t, c.PushDefault(newTestUnit("A"), false))

	units := c.Units()
	units[0] = nil
	require.Same(t, root, c.Root())
	require.Equal(t, []string{"root", "A"}, unitNames(c.Units()))
}
