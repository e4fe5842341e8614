package ui

import (
	"strings"
	"testing"

	"navstack/internal/nav"
)

func TestInspectorRendersEntries(t *testing.T) {
	infos := []nav.EntryInfo{
		{Unit: NewMenuScreen(), Kind: nav.TransitionNone, Phase: nav.PhaseUnloaded},
		{Unit: NewPagerScreen("Guide", "text"), Kind: nav.TransitionSlideLeft, Phase: nav.PhaseAppeared, ViewLoaded: true},
	}
	v := NewInspectorScreen(func() []nav.EntryInfo { return infos })
	if err := v.Load(80, 24); err != nil {
		t.Fatalf("Load: %v", err)
	}

	out := v.Render()
	for _, want := range []string{"navstack", "Guide", "Appeared", "unloaded", "loaded"} {
		if !strings.Contains(out, want) {
			t.Errorf("render should mention %q:\n%s", want, out)
		}
	}
}

func TestInspectorSnapshotIsLive(t *testing.T) {
	infos := []nav.EntryInfo{
		{Unit: NewMenuScreen(), Phase: nav.PhaseAppeared, ViewLoaded: true},
	}
	v := NewInspectorScreen(func() []nav.EntryInfo { return infos })
	if err := v.Load(80, 24); err != nil {
		t.Fatalf("Load: %v", err)
	}
	first := v.Render()

	infos = append(infos, nav.EntryInfo{
		Unit: NewPagerScreen("Guide", "text"), Phase: nav.PhaseLoaded, ViewLoaded: true,
	})
	second := v.Render()
	if first == second {
		t.Error("render should follow the snapshot source")
	}
}
