package dom

import "testing"

func TestMissingElementsAreNoops(t *testing.T) {
	d := New()
	d.Activate("nope")
	d.SetText("nope", "x")
	d.SetAttribute("nope", "k", "v")
	d.SetClass("nope", "c", true)
	d.Remove("nope")
	d.ClearChildren("nope")
	if id := d.CreateAndAppend("nope", KindText); id != "" {
		t.Fatalf("expected empty id for missing parent, got %q", id)
	}
	if d.Len() != 1 {
		t.Fatalf("expected only the root element, got %d", d.Len())
	}
}

func TestDefineRejectsDuplicatesAndOrphans(t *testing.T) {
	d := New()
	if !d.Define("screen-a", RootID, KindScreen) {
		t.Fatalf("expected define to succeed")
	}
	if d.Define("screen-a", RootID, KindScreen) {
		t.Fatalf("expected duplicate define to fail")
	}
	if d.Define("child", "missing", KindText) {
		t.Fatalf("expected define under missing parent to fail")
	}
}

func TestRemoveDropsSubtree(t *testing.T) {
	d := New()
	d.Define("area", RootID, KindContainer)
	a := d.CreateAndAppend("area", KindTapHeart)
	b := d.CreateAndAppend(a, KindBurst)
	d.Remove(a)
	if d.Exists(a) || d.Exists(b) {
		t.Fatalf("expected subtree removed")
	}
	if len(d.Children("area")) != 0 {
		t.Fatalf("expected parent child list updated")
	}
}

func TestClearChildrenKeepsParent(t *testing.T) {
	d := New()
	d.Define("area", RootID, KindContainer)
	for i := 0; i < 3; i++ {
		d.CreateAndAppend("area", KindConfetti)
	}
	d.ClearChildren("area")
	if !d.Exists("area") || len(d.Children("area")) != 0 {
		t.Fatalf("expected empty but present container")
	}
}

func TestAttributesAndClasses(t *testing.T) {
	d := New()
	d.Define("heart", RootID, KindBlock)
	d.SetAttribute("heart", "data-level", "3")
	d.SetClass("heart", "pulse", true)
	e := d.Get("heart")
	if e.Attr("data-level") != "3" || !e.HasClass("pulse") {
		t.Fatalf("unexpected element state: %+v", e)
	}
	d.SetAttribute("heart", "data-level", "")
	d.SetClass("heart", "pulse", false)
	if e.Attr("data-level") != "" || e.HasClass("pulse") {
		t.Fatalf("expected attribute and class cleared")
	}
}

func TestActiveOf(t *testing.T) {
	d := New()
	d.Define("s1", RootID, KindScreen)
	d.Define("s2", RootID, KindScreen)
	d.Activate("s2")
	got := d.ActiveOf(KindScreen)
	if len(got) != 1 || got[0] != "s2" {
		t.Fatalf("unexpected active screens: %v", got)
	}
}
