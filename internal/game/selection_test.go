package game

import (
	"testing"

	"github.com/vovakirdan/tui-apples/internal/core"
)

func TestTrackerBeginDrag(t *testing.T) {
	view := newFakeView()
	tr := NewTracker(view)

	if tr.Active() {
		t.Fatal("new tracker should be idle")
	}
	if !tr.BeginDrag(core.Point{X: 3, Y: 4}, 7) {
		t.Fatal("BeginDrag on idle tracker should succeed")
	}

	if p, ok := tr.Anchor(); !ok || p != (core.Point{X: 3, Y: 4}) {
		t.Errorf("Anchor() = %v, %v", p, ok)
	}
	if id, ok := tr.AnchorTile(); !ok || id != 7 {
		t.Errorf("AnchorTile() = %d, %v", id, ok)
	}
	if !equalIDs(tr.Selected(), []int{7}) {
		t.Errorf("Selected() = %v, want [7]", tr.Selected())
	}
	if !view.highlights[7] {
		t.Error("anchor tile should be highlighted")
	}
}

func TestTrackerIgnoresNestedDrag(t *testing.T) {
	tr := NewTracker(nil)
	tr.BeginDrag(core.Point{X: 1, Y: 1}, 1)
	tr.Add(2)

	if tr.BeginDrag(core.Point{X: 9, Y: 9}, 5) {
		t.Fatal("BeginDrag during a drag should be ignored")
	}
	if id, _ := tr.AnchorTile(); id != 1 {
		t.Errorf("anchor tile changed to %d", id)
	}
	if !equalIDs(tr.Selected(), []int{1, 2}) {
		t.Errorf("Selected() = %v, want [1 2]", tr.Selected())
	}
}

func TestTrackerAddIdempotent(t *testing.T) {
	view := newFakeView()
	tr := NewTracker(view)
	tr.BeginDrag(core.Point{}, 0)

	tr.Add(3)
	once := tr.Selected()
	toggles := view.toggles
	tr.Add(3)

	if !equalIDs(tr.Selected(), once) {
		t.Errorf("second Add changed selection: %v vs %v", tr.Selected(), once)
	}
	if view.toggles != toggles {
		t.Error("second Add should not toggle the highlight again")
	}
}

func TestTrackerAddWhileIdle(t *testing.T) {
	tr := NewTracker(nil)
	tr.Add(3)
	if tr.Len() != 0 {
		t.Error("Add without an active drag should be ignored")
	}
}

func TestTrackerRemove(t *testing.T) {
	view := newFakeView()
	tr := NewTracker(view)
	tr.BeginDrag(core.Point{}, 0)
	tr.Add(1)

	tr.Remove(1)
	if tr.Contains(1) {
		t.Error("Remove(1) should deselect")
	}
	if view.highlights[1] {
		t.Error("Remove(1) should clear the highlight")
	}

	tr.Remove(0)
	if !tr.Contains(0) {
		t.Error("anchor tile must not be removed")
	}

	tr.Remove(99) // not selected: no-op
	if tr.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tr.Len())
	}
}

func TestTrackerEndDrag(t *testing.T) {
	view := newFakeView()
	tr := NewTracker(view)
	tr.BeginDrag(core.Point{X: 2, Y: 2}, 4)
	tr.Add(6)
	tr.Add(5)

	got := tr.EndDrag()
	if !equalIDs(got, []int{4, 5, 6}) {
		t.Errorf("EndDrag() = %v, want [4 5 6]", got)
	}
	if tr.Active() || tr.Len() != 0 {
		t.Error("EndDrag should reset all state")
	}
	if _, ok := tr.Anchor(); ok {
		t.Error("anchor should be cleared")
	}
	if view.highlighted() != 0 {
		t.Errorf("%d tiles still highlighted after EndDrag", view.highlighted())
	}

	// A new drag can start afterwards and starts from a clean set
	if !tr.BeginDrag(core.Point{}, 9) || !equalIDs(tr.Selected(), []int{9}) {
		t.Errorf("new drag selection = %v, want [9]", tr.Selected())
	}
}
