package game

import (
	"sort"

	"github.com/vovakirdan/tui-apples/internal/core"
)

// Highlighter mirrors selection changes onto the presentation layer.
// The engine never reads highlight state back.
type Highlighter interface {
	SetHighlight(id int, selected bool)
}

// Tracker holds the set of selected tile ids and the active drag anchor.
type Tracker struct {
	selected   map[int]struct{}
	anchor     core.Point
	anchorTile int
	active     bool
	hl         Highlighter
}

// NewTracker creates an idle tracker. hl may be nil.
func NewTracker(hl Highlighter) *Tracker {
	return &Tracker{
		selected: make(map[int]struct{}),
		hl:       hl,
	}
}

// Active reports whether a drag is in progress.
func (t *Tracker) Active() bool {
	return t.active
}

// Anchor returns the drag-start point. The second result is false when idle.
func (t *Tracker) Anchor() (core.Point, bool) {
	return t.anchor, t.active
}

// AnchorTile returns the id of the tile under the drag start.
func (t *Tracker) AnchorTile() (int, bool) {
	return t.anchorTile, t.active
}

// BeginDrag anchors a new drag at p and selects tileID.
// Returns false, changing nothing, if a drag is already active.
func (t *Tracker) BeginDrag(p core.Point, tileID int) bool {
	if t.active {
		return false
	}
	t.clearSelected()
	t.anchor = p
	t.anchorTile = tileID
	t.active = true
	t.Add(tileID)
	return true
}

// Add selects a tile. No-op when idle or already selected.
func (t *Tracker) Add(id int) {
	if !t.active {
		return
	}
	if _, ok := t.selected[id]; ok {
		return
	}
	t.selected[id] = struct{}{}
	t.mirror(id, true)
}

// Remove deselects a tile. The anchor tile is only released by EndDrag.
func (t *Tracker) Remove(id int) {
	if t.active && id == t.anchorTile {
		return
	}
	if _, ok := t.selected[id]; !ok {
		return
	}
	delete(t.selected, id)
	t.mirror(id, false)
}

// Contains reports whether id is selected.
func (t *Tracker) Contains(id int) bool {
	_, ok := t.selected[id]
	return ok
}

// Len returns the number of selected tiles.
func (t *Tracker) Len() int {
	return len(t.selected)
}

// Selected returns the selected ids in ascending order.
func (t *Tracker) Selected() []int {
	ids := make([]int, 0, len(t.selected))
	for id := range t.selected {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// EndDrag returns the final selection and resets all tracker state,
// including highlights.
func (t *Tracker) EndDrag() []int {
	ids := t.Selected()
	t.clearSelected()
	t.anchor = core.Point{}
	t.anchorTile = 0
	t.active = false
	return ids
}

func (t *Tracker) clearSelected() {
	for id := range t.selected {
		delete(t.selected, id)
		t.mirror(id, false)
	}
}

func (t *Tracker) mirror(id int, selected bool) {
	if t.hl != nil {
		t.hl.SetHighlight(id, selected)
	}
}
