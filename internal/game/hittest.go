package game

import "github.com/vovakirdan/tui-apples/internal/core"

// CenterSource supplies the screen-space center of a tile.
// The second result is false when the tile has no visual representation.
type CenterSource interface {
	Center(id int) (core.Point, bool)
}

// HitTester reconciles the selection against the rectangle spanned by the
// drag anchor and the cursor.
type HitTester struct {
	tracker *Tracker
	centers CenterSource
}

// NewHitTester creates a hit tester bound to a tracker and center source.
func NewHitTester(tracker *Tracker, centers CenterSource) *HitTester {
	return &HitTester{tracker: tracker, centers: centers}
}

// Update re-scans every tile against the current drag rectangle.
// Tiles whose center is inside (edges included) are selected; selected
// tiles outside are deselected, except the anchor. Tiles without a known
// center are left untouched. Does nothing when no drag is active.
// Returns the rectangle that was tested.
func (h *HitTester) Update(cursor core.Point, tiles []Tile) (core.Rect, bool) {
	anchor, ok := h.tracker.Anchor()
	if !ok || h.centers == nil {
		return core.Rect{}, false
	}

	rect := core.RectFromCorners(anchor, cursor)
	for _, t := range tiles {
		if !t.Alive {
			continue
		}
		c, known := h.centers.Center(t.ID)
		if !known {
			continue
		}
		if rect.Contains(c) {
			h.tracker.Add(t.ID)
		} else {
			h.tracker.Remove(t.ID)
		}
	}
	return rect, true
}
