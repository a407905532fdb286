package tui

import (
	"github.com/vovakirdan/tui-apples/internal/core"
	"github.com/vovakirdan/tui-apples/internal/game"
)

// tileVisual is the display state of a tile.
type tileVisual int

const (
	visualNormal tileVisual = iota
	visualSelected
	visualRemoving // matched, waiting for the detach task
	visualDetached // gone from the board
)

// boardView is the presentation side of the board. It owns the id -> label
// mapping and visual states; the session only ever sees ids.
type boardView struct {
	layout    Layout
	labels    map[int]rune
	visuals   map[int]tileVisual
	drag      core.Rect
	dragShown bool
}

var _ game.View = (*boardView)(nil)

func newBoardView(l Layout) *boardView {
	return &boardView{
		layout:  l,
		labels:  make(map[int]rune),
		visuals: make(map[int]tileVisual),
	}
}

// reset rebuilds the visuals for a freshly generated grid.
func (v *boardView) reset(tiles []game.Tile) {
	v.labels = make(map[int]rune, len(tiles))
	v.visuals = make(map[int]tileVisual, len(tiles))
	for _, t := range tiles {
		v.labels[t.ID] = rune('0' + t.Value)
	}
	v.dragShown = false
}

// Center implements game.CenterSource.
func (v *boardView) Center(id int) (core.Point, bool) {
	if _, ok := v.labels[id]; !ok || !v.layout.valid(id) {
		return core.Point{}, false
	}
	if v.visuals[id] == visualDetached {
		return core.Point{}, false
	}
	return v.layout.Center(id), true
}

// SetHighlight implements game.Highlighter.
func (v *boardView) SetHighlight(id int, selected bool) {
	switch v.visuals[id] {
	case visualRemoving, visualDetached:
		return
	}
	if selected {
		v.visuals[id] = visualSelected
	} else {
		delete(v.visuals, id)
	}
}

// ShowDragRect implements game.View.
func (v *boardView) ShowDragRect(r core.Rect) {
	v.drag = r
	v.dragShown = true
}

// HideDragRect implements game.View.
func (v *boardView) HideDragRect() {
	v.dragShown = false
}

// markRemoving starts the removal transition for matched tiles.
func (v *boardView) markRemoving(ids []int) {
	for _, id := range ids {
		v.visuals[id] = visualRemoving
	}
}

// detach drops tiles from the board.
func (v *boardView) detach(ids []int) {
	for _, id := range ids {
		v.visuals[id] = visualDetached
	}
}

func (v *boardView) visual(id int) tileVisual {
	return v.visuals[id]
}

// draw renders the drag rectangle and tiles into dst.
func (v *boardView) draw(dst *core.Screen) {
	if v.dragShown {
		dst.DrawBox(core.BoxFromRect(v.drag), core.ColorDrag)
	}

	for id, label := range v.labels {
		c := v.layout.Center(id)
		x, y := int(c.X), int(c.Y)
		switch v.visuals[id] {
		case visualDetached:
			continue
		case visualRemoving:
			dst.Set(x, y, label, core.ColorRemoving)
		case visualSelected:
			dst.Set(x, y, label, core.ColorSelected)
			if v.layout.CellW >= 3 {
				dst.Set(x-1, y, '[', core.ColorSelected)
				dst.Set(x+1, y, ']', core.ColorSelected)
			}
		default:
			dst.Set(x, y, label, core.ColorTile)
		}
	}
}
