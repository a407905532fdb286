package tui

import "github.com/vovakirdan/tui-apples/internal/core"

// hudHeight is the number of rows above the board (status line + gap).
const hudHeight = 2

// Layout maps tile ids to terminal cells.
// Tile id i occupies the cell box at column i%Cols, row i/Cols.
type Layout struct {
	OriginX, OriginY int
	CellW, CellH     int
	Rows, Cols       int
}

// NewLayout centers a rows x cols board horizontally below the HUD.
func NewLayout(screenW, rows, cols, cellW, cellH int) Layout {
	originX := (screenW - cols*cellW) / 2
	if originX < 0 {
		originX = 0
	}
	return Layout{
		OriginX: originX,
		OriginY: hudHeight,
		CellW:   cellW,
		CellH:   cellH,
		Rows:    rows,
		Cols:    cols,
	}
}

// Bounds returns the box covering the whole board.
func (l Layout) Bounds() core.Box {
	return core.NewBox(l.OriginX, l.OriginY, l.Cols*l.CellW, l.Rows*l.CellH)
}

// MinSize returns the smallest terminal that shows the whole board,
// the HUD and the help line.
func (l Layout) MinSize() (int, int) {
	return l.Cols * l.CellW, hudHeight + l.Rows*l.CellH + 1
}

func (l Layout) valid(id int) bool {
	return id >= 0 && id < l.Rows*l.Cols
}

// Box returns the cell box of a tile.
func (l Layout) Box(id int) core.Box {
	col, row := id%l.Cols, id/l.Cols
	return core.NewBox(l.OriginX+col*l.CellW, l.OriginY+row*l.CellH, l.CellW, l.CellH)
}

// Center returns the cell a tile's label is drawn in, which doubles as its
// hit-test center.
func (l Layout) Center(id int) core.Point {
	b := l.Box(id)
	return core.Pt(b.X+(b.W-1)/2, b.Y+(b.H-1)/2)
}

// TileAt returns the id of the tile whose cell box contains (x, y).
func (l Layout) TileAt(x, y int) (int, bool) {
	if !l.Bounds().Contains(x, y) {
		return 0, false
	}
	col := (x - l.OriginX) / l.CellW
	row := (y - l.OriginY) / l.CellH
	return row*l.Cols + col, true
}
