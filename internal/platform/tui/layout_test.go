package tui

import (
	"testing"

	"github.com/vovakirdan/tui-apples/internal/core"
)

func TestNewLayoutCentersBoard(t *testing.T) {
	tests := []struct {
		name    string
		screenW int
		wantX   int
	}{
		{"wide screen", 80, 10},
		{"exact fit", 60, 0},
		{"narrow screen", 40, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLayout(tc.screenW, 10, 20, 3, 2)
			if l.OriginX != tc.wantX {
				t.Errorf("OriginX = %d, want %d", l.OriginX, tc.wantX)
			}
			if l.OriginY != hudHeight {
				t.Errorf("OriginY = %d, want %d", l.OriginY, hudHeight)
			}
		})
	}
}

func TestLayoutBoundsAndMinSize(t *testing.T) {
	l := NewLayout(80, 10, 20, 3, 2)

	if got, want := l.Bounds(), core.NewBox(10, 2, 60, 20); got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
	w, h := l.MinSize()
	if w != 60 || h != 23 {
		t.Errorf("MinSize() = %dx%d, want 60x23", w, h)
	}
}

func TestLayoutBoxAndCenter(t *testing.T) {
	l := NewLayout(51, 2, 3, 3, 2)

	tests := []struct {
		id     int
		box    core.Box
		center core.Point
	}{
		{0, core.NewBox(21, 2, 3, 2), core.Pt(22, 2)},
		{2, core.NewBox(27, 2, 3, 2), core.Pt(28, 2)},
		{3, core.NewBox(21, 4, 3, 2), core.Pt(22, 4)},
		{5, core.NewBox(27, 4, 3, 2), core.Pt(28, 4)},
	}

	for _, tc := range tests {
		if got := l.Box(tc.id); got != tc.box {
			t.Errorf("Box(%d) = %+v, want %+v", tc.id, got, tc.box)
		}
		if got := l.Center(tc.id); got != tc.center {
			t.Errorf("Center(%d) = %v, want %v", tc.id, got, tc.center)
		}
	}
}

func TestLayoutTileAt(t *testing.T) {
	l := NewLayout(51, 2, 3, 3, 2)

	tests := []struct {
		name   string
		x, y   int
		wantID int
		wantOK bool
	}{
		{"top-left corner", 21, 2, 0, true},
		{"inside first tile", 23, 3, 0, true},
		{"second column", 24, 2, 1, true},
		{"bottom-right corner", 29, 5, 5, true},
		{"left of board", 20, 2, 0, false},
		{"right of board", 30, 2, 0, false},
		{"in the HUD", 22, 0, 0, false},
		{"below board", 22, 6, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id, ok := l.TileAt(tc.x, tc.y)
			if ok != tc.wantOK {
				t.Fatalf("TileAt(%d, %d) ok = %v, want %v", tc.x, tc.y, ok, tc.wantOK)
			}
			if ok && id != tc.wantID {
				t.Errorf("TileAt(%d, %d) = %d, want %d", tc.x, tc.y, id, tc.wantID)
			}
		})
	}
}

func TestLayoutCenterRoundTrip(t *testing.T) {
	l := NewLayout(80, 10, 20, 3, 2)

	for id := range l.Rows * l.Cols {
		c := l.Center(id)
		got, ok := l.TileAt(int(c.X), int(c.Y))
		if !ok || got != id {
			t.Fatalf("TileAt(Center(%d)) = %d, %v", id, got, ok)
		}
	}
}
