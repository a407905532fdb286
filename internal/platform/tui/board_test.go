package tui

import (
	"testing"

	"github.com/vovakirdan/tui-apples/internal/core"
	"github.com/vovakirdan/tui-apples/internal/game"
)

func testBoard() *boardView {
	v := newBoardView(NewLayout(9, 1, 3, 3, 1))
	v.reset([]game.Tile{
		{ID: 0, Value: 4, Alive: true},
		{ID: 1, Value: 6, Alive: true},
		{ID: 2, Value: 9, Alive: true},
	})
	return v
}

func TestBoardCenter(t *testing.T) {
	v := testBoard()

	if c, ok := v.Center(1); !ok || c != core.Pt(4, 2) {
		t.Errorf("Center(1) = %v, %v, want (4,2)", c, ok)
	}
	if _, ok := v.Center(7); ok {
		t.Error("unknown tile should have no center")
	}

	v.detach([]int{1})
	if _, ok := v.Center(1); ok {
		t.Error("detached tile should have no center")
	}
}

func TestBoardHighlight(t *testing.T) {
	v := testBoard()

	v.SetHighlight(0, true)
	if v.visual(0) != visualSelected {
		t.Errorf("visual(0) = %d, want selected", v.visual(0))
	}
	v.SetHighlight(0, false)
	if v.visual(0) != visualNormal {
		t.Errorf("visual(0) = %d, want normal", v.visual(0))
	}

	v.markRemoving([]int{1})
	v.SetHighlight(1, false)
	if v.visual(1) != visualRemoving {
		t.Error("highlight changes must not affect a removing tile")
	}
	v.detach([]int{1})
	v.SetHighlight(1, true)
	if v.visual(1) != visualDetached {
		t.Error("highlight changes must not affect a detached tile")
	}
}

func TestBoardDraw(t *testing.T) {
	v := testBoard()
	s := core.NewScreen(9, 4)

	v.SetHighlight(1, true)
	v.markRemoving([]int{2})
	v.draw(s)

	if got := s.Row(2); got != " 4 [6] 9 " {
		t.Errorf("row = %q, want %q", got, " 4 [6] 9 ")
	}
	if c := s.GetCell(1, 2).Color; c != core.ColorTile {
		t.Errorf("normal tile color = %v, want ColorTile", c)
	}
	if c := s.GetCell(4, 2).Color; c != core.ColorSelected {
		t.Errorf("selected tile color = %v, want ColorSelected", c)
	}
	if c := s.GetCell(7, 2).Color; c != core.ColorRemoving {
		t.Errorf("removing tile color = %v, want ColorRemoving", c)
	}

	v.detach([]int{2})
	s.Clear()
	v.draw(s)
	if got := s.Get(7, 2); got != ' ' {
		t.Errorf("detached tile drawn as %q", got)
	}
}

func TestBoardDragRect(t *testing.T) {
	v := testBoard()
	s := core.NewScreen(9, 4)

	v.ShowDragRect(core.RectFromCorners(core.Pt(0, 1), core.Pt(8, 3)))
	v.draw(s)
	if got := s.Get(0, 1); got != '┌' {
		t.Errorf("drag corner = %q, want '┌'", got)
	}
	if got := s.Get(1, 2); got != '4' {
		t.Errorf("labels should draw over the drag box, got %q", got)
	}

	v.HideDragRect()
	s.Clear()
	v.draw(s)
	if got := s.Get(0, 1); got != ' ' {
		t.Errorf("hidden drag rect still drawn: %q", got)
	}
}

func TestBoardReset(t *testing.T) {
	v := testBoard()
	v.markRemoving([]int{0})
	v.ShowDragRect(core.Rect{})

	v.reset([]game.Tile{{ID: 0, Value: 3, Alive: true}})

	if v.visual(0) != visualNormal {
		t.Error("reset should clear visual states")
	}
	if v.dragShown {
		t.Error("reset should hide the drag rect")
	}
	if _, ok := v.Center(1); ok {
		t.Error("tiles from the old grid should be gone")
	}
}
