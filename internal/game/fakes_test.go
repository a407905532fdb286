package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-apples/internal/core"
)

// fakeView records everything the session asks the presentation to do.
type fakeView struct {
	centers    map[int]core.Point
	highlights map[int]bool
	toggles    int
	rect       core.Rect
	rectShown  bool
}

func newFakeView() *fakeView {
	return &fakeView{
		centers:    make(map[int]core.Point),
		highlights: make(map[int]bool),
	}
}

func (v *fakeView) Center(id int) (core.Point, bool) {
	p, ok := v.centers[id]
	return p, ok
}

func (v *fakeView) SetHighlight(id int, selected bool) {
	v.highlights[id] = selected
	v.toggles++
}

func (v *fakeView) ShowDragRect(r core.Rect) {
	v.rect = r
	v.rectShown = true
}

func (v *fakeView) HideDragRect() {
	v.rectShown = false
}

func (v *fakeView) highlighted() int {
	n := 0
	for _, on := range v.highlights {
		if on {
			n++
		}
	}
	return n
}

// gridView places tiles on a grid with the given spacing, starting at
// (spacing, spacing): tile id i sits at column i%cols, row i/cols.
func gridView(rows, cols int, spacing float64) *fakeView {
	v := newFakeView()
	for id := 0; id < rows*cols; id++ {
		v.centers[id] = core.Point{
			X: spacing * float64(id%cols+1),
			Y: spacing * float64(id/cols+1),
		}
	}
	return v
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}
