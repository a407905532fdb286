package core

import "testing"

func TestRectFromCornersNormalizes(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
	}{
		{"top-left first", Point{5, 5}, Point{25, 15}},
		{"bottom-right first", Point{25, 15}, Point{5, 5}},
		{"top-right first", Point{25, 5}, Point{5, 15}},
		{"bottom-left first", Point{5, 15}, Point{25, 5}},
	}

	want := Rect{Min: Point{5, 5}, Max: Point{25, 15}}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := RectFromCorners(tc.a, tc.b)
			if got != want {
				t.Errorf("RectFromCorners(%v, %v) = %v, expected %v", tc.a, tc.b, got, want)
			}
		})
	}
}

func TestRectContainsInclusive(t *testing.T) {
	r := RectFromCorners(Point{5, 5}, Point{15, 15})

	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"inside", Point{10, 10}, true},
		{"top-left corner", Point{5, 5}, true},
		{"bottom-right corner", Point{15, 15}, true},
		{"right edge", Point{15, 10}, true},
		{"bottom edge", Point{10, 15}, true},
		{"just outside right", Point{15.5, 10}, false},
		{"outside left", Point{4, 10}, false},
		{"outside top", Point{10, 4}, false},
		{"outside bottom", Point{10, 16}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestDegenerateRect(t *testing.T) {
	p := Point{7, 3}
	r := RectFromCorners(p, p)

	if r.Width() != 0 || r.Height() != 0 {
		t.Errorf("zero-size rect has size %vx%v", r.Width(), r.Height())
	}
	if !r.Contains(p) {
		t.Error("zero-size rect should contain its own corner")
	}
}

func TestBoxContains(t *testing.T) {
	b := NewBox(10, 10, 3, 2)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top-left corner", 10, 10, true},
		{"last cell", 12, 11, true},
		{"right edge (exclusive)", 13, 10, false},
		{"bottom edge (exclusive)", 10, 12, false},
		{"outside left", 9, 10, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestBoxFromRect(t *testing.T) {
	got := BoxFromRect(RectFromCorners(Pt(8, 4), Pt(3, 2)))
	want := NewBox(3, 2, 6, 3)
	if got != want {
		t.Errorf("BoxFromRect() = %v, expected %v", got, want)
	}
	if got.Right() != 9 || got.Bottom() != 5 {
		t.Errorf("edges = (%d, %d), expected (9, 5)", got.Right(), got.Bottom())
	}
}
