// Package core provides fundamental types and utilities shared by the engine
// and the terminal front end. It has no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

// Point is a position in the board's local coordinate frame.
// Terminal cells map to whole numbers, but centers may fall between cells.
type Point struct {
	X, Y float64
}

// Pt is shorthand for building a Point from cell coordinates.
func Pt(x, y int) Point {
	return Point{X: float64(x), Y: float64(y)}
}

// Rect is an axis-aligned rectangle with Min <= Max on both axes.
// Unlike Box, both edges are part of the rectangle.
type Rect struct {
	Min, Max Point
}

// RectFromCorners builds a normalized rectangle from two opposite corners.
// Either corner may come first.
func RectFromCorners(a, b Point) Rect {
	return Rect{
		Min: Point{X: minF(a.X, b.X), Y: minF(a.Y, b.Y)},
		Max: Point{X: maxF(a.X, b.X), Y: maxF(a.Y, b.Y)},
	}
}

// Contains reports whether p lies inside the rectangle, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Box is an integer cell rectangle used for hit boxes and drawing.
type Box struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewBox creates a new box with the given position and dimensions.
func NewBox(x, y, w, h int) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() int {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() int {
	return b.Y + b.H
}

// Contains returns true if the cell (x, y) is inside this box.
// The right and bottom edges are exclusive.
func (b Box) Contains(x, y int) bool {
	return x >= b.X && x < b.Right() && y >= b.Y && y < b.Bottom()
}

// BoxFromRect converts a cell-aligned rectangle to the box of cells it
// covers. Both edges are cells of the box, so a zero-size rectangle is a
// single cell.
func BoxFromRect(r Rect) Box {
	return NewBox(int(r.Min.X), int(r.Min.Y), int(r.Width())+1, int(r.Height())+1)
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
