package world

import "fmt"

// Rect is a rectangular footprint on a single level, X/Z being its north-west corner.
type Rect struct {
	X, Z          int
	Width, Length int
}

// Contains reports whether (x, z) lies inside the rectangle.
func (r Rect) Contains(x, z int) bool {
	return x >= r.X && x < r.X+r.Width && z >= r.Z && z < r.Z+r.Length
}

// Overlaps reports whether the two rectangles share at least one cell.
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Z < o.Z+o.Length && o.Z < r.Z+r.Length
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Length <= 0
}

// Area returns the number of cells covered.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.Width * r.Length
}

// Each calls fn for every cell of the rectangle, row by row.
func (r Rect) Each(fn func(x, z int)) {
	for z := r.Z; z < r.Z+r.Length; z++ {
		for x := r.X; x < r.X+r.Width; x++ {
			fn(x, z)
		}
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d@(%d,%d)", r.Width, r.Length, r.X, r.Z)
}
