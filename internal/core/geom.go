// Package core holds the host-neutral building blocks shared by the match
// engine and the terminal platform: geometry, the cell screen buffer and the
// input frame. Nothing in here imports Bubble Tea.
package core

// Rect is an integer rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left cell
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is an axis-aligned bounding box in playfield units.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Intersects reports whether two boxes overlap.
// Boxes that only share an edge do not overlap.
func (b Box) Intersects(other Box) bool {
	if b.X >= other.Right() || other.X >= b.Right() {
		return false
	}
	if b.Y >= other.Bottom() || other.Y >= b.Bottom() {
		return false
	}
	return true
}

// Circle is a circle in playfield units.
type Circle struct {
	X, Y float64 // Center
	R    float64
}

// IntersectsBox reports whether the circle overlaps the box, using the point
// of the box closest to the circle center.
func (c Circle) IntersectsBox(b Box) bool {
	closestX := ClampF(c.X, b.X, b.Right())
	closestY := ClampF(c.Y, b.Y, b.Bottom())

	dx := c.X - closestX
	dy := c.Y - closestY
	return dx*dx+dy*dy < c.R*c.R
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
