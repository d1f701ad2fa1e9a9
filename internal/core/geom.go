// Package core provides fundamental types and utilities shared by the
// simulation and the terminal platform. It has no external dependencies so
// game logic stays pure and testable.
package core

import "math"

// Rect is an integer rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new cell rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// RectF is an axis-aligned box in world units, used for all collisions.
type RectF struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// NewRectF creates a world rectangle.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (r RectF) Left() float64 { return r.X }

// Top returns the y-coordinate of the top edge.
func (r RectF) Top() float64 { return r.Y }

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 { return r.X + r.W }

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal centre.
func (r RectF) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical centre.
func (r RectF) CenterY() float64 { return r.Y + r.H/2 }

// SetCenterX moves the rectangle so its horizontal centre is cx.
func (r *RectF) SetCenterX(cx float64) { r.X = cx - r.W/2 }

// SetCenter moves the rectangle so its centre is (cx, cy).
func (r *RectF) SetCenter(cx, cy float64) {
	r.X = cx - r.W/2
	r.Y = cy - r.H/2
}

// SetBottom moves the rectangle so its bottom edge is at y.
func (r *RectF) SetBottom(y float64) { r.Y = y - r.H }

// Intersects reports whether the two boxes overlap with positive area.
// Touching edges do not count as overlap.
func (r RectF) Intersects(o RectF) bool {
	if r.X >= o.Right() || o.X >= r.Right() {
		return false
	}
	if r.Y >= o.Bottom() || o.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains reports whether the point is inside the box (right/bottom exclusive).
func (r RectF) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
