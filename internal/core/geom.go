// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect is a block of screen cells. Games keep their own world-space boxes
// and project them to a Rect only for drawing.
type Rect struct {
	X, Y int // Top-left cell
	W, H int
}

// NewRect creates a rectangle. Negative sizes collapse to zero.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: max(0, w), H: max(0, h)}
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clip returns the part of r inside a w x h screen.
func (r Rect) Clip(w, h int) Rect {
	x0, y0 := max(r.X, 0), max(r.Y, 0)
	x1, y1 := min(r.Right(), w), min(r.Bottom(), h)
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// ClampF restricts v to [lo, hi].
func ClampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
