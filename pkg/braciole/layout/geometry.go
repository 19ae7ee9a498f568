// Package layout holds the pure geometry for the context menu: content
// sizing, popup placement, and rectangle conversion between registered
// surfaces. Nothing in this package touches SDL; text measurement comes
// in through the TextMeasurer interface so the math stays testable.
package layout

import "math"

type Point struct {
	X, Y float64
}

type Size struct {
	W, H float64
}

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64 {
	return r.X + r.W
}

func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// MidX is the horizontal midpoint of the rectangle.
func (r Rect) MidX() float64 {
	return r.X + r.W/2
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
