// Package core holds the frontend-independent building blocks: the cell
// screen buffer, colors, geometry and input actions. It imports neither
// Bubble Tea nor Ebiten.
package core

import "math"

// Rect is an area of screen cells.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect returns the rect at (x, y) sized w x h.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the rect.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past the rect.
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Vec is a point in plane or background coordinates.
type Vec struct {
	X, Y float64
}

// V builds a Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Dist returns the Euclidean distance to o.
func (v Vec) Dist(o Vec) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// IsFinite reports whether neither component is NaN or infinite.
// A formula value that is not finite leaves a gap in the track.
func (v Vec) IsFinite() bool {
	return !math.IsNaN(v.X+v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	return min(max(val, lo), hi)
}

// ClampF restricts val to [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	return math.Min(math.Max(val, lo), hi)
}

// Wrap moves val into [lo, hi), re-entering at the opposite edge.
func Wrap(val, lo, hi float64) float64 {
	span := hi - lo
	if span <= 0 {
		return lo
	}
	val = math.Mod(val-lo, span)
	if val < 0 {
		val += span
	}
	return lo + val
}
