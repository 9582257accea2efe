package balloons

import (
	"math"

	"github.com/vovakirdan/balloon-math/internal/core"
)

// Plane maps math coordinates onto a rectangle of screen cells.
// Both axes span [Min, Max]; y grows upward.
type Plane struct {
	Min, Max float64
	View     core.Rect
}

// NewPlane creates a plane for the given range drawn into view.
func NewPlane(min, max float64, view core.Rect) Plane {
	return Plane{Min: min, Max: max, View: view}
}

func (p Plane) span() float64 {
	return p.Max - p.Min
}

// ToScreenF returns the fractional cell position of a math point.
func (p Plane) ToScreenF(x, y float64) (col, row float64) {
	w := float64(max(p.View.W-1, 1))
	h := float64(max(p.View.H-1, 1))
	col = float64(p.View.X) + (x-p.Min)/p.span()*w
	row = float64(p.View.Y) + (p.Max-y)/p.span()*h
	return col, row
}

// ToScreen returns the cell nearest to a math point. Points far off the
// plane land one cell outside the view, so huge values never overflow.
func (p Plane) ToScreen(x, y float64) (col, row int) {
	c, r := p.ToScreenF(x, y)
	c = core.ClampF(c, float64(p.View.X-1), float64(p.View.Right()))
	r = core.ClampF(r, float64(p.View.Y-1), float64(p.View.Bottom()))
	return int(math.Round(c)), int(math.Round(r))
}

// FromScreen converts a cell to the nearest integer math point.
// ok is false when the cell lies outside the view.
func (p Plane) FromScreen(col, row int) (x, y float64, ok bool) {
	if !p.View.Contains(col, row) {
		return 0, 0, false
	}
	w := float64(max(p.View.W-1, 1))
	h := float64(max(p.View.H-1, 1))
	x = p.Min + float64(col-p.View.X)/w*p.span()
	y = p.Max - float64(row-p.View.Y)/h*p.span()
	x = core.ClampF(math.Round(x), p.Min, p.Max)
	y = core.ClampF(math.Round(y), p.Min, p.Max)
	return x, y, true
}

// Contains reports whether a math point lies on the plane.
func (p Plane) Contains(x, y float64) bool {
	return x >= p.Min && x <= p.Max && y >= p.Min && y <= p.Max
}

// tickStep picks a label step from 1, 2, 5, 10... so that labels are at
// least minCells apart along an axis of the given length.
func (p Plane) tickStep(cells, minCells int) float64 {
	if cells <= 1 {
		return p.span()
	}
	perUnit := float64(cells-1) / p.span()
	for _, step := range []float64{1, 2, 5, 10, 20, 50, 100} {
		if step*perUnit >= float64(minCells) {
			return step
		}
	}
	return p.span()
}
