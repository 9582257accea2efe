package balloons

import (
	"math"
	"strconv"

	"github.com/vovakirdan/balloon-math/internal/core"
	"github.com/vovakirdan/balloon-math/internal/level"
)

// Visual characters for rendering
const (
	AxisHChar   = '─'
	AxisVChar   = '│'
	OriginChar  = '┼'
	TickXChar   = '┴'
	TickYChar   = '├'
	TrackChar   = '•'
	RocketChar  = '▶'
	BalloonChar = '●'
	GuideHChar  = '┄'
	GuideVChar  = '┆'
	CursorChar  = '◎'
)

// Colors for plane elements
const (
	AxisColor   = core.ColorGray
	LabelColor  = core.ColorWhite
	TrackColor  = core.ColorBrightYellow
	RocketColor = core.ColorOrange
	GuideColor  = core.ColorGray
)

// drawAxes draws both axes with integer tick labels.
func drawAxes(dst *core.Screen, p Plane) {
	v := p.View
	ox, oy := p.ToScreen(0, 0)
	axisX := p.Contains(0, p.Min) // x = 0 is visible
	axisY := p.Contains(p.Min, 0)

	if axisY {
		dst.DrawHLine(v.X, oy, v.W, AxisHChar, AxisColor)
	}
	if axisX {
		dst.DrawVLine(ox, v.Y, v.H, AxisVChar, AxisColor)
	}
	if axisX && axisY {
		dst.SetColored(ox, oy, OriginChar, AxisColor)
	}

	xStep := p.tickStep(v.W, 5)
	for x := math.Ceil(p.Min/xStep) * xStep; x <= p.Max; x += xStep {
		if x == 0 {
			continue
		}
		col, row := p.ToScreen(x, 0)
		dst.SetColored(col, row, TickXChar, AxisColor)
		label := strconv.Itoa(int(x))
		lx := col - len(label)/2
		ly := row + 1
		if ly >= v.Bottom() {
			ly = row - 1
		}
		lx = core.Clamp(lx, v.X, v.Right()-len(label))
		dst.DrawTextColored(lx, ly, label, LabelColor)
	}

	yStep := p.tickStep(v.H, 2)
	for y := math.Ceil(p.Min/yStep) * yStep; y <= p.Max; y += yStep {
		if y == 0 {
			continue
		}
		col, row := p.ToScreen(0, y)
		dst.SetColored(col, row, TickYChar, AxisColor)
		label := strconv.Itoa(int(y))
		lx := col - len(label) - 1
		if lx < v.X {
			lx = col + 2
		}
		dst.DrawTextColored(lx, row, label, LabelColor)
	}
}

// drawBalloons draws balloons colored by tier.
func drawBalloons(dst *core.Screen, p Plane, balloons []level.Balloon) {
	for _, b := range balloons {
		col, row := p.ToScreen(b.X, b.Y)
		dst.SetColored(col, row, BalloonChar, b.Tier.Color())
	}
}

// drawSegments draws each polyline, connecting consecutive points.
func drawSegments(dst *core.Screen, p Plane, segments [][]core.Vec, r rune, c core.Color) {
	for _, seg := range segments {
		for i, pt := range seg {
			if i == 0 {
				col, row := p.ToScreen(pt.X, pt.Y)
				if p.View.Contains(col, row) {
					dst.SetColored(col, row, r, c)
				}
				continue
			}
			drawLine(dst, p, seg[i-1], pt, r, c)
		}
	}
}

// drawLine rasterizes a segment between two math points, clipped to the view.
func drawLine(dst *core.Screen, p Plane, a, b core.Vec, r rune, c core.Color) {
	x0, y0 := p.ToScreen(a.X, a.Y)
	x1, y1 := p.ToScreen(b.X, b.Y)
	v := p.View

	// Both ends on the same side outside the view: nothing to draw.
	if (y0 < v.Y && y1 < v.Y) || (y0 >= v.Bottom() && y1 >= v.Bottom()) ||
		(x0 < v.X && x1 < v.X) || (x0 >= v.Right() && x1 >= v.Right()) {
		return
	}
	// Clamp rows so near-vertical jumps stay bounded.
	y0 = core.Clamp(y0, v.Y-1, v.Bottom())
	y1 = core.Clamp(y1, v.Y-1, v.Bottom())

	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		if v.Contains(x0, y0) {
			dst.SetColored(x0, y0, r, c)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
