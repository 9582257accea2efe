package balloons

import (
	"fmt"
	"math"

	"github.com/vovakirdan/balloon-math/internal/core"
	"github.com/vovakirdan/balloon-math/internal/level"
)

// Editor holds the state of the level creator: a cursor snapped to the
// integer grid, the selected tier and the balloons placed so far.
type Editor struct {
	min, max float64
	id       string
	balloons []level.Balloon
	cursor   core.Vec
	tier     level.Tier
}

// NewEditor creates an empty editor for a plane spanning [min, max].
func NewEditor(min, max float64) *Editor {
	return &Editor{min: min, max: max}
}

// Load replaces the editor contents with an existing level.
func (e *Editor) Load(l level.Level) {
	e.id = l.ID
	e.balloons = l.Clone().Balloons
}

// Clear removes every balloon and resets the cursor.
func (e *Editor) Clear() {
	e.id = ""
	e.balloons = nil
	e.cursor = core.Vec{}
}

// Cursor returns the grid point under the cursor.
func (e *Editor) Cursor() core.Vec {
	return e.cursor
}

// Move shifts the cursor by whole units, staying on the plane.
func (e *Editor) Move(dx, dy int) {
	e.cursor.X = core.ClampF(e.cursor.X+float64(dx), e.min, e.max)
	e.cursor.Y = core.ClampF(e.cursor.Y+float64(dy), e.min, e.max)
}

// SetCursor moves the cursor to the grid point nearest (x, y).
// Returns false and leaves the cursor alone if the point is off the plane.
func (e *Editor) SetCursor(x, y float64) bool {
	x, y = math.Round(x), math.Round(y)
	if x < e.min || x > e.max || y < e.min || y > e.max {
		return false
	}
	e.cursor = core.V(x, y)
	return true
}

// Tier returns the tier used for new balloons.
func (e *Editor) Tier() level.Tier {
	return e.tier
}

// SetTier selects the tier used for new balloons.
func (e *Editor) SetTier(t level.Tier) {
	e.tier = t
}

// CycleTier selects the next tier.
func (e *Editor) CycleTier() {
	e.tier = e.tier.Next()
}

// Toggle removes the balloon under the cursor, or places one of the
// selected tier. Returns true when a balloon was added.
func (e *Editor) Toggle() bool {
	if i := e.indexAtCursor(); i >= 0 {
		e.balloons = append(e.balloons[:i], e.balloons[i+1:]...)
		return false
	}
	e.balloons = append(e.balloons, level.Balloon{X: e.cursor.X, Y: e.cursor.Y, Tier: e.tier})
	return true
}

// ToggleAt moves the cursor to (x, y) and toggles there.
// Points off the plane are ignored; ok reports whether anything happened.
func (e *Editor) ToggleAt(x, y float64) (added, ok bool) {
	if !e.SetCursor(x, y) {
		return false, false
	}
	return e.Toggle(), true
}

// Balloons returns the placed balloons in placement order.
func (e *Editor) Balloons() []level.Balloon {
	out := make([]level.Balloon, len(e.balloons))
	copy(out, e.balloons)
	return out
}

// Level builds a level from the placed balloons.
func (e *Editor) Level(name string) level.Level {
	return level.Level{ID: e.id, Name: name, Balloons: e.Balloons()}
}

// Step applies cursor movement and editing actions.
func (e *Editor) Step(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		e.Move(0, 1)
	case in.Has(core.ActionDown):
		e.Move(0, -1)
	case in.Has(core.ActionLeft):
		e.Move(-1, 0)
	case in.Has(core.ActionRight):
		e.Move(1, 0)
	}
	if in.Has(core.ActionToggle) {
		e.Toggle()
	}
	if in.Has(core.ActionCycle) {
		e.CycleTier()
	}
}

// PlaneFor returns the plane drawn into a screen of the given size,
// leaving the top row for the status line.
func (e *Editor) PlaneFor(w, h int) Plane {
	return NewPlane(e.min, e.max, core.NewRect(0, 1, w, max(h-1, 1)))
}

// Render draws the editor: axes, guide lines through the cursor,
// placed balloons and the cursor coordinate label.
func (e *Editor) Render(dst *core.Screen) {
	dst.Clear()
	p := e.PlaneFor(dst.Width(), dst.Height())

	drawAxes(dst, p)

	col, row := p.ToScreen(e.cursor.X, e.cursor.Y)
	v := p.View
	for x := v.X; x < v.Right(); x++ {
		if x != col {
			dst.SetColored(x, row, GuideHChar, GuideColor)
		}
	}
	for y := v.Y; y < v.Bottom(); y++ {
		if y != row {
			dst.SetColored(col, y, GuideVChar, GuideColor)
		}
	}

	drawBalloons(dst, p, e.balloons)

	if e.indexAtCursor() < 0 {
		dst.SetColored(col, row, CursorChar, e.tier.Color())
	}

	label := fmt.Sprintf("(%g, %g)", e.cursor.X, e.cursor.Y)
	lx := col + 2
	if lx+len(label) > v.Right() {
		lx = col - 1 - len(label)
	}
	ly := row - 1
	if ly < v.Y {
		ly = row + 1
	}
	dst.DrawTextColored(lx, ly, label, core.ColorBrightWhite)

	status := fmt.Sprintf(" Tier: %s  |  Balloons: %d ", e.tier, len(e.balloons))
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)
	dst.DrawTextColored(0, 0, status, e.tier.Color())
}

func (e *Editor) indexAtCursor() int {
	return level.Level{Balloons: e.balloons}.BalloonAt(e.cursor.X, e.cursor.Y)
}
