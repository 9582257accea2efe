package balloons

import (
	"github.com/vovakirdan/balloon-math/internal/core"
	"github.com/vovakirdan/balloon-math/internal/formula"
)

// Sample evaluates f across [min, max] with the given number of steps and
// returns the defined points as polylines. Undefined values split the curve.
func Sample(f *formula.Formula, min, max float64, steps int) ([][]core.Vec, error) {
	if steps < 1 {
		steps = 1
	}
	var segs [][]core.Vec
	broken := true
	for i := 0; i <= steps; i++ {
		x := min + (max-min)*float64(i)/float64(steps)
		y, err := f.Eval(x)
		if err != nil {
			return nil, err
		}
		p := core.V(x, y)
		if !p.IsFinite() {
			broken = true
			continue
		}
		if broken {
			segs = append(segs, nil)
			broken = false
		}
		segs[len(segs)-1] = append(segs[len(segs)-1], p)
	}
	return segs, nil
}

// Plot draws the graph of f over [min, max] on a w x h screen, the same
// way a rocket track is drawn in game.
func Plot(f *formula.Formula, min, max float64, w, h int) (*core.Screen, error) {
	segs, err := Sample(f, min, max, w*4)
	if err != nil {
		return nil, err
	}
	dst := core.NewScreen(w, h)
	p := NewPlane(min, max, core.NewRect(0, 0, w, h))
	drawAxes(dst, p)
	drawSegments(dst, p, segs, TrackChar, TrackColor)
	return dst, nil
}
