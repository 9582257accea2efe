package balloons

import (
	"strings"
	"testing"

	"github.com/vovakirdan/balloon-math/internal/formula"
)

func TestSampleSplitsAtGaps(t *testing.T) {
	f := formula.MustCompile("sqrt(x*x - 25)")
	segs, err := Sample(f, -10, 10, 200)
	if err != nil {
		t.Fatalf("Sample() failed: %v", err)
	}
	if len(segs) != 2 {
		t.Fatalf("Sample() gave %d segments, expected 2", len(segs))
	}
	for _, seg := range segs {
		for _, p := range seg {
			if p.X > -5 && p.X < 5 {
				t.Errorf("point %v inside the undefined gap", p)
			}
		}
	}
}

func TestPlot(t *testing.T) {
	scr, err := Plot(formula.MustCompile("x"), -10, 10, 41, 21)
	if err != nil {
		t.Fatalf("Plot() failed: %v", err)
	}
	// y = x runs corner to corner
	if got := scr.Get(0, 20); got != TrackChar {
		t.Errorf("bottom-left = %q, expected track", got)
	}
	if got := scr.Get(40, 0); got != TrackChar {
		t.Errorf("top-right = %q, expected track", got)
	}
	if got := scr.Get(20, 10); got != TrackChar {
		t.Errorf("origin = %q, expected track", got)
	}
	if !strings.Contains(scr.String(), "-8") {
		t.Error("axis labels missing")
	}
}
