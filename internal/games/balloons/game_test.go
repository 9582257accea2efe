package balloons

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/balloon-math/internal/config"
	"github.com/vovakirdan/balloon-math/internal/core"
	"github.com/vovakirdan/balloon-math/internal/formula"
	"github.com/vovakirdan/balloon-math/internal/level"
)

func newTestGame(balloons ...level.Balloon) *Game {
	return New(config.DefaultBalloonsConfig(), level.Level{ID: "test", Name: "Test", Balloons: balloons})
}

// fly steps the game until the rocket lands and returns the tick count.
func fly(t *testing.T, g *Game) int {
	t.Helper()
	n := 0
	for g.State().Flying {
		g.Step(core.NewInputFrame())
		n++
		if n > 100000 {
			t.Fatal("rocket never landed")
		}
	}
	return n
}

func TestShootEmptyFormula(t *testing.T) {
	g := newTestGame(level.Balloon{X: 1, Y: 1})

	err := g.Shoot("   ")
	if !errors.Is(err, formula.ErrEmpty) {
		t.Fatalf("Shoot() error = %v, expected ErrEmpty", err)
	}
	st := g.State()
	if st.Flying || st.RocketsUsed != 0 {
		t.Errorf("empty formula should not launch or count: %+v", st)
	}
}

func TestShootInvalidFormula(t *testing.T) {
	g := newTestGame(level.Balloon{X: 1, Y: 1})

	err := g.Shoot("2*")
	if !errors.Is(err, formula.ErrInvalid) {
		t.Fatalf("Shoot() error = %v, expected ErrInvalid", err)
	}
	if st := g.State(); st.Flying || st.RocketsUsed != 0 {
		t.Errorf("invalid formula should not launch or count: %+v", st)
	}
}

func TestShootWhileFlying(t *testing.T) {
	g := newTestGame(level.Balloon{X: 0, Y: 5})

	if err := g.Shoot("0"); err != nil {
		t.Fatalf("Shoot() failed: %v", err)
	}
	if !g.State().Flying {
		t.Fatal("rocket should be flying")
	}
	if err := g.Shoot("1"); !errors.Is(err, ErrBusy) {
		t.Errorf("second Shoot() error = %v, expected ErrBusy", err)
	}
	if got := g.State().RocketsUsed; got != 1 {
		t.Errorf("RocketsUsed = %d, expected 1", got)
	}
	if g.Formula() != "0" {
		t.Errorf("Formula() = %q", g.Formula())
	}
}

func TestFlightCrossesPlane(t *testing.T) {
	g := newTestGame(level.Balloon{X: 0, Y: 5})
	g.Shoot("0")

	if x := g.Rocket().Pos.X; x != -10 {
		t.Errorf("rocket starts at x=%v, expected -10", x)
	}

	ticks := fly(t, g)
	// 20 units at 5 * 20/1200 units per tick
	if ticks < 235 || ticks > 245 {
		t.Errorf("flight took %d ticks, expected about 240", ticks)
	}
	if g.State().Balloons != 1 {
		t.Error("balloon off the track should survive")
	}
	track := g.Track()
	if len(track) != 1 {
		t.Fatalf("track has %d segments, expected 1", len(track))
	}
	last := track[0][len(track[0])-1]
	if last.X > 10 {
		t.Errorf("track runs past the plane: %v", last)
	}
}

func TestBalloonHitOncePerFlight(t *testing.T) {
	g := newTestGame(level.Balloon{X: 0, Y: 0, Tier: level.TierBlue})

	g.Shoot("0")
	fly(t, g)
	if b := g.Balloons(); len(b) != 1 || b[0].Tier != level.TierGreen {
		t.Fatalf("after one flight balloons = %+v, expected one green", b)
	}

	g.Shoot("0")
	fly(t, g)
	if b := g.Balloons(); len(b) != 1 || b[0].Tier != level.TierRed {
		t.Fatalf("after two flights balloons = %+v, expected one red", b)
	}

	g.Shoot("0")
	fly(t, g)
	st := g.State()
	if !st.Won || st.Balloons != 0 {
		t.Fatalf("third flight should pop the last balloon: %+v", st)
	}
	if st.LevelScore != 80 || st.Score != 80 {
		t.Errorf("score = %d/%d, expected 80 for three rockets", st.LevelScore, st.Score)
	}
}

func TestWinStopsFlightAndBlocksShots(t *testing.T) {
	g := newTestGame(
		level.Balloon{X: -5, Y: 0},
		level.Balloon{X: 5, Y: 2},
	)
	g.Shoot("x/5 + 1")
	ticks := fly(t, g)

	st := g.State()
	if !st.Won {
		t.Fatalf("level should be won: %+v", st)
	}
	if st.LevelScore != 100 || st.Score != 100 {
		t.Errorf("one-shot win score = %d/%d, expected 100", st.LevelScore, st.Score)
	}
	if ticks > 200 {
		t.Errorf("flight should stop at the last pop, took %d ticks", ticks)
	}
	if err := g.Shoot("0"); !errors.Is(err, ErrLevelWon) {
		t.Errorf("Shoot() after win error = %v, expected ErrLevelWon", err)
	}
}

func TestReplayKeepsSessionScore(t *testing.T) {
	g := newTestGame(level.Balloon{X: 3, Y: 3})
	g.Shoot("x")
	fly(t, g)
	if !g.State().Won {
		t.Fatal("y = x should clear the level")
	}

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Step(in)

	st := g.State()
	if st.Won || st.Balloons != 1 || st.RocketsUsed != 0 {
		t.Errorf("replay should restore the level: %+v", st)
	}
	if st.Score != 100 {
		t.Errorf("replay should keep the session score, got %d", st.Score)
	}
	if len(g.Track()) != 0 {
		t.Error("replay should clear the track")
	}

	g.Shoot("x")
	fly(t, g)
	if got := g.State().Score; got != 200 {
		t.Errorf("session score = %d, expected 200", got)
	}
}

func TestRestartIgnoredBeforeWin(t *testing.T) {
	g := newTestGame(level.Balloon{X: 3, Y: 3}, level.Balloon{X: 3, Y: -3})
	g.Shoot("x")
	fly(t, g)

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Step(in)

	if got := g.State().RocketsUsed; got != 1 {
		t.Errorf("restart before win should be ignored, rockets = %d", got)
	}
}

func TestUndefinedPointsCannotHit(t *testing.T) {
	// Defined only for |x| >= 5
	g := newTestGame(
		level.Balloon{X: 0, Y: 0},
		level.Balloon{X: 7, Y: 0},
	)
	g.Shoot("0*sqrt(x*x - 25)")
	fly(t, g)

	b := g.Balloons()
	if len(b) != 1 || b[0].X != 0 {
		t.Fatalf("balloons = %+v, expected only the one at the gap", b)
	}
	if got := len(g.Track()); got != 2 {
		t.Errorf("track has %d segments, expected 2 around the gap", got)
	}
}

func TestRocketInvisibleWhereUndefined(t *testing.T) {
	g := newTestGame(level.Balloon{X: 9, Y: 9})
	g.Shoot("sqrt(x)")

	if g.Rocket().Visible {
		t.Error("rocket should be hidden at x=-10 for sqrt(x)")
	}
	for g.State().Flying && g.Rocket().Pos.X < 1 {
		g.Step(core.NewInputFrame())
	}
	if !g.Rocket().Visible {
		t.Error("rocket should be visible once sqrt(x) is defined")
	}
}

func TestEvalErrorMidFlight(t *testing.T) {
	g := newTestGame(level.Balloon{X: 5, Y: 5})

	if err := g.Shoot("x > 0 ? 'a' : 1"); err != nil {
		t.Fatalf("Shoot() failed: %v", err)
	}
	fly(t, g)

	st := g.State()
	if st.Flying {
		t.Error("rocket should stop when the formula stops yielding numbers")
	}
	if !errors.Is(st.Err, formula.ErrInvalid) {
		t.Errorf("State().Err = %v, expected ErrInvalid", st.Err)
	}
	if st.Won || st.RocketsUsed != 1 {
		t.Errorf("state after failed flight = %+v", st)
	}
	if g.Rocket().Pos.X > 0.5 {
		t.Errorf("rocket kept flying to x=%v", g.Rocket().Pos.X)
	}
}

func TestSetSpeed(t *testing.T) {
	g := newTestGame(level.Balloon{X: 0, Y: 5})

	tests := []struct {
		in, want int
	}{
		{0, 1},
		{1, 1},
		{7, 7},
		{42, 10},
	}
	for _, tt := range tests {
		g.SetSpeed(tt.in)
		if got := g.Speed(); got != tt.want {
			t.Errorf("SetSpeed(%d) -> %d, expected %d", tt.in, got, tt.want)
		}
	}

	g.SetSpeed(10)
	g.Shoot("0")
	fast := fly(t, g)
	g.SetSpeed(1)
	g.Shoot("0")
	slow := fly(t, g)
	if slow < fast*9 {
		t.Errorf("speed 1 took %d ticks, speed 10 took %d", slow, fast)
	}
}

func TestResetKeepsScoreAndSpeed(t *testing.T) {
	g := newTestGame(level.Balloon{X: 1, Y: 1})
	g.SetSpeed(9)
	g.Shoot("x")
	fly(t, g)

	g.Reset(config.DefaultBalloonsConfig(), level.Level{Name: "Next", Balloons: []level.Balloon{{X: 2, Y: 2}}})
	st := g.State()
	if st.Score != 100 || st.Won || st.RocketsUsed != 0 || st.Balloons != 1 {
		t.Errorf("state after Reset = %+v", st)
	}
	if g.Speed() != 9 {
		t.Errorf("speed after Reset = %d, expected 9", g.Speed())
	}
}

func TestLevelIsNotMutated(t *testing.T) {
	lvl := level.Level{Name: "Keep", Balloons: []level.Balloon{{X: 2, Y: 2, Tier: level.TierGreen}}}
	g := New(config.DefaultBalloonsConfig(), lvl)
	g.Shoot("x")
	fly(t, g)

	if lvl.Balloons[0].Tier != level.TierGreen {
		t.Error("gameplay mutated the caller's level")
	}
	if got := g.Level().Balloons[0].Tier; got != level.TierGreen {
		t.Errorf("Level() tier = %v, expected green", got)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(level.Balloon{X: 4, Y: 5, Tier: level.TierGreen})
	dst := core.NewScreen(80, 24)
	g.Render(dst)

	p := g.PlaneFor(80, 24)
	col, row := p.ToScreen(4, 5)
	cell := dst.GetCell(col, row)
	if cell.Rune != BalloonChar || cell.Color != level.TierGreen.Color() {
		t.Errorf("balloon cell = %+v", cell)
	}
	ox, oy := p.ToScreen(0, 0)
	if got := dst.Get(ox, oy); got != OriginChar {
		t.Errorf("origin = %q, expected %q", got, OriginChar)
	}
	if !strings.Contains(dst.Row(0), "Test") {
		t.Errorf("HUD = %q, expected level name", dst.Row(0))
	}

	g.Shoot("x + 1")
	fly(t, g)
	g.Render(dst)
	if !strings.Contains(dst.String(), "LEVEL COMPLETE") {
		t.Error("won level should show the completion dialog")
	}
}

func TestRenderSteepFallStaysBelowAxis(t *testing.T) {
	g := newTestGame(level.Balloon{X: 9, Y: 9})
	if err := g.Shoot("-exp(x*10)"); err != nil {
		t.Fatalf("Shoot() failed: %v", err)
	}
	fly(t, g)

	dst := core.NewScreen(80, 24)
	g.Render(dst)

	p := g.PlaneFor(80, 24)
	_, oy := p.ToScreen(0, 0)
	for row := p.View.Y; row < oy; row++ {
		for col := p.View.X; col < p.View.Right(); col++ {
			if dst.Get(col, row) == TrackChar {
				t.Fatalf("track drawn above the x axis at (%d, %d)", col, row)
			}
		}
	}
}
