// Package balloons implements the Balloon Math gameplay: a rocket follows
// the player's formula y = f(x) across a Cartesian plane and pops the
// balloons it passes. The package also holds the level editor and the
// animated menu backdrop, all rendered into a core.Screen.
package balloons

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/balloon-math/internal/config"
	"github.com/vovakirdan/balloon-math/internal/core"
	"github.com/vovakirdan/balloon-math/internal/formula"
	"github.com/vovakirdan/balloon-math/internal/level"
)

var (
	// ErrBusy is returned when shooting while a rocket is still flying.
	ErrBusy = errors.New("balloons: rocket already in flight")

	// ErrLevelWon is returned when shooting after the level is cleared.
	ErrLevelWon = errors.New("balloons: level already won")
)

// Rocket is the projectile following the formula.
type Rocket struct {
	Pos     core.Vec
	Visible bool // False where the formula is undefined
	Flying  bool
}

// Game implements the gameplay for a single level.
// The session score survives Reset and Replay.
type Game struct {
	cfg      config.BalloonsConfig
	level    level.Level // Initial layout, never mutated
	balloons []level.Balloon

	formula *formula.Formula
	rocket  Rocket
	track   [][]core.Vec
	broken  bool              // Next defined point starts a new track segment
	hitThis map[core.Vec]bool // Balloons already hit during this flight
	speed   int
	rockets int
	score   int
	lastWin int
	won     bool
	err     error
}

// New creates a game with the given configuration and level.
func New(cfg config.BalloonsConfig, lvl level.Level) *Game {
	g := &Game{speed: cfg.Rocket.DefaultSpeed}
	g.Reset(cfg, lvl)
	return g
}

// Reset loads a level. The session score and rocket speed are kept.
func (g *Game) Reset(cfg config.BalloonsConfig, lvl level.Level) {
	g.cfg = cfg
	g.level = lvl.Clone()
	if g.speed == 0 {
		g.speed = cfg.Rocket.DefaultSpeed
	}
	g.SetSpeed(g.speed)
	g.Replay()
}

// Replay restores the level's balloons and clears rockets and track.
func (g *Game) Replay() {
	g.balloons = g.level.Clone().Balloons
	g.formula = nil
	g.rocket = Rocket{}
	g.track = nil
	g.broken = false
	g.hitThis = nil
	g.rockets = 0
	g.lastWin = 0
	g.won = len(g.balloons) == 0
	g.err = nil
}

// Shoot compiles src and launches a rocket from the left edge of the plane.
// Failed shots do not count as rockets used.
func (g *Game) Shoot(src string) error {
	if g.won {
		return ErrLevelWon
	}
	if g.rocket.Flying {
		return ErrBusy
	}

	f, err := formula.Compile(src)
	if err != nil {
		return err
	}

	g.formula = f
	g.rockets++
	g.err = nil
	g.track = nil
	g.broken = false
	g.hitThis = make(map[core.Vec]bool)
	g.rocket = Rocket{Pos: core.V(g.cfg.Plane.Min, 0), Flying: true}

	g.advanceTo(g.cfg.Plane.Min)
	return nil
}

// Step advances the rocket by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.won {
		g.Replay()
		return core.StepResult{State: g.State()}
	}

	if !g.rocket.Flying {
		return core.StepResult{State: g.State()}
	}

	x := g.rocket.Pos.X + float64(g.speed)*g.cfg.Rocket.UnitsPerSpeed
	if x > g.cfg.Plane.Max {
		g.rocket.Flying = false
		g.rocket.Visible = false
		return core.StepResult{State: g.State(), Ended: true}
	}

	hits, pops := g.advanceTo(x)
	return core.StepResult{
		State: g.State(),
		Hits:  hits,
		Pops:  pops,
		Ended: !g.rocket.Flying,
	}
}

// advanceTo moves the rocket to x, extends the track and resolves hits.
func (g *Game) advanceTo(x float64) (hits, pops int) {
	y, err := g.formula.Eval(x)
	if err != nil {
		g.err = fmt.Errorf("balloons: evaluating at x=%g: %w", x, err)
		g.rocket.Flying = false
		g.rocket.Visible = false
		return 0, 0
	}

	pos := core.V(x, y)
	g.rocket.Pos = pos
	if !pos.IsFinite() {
		g.rocket.Visible = false
		g.broken = true
		return 0, 0
	}

	g.rocket.Visible = true
	if g.broken || len(g.track) == 0 {
		g.track = append(g.track, nil)
		g.broken = false
	}
	last := len(g.track) - 1
	g.track[last] = append(g.track[last], pos)

	hits, pops = g.collide(pos)
	if len(g.balloons) == 0 {
		g.win()
	}
	return hits, pops
}

// collide downgrades every balloon within the hit radius of pos.
// A balloon is hit at most once per flight.
func (g *Game) collide(pos core.Vec) (hits, pops int) {
	kept := g.balloons[:0]
	for _, b := range g.balloons {
		key := b.Pos()
		if !g.hitThis[key] && b.Pos().Dist(pos) <= g.cfg.Rocket.HitRadius {
			g.hitThis[key] = true
			hits++
			next, popped := b.Tier.Downgrade()
			if popped {
				pops++
				continue
			}
			b.Tier = next
		}
		kept = append(kept, b)
	}
	g.balloons = kept
	return hits, pops
}

func (g *Game) win() {
	g.won = true
	g.rocket.Flying = false
	g.lastWin = g.cfg.Scoring.LevelScore(g.rockets)
	g.score += g.lastWin
}

// SetSpeed sets the rocket speed, clamped to the configured range.
func (g *Game) SetSpeed(n int) {
	g.speed = core.Clamp(n, g.cfg.Rocket.MinSpeed, g.cfg.Rocket.MaxSpeed)
}

// Speed returns the current rocket speed.
func (g *Game) Speed() int {
	return g.speed
}

// SetScore restores a session score, used when switching levels.
func (g *Game) SetScore(score int) {
	g.score = score
}

// Level returns the level being played, with its initial balloons.
func (g *Game) Level() level.Level {
	return g.level.Clone()
}

// Balloons returns the balloons still on the plane.
func (g *Game) Balloons() []level.Balloon {
	out := make([]level.Balloon, len(g.balloons))
	copy(out, g.balloons)
	return out
}

// Rocket returns the rocket state.
func (g *Game) Rocket() Rocket {
	return g.rocket
}

// Track returns the trajectory as polylines split where f is undefined.
func (g *Game) Track() [][]core.Vec {
	out := make([][]core.Vec, len(g.track))
	for i, seg := range g.track {
		out[i] = append([]core.Vec(nil), seg...)
	}
	return out
}

// Formula returns the source of the last launched formula.
func (g *Game) Formula() string {
	if g.formula == nil {
		return ""
	}
	return g.formula.String()
}

// Config returns the configuration the level was loaded with.
func (g *Game) Config() config.BalloonsConfig {
	return g.cfg
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:       g.score,
		LevelScore:  g.lastWin,
		RocketsUsed: g.rockets,
		Balloons:    len(g.balloons),
		Flying:      g.rocket.Flying,
		Won:         g.won,
		Err:         g.err,
	}
}

// PlaneFor returns the plane drawn into a screen of the given size,
// leaving the top row for the HUD.
func (g *Game) PlaneFor(w, h int) Plane {
	return NewPlane(g.cfg.Plane.Min, g.cfg.Plane.Max, core.NewRect(0, 1, w, max(h-1, 1)))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	p := g.PlaneFor(dst.Width(), dst.Height())

	drawAxes(dst, p)
	drawSegments(dst, p, g.track, TrackChar, TrackColor)
	drawBalloons(dst, p, g.balloons)

	if g.rocket.Flying && g.rocket.Visible {
		col, row := p.ToScreen(g.rocket.Pos.X, g.rocket.Pos.Y)
		if p.View.Contains(col, row) {
			dst.SetColored(col, row, RocketChar, RocketColor)
		}
	}

	// Draw HUD
	hud := fmt.Sprintf(" %s  |  Rockets: %d  |  Balloons: %d  |  Score: %d  |  Speed: %d ",
		g.level.Name, g.rockets, len(g.balloons), g.score, g.speed)
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)

	if g.won {
		dst.DrawMessageBox(
			"LEVEL COMPLETE",
			"",
			fmt.Sprintf("Rockets used: %d", g.rockets),
			fmt.Sprintf("Level score: %d   Total: %d", g.lastWin, g.score),
			"",
			"[R] Play Again   [Esc] Menu",
		)
	}
}
