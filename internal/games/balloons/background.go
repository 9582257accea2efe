package balloons

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/balloon-math/internal/core"
	"github.com/vovakirdan/balloon-math/internal/level"
)

// Backdrop population, matching the classic menu screen.
const (
	BackgroundBalloons = 20
	BackgroundRockets  = 3
)

type driftBalloon struct {
	pos   core.Vec
	speed float64
	tier  level.Tier
}

type driftRocket struct {
	pos core.Vec
	vel core.Vec
}

// Background is the animated menu backdrop: balloons drift upward and
// reappear at the bottom, rockets fly straight and wrap around every edge.
type Background struct {
	rng      *rand.Rand
	w, h     float64
	balloons []driftBalloon
	rockets  []driftRocket
}

// NewBackground creates a backdrop for a w x h screen. Equal seeds give
// equal animations.
func NewBackground(seed int64, w, h int) *Background {
	b := &Background{
		rng: rand.New(rand.NewSource(seed)),
		w:   float64(max(w, 1)),
		h:   float64(max(h, 1)),
	}
	for i := 0; i < BackgroundBalloons; i++ {
		b.balloons = append(b.balloons, driftBalloon{
			pos:   core.V(b.rng.Float64()*b.w, b.rng.Float64()*b.h),
			speed: 0.05 + b.rng.Float64()*0.1,
			tier:  level.Tiers[b.rng.Intn(len(level.Tiers))],
		})
	}
	for i := 0; i < BackgroundRockets; i++ {
		angle := b.rng.Float64() * 2 * math.Pi
		speed := 0.3 + b.rng.Float64()*0.3
		b.rockets = append(b.rockets, driftRocket{
			pos: core.V(b.rng.Float64()*b.w, b.rng.Float64()*b.h),
			// Cells are about twice as tall as wide
			vel: core.V(math.Cos(angle)*speed, math.Sin(angle)*speed/2),
		})
	}
	return b
}

// Resize adapts the backdrop to a new screen size, keeping every entity
// on screen.
func (b *Background) Resize(w, h int) {
	nw, nh := float64(max(w, 1)), float64(max(h, 1))
	sx, sy := nw/b.w, nh/b.h
	for i := range b.balloons {
		p := &b.balloons[i].pos
		p.X = core.ClampF(p.X*sx, 0, math.Nextafter(nw, 0))
		p.Y = core.ClampF(p.Y*sy, 0, math.Nextafter(nh, 0))
	}
	for i := range b.rockets {
		p := &b.rockets[i].pos
		p.X = core.ClampF(p.X*sx, 0, math.Nextafter(nw, 0))
		p.Y = core.ClampF(p.Y*sy, 0, math.Nextafter(nh, 0))
	}
	b.w, b.h = nw, nh
}

// Step advances the animation by one tick.
func (b *Background) Step() {
	for i := range b.balloons {
		bl := &b.balloons[i]
		bl.pos.Y -= bl.speed
		if bl.pos.Y < 0 {
			bl.pos.Y += b.h
			bl.pos.X = b.rng.Float64() * b.w
		}
	}
	for i := range b.rockets {
		r := &b.rockets[i]
		r.pos = r.pos.Add(r.vel)
		r.pos.X = core.Wrap(r.pos.X, 0, b.w)
		r.pos.Y = core.Wrap(r.pos.Y, 0, b.h)
	}
}

// Positions returns the balloon and rocket positions in screen cells.
func (b *Background) Positions() (balloons, rockets []core.Vec) {
	for _, bl := range b.balloons {
		balloons = append(balloons, bl.pos)
	}
	for _, r := range b.rockets {
		rockets = append(rockets, r.pos)
	}
	return balloons, rockets
}

// Render draws the backdrop onto dst without clearing it first.
func (b *Background) Render(dst *core.Screen) {
	for _, bl := range b.balloons {
		dst.SetColored(int(bl.pos.X), int(bl.pos.Y), BalloonChar, bl.tier.Color())
	}
	for _, r := range b.rockets {
		dst.SetColored(int(r.pos.X), int(r.pos.Y), rocketGlyph(r.vel), RocketColor)
	}
}

// rocketGlyph picks an arrow pointing along the velocity.
func rocketGlyph(v core.Vec) rune {
	angle := math.Atan2(-v.Y, v.X) // Screen y grows downward
	arrows := []rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}
	idx := int(math.Round(angle/(math.Pi/4))) % 8
	if idx < 0 {
		idx += 8
	}
	return arrows[idx]
}
