package config

import "math"

// Bounds that keep a level playable at full difficulty.
const (
	minHitRadius = 0.25
	maxBalloons  = 40
)

// Progress is what a session has achieved so far.
type Progress struct {
	Score int // Session score
	Wins  int // Levels won this session
}

// DifficultyManager scales level parameters with session progress.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a difficulty manager for cfg.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	cfg.InitialLevel = clampF(cfg.InitialLevel, 0, 1)
	return &DifficultyManager{cfg: cfg}
}

// Progressive reports whether difficulty grows during a session.
func (d *DifficultyManager) Progressive() bool {
	if !d.cfg.Enabled {
		return false
	}
	switch d.cfg.Progression.Type {
	case "score", "wins":
		return true
	}
	return false
}

// Level returns the difficulty in [0, 1] for the given progress. It starts
// at the initial level and reaches 1 at progression.max_at.
func (d *DifficultyManager) Level(p Progress) float64 {
	if !d.Progressive() {
		return d.cfg.InitialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}
	var done float64
	if d.cfg.Progression.Type == "wins" {
		done = float64(p.Wins)
	} else {
		done = float64(p.Score)
	}

	t := clampF(done/maxAt, 0, 1)
	return d.cfg.InitialLevel + t*(1-d.cfg.InitialLevel)
}

// HitRadius shrinks base by up to scaling.radius_reduction.
func (d *DifficultyManager) HitRadius(base float64, p Progress) float64 {
	r := base - d.Level(p)*d.cfg.Scaling.RadiusReduction
	return math.Max(r, minHitRadius)
}

// BalloonCount grows the random level by up to scaling.extra_balloons.
func (d *DifficultyManager) BalloonCount(base int, p Progress) int {
	n := base + int(math.Round(d.Level(p)*float64(d.cfg.Scaling.ExtraBalloons)))
	return min(n, maxBalloons)
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
