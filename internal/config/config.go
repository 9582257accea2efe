// Package config provides YAML-based game configuration loading and
// difficulty management for Balloon Math.
package config

// BalloonsConfig contains all configuration for the game.
type BalloonsConfig struct {
	Plane      PlaneConfig      `yaml:"plane"`
	Rocket     RocketConfig     `yaml:"rocket"`
	Level      LevelConfig      `yaml:"level"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlaneConfig defines the visible math range on both axes.
type PlaneConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// RocketConfig defines rocket flight parameters.
type RocketConfig struct {
	DefaultSpeed  int     `yaml:"default_speed"`
	MinSpeed      int     `yaml:"min_speed"`
	MaxSpeed      int     `yaml:"max_speed"`
	UnitsPerSpeed float64 `yaml:"units_per_speed"` // Math units advanced per tick per speed step
	HitRadius     float64 `yaml:"hit_radius"`      // Math units
}

// LevelConfig defines parameters of the generated default level.
type LevelConfig struct {
	RandomCount int     `yaml:"random_count"`
	UpgradeMix  float64 `yaml:"upgrade_mix"` // Probability of a green or blue balloon
}

// ScoringConfig defines how a finished level is scored.
type ScoringConfig struct {
	Base    int `yaml:"base"`
	Penalty int `yaml:"penalty"` // Subtracted per extra rocket
	Floor   int `yaml:"floor"`
}

// LevelScore returns the score for a level finished with the given rockets.
func (s ScoringConfig) LevelScore(rockets int) int {
	extra := rockets - 1
	if extra < 0 {
		extra = 0
	}
	score := s.Base - extra*s.Penalty
	if score < s.Floor {
		score = s.Floor
	}
	return score
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over the session.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "wins", or "none"
	MaxAt int    `yaml:"max_at"` // Score or wins at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	RadiusReduction float64 `yaml:"radius_reduction"` // Hit radius shrink at max difficulty
	ExtraBalloons   int     `yaml:"extra_balloons"`   // Added to the random level at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the difficulty presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	if s == "" {
		return DifficultyNormal, true
	}
	for _, p := range Presets {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
