package config

import (
	_ "embed"
)

//go:embed defaults/balloons.yaml
var defaultBalloonsYAML []byte

// DefaultBalloonsConfig returns the hard-coded default configuration.
func DefaultBalloonsConfig() BalloonsConfig {
	return BalloonsConfig{
		Plane: PlaneConfig{
			Min: -10,
			Max: 10,
		},
		Rocket: RocketConfig{
			DefaultSpeed:  5,
			MinSpeed:      1,
			MaxSpeed:      10,
			UnitsPerSpeed: 20.0 / 1200.0,
			HitRadius:     0.75,
		},
		Level: LevelConfig{
			RandomCount: 10,
			UpgradeMix:  0.3,
		},
		Scoring: ScoringConfig{
			Base:    100,
			Penalty: 10,
			Floor:   10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{
				RadiusReduction: 0.3,
				ExtraBalloons:   6,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBalloonsYAML
}
