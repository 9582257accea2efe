package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "balloons.yaml"

// Source names where a configuration came from.
type Source string

// SourceEmbedded and SourceBuiltin are reported when no file was used.
const (
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// LoadBalloons loads the game configuration. With customPath set only that
// file is read and failures are returned along with the defaults. Otherwise
// the first readable of ~/.balloons/configs/balloons.yaml and
// ./configs/balloons.yaml wins, falling back to the embedded default.
func LoadBalloons(customPath string) (BalloonsConfig, error) {
	cfg, _, err := LoadBalloonsSource(customPath)
	return cfg, err
}

// LoadBalloonsSource is LoadBalloons that also reports which source was used.
// Keys missing from a file keep their default values.
func LoadBalloonsSource(customPath string) (BalloonsConfig, Source, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultBalloonsConfig(), SourceBuiltin, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return DefaultBalloonsConfig(), SourceBuiltin, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, Source(customPath), nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(data); err == nil {
			return cfg, Source(path), nil
		}
	}

	if cfg, err := decode(defaultBalloonsYAML); err == nil {
		return cfg, SourceEmbedded, nil
	}
	return DefaultBalloonsConfig(), SourceBuiltin, nil
}

// decode overlays YAML onto the defaults and sanitizes the result.
func decode(data []byte) (BalloonsConfig, error) {
	cfg := DefaultBalloonsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BalloonsConfig{}, err
	}
	return Sanitize(cfg), nil
}

func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".balloons", "configs", configFile))
	}
	return append(paths, filepath.Join("configs", configFile))
}

// Sanitize replaces out-of-range values with their defaults.
func Sanitize(cfg BalloonsConfig) BalloonsConfig {
	def := DefaultBalloonsConfig()

	if cfg.Plane.Max <= cfg.Plane.Min {
		cfg.Plane = def.Plane
	}
	if cfg.Rocket.MinSpeed < 1 {
		cfg.Rocket.MinSpeed = def.Rocket.MinSpeed
	}
	if cfg.Rocket.MaxSpeed < cfg.Rocket.MinSpeed {
		cfg.Rocket.MaxSpeed = cfg.Rocket.MinSpeed
	}
	if cfg.Rocket.DefaultSpeed < cfg.Rocket.MinSpeed || cfg.Rocket.DefaultSpeed > cfg.Rocket.MaxSpeed {
		cfg.Rocket.DefaultSpeed = min(max(def.Rocket.DefaultSpeed, cfg.Rocket.MinSpeed), cfg.Rocket.MaxSpeed)
	}
	if cfg.Rocket.UnitsPerSpeed <= 0 {
		cfg.Rocket.UnitsPerSpeed = def.Rocket.UnitsPerSpeed
	}
	if cfg.Rocket.HitRadius <= 0 {
		cfg.Rocket.HitRadius = def.Rocket.HitRadius
	}
	if cfg.Level.RandomCount < 1 {
		cfg.Level.RandomCount = def.Level.RandomCount
	}
	cfg.Level.UpgradeMix = clampF(cfg.Level.UpgradeMix, 0, 1)
	if cfg.Scoring.Floor < 0 {
		cfg.Scoring.Floor = 0
	}
	if cfg.Scoring.Base < cfg.Scoring.Floor {
		cfg.Scoring.Base = cfg.Scoring.Floor
	}
	cfg.Difficulty.InitialLevel = clampF(cfg.Difficulty.InitialLevel, 0, 1)
	return cfg
}

// ApplyBalloonsPreset modifies the config based on a difficulty preset.
func ApplyBalloonsPreset(cfg *BalloonsConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Rocket.HitRadius = 1.0
		cfg.Level.RandomCount = 6
		cfg.Level.UpgradeMix = 0.1
	case DifficultyHard:
		cfg.Rocket.HitRadius = 0.5
		cfg.Level.RandomCount = 14
		cfg.Level.UpgradeMix = 0.5
	}
}
