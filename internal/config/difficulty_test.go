package config

import (
	"math"
	"testing"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestDifficultyLevelByScore(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
	})

	tests := []struct {
		score int
		want  float64
	}{
		{0, 0.2},
		{50, 0.6},
		{100, 1.0},
		{500, 1.0},
	}
	for _, tt := range tests {
		if got := d.Level(Progress{Score: tt.score}); !approx(got, tt.want) {
			t.Errorf("Level(score=%d) = %v, expected %v", tt.score, got, tt.want)
		}
	}
}

func TestDifficultyLevelByWins(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "wins", MaxAt: 4},
	})
	if got := d.Level(Progress{Score: 1000, Wins: 2}); !approx(got, 0.5) {
		t.Errorf("Level() = %v, expected 0.5", got)
	}
}

func TestDifficultyFixed(t *testing.T) {
	tests := []struct {
		name string
		cfg  DifficultyConfig
	}{
		{"disabled", DifficultyConfig{Enabled: false, InitialLevel: 0.3, Progression: ProgressionConfig{Type: "score", MaxAt: 10}}},
		{"none", DifficultyConfig{Enabled: true, InitialLevel: 0.3, Progression: ProgressionConfig{Type: "none"}}},
		{"unknown", DifficultyConfig{Enabled: true, InitialLevel: 0.3, Progression: ProgressionConfig{Type: "time"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDifficultyManager(tt.cfg)
			if d.Progressive() {
				t.Error("Progressive() = true")
			}
			if got := d.Level(Progress{Score: 1000, Wins: 10}); !approx(got, 0.3) {
				t.Errorf("Level() = %v, expected 0.3", got)
			}
		})
	}
}

func TestDifficultyScaling(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{RadiusReduction: 0.4, ExtraBalloons: 6},
	})

	if got := d.HitRadius(1.0, Progress{}); got != 1.0 {
		t.Errorf("HitRadius at start = %v", got)
	}
	if got := d.HitRadius(1.0, Progress{Score: 100}); !approx(got, 0.6) {
		t.Errorf("HitRadius at max = %v, expected 0.6", got)
	}
	if got := d.HitRadius(0.3, Progress{Score: 100}); got != minHitRadius {
		t.Errorf("HitRadius should not drop below %v, got %v", minHitRadius, got)
	}
	if got := d.BalloonCount(10, Progress{Score: 50}); got != 13 {
		t.Errorf("BalloonCount at half = %d, expected 13", got)
	}
	if got := d.BalloonCount(38, Progress{Score: 100}); got != maxBalloons {
		t.Errorf("BalloonCount should cap at %d, got %d", maxBalloons, got)
	}
}
