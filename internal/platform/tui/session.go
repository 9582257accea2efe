package tui

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vovakirdan/balloon-math/internal/config"
	"github.com/vovakirdan/balloon-math/internal/core"
	"github.com/vovakirdan/balloon-math/internal/level"
	"github.com/vovakirdan/balloon-math/internal/registry"
	"github.com/vovakirdan/balloon-math/internal/storage"
)

// LevelChoice identifies a playable level: a registered one or a custom
// level from the session library.
type LevelChoice struct {
	ID     string // Registry ID, or the level name for custom levels
	Title  string
	Custom bool
}

// Session is the state shared by every view of one player's session:
// custom levels, options and the running score. Each SSH connection gets
// its own Session; only the store is shared between them.
type Session struct {
	Store     *storage.Store
	Library   *level.Library
	Runtime   core.RuntimeConfig
	LevelsDir string // Where exported levels are written

	base       config.BalloonsConfig
	cfg        config.BalloonsConfig
	preset     config.DifficultyPreset
	difficulty *config.DifficultyManager
	speed      int
	score      int
	wins       int
	rng        *rand.Rand
}

// NewSession creates a session with the given base configuration.
func NewSession(store *storage.Store, base config.BalloonsConfig, preset config.DifficultyPreset, rt core.RuntimeConfig) *Session {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = 60
	}
	s := &Session{
		Store:   store,
		Library: level.NewLibrary(),
		Runtime: rt,
		base:    config.Sanitize(base),
		rng:     rand.New(rand.NewSource(rt.Seed)),
	}
	s.SetPreset(preset)
	s.speed = s.cfg.Rocket.DefaultSpeed
	return s
}

// SetPreset applies a difficulty preset on top of the base configuration.
func (s *Session) SetPreset(p config.DifficultyPreset) {
	if p == "" {
		p = config.DifficultyNormal
	}
	cfg := s.base
	config.ApplyBalloonsPreset(&cfg, p)
	s.cfg = cfg
	s.preset = p
	s.difficulty = config.NewDifficultyManager(cfg.Difficulty)
}

// Preset returns the active difficulty preset.
func (s *Session) Preset() config.DifficultyPreset {
	return s.preset
}

// Config returns the configuration with the preset applied.
func (s *Session) Config() config.BalloonsConfig {
	return s.cfg
}

// SetSpeed sets the rocket speed, clamped to the configured range.
func (s *Session) SetSpeed(n int) {
	s.speed = core.Clamp(n, s.cfg.Rocket.MinSpeed, s.cfg.Rocket.MaxSpeed)
}

// Speed returns the rocket speed chosen in the options.
func (s *Session) Speed() int {
	return s.speed
}

// Score returns the session score.
func (s *Session) Score() int {
	return s.score
}

// Progress returns the session score and levels won so far.
func (s *Session) Progress() config.Progress {
	return config.Progress{Score: s.score, Wins: s.wins}
}

// LevelConfig returns the configuration for the next level, with the hit
// radius scaled by the current difficulty.
func (s *Session) LevelConfig() config.BalloonsConfig {
	cfg := s.cfg
	cfg.Rocket.HitRadius = s.difficulty.HitRadius(cfg.Rocket.HitRadius, s.Progress())
	return cfg
}

// Levels lists registered levels followed by the session's custom levels.
func (s *Session) Levels() []LevelChoice {
	var out []LevelChoice
	for _, info := range registry.List() {
		out = append(out, LevelChoice{ID: info.ID, Title: info.Title})
	}
	for _, name := range s.Library.Names() {
		out = append(out, LevelChoice{ID: name, Title: name, Custom: true})
	}
	return out
}

// BuildLevel creates a fresh level for a choice. The random level follows
// the configured size, growing with session progress.
func (s *Session) BuildLevel(c LevelChoice) (level.Level, error) {
	if c.Custom {
		return s.Library.Get(c.ID)
	}
	if c.ID == level.RandomID {
		count := s.difficulty.BalloonCount(s.cfg.Level.RandomCount, s.Progress())
		lvl := level.Random(s.rng, count, s.cfg.Plane.Min, s.cfg.Plane.Max, s.cfg.Level.UpgradeMix)
		if title, ok := registry.Title(level.RandomID); ok {
			lvl.Name = title
		}
		return lvl, nil
	}
	return registry.Create(c.ID, s.rng.Int63())
}

// LevelKey returns the identifier scores for a choice are stored under.
func (s *Session) LevelKey(c LevelChoice) string {
	if !c.Custom {
		return c.ID
	}
	if lvl, err := s.Library.Get(c.ID); err == nil {
		return lvl.Key()
	}
	return level.Level{Name: c.ID}.Key()
}

// FindLevel returns the choice with the given registry ID or custom name.
func (s *Session) FindLevel(id string) (LevelChoice, bool) {
	for _, c := range s.Levels() {
		if c.ID == id {
			return c, true
		}
	}
	return LevelChoice{}, false
}

// SaveLevel validates a custom level against the plane and stores it in
// the library.
func (s *Session) SaveLevel(lvl level.Level, overwrite bool) error {
	if err := lvl.Validate(s.cfg.Plane.Min, s.cfg.Plane.Max); err != nil {
		return err
	}
	return s.Library.Save(lvl, overwrite)
}

// ImportLevels stores levels loaded from disk, replacing same-named ones.
// Levels that do not fit the plane are skipped and reported in the error.
func (s *Session) ImportLevels(levels []level.Level) (int, error) {
	var (
		n    int
		errs []error
	)
	for _, l := range levels {
		if err := s.SaveLevel(l, true); err != nil {
			errs = append(errs, fmt.Errorf("level %q: %w", l.Name, err))
			continue
		}
		n++
	}
	return n, errors.Join(errs...)
}

// ExportLevel writes a level as YAML to the export directory and returns
// the file path. The library is not touched.
func (s *Session) ExportLevel(lvl level.Level) (string, error) {
	path, err := s.ExportPath(lvl.Name)
	if err != nil {
		return "", err
	}
	if err := level.Export(lvl, path); err != nil {
		return "", err
	}
	return path, nil
}

// RecordShot stores a landed rocket in the shot history.
func (s *Session) RecordShot(levelKey, src string, hits, pops int) {
	if s.Store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	s.Store.SaveShot(levelKey, src, hits, pops)
}

// RecordWin stores the score of a won level and carries the session score
// over to the next level.
func (s *Session) RecordWin(levelKey string, st core.GameState) {
	s.score = st.Score
	s.wins++
	if s.Store == nil || st.LevelScore <= 0 {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	s.Store.SaveScore(levelKey, st.LevelScore, st.RocketsUsed)
}

// ExportPath returns where a level with the given name is exported.
func (s *Session) ExportPath(name string) (string, error) {
	dir := s.LevelsDir
	if dir == "" {
		dir = "~/.balloons/levels"
	}
	if strings.HasPrefix(dir, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot expand home directory: %w", err)
		}
		dir = filepath.Join(home, dir[1:])
	}
	return filepath.Join(dir, slug(name)+".yaml"), nil
}

// slug turns a level name into a file name.
func slug(name string) string {
	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			dash = false
		case !dash && sb.Len() > 0:
			sb.WriteRune('-')
			dash = true
		}
	}
	out := strings.TrimSuffix(sb.String(), "-")
	if out == "" {
		return "level"
	}
	return out
}
