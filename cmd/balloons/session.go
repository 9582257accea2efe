package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/balloon-math/internal/config"
	"github.com/vovakirdan/balloon-math/internal/core"
	"github.com/vovakirdan/balloon-math/internal/level"
	"github.com/vovakirdan/balloon-math/internal/platform/tui"
	"github.com/vovakirdan/balloon-math/internal/storage"
)

// openStore opens the scores database. Failure is not fatal: the game
// runs without saving results.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// loadGameConfig resolves the configuration and difficulty preset from flags.
func loadGameConfig() (config.BalloonsConfig, config.DifficultyPreset, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return config.BalloonsConfig{}, "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	cfg, src, err := config.LoadBalloonsSource(flagConfig)
	if err != nil {
		logger.Warn("using default config", "error", err)
	} else {
		logger.Debug("config loaded", "source", src)
	}
	return cfg, preset, nil
}

// importLevels reads the --levels-dir directory, if any, keeping only the
// levels that fit the configured plane.
func importLevels(plane config.PlaneConfig) []level.Level {
	if flagLevelsDir == "" {
		return nil
	}
	levels, err := level.NewLoader(flagLevelsDir).WithPlane(plane.Min, plane.Max).LoadAll()
	if err != nil {
		logger.Warn("skipped level files", "dir", flagLevelsDir, "error", err)
	}
	logger.Debug("imported levels", "dir", flagLevelsDir, "count", len(levels))
	return levels
}

// terminalSize returns the size of the controlling terminal.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

// newSession builds a local session from the global flags.
func newSession(store *storage.Store) (*tui.Session, error) {
	cfg, preset, err := loadGameConfig()
	if err != nil {
		return nil, err
	}

	width, height := terminalSize()
	session := tui.NewSession(store, cfg, preset, core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	})
	session.LevelsDir = flagLevelsDir
	if flagSpeed > 0 {
		session.SetSpeed(flagSpeed)
	}

	if _, err := session.ImportLevels(importLevels(cfg.Plane)); err != nil {
		logger.Warn("skipping levels", "error", err)
	}
	return session, nil
}
