// balloons-desktop runs Balloon Math in a desktop window.
//
// Usage:
//
//	balloons-desktop [level] [flags]
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/balloon-math/internal/config"
	"github.com/vovakirdan/balloon-math/internal/core"
	"github.com/vovakirdan/balloon-math/internal/level"
	_ "github.com/vovakirdan/balloon-math/internal/level/builtin"
	"github.com/vovakirdan/balloon-math/internal/platform/desktop"
	"github.com/vovakirdan/balloon-math/internal/platform/tui"
	"github.com/vovakirdan/balloon-math/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagSpeed      int
	flagLevelsDir  string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "balloons-desktop",
})

var rootCmd = &cobra.Command{
	Use:          "balloons-desktop [level]",
	Short:        "Balloon Math in a desktop window",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagDBPath, "db", "~/.balloons/scores.db", "Path to scores database")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom balloons config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.Flags().IntVar(&flagSpeed, "speed", 0, "Initial rocket speed (0 = config default)")
	rootCmd.Flags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory to import custom levels from and export them to")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func run(_ *cobra.Command, args []string) error {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		logger.Warn("unknown difficulty, using normal", "difficulty", flagDifficulty)
		preset = config.DifficultyNormal
	}
	cfg, err := config.LoadBalloons(flagConfig)
	if err != nil {
		logger.Warn("using default config", "error", err)
		cfg = config.DefaultBalloonsConfig()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	session := tui.NewSession(store, cfg, preset, core.RuntimeConfig{
		ScreenW:  desktop.ScreenWidth,
		ScreenH:  desktop.ScreenHeight,
		TickRate: flagFPS,
		Seed:     flagSeed,
	})
	session.LevelsDir = flagLevelsDir
	if flagSpeed > 0 {
		session.SetSpeed(flagSpeed)
	}
	if flagLevelsDir != "" {
		n, err := level.NewLoader(flagLevelsDir).WithPlane(cfg.Plane.Min, cfg.Plane.Max).LoadInto(session.Library)
		if err != nil {
			logger.Warn("skipped level files", "dir", flagLevelsDir, "error", err)
		}
		logger.Info("imported levels", "count", n, "dir", flagLevelsDir)
	}

	start := ""
	if len(args) == 1 {
		start = args[0]
	}
	return desktop.Run(session, start)
}
