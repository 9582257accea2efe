package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/balloon-math/internal/level"
	"github.com/vovakirdan/balloon-math/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing the given level, or a random level when none is given.

Type a formula after "y =" and press Enter to launch a rocket. The rocket
starts at the left edge of the plane and follows the graph. Implicit
multiplication works: 2x, 3(x+1), (x-1)(x+1).

Controls:
  Enter          - Launch rocket
  PgUp/PgDn      - Rocket speed
  R              - Play again (after the level is cleared)
  Ctrl+S         - Screenshot
  Esc            - Back to menu
  Ctrl+C         - Quit

Difficulty options:
  easy   - Big hit radius, fewer balloons
  normal - Default settings, grows harder with your score
  hard   - Small hit radius, more upgraded balloons
  fixed  - No progression

Examples:
  balloons play
  balloons play warmup
  balloons play parabola --difficulty hard
  balloons play "My Level" --levels-dir ./levels`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	id := level.RandomID
	if len(args) == 1 {
		id = args[0]
	}

	// Custom levels are only known after --levels-dir is imported.
	if !registry.Exists(id) && flagLevelsDir == "" {
		return fmt.Errorf("unknown level %q, run 'balloons levels' to see available levels", id)
	}
	return runShell(id)
}
