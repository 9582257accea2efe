package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/balloon-math/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the game with the level menu",
	Long: `Start Balloon Math in interactive menu mode.

The menu lets you pick a level, change the rocket speed and difficulty,
create your own levels and browse high scores. Custom levels live for the
current session; export them with Ctrl+E in the level creator.

Controls:
  Up/Down        - Navigate buttons
  Left/Right     - Change level
  Enter/Space    - Select
  E              - Edit the selected custom level
  Tab            - High scores
  Q              - Quit

Examples:
  balloons menu
  balloons menu --difficulty hard --speed 8
  balloons menu --levels-dir ./levels`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	return runShell("")
}

// runShell runs the terminal shell, optionally starting in a level.
func runShell(startLevel string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	session, err := newSession(store)
	if err != nil {
		return err
	}
	return tui.Run(session, startLevel)
}
