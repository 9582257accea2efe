package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/balloon-math/internal/config"
	"github.com/vovakirdan/balloon-math/internal/registry"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long: `Shows the built-in levels and, with --levels-dir, the custom levels
found in that directory.`,
	Aliases: []string{"list"},
	Run:     runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	levels := registry.List()

	fmt.Println("Available levels:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, l := range levels {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, l := range levels {
		fmt.Printf("  %-*s  %s\n", maxIDLen, l.ID, l.Title)
	}

	cfg, _, err := loadGameConfig()
	if err != nil {
		cfg = config.DefaultBalloonsConfig()
	}
	if custom := importLevels(cfg.Plane); len(custom) > 0 {
		fmt.Println()
		fmt.Printf("Custom levels in %s:\n", flagLevelsDir)
		fmt.Println()
		for _, l := range custom {
			fmt.Printf("  %-24s  %d balloons\n", l.Name, len(l.Balloons))
		}
	}

	fmt.Println()
	fmt.Println("Run 'balloons play <id>' to play a level.")
}
