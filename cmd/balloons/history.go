package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/balloon-math/internal/storage"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history [level]",
	Short: "Show recently fired formulas",
	Long: `List the most recent rockets, newest first, with the number of hits
and popped balloons. Without a level, rockets from every level are shown.

Examples:
  balloons history
  balloons history warmup --limit 50`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "Number of rockets to show")
}

func runHistory(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	levelID := ""
	if len(args) == 1 {
		levelID = args[0]
	}

	shots, err := store.RecentShots(levelID, flagHistoryLimit)
	if err != nil {
		return fmt.Errorf("retrieving history: %w", err)
	}
	if len(shots) == 0 {
		fmt.Println("No rockets launched yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-28s  %-4s  %-6s  %s\n", "Level", "Formula", "Hits", "Popped", "Date")
	fmt.Printf("  %-16s  %-28s  %-4s  %-6s  %s\n", "-----", "-------", "----", "------", "----")
	for _, s := range shots {
		fmt.Printf("  %-16s  %-28s  %-4d  %-6d  %s\n",
			levelTitle(s.LevelID), "y = "+s.Formula, s.Hits, s.Popped, s.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
