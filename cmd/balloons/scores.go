package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/balloon-math/internal/platform/tui"
	"github.com/vovakirdan/balloon-math/internal/registry"
	"github.com/vovakirdan/balloon-math/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show high scores",
	Long: `Display the top 10 scores for a level, or a summary of every level
that has been cleared when no level is given.

Scores for custom levels are stored under "custom:<name>".

Examples:
  balloons scores
  balloons scores warmup
  balloons scores "custom:My Level"
  balloons scores -i`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in the interactive scoreboard")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	levelID := ""
	if len(args) == 1 {
		levelID = args[0]
	}

	if flagInteractive {
		width, height := terminalSize()
		return tui.RunScoreboard(store, levelID, width, height)
	}
	if levelID == "" {
		return printSummary(store)
	}
	return printLevelScores(store, levelID)
}

func levelTitle(id string) string {
	if title, ok := registry.Title(id); ok {
		return title
	}
	return id
}

func printLevelScores(store *storage.Store, levelID string) error {
	scores, err := store.TopScores(levelID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", levelTitle(levelID))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'balloons play %s' to set the first high score!\n", levelID)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-7s  %s\n", "Rank", "Score", "Rockets", "Date")
	fmt.Printf("  %-4s  %-6s  %-7s  %s\n", "----", "-----", "-------", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-6d  %-7d  %s\n", i+1, entry.Score, entry.Rockets, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.LevelStats(levelID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  |  Cleared: %d times  |  Fewest rockets: %d  |  Rockets fired: %d\n",
			stats.HighScore, stats.Completions, stats.BestRockets, stats.Shots)
	}
	return nil
}

func printSummary(store *storage.Store) error {
	all, err := store.AllLevelStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	if len(all) == 0 {
		fmt.Println("No levels cleared yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-24s  %-6s  %-7s  %-7s  %s\n", "Level", "Best", "Cleared", "Rockets", "Last played")
	fmt.Printf("  %-24s  %-6s  %-7s  %-7s  %s\n", "-----", "----", "-------", "-------", "-----------")
	var total int64
	for _, id := range ids {
		s := all[id]
		total += s.TotalScore
		fmt.Printf("  %-24s  %-6d  %-7d  %-7d  %s\n",
			levelTitle(id), s.HighScore, s.Completions, s.BestRockets, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	fmt.Println()
	fmt.Printf("Total score: %d\n", total)
	return nil
}
