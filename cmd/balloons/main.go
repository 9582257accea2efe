// balloons is a math arcade game for the terminal: type a formula, launch
// a rocket along its graph and pop every balloon on the plane.
//
// Usage:
//
//	balloons                   - Start menu (same as 'balloons menu')
//	balloons menu              - Start menu with level select, options and creator
//	balloons play [level]      - Play a level directly (default: random)
//	balloons levels            - List available levels
//	balloons plot <formula>    - Print the graph of a formula
//	balloons scores [level]    - Show high scores
//	balloons history [level]   - Show recently fired formulas
//	balloons serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible levels
//	--db <path>            - Set database path (default: ~/.balloons/scores.db)
//	--config <path>        - Use a custom balloons.yaml
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--speed <n>            - Initial rocket speed (1-10)
//	--levels-dir <dir>     - Import levels from and export levels to this directory
//	--verbose              - Log debug messages (before the game screen opens)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Register built-in levels
	_ "github.com/vovakirdan/balloon-math/internal/level/builtin"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagSpeed      int
	flagLevelsDir  string
	flagVerbose    bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "balloons",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "balloons",
	Short: "Balloon Math - pop balloons with formulas",
	Long: `Balloon Math is a terminal game about graphs: type a formula such as
2x+1, a rocket follows y = f(x) across the plane and pops the balloons it
touches. Blue balloons take three hits, green two, red one.

Available commands:
  menu     - Interactive menu (default)
  play     - Play a level directly
  levels   - Show all available levels
  plot     - Print the graph of a formula
  scores   - View high scores
  history  - View recently fired formulas
  serve    - Start SSH server for remote play

Examples:
  balloons
  balloons play warmup
  balloons plot "sin(x)*3"
  balloons scores random
  balloons serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
	RunE: runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.balloons/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom balloons config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().IntVar(&flagSpeed, "speed", 0, "Initial rocket speed (0 = config default)")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory to import custom levels from and export them to")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(plotCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}
