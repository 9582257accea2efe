package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/balloon-math/internal/formula"
	"github.com/vovakirdan/balloon-math/internal/games/balloons"
)

var (
	flagPlotWidth  int
	flagPlotHeight int
)

var plotCmd = &cobra.Command{
	Use:   "plot <formula>",
	Short: "Print the graph of a formula",
	Long: `Print the graph of y = f(x) over the game plane as text, the same way
a rocket track is drawn in game. Handy to check a formula before using it.

Examples:
  balloons plot x
  balloons plot "x^2/4 - 5"
  balloons plot "3sin(x)" --width 100 --height 30`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPlot,
}

func init() {
	plotCmd.Flags().IntVar(&flagPlotWidth, "width", 0, "Plot width in columns (0 = terminal width)")
	plotCmd.Flags().IntVar(&flagPlotHeight, "height", 0, "Plot height in rows (0 = terminal height)")
}

func runPlot(_ *cobra.Command, args []string) error {
	f, err := formula.Compile(strings.Join(args, " "))
	if err != nil {
		return err
	}

	cfg, _, err := loadGameConfig()
	if err != nil {
		return err
	}

	width, height := terminalSize()
	if flagPlotWidth > 0 {
		width = flagPlotWidth
	}
	if flagPlotHeight > 0 {
		height = flagPlotHeight
	} else {
		height = max(height-2, 10)
	}

	screen, err := balloons.Plot(f, cfg.Plane.Min, cfg.Plane.Max, width, height)
	if err != nil {
		return err
	}

	fmt.Printf("y = %s\n", f)
	fmt.Println(screen.String())
	return nil
}
