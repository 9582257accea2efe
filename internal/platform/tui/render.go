package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/balloon-math/internal/core"
)

// ansiCodes gives the terminal palette entry for each core.Color.
// ColorDefault keeps the terminal's own foreground.
var ansiCodes = [...]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

var cellStyles = func() []lipgloss.Style {
	styles := make([]lipgloss.Style, len(ansiCodes))
	for c, code := range ansiCodes {
		styles[c] = lipgloss.NewStyle()
		if code != "" {
			styles[c] = styles[c].Foreground(lipgloss.Color(code))
		}
	}
	return styles
}()

func cellStyle(c core.Color) lipgloss.Style {
	if int(c) < len(cellStyles) {
		return cellStyles[c]
	}
	return cellStyles[core.ColorDefault]
}

// Shared text styles for lines drawn outside the screen buffer.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// RenderScreen styles a screen buffer for the terminal. Each run of
// same-colored cells on a row is rendered as a single styled span.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	var run []rune
	for y := range rows {
		var sb strings.Builder
		for x := 0; x < s.Width(); {
			c := s.GetCell(x, y).Color
			run = run[:0]
			for ; x < s.Width() && s.GetCell(x, y).Color == c; x++ {
				run = append(run, s.Get(x, y))
			}
			sb.WriteString(cellStyle(c).Render(string(run)))
		}
		rows[y] = sb.String()
	}
	return strings.Join(rows, "\n")
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// fitLine truncates text to width runes.
func fitLine(text string, width int) string {
	r := []rune(text)
	if width <= 0 || len(r) <= width {
		return text
	}
	return string(r[:width])
}
