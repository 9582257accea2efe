package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/balloon-math/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(8, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawTextColored(2, 0, "cd", core.ColorBlue)
	s.DrawText(0, 1, "y = x")

	out := RenderScreen(s)
	if w, h := lipgloss.Width(out), lipgloss.Height(out); w != 8 || h != 2 {
		t.Errorf("rendered size = %dx%d, expected 8x2", w, h)
	}
}

func TestCellStyleFallback(t *testing.T) {
	if got := cellStyle(core.Color(200)).Render("x"); got != cellStyle(core.ColorDefault).Render("x") {
		t.Errorf("unknown color rendered as %q", got)
	}
}

func TestFitLine(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 3, "hel"},
		{"→x←", 2, "→x"},
		{"hello", 0, "hello"},
	}
	for _, tt := range tests {
		if got := fitLine(tt.text, tt.width); got != tt.want {
			t.Errorf("fitLine(%q, %d) = %q, expected %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("wide text should be left as is, got %q", got)
	}
}
