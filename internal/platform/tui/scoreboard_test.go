package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/balloon-math/internal/storage"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestScoreboard(t *testing.T, store *storage.Store) ScoreboardModel {
	t.Helper()
	levels := []LevelChoice{
		{ID: "warmup", Title: "Warm Up"},
		{ID: "arch", Title: "Arch"},
	}
	return newScoreboard(store, levels, []string{"warmup", "arch"}, 100, 30)
}

func pressScoreboard(t *testing.T, m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sb
}

func TestScoreboardLoadsScoresAndStats(t *testing.T) {
	store := newTestStore(t)
	for _, s := range []struct{ score, rockets int }{{300, 2}, {500, 1}} {
		if _, err := store.SaveScore("warmup", s.score, s.rockets); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := store.SaveShot("warmup", "2*x", 1, 0); err != nil {
		t.Fatal(err)
	}

	m := newTestScoreboard(t, store)
	if len(m.scores) != 2 || m.scores[0].Score != 500 {
		t.Fatalf("scores = %+v, expected best first", m.scores)
	}
	if m.stats == nil || m.stats.Completions != 2 || m.stats.HighScore != 500 ||
		m.stats.BestRockets != 1 || m.stats.Shots != 1 {
		t.Errorf("stats = %+v", m.stats)
	}

	view := m.View()
	for _, want := range []string{"HIGH SCORES - Warm Up", "Completed 2", "Best 500"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}

func TestScoreboardHistoryToggle(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.SaveShot("warmup", "x^2", 2, 1); err != nil {
		t.Fatal(err)
	}

	m := newTestScoreboard(t, store)
	m = pressScoreboard(t, m, runeKey('h'))
	if !m.history {
		t.Fatal("h should switch to shot history")
	}
	view := m.View()
	if !strings.Contains(view, "SHOT HISTORY") || !strings.Contains(view, "y = x^2") {
		t.Errorf("history view missing title or formula:\n%s", view)
	}

	m = pressScoreboard(t, m, runeKey('h'))
	if m.history {
		t.Error("second h should switch back to scores")
	}
	if !strings.Contains(m.View(), "No scores recorded yet.") {
		t.Error("level without scores should show the empty message")
	}
}

func TestScoreboardLevelCycling(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.SaveScore("arch", 700, 3); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		msgs     []tea.Msg
		expected int
	}{
		{"tab", []tea.Msg{tea.KeyMsg{Type: tea.KeyTab}}, 1},
		{"right wraps", []tea.Msg{tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight}}, 0},
		{"shift+tab wraps back", []tea.Msg{tea.KeyMsg{Type: tea.KeyShiftTab}}, 1},
		{"left", []tea.Msg{tea.KeyMsg{Type: tea.KeyLeft}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestScoreboard(t, store)
			for _, msg := range tt.msgs {
				m = pressScoreboard(t, m, msg)
			}
			if m.levelCursor != tt.expected {
				t.Errorf("levelCursor = %d, expected %d", m.levelCursor, tt.expected)
			}
			wantScores := 0
			if tt.expected == 1 {
				wantScores = 1
			}
			if len(m.scores) != wantScores {
				t.Errorf("loaded %d scores for %s", len(m.scores), m.currentKey())
			}
		})
	}
}

func TestScoreboardSelectLevel(t *testing.T) {
	m := newTestScoreboard(t, newTestStore(t))

	m = m.SelectLevel("arch")
	if m.currentKey() != "arch" {
		t.Errorf("SelectLevel(arch) selected %q", m.currentKey())
	}
	m = m.SelectLevel("missing")
	if m.currentKey() != "arch" {
		t.Errorf("unknown level moved the cursor to %q", m.currentKey())
	}
	if !strings.Contains(m.View(), "HIGH SCORES - Arch") {
		t.Error("title should name the selected level")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := newTestScoreboard(t, nil)
	if m.stats != nil || len(m.scores) != 0 {
		t.Errorf("nil store loaded data: %+v %+v", m.scores, m.stats)
	}
	if !strings.Contains(m.View(), "No scores recorded yet.") {
		t.Error("expected the empty message")
	}

	m = pressScoreboard(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Errorf("esc: back=%v quit=%v", m.IsGoingBack(), m.IsQuitting())
	}
}
