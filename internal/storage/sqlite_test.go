package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct{ score, rockets int }{{100, 1}, {50, 6}, {90, 2}} {
		if _, err := store.SaveScore("warmup", s.score, s.rockets); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	// Different level
	if _, err := store.SaveScore("custom:Mine", 70, 4); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("warmup", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{100, 90, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
	}
	if scores[0].Rockets != 1 || scores[0].LevelID != "warmup" {
		t.Errorf("top entry = %+v", scores[0])
	}

	custom, err := store.TopScores("custom:Mine", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(custom) != 1 {
		t.Errorf("Expected 1 custom score, got %d", len(custom))
	}
}

func TestStoreTopScoresOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	// Equal scores rank by fewer rockets
	store.SaveScore("random", 10, 12)
	store.SaveScore("random", 10, 10)
	for i := 0; i < 5; i++ {
		store.SaveScore("random", 100-i*10, i+1)
	}

	scores, err := store.TopScores("random", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 100 || scores[1].Score != 90 || scores[2].Score != 80 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, _ := store.TopScores("random", 100)
	last := all[len(all)-2:]
	if last[0].Rockets != 10 || last[1].Rockets != 12 {
		t.Errorf("ties should rank by rockets, got %+v", last)
	}

	// Non-positive limit falls back to 10
	if def, _ := store.TopScores("random", 0); len(def) != 7 {
		t.Errorf("default limit returned %d entries", len(def))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("warmup")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for an unplayed level, got %d", high)
	}

	store.SaveScore("warmup", 60, 5)
	store.SaveScore("warmup", 100, 1)
	store.SaveScore("warmup", 80, 3)

	high, err = store.HighScore("warmup")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 100 {
		t.Errorf("Expected high score of 100, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("warmup", 100, 1)
	store.SaveShot("warmup", "x", 1, 1)
	store.SaveScore("parabola", 90, 2)
	store.SaveShot("parabola", "x^2", 3, 3)

	if err := store.ClearScores("warmup"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("warmup", 10); len(scores) != 0 {
		t.Errorf("Expected 0 warmup scores after clear, got %d", len(scores))
	}
	if shots, _ := store.RecentShots("warmup", 10); len(shots) != 0 {
		t.Errorf("Expected 0 warmup shots after clear, got %d", len(shots))
	}
	if scores, _ := store.TopScores("parabola", 10); len(scores) != 1 {
		t.Error("parabola scores should not be affected by clearing warmup")
	}
}

func TestStoreShots(t *testing.T) {
	store := openTestStore(t)

	store.SaveShot("warmup", "2x", 0, 0)
	store.SaveShot("waves", "sin(x)", 2, 1)
	store.SaveShot("warmup", "x", 4, 4)

	shots, err := store.RecentShots("warmup", 10)
	if err != nil {
		t.Fatalf("RecentShots() failed: %v", err)
	}
	if len(shots) != 2 {
		t.Fatalf("Expected 2 warmup shots, got %d", len(shots))
	}
	// Newest first
	if shots[0].Formula != "x" || shots[1].Formula != "2x" {
		t.Errorf("shots = %+v", shots)
	}
	if shots[0].Hits != 4 || shots[0].Popped != 4 {
		t.Errorf("newest shot = %+v", shots[0])
	}

	all, err := store.RecentShots("", 2)
	if err != nil {
		t.Fatalf("RecentShots() failed: %v", err)
	}
	if len(all) != 2 || all[0].Formula != "x" || all[1].Formula != "sin(x)" {
		t.Errorf("recent shots across levels = %+v", all)
	}
}

func TestStoreLevelStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("waves", 100, 1)
	store.SaveScore("waves", 60, 5)
	store.SaveShot("waves", "x", 2, 1)
	store.SaveShot("waves", "-x", 1, 1)
	store.SaveShot("waves", "0", 0, 0)

	stats, err := store.LevelStats("waves")
	if err != nil {
		t.Fatalf("LevelStats() failed: %v", err)
	}
	if stats.Completions != 2 || stats.HighScore != 100 || stats.BestRockets != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 80 || stats.TotalScore != 160 || stats.Shots != 3 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	empty, err := store.LevelStats("never")
	if err != nil {
		t.Fatalf("LevelStats() failed: %v", err)
	}
	if empty.Completions != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("stats for an unplayed level = %+v", empty)
	}
}

func TestStoreAllLevelStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("warmup", 100, 1)
	store.SaveScore("random", 70, 4)
	store.SaveScore("random", 90, 2)
	store.SaveShot("random", "x", 0, 0)

	all, err := store.AllLevelStats()
	if err != nil {
		t.Fatalf("AllLevelStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 levels, got %d", len(all))
	}
	r := all["random"]
	if r == nil || r.Completions != 2 || r.HighScore != 90 || r.BestRockets != 2 || r.Shots != 1 {
		t.Errorf("random stats = %+v", r)
	}
	if w := all["warmup"]; w == nil || w.Shots != 0 {
		t.Errorf("warmup stats = %+v", w)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
