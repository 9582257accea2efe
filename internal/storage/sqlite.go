// Package storage provides SQLite-based persistence for level results:
// scores per level and the history of fired formulas.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single completed level.
type ScoreEntry struct {
	ID        int64
	LevelID   string
	Score     int
	Rockets   int
	CreatedAt time.Time
}

// ShotEntry represents a single fired formula.
type ShotEntry struct {
	ID        int64
	LevelID   string
	Formula   string
	Hits      int
	Popped    int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			rockets INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_level_id ON scores(level_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(level_id, score DESC);

		CREATE TABLE IF NOT EXISTS shots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			formula TEXT NOT NULL,
			hits INTEGER NOT NULL DEFAULT 0,
			popped INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_shots_level_id ON shots(level_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// parseTime converts a DATETIME column; the driver returns either
// time.Time or a string depending on how the value was written.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// SaveScore records a completed level.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(levelID string, score, rockets int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (level_id, score, rockets) VALUES (?, ?, ?)",
		levelID, score, rockets,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for the given level.
// Results are ordered by score descending, then by fewer rockets, then oldest first.
func (s *Store) TopScores(levelID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, score, rockets, created_at
		 FROM scores
		 WHERE level_id = ?
		 ORDER BY score DESC, rockets ASC, id ASC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.LevelID, &e.Score, &e.Rockets, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given level.
// Returns 0 if no scores exist.
func (s *Store) HighScore(levelID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE level_id = ?",
		levelID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores and shots for the given level.
func (s *Store) ClearScores(levelID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE level_id = ?", levelID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM shots WHERE level_id = ?", levelID); err != nil {
		return fmt.Errorf("storage: cannot clear shots: %w", err)
	}
	return nil
}

// SaveShot records a fired formula and how many balloons it hit and popped.
func (s *Store) SaveShot(levelID, formula string, hits, popped int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO shots (level_id, formula, hits, popped) VALUES (?, ?, ?, ?)",
		levelID, formula, hits, popped,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save shot: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentShots retrieves the most recent shots, newest first.
// An empty levelID returns shots for every level.
func (s *Store) RecentShots(levelID string, limit int) ([]ShotEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, level_id, formula, hits, popped, created_at
		 FROM shots
		 ORDER BY id DESC
		 LIMIT ?`
	args := []any{limit}
	if levelID != "" {
		query = `SELECT id, level_id, formula, hits, popped, created_at
		 FROM shots
		 WHERE level_id = ?
		 ORDER BY id DESC
		 LIMIT ?`
		args = []any{levelID, limit}
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query shots: %w", err)
	}
	defer rows.Close()

	var entries []ShotEntry
	for rows.Next() {
		var e ShotEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.LevelID, &e.Formula, &e.Hits, &e.Popped, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// LevelStats contains aggregated statistics for a level.
type LevelStats struct {
	LevelID     string
	Completions int
	HighScore   int
	AvgScore    float64
	BestRockets int // Fewest rockets used to clear the level
	TotalScore  int64
	Shots       int
	LastPlayed  time.Time
}

// LevelStats retrieves aggregated statistics for a specific level.
func (s *Store) LevelStats(levelID string) (*LevelStats, error) {
	stats := &LevelStats{LevelID: levelID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(MIN(rockets), 0), COALESCE(SUM(score), 0)
		 FROM scores WHERE level_id = ?`,
		levelID,
	).Scan(&stats.Completions, &stats.HighScore, &stats.AvgScore, &stats.BestRockets, &stats.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}

	err = s.db.QueryRow("SELECT COUNT(*) FROM shots WHERE level_id = ?", levelID).Scan(&stats.Shots)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count shots: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE level_id = ? ORDER BY id DESC LIMIT 1`,
		levelID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// AllLevelStats retrieves statistics for every level that has been completed.
func (s *Store) AllLevelStats() (map[string]*LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT s.level_id, COUNT(*), MAX(s.score), AVG(s.score), MIN(s.rockets), SUM(s.score), MAX(s.created_at),
		        (SELECT COUNT(*) FROM shots WHERE shots.level_id = s.level_id)
		 FROM scores s
		 GROUP BY s.level_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all level stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*LevelStats)
	for rows.Next() {
		var st LevelStats
		var lastPlayed any
		if err := rows.Scan(&st.LevelID, &st.Completions, &st.HighScore, &st.AvgScore,
			&st.BestRockets, &st.TotalScore, &lastPlayed, &st.Shots); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.LevelID] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
