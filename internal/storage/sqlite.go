// Package storage persists the snake high score and game history in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// HighScoreKey is the settings key holding the best score.
const HighScoreKey = "snakeHighScore"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// GameEntry is one finished game from the history.
type GameEntry struct {
	ID       int64
	Score    int
	Length   int
	Speed    float64
	Duration time.Duration
	EndedAt  time.Time
}

// Stats aggregates the game history.
type Stats struct {
	Games        int
	HighScore    int
	AvgScore     float64
	LongestSnake int
	TotalTime    time.Duration
	LastPlayed   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	path, err := ExpandPath(dbPath)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// SSH sessions share one store; serialize writers instead of failing with SQLITE_BUSY
	db.SetMaxOpenConns(1)

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

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(p string) (string, error) {
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		return filepath.Join(home, p[1:]), nil
	}
	return p, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			length INTEGER NOT NULL,
			speed REAL NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_games_score ON games(score DESC);
		CREATE INDEX IF NOT EXISTS idx_games_ended_at ON games(ended_at DESC);
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

// HighScore returns the stored high score. A missing or malformed value reads as 0.
func (s *Store) HighScore() (int, error) {
	var raw string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", HighScoreKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return parseScore(raw), nil
}

// SetHighScore stores score unless a higher one is already stored. The
// compare and the write are one statement, so concurrent sessions can never
// lower the high score.
func (s *Store) SetHighScore(score int) error {
	if score <= 0 {
		return nil
	}

	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value
		 WHERE CAST(settings.value AS INTEGER) < CAST(excluded.value AS INTEGER)`,
		HighScoreKey, strconv.Itoa(score),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// RecordGame appends a finished game to the history.
func (s *Store) RecordGame(r snake.GameRecord) error {
	endedAt := r.EndedAt
	if endedAt.IsZero() {
		endedAt = time.Now()
	}
	_, err := s.db.Exec(
		`INSERT INTO games (score, length, speed, duration_ms, ended_at) VALUES (?, ?, ?, ?, ?)`,
		r.Score, r.Length, r.Speed, r.Duration.Milliseconds(), endedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record game: %w", err)
	}
	return nil
}

// TopGames returns the best games, highest score first. Earlier games win ties.
func (s *Store) TopGames(limit int) ([]GameEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryGames(
		`SELECT id, score, length, speed, duration_ms, ended_at
		 FROM games
		 ORDER BY score DESC, ended_at ASC, id ASC
		 LIMIT ?`,
		limit,
	)
}

// RecentGames returns the latest games, newest first.
func (s *Store) RecentGames(limit int) ([]GameEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryGames(
		`SELECT id, score, length, speed, duration_ms, ended_at
		 FROM games
		 ORDER BY ended_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) queryGames(query string, args ...any) ([]GameEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var entries []GameEntry
	for rows.Next() {
		var (
			e          GameEntry
			durationMs int64
			endedAt    int64
		)
		if err := rows.Scan(&e.ID, &e.Score, &e.Length, &e.Speed, &durationMs, &endedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(durationMs) * time.Millisecond
		e.EndedAt = time.UnixMilli(endedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// Stats aggregates the whole history.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}

	var lastPlayed, totalMs int64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(AVG(score), 0), COALESCE(MAX(length), 0),
		        COALESCE(SUM(duration_ms), 0), COALESCE(MAX(ended_at), 0)
		 FROM games`,
	).Scan(&stats.Games, &stats.AvgScore, &stats.LongestSnake, &totalMs, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.TotalTime = time.Duration(totalMs) * time.Millisecond
	if lastPlayed > 0 {
		stats.LastPlayed = time.UnixMilli(lastPlayed)
	}

	stats.HighScore, err = s.HighScore()
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// Reset forgets the high score and the game history.
func (s *Store) Reset() error {
	if _, err := s.db.Exec("DELETE FROM settings WHERE key = ?", HighScoreKey); err != nil {
		return fmt.Errorf("storage: cannot clear high score: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM games"); err != nil {
		return fmt.Errorf("storage: cannot clear games: %w", err)
	}
	return nil
}

// parseScore reads a stored score, treating garbage and negatives as 0.
func parseScore(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

var _ snake.Store = (*Store)(nil)
