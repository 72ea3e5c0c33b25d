// Package storage provides SQLite-based recording of finished game results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only outcomes are stored; games in progress are never written.
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

// Winner values stored for a finished game.
const (
	WinnerNone    = 0 // Tie
	WinnerPlayer1 = 1
	WinnerPlayer2 = 2
)

// Store manages the SQLite database connection for result records.
type Store struct {
	db *sql.DB
}

// MatchResult represents one finished game.
type MatchResult struct {
	ID        int64
	MatchID   string
	Variant   string
	Height    int
	Width     int
	Player1   string
	Player2   string
	Winner    int // WinnerNone, WinnerPlayer1 or WinnerPlayer2
	Moves     int
	CreatedAt time.Time
}

// WinnerName returns the winning player's name, or "" for a tie.
func (r MatchResult) WinnerName() string {
	switch r.Winner {
	case WinnerPlayer1:
		return r.Player1
	case WinnerPlayer2:
		return r.Player2
	default:
		return ""
	}
}

// Standing is a per-player tally of recorded results.
type Standing struct {
	Player string
	Wins   int
	Losses int
	Ties   int
}

// Played returns the number of recorded games for the player.
func (s Standing) Played() int {
	return s.Wins + s.Losses + s.Ties
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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			variant TEXT NOT NULL,
			height INTEGER NOT NULL,
			width INTEGER NOT NULL,
			player1 TEXT NOT NULL,
			player2 TEXT NOT NULL,
			winner INTEGER NOT NULL DEFAULT 0,
			moves INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_variant ON results(variant);
		CREATE INDEX IF NOT EXISTS idx_results_player1 ON results(player1);
		CREATE INDEX IF NOT EXISTS idx_results_player2 ON results(player2);
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

// SaveResult records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r MatchResult) (int64, error) {
	if r.Winner < WinnerNone || r.Winner > WinnerPlayer2 {
		return 0, fmt.Errorf("storage: invalid winner %d", r.Winner)
	}

	res, err := s.db.Exec(
		`INSERT INTO results (match_id, variant, height, width, player1, player2, winner, moves)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.MatchID, r.Variant, r.Height, r.Width, r.Player1, r.Player2, r.Winner, r.Moves,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const resultColumns = `id, match_id, variant, height, width, player1, player2, winner, moves, created_at`

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanResult(row scanner) (MatchResult, error) {
	var r MatchResult
	var createdAt any
	if err := row.Scan(&r.ID, &r.MatchID, &r.Variant, &r.Height, &r.Width,
		&r.Player1, &r.Player2, &r.Winner, &r.Moves, &createdAt); err != nil {
		return MatchResult{}, err
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles the datetime as either time.Time or string.
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

// RecentResults retrieves the most recent results, newest first.
func (s *Store) RecentResults(limit int) ([]MatchResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+resultColumns+`
		 FROM results
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []MatchResult
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// ResultByMatchID retrieves a result by its match ID.
// Returns nil without error if no such match was recorded.
func (s *Store) ResultByMatchID(matchID string) (*MatchResult, error) {
	r, err := scanResult(s.db.QueryRow(
		`SELECT `+resultColumns+` FROM results WHERE match_id = ?`,
		matchID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query result: %w", err)
	}
	return &r, nil
}

// Standings tallies wins, losses and ties per player name.
// An empty variant includes every variant. Sorted by wins, then ties, then name.
func (s *Store) Standings(variant string) ([]Standing, error) {
	rows, err := s.db.Query(
		`SELECT player, SUM(win), SUM(loss), SUM(tie) FROM (
			SELECT player1 AS player, winner = 1 AS win, winner = 2 AS loss, winner = 0 AS tie
			FROM results WHERE ? = '' OR variant = ?
			UNION ALL
			SELECT player2 AS player, winner = 2 AS win, winner = 1 AS loss, winner = 0 AS tie
			FROM results WHERE ? = '' OR variant = ?
		)
		GROUP BY player
		ORDER BY SUM(win) DESC, SUM(tie) DESC, player ASC`,
		variant, variant, variant, variant,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query standings: %w", err)
	}
	defer rows.Close()

	var standings []Standing
	for rows.Next() {
		var st Standing
		if err := rows.Scan(&st.Player, &st.Wins, &st.Losses, &st.Ties); err != nil {
			return nil, fmt.Errorf("storage: cannot scan standings row: %w", err)
		}
		standings = append(standings, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return standings, nil
}

// Variants returns the distinct variants that have recorded results.
func (s *Store) Variants() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT variant FROM results ORDER BY variant`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query variants: %w", err)
	}
	defer rows.Close()

	var variants []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("storage: cannot scan variant: %w", err)
		}
		variants = append(variants, v)
	}
	return variants, rows.Err()
}

// ClearResults deletes results for the given variant, or all results if variant is empty.
func (s *Store) ClearResults(variant string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE ? = '' OR variant = ?", variant, variant)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}
