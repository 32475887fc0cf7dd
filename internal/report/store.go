// Package report persists comparison results to SQLite so past checks can
// be listed and audited.
package report

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Comparison is one recorded similarity check.
type Comparison struct {
	ID             string
	OriginalPath   string
	SuspectPath    string
	OriginalTokens int
	SuspectTokens  int
	LCSLength      int
	Score          float64
	CreatedAt      time.Time
}

// Store manages comparison persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the report database and applies the schema.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure report directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.applySchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) applySchema(ctx context.Context) error {
	const schema = `CREATE TABLE IF NOT EXISTS comparisons (
        id TEXT PRIMARY KEY,
        original_path TEXT NOT NULL,
        suspect_path TEXT NOT NULL,
        original_tokens INTEGER NOT NULL,
        suspect_tokens INTEGER NOT NULL,
        lcs_length INTEGER NOT NULL,
        score REAL NOT NULL,
        created_at TEXT NOT NULL
    )`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record inserts a comparison and returns it with ID and timestamp filled in.
func (s *Store) Record(ctx context.Context, c Comparison) (Comparison, error) {
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO comparisons (
            id, original_path, suspect_path,
            original_tokens, suspect_tokens, lcs_length, score, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID,
		c.OriginalPath,
		c.SuspectPath,
		c.OriginalTokens,
		c.SuspectTokens,
		c.LCSLength,
		c.Score,
		c.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Comparison{}, fmt.Errorf("insert comparison: %w", err)
	}
	return c, nil
}

// Recent returns the most recent comparisons, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Comparison, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, original_path, suspect_path,
                original_tokens, suspect_tokens, lcs_length, score, created_at
         FROM comparisons
         ORDER BY created_at DESC
         LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query comparisons: %w", err)
	}
	defer rows.Close()

	var out []Comparison
	for rows.Next() {
		var c Comparison
		var createdAt string
		if err := rows.Scan(
			&c.ID, &c.OriginalPath, &c.SuspectPath,
			&c.OriginalTokens, &c.SuspectTokens, &c.LCSLength, &c.Score, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan comparison: %w", err)
		}
		if ts, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
			c.CreatedAt = ts
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comparisons: %w", err)
	}
	return out, nil
}
