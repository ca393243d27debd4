// Package problems persists classified problem configurations. Loading
// returns a configuration, never a running session; sessions always start
// at Idle.
package problems

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Problem is one saved configuration.
type Problem struct {
	ID        string
	Title     string
	ModelID   string
	Params    map[string]float64
	Label     string
	CreatedAt time.Time
}

// Store wraps the SQLite connection.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
// Use ":memory:" for tests.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open problem store: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
CREATE TABLE IF NOT EXISTS problems (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    model_id TEXT NOT NULL,
    params TEXT NOT NULL,
    label TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_problems_model ON problems(model_id);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("migrate problem store: %w", err)
	}
	return nil
}

func (s *Store) Close() error { return s.db.Close() }

// Save inserts a new problem and returns its id.
func (s *Store) Save(title, modelID string, params map[string]float64, label string) (string, error) {
	blob, err := json.Marshal(params)
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	_, err = s.db.Exec(
		`INSERT INTO problems (id, title, model_id, params, label, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		id, title, modelID, string(blob), label, time.Now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("save problem: %w", err)
	}
	return id, nil
}

// Get loads one problem by id.
func (s *Store) Get(id string) (*Problem, error) {
	row := s.db.QueryRow(
		`SELECT id, title, model_id, params, label, created_at FROM problems WHERE id = ?`, id)
	return scanProblem(row)
}

// List returns all problems, newest first.
func (s *Store) List() ([]Problem, error) {
	rows, err := s.db.Query(
		`SELECT id, title, model_id, params, label, created_at FROM problems ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Problem, 0)
	for rows.Next() {
		p, err := scanProblem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// Delete removes one problem. Returns whether it existed.
func (s *Store) Delete(id string) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM problems WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProblem(row scanner) (*Problem, error) {
	var p Problem
	var blob string
	if err := row.Scan(&p.ID, &p.Title, &p.ModelID, &blob, &p.Label, &p.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(blob), &p.Params); err != nil {
		return nil, fmt.Errorf("problem %s has corrupt params: %w", p.ID, err)
	}
	return &p, nil
}
