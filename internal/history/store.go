// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps an append-only SQLite log of analysis runs. The
// analyzer only writes to it; nothing in the pipeline reads it back, so
// every run remains a from-scratch computation.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/project-insight/pkg/types"
)

const dbFile = "insight.db"

// Store manages the run-history SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the history database at dir/insight.db,
// creating the schema if it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = ".insight"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", filepath.Join(dir, dbFile)+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		project TEXT NOT NULL,
		analyzed_at TEXT NOT NULL,
		files INTEGER NOT NULL,
		technologies TEXT NOT NULL,
		result TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Save appends one analysis result and returns its run ID.
func (s *Store) Save(ctx context.Context, result *types.AnalysisResult) (int64, error) {
	techJSON, err := json.Marshal(result.Technologies)
	if err != nil {
		return 0, fmt.Errorf("marshaling technologies: %w", err)
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return 0, fmt.Errorf("marshaling result: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (project, analyzed_at, files, technologies, result)
		 VALUES (?, ?, ?, ?, ?)`,
		result.ProjectName,
		result.AnalyzedAt.UTC().Format(time.RFC3339Nano),
		result.FilesAnalyzed,
		string(techJSON),
		string(resultJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	return res.LastInsertId()
}

// Run is one row of the run log.
type Run struct {
	ID           int64     `json:"id" yaml:"id"`
	Project      string    `json:"project" yaml:"project"`
	AnalyzedAt   time.Time `json:"analyzed_at" yaml:"analyzed_at"`
	Files        int       `json:"files" yaml:"files"`
	Technologies []string  `json:"technologies" yaml:"technologies"`
}

// List returns all recorded runs, most recent first.
func (s *Store) List(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, project, analyzed_at, files, technologies
		 FROM runs ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run      Run
			at       string
			techJSON string
		)
		if err := rows.Scan(&run.ID, &run.Project, &at, &run.Files, &techJSON); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if t, err := time.Parse(time.RFC3339Nano, at); err == nil {
			run.AnalyzedAt = t
		}
		if err := json.Unmarshal([]byte(techJSON), &run.Technologies); err != nil {
			return nil, fmt.Errorf("parsing technologies for run %d: %w", run.ID, err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Show returns the full stored result for one run ID.
func (s *Store) Show(ctx context.Context, id int64) (*types.AnalysisResult, error) {
	var resultJSON string
	err := s.db.QueryRowContext(ctx,
		`SELECT result FROM runs WHERE id = ?`, id,
	).Scan(&resultJSON)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying run %d: %w", id, err)
	}

	var result types.AnalysisResult
	if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
		return nil, fmt.Errorf("parsing stored result for run %d: %w", id, err)
	}
	return &result, nil
}
