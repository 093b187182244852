// Package sqlite persists usage analytics in an embedded SQLite database.
// Writes are best effort; the serving path logs failures and moves on.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/fairyhunter13/ai-interview-coach/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS validation_events (
	id              TEXT PRIMARY KEY,
	document        TEXT NOT NULL,
	content_length  INTEGER NOT NULL,
	can_proceed     INTEGER NOT NULL,
	quality_score   INTEGER NOT NULL,
	relevance_score INTEGER NOT NULL,
	errors_count    INTEGER NOT NULL,
	warnings_count  INTEGER NOT NULL,
	created_at      TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS generation_events (
	id             TEXT PRIMARY KEY,
	request_id     TEXT NOT NULL,
	job_length     INTEGER NOT NULL,
	resume_length  INTEGER NOT NULL,
	prompt_tokens  INTEGER NOT NULL,
	combined_score INTEGER NOT NULL,
	question_count INTEGER NOT NULL,
	model          TEXT NOT NULL,
	created_at     TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_validation_events_created_at ON validation_events(created_at);
CREATE INDEX IF NOT EXISTS idx_generation_events_created_at ON generation_events(created_at);
`

// Store is the AnalyticsRepository backed by SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (and creates, if needed) the database at path and applies the
// schema. ":memory:" is accepted for tests.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("op=sqlite.Open: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("op=sqlite.Open: %w", err)
	}
	// modernc sqlite serializes writes itself, but a single connection avoids
	// SQLITE_BUSY on concurrent inserts.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("op=sqlite.Open schema: %w", err)
	}
	return &Store{db: db}, nil
}

// RecordValidation inserts one validation event.
func (s *Store) RecordValidation(ctx domain.Context, ev domain.ValidationEvent) error {
	if ev.ID == "" {
		ev.ID = uuid.New().String()
	}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now().UTC()
	}
	const q = `INSERT INTO validation_events
		(id, document, content_length, can_proceed, quality_score, relevance_score, errors_count, warnings_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, q, ev.ID, ev.Document, ev.ContentLength, ev.CanProceed,
		ev.QualityScore, ev.RelevanceScore, ev.ErrorsCount, ev.WarningsCount, ev.CreatedAt)
	if err != nil {
		return fmt.Errorf("op=analytics.record_validation: %w", err)
	}
	return nil
}

// RecordGeneration inserts one generation event.
func (s *Store) RecordGeneration(ctx domain.Context, ev domain.GenerationEvent) error {
	if ev.ID == "" {
		ev.ID = uuid.New().String()
	}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now().UTC()
	}
	const q = `INSERT INTO generation_events
		(id, request_id, job_length, resume_length, prompt_tokens, combined_score, question_count, model, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, q, ev.ID, ev.RequestID, ev.JobLength, ev.ResumeLength,
		ev.PromptTokens, ev.CombinedScore, ev.QuestionCount, ev.Model, ev.CreatedAt)
	if err != nil {
		return fmt.Errorf("op=analytics.record_generation: %w", err)
	}
	return nil
}

// Ping verifies the database is reachable, for readiness checks.
func (s *Store) Ping(ctx domain.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
