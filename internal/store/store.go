// Package store persists answers and settings in a local SQLite database.
// It is the validation boundary for answer data: malformed enum values are
// rejected here so the engine never sees them.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"security-maturity-assessor/internal/model"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// SettingFrameworkFilter holds the persisted framework restriction as a
// comma-separated id list.
const SettingFrameworkFilter = "framework_filter"

const schema = `
CREATE TABLE IF NOT EXISTS answers (
	question_id   TEXT PRIMARY KEY,
	response      TEXT NOT NULL,
	evidence      TEXT NOT NULL DEFAULT '',
	notes         TEXT NOT NULL DEFAULT '',
	evidence_refs TEXT NOT NULL DEFAULT '[]',
	updated_at    TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

// Store wraps the SQLite handle.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and ensures the
// schema exists. Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Answers loads the full answer set. Rows with enum values that no longer
// validate are skipped; absence of a question id means unanswered.
func (s *Store) Answers(ctx context.Context) (model.AnswerSet, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT question_id, response, evidence, notes, evidence_refs, updated_at FROM answers`)
	if err != nil {
		return nil, fmt.Errorf("store: query answers: %w", err)
	}
	defer rows.Close()

	out := model.AnswerSet{}
	for rows.Next() {
		a, err := scanAnswer(rows)
		if err != nil {
			return nil, err
		}
		if !a.Response.Valid() {
			continue
		}
		out[a.QuestionID] = a
	}
	return out, rows.Err()
}

// Answer loads one answer, returning ErrNotFound for unanswered questions.
func (s *Store) Answer(ctx context.Context, questionID string) (model.Answer, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT question_id, response, evidence, notes, evidence_refs, updated_at FROM answers WHERE question_id = ?`,
		questionID)
	a, err := scanAnswer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Answer{}, ErrNotFound
	}
	return a, err
}

// PutAnswer inserts or replaces an answer. Enum values are validated here,
// at the store boundary.
func (s *Store) PutAnswer(ctx context.Context, a model.Answer) error {
	if a.QuestionID == "" {
		return errors.New("store: answer missing question id")
	}
	if !a.Response.Valid() {
		return fmt.Errorf("store: invalid response %q", a.Response)
	}
	if !a.Evidence.Valid() {
		return fmt.Errorf("store: invalid evidence status %q", a.Evidence)
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = time.Now().UTC()
	}
	refs, err := json.Marshal(a.EvidenceRefs)
	if err != nil {
		return fmt.Errorf("store: encode evidence refs: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO answers (question_id, response, evidence, notes, evidence_refs, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(question_id) DO UPDATE SET
		   response = excluded.response,
		   evidence = excluded.evidence,
		   notes = excluded.notes,
		   evidence_refs = excluded.evidence_refs,
		   updated_at = excluded.updated_at`,
		a.QuestionID, string(a.Response), string(a.Evidence), a.Notes, string(refs),
		a.UpdatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("store: put answer %s: %w", a.QuestionID, err)
	}
	return nil
}

// DeleteAnswer removes an answer, reverting the question to unanswered.
// Deleting a missing answer is not an error.
func (s *Store) DeleteAnswer(ctx context.Context, questionID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM answers WHERE question_id = ?`, questionID)
	if err != nil {
		return fmt.Errorf("store: delete answer %s: %w", questionID, err)
	}
	return nil
}

// Setting reads one setting value, returning ErrNotFound when unset.
func (s *Store) Setting(ctx context.Context, key string) (string, error) {
	var v string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("store: setting %s: %w", key, err)
	}
	return v, nil
}

// PutSetting inserts or replaces a setting.
func (s *Store) PutSetting(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("store: put setting %s: %w", key, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnswer(row rowScanner) (model.Answer, error) {
	var a model.Answer
	var response, evidence, refs, updated string
	if err := row.Scan(&a.QuestionID, &response, &evidence, &a.Notes, &refs, &updated); err != nil {
		return model.Answer{}, err
	}
	a.Response = model.Response(response)
	a.Evidence = model.EvidenceStatus(evidence)
	if refs != "" {
		if err := json.Unmarshal([]byte(refs), &a.EvidenceRefs); err != nil {
			return model.Answer{}, fmt.Errorf("store: decode evidence refs for %s: %w", a.QuestionID, err)
		}
	}
	if t, err := time.Parse(time.RFC3339, updated); err == nil {
		a.UpdatedAt = t
	}
	return a, nil
}
