// Package store owns the canonical posting and subscriber state, backed by
// an embedded SQLite database. Every mutating call commits synchronously
// before returning, so a crash immediately after a successful call cannot
// lose that call's effect.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go-gigradar/internal/model"

	_ "modernc.org/sqlite"
)

var ErrNotFound = errors.New("not found")

// Store serializes all access behind one process-wide mutex: the poller,
// the scheduler's immediate run and interactive actions can all reach it
// concurrently, and SQLite wants a single writer.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

const schema = `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		external_id INTEGER NOT NULL UNIQUE,
		portfolio TEXT DEFAULT '',
		keyword_preferences TEXT DEFAULT '',
		frequency TEXT DEFAULT 'instant'
	);

	CREATE TABLE IF NOT EXISTS jobs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		source TEXT,
		title TEXT,
		company TEXT,
		link TEXT UNIQUE,
		excerpt TEXT,
		tags TEXT,
		posted_at TEXT,
		score REAL,
		status TEXT DEFAULT 'new',
		saved_by INTEGER,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_jobs_score ON jobs(score);
`

// Open creates (or opens) the database at dbPath and ensures the schema.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite handles one writer at a time; the mutex above already
	// serializes us, so a single connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// ---------------- JOB OPERATIONS ----------------

const jobColumns = `id, source, title, company, link, excerpt, tags, posted_at, score, status, saved_by, created_at`

// InsertIfNew inserts a posting unless its link is already known. It returns
// the freshly created posting, or (nil, nil) when the link exists — the
// caller uses that to decide whether to dispatch notifications.
func (s *Store) InsertIfNew(source, title, company, link, excerpt, tags, postedAt string, score float64) (*model.JobPosting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(
		`INSERT OR IGNORE INTO jobs (source, title, company, link, excerpt, tags, posted_at, score, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, 'new', ?)`,
		source, title, company, link, excerpt, tags, postedAt, score, time.Now().UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting job: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("inserting job: %w", err)
	}
	if n == 0 {
		// link already known
		return nil, nil
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("inserting job: %w", err)
	}
	return s.getByIDLocked(id)
}

// UpdateStatus sets a posting's lifecycle status.
func (s *Store) UpdateStatus(id int64, status model.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`UPDATE jobs SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return fmt.Errorf("updating job %d status: %w", id, err)
	}
	return requireRow(res, id)
}

// SetSavedBy marks a posting saved by a subscriber. Orthogonal to status.
func (s *Store) SetSavedBy(id, subscriberID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`UPDATE jobs SET saved_by = ? WHERE id = ?`, subscriberID, id)
	if err != nil {
		return fmt.Errorf("saving job %d: %w", id, err)
	}
	return requireRow(res, id)
}

func (s *Store) GetByID(id int64) (*model.JobPosting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getByIDLocked(id)
}

func (s *Store) getByIDLocked(id int64) (*model.JobPosting, error) {
	row := s.db.QueryRow(`SELECT `+jobColumns+` FROM jobs WHERE id = ?`, id)
	return scanJob(row)
}

// ListByOwner returns the postings a subscriber has saved, newest first.
func (s *Store) ListByOwner(subscriberID int64) ([]model.JobPosting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(
		`SELECT `+jobColumns+` FROM jobs WHERE saved_by = ? ORDER BY created_at DESC, id DESC`,
		subscriberID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing saved jobs: %w", err)
	}
	return scanJobs(rows)
}

// ListNewest returns the most recently created postings, newest first.
func (s *Store) ListNewest(limit int) ([]model.JobPosting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(
		`SELECT `+jobColumns+` FROM jobs ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing newest jobs: %w", err)
	}
	return scanJobs(rows)
}

// ---------------- SUBSCRIBER OPERATIONS ----------------

// GetOrCreateSubscriber looks a subscriber up by their Telegram chat ID,
// creating the row on first interaction. Idempotent.
func (s *Store) GetOrCreateSubscriber(externalID int64) (*model.Subscriber, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(
		`INSERT OR IGNORE INTO users (external_id) VALUES (?)`, externalID,
	); err != nil {
		return nil, fmt.Errorf("creating subscriber: %w", err)
	}

	var sub model.Subscriber
	err := s.db.QueryRow(
		`SELECT id, external_id, portfolio, keyword_preferences, frequency FROM users WHERE external_id = ?`,
		externalID,
	).Scan(&sub.ID, &sub.ExternalID, &sub.Portfolio, &sub.KeywordPreferences, &sub.Frequency)
	if err != nil {
		return nil, fmt.Errorf("loading subscriber: %w", err)
	}
	return &sub, nil
}

// SetPortfolio updates a subscriber's portfolio URL, creating them if needed.
func (s *Store) SetPortfolio(externalID int64, url string) error {
	return s.updateSubscriberField(externalID, "portfolio", url)
}

// SetKeywordPreferences stores a subscriber's keyword string. Stored for
// display only; delivery does not consult it.
func (s *Store) SetKeywordPreferences(externalID int64, keywords string) error {
	return s.updateSubscriberField(externalID, "keyword_preferences", keywords)
}

func (s *Store) updateSubscriberField(externalID int64, column, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(
		`INSERT OR IGNORE INTO users (external_id) VALUES (?)`, externalID,
	); err != nil {
		return fmt.Errorf("creating subscriber: %w", err)
	}
	if _, err := s.db.Exec(
		`UPDATE users SET `+column+` = ? WHERE external_id = ?`, value, externalID,
	); err != nil {
		return fmt.Errorf("updating subscriber %s: %w", column, err)
	}
	return nil
}

// ListSubscribers returns every known subscriber.
func (s *Store) ListSubscribers() ([]model.Subscriber, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT id, external_id, portfolio, keyword_preferences, frequency FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing subscribers: %w", err)
	}
	defer rows.Close()

	var out []model.Subscriber
	for rows.Next() {
		var sub model.Subscriber
		if err := rows.Scan(&sub.ID, &sub.ExternalID, &sub.Portfolio, &sub.KeywordPreferences, &sub.Frequency); err != nil {
			return nil, fmt.Errorf("scanning subscriber: %w", err)
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}

// ---------------- HELPERS ----------------

func requireRow(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("job %d: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (*model.JobPosting, error) {
	var (
		job     model.JobPosting
		status  string
		savedBy sql.NullInt64
	)
	err := row.Scan(
		&job.ID, &job.Source, &job.Title, &job.Company, &job.Link,
		&job.Excerpt, &job.Tags, &job.PostedAt, &job.Score,
		&status, &savedBy, &job.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning job: %w", err)
	}
	job.Status = model.Status(status)
	if savedBy.Valid {
		job.SavedBy = &savedBy.Int64
	}
	return &job, nil
}

func scanJobs(rows *sql.Rows) ([]model.JobPosting, error) {
	defer rows.Close()
	var out []model.JobPosting
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *job)
	}
	return out, rows.Err()
}
