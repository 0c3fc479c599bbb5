package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/studyflow/studyflow/internal/logger"
	"github.com/studyflow/studyflow/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id          TEXT PRIMARY KEY,
	course_name TEXT NOT NULL,
	day         TEXT NOT NULL,
	start_time  TEXT NOT NULL,
	end_time    TEXT NOT NULL,
	type        TEXT NOT NULL,
	intensity   TEXT NOT NULL,
	notes       TEXT NOT NULL DEFAULT '',
	created_at  INTEGER NOT NULL,
	updated_at  INTEGER NOT NULL,
	position    INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

type SQLiteStore struct {
	path string
	db   *sql.DB

	sampleLoaded bool
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := s.open(); err != nil {
		return err
	}

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db
	return nil
}

// Load reads the full session collection ordered by insertion position. Any
// failure to open or query is treated as an empty collection.
func (s *SQLiteStore) Load() ([]models.StudySession, error) {
	if err := s.open(); err != nil {
		logger.Warn("Storage unavailable, starting empty", "path", s.path, "error", err)
		return nil, nil
	}

	// Schema creation is idempotent; a fresh path behaves as an empty store.
	if _, err := s.db.Exec(schema); err != nil {
		logger.Warn("Storage corrupt, starting empty", "path", s.path, "error", err)
		return nil, nil
	}

	rows, err := s.db.Query(`
		SELECT id, course_name, day, start_time, end_time, type, intensity, notes, created_at, updated_at
		FROM sessions ORDER BY position`)
	if err != nil {
		logger.Warn("Storage corrupt, starting empty", "path", s.path, "error", err)
		return nil, nil
	}
	defer rows.Close()

	var sessions []models.StudySession
	for rows.Next() {
		var sess models.StudySession
		var day, sessType, intensity string
		err := rows.Scan(
			&sess.ID, &sess.CourseName, &day, &sess.StartTime, &sess.EndTime,
			&sessType, &intensity, &sess.Notes, &sess.CreatedAt, &sess.UpdatedAt,
		)
		if err != nil {
			logger.Warn("Storage row unreadable, starting empty", "path", s.path, "error", err)
			return nil, nil
		}
		sess.Day = models.Day(day)
		sess.Type = models.SessionType(sessType)
		sess.Intensity = models.Intensity(intensity)
		sessions = append(sessions, sess)
	}

	s.sampleLoaded = s.readSampleFlag()

	return sessions, nil
}

func (s *SQLiteStore) readSampleFlag() bool {
	var value string
	err := s.db.QueryRow("SELECT value FROM meta WHERE key = ?", "sample_loaded").Scan(&value)
	if err != nil {
		return false
	}
	return value == "true"
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save replaces the stored collection wholesale inside one transaction.
func (s *SQLiteStore) Save(sessions []models.StudySession) error {
	if err := s.open(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM sessions"); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO sessions (
			id, course_name, day, start_time, end_time, type, intensity, notes, created_at, updated_at, position
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, sess := range sessions {
		_, err = stmt.Exec(
			sess.ID, sess.CourseName, string(sess.Day), sess.StartTime, sess.EndTime,
			string(sess.Type), string(sess.Intensity), sess.Notes, sess.CreatedAt, sess.UpdatedAt, i,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) SampleLoaded() bool {
	return s.sampleLoaded
}

func (s *SQLiteStore) SetSampleLoaded(loaded bool) error {
	if err := s.open(); err != nil {
		return err
	}

	value := "false"
	if loaded {
		value = "true"
	}
	if _, err := s.db.Exec("INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)", "sample_loaded", value); err != nil {
		return err
	}
	s.sampleLoaded = loaded
	return nil
}

func (s *SQLiteStore) Path() string {
	return s.path
}
