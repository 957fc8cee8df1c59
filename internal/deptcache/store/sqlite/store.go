package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"prod-tracker/internal/model"
)

// Store keeps department records as JSON blobs in a single SQLite table so
// the cache survives restarts.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (or creates) the cache database at path.
func NewStore(path string) (*Store, error) {
	if path == "" {
		path = "prod-cache.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// one writer at a time; sqlite serializes anyway
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS dept_cache (
		key TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create dept_cache table: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

func (s *Store) Read(ctx context.Context, key string) (model.Dept, bool, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM dept_cache WHERE key = ?`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Dept{}, false, nil
	}
	if err != nil {
		return model.Dept{}, false, fmt.Errorf("select %s: %w", key, err)
	}

	var dept model.Dept
	if err := json.Unmarshal(payload, &dept); err != nil {
		return model.Dept{}, false, fmt.Errorf("decode %s: %w", key, err)
	}
	return dept, true, nil
}

func (s *Store) Write(ctx context.Context, key string, dept model.Dept) error {
	payload, err := json.Marshal(dept)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if _, err := s.db.ExecContext(ctx, `INSERT INTO dept_cache (key, payload) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload`, key, payload); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) Close() error {
	return s.db.Close()
}
