package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SQLiteStorage implements the Storage interface using SQLite
type SQLiteStorage struct {
	db *sql.DB
}

// openDatabase opens a SQLite database with appropriate settings
func openDatabase(dbPath string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, dbPath)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// SQLite benefits from a single writer; this also keeps :memory: on one connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// NewSQLiteStorage creates a new SQLite storage instance
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	db, err := openDatabase(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := ApplyMigrations(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// Key-value operations

func (s *SQLiteStorage) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv_store WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStorage) Put(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`
	if _, err := s.db.ExecContext(ctx, query, key, value, time.Now()); err != nil {
		return fmt.Errorf("failed to put %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStorage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if _, err := s.db.ExecContext(ctx, "DELETE FROM kv_store WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Selection log operations

func (s *SQLiteStorage) RecordSelection(ctx context.Context, sel *Selection) error {
	if sel.SelectedAt.IsZero() {
		sel.SelectedAt = time.Now()
	}

	query := `
		INSERT INTO selections (query, title, url, action, selected_at)
		VALUES (?, ?, ?, ?, ?)
	`
	result, err := s.db.ExecContext(ctx, query, sel.Query, sel.Title, sel.URL, sel.Action, sel.SelectedAt)
	if err != nil {
		return fmt.Errorf("failed to record selection: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	sel.ID = id
	return nil
}

// TopSelections returns the most frequently chosen results, most popular first.
// A limit of zero or less returns every title.
func (s *SQLiteStorage) TopSelections(ctx context.Context, limit int) ([]SelectionCount, error) {
	query := `
		SELECT title, MAX(url), COUNT(*) AS n, MIN(id) AS first_id
		FROM selections
		GROUP BY title
		ORDER BY n DESC, first_id ASC
	`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query selections: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var counts []SelectionCount
	for rows.Next() {
		var c SelectionCount
		var firstID int64
		if err := rows.Scan(&c.Title, &c.URL, &c.Count, &firstID); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// Status operations

func (s *SQLiteStorage) GetStatus(ctx context.Context) (*Status, error) {
	status := &Status{Backend: "sqlite"}

	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM kv_store").Scan(&status.Keys); err != nil {
		return nil, err
	}
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM selections").Scan(&status.SelectionCount); err != nil {
		return nil, err
	}

	version, err := currentVersion(ctx, s.db)
	if err != nil {
		return nil, err
	}
	status.SchemaVersion = version.String()

	// Calculate database size
	var pageCount, pageSize int
	err = s.db.QueryRowContext(ctx, "PRAGMA page_count").Scan(&pageCount)
	if err == nil {
		err = s.db.QueryRowContext(ctx, "PRAGMA page_size").Scan(&pageSize)
		if err == nil {
			status.SizeMB = float64(pageCount*pageSize) / (1024 * 1024)
		}
	}

	return status, nil
}
