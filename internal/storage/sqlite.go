package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"viaggio/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps all record sets in one `records` table keyed by
// (set_name, id), with a position column preserving insertion order.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context, set string) (*RawSet, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, doc FROM records WHERE set_name = ? ORDER BY position`, set)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", set, err)
	}
	defer rows.Close()

	records := core.NewRecordSet[json.RawMessage]()
	for rows.Next() {
		var id, doc string
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, fmt.Errorf("scan %s: %w", set, err)
		}
		if !json.Valid([]byte(doc)) {
			return nil, fmt.Errorf("%w: %s[%s]: stored document is not JSON", ErrCorrupted, set, id)
		}
		records.Put(id, json.RawMessage(doc))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", set, err)
	}
	return records, nil
}

// Save replaces the set's rows in a single transaction.
func (s *SQLiteStore) Save(ctx context.Context, set string, records *RawSet) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save %s: %w", set, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM records WHERE set_name = ?`, set); err != nil {
		return fmt.Errorf("clear %s: %w", set, err)
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO records (set_name, id, position, doc) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert %s: %w", set, err)
	}
	defer stmt.Close()

	for pos, id := range records.IDs() {
		doc, _ := records.Get(id)
		if _, err := stmt.ExecContext(ctx, set, id, pos, string(doc)); err != nil {
			return fmt.Errorf("insert %s[%s]: %w", set, id, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save %s: %w", set, err)
	}
	return nil
}
