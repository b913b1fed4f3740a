// SPDX-License-Identifier: MIT
// Dev: KryperAI

package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"signal-attestation/types"
)

//go:embed schema.sql
var schemaSQL string

// SQLiteStore is the durable RecordStore. The attestations primary key
// plus ON CONFLICT DO NOTHING reimplements the host runtime's atomic
// allocate-if-absent: a conflicting insert changes zero rows and the
// existing record is never touched.
type SQLiteStore struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path and applies
// pragmas and schema. Idempotent — safe to call on an existing store.
func Open(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("cannot open store: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot connect to store: %w", err)
	}

	// SQLite allows one writer at a time; a single connection avoids
	// SQLITE_BUSY churn.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot apply pragmas: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot apply schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// PutIfAbsent inserts the record unless the address row exists. Zero
// rows affected means the address was occupied.
func (s *SQLiteStore) PutIfAbsent(ctx context.Context, addr types.Address, record []byte) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO attestations (address, record, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(address) DO NOTHING
	`, addr[:], record, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("put attestation: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("put attestation: %w", err)
	}
	if n == 0 {
		return types.ErrAlreadyExists
	}
	return nil
}

// Get returns the record bytes stored at addr.
func (s *SQLiteStore) Get(ctx context.Context, addr types.Address) ([]byte, error) {
	var record []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT record FROM attestations WHERE address = ?
	`, addr[:]).Scan(&record)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get attestation: %w", err)
	}
	return record, nil
}

// Count returns the number of stored records.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM attestations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count attestations: %w", err)
	}
	return n, nil
}
