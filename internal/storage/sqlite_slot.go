package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const (
	// DefaultSlot is the fixed key the application document lives under.
	DefaultSlot = "zulaflow"

	slotTimeLayout = time.RFC3339Nano
)

// SQLiteSlot stores the whole application document as one row in a sqlite
// key-value table.
type SQLiteSlot struct {
	db   *sql.DB
	slot string
}

func NewSQLiteSlot(db *sql.DB, slot string) (*SQLiteSlot, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if slot == "" {
		slot = DefaultSlot
	}
	return &SQLiteSlot{db: db, slot: slot}, nil
}

func OpenSQLiteSlot(path string) (*SQLiteSlot, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate app state schema: %w", err)
	}
	slot, err := NewSQLiteSlot(db, DefaultSlot)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return slot, nil
}

func (s *SQLiteSlot) Close() error {
	return s.db.Close()
}

func (s *SQLiteSlot) Load(ctx context.Context) ([]byte, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT document FROM app_state WHERE slot = ?`, s.slot)
	var document string
	if err := row.Scan(&document); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEmptySlot
		}
		return nil, err
	}
	return []byte(document), nil
}

func (s *SQLiteSlot) Save(ctx context.Context, document []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO app_state (slot, document, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at`,
		s.slot, string(document), time.Now().UTC().Format(slotTimeLayout),
	)
	return err
}
