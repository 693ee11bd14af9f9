package storage

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
)

func setupSlot(t *testing.T) *SQLiteSlot {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "zulaflow-test.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := MigrateUp(db); err != nil {
		t.Fatalf("migrate up: %v", err)
	}

	slot, err := NewSQLiteSlot(db, DefaultSlot)
	if err != nil {
		t.Fatalf("new slot: %v", err)
	}
	return slot
}

func TestSlotLoadEmptyReturnsErrEmptySlot(t *testing.T) {
	slot := setupSlot(t)
	if _, err := slot.Load(context.Background()); !errors.Is(err, ErrEmptySlot) {
		t.Fatalf("expected ErrEmptySlot, got %v", err)
	}
}

func TestSlotSaveOverwritesAndLoads(t *testing.T) {
	slot := setupSlot(t)
	ctx := context.Background()

	if err := slot.Save(ctx, []byte(`{"steps":1}`)); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := slot.Save(ctx, []byte(`{"steps":2}`)); err != nil {
		t.Fatalf("second save: %v", err)
	}

	raw, err := slot.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(raw) != `{"steps":2}` {
		t.Fatalf("expected last write to win, got %s", raw)
	}
}

func TestMigrateRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate-roundtrip.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := MigrateUp(db); err != nil {
		t.Fatalf("first migrate up failed: %v", err)
	}
	if err := MigrateDown(db); err != nil {
		t.Fatalf("migrate down failed: %v", err)
	}
	if err := MigrateUp(db); err != nil {
		t.Fatalf("second migrate up failed: %v", err)
	}

	slot, err := NewSQLiteSlot(db, "roundtrip")
	if err != nil {
		t.Fatalf("new slot: %v", err)
	}
	if err := slot.Save(context.Background(), []byte(`{}`)); err != nil {
		t.Fatalf("save after roundtrip failed: %v", err)
	}
}
