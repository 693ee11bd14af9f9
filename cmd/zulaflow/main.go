package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"zulaflow/internal/clock"
	"zulaflow/internal/model"
	"zulaflow/internal/scheduler"
	"zulaflow/internal/storage"
	"zulaflow/internal/store"
	"zulaflow/internal/suggest"
	"zulaflow/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "zulaflow failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())

	slot, err := storage.OpenSQLiteSlot(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer slot.Close()

	state, err := loadState(slot)
	if err != nil {
		return err
	}

	var mirror *storage.FileMirror
	if cfg.MirrorPath != "" {
		mirror = storage.NewFileMirror(cfg.MirrorPath, time.Duration(cfg.MirrorDebounceMS)*time.Millisecond)
		mirror.Start()
		defer mirror.Stop()
	}

	sysClock := clock.System{}
	st := store.Open(state, sysClock, persister(slot, mirror, sysClock))

	engine := scheduler.NewEngine(cfg.SchedulerBuffer)
	engine.Start()
	defer engine.Stop()

	var client *suggest.Client
	if cfg.SuggestAPIKey != "" {
		client = suggest.New(cfg.SuggestBaseURL, cfg.SuggestAPIKey)
	}

	program := tea.NewProgram(update.NewModel(st, engine, client))
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}

// loadState reads the persisted document. An empty slot starts a fresh
// state; a corrupt document is also replaced rather than crashing, since
// the app must always come up.
func loadState(slot *storage.SQLiteSlot) (model.AppState, error) {
	today := clock.Today(clock.System{})

	raw, err := slot.Load(context.Background())
	if errors.Is(err, storage.ErrEmptySlot) {
		return model.NewAppState(today), nil
	}
	if err != nil {
		return model.AppState{}, fmt.Errorf("load state: %w", err)
	}

	state, err := storage.DecodeDocument(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "zulaflow: stored document unreadable, starting fresh: %v\n", err)
		return model.NewAppState(today), nil
	}
	return state, nil
}

// persister writes every mutation through to sqlite and feeds the optional
// debounced file mirror.
func persister(slot *storage.SQLiteSlot, mirror *storage.FileMirror, c clock.Clock) store.Persister {
	return store.PersistFunc(func(state model.AppState) {
		payload, err := storage.EncodeDocument(state, clock.Today(c))
		if err != nil {
			fmt.Fprintf(os.Stderr, "zulaflow: encode state: %v\n", err)
			return
		}
		if err := slot.Save(context.Background(), payload); err != nil {
			fmt.Fprintf(os.Stderr, "zulaflow: save state: %v\n", err)
		}
		if mirror != nil {
			mirror.Update(payload)
		}
	})
}
