package store

import (
	"errors"
	"time"

	"zulaflow/internal/clock"
	"zulaflow/internal/model"
)

var (
	ErrTaskNotFound       = errors.New("store: task not found")
	ErrEmptyTitle         = errors.New("store: title is empty")
	ErrRenameWindowClosed = errors.New("store: task too old to rename")
	ErrFastAlreadyActive  = errors.New("store: a fast is already active")
	ErrTemplateNotFound   = errors.New("store: template not found")
)

// Persister receives a snapshot of the state after every mutation. The
// store triggers it synchronously but never depends on it succeeding;
// implementations own write-through and mirroring concerns.
type Persister interface {
	Persist(state model.AppState)
}

// PersistFunc adapts a function to the Persister interface.
type PersistFunc func(state model.AppState)

func (f PersistFunc) Persist(state model.AppState) { f(state) }

// Store owns the application document. All reads and writes flow through
// its methods on the single UI event loop; no mutable references escape.
type Store struct {
	state     model.AppState
	clock     clock.Clock
	persister Persister
}

// Open wraps a loaded document and immediately reconciles it against the
// current calendar date, so a day boundary crossed while the app was closed
// is applied before anything reads state.
func Open(state model.AppState, c clock.Clock, p Persister) *Store {
	if c == nil {
		c = clock.System{}
	}
	s := &Store{state: state, clock: c, persister: p}
	s.CheckRollover()
	return s
}

// Today returns the current calendar date per the injected clock.
func (s *Store) Today() string {
	return clock.Today(s.clock)
}

// Now exposes the injected clock so callers never mix in wall time.
func (s *Store) Now() time.Time {
	return s.clock.Now()
}

// State returns a detached snapshot of the document.
func (s *Store) State() model.AppState {
	return cloneState(s.state)
}

// Tasks returns a copy of the live task list.
func (s *Store) Tasks() []model.Task {
	return append([]model.Task(nil), s.state.Tasks...)
}

func (s *Store) History() []model.DayLog {
	return append([]model.DayLog(nil), s.state.History...)
}

func (s *Store) Categories() []string {
	return append([]string(nil), s.state.Categories...)
}

func (s *Store) Templates() []model.Template {
	return append([]model.Template(nil), s.state.Templates...)
}

func (s *Store) Steps() int {
	return s.state.Steps
}

func (s *Store) UserName() string {
	return s.state.UserName
}

func (s *Store) Theme() model.Theme {
	return s.state.Theme
}

// WaterIntakeML derives today's water total from completed live tasks.
func (s *Store) WaterIntakeML() int {
	return model.WaterIntakeML(s.state.Tasks)
}

func (s *Store) persist() {
	if s.persister == nil {
		return
	}
	s.persister.Persist(cloneState(s.state))
}

func cloneState(state model.AppState) model.AppState {
	out := state
	out.Tasks = append([]model.Task(nil), state.Tasks...)
	out.History = append([]model.DayLog(nil), state.History...)
	for i, log := range out.History {
		out.History[i].Tasks = append([]model.Task(nil), log.Tasks...)
	}
	out.Categories = append([]string(nil), state.Categories...)
	out.Templates = append([]model.Template(nil), state.Templates...)
	for i, tpl := range out.Templates {
		out.Templates[i].Tasks = append([]model.Task(nil), tpl.Tasks...)
	}
	out.Cart = append([]model.CartItem(nil), state.Cart...)
	out.FastingHistory = append([]model.FastingSession(nil), state.FastingHistory...)
	if state.ActiveFast != nil {
		active := *state.ActiveFast
		out.ActiveFast = &active
	}
	out.FastingPresets = append([]model.FastingPreset(nil), state.FastingPresets...)
	out.WeightHistory = append([]model.WeightEntry(nil), state.WeightHistory...)
	out.Notes = append([]model.NoteEntry(nil), state.Notes...)
	return out
}
