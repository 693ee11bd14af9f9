package store

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"zulaflow/internal/model"
)

// FastInput carries the parameters for starting a fast.
type FastInput struct {
	Plan           model.FastingPlan
	Hours          float64
	Name           string
	ScheduledStart *time.Time
}

// StartFast opens a new fasting session. The at-most-one-active invariant
// is a precondition: starting while a fast is active fails outright. A
// future ScheduledStart produces a session whose elapsed time reads
// negative until the start moment passes.
func (s *Store) StartFast(in FastInput) (model.FastingSession, error) {
	if s.state.ActiveFast != nil {
		return model.FastingSession{}, ErrFastAlreadyActive
	}
	if !in.Plan.IsValid() {
		return model.FastingSession{}, model.ErrInvalidPlan
	}

	hours := in.Hours
	if hours <= 0 {
		hours = in.Plan.Hours()
	}

	session := model.FastingSession{
		ID:             uuid.NewString(),
		Name:           strings.TrimSpace(in.Name),
		StartTime:      s.clock.Now(),
		TargetDuration: hours,
		Plan:           in.Plan,
	}
	if in.ScheduledStart != nil {
		start := *in.ScheduledStart
		session.StartTime = start
		session.ScheduledStartTime = &start
	}
	if err := session.Validate(); err != nil {
		return model.FastingSession{}, err
	}

	s.state.ActiveFast = &session
	s.persist()
	return session, nil
}

// EndFast completes the active session, moving it to the front of the
// fasting history. Without an active fast it is a no-op.
func (s *Store) EndFast() (model.FastingSession, bool) {
	if s.state.ActiveFast == nil {
		return model.FastingSession{}, false
	}
	ended := *s.state.ActiveFast
	now := s.clock.Now()
	ended.EndTime = &now

	s.state.FastingHistory = append([]model.FastingSession{ended}, s.state.FastingHistory...)
	s.state.ActiveFast = nil
	s.persist()
	return ended, true
}

func (s *Store) ActiveFast() *model.FastingSession {
	if s.state.ActiveFast == nil {
		return nil
	}
	active := *s.state.ActiveFast
	return &active
}

// ElapsedFast reports seconds into the active fast (negative while a
// scheduled fast waits to begin). The second return is false when no fast
// is active.
func (s *Store) ElapsedFast() (float64, bool) {
	if s.state.ActiveFast == nil {
		return 0, false
	}
	return s.state.ActiveFast.Elapsed(s.clock.Now()), true
}

func (s *Store) FastingHistory() []model.FastingSession {
	return append([]model.FastingSession(nil), s.state.FastingHistory...)
}

// SavePreset stores a named custom fasting duration for reuse.
func (s *Store) SavePreset(name string, hours float64) (model.FastingPreset, bool) {
	name = strings.TrimSpace(name)
	if name == "" || hours <= 0 {
		return model.FastingPreset{}, false
	}
	preset := model.FastingPreset{
		ID:       uuid.NewString(),
		Name:     name,
		Duration: hours,
	}
	s.state.FastingPresets = append(s.state.FastingPresets, preset)
	s.persist()
	return preset, true
}

func (s *Store) FastingPresets() []model.FastingPreset {
	return append([]model.FastingPreset(nil), s.state.FastingPresets...)
}
