package model

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidPlan     = errors.New("model: invalid fasting plan")
	ErrInvalidNoteType = errors.New("model: invalid note type")
)

type FastingPlan string

const (
	Plan16_8   FastingPlan = "16:8"
	Plan18_6   FastingPlan = "18:6"
	Plan20_4   FastingPlan = "20:4"
	PlanOMAD   FastingPlan = "OMAD"
	PlanCustom FastingPlan = "Custom"
)

func (p FastingPlan) IsValid() bool {
	switch p {
	case Plan16_8, Plan18_6, Plan20_4, PlanOMAD, PlanCustom:
		return true
	default:
		return false
	}
}

// Hours returns the canonical fasting window for the preset plans.
// Custom plans carry their own target duration.
func (p FastingPlan) Hours() float64 {
	switch p {
	case Plan16_8:
		return 16
	case Plan18_6:
		return 18
	case Plan20_4:
		return 20
	case PlanOMAD:
		return 23
	default:
		return 0
	}
}

// FastingSession is one fast. At most one session without an EndTime exists
// at a time (the active slot); ending a fast stamps EndTime and moves the
// session to the front of the fasting history.
type FastingSession struct {
	ID                 string      `json:"id"`
	Name               string      `json:"name,omitempty"`
	StartTime          time.Time   `json:"startTime"`
	EndTime            *time.Time  `json:"endTime,omitempty"`
	TargetDuration     float64     `json:"targetDuration"`
	Plan               FastingPlan `json:"plan"`
	ScheduledStartTime *time.Time  `json:"scheduledStartTime,omitempty"`
}

func (s FastingSession) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return errors.New("model: fasting session id is required")
	}
	if !s.Plan.IsValid() {
		return ErrInvalidPlan
	}
	if s.TargetDuration <= 0 {
		return errors.New("model: fasting target duration must be positive")
	}
	if s.StartTime.IsZero() {
		return errors.New("model: fasting start time is required")
	}
	return nil
}

// Elapsed reports seconds since the fast began. A future-scheduled fast
// reports a negative value (time until it starts).
func (s FastingSession) Elapsed(now time.Time) float64 {
	start := s.StartTime
	if s.ScheduledStartTime != nil {
		start = *s.ScheduledStartTime
	}
	return now.Sub(start).Seconds()
}

// FastingPreset is a saved custom plan the user can start fasts from.
type FastingPreset struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Duration float64 `json:"duration"`
}

type WeightEntry struct {
	ID    string  `json:"id"`
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type NoteType string

const (
	NoteJournal      NoteType = "journal"
	NoteElectrolytes NoteType = "electrolytes"
	NoteBlood        NoteType = "blood"
)

func (n NoteType) IsValid() bool {
	switch n {
	case NoteJournal, NoteElectrolytes, NoteBlood:
		return true
	default:
		return false
	}
}

type NoteEntry struct {
	ID      string   `json:"id"`
	Date    string   `json:"date"`
	Content string   `json:"content"`
	Type    NoteType `json:"type"`
}
