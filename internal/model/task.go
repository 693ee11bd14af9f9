package model

import (
	"errors"
	"strings"
	"time"
)

const (
	// DefaultTaskDurationMinutes sizes the countdown timer when a task
	// carries no usable duration.
	DefaultTaskDurationMinutes = 5

	// RenameWindow is how long after creation a task title stays editable.
	RenameWindow = 24 * time.Hour
)

var ErrCompletionMismatch = errors.New("model: completed_at must be set iff task is completed")

// Task is a unit of work or habit on the live list or inside a DayLog.
// Field names are the persisted wire format and must stay stable.
type Task struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Completed     bool       `json:"completed"`
	Category      string     `json:"category,omitempty"`
	Duration      int        `json:"duration,omitempty"`
	ScheduledTime string     `json:"scheduledTime,omitempty"`
	ScheduledDate string     `json:"scheduledDate,omitempty"`
	EndDate       string     `json:"endDate,omitempty"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	Recurring     bool       `json:"recurring,omitempty"`
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	if t.CreatedAt.IsZero() {
		return errors.New("model: task created_at is required")
	}
	if t.Completed != (t.CompletedAt != nil) {
		return ErrCompletionMismatch
	}
	return nil
}

// EffectiveDuration returns the countdown length in minutes, falling back
// to the default when the stored duration is missing or invalid.
func (t Task) EffectiveDuration() int {
	if t.Duration <= 0 {
		return DefaultTaskDurationMinutes
	}
	return t.Duration
}

// Renamable reports whether the title may still be edited at the given time.
func (t Task) Renamable(now time.Time) bool {
	return now.Sub(t.CreatedAt) < RenameWindow
}

// Template is a reusable snapshot of a task list. Its tasks are stored
// uncompleted; loading a template appends fresh copies to the live list.
type Template struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Tasks     []Task    `json:"tasks"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}
