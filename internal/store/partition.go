package store

import (
	"sort"
	"time"

	"zulaflow/internal/clock"
	"zulaflow/internal/model"
)

// Partition splits a live task list into three disjoint groups that
// together cover it completely.
type Partition struct {
	Current   []model.Task
	Upcoming  []model.Task
	Completed []model.Task
}

// PartitionTasks classifies against the given wall-clock moment. It is
// recomputed on every call, never cached: an upcoming task flips to current
// purely by time passing.
func PartitionTasks(tasks []model.Task, now time.Time) Partition {
	today := now.Format(clock.DateLayout)
	nowTime := now.Format("15:04")

	p := Partition{
		Current:   make([]model.Task, 0, len(tasks)),
		Upcoming:  make([]model.Task, 0),
		Completed: make([]model.Task, 0),
	}
	for _, t := range tasks {
		switch {
		case t.Completed:
			p.Completed = append(p.Completed, t)
		case isUpcoming(t, today, nowTime):
			p.Upcoming = append(p.Upcoming, t)
		default:
			p.Current = append(p.Current, t)
		}
	}

	// Most recently completed first; tasks without a completion stamp last.
	sort.SliceStable(p.Completed, func(i, j int) bool {
		a, b := p.Completed[i].CompletedAt, p.Completed[j].CompletedAt
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.After(*b)
	})
	return p
}

func isUpcoming(t model.Task, today, nowTime string) bool {
	if t.ScheduledDate == "" {
		return false
	}
	if t.ScheduledDate > today {
		return true
	}
	return t.ScheduledDate == today && t.ScheduledTime != "" && t.ScheduledTime > nowTime
}

// Partition classifies the live list against the store clock.
func (s *Store) Partition() Partition {
	return PartitionTasks(s.state.Tasks, s.clock.Now())
}

// TasksOn returns the task surface for a viewed date. Today's view is the
// live list; any other date is the frozen history snapshot for that day
// (empty when none exists) and must be treated as read-only.
func (s *Store) TasksOn(viewDate string) (tasks []model.Task, readOnly bool) {
	if viewDate == clock.Today(s.clock) {
		return s.Tasks(), false
	}
	if log, ok := s.HistoryOn(viewDate); ok {
		return append([]model.Task(nil), log.Tasks...), true
	}
	return []model.Task{}, true
}

// StepsOn mirrors TasksOn for the step counter.
func (s *Store) StepsOn(viewDate string) int {
	if viewDate == clock.Today(s.clock) {
		return s.state.Steps
	}
	if log, ok := s.HistoryOn(viewDate); ok {
		return log.Steps
	}
	return 0
}

func (s *Store) HistoryOn(date string) (model.DayLog, bool) {
	for _, log := range s.state.History {
		if log.Date == date {
			out := log
			out.Tasks = append([]model.Task(nil), log.Tasks...)
			return out, true
		}
	}
	return model.DayLog{}, false
}
