package store

import (
	"zulaflow/internal/clock"
	"zulaflow/internal/model"
)

// CheckRollover reconciles state with the current calendar date. When the
// last active day differs from today it archives that day into history,
// carries unfinished tasks forward and resets the step counter. It reports
// whether anything changed, and is safe to run repeatedly: a second call on
// the same day is a no-op.
//
// A multi-day absence still produces exactly one DayLog, dated to the last
// active day; empty intervening days are not represented in history.
func (s *Store) CheckRollover() bool {
	today := clock.Today(s.clock)
	if s.state.LastLogin == today {
		return false
	}

	// A document with no anchor date (fresh install, minimal import) is
	// adopted as today's; there is no prior day to archive.
	if s.state.LastLogin == "" {
		s.state.LastLogin = today
		s.persist()
		return true
	}

	if len(s.state.Tasks) > 0 && !hasHistoryEntry(s.state.History, s.state.LastLogin) {
		s.state.History = append(s.state.History,
			model.NewDayLog(s.state.LastLogin, s.state.Tasks, s.state.Steps))
	}

	live := make([]model.Task, 0, len(s.state.Tasks))
	for _, t := range s.state.Tasks {
		if !t.Completed {
			live = append(live, t)
		}
	}
	s.state.Tasks = live
	s.state.Steps = 0
	s.state.LastLogin = today
	s.persist()
	return true
}

// hasHistoryEntry guards the append-only history against duplicate dates if
// the rollover check runs twice before lastLogin persists.
func hasHistoryEntry(history []model.DayLog, date string) bool {
	for _, log := range history {
		if log.Date == date {
			return true
		}
	}
	return false
}
