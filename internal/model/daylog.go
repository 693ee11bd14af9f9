package model

// DayLog is an immutable archived day. It is created exactly once, when the
// rollover detects a new calendar day, and never mutated afterwards.
// TotalCount is fixed at archive time and never recomputed.
type DayLog struct {
	Date           string `json:"date"`
	CompletedCount int    `json:"completedCount"`
	TotalCount     int    `json:"totalCount"`
	Steps          int    `json:"steps,omitempty"`
	Tasks          []Task `json:"tasks,omitempty"`
}

// NewDayLog snapshots a live task list (completed and not) plus the day's
// step count into an archive entry for the given date.
func NewDayLog(date string, tasks []Task, steps int) DayLog {
	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}
	snapshot := make([]Task, len(tasks))
	copy(snapshot, tasks)
	return DayLog{
		Date:           date,
		CompletedCount: completed,
		TotalCount:     len(tasks),
		Steps:          steps,
		Tasks:          snapshot,
	}
}
