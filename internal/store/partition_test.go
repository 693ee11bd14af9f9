package store

import (
	"testing"
	"time"

	"zulaflow/internal/model"
)

func TestPartitionCoversAndSeparates(t *testing.T) {
	created := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	doneEarly := created.Add(30 * time.Minute)
	doneLate := created.Add(2 * time.Hour)
	tasks := []model.Task{
		{ID: "cur", Title: "30 min Jog", CreatedAt: created},
		{ID: "cur-past-date", Title: "Foam Rolling", ScheduledDate: "2026-02-27", CreatedAt: created},
		{ID: "up-date", Title: "Cycling 10km", ScheduledDate: "2026-03-05", CreatedAt: created},
		{ID: "up-time", Title: "Evening Yoga", ScheduledDate: "2026-03-01", ScheduledTime: "19:30", CreatedAt: created},
		{ID: "done-early", Title: "Water 500ml", Completed: true, CompletedAt: &doneEarly, CreatedAt: created},
		{ID: "done-late", Title: "Meditation", Completed: true, CompletedAt: &doneLate, CreatedAt: created},
		{ID: "done-unstamped", Title: "Vitamins", Completed: true, CompletedAt: &doneEarly, CreatedAt: created},
	}
	// Simulate legacy data without a completion stamp on one entry, while
	// keeping the struct-level invariant for the others.
	tasks[6].CompletedAt = nil

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	p := PartitionTasks(tasks, now)

	if got := len(p.Current) + len(p.Upcoming) + len(p.Completed); got != len(tasks) {
		t.Fatalf("partition does not cover the list: %d of %d", got, len(tasks))
	}
	if len(p.Current) != 2 || len(p.Upcoming) != 2 || len(p.Completed) != 3 {
		t.Fatalf("unexpected partition sizes: current=%d upcoming=%d completed=%d",
			len(p.Current), len(p.Upcoming), len(p.Completed))
	}
	if p.Completed[0].ID != "done-late" || p.Completed[1].ID != "done-early" {
		t.Fatalf("completed not ordered by completedAt desc: %#v", p.Completed)
	}
	if p.Completed[2].ID != "done-unstamped" {
		t.Fatalf("tasks without completedAt must sort last, got %s", p.Completed[2].ID)
	}
}

func TestPartitionFlipsAsTimePasses(t *testing.T) {
	created := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		{ID: "timed", Title: "Evening Yoga", ScheduledDate: "2026-03-01", ScheduledTime: "19:30", CreatedAt: created},
	}

	morning := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	if p := PartitionTasks(tasks, morning); len(p.Upcoming) != 1 {
		t.Fatalf("expected task upcoming before its time, got %#v", p)
	}

	evening := time.Date(2026, 3, 1, 19, 31, 0, 0, time.UTC)
	if p := PartitionTasks(tasks, evening); len(p.Current) != 1 {
		t.Fatalf("expected task current after its time, got %#v", p)
	}

	// No mutation happened between the two reads; the flip is pure time.
	if tasks[0].ScheduledTime != "19:30" {
		t.Fatal("partitioning must not mutate tasks")
	}
}

func TestToggleMovesBetweenPartitions(t *testing.T) {
	state := model.NewAppState("2026-03-01")
	c := manualClock(t, "2026-03-01T10:00:00Z")
	s := Open(state, c, nil)

	task, ok := s.AddTask(TaskInput{Title: "Push-ups 3x15", Category: "Strength", Duration: 15})
	if !ok {
		t.Fatal("add task failed")
	}

	s.ToggleTask(task.ID)
	if p := s.Partition(); len(p.Completed) != 1 || len(p.Current) != 0 {
		t.Fatalf("expected task completed, got %#v", p)
	}

	s.ToggleTask(task.ID)
	p := s.Partition()
	if len(p.Current) != 1 || len(p.Completed) != 0 {
		t.Fatalf("expected task back in current, got %#v", p)
	}
	if p.Current[0].CompletedAt != nil {
		t.Fatal("expected completedAt cleared on un-complete")
	}
}

func TestTasksOnPastDateIsFrozenSnapshot(t *testing.T) {
	created := time.Date(2026, 2, 28, 9, 0, 0, 0, time.UTC)
	state := model.NewAppState("2026-03-01")
	state.Tasks = []model.Task{{ID: "live", Title: "Lunges 3x12", CreatedAt: created}}
	state.History = []model.DayLog{
		model.NewDayLog("2026-02-28", []model.Task{
			{ID: "old", Title: "Squats 3x20", CreatedAt: created},
		}, 4000),
	}

	s := Open(state, manualClock(t, "2026-03-01T10:00:00Z"), nil)

	today, readOnly := s.TasksOn("2026-03-01")
	if readOnly || len(today) != 1 || today[0].ID != "live" {
		t.Fatalf("expected writable live surface for today, got readOnly=%v %#v", readOnly, today)
	}

	past, readOnly := s.TasksOn("2026-02-28")
	if !readOnly || len(past) != 1 || past[0].ID != "old" {
		t.Fatalf("expected read-only snapshot, got readOnly=%v %#v", readOnly, past)
	}

	// Mutating the returned slice must not reach the history entry.
	past[0].Title = "changed"
	log, _ := s.HistoryOn("2026-02-28")
	if log.Tasks[0].Title != "Squats 3x20" {
		t.Fatal("historical snapshot was mutated through a read surface")
	}

	missing, readOnly := s.TasksOn("2026-01-15")
	if !readOnly || len(missing) != 0 {
		t.Fatalf("expected empty read-only surface for an unknown date, got %#v", missing)
	}

	if s.StepsOn("2026-02-28") != 4000 {
		t.Fatalf("expected archived steps for the past date, got %d", s.StepsOn("2026-02-28"))
	}
}
