package scheduler

import (
	"errors"
	"testing"
	"time"
)

func TestEngineEmitsInTriggerOrder(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Now()
	if err := engine.Schedule(Event{ID: "later", Kind: KindScheduledTask, TriggerAt: now.Add(80 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule later: %v", err)
	}
	if err := engine.Schedule(Event{ID: "sooner", Kind: KindTaskTimer, TriggerAt: now.Add(20 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule sooner: %v", err)
	}

	first := waitEvent(t, engine.C(), time.Second)
	second := waitEvent(t, engine.C(), time.Second)
	if first.ID != "sooner" || second.ID != "later" {
		t.Fatalf("unexpected order: first=%s second=%s", first.ID, second.ID)
	}
}

func TestEngineCancelDropsQueuedEvent(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Now()
	if err := engine.Schedule(Event{ID: "gone", Kind: KindTaskTimer, TriggerAt: now.Add(40 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if err := engine.Schedule(Event{ID: "kept", Kind: KindTaskTimer, TriggerAt: now.Add(60 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	engine.Cancel("gone")

	got := waitEvent(t, engine.C(), time.Second)
	if got.ID != "kept" {
		t.Fatalf("expected canceled event to be dropped, got %s", got.ID)
	}
}

func TestEngineRescheduleReplacesSameID(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Now()
	if err := engine.Schedule(Event{ID: "timer", Kind: KindTaskTimer, TriggerAt: now.Add(30 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if err := engine.Schedule(Event{ID: "timer", Kind: KindTaskTimer, TaskID: "replacement", TriggerAt: now.Add(60 * time.Millisecond)}); err != nil {
		t.Fatalf("reschedule: %v", err)
	}

	got := waitEvent(t, engine.C(), time.Second)
	if got.TaskID != "replacement" {
		t.Fatalf("expected replacement event, got %#v", got)
	}

	select {
	case extra := <-engine.C():
		t.Fatalf("expected a single delivery, got extra event %#v", extra)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestEngineNonBlockingDropsWhenConsumerIsSlow(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	defer engine.Stop()

	now := time.Now().Add(20 * time.Millisecond)
	for i := 0; i < 25; i++ {
		if err := engine.Schedule(Event{
			Kind:      KindRolloverCheck,
			TriggerAt: now,
		}); err != nil {
			t.Fatalf("schedule event: %v", err)
		}
	}

	time.Sleep(120 * time.Millisecond)
	if engine.Dropped() == 0 {
		t.Fatalf("expected dropped events > 0, got %d", engine.Dropped())
	}
}

func TestScheduleValidatesInput(t *testing.T) {
	engine := NewEngine(1)
	if err := engine.Schedule(Event{ID: "bad", Kind: KindTaskTimer}); !errors.Is(err, ErrInvalidTriggerTime) {
		t.Fatalf("expected ErrInvalidTriggerTime, got %v", err)
	}
	if err := engine.Schedule(Event{ID: "bad", Kind: Kind("nope"), TriggerAt: time.Now()}); !errors.Is(err, ErrInvalidKind) {
		t.Fatalf("expected ErrInvalidKind, got %v", err)
	}
}

func waitEvent(t *testing.T, ch <-chan Event, timeout time.Duration) Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for event")
		return Event{}
	}
}
