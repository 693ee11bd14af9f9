package scheduler

import (
	"container/heap"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

var (
	ErrInvalidTriggerTime = errors.New("scheduler: invalid trigger time")
	ErrInvalidKind        = errors.New("scheduler: invalid event kind")
	ErrStopped            = errors.New("scheduler: engine stopped")
)

type Kind string

const (
	// KindTaskTimer fires when the active task countdown expires.
	KindTaskTimer Kind = "task-timer"
	// KindScheduledTask fires when an upcoming task's scheduled moment passes.
	KindScheduledTask Kind = "scheduled-task"
	// KindRolloverCheck drives the periodic calendar-date recheck while the
	// app stays open across midnight.
	KindRolloverCheck Kind = "rollover-check"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindTaskTimer, KindScheduledTask, KindRolloverCheck:
		return true
	default:
		return false
	}
}

type Event struct {
	ID        string
	TaskID    string
	Kind      Kind
	TriggerAt time.Time
}

type queueItem struct {
	event Event
}

type eventQueue []queueItem

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	return q[i].event.TriggerAt.Before(q[j].event.TriggerAt)
}

func (q eventQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
}

func (q *eventQueue) Push(x any) {
	*q = append(*q, x.(queueItem))
}

func (q *eventQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[0 : n-1]
	return item
}

// Engine delivers timed events in trigger order on a non-blocking channel.
// Scheduling a new event with an already-queued ID replaces the old one,
// which gives task timers their replace-not-queue semantics.
type Engine struct {
	mu       sync.Mutex
	queue    eventQueue
	canceled map[string]bool
	out      chan Event
	wakeup   chan struct{}
	stopCh   chan struct{}
	doneCh   chan struct{}
	started  bool
	stopped  bool
	dropped  uint64
}

func NewEngine(bufferSize int) *Engine {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Engine{
		queue:    make(eventQueue, 0),
		canceled: make(map[string]bool),
		out:      make(chan Event, bufferSize),
		wakeup:   make(chan struct{}, 1),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

func (e *Engine) C() <-chan Event {
	return e.out
}

func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		return
	}
	e.started = true
	heap.Init(&e.queue)
	go e.loop()
}

func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.started || e.stopped {
		e.mu.Unlock()
		return
	}
	e.stopped = true
	close(e.stopCh)
	e.mu.Unlock()
	<-e.doneCh
}

func (e *Engine) Schedule(ev Event) error {
	if ev.TriggerAt.IsZero() {
		return ErrInvalidTriggerTime
	}
	if !ev.Kind.IsValid() {
		return ErrInvalidKind
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return ErrStopped
	}

	delete(e.canceled, ev.ID)
	e.removeQueued(ev.ID)
	heap.Push(&e.queue, queueItem{event: ev})
	e.signalWakeup()
	return nil
}

func (e *Engine) removeQueued(id string) {
	if id == "" {
		return
	}
	for i := 0; i < len(e.queue); {
		if e.queue[i].event.ID == id {
			heap.Remove(&e.queue, i)
			continue
		}
		i++
	}
}

// Cancel drops a queued event by ID. Canceling an unknown or already-fired
// event is a no-op.
func (e *Engine) Cancel(id string) {
	if id == "" {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return
	}
	e.canceled[id] = true
	e.signalWakeup()
}

func (e *Engine) Dropped() uint64 {
	return atomic.LoadUint64(&e.dropped)
}

func (e *Engine) loop() {
	defer close(e.doneCh)
	defer close(e.out)

	var timer *time.Timer
	for {
		next, hasNext := e.peek()
		if !hasNext {
			select {
			case <-e.wakeup:
				continue
			case <-e.stopCh:
				return
			}
		}

		wait := time.Until(next.TriggerAt)
		if wait < 0 {
			wait = 0
		}
		timer = resetTimer(timer, wait)

		select {
		case <-timer.C:
			due := e.popDue(time.Now())
			for _, ev := range due {
				select {
				case e.out <- ev:
				default:
					atomic.AddUint64(&e.dropped, 1)
				}
			}
		case <-e.wakeup:
			continue
		case <-e.stopCh:
			if timer != nil {
				stopTimer(timer)
			}
			return
		}
	}
}

func (e *Engine) signalWakeup() {
	select {
	case e.wakeup <- struct{}{}:
	default:
	}
}

func (e *Engine) peek() (Event, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.dropCanceledHead()
	if len(e.queue) == 0 {
		return Event{}, false
	}
	return e.queue[0].event, true
}

func (e *Engine) popDue(now time.Time) []Event {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Event, 0)
	for len(e.queue) > 0 {
		next := e.queue[0].event
		if e.canceled[next.ID] {
			heap.Pop(&e.queue)
			delete(e.canceled, next.ID)
			continue
		}
		if next.TriggerAt.After(now) {
			break
		}
		item := heap.Pop(&e.queue).(queueItem)
		out = append(out, item.event)
	}
	return out
}

func (e *Engine) dropCanceledHead() {
	for len(e.queue) > 0 && e.canceled[e.queue[0].event.ID] {
		item := heap.Pop(&e.queue).(queueItem)
		delete(e.canceled, item.event.ID)
	}
}

func resetTimer(timer *time.Timer, d time.Duration) *time.Timer {
	if timer == nil {
		return time.NewTimer(d)
	}
	stopTimer(timer)
	timer.Reset(d)
	return timer
}

func stopTimer(timer *time.Timer) {
	if timer == nil {
		return
	}
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
}
