package storage

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

const defaultMirrorDebounce = time.Second

// FileMirror is the tier-2 backup channel: a debounced background writer
// that mirrors the latest document to a user-chosen file. A burst of updates
// collapses into one write after the debounce window. The first failed write
// disables the mirror; tier-1 persistence is never affected.
type FileMirror struct {
	path     string
	debounce time.Duration

	mu      sync.Mutex
	pending []byte
	dirty   bool

	updates  chan struct{}
	stopCh   chan struct{}
	doneCh   chan struct{}
	started  bool
	stopped  bool
	disabled atomic.Bool
	writes   uint64
}

func NewFileMirror(path string, debounce time.Duration) *FileMirror {
	if debounce <= 0 {
		debounce = defaultMirrorDebounce
	}
	return &FileMirror{
		path:     path,
		debounce: debounce,
		updates:  make(chan struct{}, 1),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

func (m *FileMirror) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.started || m.path == "" {
		return
	}
	m.started = true
	go m.loop()
}

// Stop flushes any pending document and shuts the writer down.
func (m *FileMirror) Stop() {
	m.mu.Lock()
	if !m.started || m.stopped {
		m.mu.Unlock()
		return
	}
	m.stopped = true
	close(m.stopCh)
	m.mu.Unlock()
	<-m.doneCh
}

// Update queues the latest document. Last write wins; the debounce window
// restarts on every call.
func (m *FileMirror) Update(document []byte) {
	if m.Disabled() {
		return
	}
	m.mu.Lock()
	m.pending = append(m.pending[:0], document...)
	m.dirty = true
	m.mu.Unlock()
	select {
	case m.updates <- struct{}{}:
	default:
	}
}

// Disabled reports whether the mirror gave up after a write failure.
func (m *FileMirror) Disabled() bool {
	return m.disabled.Load()
}

func (m *FileMirror) Writes() uint64 {
	return atomic.LoadUint64(&m.writes)
}

func (m *FileMirror) loop() {
	defer close(m.doneCh)

	var timer *time.Timer
	var timerC <-chan time.Time
	for {
		select {
		case <-m.updates:
			if timer == nil {
				timer = time.NewTimer(m.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(m.debounce)
			}
			timerC = timer.C
		case <-timerC:
			timerC = nil
			m.flush()
		case <-m.stopCh:
			if timer != nil {
				timer.Stop()
			}
			m.flush()
			return
		}
	}
}

func (m *FileMirror) flush() {
	if m.Disabled() {
		return
	}
	m.mu.Lock()
	if !m.dirty {
		m.mu.Unlock()
		return
	}
	document := append([]byte(nil), m.pending...)
	m.dirty = false
	m.mu.Unlock()

	dir := filepath.Dir(m.path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			m.disabled.Store(true)
			return
		}
	}
	if err := os.WriteFile(m.path, document, 0o644); err != nil {
		m.disabled.Store(true)
		return
	}
	atomic.AddUint64(&m.writes, 1)
}
