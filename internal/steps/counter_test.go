package steps

import (
	"testing"
	"time"
)

func TestCounterAcceptsStrongSpacedSamples(t *testing.T) {
	counter := NewCounter(DefaultThreshold, DefaultMinInterval)
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	if !counter.Observe(Sample{X: 30, At: base}) {
		t.Fatal("expected first strong sample to count")
	}
	if !counter.Observe(Sample{Y: 28, At: base.Add(600 * time.Millisecond)}) {
		t.Fatal("expected spaced sample to count")
	}
	if got := counter.Steps(); got != 2 {
		t.Fatalf("expected 2 steps, got %d", got)
	}
}

func TestCounterDebouncesRapidSamples(t *testing.T) {
	counter := NewCounter(DefaultThreshold, DefaultMinInterval)
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	counter.Observe(Sample{X: 30, At: base})
	for i := 1; i <= 5; i++ {
		if counter.Observe(Sample{X: 30, At: base.Add(time.Duration(i*80) * time.Millisecond)}) {
			t.Fatalf("sample %d inside the debounce window must not count", i)
		}
	}
	if got := counter.Steps(); got != 1 {
		t.Fatalf("expected 1 step after a rapid burst, got %d", got)
	}
}

func TestCounterIgnoresWeakSamples(t *testing.T) {
	counter := NewCounter(DefaultThreshold, DefaultMinInterval)
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	if counter.Observe(Sample{X: 3, Y: 4, At: base}) {
		t.Fatal("weak sample must not count as a step")
	}
	if got := counter.Steps(); got != 0 {
		t.Fatalf("expected 0 steps, got %d", got)
	}
}

func TestCounterReset(t *testing.T) {
	counter := NewCounter(DefaultThreshold, DefaultMinInterval)
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	counter.Observe(Sample{X: 30, At: base})
	counter.Reset()
	if got := counter.Steps(); got != 0 {
		t.Fatalf("expected 0 after reset, got %d", got)
	}
	if !counter.Observe(Sample{X: 30, At: base.Add(time.Millisecond)}) {
		t.Fatal("expected debounce history to clear on reset")
	}
}
