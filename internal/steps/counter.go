package steps

import (
	"math"
	"sync"
	"time"
)

const (
	// DefaultThreshold filters out small movements; only acceleration
	// magnitudes above it count as a step candidate.
	DefaultThreshold = 25.0
	// DefaultMinInterval debounces sensor noise: candidates closer together
	// than this are ignored.
	DefaultMinInterval = 500 * time.Millisecond
)

// Sample is one raw acceleration reading from the device-motion collaborator.
type Sample struct {
	X, Y, Z float64
	At      time.Time
}

func (s Sample) Magnitude() float64 {
	return math.Sqrt(s.X*s.X + s.Y*s.Y + s.Z*s.Z)
}

// Counter turns raw acceleration samples into step increments.
type Counter struct {
	threshold   float64
	minInterval time.Duration

	mu       sync.Mutex
	lastStep time.Time
	steps    int
}

func NewCounter(threshold float64, minInterval time.Duration) *Counter {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if minInterval <= 0 {
		minInterval = DefaultMinInterval
	}
	return &Counter{threshold: threshold, minInterval: minInterval}
}

// Observe feeds one sample and reports whether it was accepted as a step.
func (c *Counter) Observe(s Sample) bool {
	if s.Magnitude() <= c.threshold {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.lastStep.IsZero() && s.At.Sub(c.lastStep) <= c.minInterval {
		return false
	}
	c.lastStep = s.At
	c.steps++
	return true
}

func (c *Counter) Steps() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.steps
}

// Reset clears the accumulated count, e.g. after a day rollover.
func (c *Counter) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.steps = 0
	c.lastStep = time.Time{}
}
