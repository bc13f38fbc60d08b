// Package feedback owns the excitement accumulator the engine drives.
// The engine only emits per-event deltas; this side adds them up, clamps
// to 0-1, and drains the level over wall-clock time.
package feedback

import (
	"context"
	"sync"
	"time"
)

// DefaultDecayRate drains a full meter in about eight seconds of silence
const DefaultDecayRate = 0.12

const drainInterval = 50 * time.Millisecond

// Accumulator is the time-decaying excitement level in 0-1. Unlike the
// engine it is shared between the note-driving goroutine and the decay
// loop, so it locks.
type Accumulator struct {
	mu    sync.Mutex
	level float64
	rate  float64 // units drained per second
}

// NewAccumulator creates an accumulator draining at rate units/second
func NewAccumulator(rate float64) *Accumulator {
	if rate <= 0 {
		rate = DefaultDecayRate
	}
	return &Accumulator{rate: rate}
}

// Add applies a signed excitement delta, clamping the level to 0-1
func (a *Accumulator) Add(delta float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.level = clamp01(a.level + delta)
}

// Level returns the current excitement level
func (a *Accumulator) Level() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.level
}

// SetRate adjusts the drain rate mid-session
func (a *Accumulator) SetRate(rate float64) {
	if rate <= 0 {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.rate = rate
}

// Reset drops the level to zero
func (a *Accumulator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.level = 0
}

// Run drains the level over wall-clock time until the context is
// cancelled (blocking - run in goroutine)
func (a *Accumulator) Run(ctx context.Context) {
	ticker := time.NewTicker(drainInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			a.mu.Lock()
			a.level = clamp01(a.level - a.rate*dt)
			a.mu.Unlock()
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
