// Package engine scores a stream of note onsets for musicality. Six
// feature metrics (rhythmic consistency, melodic coherence, scale
// adherence, harmonic progression, phrase structure, dynamic variation)
// are recomputed over bounded sliding windows on every note, fused into
// one weighted score, and converted into a signed excitement delta
// against an adaptive baseline.
//
// The engine is single-writer and lock-free: exactly one caller drives
// ProcessNote. Every call is O(window size), never O(history). Identical
// input sequences always produce identical outputs.
package engine

import (
	"errors"
	"fmt"
	"math"
)

// Input rejection sentinels. Rejected calls mutate no state.
var (
	ErrInvalidPitch     = errors.New("pitch out of range")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	ErrInvalidVelocity  = errors.New("invalid velocity")
)

// MaxPitch is the highest meaningful pitch index (MIDI range)
const MaxPitch = 127

// Engine holds all scoring state for one session. Create with New; the
// engine exclusively owns its buffers and all returned values are
// snapshots.
type Engine struct {
	params Params

	pitches *intWindow
	iois    *window
	vels    *window

	lastMs   int64
	haveLast bool

	chordBuf  chordBuffer
	chordHist []*Chord

	scale      ScaleContext
	totalNotes int

	metrics Metrics
	score   float64
	driver  excitementDriver
}

// New creates an engine with the given tunables (zero values fall back
// to defaults)
func New(params Params) *Engine {
	p := params.sanitize()
	return &Engine{
		params:  p,
		pitches: newIntWindow(p.HistorySize),
		iois:    newWindow(p.IOISize),
		vels:    newWindow(p.VelocitySize),
	}
}

// ProcessNote ingests one note onset and returns the updated score,
// metric record, and excitement delta. Timestamps must be non-decreasing
// (caller's responsibility). Invalid input is rejected atomically.
func (e *Engine) ProcessNote(pitch int, tsMs int64, velocity float64) (Result, error) {
	if pitch < 0 || pitch > MaxPitch {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidPitch, pitch)
	}
	if tsMs < 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidTimestamp, tsMs)
	}
	if math.IsNaN(velocity) || math.IsInf(velocity, 0) || velocity < 0 || velocity > 1 {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidVelocity, velocity)
	}

	// Ingest. The first event has no prior onset, so no IOI.
	if e.haveLast {
		e.iois.push(float64(tsMs - e.lastMs))
	}
	e.lastMs = tsMs
	e.haveLast = true

	// A note arriving after the chord window elapsed flushes the buffer
	// before joining a fresh one.
	if len(e.chordBuf.pitches) > 0 && tsMs-e.chordBuf.startMs > e.params.ChordWindowMs {
		e.flushChord()
	}
	e.chordBuf.add(pitch, tsMs)

	e.pitches.push(pitch)
	e.vels.push(velocity)
	e.totalNotes++

	// Fixed metric order: later extractors consume earlier outputs
	// (phrase reads the detected scale).
	e.metrics.Rhythmic = rhythmicConsistency(e.iois)
	e.metrics.Melodic = melodicCoherence(e.pitches)
	e.scale, e.metrics.Scale = detectScale(e.pitches)
	e.metrics.Harmonic = progressionScore(e.chordHist)
	e.metrics.Phrase = phraseStructure(e.totalNotes, pitch, e.scale)
	e.metrics.Dynamic = dynamicVariation(e.vels)

	e.score = aggregate(e.metrics)
	delta := e.driver.observe(e.score, e.params)

	return Result{Score: e.score, Metrics: e.metrics, ExcitementDelta: delta}, nil
}

func (e *Engine) flushChord() {
	c := detectChord(e.chordBuf.pitches)
	e.chordHist = append(e.chordHist, c)
	if len(e.chordHist) > chordHistoryLen {
		e.chordHist = e.chordHist[len(e.chordHist)-chordHistoryLen:]
	}
	e.chordBuf.clear()
}

// Reset clears all histories and state back to initial values
func (e *Engine) Reset() {
	e.pitches.clear()
	e.iois.clear()
	e.vels.clear()
	e.lastMs = 0
	e.haveLast = false
	e.chordBuf.clear()
	e.chordHist = nil
	e.scale = ScaleContext{}
	e.totalNotes = 0
	e.metrics = Metrics{}
	e.score = 0
	e.driver.invalidate()
}

// InvalidateBaseline nulls the EMA baseline without touching histories,
// letting it re-adapt after live parameter changes
func (e *Engine) InvalidateBaseline() {
	e.driver.invalidate()
}

// SetParams applies new tunables mid-session. Window capacity changes
// re-bound the existing histories, keeping the newest samples. The EMA
// baseline is left alone; call InvalidateBaseline if the change should
// re-seed it.
func (e *Engine) SetParams(params Params) {
	p := params.sanitize()
	e.pitches.resize(p.HistorySize)
	e.iois.resize(p.IOISize)
	e.vels.resize(p.VelocitySize)
	e.params = p
}

// Params returns the current tunables
func (e *Engine) Params() Params {
	return e.params
}

// Score returns the current musicality score
func (e *Engine) Score() float64 {
	return e.score
}

// LastMetrics returns the most recent metric record
func (e *Engine) LastMetrics() Metrics {
	return e.metrics
}

// Scale returns the current best scale guess
func (e *Engine) Scale() ScaleContext {
	return e.scale
}

// NotesProcessed returns the total note count this session
func (e *Engine) NotesProcessed() int {
	return e.totalNotes
}

// ChordHistory returns a snapshot of the detected chord history, oldest
// first. Entries are nil where a flush matched nothing.
func (e *Engine) ChordHistory() []*Chord {
	out := make([]*Chord, len(e.chordHist))
	for i, c := range e.chordHist {
		if c != nil {
			cc := *c
			out[i] = &cc
		}
	}
	return out
}
