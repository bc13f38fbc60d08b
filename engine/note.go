package engine

// DefaultVelocity is used when the input source carries no velocity
const DefaultVelocity = 0.5

// NoteEvent is a single note onset. Timestamps are monotonic milliseconds;
// velocity is normalized to 0-1.
type NoteEvent struct {
	Pitch       int     `json:"pitch"`
	TimestampMs int64   `json:"timestampMs"`
	Velocity    float64 `json:"velocity"`
}

// Result is the engine's output for one processed note. All fields are
// snapshots; mutating them has no effect on the engine.
type Result struct {
	Score           float64 `json:"score"`
	Metrics         Metrics `json:"metrics"`
	ExcitementDelta float64 `json:"excitementDelta"`
}
