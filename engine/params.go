package engine

// Params holds the live-adjustable tunables. Zero or out-of-range values
// are clamped by sanitize, so a partially filled struct is safe to apply.
type Params struct {
	HistorySize   int   // pitch window capacity
	IOISize       int   // inter-onset interval window capacity
	VelocitySize  int   // velocity window capacity
	ChordWindowMs int64 // near-simultaneous notes within this span form a chord

	Alpha float64 // EMA smoothing constant
	Boost float64 // scale for positive excitement deltas
	Decay float64 // scale for negative excitement deltas (smaller than Boost)
}

// DefaultParams returns the tunables the engine ships with
func DefaultParams() Params {
	return Params{
		HistorySize:   32,
		IOISize:       16,
		VelocitySize:  16,
		ChordWindowMs: 250,
		Alpha:         0.3,
		Boost:         1.6,
		Decay:         0.4,
	}
}

func (p Params) sanitize() Params {
	d := DefaultParams()
	if p.HistorySize < 2 || p.HistorySize > 64 {
		p.HistorySize = d.HistorySize
	}
	if p.IOISize < 2 || p.IOISize > 64 {
		p.IOISize = d.IOISize
	}
	if p.VelocitySize < 2 || p.VelocitySize > 64 {
		p.VelocitySize = d.VelocitySize
	}
	if p.ChordWindowMs < 1 || p.ChordWindowMs > 10000 {
		p.ChordWindowMs = d.ChordWindowMs
	}
	// negated range checks: NaN fails every comparison and falls back
	if !(p.Alpha > 0 && p.Alpha <= 1) {
		p.Alpha = d.Alpha
	}
	if !(p.Boost > 0 && p.Boost <= 100) {
		p.Boost = d.Boost
	}
	if !(p.Decay > 0 && p.Decay <= 100) {
		p.Decay = d.Decay
	}
	return p
}
