package engine

// excitementDriver turns momentary scores into signed deltas against an
// adaptive baseline. The baseline is an EMA of past scores; the delta is
// computed BEFORE the EMA update so it reflects surprise relative to the
// prior baseline. Positive deltas are scaled harder than negative ones.
// Rewarding improvement against the player's own recent baseline (rather
// than absolute level) is what keeps the feedback loop from plateauing
// after an early high or paying out forever for constant skill.
type excitementDriver struct {
	ema    float64
	seeded bool
}

// observe processes one score and returns the scaled excitement delta.
// The first observation seeds the baseline and emits 0.
func (d *excitementDriver) observe(score float64, p Params) float64 {
	if !d.seeded {
		d.ema = score
		d.seeded = true
		return 0
	}
	delta := score - d.ema
	d.ema = p.Alpha*score + (1-p.Alpha)*d.ema
	if delta > 0 {
		return p.Boost * delta
	}
	return p.Decay * delta
}

// invalidate nulls the baseline so it re-seeds on the next observation.
// Histories are untouched; used after live parameter changes.
func (d *excitementDriver) invalidate() {
	d.seeded = false
	d.ema = 0
}
