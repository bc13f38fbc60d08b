// Package midi turns MIDI input (live ports or .mid files) into the
// note onsets the scoring engine consumes.
package midi

// Note is a single note onset with a monotonic millisecond timestamp
// and velocity normalized to 0-1
type Note struct {
	Pitch       int     `json:"pitch"`
	TimestampMs int64   `json:"timestampMs"`
	Velocity    float64 `json:"velocity"`
}

// normalizeVelocity maps MIDI velocity 0-127 into 0-1
func normalizeVelocity(v uint8) float64 {
	if v > 127 {
		v = 127
	}
	return float64(v) / 127
}
