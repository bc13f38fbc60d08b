package engine

// Rhythmic consistency tuning. Steadiness is measured as the coefficient
// of variation of the IOI window; implausibly fast playing is penalized
// even when perfectly steady, so mechanical mashing can't score.
const (
	rhythmCVCeiling = 0.35  // CV at or above this scores 0
	fastIOIFloorMs  = 50.0  // mean IOI at or below this scores 0
	fastIOIFullMs   = 150.0 // mean IOI at or above this takes no penalty
)

// rhythmicConsistency maps IOI steadiness to 0-1. Undefined (0) until
// there are at least two intervals.
func rhythmicConsistency(iois *window) float64 {
	if iois.len() < 2 {
		return 0
	}
	mean := iois.mean()
	if mean <= 0 {
		return 0
	}
	cv := iois.stddev() / mean
	base := clamp01(1 - cv/rhythmCVCeiling)
	return base * fastTempoPenalty(mean)
}

// fastTempoPenalty ramps from 0 at fastIOIFloorMs to 1 at fastIOIFullMs
func fastTempoPenalty(meanIOI float64) float64 {
	return clamp01((meanIOI - fastIOIFloorMs) / (fastIOIFullMs - fastIOIFloorMs))
}
