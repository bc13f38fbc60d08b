package engine

// Melodic coherence tuning. Stepwise motion (1-2 semitones) and repeated
// interval motifs score; wide leaps and note repetition are penalized.
// Repetition must be penalized separately from the variety term, which
// would otherwise reward hammering a single key.
const (
	melodySpan     = 8   // how many recent notes to consider
	leapSemitones  = 8   // absolute interval at or above this is a leap
	stepwiseWeight = 0.6 // weight of the stepwise-motion fraction
	varietyWeight  = 0.4 // weight of the motif-variety term
	leapPenalty    = 0.5 // penalty per unit leap fraction
	unisonPenalty  = 0.6 // penalty per unit repeated-note fraction
)

// melodicCoherence scores the interval content of the last melodySpan
// notes. Undefined (0) with fewer than two notes.
func melodicCoherence(pitches *intWindow) float64 {
	n := pitches.len()
	if n < 2 {
		return 0
	}
	start := n - melodySpan
	if start < 0 {
		start = 0
	}

	var total, stepwise, unisons, leaps int
	seen := [128]bool{} // distinct absolute intervals
	distinct := 0
	for i := start + 1; i < n; i++ {
		iv := pitches.at(i) - pitches.at(i-1)
		if iv < 0 {
			iv = -iv
		}
		total++
		switch {
		case iv == 0:
			unisons++
		case iv <= 2:
			stepwise++
		}
		if iv >= leapSemitones {
			leaps++
		}
		if iv < len(seen) && !seen[iv] {
			seen[iv] = true
			distinct++
		}
	}
	if total == 0 {
		return 0
	}

	t := float64(total)
	variety := 1 - float64(distinct)/t
	score := stepwiseWeight*float64(stepwise)/t +
		varietyWeight*variety -
		leapPenalty*float64(leaps)/t -
		unisonPenalty*float64(unisons)/t
	return clamp01(score)
}
