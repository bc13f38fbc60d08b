package engine

// Phrase structure tuning. Phrase boundaries are note-count based, a
// known simplification kept on purpose; switching to rest-based
// segmentation would change scored outcomes.
const (
	phraseLenShort   = 4
	phraseLenLong    = 8
	phraseBonusShort = 0.4
	phraseBonusLong  = 0.6
	cadenceBonus     = 0.5
)

// phraseStructure rewards landing on a phrase boundary and cadencing on
// the detected scale root. Capped at 1.
func phraseStructure(totalNotes, lastPitch int, scale ScaleContext) float64 {
	var score float64
	switch {
	case totalNotes%phraseLenLong == 0:
		score += phraseBonusLong
	case totalNotes%phraseLenShort == 0:
		score += phraseBonusShort
	}
	if scale.Fit > 0 && pitchClass(lastPitch) == scale.Root {
		score += cadenceBonus
	}
	return clamp01(score)
}
