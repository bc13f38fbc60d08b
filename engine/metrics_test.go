package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ioiWindow(intervals ...float64) *window {
	w := newWindow(16)
	for _, v := range intervals {
		w.push(v)
	}
	return w
}

func TestRhythmicConsistencySteady(t *testing.T) {
	assert.Equal(t, 1.0, rhythmicConsistency(ioiWindow(400, 400, 400, 400)))
}

func TestRhythmicConsistencyUndefinedEarly(t *testing.T) {
	assert.Equal(t, 0.0, rhythmicConsistency(ioiWindow()))
	assert.Equal(t, 0.0, rhythmicConsistency(ioiWindow(400)), "one interval is not a rhythm")
}

func TestRhythmicConsistencyErratic(t *testing.T) {
	assert.Equal(t, 0.0, rhythmicConsistency(ioiWindow(100, 900, 150, 700, 80)))
}

func TestRhythmicConsistencySteadyButTooFast(t *testing.T) {
	// perfectly even 60ms intervals: steadiness alone must not score
	score := rhythmicConsistency(ioiWindow(60, 60, 60, 60, 60))
	assert.Less(t, score, 0.2)
}

func TestFastTempoPenaltyRamp(t *testing.T) {
	assert.Equal(t, 0.0, fastTempoPenalty(50))
	assert.Equal(t, 0.5, fastTempoPenalty(100))
	assert.Equal(t, 1.0, fastTempoPenalty(150))
	assert.Equal(t, 1.0, fastTempoPenalty(400))
}

func TestMelodicCoherenceStepwise(t *testing.T) {
	score := melodicCoherence(pitchWindow(60, 62, 64, 65, 67, 69, 71, 72))
	assert.Greater(t, score, 0.6)
}

func TestMelodicCoherenceLeapsPenalized(t *testing.T) {
	smooth := melodicCoherence(pitchWindow(60, 62, 64, 62, 60))
	leapy := melodicCoherence(pitchWindow(60, 72, 50, 70, 48))
	assert.Less(t, leapy, smooth)
}

func TestMelodicCoherenceRepetition(t *testing.T) {
	score := melodicCoherence(pitchWindow(64, 64, 64, 64, 64, 64, 64, 64))
	assert.LessOrEqual(t, score, 0.3)
}

func TestMelodicCoherenceUndefinedEarly(t *testing.T) {
	assert.Equal(t, 0.0, melodicCoherence(pitchWindow()))
	assert.Equal(t, 0.0, melodicCoherence(pitchWindow(60)))
}

func TestPhraseStructureBoundaries(t *testing.T) {
	off := ScaleContext{} // no detected scale, no cadence bonus
	assert.Equal(t, 0.0, phraseStructure(3, 60, off))
	assert.Equal(t, phraseBonusShort, phraseStructure(4, 60, off))
	assert.Equal(t, phraseBonusLong, phraseStructure(8, 60, off))
	assert.Equal(t, phraseBonusShort, phraseStructure(12, 60, off))
	assert.Equal(t, phraseBonusLong, phraseStructure(16, 60, off))
}

func TestPhraseStructureCadence(t *testing.T) {
	inC := ScaleContext{Name: "C major", Root: 0, Fit: 1}
	assert.Equal(t, cadenceBonus, phraseStructure(5, 60, inC), "landing on the root")
	assert.Equal(t, 0.0, phraseStructure(5, 62, inC))

	// boundary plus cadence caps at 1
	assert.Equal(t, 1.0, phraseStructure(8, 72, inC))
}

func TestDynamicVariationTargetBand(t *testing.T) {
	flat := newWindow(16)
	for i := 0; i < 8; i++ {
		flat.push(0.5)
	}
	assert.Equal(t, 0.0, dynamicVariation(flat), "flat velocity is inexpressive")

	expressive := newWindow(16)
	for i := 0; i < 4; i++ {
		expressive.push(0.4)
		expressive.push(0.6667)
	}
	assert.Greater(t, dynamicVariation(expressive), 0.8)

	erratic := newWindow(16)
	for i := 0; i < 4; i++ {
		erratic.push(0.05)
		erratic.push(0.95)
	}
	assert.Less(t, dynamicVariation(erratic), 0.2)
}

func TestAggregateWeightsSumToOne(t *testing.T) {
	all := Metrics{Rhythmic: 1, Melodic: 1, Scale: 1, Harmonic: 1, Phrase: 1, Dynamic: 1}
	assert.InDelta(t, 1.0, aggregate(all), 1e-12)
	assert.Equal(t, 0.0, aggregate(Metrics{}))
}
