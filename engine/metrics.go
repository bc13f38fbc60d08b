package engine

// Metrics is the fixed record of the six feature scores, each in 0-1
type Metrics struct {
	Rhythmic float64 `json:"rhythmicConsistency"`
	Melodic  float64 `json:"melodicCoherence"`
	Scale    float64 `json:"scaleAdherence"`
	Harmonic float64 `json:"harmonicProgression"`
	Phrase   float64 `json:"phraseStructure"`
	Dynamic  float64 `json:"dynamicVariation"`
}

// Aggregation weights, summing to 1
const (
	weightMelodic  = 0.25
	weightHarmonic = 0.25
	weightRhythmic = 0.20
	weightScale    = 0.15
	weightPhrase   = 0.10
	weightDynamic  = 0.05
)

// aggregate folds the metric record into one musicality score
func aggregate(m Metrics) float64 {
	return weightRhythmic*m.Rhythmic +
		weightMelodic*m.Melodic +
		weightScale*m.Scale +
		weightHarmonic*m.Harmonic +
		weightPhrase*m.Phrase +
		weightDynamic*m.Dynamic
}
