package engine

import "fmt"

// ScaleContext is the engine's current best scale guess, recomputed on
// every note and consumed by the phrase metric and external display.
type ScaleContext struct {
	Name string  `json:"name"` // e.g. "C major"
	Root int     `json:"root"` // pitch class 0-11
	Fit  float64 `json:"fit"`  // weighted fraction of history on scale members
}

type scaleTemplate struct {
	name    string
	weight  float64 // discount for unselective templates
	degrees []int   // pitch-class offsets from the root
}

// chromaticWeight keeps the all-member chromatic template from trivially
// winning every match: it covers any histogram completely, so at full
// weight scale adherence would be a constant 1
const chromaticWeight = 0.5

// Enumeration order is canonical: it breaks fit ties, so it must not
// change between runs. Chromatic goes last so named scales win ties.
var scaleTemplates = []scaleTemplate{
	{"major", 1, []int{0, 2, 4, 5, 7, 9, 11}},
	{"natural minor", 1, []int{0, 2, 3, 5, 7, 8, 10}},
	{"harmonic minor", 1, []int{0, 2, 3, 5, 7, 8, 11}},
	{"pentatonic major", 1, []int{0, 2, 4, 7, 9}},
	{"pentatonic minor", 1, []int{0, 3, 5, 7, 10}},
	{"blues", 1, []int{0, 3, 5, 6, 7, 10}},
	{"chromatic", chromaticWeight, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}},
}

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// detectScale finds the (template, root) pair whose members cover the
// most of the pitch-class histogram. Returns the winning context and the
// adherence score (best weighted fit / note count).
func detectScale(pitches *intWindow) (ScaleContext, float64) {
	n := pitches.len()
	if n == 0 {
		return ScaleContext{}, 0
	}

	var hist [12]int
	for i := 0; i < n; i++ {
		hist[pitchClass(pitches.at(i))]++
	}

	best := ScaleContext{}
	bestFit := -1.0
	for _, tmpl := range scaleTemplates {
		for root := 0; root < 12; root++ {
			covered := 0
			for _, deg := range tmpl.degrees {
				covered += hist[(root+deg)%12]
			}
			fit := tmpl.weight * float64(covered)
			if fit > bestFit {
				bestFit = fit
				best = ScaleContext{
					Name: fmt.Sprintf("%s %s", noteNames[root], tmpl.name),
					Root: root,
				}
			}
		}
	}

	score := clamp01(bestFit / float64(n))
	best.Fit = score
	return best, score
}
