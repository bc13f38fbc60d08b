package engine

// Chord is a detected chord: a quality name and the root pitch class
type Chord struct {
	Name string `json:"name"` // e.g. "Cm7"
	Root int    `json:"root"` // pitch class 0-11
}

type chordTemplate struct {
	name    string // quality suffix
	degrees []int  // pitch-class offsets from the root
}

// Canonical enumeration order; ties in match quality keep the earlier
// template, so this order must stay fixed.
var chordTemplates = []chordTemplate{
	{"", []int{0, 4, 7}},        // major triad
	{"m", []int{0, 3, 7}},       // minor triad
	{"dim", []int{0, 3, 6}},     // diminished
	{"aug", []int{0, 4, 8}},     // augmented
	{"maj7", []int{0, 4, 7, 11}},
	{"7", []int{0, 4, 7, 10}},   // dominant seventh
	{"m7", []int{0, 3, 7, 10}},
}

const chordHistoryLen = 4

// chordBuffer accumulates near-simultaneous notes. It is flushed when a
// note arrives after the chord window has elapsed; a trailing pause
// leaves the last buffer unflushed until the next note or reset.
type chordBuffer struct {
	startMs int64
	pitches []int
}

func (b *chordBuffer) add(pitch int, tsMs int64) {
	if len(b.pitches) == 0 {
		b.startMs = tsMs
	}
	b.pitches = append(b.pitches, pitch)
}

func (b *chordBuffer) clear() {
	b.pitches = b.pitches[:0]
	b.startMs = 0
}

// detectChord matches the buffer's pitch-class set against the chord
// templates at every root. Triads need at least two member classes
// present, sevenths all four. Returns nil when nothing matches or the
// buffer holds fewer than two distinct pitch classes.
func detectChord(pitches []int) *Chord {
	var present [12]bool
	distinct := 0
	for _, p := range pitches {
		pc := pitchClass(p)
		if !present[pc] {
			present[pc] = true
			distinct++
		}
	}
	if distinct < 2 {
		return nil
	}

	var best *Chord
	bestMatched := 0
	for _, tmpl := range chordTemplates {
		need := 2
		if len(tmpl.degrees) == 4 {
			need = 4
		}
		for root := 0; root < 12; root++ {
			matched := 0
			for _, deg := range tmpl.degrees {
				if present[(root+deg)%12] {
					matched++
				}
			}
			if matched >= need && matched > bestMatched {
				bestMatched = matched
				best = &Chord{
					Name: noteNames[root] + tmpl.name,
					Root: root,
				}
			}
		}
	}
	return best
}

// Canonical root progressions, expressed as pitch-class offsets from the
// first chord's root. The first entry is therefore always 0.
var progressions = [][]int{
	{0, 5, 7, 0},  // I-IV-V-I
	{0, 7, 9, 5},  // I-V-vi-IV
	{0, 9, 2, 7},  // I-vi-ii-V
	{0, 5, 10},    // ii-V-I
	{0, 5, 0, 7},  // I-IV-I-V
	{0, 8, 3, 10}, // vi-IV-I-V
}

// progressionScore compares the detected chord roots against the
// progression table. The first exact-prefix match scores
// prefix-length / progression-length; anything else scores 0. At least
// two chords are required, since a single root matches every entry.
func progressionScore(history []*Chord) float64 {
	var roots []int
	for _, c := range history {
		if c != nil {
			roots = append(roots, c.Root)
		}
	}
	if len(roots) < 2 {
		return 0
	}

	rel := make([]int, len(roots))
	for i, r := range roots {
		rel[i] = ((r - roots[0]) % 12 + 12) % 12
	}

	for _, prog := range progressions {
		if len(rel) > len(prog) {
			continue
		}
		match := true
		for i, v := range rel {
			if prog[i] != v {
				match = false
				break
			}
		}
		if match {
			return float64(len(rel)) / float64(len(prog))
		}
	}
	return 0
}

// String renders the chord for display
func (c *Chord) String() string {
	if c == nil {
		return "—"
	}
	return c.Name
}
