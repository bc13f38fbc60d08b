package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectChordTriads(t *testing.T) {
	cases := []struct {
		name    string
		pitches []int
		want    string
	}{
		{"major", []int{60, 64, 67}, "C"},
		{"minor", []int{60, 63, 67}, "Cm"},
		{"diminished", []int{62, 65, 68}, "Ddim"},
		{"augmented across octaves", []int{60, 76, 92}, "Caug"},
		{"transposed major", []int{67, 71, 74}, "G"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := detectChord(tc.pitches)
			require.NotNil(t, c)
			assert.Equal(t, tc.want, c.Name)
		})
	}
}

func TestDetectChordSevenths(t *testing.T) {
	c := detectChord([]int{60, 64, 67, 70})
	require.NotNil(t, c)
	assert.Equal(t, "C7", c.Name)

	c = detectChord([]int{57, 60, 64, 67})
	require.NotNil(t, c)
	assert.Equal(t, "Am7", c.Name)
}

func TestDetectChordTwoOfThree(t *testing.T) {
	// a bare fifth matches a triad on two of three members
	c := detectChord([]int{60, 67})
	require.NotNil(t, c)
	assert.Equal(t, 0, c.Root)
}

func TestDetectChordNothing(t *testing.T) {
	assert.Nil(t, detectChord([]int{60}), "single note is no chord")
	assert.Nil(t, detectChord([]int{60, 72}), "octave doubling is no chord")
	assert.Nil(t, detectChord(nil))
}

func chordSeq(roots ...int) []*Chord {
	out := make([]*Chord, len(roots))
	for i, r := range roots {
		out[i] = &Chord{Name: noteNames[r], Root: r}
	}
	return out
}

func TestProgressionFullMatch(t *testing.T) {
	// C F G C is I-IV-V-I
	assert.Equal(t, 1.0, progressionScore(chordSeq(0, 5, 7, 0)))
}

func TestProgressionPrefixMatch(t *testing.T) {
	// C F is a half-played I-IV-V-I
	assert.Equal(t, 0.5, progressionScore(chordSeq(0, 5)))
}

func TestProgressionTranspositionInvariant(t *testing.T) {
	// G C is the same movement as C F, a fourth up from the first root
	assert.Equal(t, progressionScore(chordSeq(0, 5)), progressionScore(chordSeq(7, 0)))
}

func TestProgressionNoMatch(t *testing.T) {
	// C C# is no canonical movement
	assert.Equal(t, 0.0, progressionScore(chordSeq(0, 1)))
}

func TestProgressionIgnoresNilsAndNeedsTwo(t *testing.T) {
	assert.Equal(t, 0.0, progressionScore(nil))
	assert.Equal(t, 0.0, progressionScore([]*Chord{nil, nil}))
	assert.Equal(t, 0.0, progressionScore([]*Chord{nil, {Name: "C", Root: 0}}),
		"a single detected chord matches nothing yet")

	withGap := []*Chord{{Name: "C", Root: 0}, nil, {Name: "F", Root: 5}}
	assert.Equal(t, 0.5, progressionScore(withGap))
}

func TestChordBufferFlushOnLateNote(t *testing.T) {
	e := New(DefaultParams())

	// three notes inside the chord window, then one far outside it
	for i, p := range []int{60, 64, 67} {
		_, err := e.ProcessNote(p, int64(i*40), DefaultVelocity)
		require.NoError(t, err)
	}
	_, err := e.ProcessNote(65, 2000, DefaultVelocity)
	require.NoError(t, err)

	hist := e.ChordHistory()
	require.Len(t, hist, 1)
	require.NotNil(t, hist[0])
	assert.Equal(t, "C", hist[0].Name)
}

func TestChordHistoryBounded(t *testing.T) {
	e := New(DefaultParams())
	ts := int64(0)
	// eight separated triads: history must keep only the last four
	for i := 0; i < 8; i++ {
		root := 60 + i
		for j, off := range []int{0, 4, 7} {
			_, err := e.ProcessNote(root+off, ts+int64(j*40), DefaultVelocity)
			require.NoError(t, err)
		}
		ts += 2000
	}
	assert.LessOrEqual(t, len(e.ChordHistory()), 4)
}
