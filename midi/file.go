package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"gitlab.com/gomidi/midi/v2/smf"
)

// ReadFile parses a standard MIDI file into a time-ordered slice of
// note onsets across all tracks.
func ReadFile(path string) (notes []Note, e error) {
	// the smf parser can panic on malformed files
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading midi file: %w", err)
	}

	s, err := smf.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing midi file: %w", err)
	}

	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			if event.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0 {
				notes = append(notes, Note{
					Pitch:       int(key),
					TimestampMs: s.TimeAt(absTicks) / 1000, // TimeAt is microseconds
					Velocity:    normalizeVelocity(velocity),
				})
			}
		}
	}

	sortNotes(notes)
	return notes, nil
}

// sortNotes orders notes by onset time, then pitch. The pitch tiebreak
// keeps multi-track files deterministic.
func sortNotes(notes []Note) {
	sort.Slice(notes, func(i, j int) bool {
		if notes[i].TimestampMs != notes[j].TimestampMs {
			return notes[i].TimestampMs < notes[j].TimestampMs
		}
		return notes[i].Pitch < notes[j].Pitch
	})
}
