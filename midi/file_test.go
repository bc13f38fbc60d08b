package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortNotesByTimeThenPitch(t *testing.T) {
	notes := []Note{
		{Pitch: 64, TimestampMs: 500},
		{Pitch: 60, TimestampMs: 0},
		{Pitch: 67, TimestampMs: 500},
		{Pitch: 62, TimestampMs: 250},
		{Pitch: 60, TimestampMs: 500},
	}
	sortNotes(notes)

	assert.Equal(t, []Note{
		{Pitch: 60, TimestampMs: 0},
		{Pitch: 62, TimestampMs: 250},
		{Pitch: 60, TimestampMs: 500},
		{Pitch: 64, TimestampMs: 500},
		{Pitch: 67, TimestampMs: 500},
	}, notes)
}

func TestNormalizeVelocity(t *testing.T) {
	assert.Equal(t, 0.0, normalizeVelocity(0))
	assert.Equal(t, 1.0, normalizeVelocity(127))
	assert.InDelta(t, 0.5, normalizeVelocity(64), 0.01)
}
