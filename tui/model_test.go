package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/gdavidss/musicolour/config"
	"github.com/gdavidss/musicolour/engine"
	"github.com/gdavidss/musicolour/feedback"
	"github.com/gdavidss/musicolour/midi"
	"github.com/gdavidss/musicolour/theme"
)

func testModel() Model {
	return Model{
		Engine: engine.New(engine.DefaultParams()),
		Acc:    feedback.NewAccumulator(feedback.DefaultDecayRate),
		Theme:  theme.New(theme.Plasma),
		cfg:    config.DefaultConfig(),
		save:   func(f func()) {}, // no disk writes from tests
	}
}

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestStampNoteRebasesAfterReconnect(t *testing.T) {
	var m Model

	assert.Equal(t, int64(0), m.stampNote(0))
	assert.Equal(t, int64(400), m.stampNote(400))

	// device clock restarts; stamps continue from where the session was
	m.tsBase = m.lastTs
	assert.Equal(t, int64(450), m.stampNote(50))
	assert.Equal(t, int64(450), m.stampNote(0))
}

func TestReconnectKeepsTimestampsMonotonic(t *testing.T) {
	m := testModel()

	feed := func(pitch int, ts int64) {
		next, _ := m.Update(NoteMsg{Pitch: pitch, TimestampMs: ts, Velocity: 0.5})
		m = next.(Model)
	}

	for i, ts := range []int64{0, 400, 800, 1200} {
		feed(60+i, ts)
	}

	// the port drops and comes back, restarting the listener clock
	next, _ := m.Update(WatchMsg(midi.WatchEvent{Type: midi.PortDisconnected, Port: "dev"}))
	m = next.(Model)
	next, _ = m.Update(WatchMsg(midi.WatchEvent{Type: midi.PortConnected, Port: "dev"}))
	m = next.(Model)

	for i, ts := range []int64{400, 800, 1200, 1600} {
		feed(64+i, ts)
	}

	// no note was rejected for running backwards
	assert.Equal(t, 8, m.Engine.NotesProcessed())
	// steady 400ms playing stayed steady: no bogus interval entered
	assert.Greater(t, m.last.Metrics.Rhythmic, 0.8)
}

func TestDecayKeysAdjustParams(t *testing.T) {
	m := testModel()
	before := m.Engine.Params().Decay

	next, _ := m.Update(keyMsg('D'))
	m = next.(Model)
	assert.InDelta(t, before+0.1, m.Engine.Params().Decay, 1e-9)

	next, _ = m.Update(keyMsg('d'))
	m = next.(Model)
	assert.InDelta(t, before, m.Engine.Params().Decay, 1e-9)
}

func TestDecayKeyClamped(t *testing.T) {
	m := testModel()

	for i := 0; i < 10; i++ {
		next, _ := m.Update(keyMsg('d'))
		m = next.(Model)
	}
	assert.InDelta(t, 0.1, m.Engine.Params().Decay, 1e-9)
}
