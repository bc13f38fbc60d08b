package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/bep/debounce"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gdavidss/musicolour/config"
	"github.com/gdavidss/musicolour/debug"
	"github.com/gdavidss/musicolour/engine"
	"github.com/gdavidss/musicolour/feedback"
	"github.com/gdavidss/musicolour/midi"
	"github.com/gdavidss/musicolour/theme"
	"github.com/gdavidss/musicolour/widgets"
)

const meterWidth = 40

type Model struct {
	Engine  *engine.Engine
	Acc     *feedback.Accumulator
	Watcher *midi.Watcher
	Theme   *theme.Theme

	cfg  *config.Config
	save func(f func())

	listener *midi.Listener
	port     string

	// listener clocks restart at zero on reconnect; tsBase re-maps them
	// onto one continuous session clock
	tsBase int64
	lastTs int64

	last      engine.Result
	notesSeen int
	quitting  bool
}

type NoteMsg midi.Note

type WatchMsg midi.WatchEvent

type tickMsg time.Time

func NewModel(e *engine.Engine, acc *feedback.Accumulator, watcher *midi.Watcher, cfg *config.Config, th *theme.Theme) Model {
	return Model{
		Engine:  e,
		Acc:     acc,
		Watcher: watcher,
		Theme:   th,
		cfg:     cfg,
		save:    debounce.New(time.Second),
	}
}

func listenForNotes(l *midi.Listener) tea.Cmd {
	return func() tea.Msg {
		n, ok := <-l.Notes()
		if !ok {
			return nil
		}
		return NoteMsg(n)
	}
}

func listenForWatch(w *midi.Watcher) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-w.Events()
		if !ok {
			return nil
		}
		return WatchMsg(ev)
	}
}

func tick() tea.Cmd {
	// redraw cadence so the decaying excitement meter moves between notes
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(listenForWatch(m.Watcher), tick())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case NoteMsg:
		res, err := m.Engine.ProcessNote(msg.Pitch, m.stampNote(msg.TimestampMs), msg.Velocity)
		if err != nil {
			debug.Log("engine", "rejected note: %v", err)
		} else {
			m.last = res
			m.notesSeen++
			m.Acc.Add(res.ExcitementDelta)
		}
		if m.listener != nil {
			return m, listenForNotes(m.listener)
		}
		return m, nil

	case WatchMsg:
		ev := midi.WatchEvent(msg)
		switch ev.Type {
		case midi.PortConnected:
			m.listener = ev.Listener
			m.port = ev.Port
			m.tsBase = m.lastTs
			debug.Log("midi", "connected %s", ev.Port)
			return m, tea.Batch(listenForNotes(m.listener), listenForWatch(m.Watcher))
		case midi.PortDisconnected:
			m.listener = nil
			m.port = ""
			debug.Log("midi", "disconnected %s", ev.Port)
		}
		return m, listenForWatch(m.Watcher)

	case tickMsg:
		return m, tick()
	}

	return m, nil
}

// stampNote maps a listener-relative timestamp onto the session clock.
// The engine requires non-decreasing timestamps, so the stamp never runs
// backwards even if the device clock does.
func (m *Model) stampNote(listenerMs int64) int64 {
	ts := m.tsBase + listenerMs
	if ts < m.lastTs {
		ts = m.lastTs
	}
	m.lastTs = ts
	return ts
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.Engine.Params()
	changed := false
	reseed := false

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "r":
		m.Engine.Reset()
		m.Acc.Reset()
		m.last = engine.Result{}
		m.notesSeen = 0

	case "b":
		m.Engine.InvalidateBaseline()

	case "a":
		p.Alpha -= 0.05
		changed, reseed = true, true
	case "A":
		p.Alpha += 0.05
		changed, reseed = true, true

	case "[":
		p.ChordWindowMs -= 25
		changed = true
	case "]":
		p.ChordWindowMs += 25
		changed = true

	case "-", "_":
		p.Boost -= 0.1
		changed = true
	case "+", "=":
		p.Boost += 0.1
		changed = true

	case "d":
		p.Decay -= 0.1
		changed = true
	case "D":
		p.Decay += 0.1
		changed = true
	}

	if changed {
		p = clampParams(p)
		m.Engine.SetParams(p)
		if reseed {
			// smoothing change: let the baseline re-adapt
			m.Engine.InvalidateBaseline()
		}
		m.cfg.SetParams(m.Engine.Params())
		cfg := m.cfg
		m.save(func() {
			if err := cfg.Save(); err != nil {
				debug.Log("config", "save failed: %v", err)
			}
		})
	}

	return m, nil
}

func clampParams(p engine.Params) engine.Params {
	if p.Alpha < 0.05 {
		p.Alpha = 0.05
	}
	if p.Alpha > 0.95 {
		p.Alpha = 0.95
	}
	if p.ChordWindowMs < 50 {
		p.ChordWindowMs = 50
	}
	if p.ChordWindowMs > 1000 {
		p.ChordWindowMs = 1000
	}
	if p.Boost < 0.1 {
		p.Boost = 0.1
	}
	if p.Boost > 5 {
		p.Boost = 5
	}
	if p.Decay < 0.1 {
		p.Decay = 0.1
	}
	if p.Decay > 2 {
		p.Decay = 2
	}
	return p
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent())
	fgStyle := lipgloss.NewStyle().Foreground(m.Theme.FG())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())

	portStatus := "waiting for MIDI input..."
	if m.port != "" {
		portStatus = m.port
	}
	header := headerStyle.Render(fmt.Sprintf("musicolour  %s  notes:%d", portStatus, m.notesSeen))

	level := m.Acc.Level()
	metrics := m.last.Metrics

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")

	out.WriteString(widgets.RenderMeter("excitement", level, meterWidth, m.Theme.Meter(level)))
	out.WriteString("\n")
	out.WriteString(widgets.RenderMeter("score", m.last.Score, meterWidth, m.Theme.Meter(m.last.Score)))
	out.WriteString("\n\n")

	for _, row := range []struct {
		label string
		value float64
	}{
		{"rhythm", metrics.Rhythmic},
		{"melody", metrics.Melodic},
		{"scale", metrics.Scale},
		{"harmony", metrics.Harmonic},
		{"phrase", metrics.Phrase},
		{"dynamics", metrics.Dynamic},
	} {
		out.WriteString(widgets.RenderMeter(row.label, row.value, meterWidth, m.Theme.Meter(row.value)))
		out.WriteString("\n")
	}

	out.WriteString("\n")
	scale := m.Engine.Scale()
	scaleName := "—"
	if scale.Name != "" {
		scaleName = scale.Name
	}
	out.WriteString(fgStyle.Render(fmt.Sprintf("scale: %-18s chords: %s", scaleName, chordLine(m.Engine.ChordHistory()))))
	out.WriteString("\n\n")

	p := m.Engine.Params()
	out.WriteString(dimStyle.Render(fmt.Sprintf("alpha:%.2f  boost:%.1f  decay:%.1f  chord window:%dms", p.Alpha, p.Boost, p.Decay, p.ChordWindowMs)))
	out.WriteString("\n\n")

	out.WriteString(dimStyle.Render(widgets.RenderKeyHelp([]widgets.KeySection{
		{Keys: []widgets.KeyBinding{
			{Key: "r", Desc: "reset session"},
			{Key: "b", Desc: "re-seed baseline"},
			{Key: "a / A", Desc: "EMA alpha -/+"},
			{Key: "[ / ]", Desc: "chord window -/+"},
			{Key: "- / +", Desc: "boost -/+"},
			{Key: "d / D", Desc: "decay -/+"},
			{Key: "q", Desc: "quit"},
		}},
	})))

	return out.String()
}

func chordLine(history []*engine.Chord) string {
	if len(history) == 0 {
		return "—"
	}
	parts := make([]string, len(history))
	for i, c := range history {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
