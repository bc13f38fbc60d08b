package midi

import (
	"context"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// WatchEvent is emitted when the watched input port connects/disconnects
type WatchEvent struct {
	Type     WatchEventType
	Listener *Listener // set on connect
	Port     string
}

type WatchEventType int

const (
	PortConnected WatchEventType = iota
	PortDisconnected
)

// Watcher handles hot-plug detection of the MIDI input. If a preferred
// port name is set it waits for that port; otherwise it takes the first
// input that shows up.
type Watcher struct {
	preferred string
	current   *Listener
	events    chan WatchEvent
	pollRate  time.Duration
}

// NewWatcher creates a watcher for the preferred port name ("" = any)
func NewWatcher(preferred string) *Watcher {
	return &Watcher{
		preferred: preferred,
		events:    make(chan WatchEvent, 16),
		pollRate:  time.Second,
	}
}

// Events returns the channel of connect/disconnect events
func (w *Watcher) Events() <-chan WatchEvent {
	return w.events
}

// Run starts the polling loop (blocking - run in goroutine)
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.pollRate)
	defer ticker.Stop()

	w.scan()

	for {
		select {
		case <-ctx.Done():
			if w.current != nil {
				w.current.Close()
				w.current = nil
			}
			close(w.events)
			return
		case <-ticker.C:
			w.scan()
		}
	}
}

func (w *Watcher) scan() {
	// Get current MIDI ports with timeout (CoreMIDI can hang)
	ch := make(chan []drivers.In, 1)
	go func() {
		ch <- gomidi.GetInPorts()
	}()

	var inPorts []drivers.In
	select {
	case inPorts = <-ch:
	case <-time.After(3 * time.Second):
		// MIDI subsystem is hung - skip this scan
		return
	}

	target := ""
	for _, in := range inPorts {
		name := in.String()
		if w.preferred == "" || name == w.preferred {
			target = name
			break
		}
	}

	// Disconnect: the port we were listening to is gone
	if w.current != nil {
		stillHere := false
		for _, in := range inPorts {
			if in.String() == w.current.Port() {
				stillHere = true
				break
			}
		}
		if !stillHere {
			port := w.current.Port()
			w.current.Close()
			w.current = nil
			w.events <- WatchEvent{Type: PortDisconnected, Port: port}
		}
	}

	// Connect: a usable port appeared and we have no listener
	if w.current == nil && target != "" {
		l, err := NewListener(target)
		if err != nil {
			return
		}
		w.current = l
		w.events <- WatchEvent{Type: PortConnected, Listener: l, Port: target}
	}
}
