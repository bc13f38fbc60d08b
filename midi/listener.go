package midi

import (
	"fmt"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver
)

// Listener opens a MIDI input port and streams note onsets
type Listener struct {
	portName string
	stopFunc func()
	notes    chan Note
}

// ListPorts returns the names of all available MIDI input ports
func ListPorts() []string {
	ins := gomidi.GetInPorts()
	names := make([]string, len(ins))
	for i, in := range ins {
		names[i] = in.String()
	}
	return names
}

// NewListener opens the named input port (input only). NoteOn messages
// with nonzero velocity become Notes; everything else is ignored.
func NewListener(portName string) (*Listener, error) {
	var inPort drivers.In
	for _, in := range gomidi.GetInPorts() {
		if in.String() == portName {
			inPort = in
			break
		}
	}
	if inPort == nil {
		return nil, fmt.Errorf("midi input %q not found", portName)
	}

	l := &Listener{
		portName: portName,
		notes:    make(chan Note, 32),
	}

	stop, err := gomidi.ListenTo(inPort, func(msg gomidi.Message, timestampms int32) {
		var channel, note, velocity uint8
		if msg.GetNoteOn(&channel, &note, &velocity) && velocity > 0 {
			select {
			case l.notes <- Note{
				Pitch:       int(note),
				TimestampMs: int64(timestampms),
				Velocity:    normalizeVelocity(velocity),
			}:
			default:
			}
		}
	})
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	l.stopFunc = stop

	return l, nil
}

// Port returns the name of the port this listener is attached to
func (l *Listener) Port() string {
	return l.portName
}

// Notes returns the stream of incoming note onsets
func (l *Listener) Notes() <-chan Note {
	return l.notes
}

func (l *Listener) Close() error {
	if l.stopFunc != nil {
		l.stopFunc()
	}
	close(l.notes)
	return nil
}
