package audio

import "fmt"

// ----- MIDI Event ----- //

// EventKind ...
type EventKind uint8

const (
	// EventNoteOn ...
	EventNoteOn EventKind = iota
	// EventNoteOff ...
	EventNoteOff
	// EventProgramChange ...
	EventProgramChange
	// EventTempo carries microseconds per quarter note.
	EventTempo
)

// Event is one interpreted MIDI message. Delta is in MIDI ticks since the
// previous event of the same track.
type Event struct {
	Delta    uint32
	Kind     EventKind
	Channel  uint8
	Key      uint8
	Velocity uint8
	Program  uint8
	Tempo    uint32
}

func (e Event) String() string {
	switch e.Kind {
	case EventNoteOn:
		return fmt.Sprintf("+%d note-on ch=%d key=%d vel=%d", e.Delta, e.Channel, e.Key, e.Velocity)
	case EventNoteOff:
		return fmt.Sprintf("+%d note-off ch=%d key=%d", e.Delta, e.Channel, e.Key)
	case EventProgramChange:
		return fmt.Sprintf("+%d program ch=%d program=%d", e.Delta, e.Channel, e.Program)
	case EventTempo:
		return fmt.Sprintf("+%d tempo %dus/qn", e.Delta, e.Tempo)
	}
	return fmt.Sprintf("+%d event(%d)", e.Delta, e.Kind)
}

// EventHandler receives dispatched channel events.
type EventHandler interface {
	NoteOn(ch uint8, key uint8, velocity uint8)
	NoteOff(ch uint8, key uint8)
	ProgramChange(ch uint8, program uint8)
}

func dispatch(h EventHandler, e *Event) {
	switch e.Kind {
	case EventNoteOn:
		h.NoteOn(e.Channel, e.Key, e.Velocity)
	case EventNoteOff:
		h.NoteOff(e.Channel, e.Key)
	case EventProgramChange:
		h.ProgramChange(e.Channel, e.Program)
	}
}

// decodeMessage interprets a raw MIDI message. ok is false for anything other
// than Note On/Off, Program Change and the Tempo meta event.
func decodeMessage(data []byte) (e Event, ok bool) {
	if len(data) == 0 {
		return e, false
	}
	status := data[0]
	if status == 0xFF {
		// meta: FF 51 [len] tt tt tt
		if len(data) >= 5 && data[1] == 0x51 {
			t := data[len(data)-3:]
			e.Kind = EventTempo
			e.Tempo = uint32(t[0])<<16 | uint32(t[1])<<8 | uint32(t[2])
			return e, e.Tempo > 0
		}
		return e, false
	}
	e.Channel = status & 0x0F
	switch status & 0xF0 {
	case 0x80:
		if len(data) < 3 {
			return e, false
		}
		e.Kind = EventNoteOff
		e.Key = data[1] & 0x7F
		e.Velocity = data[2] & 0x7F
		return e, true
	case 0x90:
		if len(data) < 3 {
			return e, false
		}
		e.Kind = EventNoteOn
		e.Key = data[1] & 0x7F
		e.Velocity = data[2] & 0x7F
		if e.Velocity == 0 {
			e.Kind = EventNoteOff
		}
		return e, true
	case 0xC0:
		if len(data) < 2 {
			return e, false
		}
		e.Kind = EventProgramChange
		e.Program = data[1] & 0x7F
		return e, true
	}
	return e, false
}
