package audio

import "testing"

func TestDecodeMessage(t *testing.T) {
	cases := []struct {
		data     []byte
		expected Event
		ok       bool
	}{
		{[]byte{0x93, 60, 100}, Event{Kind: EventNoteOn, Channel: 3, Key: 60, Velocity: 100}, true},
		{[]byte{0x93, 60, 0}, Event{Kind: EventNoteOff, Channel: 3, Key: 60}, true},
		{[]byte{0x8F, 61, 64}, Event{Kind: EventNoteOff, Channel: 15, Key: 61, Velocity: 64}, true},
		{[]byte{0xC1, 33}, Event{Kind: EventProgramChange, Channel: 1, Program: 33}, true},
		{[]byte{0xFF, 0x51, 0x03, 0x0F, 0x42, 0x40}, Event{Kind: EventTempo, Tempo: 1000000}, true},
		{[]byte{0xFF, 0x51, 0x03, 0x00, 0x00, 0x00}, Event{Kind: EventTempo}, false},
		{[]byte{0xB0, 7, 100}, Event{Channel: 0}, false},
		{[]byte{0xFF, 0x2F, 0x00}, Event{}, false},
		{[]byte{0x90, 60}, Event{}, false},
		{nil, Event{}, false},
	}
	for _, c := range cases {
		e, ok := decodeMessage(c.data)
		expectEqual(t, ok, c.ok)
		if ok {
			expectEqual(t, e, c.expected)
		}
	}
}

type countingHandler struct {
	on, off, program int
}

func (h *countingHandler) NoteOn(ch uint8, key uint8, velocity uint8) { h.on++ }
func (h *countingHandler) NoteOff(ch uint8, key uint8)                { h.off++ }
func (h *countingHandler) ProgramChange(ch uint8, program uint8)      { h.program++ }

func TestDispatch(t *testing.T) {
	h := &countingHandler{}
	dispatch(h, &Event{Kind: EventNoteOn})
	dispatch(h, &Event{Kind: EventNoteOff})
	dispatch(h, &Event{Kind: EventProgramChange})
	dispatch(h, &Event{Kind: EventTempo, Tempo: 1})
	expectEqual(t, *h, countingHandler{on: 1, off: 1, program: 1})
}

func TestEventString(t *testing.T) {
	expectEqual(t, Event{Delta: 3, Kind: EventNoteOn, Channel: 1, Key: 60, Velocity: 9}.String(), "+3 note-on ch=1 key=60 vel=9")
	expectEqual(t, Event{Kind: EventTempo, Tempo: 500000}.String(), "+0 tempo 500000us/qn")
}
