package audio

import (
	"testing"
)

func expectEqual(t *testing.T, actual, expected interface{}) {
	t.Helper()
	if actual != expected {
		t.Errorf("expected %v, but got: %v", expected, actual)
	}
}

func expectNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("expected no error, but got: %v", err)
	}
}

func expectPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()
	f()
}

// constUnit outputs the same sample forever.
type constUnit struct {
	value Sample
}

func (c *constUnit) Next() Sample    { return c.value }
func (c *constUnit) HasNext() bool   { return true }
func (c *constUnit) TriggerNoteOff() {}

// recorder collects dispatched events with the tick they arrived on.
type recorder struct {
	tick   int
	events []recorded
}

type recorded struct {
	tick int
	e    Event
}

func (r *recorder) NoteOn(ch uint8, key uint8, velocity uint8) {
	r.events = append(r.events, recorded{r.tick, Event{Kind: EventNoteOn, Channel: ch, Key: key, Velocity: velocity}})
}

func (r *recorder) NoteOff(ch uint8, key uint8) {
	r.events = append(r.events, recorded{r.tick, Event{Kind: EventNoteOff, Channel: ch, Key: key}})
}

func (r *recorder) ProgramChange(ch uint8, program uint8) {
	r.events = append(r.events, recorded{r.tick, Event{Kind: EventProgramChange, Channel: ch, Program: program}})
}
