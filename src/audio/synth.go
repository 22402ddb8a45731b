package audio

import (
	"log"
)

const (
	numChannels = 16
	// percussionChannel is General MIDI channel 10, 0-indexed. Channel index 10
	// (GM channel 11) plays normally.
	percussionChannel = 9
	unusedSlot        = 0xFF
)

// ----- Channel ----- //

type channel struct {
	program uint8
	slots   [128]uint8 // voice slot per key, unusedSlot when unbound
	banks   [128]uint8 // bank the slot belongs to
}

func (c *channel) reset() {
	c.program = 0
	for i := range c.slots {
		c.slots[i] = unusedSlot
		c.banks[i] = 0
	}
}

// ----- Synth ----- //

// Options ...
type Options struct {
	// DropExcessNotes logs and ignores a Note On when the instrument's bank is
	// full. When false, exhaustion panics.
	DropExcessNotes bool
}

// Synth binds MIDI channels and keys to voices and mixes every active voice.
// It is not safe for concurrent use.
type Synth struct {
	opts     Options
	channels [numChannels]channel
	banks    [numInstruments]*bank
	bus      ampAdder
}

var _ EventHandler = (*Synth)(nil)

// NewSynth allocates every voice up front; nothing allocates after this.
func NewSynth(opts Options) *Synth {
	s := &Synth{opts: opts}
	for i := range s.banks {
		s.banks[i] = newBank(&instruments[i])
	}
	s.bus.banks = s.banks[:]
	for i := range s.channels {
		s.channels[i].reset()
	}
	return s
}

// NoteOn ...
func (s *Synth) NoteOn(ch uint8, key uint8, velocity uint8) {
	if ch >= numChannels || key > 127 || ch == percussionChannel {
		return
	}
	if velocity == 0 {
		s.NoteOff(ch, key)
		return
	}
	c := &s.channels[ch]
	inst := uint8(programToInstrument(c.program))
	b := s.banks[inst]
	if slot := c.slots[key]; slot != unusedSlot {
		if c.banks[key] == inst && b.pool.IsActive(int(slot)) && b.voices[slot].key == key {
			b.voices[slot].initWithNote(key, velocity)
			return
		}
		s.NoteOff(ch, key)
	}
	if b.pool.Full() && s.opts.DropExcessNotes {
		log.Printf("[WARN] %s: all %d voices in use, dropped note %d\n", b.params.name, b.pool.Cap(), key)
		return
	}
	slot := b.pool.Alloc()
	b.voices[slot].initWithNote(key, velocity)
	c.slots[key] = uint8(slot)
	c.banks[key] = inst
}

// NoteOff releases the voice bound to (ch, key). The voice keeps sounding until
// its release ends; only the binding is cleared here.
func (s *Synth) NoteOff(ch uint8, key uint8) {
	if ch >= numChannels || key > 127 {
		return
	}
	c := &s.channels[ch]
	slot := c.slots[key]
	if slot == unusedSlot {
		return
	}
	b := s.banks[c.banks[key]]
	if b.pool.IsActive(int(slot)) {
		b.voices[slot].TriggerNoteOff()
	}
	c.slots[key] = unusedSlot
}

// ProgramChange ...
func (s *Synth) ProgramChange(ch uint8, program uint8) {
	if ch >= numChannels {
		return
	}
	s.channels[ch].program = program & 0x7F
}

// AllNotesOff releases every sounding voice and clears all bindings.
func (s *Synth) AllNotesOff() {
	for ch := range s.channels {
		c := &s.channels[ch]
		for key := range c.slots {
			c.slots[key] = unusedSlot
		}
	}
	for _, b := range s.banks {
		b.releaseAll()
	}
}

// Reset silences everything immediately and restores default programs.
func (s *Synth) Reset() {
	for i := range s.channels {
		s.channels[i].reset()
	}
	for _, b := range s.banks {
		b.reset()
	}
}

// Next produces one clipped output sample.
func (s *Synth) Next() Sample {
	return s.bus.next()
}

// Idle reports whether no voice is sounding.
func (s *Synth) Idle() bool {
	return s.bus.activeVoices() == 0
}

// Status ...
func (s *Synth) Status() map[string]int {
	status := make(map[string]int, len(s.banks))
	for _, b := range s.banks {
		status[b.params.name] = b.pool.Len()
	}
	return status
}
