package audio

import (
	"fmt"
	"math/bits"
)

// defaultTempo is 120 BPM.
const defaultTempo = 500000 // us per quarter note

// ----- MIDI Time ----- //

/*
  MIDI ticks per output sample = ticksPerQuarter * 1e6 / (tempo * sampleRate),
  held as rateInt + rateRem/rateDen.
*/
type midiTime struct {
	tempo           uint32 // us per quarter note
	ticksPerQuarter uint32
	rateInt         uint64
	rateRem         uint64
	rateDen         uint64
}

func (t *midiTime) setTempo(tempo uint32) {
	num := uint64(t.ticksPerQuarter) * 1000000
	den := uint64(tempo) * sampleRate
	t.tempo = tempo
	t.rateInt = num / den
	t.rateRem = num % den
	t.rateDen = den
}

// ----- Track Cursor ----- //

type trackCursor struct {
	active    bool
	index     int
	time      uint64 // MIDI ticks elapsed
	rem       uint64 // fraction of a tick over midiTime.rateDen
	next      uint64 // tick time of the pending event
	lastDelta uint32
}

func (c *trackCursor) advance(t *midiTime) {
	c.time += t.rateInt
	c.rem += t.rateRem
	if c.rem >= t.rateDen {
		c.rem -= t.rateDen
		c.time++
	}
}

// rescale converts the fractional remainder from one denominator to another.
func (c *trackCursor) rescale(from, to uint64) {
	hi, lo := bits.Mul64(c.rem, to)
	c.rem, _ = bits.Div64(hi, lo, from)
}

// ----- Sequencer ----- //

// Song ...
type Song struct {
	TicksPerQuarter uint16
	Tracks          [][]Event
}

// Sequencer fires song events on the output sample clock: call Tick once per
// output sample, before pulling the sample.
type Sequencer struct {
	song    *Song
	handler EventHandler
	time    midiTime
	tracks  []trackCursor
}

// NewSequencer ...
func NewSequencer(song *Song, handler EventHandler) *Sequencer {
	if song.TicksPerQuarter == 0 {
		panic(fmt.Errorf("song has no time division"))
	}
	s := &Sequencer{
		song:    song,
		handler: handler,
		tracks:  make([]trackCursor, len(song.Tracks)),
	}
	s.Rewind()
	return s
}

// Rewind moves every track back to its first event at the default tempo.
func (s *Sequencer) Rewind() {
	s.time.ticksPerQuarter = uint32(s.song.TicksPerQuarter)
	s.time.setTempo(defaultTempo)
	for i, events := range s.song.Tracks {
		c := &s.tracks[i]
		*c = trackCursor{active: len(events) > 0}
		if c.active {
			c.lastDelta = events[0].Delta
			c.next = uint64(c.lastDelta)
		}
	}
}

// Tick dispatches every event that is due and advances each track by one sample.
func (s *Sequencer) Tick() {
	for i := range s.tracks {
		c := &s.tracks[i]
		if !c.active {
			continue
		}
		events := s.song.Tracks[i]
		for c.time >= c.next {
			s.fire(&events[c.index])
			c.index++
			if c.index >= len(events) {
				c.active = false
				break
			}
			c.lastDelta = events[c.index].Delta
			c.next += uint64(c.lastDelta)
		}
		if c.active {
			c.advance(&s.time)
		}
	}
}

func (s *Sequencer) fire(e *Event) {
	if e.Kind == EventTempo {
		s.setTempo(e.Tempo)
		return
	}
	dispatch(s.handler, e)
}

func (s *Sequencer) setTempo(tempo uint32) {
	if tempo == 0 || tempo == s.time.tempo {
		return
	}
	from := s.time.rateDen
	s.time.setTempo(tempo)
	for i := range s.tracks {
		s.tracks[i].rescale(from, s.time.rateDen)
	}
}

// Done reports whether every track has run out of events.
func (s *Sequencer) Done() bool {
	for i := range s.tracks {
		if s.tracks[i].active {
			return false
		}
	}
	return true
}

// Tempo returns the current tempo in microseconds per quarter note.
func (s *Sequencer) Tempo() uint32 {
	return s.time.tempo
}
