package audio

// ----- Engine ----- //

// engine is the per-sample pipeline shared by the realtime player and the
// offline renderer: scheduler tick, event dispatch, voices, mixer bus.
type engine struct {
	synth *Synth
	seq   *Sequencer // nil when only live input drives the synth
	loop  bool
	hold  bool // keep producing samples after the song ends
	tail  int  // samples left once the song is over
	max   int
}

func newEngine(c *Config, song *Song) *engine {
	e := &engine{
		synth: NewSynth(c.options()),
		loop:  c.Loop,
		hold:  c.MidiIn,
		max:   c.tailSamples(),
	}
	if song != nil {
		e.seq = NewSequencer(song, e.synth)
	}
	e.tail = e.max
	return e
}

func (e *engine) dispatch(ev *Event) {
	dispatch(e.synth, ev)
}

// next returns the next output sample. ok turns false once the song has ended
// and every voice is silent, or the tail is spent.
func (e *engine) next() (s Sample, ok bool) {
	if e.seq != nil {
		if e.seq.Done() {
			if e.loop {
				e.synth.AllNotesOff()
				e.seq.Rewind()
			} else if !e.hold {
				if e.tail <= 0 || e.synth.Idle() {
					return 0, false
				}
				e.tail--
			}
		}
		e.seq.Tick()
	}
	return e.synth.Next(), true
}
