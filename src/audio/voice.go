package audio

// ----- Voice ----- //

/*
  osc0 --+
         +-- double -- [lfo] -- filter --+
  osc1 --+                               +-- out
                                  adsr --+
*/

// voice is one instrument pipeline. Stages are wired once when the bank is built
// and re-initialized in place for every note.
type voice struct {
	params *instrumentParams
	oscs   [2]Oscillator
	double DoubleOscillator
	lfo    LfoAmplitude
	filter Filter
	adsr   ADSR
	out    AmpMixer
	key    uint8
}

var _ Unit = (*voice)(nil)

func newVoice(p *instrumentParams) *voice {
	v := &voice{params: p}
	v.double.a = &v.oscs[0]
	v.double.b = &v.oscs[1]
	var carrier Unit = &v.double
	if p.lfoParams != nil {
		v.lfo.in = carrier
		carrier = &v.lfo
	}
	v.filter.in = carrier
	v.out.a = &v.adsr
	v.out.b = &v.filter
	// an unused voice is silent until its first note
	v.adsr.phase = phaseEnded
	return v
}

func (v *voice) initWithNote(key uint8, velocity uint8) {
	p := v.params
	v.key = key
	for i := range v.oscs {
		v.oscs[i].initWithParams(&p.oscParams[i], key)
	}
	v.double.setSync(p.sync)
	if p.lfoParams != nil {
		v.lfo.init(p.lfoParams)
	}
	v.filter.initWithCutoff(p.filter.cutoffFor(key, velocity))
	v.adsr.initWithParams(&p.adsr, velocityToVolume(velocity))
}

func velocityToVolume(velocity uint8) Sample {
	if velocity > 127 {
		velocity = 127
	}
	return SampleMax.Scale(int32(velocity), 127)
}

// Next ...
func (v *voice) Next() Sample {
	return v.out.Next()
}

// HasNext follows the envelope, the only stage with a terminal state.
func (v *voice) HasNext() bool {
	return v.out.HasNext()
}

// TriggerNoteOff ...
func (v *voice) TriggerNoteOff() {
	v.out.TriggerNoteOff()
}
