package audio

import "fmt"

// ----- LFO Params ----- //

type lfoParams struct {
	wave  int
	freq  uint32 // Hz*freqMultiplier
	depth int32  // percent, 0-100
}

// ----- LFO Amplitude ----- //

// LfoAmplitude applies tremolo: a low-frequency oscillator scales the wrapped unit
// by a multiplier that stays within [0, SampleMax].
type LfoAmplitude struct {
	in     Unit
	lfo    Oscillator
	offset Sample
}

var _ Unit = (*LfoAmplitude)(nil)

// NewLfoAmplitude ...
func NewLfoAmplitude(in Unit, wave int, freq uint32, depth int32) *LfoAmplitude {
	l := &LfoAmplitude{in: in}
	l.init(&lfoParams{wave: wave, freq: freq, depth: depth})
	return l
}

func (l *LfoAmplitude) init(p *lfoParams) {
	if p.depth < 0 || p.depth > 100 {
		panic(fmt.Errorf("lfo depth out of range: %d", p.depth))
	}
	swing := p.depth / 2
	l.lfo.init(p.wave, p.freq, 50, swing)
	l.offset = SampleMax - SampleMax.Percent(swing)
}

// Next ...
func (l *LfoAmplitude) Next() Sample {
	m := l.lfo.Next() + l.offset
	if m < 0 || m > SampleMax {
		panic(fmt.Errorf("tremolo multiplier out of range: %d", m))
	}
	return m.Mul(l.in.Next())
}

// HasNext ...
func (l *LfoAmplitude) HasNext() bool {
	return l.in.HasNext()
}

// TriggerNoteOff ...
func (l *LfoAmplitude) TriggerNoteOff() {
	l.in.TriggerNoteOff()
}
