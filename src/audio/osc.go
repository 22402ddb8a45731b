package audio

// ----- OSC Params ----- //

type oscParams struct {
	kind       int
	pulseWidth int32 // percent of the cycle spent high, pulse only
	volume     int32 // percent
	tune       int   // semitones
}

// ----- OSC ----- //

/*
  The phase advances by inc + rem/den table entries per tick, where
  inc + rem/den = freq * tableSize / (sampleRate * freqMultiplier).
*/

// Oscillator is a wavetable phase accumulator.
type Oscillator struct {
	kind   int
	table  *[tableSize]Sample
	cutoff uint32 // pulse: first index of the low half
	volume int32
	index  uint32
	rem    uint32
	inc    uint32
	remInc uint32
	den    uint32
	freq   uint32
}

var _ Unit = (*Oscillator)(nil)

// NewOscillator ...
func NewOscillator(kind int, freq uint32, pulseWidth int32, volume int32) *Oscillator {
	o := &Oscillator{}
	o.init(kind, freq, pulseWidth, volume)
	return o
}

func (o *Oscillator) initWithParams(p *oscParams, key uint8) {
	o.init(p.kind, midiNoteToFreq(transpose(key, p.tune)), p.pulseWidth, p.volume)
}

func (o *Oscillator) init(kind int, freq uint32, pulseWidth int32, volume int32) {
	o.kind = kind
	o.table = wavetableFor(kind)
	o.cutoff = uint32(tableSize * int64(pulseWidth) / 100)
	o.volume = volume
	o.index = 0
	o.rem = 0
	o.setFreq(freq)
}

func (o *Oscillator) setFreq(freq uint32) {
	num := uint64(freq) * tableSize
	den := uint64(sampleRate * freqMultiplier)
	o.freq = freq
	o.den = uint32(den)
	o.inc = uint32(num / den)
	o.remInc = uint32(num % den)
	if o.rem >= o.den {
		o.rem = 0
	}
}

// Next ...
func (o *Oscillator) Next() Sample {
	var value Sample
	if o.table == nil {
		if o.index < o.cutoff {
			value = SampleMax
		} else {
			value = SampleMin
		}
	} else {
		value = o.table[o.index]
	}
	o.index += o.inc
	o.rem += o.remInc
	if o.rem >= o.den {
		o.rem -= o.den
		o.index++
	}
	o.index &= tableMask
	return value.Percent(o.volume).Clip()
}

// HasNext is always true. Envelopes decide how long a voice lives.
func (o *Oscillator) HasNext() bool {
	return true
}

// TriggerNoteOff ...
func (o *Oscillator) TriggerNoteOff() {}

// ResetOscillator moves the phase back to the start of the cycle.
func (o *Oscillator) ResetOscillator() {
	o.index = 0
	o.rem = 0
}

func (o *Oscillator) String() string {
	return waveKindToString(o.kind)
}

func transpose(key uint8, semitones int) uint8 {
	k := int(key) + semitones
	if k < 0 {
		return 0
	}
	if k > 127 {
		return 127
	}
	return uint8(k)
}
