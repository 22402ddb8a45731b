package audio

import "testing"

func TestAmpMixer(t *testing.T) {
	m := NewAmpMixer(&constUnit{0x4000}, &constUnit{0x4000})
	expectEqual(t, m.Next(), Sample(0x2000))
	m = NewAmpMixer(&constUnit{SampleMax}, &constUnit{-0x1234})
	expectEqual(t, m.Next(), Sample(-0x1234))
}

func TestAmpMixerFollowsEnvelope(t *testing.T) {
	a := NewADSR(0, 0, 2, SampleMax, 100, 100)
	m := NewAmpMixer(a, NewOscillator(wavePulse, 44000, 50, 100))
	expectEqual(t, m.Next(), SampleMax)
	m.TriggerNoteOff()
	expectEqual(t, m.HasNext(), true)
	m.Next()
	m.Next()
	expectEqual(t, m.HasNext(), false)
}

func TestDoubleOscillatorSum(t *testing.T) {
	a := NewOscillator(wavePulse, 44000, 50, 50)
	b := NewOscillator(wavePulse, 12345, 50, 50)
	d := NewDoubleOscillator(a, b, false)
	expectEqual(t, d.Next(), SampleMax)
	for i := 0; i < sampleRate; i++ {
		s := d.Next()
		if s < SampleMin || s > SampleMax {
			t.Fatalf("sum out of range: %d", s)
		}
	}
}

func TestDoubleOscillatorSync(t *testing.T) {
	a := NewOscillator(wavePulse, 44000, 50, 100)
	b := NewOscillator(waveSaw, 123456, 50, 100)
	d := NewDoubleOscillator(a, b, true)
	resets := 0
	for i := 0; i < sampleRate; i++ {
		before := d.prevA
		d.Next()
		if before < 0 && d.prevA >= 0 {
			resets++
			if b.index != 0 || b.rem != 0 {
				t.Fatalf("tick %d: expected unit 1 to restart, but index is %d", i, b.index)
			}
		}
	}
	// one rising edge per cycle of unit 0
	if resets < 439 || resets > 440 {
		t.Errorf("expected about 440 resets, but got: %d", resets)
	}
}

func TestDoubleOscillatorSyncNeedsOscillator(t *testing.T) {
	expectPanic(t, func() {
		NewDoubleOscillator(NewOscillator(waveSine, 44000, 50, 100), &constUnit{}, true)
	})
}

func TestLfoAmplitudeRange(t *testing.T) {
	for _, wave := range []int{wavePulse, waveTriangle, waveSaw, waveSine} {
		for depth := int32(0); depth <= 100; depth++ {
			l := NewLfoAmplitude(&constUnit{SampleMax}, wave, 5*freqMultiplier, depth)
			lowest := SampleMax
			for i := 0; i < sampleRate/5+1; i++ {
				s := l.Next()
				if s < 0 || s > SampleMax {
					t.Fatalf("%s depth %d: out of range: %d", waveKindToString(wave), depth, s)
				}
				if s < lowest {
					lowest = s
				}
			}
			floor := SampleMax - 2*SampleMax.Percent(depth/2)
			if lowest < floor {
				t.Errorf("%s depth %d: expected at least %d, but got: %d", waveKindToString(wave), depth, floor, lowest)
			}
		}
	}
}

// At full depth the tremolo multiplier touches 0 at the trough of the LFO.
func TestLfoAmplitudeFullDepthReachesZero(t *testing.T) {
	l := NewLfoAmplitude(&constUnit{SampleMax}, waveSine, 5*freqMultiplier, 100)
	lowest := SampleMax
	for i := 0; i < sampleRate/5+1; i++ {
		if s := l.Next(); s < lowest {
			lowest = s
		}
	}
	expectEqual(t, lowest, Sample(0))
}

func TestLfoAmplitudeZeroDepth(t *testing.T) {
	l := NewLfoAmplitude(&constUnit{0x1234}, waveSine, 5*freqMultiplier, 0)
	for i := 0; i < 1000; i++ {
		expectEqual(t, l.Next(), Sample(0x1234))
	}
}

func TestLfoAmplitudeInvalidDepth(t *testing.T) {
	expectPanic(t, func() {
		NewLfoAmplitude(&constUnit{}, waveSine, 5*freqMultiplier, 101)
	})
	expectPanic(t, func() {
		NewLfoAmplitude(&constUnit{}, waveSine, 5*freqMultiplier, -1)
	})
}
