package audio

import "testing"

func TestFilterDC(t *testing.T) {
	for _, cutoff := range []int32{100, 1000, 4000, maxCutoff} {
		f := NewFilter(&constUnit{SampleMax}, 0, 0, 0)
		f.initWithCutoff(cutoff)
		var s Sample
		for i := 0; i < sampleRate; i++ {
			s = f.Next()
			if s < 0 || s > SampleMax {
				t.Fatalf("cutoff %d: output out of range: %d at %d", cutoff, s, i)
			}
		}
		if s < SampleMax-64 {
			t.Errorf("cutoff %d: expected to settle near %d, but got: %d", cutoff, SampleMax, s)
		}
	}
}

type sequenceUnit struct {
	samples []Sample
	index   int
}

func (u *sequenceUnit) Next() Sample {
	s := u.samples[u.index]
	u.index++
	return s
}
func (u *sequenceUnit) HasNext() bool   { return u.index < len(u.samples) }
func (u *sequenceUnit) TriggerNoteOff() {}

func TestFilterRecursion(t *testing.T) {
	in := &sequenceUnit{samples: []Sample{0x4000, -0x2000, -3, 3, 0, -0x8000, 0x9000, 0}}
	f := NewFilter(in, 0x23456789, -0x12345678, -0x08765432)
	// y = x*B0>>31 + z1 + z1*B1>>31 + z2*B2>>31 on inputs widened by 16 bits,
	// input clipped first, shifts round toward negative infinity
	expected := []Sample{4514, 1615, 1086, 825, 636, -8538, 1663, 1991}
	for i, e := range expected {
		if s := f.Next(); s != e {
			t.Errorf("at %d: expected %d, but got: %d", i, e, s)
		}
	}
}

func TestLowpassCoefficients(t *testing.T) {
	b0, b1, b2 := lowpassCoefficients(1000)
	expectEqual(t, b0, int64(92441331))
	expectEqual(t, b1, int64(1256380406))
	expectEqual(t, b2, int64(-1348821737))
}

func TestFilterSilence(t *testing.T) {
	f := NewFilter(&constUnit{0}, 0, 0, 0)
	f.initWithCutoff(2000)
	for i := 0; i < 1000; i++ {
		expectEqual(t, f.Next(), Sample(0))
	}
}

func TestFilterAttenuatesHighFrequencies(t *testing.T) {
	energy := func(cutoff int32) int64 {
		f := NewFilter(NewOscillator(waveSine, 6000*freqMultiplier, 50, 100), 0, 0, 0)
		f.initWithCutoff(cutoff)
		var sum int64
		for i := 0; i < sampleRate/10; i++ {
			sum += abs64(int64(f.Next()))
		}
		return sum
	}
	low := energy(200)
	high := energy(maxCutoff)
	if low*4 > high {
		t.Errorf("expected a low cutoff to attenuate, but got %d vs %d", low, high)
	}
}

func TestCutoffFor(t *testing.T) {
	p := filterParams{kind: cutoffKeyVelocity, cutoff: 600, keyTrack: 30, velTrack: 20}
	expectEqual(t, p.cutoffFor(60, 100), int32(600+60*30+100*20))
	expectEqual(t, p.cutoffFor(127, 127), int32(600+127*30+127*20))
	p = filterParams{kind: cutoffKeyVelocity, cutoff: 10000, keyTrack: 100, velTrack: 100}
	expectEqual(t, p.cutoffFor(127, 127), int32(maxCutoff))
	p = filterParams{kind: cutoffFixed, cutoff: 2500, keyTrack: 100}
	expectEqual(t, p.cutoffFor(127, 127), int32(2500))
}

func TestFilterDelegates(t *testing.T) {
	a := NewADSR(0, 0, 1, SampleMax, 100, 100)
	f := NewFilter(a, 0, 0, 0)
	f.initWithCutoff(1000)
	f.Next()
	expectEqual(t, f.HasNext(), true)
	f.TriggerNoteOff()
	f.Next()
	expectEqual(t, f.HasNext(), false)
}
