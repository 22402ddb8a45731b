package audio

// ----- Sample ----- //

// Sample is a fixed-point audio sample. SampleMin maps to -1.0, SampleMax to +1.0
// and 0 is silence. Intermediate values may leave the playable range; Clip before
// handing a sample to a sink.
type Sample int32

const (
	sampleBits = 15
	// SampleMax ...
	SampleMax Sample = 1 << sampleBits
	// SampleMin ...
	SampleMin Sample = -SampleMax
)

// Add ...
func (s Sample) Add(o Sample) Sample {
	return s + o
}

// Sub ...
func (s Sample) Sub(o Sample) Sample {
	return s - o
}

// Mul multiplies two samples as fractions of full scale.
func (s Sample) Mul(o Sample) Sample {
	return Sample((int64(s) * int64(o)) >> sampleBits)
}

// Scale returns s*num/den, truncated toward zero.
func (s Sample) Scale(num, den int32) Sample {
	return Sample(int64(s) * int64(num) / int64(den))
}

// Percent returns s*percent/100.
func (s Sample) Percent(percent int32) Sample {
	return s.Scale(percent, 100)
}

// Clip saturates s into [SampleMin, SampleMax].
func (s Sample) Clip() Sample {
	if s > SampleMax {
		return SampleMax
	}
	if s < SampleMin {
		return SampleMin
	}
	return s
}

// Int16 converts a sample to signed 16-bit PCM. SampleMax saturates to 32767.
func (s Sample) Int16() int16 {
	s = s.Clip()
	if s > 32767 {
		return 32767
	}
	return int16(s)
}
