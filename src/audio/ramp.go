package audio

// ----- Ramp ----- //

// ramp is a linear segment from one level to another over a whole number of ticks.
type ramp struct {
	from   Sample
	to     Sample
	length int32 // ticks
}

func (r *ramp) set(from Sample, to Sample, length int32) {
	r.from = from
	r.to = to
	r.length = length
}

// at returns the level t ticks into the segment, truncated toward zero.
func (r *ramp) at(t int32) Sample {
	if r.length <= 0 || t >= r.length {
		return r.to
	}
	return r.from + (r.to - r.from).Scale(t, r.length)
}

func msToTicks(ms int32) int32 {
	return int32(int64(ms) * sampleRate / 1000)
}
