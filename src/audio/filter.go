package audio

// ----- Filter Params ----- //

const (
	cutoffFixed = iota
	cutoffKeyVelocity
)

const (
	coefBits  = 31
	coefOne   = int64(1) << coefBits
	widenBits = 16
	maxCutoff = sampleRate/2 - 1
)

type filterParams struct {
	kind     int
	cutoff   int32 // Hz, or the base cutoff for cutoffKeyVelocity
	keyTrack int32 // Hz per key
	velTrack int32 // Hz per velocity step
}

func (p *filterParams) cutoffFor(key uint8, velocity uint8) int32 {
	cutoff := p.cutoff
	if p.kind == cutoffKeyVelocity {
		cutoff += int32(key)*p.keyTrack + int32(velocity)*p.velTrack
	}
	if cutoff < 1 {
		cutoff = 1
	}
	if cutoff > maxCutoff {
		cutoff = maxCutoff
	}
	return cutoff
}

// lowpassCoefficients returns B0, B1, B2 for two cascaded one-pole low-passes
// at cutoff Hz folded into
//
//	y = x*B0 + y1 + y1*B1 + y2*B2
//
// with a = 2*pi*fc / (sampleRate + 2*pi*fc): B0 = a^2, B1 = 1-2a, B2 = -(1-a)^2.
func lowpassCoefficients(cutoff int32) (int64, int64, int64) {
	w := int64(6283) * int64(cutoff)
	a := (w << coefBits) / (1000*sampleRate + w)
	b0 := (a * a) >> coefBits
	b1 := coefOne - 2*a
	b2 := -(((coefOne - a) * (coefOne - a)) >> coefBits)
	return b0, b1, b2
}

// ----- Filter ----- //

// Filter is a three-coefficient recursive low-pass over a wrapped unit.
type Filter struct {
	in Unit
	b0 int64
	b1 int64
	b2 int64
	z1 int64
	z2 int64
}

var _ Unit = (*Filter)(nil)

// NewFilter ...
func NewFilter(in Unit, b0, b1, b2 int64) *Filter {
	f := &Filter{in: in}
	f.init(b0, b1, b2)
	return f
}

func (f *Filter) init(b0, b1, b2 int64) {
	f.b0 = b0
	f.b1 = b1
	f.b2 = b2
	f.z1 = 0
	f.z2 = 0
}

func (f *Filter) initWithCutoff(cutoff int32) {
	f.init(lowpassCoefficients(cutoff))
}

// Next ...
func (f *Filter) Next() Sample {
	return f.process(f.in.Next())
}

func (f *Filter) process(in Sample) Sample {
	// clipped input keeps every product below 2^63
	x := int64(in.Clip()) << widenBits
	y := (x*f.b0)>>coefBits + f.z1 + (f.z1*f.b1)>>coefBits + (f.z2*f.b2)>>coefBits
	f.z2 = f.z1
	f.z1 = y
	return Sample(y >> widenBits)
}

// HasNext ...
func (f *Filter) HasNext() bool {
	return f.in.HasNext()
}

// TriggerNoteOff ...
func (f *Filter) TriggerNoteOff() {
	f.in.TriggerNoteOff()
}
