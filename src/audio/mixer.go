package audio

// ----- Amp Mixer ----- //

// AmpMixer multiplies two units, e.g. an envelope over a carrier.
type AmpMixer struct {
	a Unit
	b Unit
}

var _ Unit = (*AmpMixer)(nil)

// NewAmpMixer ...
func NewAmpMixer(a Unit, b Unit) *AmpMixer {
	return &AmpMixer{a: a, b: b}
}

// Next ...
func (m *AmpMixer) Next() Sample {
	a := m.a.Next()
	b := m.b.Next()
	return a.Mul(b)
}

// HasNext ...
func (m *AmpMixer) HasNext() bool {
	return m.a.HasNext() && m.b.HasNext()
}

// TriggerNoteOff ...
func (m *AmpMixer) TriggerNoteOff() {
	m.a.TriggerNoteOff()
	m.b.TriggerNoteOff()
}

// ----- Double Oscillator ----- //

// DoubleOscillator sums two units. With sync enabled, unit 1 is re-phased on
// every rising zero crossing of unit 0.
type DoubleOscillator struct {
	a     Unit
	b     Unit
	sync  oscillatorResetter
	prevA Sample
}

var _ Unit = (*DoubleOscillator)(nil)

// NewDoubleOscillator ...
func NewDoubleOscillator(a Unit, b Unit, sync bool) *DoubleOscillator {
	d := &DoubleOscillator{a: a, b: b}
	d.setSync(sync)
	return d
}

func (d *DoubleOscillator) setSync(sync bool) {
	d.sync = nil
	d.prevA = 0
	if !sync {
		return
	}
	r, ok := d.b.(oscillatorResetter)
	if !ok {
		panic("hard sync needs a resettable second unit")
	}
	d.sync = r
}

// Next ...
func (d *DoubleOscillator) Next() Sample {
	a := d.a.Next()
	b := d.b.Next()
	if d.sync != nil {
		if d.prevA < 0 && a >= 0 {
			d.sync.ResetOscillator()
		}
		d.prevA = a
	}
	return a + b
}

// HasNext ...
func (d *DoubleOscillator) HasNext() bool {
	return d.a.HasNext() && d.b.HasNext()
}

// TriggerNoteOff ...
func (d *DoubleOscillator) TriggerNoteOff() {
	d.a.TriggerNoteOff()
	d.b.TriggerNoteOff()
}

// ResetOscillator resets both children where they support it.
func (d *DoubleOscillator) ResetOscillator() {
	if r, ok := d.a.(oscillatorResetter); ok {
		r.ResetOscillator()
	}
	if r, ok := d.b.(oscillatorResetter); ok {
		r.ResetOscillator()
	}
	d.prevA = 0
}
