package audio

// ----- Unit ----- //

// Unit is implemented by every signal-generating stage. Composite units delegate
// to their children in a fixed order.
type Unit interface {
	// Next advances the unit by exactly one tick and returns its sample.
	Next() Sample
	// HasNext reports false once the unit has nothing more to contribute.
	HasNext() bool
	// TriggerNoteOff asks the unit (and everything it wraps) to wind down.
	TriggerNoteOff()
}

// oscillatorResetter is implemented by units whose phase can be reset for hard sync.
type oscillatorResetter interface {
	ResetOscillator()
}
