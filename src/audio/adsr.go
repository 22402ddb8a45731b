package audio

import "fmt"

// ----- ADSR Params ----- //

const (
	phaseAttack = iota
	phaseDelay
	phaseSustain
	phaseRelease
	phaseEnded
)

type adsrParams struct {
	attack  int32 // ms
	delay   int32 // ms
	release int32 // ms
	peak    int32 // percent of the note volume reached at the end of attack
	sustain int32 // percent of the note volume
}

// ----- ADSR ----- //

/*
  a +   x
    |  / \
  s + /   x------x
    |/            \
  0 +---+--+------+---x
    |a  |d |      |r  |
             note off
*/

// ADSR is an amplitude envelope. Its output is a gain in [0, SampleMax].
type ADSR struct {
	phase   int
	ticks   int32
	attack  ramp
	delay   ramp
	release ramp
	sustain Sample
}

var _ Unit = (*ADSR)(nil)

// NewADSR builds an envelope from stage lengths in ticks. peak and sustain are
// percentages of volume.
func NewADSR(attackTicks, delayTicks, releaseTicks int32, volume Sample, peak, sustain int32) *ADSR {
	a := &ADSR{}
	a.init(attackTicks, delayTicks, releaseTicks, volume, peak, sustain)
	return a
}

func (a *ADSR) initWithParams(p *adsrParams, volume Sample) {
	a.init(msToTicks(p.attack), msToTicks(p.delay), msToTicks(p.release), volume, p.peak, p.sustain)
}

func (a *ADSR) init(attackTicks, delayTicks, releaseTicks int32, volume Sample, peak, sustain int32) {
	peakLevel := volume.Percent(peak)
	// release always starts from the configured sustain level, not the level
	// held when the note-off arrived
	a.sustain = volume.Percent(sustain)
	a.attack.set(0, peakLevel, attackTicks)
	a.delay.set(peakLevel, a.sustain, delayTicks)
	a.release.set(a.sustain, 0, releaseTicks)
	a.phase = phaseAttack
	a.ticks = 0
}

// Next returns the level for the current tick, then advances. A stage change
// becomes visible on the following call.
func (a *ADSR) Next() Sample {
	var value Sample
	switch a.phase {
	case phaseAttack:
		value = a.attack.at(a.ticks)
	case phaseDelay:
		value = a.delay.at(a.ticks)
	case phaseSustain:
		value = a.sustain
	case phaseRelease:
		value = a.release.at(a.ticks)
	case phaseEnded:
		return 0
	}
	a.ticks++
	switch a.phase {
	case phaseAttack:
		if a.ticks > a.attack.length {
			// tick 0 of the delay ramp equals the attack peak just emitted
			a.enter(phaseDelay, 1)
		}
	case phaseDelay:
		if a.ticks > a.delay.length {
			a.enter(phaseSustain, 0)
		}
	case phaseRelease:
		if a.ticks > a.release.length {
			a.enter(phaseEnded, 0)
		}
	}
	return value
}

func (a *ADSR) enter(phase int, ticks int32) {
	a.phase = phase
	a.ticks = ticks
}

// HasNext ...
func (a *ADSR) HasNext() bool {
	return a.phase != phaseEnded
}

// TriggerNoteOff jumps to Release from any stage.
func (a *ADSR) TriggerNoteOff() {
	if a.phase == phaseEnded {
		return
	}
	a.enter(phaseRelease, 1)
}

func (a *ADSR) String() string {
	return fmt.Sprintf("ADSR(%v,%v,%v,%v)", a.attack.length, a.delay.length, a.sustain, a.release.length)
}
