package audio

import "fmt"

// ----- Bank ----- //

// bank holds the voices of one instrument and the free list that hands them out.
type bank struct {
	params *instrumentParams
	voices []*voice
	pool   *FreeList
}

func newBank(p *instrumentParams) *bank {
	if p.poly <= 0 || p.poly >= unusedSlot {
		panic(fmt.Errorf("%s: invalid polyphony %d", p.name, p.poly))
	}
	voices := make([]*voice, p.poly)
	for i := range voices {
		voices[i] = newVoice(p)
	}
	return &bank{
		params: p,
		voices: voices,
		pool:   NewFreeList(p.poly),
	}
}

// next pulls every active voice once and frees the ones that have finished.
func (b *bank) next() Sample {
	var sum Sample
	for i, v := range b.voices {
		if !b.pool.IsActive(i) {
			continue
		}
		sum += v.Next()
		if !v.HasNext() {
			b.pool.Free(i)
		}
	}
	return sum
}

func (b *bank) releaseAll() {
	for i, v := range b.voices {
		if b.pool.IsActive(i) {
			v.TriggerNoteOff()
		}
	}
}

func (b *bank) reset() {
	for _, v := range b.voices {
		v.adsr.phase = phaseEnded
	}
	b.pool.Reset()
}

// ----- Amp Adder ----- //

// ampAdder is the mixer bus: the clipped sum of every bank.
type ampAdder struct {
	banks []*bank
}

func (a *ampAdder) next() Sample {
	var sum Sample
	for _, b := range a.banks {
		sum += b.next()
	}
	return sum.Clip()
}

func (a *ampAdder) activeVoices() int {
	n := 0
	for _, b := range a.banks {
		n += b.pool.Len()
	}
	return n
}
