package audio

//go:generate go run ../gentables/main.go .

import "fmt"

const (
	sampleRate     = 24000
	tableBits      = 10
	tableSize      = 1 << tableBits
	tableMask      = tableSize - 1
	freqMultiplier = 100 // frequencies are carried as Hz*freqMultiplier
)

// ----- Wave Kind ----- //

const (
	wavePulse = iota
	waveTriangle
	waveSaw
	waveSine
)

func waveKindToString(kind int) string {
	switch kind {
	case wavePulse:
		return "pulse"
	case waveTriangle:
		return "triangle"
	case waveSaw:
		return "saw"
	case waveSine:
		return "sine"
	}
	return fmt.Sprintf("wave(%d)", kind)
}

// ----- Wavetables ----- //

var (
	triangleTable [tableSize]Sample
	sawTable      [tableSize]Sample
)

func init() {
	half := tableSize / 2
	for i := 0; i < tableSize; i++ {
		if i < half {
			triangleTable[i] = SampleMin + Sample(2*int64(SampleMax)*int64(i)/int64(half))
		} else {
			triangleTable[i] = SampleMax - Sample(2*int64(SampleMax)*int64(i-half)/int64(half))
		}
		sawTable[i] = SampleMin + Sample(2*int64(SampleMax)*int64(i)/tableSize)
	}
}

// wavetableFor returns nil for the pulse wave, which is computed from the phase.
func wavetableFor(kind int) *[tableSize]Sample {
	switch kind {
	case waveTriangle:
		return &triangleTable
	case waveSaw:
		return &sawTable
	case waveSine:
		return &sineTable
	case wavePulse:
		return nil
	}
	panic(fmt.Errorf("unknown wave kind %d", kind))
}

// ----- Note Table ----- //

// midiNoteToFreq returns the frequency of a MIDI key in Hz*freqMultiplier.
func midiNoteToFreq(key uint8) uint32 {
	if key > 127 {
		key = 127
	}
	return noteFreqTable[127-int(key)]
}
