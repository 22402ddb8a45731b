package audio

// ----- Instruments ----- //

const (
	instPiano = iota
	instElectricPiano
	instGuitar
	instBass
	instViolin
	instCello
	instChoir
	instFrenchHorn
	instSax
	instOboe
	numInstruments
)

type instrumentParams struct {
	name      string
	oscParams [2]oscParams
	sync      bool
	lfoParams *lfoParams // nil: no tremolo
	filter    filterParams
	adsr      adsrParams
	poly      int // voices in this instrument's bank
}

// The two oscillator volumes of an instrument add up to at most 100 so the
// summed carrier stays inside the playable range.
var instruments = [numInstruments]instrumentParams{
	instPiano: {
		name: "piano",
		oscParams: [2]oscParams{
			{kind: waveTriangle, volume: 60},
			{kind: wavePulse, pulseWidth: 25, volume: 40, tune: 12},
		},
		filter: filterParams{kind: cutoffKeyVelocity, cutoff: 600, keyTrack: 30, velTrack: 20},
		adsr:   adsrParams{attack: 5, delay: 400, release: 300, peak: 100, sustain: 30},
		poly:   16,
	},
	instElectricPiano: {
		name: "electric piano",
		oscParams: [2]oscParams{
			{kind: waveSine, volume: 70},
			{kind: waveSine, volume: 30, tune: 12},
		},
		lfoParams: &lfoParams{wave: waveSine, freq: 4 * freqMultiplier, depth: 30},
		filter:    filterParams{kind: cutoffFixed, cutoff: 4000},
		adsr:      adsrParams{attack: 2, delay: 800, release: 400, peak: 100, sustain: 40},
		poly:      12,
	},
	instGuitar: {
		name: "guitar",
		oscParams: [2]oscParams{
			{kind: waveSaw, volume: 50},
			{kind: wavePulse, pulseWidth: 30, volume: 50, tune: 7},
		},
		sync:   true,
		filter: filterParams{kind: cutoffKeyVelocity, cutoff: 900, keyTrack: 25, velTrack: 15},
		adsr:   adsrParams{attack: 2, delay: 600, release: 200, peak: 100, sustain: 20},
		poly:   12,
	},
	instBass: {
		name: "bass",
		oscParams: [2]oscParams{
			{kind: wavePulse, pulseWidth: 50, volume: 60},
			{kind: waveSaw, volume: 40, tune: -12},
		},
		filter: filterParams{kind: cutoffFixed, cutoff: 900},
		adsr:   adsrParams{attack: 3, delay: 200, release: 100, peak: 100, sustain: 60},
		poly:   8,
	},
	instViolin: {
		name: "violin",
		oscParams: [2]oscParams{
			{kind: waveSaw, volume: 60},
			{kind: waveTriangle, volume: 40, tune: 12},
		},
		lfoParams: &lfoParams{wave: waveSine, freq: 6 * freqMultiplier, depth: 20},
		filter:    filterParams{kind: cutoffFixed, cutoff: 3500},
		adsr:      adsrParams{attack: 60, delay: 200, release: 250, peak: 90, sustain: 80},
		poly:      8,
	},
	instCello: {
		name: "cello",
		oscParams: [2]oscParams{
			{kind: waveSaw, volume: 60},
			{kind: wavePulse, pulseWidth: 40, volume: 40, tune: -12},
		},
		lfoParams: &lfoParams{wave: waveSine, freq: 5 * freqMultiplier, depth: 15},
		filter:    filterParams{kind: cutoffFixed, cutoff: 2000},
		adsr:      adsrParams{attack: 80, delay: 300, release: 300, peak: 90, sustain: 75},
		poly:      8,
	},
	instChoir: {
		name: "choir",
		oscParams: [2]oscParams{
			{kind: waveTriangle, volume: 50},
			{kind: waveSine, volume: 50, tune: 12},
		},
		lfoParams: &lfoParams{wave: waveTriangle, freq: 3 * freqMultiplier, depth: 40},
		filter:    filterParams{kind: cutoffFixed, cutoff: 2500},
		adsr:      adsrParams{attack: 200, delay: 300, release: 600, peak: 80, sustain: 70},
		poly:      12,
	},
	instFrenchHorn: {
		name: "french horn",
		oscParams: [2]oscParams{
			{kind: waveSaw, volume: 50},
			{kind: waveTriangle, volume: 50},
		},
		filter: filterParams{kind: cutoffKeyVelocity, cutoff: 400, keyTrack: 15, velTrack: 10},
		adsr:   adsrParams{attack: 50, delay: 250, release: 300, peak: 100, sustain: 70},
		poly:   8,
	},
	instSax: {
		name: "sax",
		oscParams: [2]oscParams{
			{kind: wavePulse, pulseWidth: 35, volume: 55},
			{kind: waveSaw, volume: 45, tune: 12},
		},
		sync:      true,
		lfoParams: &lfoParams{wave: waveSine, freq: 5 * freqMultiplier, depth: 10},
		filter:    filterParams{kind: cutoffKeyVelocity, cutoff: 1200, keyTrack: 20, velTrack: 12},
		adsr:      adsrParams{attack: 20, delay: 150, release: 150, peak: 100, sustain: 65},
		poly:      8,
	},
	instOboe: {
		name: "oboe",
		oscParams: [2]oscParams{
			{kind: wavePulse, pulseWidth: 20, volume: 60},
			{kind: waveTriangle, volume: 40, tune: 12},
		},
		filter: filterParams{kind: cutoffFixed, cutoff: 2800},
		adsr:   adsrParams{attack: 30, delay: 100, release: 120, peak: 100, sustain: 70},
		poly:   8,
	},
}

// programToInstrument maps a General MIDI program (0-127) onto a template by family.
func programToInstrument(program uint8) int {
	switch {
	case program == 4 || program == 5:
		return instElectricPiano
	case program < 8:
		return instPiano
	case program < 16: // chromatic percussion
		return instElectricPiano
	case program >= 24 && program < 32:
		return instGuitar
	case program >= 32 && program < 40:
		return instBass
	case program == 42 || program == 43:
		return instCello
	case program >= 40 && program < 52:
		return instViolin
	case program >= 52 && program < 56:
		return instChoir
	case program >= 56 && program < 64:
		return instFrenchHorn
	case program >= 64 && program < 68:
		return instSax
	case program >= 68 && program < 80:
		return instOboe
	}
	return instPiano
}
