package audio

import (
	"testing"
)

func TestFillBuffer(t *testing.T) {
	config := DefaultConfig()
	config.Tail = 0
	e := newEngine(config, shortSong())
	buf := make([]byte, 256*bytesPerSample)
	expectEqual(t, fillBuffer(e, buf), 256)
	for i := 0; i < 256; i++ {
		frame := buf[i*bytesPerSample : (i+1)*bytesPerSample]
		expectEqual(t, frame[0], frame[2])
		expectEqual(t, frame[1], frame[3])
	}
	total := 256
	for {
		n := fillBuffer(e, buf)
		total += n
		if n < 256 {
			break
		}
	}
	expectEqual(t, fillBuffer(e, buf), 0)
	if total < 3000 {
		t.Errorf("ended too early: %d", total)
	}
}

func TestEngineLoop(t *testing.T) {
	config := DefaultConfig()
	config.Loop = true
	config.Tail = 0
	e := newEngine(config, shortSong())
	for i := 0; i < sampleRate; i++ {
		if _, ok := e.next(); !ok {
			t.Fatalf("looping song ended at %d", i)
		}
	}
}

func TestEngineLiveInput(t *testing.T) {
	config := DefaultConfig()
	config.MidiIn = true
	e := newEngine(config, nil)
	e.dispatch(&Event{Kind: EventNoteOn, Key: 60, Velocity: 100})
	expectEqual(t, e.synth.Idle(), false)
	for i := 0; i < 100; i++ {
		if _, ok := e.next(); !ok {
			t.Fatalf("live input ended at %d", i)
		}
	}
}

func BenchmarkSynth(b *testing.B) {
	polyphony := 8
	s := NewSynth(Options{})
	for ch := uint8(0); ch < 8; ch++ {
		s.ProgramChange(ch, []uint8{0, 4, 25, 33, 40, 42, 52, 65}[ch])
		for n := 0; n < polyphony; n++ {
			s.NoteOn(ch, uint8(48+n), 100)
		}
	}
	out := make([]Sample, 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := range out {
			out[j] = s.Next()
		}
	}
}
