package audio

import (
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// ----- WAV Render ----- //

const wavPCMFormat = 1

// RenderWAV renders song offline to a 16-bit mono WAV file and returns the number
// of samples written. Rendering continues after the last event until every
// voice is silent or the configured tail is spent. Loop and live input are
// ignored.
func RenderWAV(path string, song *Song, config *Config) (int, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	n, err := renderWAV(file, song, config)
	if cerr := file.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if err != nil {
		return n, fmt.Errorf("render %s: %w", path, err)
	}
	return n, nil
}

func renderWAV(w io.WriteSeeker, song *Song, config *Config) (int, error) {
	c := *config
	c.Loop = false
	c.MidiIn = false
	e := newEngine(&c, song)

	enc := wav.NewEncoder(w, sampleRate, 16, 1, wavPCMFormat)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           make([]int, c.BufferSamples),
		SourceBitDepth: 16,
	}
	total := 0
	for {
		n := 0
		for n < len(buf.Data) {
			s, ok := e.next()
			if !ok {
				break
			}
			buf.Data[n] = int(s.Int16())
			n++
		}
		if n > 0 {
			chunk := *buf
			chunk.Data = buf.Data[:n]
			if err := enc.Write(&chunk); err != nil {
				return total, err
			}
			total += n
		}
		if n < len(buf.Data) {
			break
		}
	}
	return total, enc.Close()
}
