package audio

import (
	"context"
	"io"
	"log"
	"sync"

	"github.com/hajimehoshi/oto"
)

const (
	channelNum      = 2
	bitDepthInBytes = 2
	bytesPerSample  = bitDepthInBytes * channelNum
)

// ----- Audio ----- //

// Audio plays the engine through the default output device.
type Audio struct {
	ctx        context.Context
	otoContext *oto.Context
	// EventCh carries live events into the sample loop. Events are applied at
	// the start of the next buffer.
	EventCh   chan Event
	mu        sync.Mutex
	engine    *engine
	ended     bool
	bufferLen int
}

var _ io.Reader = (*Audio)(nil)

// NewAudio opens the output device. song may be nil when only live input plays.
func NewAudio(config *Config, song *Song) (*Audio, error) {
	bufferSizeInBytes := config.BufferSamples * bytesPerSample
	otoContext, err := oto.NewContext(sampleRate, channelNum, bitDepthInBytes, bufferSizeInBytes)
	if err != nil {
		return nil, err
	}
	return &Audio{
		ctx:        context.Background(),
		otoContext: otoContext,
		EventCh:    make(chan Event, 1024),
		engine:     newEngine(config, song),
		bufferLen:  bufferSizeInBytes,
	}, nil
}

func (a *Audio) Read(buf []byte) (int, error) {
	select {
	case <-a.ctx.Done():
		log.Println("Read() interrupted.")
		return 0, io.EOF
	default:
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.ended {
		return 0, io.EOF
	}
	a.drainEvents()
	n := fillBuffer(a.engine, buf)
	if n < len(buf)/bytesPerSample {
		a.ended = true
		if n == 0 {
			return 0, io.EOF
		}
	}
	return n * bytesPerSample, nil
}

func (a *Audio) drainEvents() {
	for {
		select {
		case e := <-a.EventCh:
			a.engine.dispatch(&e)
		default:
			return
		}
	}
}

// fillBuffer writes 16-bit little-endian frames, the mono sample copied to every
// channel, and returns the number of frames written.
func fillBuffer(e *engine, buf []byte) int {
	frames := len(buf) / bytesPerSample
	for i := 0; i < frames; i++ {
		s, ok := e.next()
		if !ok {
			return i
		}
		v := s.Int16()
		for ch := 0; ch < channelNum; ch++ {
			buf[bytesPerSample*i+2*ch] = byte(v)
			buf[bytesPerSample*i+2*ch+1] = byte(v >> 8)
		}
	}
	return frames
}

// Close ...
func (a *Audio) Close() error {
	log.Println("Closing Audio...")
	return a.otoContext.Close()
}

// Start blocks until the song ends or ctx is cancelled.
func (a *Audio) Start(ctx context.Context) error {
	p := a.otoContext.NewPlayer()
	defer func() {
		if err := p.Close(); err != nil {
			log.Printf("error: %v", err)
		}
	}()
	a.ctx = ctx

	if _, err := io.CopyBuffer(p, a, make([]byte, a.bufferLen)); err != nil {
		return err
	}
	log.Println("Start() ended.")
	return nil
}

// Status returns the number of active voices per instrument.
func (a *Audio) Status() map[string]int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.engine.synth.Status()
}
