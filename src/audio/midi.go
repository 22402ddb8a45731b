package audio

import (
	"context"
	"errors"
	"log"
	"strings"

	"gitlab.com/gomidi/rtmididrv"
)

// ErrNoMIDIIn is returned when no MIDI input port matches.
var ErrNoMIDIIn = errors.New("MIDI IN not found")

// ListenToMidiIn opens the first MIDI input whose name starts with prefix (any
// port when prefix is empty) and sends decoded events until ctx is done.
func ListenToMidiIn(ctx context.Context, prefix string, ch chan<- Event) error {
	drv, err := rtmididrv.New()
	if err != nil {
		return err
	}
	defer func() {
		err := drv.Close()
		if err != nil {
			log.Printf("failed to close MIDI driver: %v\n", err)
		}
	}()
	ins, err := drv.Ins()
	if err != nil {
		return err
	}
	log.Printf("MIDI IN: %v\n", ins)
	var found bool
	var index int
	for i, in := range ins {
		if strings.HasPrefix(in.String(), prefix) {
			found = true
			index = i
			break
		}
	}
	if !found {
		return ErrNoMIDIIn
	}
	in := ins[index]
	if err := in.Open(); err != nil {
		return err
	}
	log.Println("opened " + in.String())
	defer func() {
		err := in.Close()
		if err != nil {
			log.Printf("failed to close MIDI IN: %v\n", err)
		}
	}()
	log.Println("start listening MIDI IN...")
	if err := in.SetListener(func(data []byte, deltaMicroseconds int64) {
		e, ok := decodeMessage(data)
		if !ok || e.Kind == EventTempo {
			return
		}
		select {
		case ch <- e:
		default:
			// queue full, the event is dropped
		}
	}); err != nil {
		return err
	}
	defer func() {
		log.Println("stop listening MIDI IN...")
		err := in.StopListening()
		if err != nil {
			log.Printf("failed to stop listening: %v\n", err)
		}
	}()
	<-ctx.Done()
	return nil
}
