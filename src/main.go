package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/jinjor/fixed-synth/src/audio"
	"golang.org/x/sync/errgroup"
)

var (
	configPath      = flag.String("config", "", "YAML config file")
	renderPath      = flag.String("render", "", "render to this WAV file instead of playing")
	loop            = flag.Bool("loop", false, "loop the song")
	midiIn          = flag.Bool("midi-in", false, "play from a live MIDI input")
	midiInPrefix    = flag.String("midi-in-prefix", "", "name prefix of the MIDI input port")
	dropExcessNotes = flag.Bool("drop-excess-notes", false, "drop notes instead of failing when an instrument runs out of voices")
	statusInterval  = flag.Duration("status", 0, "log active voices at this interval (0 disables)")
)

func main() {
	flag.Parse()
	log.SetFlags(log.Lshortfile)

	config, err := loadConfig()
	if err != nil {
		log.Fatalf("error: %v\n", err)
	}
	var song *audio.Song
	if path := flag.Arg(0); path != "" {
		song, err = audio.LoadSong(path)
		if err != nil {
			log.Fatalf("error: %v\n", err)
		}
		log.Printf("loaded %s: %d tracks, %d ticks per quarter\n", path, len(song.Tracks), song.TicksPerQuarter)
	}
	if *renderPath != "" {
		if song == nil {
			log.Fatalln("error: -render needs a MIDI file")
		}
		n, err := audio.RenderWAV(*renderPath, song, config)
		if err != nil {
			log.Fatalf("error: %v\n", err)
		}
		log.Printf("rendered %d samples to %s\n", n, *renderPath)
		return
	}
	if song == nil && !config.MidiIn {
		log.Fatalln("error: nothing to play, pass a MIDI file or -midi-in")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)
	defer func() {
		signal.Stop(signalCh)
		cancel()
	}()
	go func() {
		sig := <-signalCh
		log.Printf("Caught signal %s: shutting down...\n", sig)
		cancel()
	}()

	if err := play(ctx, config, song); err != nil {
		log.Fatalf("error: %v\n", err)
	}
	log.Println("main() ended.")
}

func loadConfig() (*audio.Config, error) {
	config := audio.DefaultConfig()
	if *configPath != "" {
		c, err := audio.LoadConfig(*configPath)
		if err != nil {
			return nil, err
		}
		config = c
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "loop":
			config.Loop = *loop
		case "midi-in":
			config.MidiIn = *midiIn
		case "midi-in-prefix":
			config.MidiInPrefix = *midiInPrefix
		case "drop-excess-notes":
			config.DropExcessNotes = *dropExcessNotes
		case "status":
			config.StatusInterval = *statusInterval
		}
	})
	return config, config.Validate()
}

func play(ctx context.Context, config *audio.Config, song *audio.Song) error {
	a, err := audio.NewAudio(config, song)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Printf("error while closing audio: %v", err)
		}
	}()
	g, ctx := errgroup.WithContext(ctx)
	ctx, stop := context.WithCancel(ctx)
	g.Go(func() error {
		// the song ending stops the other goroutines
		defer stop()
		return a.Start(ctx)
	})
	if config.MidiIn {
		g.Go(func() error {
			err := audio.ListenToMidiIn(ctx, config.MidiInPrefix, a.EventCh)
			if errors.Is(err, audio.ErrNoMIDIIn) && song != nil {
				log.Printf("WARN: %v\n", err)
				return nil
			}
			return err
		})
	}
	if config.StatusInterval > 0 {
		g.Go(func() error {
			return reportStatus(ctx, a, config.StatusInterval)
		})
	}
	return g.Wait()
}

func reportStatus(ctx context.Context, a *audio.Audio, interval time.Duration) error {
	t := time.NewTicker(interval)
	defer t.Stop()
loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case <-t.C:
			log.Printf("voices: %s\n", formatStatus(a.Status()))
		}
	}
	log.Println("reportStatus() ended.")
	return nil
}

func formatStatus(status map[string]int) string {
	names := make([]string, 0, len(status))
	for name, n := range status {
		if n > 0 {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	sort.Strings(names)
	items := make([]string, len(names))
	for i, name := range names {
		items[i] = name + "=" + strconv.Itoa(status[name])
	}
	return strings.Join(items, " ")
}
