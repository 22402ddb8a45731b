package audio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gitlab.com/gomidi/midi/v2/smf"
)

// ----- Standard MIDI File ----- //

var (
	// ErrSMPTE is returned for files timed in SMPTE frames instead of ticks per quarter note.
	ErrSMPTE = errors.New("SMPTE time format is not supported")
	// ErrNoTracks ...
	ErrNoTracks = errors.New("no tracks")
)

// LoadSong reads a Standard MIDI File.
func LoadSong(path string) (*Song, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	song, err := ReadSong(bufio.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return song, nil
}

// ReadSong parses a Standard MIDI File. Malformed input is reported as an error.
func ReadSong(r io.Reader) (*Song, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	// MThd, length, format, tracks, division
	if len(data) >= 14 && string(data[:4]) == "MThd" && data[12]&0x80 != 0 {
		return nil, ErrSMPTE
	}
	s, err := parseSMF(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse MIDI: %w", err)
	}
	ticks, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return nil, ErrSMPTE
	}
	if ticks == 0 {
		return nil, fmt.Errorf("invalid time division 0")
	}
	if len(s.Tracks) == 0 {
		return nil, ErrNoTracks
	}
	song := &Song{
		TicksPerQuarter: uint16(ticks),
		Tracks:          make([][]Event, len(s.Tracks)),
	}
	for i, track := range s.Tracks {
		song.Tracks[i] = convertTrack(track)
	}
	return song, nil
}

// parseSMF turns a panic inside the parser into an error.
func parseSMF(data []byte) (s *smf.SMF, err error) {
	defer func() {
		if r := recover(); r != nil {
			s = nil
			err = fmt.Errorf("%v", r)
		}
	}()
	return smf.ReadFrom(bytes.NewReader(data))
}

// convertTrack keeps the events the engine interprets. The delta of every
// skipped event is carried into the next kept one.
func convertTrack(track smf.Track) []Event {
	events := make([]Event, 0, len(track))
	var carry uint32
	for _, ev := range track {
		carry += ev.Delta
		e, ok := decodeMessage(ev.Message)
		if !ok {
			continue
		}
		e.Delta = carry
		carry = 0
		events = append(events, e)
	}
	return events
}
