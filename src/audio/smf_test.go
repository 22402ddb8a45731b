package audio

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func midiFile(division []byte, tracks ...[]byte) []byte {
	var b bytes.Buffer
	b.WriteString("MThd")
	b.Write([]byte{0, 0, 0, 6, 0, 1, 0, byte(len(tracks))})
	b.Write(division)
	for _, track := range tracks {
		b.WriteString("MTrk")
		n := len(track)
		b.Write([]byte{byte(n >> 24), byte(n >> 16), byte(n >> 8), byte(n)})
		b.Write(track)
	}
	return b.Bytes()
}

var testTrack = []byte{
	0x00, 0xC0, 0x28, // program change
	0x00, 0xFF, 0x51, 0x03, 0x07, 0xA1, 0x20, // tempo 500000
	0x00, 0x90, 0x3C, 0x64, // note on
	0x30, 0xB0, 0x07, 0x64, // control change, skipped
	0x30, 0x80, 0x3C, 0x40, // note off
	0x00, 0xFF, 0x2F, 0x00, // end of track
}

func TestReadSong(t *testing.T) {
	song, err := ReadSong(bytes.NewReader(midiFile([]byte{0x00, 0x60}, testTrack)))
	expectNoError(t, err)
	if err != nil {
		return
	}
	expectEqual(t, song.TicksPerQuarter, uint16(96))
	expectEqual(t, len(song.Tracks), 1)
	events := song.Tracks[0]
	expectEqual(t, len(events), 4)
	if len(events) != 4 {
		return
	}
	expectEqual(t, events[0], Event{Kind: EventProgramChange, Program: 40})
	expectEqual(t, events[1], Event{Kind: EventTempo, Tempo: 500000})
	expectEqual(t, events[2], Event{Kind: EventNoteOn, Key: 60, Velocity: 100})
	expectEqual(t, events[3], Event{Delta: 96, Kind: EventNoteOff, Key: 60, Velocity: 64})
}

func TestReadSongMalformed(t *testing.T) {
	for _, data := range [][]byte{
		nil,
		[]byte("hello, world"),
		[]byte("MThd\x00\x00"),
		midiFile([]byte{0x00, 0x00}, testTrack),
		midiFile([]byte{0x00, 0x60}),
	} {
		_, err := ReadSong(bytes.NewReader(data))
		if err == nil {
			t.Errorf("expected an error for %q", data)
		}
	}
}

func TestReadSongCorruptedNeverPanics(t *testing.T) {
	valid := midiFile([]byte{0x00, 0x60}, testTrack)
	read := func(data []byte) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("panic for % x: %v", data, r)
			}
		}()
		ReadSong(bytes.NewReader(data))
	}
	for n := 0; n < len(valid); n++ {
		read(valid[:n])
	}
	for i := range valid {
		for _, b := range []byte{0x00, 0x7F, 0x80, 0xFF} {
			data := append([]byte(nil), valid...)
			data[i] = b
			read(data)
		}
	}
}

func TestReadSongSMPTE(t *testing.T) {
	for _, division := range [][]byte{{0xE7, 0x28}, {0xE8, 0x50}, {0x80, 0x00}} {
		_, err := ReadSong(bytes.NewReader(midiFile(division, testTrack)))
		if !errors.Is(err, ErrSMPTE) {
			t.Errorf("expected %v, but got: %v", ErrSMPTE, err)
		}
	}
}

func TestLoadSong(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.mid")
	expectNoError(t, os.WriteFile(path, midiFile([]byte{0x01, 0xE0}, testTrack, testTrack), 0644))
	song, err := LoadSong(path)
	expectNoError(t, err)
	if err != nil {
		return
	}
	expectEqual(t, song.TicksPerQuarter, uint16(480))
	expectEqual(t, len(song.Tracks), 2)

	_, err = LoadSong(filepath.Join(t.TempDir(), "missing.mid"))
	if err == nil {
		t.Errorf("expected an error for a missing file")
	}
}
