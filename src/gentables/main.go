package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"go/format"
	"log"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

const (
	header         = "// Code generated by gentables; DO NOT EDIT.\n\npackage audio\n\n"
	numNotes       = 128
	tableSize      = 1024
	freqMultiplier = 100
	sampleMax      = 0x8000
)

func main() {
	flag.Parse()
	dir := flag.Arg(0)
	if dir == "" {
		panic("dir is not passed")
	}
	log.SetFlags(log.Lshortfile)

	ctx := context.Background()
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := save(filepath.Join(dir, "note_table.gen.go"), noteTable())
		log.Println("saved note table")
		return err
	})
	g.Go(func() error {
		err := save(filepath.Join(dir, "sine_table.gen.go"), sineTable())
		log.Println("saved sine table")
		return err
	})
	err := g.Wait()
	if err != nil {
		log.Fatalf("error: %v\n", err)
	}
	log.Println("Successfully generated tables.")
}

// noteTable lists equal-tempered frequencies with A4 = 440Hz, highest key first.
func noteTable() []byte {
	var b bytes.Buffer
	b.WriteString(header)
	b.WriteString("// noteFreqTable holds Hz*freqMultiplier for MIDI keys 127 down to 0.\n")
	fmt.Fprintf(&b, "var noteFreqTable = [%d]uint32{\n", numNotes)
	for i := 0; i < numNotes; i++ {
		key := numNotes - 1 - i
		freq := 440 * math.Pow(2, float64(key-69)/12) * freqMultiplier
		writeValue(&b, i, 8, int64(math.Round(freq)))
	}
	b.WriteString("\n}\n")
	return b.Bytes()
}

func sineTable() []byte {
	var b bytes.Buffer
	b.WriteString(header)
	b.WriteString("var sineTable = [tableSize]Sample{\n")
	for i := 0; i < tableSize; i++ {
		v := sampleMax * math.Sin(2*math.Pi*float64(i)/tableSize)
		writeValue(&b, i, 16, int64(math.Round(v)))
	}
	b.WriteString("\n}\n")
	return b.Bytes()
}

func writeValue(b *bytes.Buffer, i int, perLine int, v int64) {
	if i%perLine == 0 {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("\t")
	} else {
		b.WriteString(" ")
	}
	fmt.Fprintf(b, "%d,", v)
}

func save(path string, src []byte) error {
	formatted, err := format.Source(src)
	if err != nil {
		return fmt.Errorf("format %s: %w", path, err)
	}
	return os.WriteFile(path, formatted, 0644)
}
