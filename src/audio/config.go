package audio

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ----- Config ----- //

// Config holds player settings. Instruments are not configurable.
type Config struct {
	BufferSamples   int           `yaml:"buffer_samples"`
	Loop            bool          `yaml:"loop"`
	MidiIn          bool          `yaml:"midi_in"`
	MidiInPrefix    string        `yaml:"midi_in_prefix"`
	DropExcessNotes bool          `yaml:"drop_excess_notes"`
	Tail            time.Duration `yaml:"tail"`
	StatusInterval  time.Duration `yaml:"status_interval"`
}

// DefaultConfig ...
func DefaultConfig() *Config {
	return &Config{
		BufferSamples:  1024,
		Tail:           5 * time.Second,
		StatusInterval: 0,
	}
}

// LoadConfig reads a YAML file over the defaults.
func LoadConfig(path string) (*Config, error) {
	c := DefaultConfig()
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(bytes, c); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate ...
func (c *Config) Validate() error {
	if c.BufferSamples < 64 {
		return fmt.Errorf("buffer_samples must be at least 64, got %d", c.BufferSamples)
	}
	if c.Tail < 0 {
		return fmt.Errorf("tail must not be negative")
	}
	if c.StatusInterval < 0 {
		return fmt.Errorf("status_interval must not be negative")
	}
	return nil
}

func (c *Config) options() Options {
	return Options{DropExcessNotes: c.DropExcessNotes}
}

func (c *Config) tailSamples() int {
	return int(c.Tail * sampleRate / time.Second)
}
