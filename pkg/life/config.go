package life

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is the root cause of every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config describes a board and how it is seeded and driven.
type Config struct {
	Width  int   `json:"width"`
	Height int   `json:"height"`
	Seed   int64 `json:"seed"`
	// TPS is the number of generations per second the front-ends aim for.
	TPS int `json:"tps"`
	// Workers > 0 selects the banded parallel step with that many bands.
	Workers int      `json:"workers"`
	Start   SeedSpec `json:"start"`
}

// DefaultConfig returns a 100x100 board stepped at 4 generations per second
// with a pulsar in the middle and a glider in the lower left.
func DefaultConfig() Config {
	return Config{
		Width:  100,
		Height: 100,
		Seed:   42,
		TPS:    4,
		Start: SeedSpec{
			Stamps: []Placement{
				{Pattern: Pulsar.Name, Anchor: Coord{50, 50}},
				{Pattern: Glider.Name, Anchor: Coord{10, 85}},
				{Pattern: Blinker.Name, Anchor: Coord{20, 20}},
			},
		},
	}
}

// FromMap populates a Config from flag-style key/value pairs on top of
// DefaultConfig.
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().With(cfg)
}

// With returns c overridden by flag-style key/value pairs: w, h, seed, tps,
// workers, density, pattern and at ("x,y", defaults to the board centre).
// Unparseable values leave the field unchanged.
func (c Config) With(cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["tps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TPS = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Start.Density = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok {
		anchor := Coord{c.Width / 2, c.Height / 2}
		if at, ok := cfg["at"]; ok {
			if parsed, err := ParseCoord(at); err == nil {
				anchor = parsed
			}
		}
		c.Start.Stamps = []Placement{{Pattern: v, Anchor: anchor}}
	}
	return c
}

// ParseCoord parses "x,y".
func ParseCoord(s string) (Coord, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Coord{}, errors.Errorf("[ParseCoord] %q is not of the form x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Coord{}, errors.Wrapf(err, "[ParseCoord] bad x in %q", s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Coord{}, errors.Wrapf(err, "[ParseCoord] bad y in %q", s)
	}
	return Coord{x, y}, nil
}

// Validate reports the first setup error in c.
func (c Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return errors.Wrapf(ErrInvalidConfig, "negative extent %dx%d", c.Width, c.Height)
	}
	if c.TPS <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "tps must be positive, got %d", c.TPS)
	}
	if c.Workers < 0 {
		return errors.Wrapf(ErrInvalidConfig, "workers must not be negative, got %d", c.Workers)
	}
	if c.Start.Density < 0 || c.Start.Density > 1 {
		return errors.Wrapf(ErrInvalidConfig, "density %v outside [0,1]", c.Start.Density)
	}
	for _, st := range c.Start.Stamps {
		if _, err := LookupPattern(st.Pattern); err != nil {
			return errors.Wrap(ErrInvalidConfig, err.Error())
		}
	}
	return nil
}

// LoadConfig reads a JSON config on top of DefaultConfig. Keys missing from
// the file keep their defaults; a "start" object replaces the default seed.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	var raw struct {
		Config
		Start *SeedSpec `json:"start"`
	}
	raw.Config = config
	if err = json.Unmarshal(data, &raw); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}
	config = raw.Config
	if raw.Start != nil {
		config.Start = *raw.Start
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] %+v", filename)
	}
	return config, nil
}
