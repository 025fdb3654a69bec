package app

import (
	"strconv"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"

	"life-ca/internal/sims/conway"
)

// unset marks numeric flags that should not override the board config. Only
// flags whose valid values are never negative use it; the seed is kept as
// text so every int64 can be passed.
const unset = -1

// Config represents the command-line parameters for the front-ends.
type Config struct {
	Sim        string
	ConfigFile string
	Scale      int
	Border     int
	Panel      int
	Palette    string

	Width   int
	Height  int
	Seed    string
	TPS     int
	Workers int
	Density float64
	Pattern string
	At      string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:     conway.Name,
		Scale:   6,
		Border:  10,
		Panel:   220,
		Palette: "classic",
		Width:   unset,
		Height:  unset,
		TPS:     unset,
		Workers: unset,
		Density: unset,
	}
}

// Bind attaches the configuration to the provided parser.
func (c *Config) Bind(p *flaggy.Parser) {
	p.String(&c.Sim, "", "sim", "simulation to run")
	p.String(&c.ConfigFile, "f", "config", "JSON board config")
	p.Int(&c.Scale, "", "scale", "pixels per cell")
	p.Int(&c.Border, "", "border", "wall thickness in pixels")
	p.Int(&c.Panel, "", "panel", "status panel width in pixels (0 hides it)")
	p.String(&c.Palette, "", "palette", "color scheme [classic|dark]")
	p.Int(&c.Width, "x", "width", "largest x coordinate of the board")
	p.Int(&c.Height, "y", "height", "largest y coordinate of the board")
	p.String(&c.Seed, "s", "seed", "seed for the random fill")
	p.Int(&c.TPS, "t", "tps", "generations per second")
	p.Int(&c.Workers, "w", "workers", "row bands per step (0 = serial)")
	p.Float64(&c.Density, "d", "density", "probability that a cell starts alive")
	p.String(&c.Pattern, "p", "pattern", "pattern to stamp at start [blinker|toad|beacon|pulsar|glider]")
	p.String(&c.At, "a", "at", "anchor of --pattern as x,y")
}

// SimConfig converts the flags that were given into registry options.
func (c *Config) SimConfig() (map[string]string, error) {
	m := map[string]string{}
	if c.ConfigFile != "" {
		m[conway.ConfigKey] = c.ConfigFile
	}
	setInt := func(key string, v int) {
		if v != unset {
			m[key] = strconv.Itoa(v)
		}
	}
	setInt("w", c.Width)
	setInt("h", c.Height)
	setInt("tps", c.TPS)
	setInt("workers", c.Workers)
	if c.Seed != "" {
		seed, err := strconv.ParseInt(c.Seed, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "[SimConfig] bad seed %q", c.Seed)
		}
		m["seed"] = strconv.FormatInt(seed, 10)
	}
	if c.Density != unset {
		m["density"] = strconv.FormatFloat(c.Density, 'g', -1, 64)
	}
	if c.Pattern != "" {
		m["pattern"] = c.Pattern
		if c.At != "" {
			m["at"] = c.At
		}
	}
	return m, nil
}
