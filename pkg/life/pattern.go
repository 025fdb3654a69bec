package life

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownPattern is returned by LookupPattern for names not in the library.
var ErrUnknownPattern = errors.New("unknown pattern")

// Pattern is a named life-form template: the offsets of its alive cells
// relative to an anchor. Period and Drift describe how the form evolves on an
// open board: after Period generations it reappears translated by Drift.
type Pattern struct {
	Name    string
	Offsets []Coord
	Period  int
	Drift   Coord
}

// Len returns the number of cells in the pattern.
func (p Pattern) Len() int { return len(p.Offsets) }

// Bounds returns the smallest rectangle holding every offset.
func (p Pattern) Bounds() (lo, hi Coord) {
	for i, o := range p.Offsets {
		if i == 0 {
			lo, hi = o, o
			continue
		}
		lo.X, lo.Y = min(lo.X, o.X), min(lo.Y, o.Y)
		hi.X, hi.Y = max(hi.X, o.X), max(hi.Y, o.Y)
	}
	return
}

// Instantiate translates every offset of p by anchor, preserving order.
func Instantiate(p Pattern, anchor Coord) []Coord {
	out := make([]Coord, len(p.Offsets))
	for i, o := range p.Offsets {
		out[i] = o.Add(anchor)
	}
	return out
}

// Stamp marks every cell of p anchored at anchor alive. Other cells are left
// untouched; cells falling outside the grid are skipped.
func Stamp(g *Grid, p Pattern, anchor Coord) {
	for _, c := range Instantiate(p, anchor) {
		g.Set(c, Live)
	}
}

// Oscillators.
var (
	Blinker = Pattern{
		Name:    "blinker",
		Period:  2,
		Offsets: []Coord{{-1, 0}, {0, 0}, {1, 0}},
	}

	Toad = Pattern{
		Name:   "toad",
		Period: 2,
		Offsets: []Coord{
			{-1, 0}, {0, 0}, {1, 0},
			{0, 1}, {1, 1}, {2, 1},
		},
	}

	Beacon = Pattern{
		Name:   "beacon",
		Period: 2,
		Offsets: []Coord{
			{-1, 1}, {0, 1}, {-1, 0}, {0, 0},
			{1, -1}, {2, -1}, {1, -2}, {2, -2},
		},
	}

	Pulsar = Pattern{
		Name:   "pulsar",
		Period: 3,
		Offsets: []Coord{
			// inner horizontal arms
			{-4, 1}, {-3, 1}, {-2, 1}, {2, 1}, {3, 1}, {4, 1},
			{-4, -1}, {-3, -1}, {-2, -1}, {2, -1}, {3, -1}, {4, -1},
			// inner vertical arms
			{1, 2}, {1, 3}, {1, 4}, {1, -4}, {1, -3}, {1, -2},
			{-1, 2}, {-1, 3}, {-1, 4}, {-1, -4}, {-1, -3}, {-1, -2},
			// outer vertical arms
			{-6, 2}, {-6, 3}, {-6, 4}, {6, 2}, {6, 3}, {6, 4},
			{-6, -2}, {-6, -3}, {-6, -4}, {6, -2}, {6, -3}, {6, -4},
			// outer horizontal arms
			{-4, 6}, {-3, 6}, {-2, 6}, {4, 6}, {3, 6}, {2, 6},
			{-4, -6}, {-3, -6}, {-2, -6}, {4, -6}, {3, -6}, {2, -6},
		},
	}
)

// Spaceships.
var (
	// Glider moves one cell right and one row up (toward smaller y) every
	// four generations.
	Glider = Pattern{
		Name:    "glider",
		Period:  4,
		Drift:   Coord{1, -1},
		Offsets: []Coord{{0, 1}, {1, 0}, {2, 0}, {2, 1}, {2, 2}},
	}
)

var library = []Pattern{Blinker, Toad, Beacon, Pulsar, Glider}

// Patterns returns the built-in library in a stable order.
func Patterns() []Pattern {
	out := make([]Pattern, len(library))
	copy(out, library)
	return out
}

// LookupPattern resolves a library pattern by case-insensitive name.
func LookupPattern(name string) (Pattern, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, p := range library {
		if p.Name == key {
			return p, nil
		}
	}
	return Pattern{}, errors.Wrapf(ErrUnknownPattern, "[LookupPattern] %q", name)
}
