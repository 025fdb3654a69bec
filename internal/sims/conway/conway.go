// Package conway adapts the life board to the core.Sim contract so front-ends
// can drive it like any other registered simulation.
package conway

import (
	"context"
	"fmt"
	"strconv"

	"life-ca/internal/core"
	rng "life-ca/pkg/core"
	"life-ca/pkg/life"
)

// Name is the registry key of the simulation.
const Name = "life"

// Life double-buffers a bounded Game of Life board: each Step reads the
// current generation and writes the next into the spare grid, then swaps.
type Life struct {
	cfg  life.Config
	cur  *life.Grid
	nxt  *life.Grid
	seed int64

	generation int
	verdict    life.Verdict
	history    *life.History
}

// New validates cfg and returns a board seeded with cfg.Seed.
func New(cfg life.Config) (*Life, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cur, err := life.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	l := &Life{
		cfg:     cfg,
		cur:     cur,
		nxt:     cur.Clone(),
		history: life.NewHistory(0),
	}
	if err := l.reseed(cfg.Seed); err != nil {
		return nil, err
	}
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return Name }

// Size returns the grid dimensions in cells.
func (l *Life) Size() core.Size { return core.Size{W: l.cur.Cols(), H: l.cur.Rows()} }

// Cells exposes the current generation, one byte per cell.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Grid returns the current generation. It is replaced on every Step.
func (l *Life) Grid() *life.Grid { return l.cur }

// Config returns the configuration the board was built from.
func (l *Life) Config() life.Config { return l.cfg }

// Generation counts steps since the last reset.
func (l *Life) Generation() int { return l.generation }

// Verdict classifies the current generation against recent ones.
func (l *Life) Verdict() life.Verdict { return l.verdict }

// Seed returns the seed used by the last reset.
func (l *Life) Seed() int64 { return l.seed }

// Reset re-seeds the board from the configured start using seed for the
// random fill.
func (l *Life) Reset(seed int64) {
	// Start was validated in New, so Apply cannot fail here.
	_ = l.reseed(seed)
}

func (l *Life) reseed(seed int64) error {
	if err := l.cfg.Start.Apply(l.cur, rng.NewRNG(seed)); err != nil {
		return err
	}
	l.seed = seed
	l.generation = 0
	l.edited()
	return nil
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	if l.cfg.Workers > 0 {
		// Background is never cancelled, so the banded step cannot fail.
		_ = life.StepParallelInto(context.Background(), l.nxt, l.cur, l.cfg.Workers)
	} else {
		life.StepInto(l.nxt, l.cur)
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.generation++
	l.verdict = l.history.Push(l.cur)
}

// Toggle flips one cell of the current generation.
func (l *Life) Toggle(c life.Coord) {
	l.cur.Toggle(c)
	l.edited()
}

// Stamp places p with its anchor at c.
func (l *Life) Stamp(p life.Pattern, c life.Coord) {
	life.Stamp(l.cur, p, c)
	l.edited()
}

// Clear kills every cell without resetting the generation counter.
func (l *Life) Clear() {
	l.cur.Clear()
	l.edited()
}

// edited restarts stagnation tracking from the current board.
func (l *Life) edited() {
	l.history.Reset()
	l.verdict = l.history.Push(l.cur)
}

// Parameters publishes the board state for HUDs.
func (l *Life) Parameters() core.ParameterSnapshot {
	size := l.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				{Key: "size", Label: "Size", Value: fmt.Sprintf("%dx%d", size.W, size.H)},
				{Key: "generation", Label: "Generation", Value: strconv.Itoa(l.generation)},
				{Key: "population", Label: "Population", Value: strconv.Itoa(l.cur.Population())},
				{Key: "state", Label: "State", Value: l.verdict.String()},
			},
		},
		{
			Name: "Seed",
			Params: []core.Parameter{
				{Key: "seed", Label: "Seed", Value: strconv.FormatInt(l.seed, 10)},
				{Key: "density", Label: "Density", Value: strconv.FormatFloat(l.cfg.Start.Density, 'f', 2, 64)},
			},
		},
	}}
}

var (
	_ core.Sim               = (*Life)(nil)
	_ core.ParameterProvider = (*Life)(nil)
)

// ConfigKey names the registry option holding a JSON config path. Other
// options override values read from that file.
const ConfigKey = "config"

func init() {
	core.Register(Name, func(cfg map[string]string) (core.Sim, error) {
		base := life.DefaultConfig()
		if path := cfg[ConfigKey]; path != "" {
			var err error
			if base, err = life.LoadConfig(path); err != nil {
				return nil, err
			}
		}
		l, err := New(base.With(cfg))
		if err != nil {
			return nil, err
		}
		return l, nil
	})
}
