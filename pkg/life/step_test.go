package life

import (
	"context"
	"errors"
	"slices"
	"testing"

	"life-ca/pkg/core"
)

func randomGrid(w, h int, density float64, seed int64) *Grid {
	g := MustGrid(w, h)
	Randomize(g, density, core.NewRNG(seed))
	return g
}

func TestRuleTable(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantAlive := n == 2 || n == 3
		if got := Rule(true, n); got != wantAlive {
			t.Fatalf("Rule(alive, %d) = %v, want %v", n, got, wantAlive)
		}
		wantBorn := n == 3
		if got := Rule(false, n); got != wantBorn {
			t.Fatalf("Rule(dead, %d) = %v, want %v", n, got, wantBorn)
		}
	}
}

func TestStepAppliesRulePerCell(t *testing.T) {
	g := randomGrid(30, 20, 0.35, 11)
	next := Step(g)
	for y := 0; y <= g.MaxY(); y++ {
		for x := 0; x <= g.MaxX(); x++ {
			c := C(x, y)
			want := Rule(g.Alive(c), g.LiveNeighbors(c))
			if next.Alive(c) != want {
				t.Fatalf("cell %v alive=%v, want %v", c, next.Alive(c), want)
			}
		}
	}
}

func TestStepIsDeterministicAndPure(t *testing.T) {
	g := randomGrid(25, 25, 0.4, 5)
	before := g.Clone()
	a := Step(g)
	b := Step(g)
	if !a.Equal(b) {
		t.Fatal("Step is not deterministic")
	}
	if !g.Equal(before) {
		t.Fatal("Step mutated its input")
	}
	if a == g {
		t.Fatal("Step must return a fresh grid")
	}
}

func TestEmptyGridIsFixedPoint(t *testing.T) {
	g := MustGrid(10, 8)
	if next := Step(g); !next.Equal(g) {
		t.Fatal("empty grid did not map to itself")
	}
	if next := Step(MustGrid(0, 0)); next.Population() != 0 {
		t.Fatal("single-cell empty grid did not stay empty")
	}
}

func TestLoneCornerCellDies(t *testing.T) {
	g := MustGrid(6, 4)
	corners := []Coord{{0, 0}, {6, 0}, {0, 4}, {6, 4}}
	for _, c := range corners {
		g.Clear()
		g.Set(c, Live)
		if Step(g).Alive(c) {
			t.Fatalf("isolated corner %v survived", c)
		}
	}
}

func TestBlockInCornerIsStill(t *testing.T) {
	g := MustGrid(5, 5)
	for _, c := range []Coord{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		g.Set(c, Live)
	}
	if !Step(g).Equal(g) {
		t.Fatal("block against the corner should be a still life")
	}
}

func TestNoWraparound(t *testing.T) {
	g := MustGrid(9, 9)
	for _, c := range []Coord{{0, 4}, {0, 5}, {0, 6}} {
		g.Set(c, Live)
	}
	next := Step(g)
	want := []Coord{{0, 5}, {1, 5}}
	if got := next.AliveCells(); !slices.Equal(got, want) {
		t.Fatalf("edge blinker became %v, want %v", got, want)
	}
	if next.Alive(C(g.MaxX(), 5)) {
		t.Fatal("births must not wrap to the opposite edge")
	}
}

func TestStepIntoOverwritesDestination(t *testing.T) {
	src := randomGrid(12, 12, 0.5, 2)
	dst := MustGrid(12, 12)
	Randomize(dst, 1, core.NewRNG(0))
	StepInto(dst, src)
	if !dst.Equal(Step(src)) {
		t.Fatal("StepInto left stale cells in the destination")
	}
}

func TestStepIntoRejectsAliasing(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when destination aliases source")
		}
	}()
	g := MustGrid(2, 2)
	StepInto(g, g)
}

func TestStepParallelMatchesStep(t *testing.T) {
	g := randomGrid(37, 23, 0.3, 99)
	want := Step(g)
	for _, workers := range []int{0, 1, 2, 3, 7, 64} {
		got, err := StepParallel(context.Background(), g, workers)
		if err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		if !got.Equal(want) {
			t.Fatalf("workers=%d: parallel step differs from serial step", workers)
		}
	}
}

func TestStepParallelHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := StepParallel(ctx, MustGrid(10, 10), 2); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
