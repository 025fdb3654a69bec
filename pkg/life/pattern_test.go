package life

import (
	"slices"
	"testing"

	"github.com/pkg/errors"
)

func sortedCoords(cs []Coord) []Coord {
	out := slices.Clone(cs)
	slices.SortFunc(out, func(a, b Coord) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return out
}

func TestPatternSizes(t *testing.T) {
	want := map[string]int{"blinker": 3, "toad": 6, "beacon": 8, "pulsar": 48, "glider": 5}
	for _, p := range Patterns() {
		if p.Len() != want[p.Name] {
			t.Fatalf("%s has %d cells, want %d", p.Name, p.Len(), want[p.Name])
		}
		seen := map[Coord]bool{}
		for _, o := range p.Offsets {
			if seen[o] {
				t.Fatalf("%s repeats offset %v", p.Name, o)
			}
			seen[o] = true
		}
	}
	if len(Patterns()) != len(want) {
		t.Fatalf("library has %d patterns, want %d", len(Patterns()), len(want))
	}
}

func TestPulsarIsFourFoldSymmetric(t *testing.T) {
	cells := map[Coord]bool{}
	for _, o := range Pulsar.Offsets {
		cells[o] = true
	}
	for _, o := range Pulsar.Offsets {
		for _, img := range []Coord{{-o.X, o.Y}, {o.X, -o.Y}, {o.Y, o.X}} {
			if !cells[img] {
				t.Fatalf("pulsar offset %v has no mirror %v", o, img)
			}
		}
	}
}

func TestInstantiateIsTranslation(t *testing.T) {
	anchors := []Coord{{0, 0}, {5, 9}, {-3, 4}, {100, -7}}
	for _, p := range Patterns() {
		for _, a := range anchors {
			for _, b := range anchors {
				pa, pb := Instantiate(p, a), Instantiate(p, b)
				if len(pa) != len(pb) {
					t.Fatalf("%s: lengths differ", p.Name)
				}
				for i := range pa {
					if pb[i].Sub(pa[i]) != b.Sub(a) {
						t.Fatalf("%s: %v and %v differ by %v, want %v", p.Name, pa[i], pb[i], pb[i].Sub(pa[i]), b.Sub(a))
					}
				}
			}
		}
		if !slices.Equal(Instantiate(p, C(0, 0)), p.Offsets) {
			t.Fatalf("%s: instantiating at the origin must return the offsets", p.Name)
		}
	}
}

func TestPatternsReturnAfterTheirPeriod(t *testing.T) {
	anchor := C(20, 20)
	for _, p := range Patterns() {
		g := MustGrid(40, 40)
		Stamp(g, p, anchor)
		for i := 1; i < p.Period; i++ {
			g = Step(g)
			if slices.Equal(g.AliveCells(), sortedCoords(Instantiate(p, anchor))) {
				t.Fatalf("%s repeated after %d generations, period is %d", p.Name, i, p.Period)
			}
		}
		g = Step(g)
		want := sortedCoords(Instantiate(p, anchor.Add(p.Drift)))
		if got := g.AliveCells(); !slices.Equal(got, want) {
			t.Fatalf("%s after %d generations = %v, want %v", p.Name, p.Period, got, want)
		}
	}
}

func TestBlinkerAlternates(t *testing.T) {
	g := MustGrid(10, 10)
	Stamp(g, Blinker, C(5, 5))
	once := Step(g)
	if got, want := once.AliveCells(), []Coord{{5, 4}, {5, 5}, {5, 6}}; !slices.Equal(got, want) {
		t.Fatalf("blinker phase 2 = %v, want %v", got, want)
	}
	if !Step(once).Equal(g) {
		t.Fatal("blinker did not return after two generations")
	}
}

func TestGliderDriftsDiagonally(t *testing.T) {
	g := MustGrid(30, 30)
	anchor := C(5, 20)
	Stamp(g, Glider, anchor)
	for i := 0; i < 4; i++ {
		g = Step(g)
	}
	want := sortedCoords(Instantiate(Glider, anchor.Add(C(1, -1))))
	if got := g.AliveCells(); !slices.Equal(got, want) {
		t.Fatalf("glider after 4 generations = %v, want %v", got, want)
	}
}

func TestStampLeavesOtherCellsAlone(t *testing.T) {
	g := MustGrid(20, 20)
	g.Set(C(19, 19), Live)
	Stamp(g, Toad, C(5, 5))
	if !g.Alive(C(19, 19)) {
		t.Fatal("stamp cleared an unrelated cell")
	}
	if n := g.Population(); n != 1+Toad.Len() {
		t.Fatalf("population %d, want %d", n, 1+Toad.Len())
	}
	Stamp(g, Toad, C(5, 5))
	if n := g.Population(); n != 1+Toad.Len() {
		t.Fatal("stamping twice must set cells alive, not toggle them")
	}
}

func TestStampClipsAtEdges(t *testing.T) {
	g := MustGrid(10, 10)
	Stamp(g, Pulsar, C(0, 0))
	if n := g.Population(); n != 12 {
		t.Fatalf("clipped pulsar population %d, want 12", n)
	}
}

func TestLookupPattern(t *testing.T) {
	for _, name := range []string{"glider", "Glider", " PULSAR "} {
		if _, err := LookupPattern(name); err != nil {
			t.Fatalf("LookupPattern(%q): %v", name, err)
		}
	}
	if _, err := LookupPattern("gosper gun"); errors.Cause(err) != ErrUnknownPattern {
		t.Fatalf("err = %v, want ErrUnknownPattern", err)
	}
}

func TestPatternBounds(t *testing.T) {
	lo, hi := Glider.Bounds()
	if lo != C(0, 0) || hi != C(2, 2) {
		t.Fatalf("glider bounds %v..%v", lo, hi)
	}
	lo, hi = Pulsar.Bounds()
	if lo != C(-6, -6) || hi != C(6, 6) {
		t.Fatalf("pulsar bounds %v..%v", lo, hi)
	}
}
