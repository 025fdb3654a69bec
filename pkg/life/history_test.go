package life

import "testing"

func TestHistoryExtinct(t *testing.T) {
	h := NewHistory(0)
	if v := h.Push(MustGrid(4, 4)); v != Extinct || !v.Settled() {
		t.Fatalf("empty board verdict %v, want extinct", v)
	}
}

func TestHistoryStillLife(t *testing.T) {
	g := MustGrid(6, 6)
	for _, c := range []Coord{{2, 2}, {3, 2}, {2, 3}, {3, 3}} {
		g.Set(c, Live)
	}
	h := NewHistory(0)
	if v := h.Push(g); v != Evolving {
		t.Fatalf("first push verdict %v", v)
	}
	if v := h.Push(Step(g)); v != StillLife {
		t.Fatalf("block verdict %v, want still", v)
	}
}

func TestHistoryCycling(t *testing.T) {
	for _, p := range []Pattern{Blinker, Pulsar} {
		g := MustGrid(30, 30)
		Stamp(g, p, C(15, 15))
		h := NewHistory(0)
		for i := 0; i < p.Period; i++ {
			if v := h.Push(g); v != Evolving {
				t.Fatalf("%s generation %d verdict %v, want evolving", p.Name, i, v)
			}
			g = Step(g)
		}
		if v := h.Push(g); v != Cycling {
			t.Fatalf("%s verdict %v, want cycling", p.Name, v)
		}
	}
}

func TestHistoryGliderKeepsEvolving(t *testing.T) {
	g := MustGrid(40, 40)
	Stamp(g, Glider, C(5, 30))
	h := NewHistory(0)
	for i := 0; i < 12; i++ {
		if v := h.Push(g); v != Evolving {
			t.Fatalf("glider generation %d verdict %v", i, v)
		}
		g = Step(g)
	}
	if h.Len() != DefaultHistoryDepth {
		t.Fatalf("history kept %d entries, want %d", h.Len(), DefaultHistoryDepth)
	}
	h.Reset()
	if h.Len() != 0 {
		t.Fatal("Reset did not clear history")
	}
}
