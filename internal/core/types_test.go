package core

import (
	"slices"
	"testing"
)

type nopSim struct{}

func (nopSim) Name() string { return "nop" }
func (nopSim) Size() Size { return Size{W: 1, H: 1} }
func (nopSim) Reset(int64) {}
func (nopSim) Step() {}
func (nopSim) Cells() []uint8 { return []uint8{0} }

func TestRegisterIgnoresIncompleteEntries(t *testing.T) {
	before := len(Sims())
	Register("", func(map[string]string) (Sim, error) { return nopSim{}, nil })
	Register("nil-factory", nil)
	if len(Sims()) != before {
		t.Fatal("incomplete registrations must be ignored")
	}
	Register("zz-nop", func(map[string]string) (Sim, error) { return nopSim{}, nil })
	if !slices.Contains(Names(), "zz-nop") || !slices.IsSorted(Names()) {
		t.Fatalf("Names() = %v", Names())
	}
	delete(sims, "zz-nop")
}

func TestParameterLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "a", Params: []Parameter{{Key: "x", Value: "1"}}},
		{Name: "b", Params: []Parameter{{Key: "y", Value: "2"}}},
	}}
	if p, ok := snap.Lookup("y"); !ok || p.Value != "2" {
		t.Fatalf("Lookup(y) = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("z"); ok {
		t.Fatal("Lookup(z) should miss")
	}
}
