package render

import (
	"image/color"
	"slices"
	"testing"

	"github.com/pkg/errors"

	"life-ca/pkg/life"
)

func TestFillCells(t *testing.T) {
	p, err := PaletteByName("classic")
	if err != nil {
		t.Fatal(err)
	}
	cells := []uint8{0, 1, 7}
	buf := make([]byte, 4*len(cells))
	fillCells(buf, cells, p)
	want := []byte{255, 255, 255, 255, 0, 0, 0, 255, 0, 0, 0, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("pixels %v, want %v", buf, want)
	}

	dark, _ := PaletteByName("dark")
	fillCells(buf, cells, dark)
	want = []byte{0, 0, 0, 255, 255, 255, 255, 255, 255, 255, 255, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("dark pixels %v, want %v", buf, want)
	}
}

func TestGhostColorsPremultiplyBelowAlpha(t *testing.T) {
	for _, name := range PaletteNames() {
		p, _ := PaletteByName(name)
		r, g, b, a := p.Ghost.RGBA()
		if r > a || g > a || b > a {
			t.Fatalf("%s ghost premultiplies to %d,%d,%d,%d", name, r, g, b, a)
		}
		if a == 0xffff {
			t.Fatalf("%s ghost should be translucent", name)
		}
	}
}

func TestPaletteByName(t *testing.T) {
	if _, err := PaletteByName("DARK"); err != nil {
		t.Fatal(err)
	}
	if _, err := PaletteByName("neon"); errors.Cause(err) != ErrUnknownPalette {
		t.Fatalf("err = %v", err)
	}
	if !slices.Contains(PaletteNames(), DefaultPalette) {
		t.Fatal("default palette not registered")
	}
	p, _ := PaletteByName(DefaultPalette)
	if p.Live != (color.RGBA{A: 255}) {
		t.Fatal("classic live cells should be black")
	}
}

func TestLayoutCellAt(t *testing.T) {
	l := Layout{Cols: 10, Rows: 5, Scale: 8, Border: 4}
	if w, h := l.BoardSize(); w != 88 || h != 48 {
		t.Fatalf("board size %dx%d", w, h)
	}
	cases := []struct {
		px, py int
		want   life.Coord
		ok     bool
	}{
		{4, 4, life.C(0, 0), true},
		{11, 11, life.C(0, 0), true},
		{12, 4, life.C(1, 0), true},
		{83, 43, life.C(9, 4), true},
		{3, 10, life.Coord{}, false},
		{84, 10, life.Coord{}, false},
		{10, 44, life.Coord{}, false},
		{-5, -5, life.Coord{}, false},
	}
	for _, tc := range cases {
		got, ok := l.CellAt(tc.px, tc.py)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("CellAt(%d,%d) = %v,%v want %v,%v", tc.px, tc.py, got, ok, tc.want, tc.ok)
		}
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	l := Layout{Cols: 7, Rows: 9, Scale: 3, Border: 2}
	for y := 0; y < l.Rows; y++ {
		for x := 0; x < l.Cols; x++ {
			px, py := l.CellOrigin(life.C(x, y))
			if c, ok := l.CellAt(px+l.Scale-1, py+l.Scale-1); !ok || c != life.C(x, y) {
				t.Fatalf("cell (%d,%d) maps back to %v,%v", x, y, c, ok)
			}
		}
	}
	if c, ok := (Layout{Cols: 2, Rows: 2}).CellAt(1, 1); !ok || c != life.C(1, 1) {
		t.Fatal("zero scale should behave as scale 1")
	}
}
