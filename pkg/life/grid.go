package life

import (
	"github.com/pkg/errors"
)

// ErrInvalidSize is returned when a grid is requested with a negative extent.
var ErrInvalidSize = errors.New("grid extent must not be negative")

// Grid stores one CellState for every coordinate 0 <= x <= MaxX, 0 <= y <= MaxY
// in row-major order. A grid built with NewGrid(w, h) therefore holds
// (w+1)*(h+1) cells.
type Grid struct {
	maxX, maxY int
	stride     int
	cells      []uint8
}

// NewGrid allocates an all-dead grid covering 0..w by 0..h inclusive.
func NewGrid(w, h int) (*Grid, error) {
	if w < 0 || h < 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "[NewGrid] got %dx%d", w, h)
	}
	return newGrid(w, h), nil
}

// MustGrid is NewGrid for extents known to be valid.
func MustGrid(w, h int) *Grid {
	g, err := NewGrid(w, h)
	if err != nil {
		panic(err)
	}
	return g
}

func newGrid(w, h int) *Grid {
	return &Grid{maxX: w, maxY: h, stride: w + 1, cells: make([]uint8, (w+1)*(h+1))}
}

// MaxX returns the largest valid x coordinate.
func (g *Grid) MaxX() int { return g.maxX }

// MaxY returns the largest valid y coordinate.
func (g *Grid) MaxY() int { return g.maxY }

// Cols returns the number of cells per row.
func (g *Grid) Cols() int { return g.maxX + 1 }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.maxY + 1 }

// Contains reports whether c lies inside the grid domain.
func (g *Grid) Contains(c Coord) bool {
	return c.X >= 0 && c.X <= g.maxX && c.Y >= 0 && c.Y <= g.maxY
}

func (g *Grid) index(c Coord) int { return c.Y*g.stride + c.X }

// Get returns the state at c. The second result is false when c is outside
// the domain, which callers treat as "no cell" rather than a failure.
func (g *Grid) Get(c Coord) (CellState, bool) {
	if !g.Contains(c) {
		return CellState{}, false
	}
	return CellState{Alive: g.cells[g.index(c)] != 0}, true
}

// Alive reports whether c is inside the domain and alive.
func (g *Grid) Alive(c Coord) bool {
	return g.Contains(c) && g.cells[g.index(c)] != 0
}

// Set replaces the state at c. Coordinates outside the domain are ignored.
func (g *Grid) Set(c Coord, s CellState) {
	if !g.Contains(c) {
		return
	}
	g.cells[g.index(c)] = s.byte()
}

// Toggle flips the state at c. Coordinates outside the domain are ignored.
func (g *Grid) Toggle(c Coord) {
	if !g.Contains(c) {
		return
	}
	g.cells[g.index(c)] ^= 1
}

// Neighbors returns the eight neighbor coordinates of c. Some may be outside
// the domain.
func (g *Grid) Neighbors(c Coord) [8]Coord { return Neighbors(c) }

// LiveNeighbors counts the alive cells around c. Off-grid neighbors count as dead.
func (g *Grid) LiveNeighbors(c Coord) int {
	n := 0
	for _, nc := range Neighbors(c) {
		if g.Alive(nc) {
			n++
		}
	}
	return n
}

// Population returns the number of alive cells.
func (g *Grid) Population() (count int) {
	for _, v := range g.cells {
		count += int(v)
	}
	return
}

// AliveCells lists alive coordinates in row-major order.
func (g *Grid) AliveCells() []Coord {
	var out []Coord
	for i, v := range g.cells {
		if v != 0 {
			out = append(out, Coord{X: i % g.stride, Y: i / g.stride})
		}
	}
	return out
}

// Cells exposes the backing buffer, one byte per cell (1 alive, 0 dead) in
// row-major order. Renderers read it once per tick and must not retain it.
func (g *Grid) Cells() []uint8 { return g.cells }

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = 0
	}
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	c := newGrid(g.maxX, g.maxY)
	copy(c.cells, g.cells)
	return c
}

// SameDomain reports whether both grids cover the same coordinates.
func (g *Grid) SameDomain(o *Grid) bool {
	return g.maxX == o.maxX && g.maxY == o.maxY
}

// Equal reports whether both grids have the same domain and states.
func (g *Grid) Equal(o *Grid) bool {
	if !g.SameDomain(o) {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Bounds returns the smallest rectangle holding every alive cell. ok is false
// for an empty grid.
func (g *Grid) Bounds() (lo, hi Coord, ok bool) {
	for y := 0; y <= g.maxY; y++ {
		row := g.cells[y*g.stride : (y+1)*g.stride]
		for x, v := range row {
			if v == 0 {
				continue
			}
			if !ok {
				lo, hi, ok = Coord{x, y}, Coord{x, y}, true
				continue
			}
			lo.X, lo.Y = min(lo.X, x), min(lo.Y, y)
			hi.X, hi.Y = max(hi.X, x), max(hi.Y, y)
		}
	}
	return
}
