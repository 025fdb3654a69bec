package life

import "fmt"

// Coord identifies a grid cell. Coordinates are never wrapped.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int) Coord { return Coord{X: x, Y: y} }

// Add returns c translated by d.
func (c Coord) Add(d Coord) Coord { return Coord{X: c.X + d.X, Y: c.Y + d.Y} }

// Sub returns the offset that takes d to c.
func (c Coord) Sub(d Coord) Coord { return Coord{X: c.X - d.X, Y: c.Y - d.Y} }

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

var neighborOffsets = [8]Coord{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Neighbors returns the eight coordinates surrounding c, top-left first and
// bottom-right last. Off-grid results are included; the grid filters them.
func Neighbors(c Coord) [8]Coord {
	var out [8]Coord
	for i, d := range neighborOffsets {
		out[i] = c.Add(d)
	}
	return out
}
