package render

import "life-ca/pkg/life"

// Layout places a board of Cols x Rows cells on screen: each cell is Scale
// pixels square and the board is framed by a Border pixels wide wall.
type Layout struct {
	Cols, Rows int
	Scale      int
	Border     int
}

func (l Layout) scale() int {
	if l.Scale <= 0 {
		return 1
	}
	return l.Scale
}

func (l Layout) border() int { return max(l.Border, 0) }

// BoardSize returns the pixel size of the framed board.
func (l Layout) BoardSize() (w, h int) {
	s, b := l.scale(), l.border()
	return l.Cols*s + 2*b, l.Rows*s + 2*b
}

// CellAt maps a pointer position to the grid coordinate under it. ok is false
// when the pointer is on the wall or outside the board.
func (l Layout) CellAt(px, py int) (c life.Coord, ok bool) {
	s, b := l.scale(), l.border()
	px -= b
	py -= b
	if px < 0 || py < 0 {
		return life.Coord{}, false
	}
	c = life.Coord{X: px / s, Y: py / s}
	if c.X >= l.Cols || c.Y >= l.Rows {
		return life.Coord{}, false
	}
	return c, true
}

// CellOrigin returns the top-left pixel of c.
func (l Layout) CellOrigin(c life.Coord) (x, y int) {
	s, b := l.scale(), l.border()
	return b + c.X*s, b + c.Y*s
}
