//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from board cells and draws it
// inside a bordered frame.
type GridPainter struct {
	layout Layout
	img    *ebiten.Image
	buf    []byte
}

// NewGridPainter allocates a painter for the given layout.
func NewGridPainter(l Layout) *GridPainter {
	return &GridPainter{
		layout: l,
		img:    ebiten.NewImage(l.Cols, l.Rows),
		buf:    make([]byte, 4*l.Cols*l.Rows),
	}
}

// Layout returns the layout the painter was built for.
func (gp *GridPainter) Layout() Layout { return gp.layout }

// Blit uploads the provided cells into the painter image and draws the wall
// and the scaled board.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, p Palette) {
	if len(cells) != gp.layout.Cols*gp.layout.Rows {
		return
	}
	dst.Fill(p.Border)
	fillCells(gp.buf, cells, p)
	gp.img.WritePixels(gp.buf)

	s, b := float64(gp.layout.scale()), float64(gp.layout.border())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(b, b)
	dst.DrawImage(gp.img, op)
}
