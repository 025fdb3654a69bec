//go:build ebiten

package ui

import (
	"image/color"

	"life-ca/internal/render"
	"life-ca/internal/session"
	"life-ca/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay previews the selected stamp pattern under the cursor.
type Overlay struct {
	sess    *session.Session
	layout  render.Layout
	ghost   color.NRGBA
	pixel   *ebiten.Image
	hidden  bool
	cursor  life.Coord
	onBoard bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sess *session.Session, layout render.Layout, ghost color.NRGBA) *Overlay {
	o := &Overlay{sess: sess, layout: layout, ghost: ghost}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// SetHidden toggles the preview.
func (o *Overlay) SetHidden(hidden bool) { o.hidden = hidden }

// Hidden reports whether the preview is switched off.
func (o *Overlay) Hidden() bool { return o.hidden }

// Update tracks the cell under the cursor.
func (o *Overlay) Update(px, py int) {
	o.cursor, o.onBoard = o.layout.CellAt(px, py)
}

// Draw renders the ghost pattern onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.hidden || !o.onBoard {
		return
	}
	grid := o.sess.Board().Grid()
	scale := float64(max(o.layout.Scale, 1))
	for _, c := range life.Instantiate(o.sess.Selected(), o.cursor) {
		if !grid.Contains(c) {
			continue
		}
		x, y := o.layout.CellOrigin(c)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(float64(x), float64(y))
		op.ColorScale.ScaleWithColor(o.ghost)
		screen.DrawImage(o.pixel, op)
	}
}
