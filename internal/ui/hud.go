//go:build ebiten

package ui

import (
	"image/color"

	"life-ca/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 12
	lineHeight   = 18
)

// HUD renders the status panel to the right of the board.
type HUD struct {
	sess       *session.Session
	width      int
	panel      *ebiten.Image
	lastHeight int
	lines      []string
}

// NewHUD constructs a HUD for the provided session and panel width.
func NewHUD(sess *session.Session, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sess: sess, width: width}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached status lines.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	snap := h.sess.Board().Parameters()
	h.lines = StatusLines(snap, h.sess.Paused(), h.sess.Selected().Name)
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + lineHeight
	text.Draw(h.panel, "Game of Life", face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	y += lineHeight
	for _, line := range h.lines {
		y += lineHeight
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
	y += lineHeight
	for _, line := range KeyHelp {
		y += lineHeight
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
