//go:build ebiten

package app

import (
	"time"

	"life-ca/internal/render"
	"life-ca/internal/session"
	"life-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a life session to the ebiten.Game interface.
type Game struct {
	sess    *session.Session
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	palette render.Palette
	layout  render.Layout
}

// New constructs a Game for the provided session.
func New(sess *session.Session, cfg *Config, palette render.Palette) *Game {
	grid := sess.Board().Grid()
	layout := render.Layout{Cols: grid.Cols(), Rows: grid.Rows(), Scale: cfg.Scale, Border: cfg.Border}
	return &Game{
		sess:    sess,
		painter: render.NewGridPainter(layout),
		overlay: ui.NewOverlay(sess, layout, palette.Ghost),
		hud:     ui.NewHUD(sess, cfg.Panel),
		palette: palette,
		layout:  layout,
	}
}

var patternKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5,
}

// Update turns input into session commands and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sess.Enqueue(session.TogglePause())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.sess.Enqueue(session.Play())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.sess.Enqueue(session.StepOnce())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sess.Enqueue(session.Clear())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sess.Enqueue(session.Reset(g.sess.Board().Seed()))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.sess.Enqueue(session.Reset(time.Now().UnixNano()))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.overlay.SetHidden(!g.overlay.Hidden())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.sess.Enqueue(session.SelectNext())
	}
	for i, key := range patternKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.sess.Enqueue(session.Select(i))
		}
	}

	px, py := ebiten.CursorPosition()
	if c, ok := g.layout.CellAt(px, py); ok {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			g.sess.Enqueue(session.ToggleCell(c))
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
			g.sess.Enqueue(session.StampSelected(c))
		}
	}
	g.overlay.Update(px, py)

	g.sess.Update()
	g.hud.Update()
	return nil
}

// Draw renders the current generation, the stamp preview and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sess.Board().Cells(), g.palette)
	g.overlay.Draw(screen)
	w, h := g.layout.BoardSize()
	g.hud.Draw(screen, w, h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.layout.BoardSize()
	return w + g.hud.Width(), h
}
