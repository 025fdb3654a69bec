//go:build ebiten

package main

import (
	"errors"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/integrii/flaggy"

	"life-ca/internal/app"
	"life-ca/internal/core"
	"life-ca/internal/render"
	"life-ca/internal/session"
)

func main() {
	cfg := app.NewConfig()
	p := flaggy.NewParser("life")
	p.Description = "Conway's Game of Life with click-to-toggle editing."
	cfg.Bind(p)
	if err := p.Parse(); err != nil {
		log.Fatal(err)
	}

	board, err := app.NewBoard(cfg)
	if err != nil {
		log.Fatal(err)
	}
	palette, err := render.PaletteByName(cfg.Palette)
	if err != nil {
		log.Fatal(err)
	}

	sess := session.New(board, core.NewFixedStep(board.Config().TPS))
	game := app.New(sess, cfg, palette)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("life-ca - " + board.Name())
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Print(err)
		os.Exit(1)
	}
}
