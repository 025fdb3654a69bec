package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/integrii/flaggy"

	"life-ca/internal/app"
	"life-ca/internal/core"
	"life-ca/internal/session"
	"life-ca/internal/term"
)

func main() {
	cfg := app.NewConfig()
	plain := false
	p := flaggy.NewParser("lifeterm")
	p.Description = "Conway's Game of Life in the terminal. Click a cell to toggle it."
	cfg.Bind(p)
	p.Bool(&plain, "", "plain", "disable colors")
	if err := p.Parse(); err != nil {
		log.Fatal(err)
	}

	board, err := app.NewBoard(cfg)
	if err != nil {
		log.Fatal(err)
	}
	sess := session.New(board, core.NewFixedStep(board.Config().TPS))

	view, err := term.NewView(sess, term.NewStyle(!plain))
	if err != nil {
		log.Fatal(err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = view.Run(ctx)
	view.Close()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("stopped at generation %d, population %d", board.Generation(), board.Grid().Population())
}
