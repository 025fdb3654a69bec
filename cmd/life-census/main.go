package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sort"
	"time"

	"github.com/integrii/flaggy"

	"life-ca/internal/census"
)

func main() {
	opts := census.DefaultOptions()
	runs := 16
	seed := int64(1)
	top := 5
	var densities []float64

	p := flaggy.NewParser("life-census")
	p.Description = "Sweeps random densities and reports how long boards take to settle."
	p.Int(&opts.Width, "x", "width", "largest x coordinate of the board")
	p.Int(&opts.Height, "y", "height", "largest y coordinate of the board")
	p.Int(&opts.MaxSteps, "n", "steps", "generation cap per scenario")
	p.Int(&opts.Workers, "w", "workers", "number of worker goroutines")
	p.Int(&runs, "r", "runs", "seeds per density")
	p.Int64(&seed, "s", "seed", "first seed")
	p.Int(&top, "", "top", "longest-lived scenarios to print")
	p.Float64Slice(&densities, "d", "density", "densities to sweep (repeatable)")
	if err := p.Parse(); err != nil {
		log.Fatal(err)
	}
	if len(densities) == 0 {
		densities = []float64{0.1, 0.2, 0.3, 0.35, 0.4, 0.5, 0.6}
	}

	scenarios := census.Scenarios(densities, runs, seed)
	log.Printf("sweeping %d scenarios (%d workers, %d step cap, %dx%d)",
		len(scenarios), opts.Workers, opts.MaxSteps, opts.Width+1, opts.Height+1)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := census.Run(ctx, opts, scenarios)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("finished in %s", time.Since(start).Round(time.Millisecond))

	for _, s := range census.Summarize(results) {
		log.Print(s)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Generations > results[j].Generations })
	for i := 0; i < len(results) && i < top; i++ {
		r := results[i]
		log.Printf("%2d) %s gens=%d pop=%d->%d %s", i+1, r.Scenario, r.Generations, r.Initial, r.Population, r.Verdict)
	}
}
