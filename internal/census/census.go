// Package census runs many random boards headless and reports how long they
// take to settle.
package census

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"life-ca/pkg/core"
	"life-ca/pkg/life"
)

// Options bound every scenario in a sweep.
type Options struct {
	Width    int
	Height   int
	MaxSteps int
	Workers  int
}

// DefaultOptions matches the default interactive board.
func DefaultOptions() Options {
	return Options{Width: 100, Height: 100, MaxSteps: 2000, Workers: runtime.NumCPU()}
}

// Scenario is one random fill.
type Scenario struct {
	Density float64
	Seed    int64
}

func (s Scenario) String() string {
	return fmt.Sprintf("density=%.2f seed=%d", s.Density, s.Seed)
}

// Result describes where a scenario ended up.
type Result struct {
	Scenario
	Generations int
	Initial     int
	Population  int
	Verdict     life.Verdict
}

// Scenarios crosses each density with seeds base, base+1, ..., base+runs-1.
func Scenarios(densities []float64, runs int, base int64) []Scenario {
	out := make([]Scenario, 0, len(densities)*runs)
	for _, d := range densities {
		for i := 0; i < runs; i++ {
			out = append(out, Scenario{Density: d, Seed: base + int64(i)})
		}
	}
	return out
}

// RunScenario steps one board until it settles or MaxSteps generations pass.
func RunScenario(opts Options, sc Scenario) (Result, error) {
	cur, err := life.NewGrid(opts.Width, opts.Height)
	if err != nil {
		return Result{}, errors.Wrapf(err, "[RunScenario] %s", sc)
	}
	nxt := cur.Clone()
	life.Randomize(cur, sc.Density, core.NewRNG(sc.Seed))

	res := Result{Scenario: sc, Initial: cur.Population()}
	hist := life.NewHistory(0)
	res.Verdict = hist.Push(cur)
	for res.Generations < opts.MaxSteps && !res.Verdict.Settled() {
		life.StepInto(nxt, cur)
		cur, nxt = nxt, cur
		res.Generations++
		res.Verdict = hist.Push(cur)
	}
	res.Population = cur.Population()
	return res, nil
}

// Run evaluates every scenario on at most opts.Workers goroutines. Results
// keep the order of scenarios.
func Run(ctx context.Context, opts Options, scenarios []Scenario) ([]Result, error) {
	if opts.MaxSteps < 0 {
		return nil, errors.Errorf("[Run] max steps must be >= 0, got %d", opts.MaxSteps)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, len(scenarios))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, sc := range scenarios {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := RunScenario(opts, sc)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Summary aggregates the results that share a density.
type Summary struct {
	Density         float64
	Runs            int
	MeanGenerations float64
	MeanPopulation  float64
	Verdicts        map[life.Verdict]int
}

func (s Summary) String() string {
	return fmt.Sprintf("density=%.2f runs=%d gens=%.1f pop=%.1f extinct=%d still=%d cycling=%d evolving=%d",
		s.Density, s.Runs, s.MeanGenerations, s.MeanPopulation,
		s.Verdicts[life.Extinct], s.Verdicts[life.StillLife], s.Verdicts[life.Cycling], s.Verdicts[life.Evolving])
}

// Summarize groups results by density, sorted ascending.
func Summarize(results []Result) []Summary {
	byDensity := map[float64]*Summary{}
	for _, r := range results {
		s, ok := byDensity[r.Density]
		if !ok {
			s = &Summary{Density: r.Density, Verdicts: map[life.Verdict]int{}}
			byDensity[r.Density] = s
		}
		s.Runs++
		s.MeanGenerations += float64(r.Generations)
		s.MeanPopulation += float64(r.Population)
		s.Verdicts[r.Verdict]++
	}

	out := make([]Summary, 0, len(byDensity))
	for _, s := range byDensity {
		s.MeanGenerations /= float64(s.Runs)
		s.MeanPopulation /= float64(s.Runs)
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Density < out[j].Density })
	return out
}
