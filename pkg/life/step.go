package life

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Rule is Conway's B3/S23 rule: a live cell survives with two or three live
// neighbors, a dead cell is born with exactly three.
func Rule(alive bool, neighbors int) bool {
	return (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3)
}

// Step returns the next generation of g. g is only read; the result is a
// freshly allocated grid with the same domain.
func Step(g *Grid) *Grid {
	next := newGrid(g.maxX, g.maxY)
	stepRows(next, g, 0, g.Rows())
	return next
}

// StepInto writes the next generation of src into dst, overwriting every cell.
// dst must cover the same domain as src and must not be src itself.
func StepInto(dst, src *Grid) {
	mustPair(dst, src)
	stepRows(dst, src, 0, src.Rows())
}

// StepParallel is Step with rows split into bands evaluated concurrently.
// workers <= 0 uses one band per CPU. The only error is ctx's.
func StepParallel(ctx context.Context, g *Grid, workers int) (*Grid, error) {
	next := newGrid(g.maxX, g.maxY)
	if err := StepParallelInto(ctx, next, g, workers); err != nil {
		return nil, err
	}
	return next, nil
}

// StepParallelInto is StepInto with rows split into bands evaluated concurrently.
func StepParallelInto(ctx context.Context, dst, src *Grid, workers int) error {
	mustPair(dst, src)
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	rows := src.Rows()
	rowsPerWorker := (rows + workers - 1) / workers

	eg, ctx := errgroup.WithContext(ctx)
	for start := 0; start < rows; start += rowsPerWorker {
		end := min(start+rowsPerWorker, rows)
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			stepRows(dst, src, start, end)
			return nil
		})
	}
	return eg.Wait()
}

// stepRows evaluates rows [from, to) of src into dst. Bands touch disjoint
// rows of dst, so concurrent calls on distinct bands are safe.
func stepRows(dst, src *Grid, from, to int) {
	for y := from; y < to; y++ {
		for x := 0; x <= src.maxX; x++ {
			idx := y*src.stride + x
			alive := src.cells[idx] != 0
			dst.cells[idx] = 0
			if Rule(alive, src.countAround(x, y)) {
				dst.cells[idx] = 1
			}
		}
	}
}

// countAround counts live neighbors of (x, y), clamping the 3x3 window to the
// domain instead of bounds-checking each of the eight lookups.
func (g *Grid) countAround(x, y int) int {
	count := 0
	minX, maxX := max(0, x-1), min(g.maxX, x+1)
	minY, maxY := max(0, y-1), min(g.maxY, y+1)
	for ny := minY; ny <= maxY; ny++ {
		row := ny * g.stride
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			count += int(g.cells[row+nx])
		}
	}
	return count
}

func mustPair(dst, src *Grid) {
	if dst == src {
		panic("life: step destination aliases its source")
	}
	if !dst.SameDomain(src) {
		panic("life: step destination domain differs from source")
	}
}
