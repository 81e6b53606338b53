package life

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// direction is a Moore-neighbourhood offset.
type direction struct {
	dr, dc int
}

var neighborhood = [8]direction{
	{-1, 0},  // N
	{1, 0},   // S
	{0, 1},   // E
	{0, -1},  // W
	{-1, -1}, // NW
	{-1, 1},  // NE
	{1, -1},  // SW
	{1, 1},   // SE
}

// SetWorkers sets how many goroutines compute neighbour counts during Step.
// n <= 0 selects runtime.NumCPU(). Rule application is always sequential.
func (g *Grid) SetWorkers(n int) {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	g.workers = n
}

// Workers returns the number of goroutines used for neighbour counting.
func (g *Grid) Workers() int { return g.workers }

// neighborState treats positions beyond the edge as dead.
func (g *Grid) neighborState(row, col int, d direction) CellState {
	r, c := row+d.dr, col+d.dc
	if !g.InBounds(r, c) {
		return Dead
	}
	return g.cells[g.index(r, c)].State
}

func (g *Grid) countAlive(row, col int) uint8 {
	var n uint8
	for _, d := range neighborhood {
		if g.neighborState(row, col, d) == Alive {
			n++
		}
	}
	return n
}

// NeighborCount returns the number of live Moore neighbours of (row, col).
func (g *Grid) NeighborCount(row, col int) (int, error) {
	if err := g.check(row, col); err != nil {
		return 0, err
	}
	return int(g.countAlive(row, col)), nil
}

// NeighborCounts computes the live-neighbour count of every cell in the
// current generation and returns them in row-major order. The returned
// slice is reused by the next call.
func (g *Grid) NeighborCounts() []uint8 {
	if g.destroyed {
		return nil
	}
	if g.workers <= 1 || g.rows < 2 {
		g.countRows(0, g.rows)
		return g.counts
	}

	workers := min(g.workers, g.rows)
	rowsPerWorker := (g.rows + workers - 1) / workers

	var eg errgroup.Group
	for i := range workers {
		start := i * rowsPerWorker
		end := min(start+rowsPerWorker, g.rows)
		if start >= end {
			break
		}
		eg.Go(func() error {
			g.countRows(start, end)
			return nil
		})
	}
	// Workers never fail; Wait only joins them.
	_ = eg.Wait()
	return g.counts
}

func (g *Grid) countRows(start, end int) {
	for row := start; row < end; row++ {
		for col := 0; col < g.cols; col++ {
			g.counts[g.index(row, col)] = g.countAlive(row, col)
		}
	}
}

// nextState applies B3/S23.
func nextState(s CellState, alive uint8) CellState {
	switch {
	case s == Alive && (alive < 2 || alive > 3):
		return Dead
	case s == Dead && alive == 3:
		return Alive
	default:
		return s
	}
}

// Step advances the grid by one generation. All neighbour counts are
// taken from the current generation before any cell changes.
func (g *Grid) Step() {
	if g.destroyed {
		return
	}
	counts := g.NeighborCounts()
	for i := range g.cells {
		g.cells[i].State = nextState(g.cells[i].State, counts[i])
	}
	g.generation++
}
