// Package life implements Conway's Game of Life on a bounded grid.
// It has no terminal or UI dependencies; hosts drive it through Step and
// the bounds-checked cell accessors.
package life

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidDimensions is returned by New for non-positive sizes.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrDestroyed is returned by accessors after Destroy.
	ErrDestroyed = errors.New("grid destroyed")
)

// CellState is the two-valued state of a cell.
type CellState uint8

const (
	Dead CellState = iota
	Alive
)

// String returns a human-readable name for the state.
func (s CellState) String() string {
	switch s {
	case Dead:
		return "Dead"
	case Alive:
		return "Alive"
	default:
		return "Unknown"
	}
}

// Cell is a single grid unit.
// X and Y are the precomputed screen-space origin of the cell.
type Cell struct {
	Row, Col int
	X, Y     int
	State    CellState
}

// Grid is the simulation universe. Cells are stored in row-major order:
// index = row*cols + col.
type Grid struct {
	rows     int
	cols     int
	cellSize int
	cells    []Cell
	counts   []uint8 // neighbour counts of the generation being stepped

	generation uint64
	workers    int
	destroyed  bool
}

// New allocates a grid of (rows*scale) x (cols*scale) dead cells.
// rows and cols are the visible viewport size in cells, scale is the
// overscan multiplier and cellSize the pixel size of one cell. Sizes whose
// cell count or pixel extent does not fit in an int are rejected.
func New(rows, cols, scale, cellSize int) (*Grid, error) {
	if !validDimensions(rows, cols, scale, cellSize) {
		return nil, fmt.Errorf("life: rows=%d cols=%d scale=%d cell size=%d: %w",
			rows, cols, scale, cellSize, ErrInvalidDimensions)
	}

	g := &Grid{
		rows:     rows * scale,
		cols:     cols * scale,
		cellSize: cellSize,
		workers:  1,
	}
	g.cells = make([]Cell, g.rows*g.cols)
	g.counts = make([]uint8, len(g.cells))

	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			g.cells[g.index(row, col)] = Cell{
				Row:   row,
				Col:   col,
				X:     col * cellSize,
				Y:     row * cellSize,
				State: Dead,
			}
		}
	}
	return g, nil
}

func validDimensions(rows, cols, scale, cellSize int) bool {
	if rows <= 0 || cols <= 0 || scale <= 0 || cellSize <= 0 {
		return false
	}
	if rows > math.MaxInt/scale || cols > math.MaxInt/scale {
		return false
	}
	r, c := rows*scale, cols*scale
	if r > math.MaxInt/c {
		return false
	}
	// Cell origins are col*cellSize and row*cellSize.
	return r <= math.MaxInt/cellSize && c <= math.MaxInt/cellSize
}

// Rows returns the number of grid rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of grid columns.
func (g *Grid) Cols() int { return g.cols }

// CellSize returns the pixel size of one cell.
func (g *Grid) CellSize() int { return g.cellSize }

// Generation returns how many generations Step has advanced.
func (g *Grid) Generation() uint64 { return g.generation }

func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

// InBounds reports whether (row, col) lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func (g *Grid) check(row, col int) error {
	if g.destroyed {
		return fmt.Errorf("life: access (%d, %d): %w", row, col, ErrDestroyed)
	}
	if !g.InBounds(row, col) {
		return fmt.Errorf("life: (%d, %d) outside %dx%d grid: %w",
			row, col, g.rows, g.cols, ErrOutOfBounds)
	}
	return nil
}

// State returns the state of the cell at (row, col).
func (g *Grid) State(row, col int) (CellState, error) {
	if err := g.check(row, col); err != nil {
		return Dead, err
	}
	return g.cells[g.index(row, col)].State, nil
}

// Cell returns a copy of the cell at (row, col).
func (g *Grid) Cell(row, col int) (Cell, error) {
	if err := g.check(row, col); err != nil {
		return Cell{}, err
	}
	return g.cells[g.index(row, col)], nil
}

// SetAlive marks the cell at (row, col) alive. Setting an already live
// cell is a no-op.
func (g *Grid) SetAlive(row, col int) error {
	if err := g.check(row, col); err != nil {
		return err
	}
	g.cells[g.index(row, col)].State = Alive
	return nil
}

// Toggle flips the cell at (row, col) and returns its new state.
func (g *Grid) Toggle(row, col int) (CellState, error) {
	if err := g.check(row, col); err != nil {
		return Dead, err
	}
	c := &g.cells[g.index(row, col)]
	if c.State == Alive {
		c.State = Dead
	} else {
		c.State = Alive
	}
	return c.State, nil
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].State == Alive {
			n++
		}
	}
	return n
}

// Clear kills every cell. The generation counter is reset.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].State = Dead
	}
	g.generation = 0
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := *g
	c.cells = make([]Cell, len(g.cells))
	copy(c.cells, g.cells)
	c.counts = make([]uint8, len(g.counts))
	return &c
}

// Equal reports whether two grids have the same dimensions and cell states.
// A nil grid equals only another nil grid.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.rows != other.rows || g.cols != other.cols || len(g.cells) != len(other.cells) {
		return false
	}
	for i := range g.cells {
		if g.cells[i].State != other.cells[i].State {
			return false
		}
	}
	return true
}

// Destroy releases the cell storage. Calling it again is a no-op.
func (g *Grid) Destroy() {
	if g.destroyed {
		return
	}
	g.cells = nil
	g.counts = nil
	g.destroyed = true
}
