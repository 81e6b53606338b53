package life

import (
	"errors"
	"math"
	"testing"
)

// newTestGrid builds an unscaled grid with the given live cells.
func newTestGrid(t *testing.T, rows, cols int, alive ...[2]int) *Grid {
	t.Helper()
	g, err := New(rows, cols, 1, 1)
	if err != nil {
		t.Fatalf("New(%d, %d, 1, 1) failed: %v", rows, cols, err)
	}
	for _, rc := range alive {
		if err := g.SetAlive(rc[0], rc[1]); err != nil {
			t.Fatalf("SetAlive(%d, %d) failed: %v", rc[0], rc[1], err)
		}
	}
	return g
}

// assertAlive checks that exactly the listed cells are alive.
func assertAlive(t *testing.T, g *Grid, alive ...[2]int) {
	t.Helper()
	want := make(map[[2]int]bool, len(alive))
	for _, rc := range alive {
		want[rc] = true
	}
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			s, err := g.State(row, col)
			if err != nil {
				t.Fatalf("State(%d, %d) failed: %v", row, col, err)
			}
			if (s == Alive) != want[[2]int{row, col}] {
				t.Errorf("cell (%d,%d) = %v, expected alive=%v", row, col, s, want[[2]int{row, col}])
			}
		}
	}
}

func TestNewDimensions(t *testing.T) {
	g, err := New(3, 5, 4, 16)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if g.Rows() != 12 {
		t.Errorf("Rows() = %d, expected 12", g.Rows())
	}
	if g.Cols() != 20 {
		t.Errorf("Cols() = %d, expected 20", g.Cols())
	}
	if g.CellSize() != 16 {
		t.Errorf("CellSize() = %d, expected 16", g.CellSize())
	}
	if g.Population() != 0 {
		t.Errorf("Population() = %d, expected 0", g.Population())
	}

	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			c, err := g.Cell(row, col)
			if err != nil {
				t.Fatalf("Cell(%d, %d) failed: %v", row, col, err)
			}
			if c.State != Dead {
				t.Errorf("cell (%d,%d) should start dead", row, col)
			}
			if c.Row != row || c.Col != col {
				t.Errorf("cell (%d,%d) has coordinates (%d,%d)", row, col, c.Row, c.Col)
			}
			if c.X != col*16 || c.Y != row*16 {
				t.Errorf("cell (%d,%d) screen origin = (%d,%d), expected (%d,%d)",
					row, col, c.X, c.Y, col*16, row*16)
			}
		}
	}
}

func TestNewRejectsInvalidDimensions(t *testing.T) {
	tests := []struct {
		name                        string
		rows, cols, scale, cellSize int
	}{
		{"zero rows", 0, 5, 1, 1},
		{"negative cols", 5, -1, 1, 1},
		{"zero scale", 5, 5, 0, 1},
		{"negative scale", 5, 5, -2, 1},
		{"zero cell size", 5, 5, 1, 0},
		{"scaled rows overflow", 1 << 61, 1, 4, 1},
		{"scaled cols overflow", 1, math.MaxInt/2 + 1, 2, 1},
		{"cell count overflows", 1 << 32, 1 << 32, 1, 1},
		{"pixel extent overflows", 2, 1 << 40, 1, 1 << 30},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := New(tc.rows, tc.cols, tc.scale, tc.cellSize)
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("New() error = %v, expected ErrInvalidDimensions", err)
			}
			if g != nil {
				t.Error("New() should not return a grid on error")
			}
		})
	}
}

func TestBoundsErrors(t *testing.T) {
	g := newTestGrid(t, 4, 6)

	coords := [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 6}, {10, 10}}
	for _, rc := range coords {
		if _, err := g.State(rc[0], rc[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("State(%d, %d) error = %v, expected ErrOutOfBounds", rc[0], rc[1], err)
		}
		if err := g.SetAlive(rc[0], rc[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("SetAlive(%d, %d) error = %v, expected ErrOutOfBounds", rc[0], rc[1], err)
		}
		if _, err := g.NeighborCount(rc[0], rc[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("NeighborCount(%d, %d) error = %v, expected ErrOutOfBounds", rc[0], rc[1], err)
		}
	}

	if g.Population() != 0 {
		t.Errorf("out-of-bounds writes changed the grid, population = %d", g.Population())
	}
}

func TestSetAliveIdempotent(t *testing.T) {
	once := newTestGrid(t, 5, 5, [2]int{2, 3})
	twice := newTestGrid(t, 5, 5, [2]int{2, 3}, [2]int{2, 3})

	if !once.Equal(twice) {
		t.Error("setting a cell alive twice should equal setting it once")
	}
	if twice.Population() != 1 {
		t.Errorf("Population() = %d, expected 1", twice.Population())
	}
}

func TestToggle(t *testing.T) {
	g := newTestGrid(t, 3, 3)

	s, err := g.Toggle(1, 1)
	if err != nil || s != Alive {
		t.Fatalf("Toggle() = %v, %v, expected Alive, nil", s, err)
	}
	s, err = g.Toggle(1, 1)
	if err != nil || s != Dead {
		t.Fatalf("Toggle() = %v, %v, expected Dead, nil", s, err)
	}
	if _, err := g.Toggle(3, 3); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Toggle(3, 3) error = %v, expected ErrOutOfBounds", err)
	}
}

func TestClearAndClone(t *testing.T) {
	g := newTestGrid(t, 4, 4, [2]int{1, 1}, [2]int{1, 2}, [2]int{2, 1}, [2]int{2, 2})
	g.Step()

	c := g.Clone()
	if !c.Equal(g) {
		t.Fatal("clone should equal original")
	}

	g.Clear()
	if g.Population() != 0 {
		t.Errorf("Population() after Clear = %d, expected 0", g.Population())
	}
	if g.Generation() != 0 {
		t.Errorf("Generation() after Clear = %d, expected 0", g.Generation())
	}
	if c.Population() != 4 {
		t.Errorf("clone Population() = %d, expected 4 after clearing the original", c.Population())
	}
}

func TestEqualNil(t *testing.T) {
	g := newTestGrid(t, 2, 2)
	var none *Grid

	if g.Equal(nil) {
		t.Error("grid should not equal nil")
	}
	if none.Equal(g) {
		t.Error("nil should not equal a grid")
	}
	if !none.Equal(nil) {
		t.Error("nil should equal nil")
	}
}

func TestDestroy(t *testing.T) {
	g := newTestGrid(t, 3, 3, [2]int{1, 1})

	g.Destroy()
	g.Destroy() // second call is a no-op

	if _, err := g.State(1, 1); !errors.Is(err, ErrDestroyed) {
		t.Errorf("State() after Destroy error = %v, expected ErrDestroyed", err)
	}
	if err := g.SetAlive(0, 0); !errors.Is(err, ErrDestroyed) {
		t.Errorf("SetAlive() after Destroy error = %v, expected ErrDestroyed", err)
	}

	// Step must not panic on a destroyed grid.
	g.Step()
	if g.Generation() != 0 {
		t.Errorf("Generation() = %d, expected 0 after stepping a destroyed grid", g.Generation())
	}
}

func TestCellStateString(t *testing.T) {
	if Dead.String() != "Dead" {
		t.Errorf("Dead.String() = %q", Dead.String())
	}
	if Alive.String() != "Alive" {
		t.Errorf("Alive.String() = %q", Alive.String())
	}
	if CellState(7).String() != "Unknown" {
		t.Errorf("CellState(7).String() = %q", CellState(7).String())
	}
}
