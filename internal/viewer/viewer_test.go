package viewer

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
)

// testConfig yields a 10x10 grid that exactly fills a 20x10 character
// view above the status row.
func testConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.ScreenW = 20
	cfg.ScreenH = 11
	cfg.Rows = 10
	cfg.Cols = 10
	cfg.Scale = 1
	cfg.CellSize = 2
	return cfg
}

func newTestViewer(t *testing.T, cfg core.RuntimeConfig) *Viewer {
	t.Helper()
	v, err := New(cfg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	t.Cleanup(v.Close)
	return v
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func isAlive(t *testing.T, v *Viewer, row, col int) bool {
	t.Helper()
	s, err := v.Grid().State(row, col)
	if err != nil {
		t.Fatalf("State(%d, %d) failed: %v", row, col, err)
	}
	return s == life.Alive
}

func TestNewViewer(t *testing.T) {
	v := newTestViewer(t, testConfig())

	if v.Grid().Rows() != 10 || v.Grid().Cols() != 10 {
		t.Errorf("grid = %dx%d, expected 10x10", v.Grid().Rows(), v.Grid().Cols())
	}
	cam := v.Camera()
	if cam.Zoom != 1 || cam.OffsetX != 0 || cam.OffsetY != 0 {
		t.Errorf("camera = %+v, expected centred at zoom 1", cam)
	}
	if v.Running() {
		t.Error("viewer should start paused")
	}
}

func TestNewViewerErrors(t *testing.T) {
	cfg := testConfig()
	cfg.Scale = 0
	if _, err := New(cfg); !errors.Is(err, life.ErrInvalidDimensions) {
		t.Errorf("New() error = %v, expected ErrInvalidDimensions", err)
	}

	cfg = testConfig()
	cfg.Pattern = "no-such-pattern"
	if _, err := New(cfg); err == nil {
		t.Error("New() should fail for an unknown pattern")
	}

	cfg = testConfig()
	cfg.Rows, cfg.Cols = 3, 3
	cfg.Pattern = "gosper-glider-gun"
	if _, err := New(cfg); !errors.Is(err, life.ErrOutOfBounds) {
		t.Errorf("New() error = %v, expected ErrOutOfBounds", err)
	}
}

func TestNewViewerWithPattern(t *testing.T) {
	cfg := testConfig()
	cfg.Pattern = "blinker"
	cfg.Running = true
	v := newTestViewer(t, cfg)

	if v.Grid().Population() != 3 {
		t.Errorf("Population() = %d, expected 3", v.Grid().Population())
	}
	if v.Seed() != "blinker" {
		t.Errorf("Seed() = %q, expected blinker", v.Seed())
	}
	if p, ok := v.Selected(); !ok || p.ID != "blinker" {
		t.Errorf("Selected() = %q, expected blinker", p.ID)
	}
	if !v.Running() {
		t.Error("viewer should start running")
	}
}

func TestCellAt(t *testing.T) {
	v := newTestViewer(t, testConfig())

	tests := []struct {
		sx, sy   int
		row, col int
	}{
		{0, 0, 0, 0},
		{1, 0, 0, 0},
		{4, 3, 3, 2},
		{19, 9, 9, 9},
		{-1, 0, 0, -1},
		{20, 10, 10, 10},
	}
	for _, tc := range tests {
		row, col := v.CellAt(tc.sx, tc.sy)
		if row != tc.row || col != tc.col {
			t.Errorf("CellAt(%d, %d) = (%d, %d), expected (%d, %d)",
				tc.sx, tc.sy, row, col, tc.row, tc.col)
		}
	}
}

func TestPaint(t *testing.T) {
	v := newTestViewer(t, testConfig())

	if !v.Paint(4, 3) {
		t.Fatal("Paint(4, 3) should hit a cell")
	}
	if !isAlive(t, v, 3, 2) {
		t.Error("cell (3,2) should be alive after painting")
	}
	if x, y := v.Cursor(); x != 4 || y != 3 {
		t.Errorf("Cursor() = (%d, %d), expected (4, 3)", x, y)
	}

	// Painting the same cell twice is idempotent.
	v.Paint(5, 3)
	if v.Grid().Population() != 1 {
		t.Errorf("Population() = %d, expected 1", v.Grid().Population())
	}

	// Status row and off-grid positions are ignored.
	if v.Paint(4, 10) {
		t.Error("Paint on the status row should be ignored")
	}
	v.Drag(6, 0)
	if v.Paint(0, 0) {
		t.Error("Paint left of the grid should be ignored")
	}
	if v.Grid().Population() != 1 {
		t.Errorf("Population() = %d after off-grid paints, expected 1", v.Grid().Population())
	}
}

func TestRunFlag(t *testing.T) {
	v := newTestViewer(t, testConfig())
	for _, sx := range []int{8, 10, 12} {
		v.Paint(sx, 5)
	}

	if v.Tick() {
		t.Error("Tick() should not step while paused")
	}

	v.Apply(frame(core.ActionStep))
	if v.Grid().Generation() != 1 {
		t.Fatalf("Generation() = %d after single step, expected 1", v.Grid().Generation())
	}
	if !isAlive(t, v, 4, 5) || !isAlive(t, v, 6, 5) || isAlive(t, v, 5, 4) {
		t.Error("blinker should be vertical after one step")
	}

	v.Apply(frame(core.ActionToggleRun))
	if !v.Running() {
		t.Fatal("ToggleRun should start the simulation")
	}

	// Single step is ignored while running.
	v.Apply(frame(core.ActionStep))
	if v.Grid().Generation() != 1 {
		t.Errorf("Generation() = %d, single step should be ignored while running", v.Grid().Generation())
	}

	if !v.Tick() {
		t.Error("Tick() should step while running")
	}
	if v.Grid().Generation() != 2 {
		t.Errorf("Generation() = %d, expected 2", v.Grid().Generation())
	}

	v.Apply(frame(core.ActionToggleRun))
	v.Tick()
	if v.Grid().Generation() != 2 {
		t.Errorf("Generation() = %d, expected no step after pausing", v.Grid().Generation())
	}
}

func TestClearResetsPeak(t *testing.T) {
	v := newTestViewer(t, testConfig())
	v.Paint(0, 0)
	v.Paint(2, 0)

	if v.Stats().Peak != 2 {
		t.Errorf("Peak = %d, expected 2", v.Stats().Peak)
	}

	v.Apply(frame(core.ActionClear))
	stats := v.Stats()
	if stats.Population != 0 || stats.Peak != 0 || stats.Generation != 0 {
		t.Errorf("Stats() after clear = %+v, expected zeros", stats)
	}
}

func TestPeakTracksStep(t *testing.T) {
	v := newTestViewer(t, testConfig())
	// Isolated cells die out; the peak remembers them.
	v.Paint(0, 0)
	v.Paint(10, 5)
	v.Apply(frame(core.ActionStep))

	stats := v.Stats()
	if stats.Population != 0 || stats.Peak != 2 {
		t.Errorf("Stats() = %+v, expected population 0 and peak 2", stats)
	}
}

func TestStamp(t *testing.T) {
	cfg := testConfig()
	cfg.Pattern = "block"
	v := newTestViewer(t, cfg)
	v.Apply(frame(core.ActionClear))

	v.SetCursor(10, 5)
	v.Apply(frame(core.ActionStamp))
	for _, rc := range [][2]int{{4, 4}, {4, 5}, {5, 4}, {5, 5}} {
		if !isAlive(t, v, rc[0], rc[1]) {
			t.Errorf("cell (%d,%d) should be alive after stamping a block", rc[0], rc[1])
		}
	}
	if !strings.Contains(v.Message(), "Block") {
		t.Errorf("Message() = %q, expected it to name the pattern", v.Message())
	}

	// A stamp that does not fit leaves the grid untouched.
	v.SetCursor(0, 0)
	v.Apply(frame(core.ActionStamp))
	if v.Grid().Population() != 4 {
		t.Errorf("Population() = %d, expected 4", v.Grid().Population())
	}
	if !strings.Contains(v.Message(), "does not fit") {
		t.Errorf("Message() = %q, expected a fit warning", v.Message())
	}
}

func TestCyclePatterns(t *testing.T) {
	v := newTestViewer(t, testConfig())
	first, ok := v.Selected()
	if !ok {
		t.Fatal("Selected() should return a pattern")
	}

	v.Apply(frame(core.ActionPrevPattern))
	last, _ := v.Selected()
	if last.ID == first.ID {
		t.Error("PrevPattern from the first entry should wrap to the last")
	}

	v.Apply(frame(core.ActionNextPattern))
	again, _ := v.Selected()
	if again.ID != first.ID {
		t.Errorf("Selected() = %q, expected %q after wrapping back", again.ID, first.ID)
	}
}

func TestToggleCellAction(t *testing.T) {
	v := newTestViewer(t, testConfig())
	v.SetCursor(4, 3)

	v.Apply(frame(core.ActionToggleCell))
	if !isAlive(t, v, 3, 2) {
		t.Error("cell should be alive after first toggle")
	}
	v.Apply(frame(core.ActionToggleCell))
	if isAlive(t, v, 3, 2) {
		t.Error("cell should be dead after second toggle")
	}

	// Off-grid cursor is ignored.
	v.SetCursor(-5, -5)
	v.Apply(frame(core.ActionToggleCell))
	if v.Grid().Population() != 0 {
		t.Errorf("Population() = %d, expected 0", v.Grid().Population())
	}
}

func TestCursorOnStatusRowEditsNothing(t *testing.T) {
	// A 20x20 world is larger than the view, so the status row lies
	// over real cells.
	cfg := testConfig()
	cfg.Scale = 2
	cfg.Pattern = "block"
	v := newTestViewer(t, cfg)
	v.Apply(frame(core.ActionClear))

	statusY := v.gridHeight()
	if row, col := v.CellAt(4, statusY); !v.Grid().InBounds(row, col) {
		t.Fatalf("status row maps to (%d,%d), expected an in-grid cell", row, col)
	}

	v.SetCursor(4, statusY)
	v.Apply(frame(core.ActionToggleCell))
	v.Apply(frame(core.ActionStamp))
	if v.Paint(4, statusY) {
		t.Error("Paint() on the status row should miss")
	}
	if v.Grid().Population() != 0 {
		t.Errorf("Population() = %d, expected edits under the status row to be ignored", v.Grid().Population())
	}
	if !strings.Contains(v.Message(), "cursor") {
		t.Errorf("Message() = %q, expected a hint to move the cursor", v.Message())
	}
}

func TestCameraActions(t *testing.T) {
	v := newTestViewer(t, testConfig())

	v.Apply(frame(core.ActionPanRight, core.ActionPanDown))
	cam := v.Camera()
	if cam.OffsetX != panCols || cam.OffsetY != 2*panRows {
		t.Errorf("camera after pan = %+v", cam)
	}

	v.SetCursor(10, 5)
	v.Apply(frame(core.ActionZoomIn))
	if v.Camera().Zoom <= 1 {
		t.Errorf("Zoom = %v, expected > 1", v.Camera().Zoom)
	}

	v.Apply(frame(core.ActionResetCamera))
	cam = v.Camera()
	if cam.Zoom != 1 || cam.OffsetX != 0 || cam.OffsetY != 0 {
		t.Errorf("camera after reset = %+v", cam)
	}
}

func TestRender(t *testing.T) {
	v := newTestViewer(t, testConfig())
	v.Paint(4, 3)
	v.SetCursor(19, 9)

	screen := core.NewScreen(20, 11)
	v.Render(screen)

	theme := core.DefaultTheme()
	for _, x := range []int{4, 5} {
		got := screen.GetCell(x, 3)
		if got.Rune != '█' || got.Color != theme.Alive {
			t.Errorf("live cell at (%d,3) = %+v", x, got)
		}
	}

	// Dead cells alternate between two backdrop runes.
	if got := screen.GetCell(0, 0); got.Rune != '█' || got.Color != theme.Backdrop {
		t.Errorf("even dead cell = %+v", got)
	}
	if got := screen.GetCell(2, 0); got.Rune != '▒' || got.Color != theme.Backdrop {
		t.Errorf("odd dead cell = %+v", got)
	}

	if got := screen.GetCell(19, 9); got.Rune != '▓' || got.Color != theme.Highlight {
		t.Errorf("cursor = %+v", got)
	}

	status := screen.Row(10)
	if !strings.Contains(status, "gen 0") || !strings.Contains(status, "pop 1") {
		t.Errorf("status row = %q", status)
	}
}

func TestRenderOffGridBlank(t *testing.T) {
	v := newTestViewer(t, testConfig())
	v.Drag(4, 0)

	screen := core.NewScreen(20, 11)
	v.Render(screen)

	for x := 0; x < 4; x++ {
		if got := screen.GetCell(x, 0); got.Rune != ' ' {
			t.Errorf("off-grid (%d,0) = %q, expected blank", x, got.Rune)
		}
	}
	if got := screen.GetCell(4, 0); got.Rune != '█' {
		t.Errorf("first grid column = %q, expected backdrop", got.Rune)
	}
}
