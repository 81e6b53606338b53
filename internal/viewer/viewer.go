// Package viewer holds the interactive host state around a life.Grid:
// the run flag, camera, cursor and pattern selection. It has no terminal
// dependencies; platforms feed it input frames and mouse positions and
// draw its Render output.
package viewer

import (
	"fmt"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/patterns"
)

// statusRows is the number of screen rows Render reserves for the status line.
const statusRows = 1

// Keyboard pan distance in characters.
const (
	panCols = 4
	panRows = 2
)

// Stats is a snapshot of the simulation counters.
type Stats struct {
	Generation uint64
	Population int
	Peak       int
	Running    bool
}

// Viewer is the host loop state for one grid.
type Viewer struct {
	grid   *life.Grid
	camera Camera
	theme  core.Theme

	running bool // advance one generation per Tick

	width, height    int // view size in characters, status row included
	cursorX, cursorY int

	patterns []patterns.Pattern
	selected int
	seed     string // pattern stamped at startup, if any

	peak    int
	message string
}

// New builds a grid from cfg and optionally stamps cfg.Pattern at its
// centre. Zero viewport rows or columns are fitted to the screen size.
func New(cfg core.RuntimeConfig) (*Viewer, error) {
	cfg.FitViewport()

	grid, err := life.New(cfg.Rows, cfg.Cols, cfg.Scale, cfg.CellSize)
	if err != nil {
		return nil, err
	}
	grid.SetWorkers(cfg.Workers)

	v := &Viewer{
		grid:     grid,
		camera:   NewCamera(),
		theme:    cfg.Theme,
		running:  cfg.Running,
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
		patterns: patterns.List(),
	}

	if cfg.Pattern != "" {
		p, err := patterns.Get(cfg.Pattern)
		if err != nil {
			grid.Destroy()
			return nil, err
		}
		if err := p.PlaceCentered(grid, grid.Rows()/2, grid.Cols()/2); err != nil {
			grid.Destroy()
			return nil, err
		}
		v.seed = p.ID
		v.selectPattern(p.ID)
	}

	v.peak = grid.Population()
	v.ResetCamera()
	v.cursorX, v.cursorY = v.width/2, v.gridHeight()/2
	return v, nil
}

// Grid returns the underlying grid.
func (v *Viewer) Grid() *life.Grid { return v.grid }

// Camera returns a copy of the current camera.
func (v *Viewer) Camera() Camera { return v.camera }

// Seed returns the ID of the pattern stamped at startup.
func (v *Viewer) Seed() string { return v.seed }

// Running reports whether the simulation advances on Tick.
func (v *Viewer) Running() bool { return v.running }

// ToggleRun starts or stops continuous simulation.
func (v *Viewer) ToggleRun() { v.running = !v.running }

// Stats returns the current counters.
func (v *Viewer) Stats() Stats {
	return Stats{
		Generation: v.grid.Generation(),
		Population: v.grid.Population(),
		Peak:       v.peak,
		Running:    v.running,
	}
}

// Selected returns the pattern that Stamp places.
func (v *Viewer) Selected() (patterns.Pattern, bool) {
	if len(v.patterns) == 0 {
		return patterns.Pattern{}, false
	}
	return v.patterns[v.selected], true
}

func (v *Viewer) selectPattern(id string) {
	for i, p := range v.patterns {
		if p.ID == id {
			v.selected = i
			return
		}
	}
}

// Message returns the last status message.
func (v *Viewer) Message() string { return v.message }

// Notify replaces the status message.
func (v *Viewer) Notify(msg string) { v.message = msg }

// Close releases the grid.
func (v *Viewer) Close() { v.grid.Destroy() }

// SetSize records the view size in characters, status row included.
func (v *Viewer) SetSize(w, h int) {
	v.width, v.height = w, h
	v.cursorX = core.Clamp(v.cursorX, 0, core.Max(w-1, 0))
	v.cursorY = core.Clamp(v.cursorY, 0, core.Max(v.gridHeight()-1, 0))
}

func (v *Viewer) gridHeight() int {
	return core.Max(v.height-statusRows, 0)
}

// gridArea is the part of the view that shows cells.
func (v *Viewer) gridArea() core.Rect {
	return core.NewRect(0, 0, v.width, v.gridHeight())
}

// SetCursor moves the cursor to screen character (sx, sy).
func (v *Viewer) SetCursor(sx, sy int) {
	v.cursorX, v.cursorY = sx, sy
}

// Cursor returns the cursor position in screen characters.
func (v *Viewer) Cursor() (sx, sy int) { return v.cursorX, v.cursorY }

// CellAt returns the grid coordinates under screen character (sx, sy).
// The cell may lie outside the grid.
func (v *Viewer) CellAt(sx, sy int) (row, col int) {
	wx, wy := v.camera.ScreenToWorld(sx, sy)
	return WorldToCell(wx, wy, v.grid.CellSize())
}

// Apply consumes the actions of one input frame in arrival order.
func (v *Viewer) Apply(frame core.InputFrame) {
	for _, a := range frame.Actions() {
		v.apply(a)
	}
}

func (v *Viewer) apply(a core.Action) {
	switch a {
	case core.ActionToggleRun:
		v.ToggleRun()
	case core.ActionStep:
		if !v.running {
			v.step()
		}
	case core.ActionResetCamera:
		v.ResetCamera()
	case core.ActionClear:
		v.grid.Clear()
		v.peak = 0
		v.message = "cleared"
	case core.ActionPanUp:
		v.camera.Pan(0, panRows)
	case core.ActionPanDown:
		v.camera.Pan(0, -panRows)
	case core.ActionPanLeft:
		v.camera.Pan(panCols, 0)
	case core.ActionPanRight:
		v.camera.Pan(-panCols, 0)
	case core.ActionZoomIn:
		v.ZoomAt(v.cursorX, v.cursorY, 1)
	case core.ActionZoomOut:
		v.ZoomAt(v.cursorX, v.cursorY, -1)
	case core.ActionStamp:
		v.Stamp()
	case core.ActionNextPattern:
		v.cyclePattern(1)
	case core.ActionPrevPattern:
		v.cyclePattern(-1)
	case core.ActionToggleCell:
		if !v.cursorOnGrid() {
			return
		}
		row, col := v.CellAt(v.cursorX, v.cursorY)
		// Off-grid toggles are ignored.
		_, _ = v.grid.Toggle(row, col)
		v.trackPeak()
	}
}

// Tick advances one generation when the simulation is running and
// reports whether it did.
func (v *Viewer) Tick() bool {
	if !v.running {
		return false
	}
	v.step()
	return true
}

func (v *Viewer) step() {
	v.grid.Step()
	v.trackPeak()
}

func (v *Viewer) trackPeak() {
	v.peak = core.Max(v.peak, v.grid.Population())
}

// Paint sets the cell under screen character (sx, sy) alive and moves the
// cursor there. Positions outside the grid are ignored; Paint reports
// whether a cell was hit.
func (v *Viewer) Paint(sx, sy int) bool {
	v.SetCursor(sx, sy)
	if !v.gridArea().Contains(sx, sy) {
		return false
	}
	row, col := v.CellAt(sx, sy)
	if err := v.grid.SetAlive(row, col); err != nil {
		return false
	}
	v.trackPeak()
	return true
}

// Stamp places the selected pattern centred on the cursor.
func (v *Viewer) Stamp() {
	p, ok := v.Selected()
	if !ok {
		return
	}
	if !v.cursorOnGrid() {
		v.message = "move the cursor onto the grid"
		return
	}
	row, col := v.CellAt(v.cursorX, v.cursorY)
	if err := p.PlaceCentered(v.grid, row, col); err != nil {
		v.message = fmt.Sprintf("%s does not fit here", p.Name)
		return
	}
	v.trackPeak()
	v.message = "stamped " + p.Name
}

// cursorOnGrid reports whether the cursor is over the drawn grid area
// rather than the status row.
func (v *Viewer) cursorOnGrid() bool {
	return v.gridArea().Contains(v.cursorX, v.cursorY)
}

func (v *Viewer) cyclePattern(delta int) {
	n := len(v.patterns)
	if n == 0 {
		return
	}
	v.selected = ((v.selected+delta)%n + n) % n
	v.message = "pattern: " + v.patterns[v.selected].Name
}

// Drag pans the view by (dx, dy) characters.
func (v *Viewer) Drag(dx, dy int) {
	v.camera.Pan(dx, dy)
}

// ZoomAt zooms by the given number of wheel notches around (sx, sy).
func (v *Viewer) ZoomAt(sx, sy, steps int) {
	v.camera.ZoomAt(sx, sy, steps)
}

// ResetCamera returns to zoom 1 centred on the grid.
func (v *Viewer) ResetCamera() {
	cs := float64(v.grid.CellSize())
	wx := float64(v.grid.Cols()) * cs / 2
	wy := float64(v.grid.Rows()) * cs / 2
	v.camera.Reset(wx, wy, v.width, v.gridHeight())
}

// Render draws the visible part of the grid and the status line.
// Off-grid space is blank, dead cells form a checkerboard and live cells
// are solid blocks.
func (v *Viewer) Render(screen *core.Screen) {
	screen.Clear()
	area := core.NewRect(0, 0, screen.Width(), core.Max(screen.Height()-statusRows, 0))

	for sy := area.Y; sy < area.Bottom(); sy++ {
		for sx := area.X; sx < area.Right(); sx++ {
			row, col := v.CellAt(sx, sy)
			state, err := v.grid.State(row, col)
			switch {
			case err != nil:
				continue
			case state == life.Alive:
				screen.Set(sx, sy, '█', v.theme.Alive)
			case (row+col)%2 == 0:
				screen.Set(sx, sy, '█', v.theme.Backdrop)
			default:
				screen.Set(sx, sy, '▒', v.theme.Backdrop)
			}
		}
	}

	if area.Contains(v.cursorX, v.cursorY) {
		screen.Set(v.cursorX, v.cursorY, '▓', v.theme.Highlight)
	}

	v.renderStatus(screen, screen.Height()-1)
}

func (v *Viewer) renderStatus(screen *core.Screen, y int) {
	if y < 0 {
		return
	}
	stats := v.Stats()
	state := "paused"
	if stats.Running {
		state = "running"
	}
	pattern := "-"
	if p, ok := v.Selected(); ok {
		pattern = p.Name
	}
	left := fmt.Sprintf(" gen %d  pop %d  peak %d  %s  zoom %.2fx  pattern %s",
		stats.Generation, stats.Population, stats.Peak, state, v.camera.Zoom, pattern)
	screen.DrawText(0, y, left, core.ColorWhite)
	if v.message != "" {
		screen.DrawTextRight(y, v.message+" ", core.ColorYellow)
	}
}
