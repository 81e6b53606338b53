package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/storage"
	"github.com/vovakirdan/tui-life/internal/viewer"
)

// dragMode is what a held mouse button is doing.
type dragMode int

const (
	dragNone dragMode = iota
	dragPaint
	dragPan
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for the life viewer.
type Model struct {
	viewer     *viewer.Viewer
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	inputFrame core.InputFrame

	source  string // run owner recorded in history
	started time.Time
	tickID  uint64

	drag         dragMode
	lastX, lastY int

	embedded   bool // Back returns to a menu instead of quitting
	quitting   bool
	backToMenu bool
	runSaved   bool
}

// NewModel creates a viewer model for cfg. store may be nil.
func NewModel(cfg core.RuntimeConfig, store *storage.Store, source string) (Model, error) {
	v, err := viewer.New(cfg)
	if err != nil {
		return Model{}, err
	}

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	m := Model{
		viewer:     v,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		source:     source,
		started:    time.Now(),
		tickID:     nextTickID(),
	}
	m.layout()
	m.viewer.ResetCamera()
	return m, nil
}

// layout splits the terminal between the grid screen and the help footer.
func (m *Model) layout() {
	helpH := lipgloss.Height(m.help.View(m.keys.Keys()))
	h := core.Max(m.config.ScreenH-helpH, 1)
	m.screen.Resize(m.config.ScreenW, h)
	m.viewer.SetSize(m.config.ScreenW, h)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickID, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.ID != m.tickID {
			// Left over from a model this one replaced.
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys.Keys()

	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil

	case key.Matches(msg, keys.Back):
		m.finish()
		if m.embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.finish()
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleMouse paints with the left button, pans with the right button
// and zooms with the wheel.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.viewer.ZoomAt(msg.X, msg.Y, 1)
		case tea.MouseButtonWheelDown:
			m.viewer.ZoomAt(msg.X, msg.Y, -1)
		case tea.MouseButtonLeft:
			m.drag = dragPaint
			m.viewer.Paint(msg.X, msg.Y)
		case tea.MouseButtonRight:
			m.drag = dragPan
			m.lastX, m.lastY = msg.X, msg.Y
		}

	case tea.MouseActionMotion:
		switch m.drag {
		case dragPaint:
			m.viewer.Paint(msg.X, msg.Y)
		case dragPan:
			m.viewer.Drag(msg.X-m.lastX, msg.Y-m.lastY)
			m.lastX, m.lastY = msg.X, msg.Y
		default:
			m.viewer.SetCursor(msg.X, msg.Y)
		}

	case tea.MouseActionRelease:
		m.drag = dragNone
	}

	return m, nil
}

// handleResize processes window resize events.
// The grid keeps its size; only the view changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.layout()
	return m, nil
}

// handleTick applies queued actions and advances the simulation.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	m.viewer.Apply(m.inputFrame)
	m.viewer.Tick()

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.tickID, m.config.TickRate)
}

// finish records the run in history, once.
func (m *Model) finish() {
	if m.runSaved {
		return
	}
	m.runSaved = true

	stats := m.viewer.Stats()
	if m.store == nil || stats.Generation == 0 {
		return
	}
	grid := m.viewer.Grid()
	//nolint:errcheck // Best-effort save, the viewer exits regardless
	m.store.SaveRun(storage.RunEntry{
		Pattern:         m.viewer.Seed(),
		Rows:            grid.Rows(),
		Cols:            grid.Cols(),
		Generations:     int(stats.Generation),
		PeakPopulation:  stats.Peak,
		FinalPopulation: stats.Population,
		Duration:        int(time.Since(m.started).Seconds()),
		Source:          m.source,
	})
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.viewer.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.viewer.Notify("screenshot failed: " + err.Error())
		return
	}
	dir := filepath.Join(home, ".life", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.viewer.Notify("screenshot failed: " + err.Error())
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("life_gen%d_%s.txt", m.viewer.Grid().Generation(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.viewer.Notify("screenshot failed: " + err.Error())
		return
	}
	m.viewer.Notify("saved " + filename)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.viewer.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Viewer returns the wrapped viewer.
func (m Model) Viewer() *viewer.Viewer {
	return m.viewer
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Close releases the viewer's grid.
func (m Model) Close() {
	m.viewer.Close()
}

// Run starts the Bubble Tea program for a standalone viewer.
func Run(cfg core.RuntimeConfig, store *storage.Store) error {
	model, err := NewModel(cfg, store, "local")
	if err != nil {
		return err
	}
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Hover moves the cursor, drags paint and pan
	)

	_, err = p.Run()
	return err
}
