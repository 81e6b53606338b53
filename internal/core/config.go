package core

// RuntimeConfig contains configuration passed to the viewer at startup.
// Zero viewport dimensions mean "fit the terminal"; the platform layer
// resolves them before the grid is allocated.
type RuntimeConfig struct {
	ScreenW  int    // Terminal width in characters
	ScreenH  int    // Terminal height in characters
	Rows     int    // Visible viewport rows, in cells
	Cols     int    // Visible viewport columns, in cells
	Scale    int    // Overscan multiplier applied to Rows and Cols
	CellSize int    // Pixel size of one cell
	TickRate int    // Frames per second (default 15)
	Workers  int    // Goroutines for neighbour counting (1 = sequential)
	Running  bool   // Start with the simulation running
	Pattern  string // Pattern stamped at the centre on startup
	Theme    Theme
}

// Theme selects the colors used to draw the grid.
type Theme struct {
	Alive     Color
	Backdrop  Color
	Highlight Color
}

// DefaultTheme returns the green-on-checkerboard look.
func DefaultTheme() Theme {
	return Theme{
		Alive:     ColorGreen,
		Backdrop:  ColorDarkGray,
		Highlight: ColorBrightGreen,
	}
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		Scale:    4,
		CellSize: 2,
		TickRate: 15,
		Workers:  1,
		Theme:    DefaultTheme(),
	}
}

// StatusLines is the number of terminal rows reserved below the grid.
const StatusLines = 2

// FitViewport fills zero Rows/Cols from the terminal size. Each cell is
// CellSize characters wide and CellSize/2 characters tall (terminal
// characters are roughly twice as tall as wide).
func (c *RuntimeConfig) FitViewport() {
	cellW := Max(c.CellSize, 1)
	cellH := Max(c.CellSize/2, 1)
	if c.Cols <= 0 {
		c.Cols = Max(c.ScreenW/cellW, 1)
	}
	if c.Rows <= 0 {
		c.Rows = Max((c.ScreenH-StatusLines)/cellH, 1)
	}
}
