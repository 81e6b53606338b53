package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/patterns"
	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagPattern  string
	flagScale    int
	flagCellSize int
	flagFPS      int
	flagWorkers  int
	flagRunning  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the Game of Life viewer",
	Long: `Open the viewer on a grid sized to the terminal.

The grid is larger than the screen by --scale in each direction; pan and
zoom to explore it. Cells beyond the edge are always dead.

Controls:
  Space        - Run/pause
  N            - Step one generation (while paused)
  Left mouse   - Set cells alive
  Right mouse  - Drag the view
  Wheel, +/-   - Zoom
  Arrows/hjkl  - Pan
  R            - Reset view
  C            - Clear grid
  Tab/S-Tab    - Select pattern, P to stamp it at the cursor
  Ctrl+S       - Save a text screenshot to ~/.life/screenshots
  ?            - Show all keys
  Q/Ctrl+C     - Quit

Examples:
  life run
  life run --pattern acorn --running
  life run --scale 8 --cell-size 4
  life run --workers 0 --fps 30`,
	Args: cobra.NoArgs,
	RunE: runViewer,
}

func init() {
	addViewerFlags(runCmd)
}

// addViewerFlags registers the flags that override the config file.
func addViewerFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagPattern, "pattern", "", "Seed pattern stamped at the centre (see 'life patterns')")
	cmd.Flags().IntVar(&flagScale, "scale", 0, "Grid size as a multiple of the screen (0 = config)")
	cmd.Flags().IntVar(&flagCellSize, "cell-size", 0, "Cell size in pixels, 2 px per character (0 = config)")
	cmd.Flags().IntVar(&flagFPS, "fps", 0, "Generations per second while running (0 = config)")
	cmd.Flags().IntVar(&flagWorkers, "workers", -1, "Goroutines counting neighbours (0 = all CPUs, -1 = config)")
	cmd.Flags().BoolVar(&flagRunning, "running", false, "Start with the simulation running")
}

// applyViewerFlags overlays explicitly set flags on rc.
func applyViewerFlags(cmd *cobra.Command, rc *core.RuntimeConfig) error {
	flags := cmd.Flags()
	if flags.Changed("pattern") {
		if !patterns.Exists(flagPattern) {
			return fmt.Errorf("unknown pattern %q, run 'life patterns' to see available patterns", flagPattern)
		}
		rc.Pattern = flagPattern
	}
	if flags.Changed("scale") && flagScale > 0 {
		rc.Scale = flagScale
	}
	if flags.Changed("cell-size") && flagCellSize > 0 {
		rc.CellSize = flagCellSize
	}
	if flags.Changed("fps") && flagFPS > 0 {
		rc.TickRate = flagFPS
	}
	if flags.Changed("workers") && flagWorkers >= 0 {
		rc.Workers = flagWorkers
	}
	if flags.Changed("running") {
		rc.Running = flagRunning
	}
	return nil
}

// openStore opens the run history; failures only disable history.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "error", err)
		return nil
	}
	return store
}

func runViewer(cmd *cobra.Command, _ []string) error {
	rc, err := loadRuntime()
	if err != nil {
		return err
	}
	if err := applyViewerFlags(cmd, &rc); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	logger.Debug("starting viewer",
		"screen", fmt.Sprintf("%dx%d", rc.ScreenW, rc.ScreenH),
		"scale", rc.Scale,
		"cell_size", rc.CellSize,
		"workers", rc.Workers,
		"pattern", rc.Pattern,
	)

	return tui.Run(rc, store)
}
