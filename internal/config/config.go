// Package config provides YAML-based configuration loading for the
// simulator and its viewer.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-life/internal/core"
)

// LifeConfig contains all configuration for the simulator.
type LifeConfig struct {
	Viewport   ViewportConfig   `yaml:"viewport"`
	Simulation SimulationConfig `yaml:"simulation"`
	Theme      ThemeConfig      `yaml:"theme"`
}

// ViewportConfig defines the visible area and the overscan around it.
type ViewportConfig struct {
	Rows     int `yaml:"rows"`      // 0 = fit the terminal
	Cols     int `yaml:"cols"`      // 0 = fit the terminal
	Scale    int `yaml:"scale"`     // Overscan multiplier
	CellSize int `yaml:"cell_size"` // Pixels per cell
}

// SimulationConfig defines how the host loop drives the engine.
type SimulationConfig struct {
	TickRate     int    `yaml:"tick_rate"`
	Workers      int    `yaml:"workers"` // 0 = one per CPU
	StartRunning bool   `yaml:"start_running"`
	Pattern      string `yaml:"pattern"`
}

// ThemeConfig names the colors used by the viewer.
type ThemeConfig struct {
	Alive     string `yaml:"alive"`
	Backdrop  string `yaml:"backdrop"`
	Highlight string `yaml:"highlight"`
}

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks value ranges. Zero viewport rows/cols are allowed and
// mean "fit the terminal"; everything that sizes the grid must be positive.
func (c LifeConfig) Validate() error {
	var errs []error
	if c.Viewport.Rows < 0 || c.Viewport.Cols < 0 {
		errs = append(errs, fmt.Errorf("viewport %dx%d must not be negative", c.Viewport.Rows, c.Viewport.Cols))
	}
	if c.Viewport.Scale <= 0 {
		errs = append(errs, fmt.Errorf("viewport.scale %d must be positive", c.Viewport.Scale))
	}
	if c.Viewport.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("viewport.cell_size %d must be positive", c.Viewport.CellSize))
	}
	if c.Simulation.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("simulation.tick_rate %d must be positive", c.Simulation.TickRate))
	}
	if c.Simulation.Workers < 0 {
		errs = append(errs, fmt.Errorf("simulation.workers %d must not be negative", c.Simulation.Workers))
	}
	for name, color := range map[string]string{
		"alive":     c.Theme.Alive,
		"backdrop":  c.Theme.Backdrop,
		"highlight": c.Theme.Highlight,
	} {
		if color == "" {
			continue
		}
		if _, ok := core.ParseColor(color); !ok {
			errs = append(errs, fmt.Errorf("theme.%s: unknown color %q", name, color))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Runtime converts the file config into the runtime config consumed by
// the viewer. Screen size is left to the platform layer.
func (c LifeConfig) Runtime() core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.Rows = c.Viewport.Rows
	rc.Cols = c.Viewport.Cols
	rc.Scale = c.Viewport.Scale
	rc.CellSize = c.Viewport.CellSize
	rc.TickRate = c.Simulation.TickRate
	rc.Workers = c.Simulation.Workers
	rc.Running = c.Simulation.StartRunning
	rc.Pattern = c.Simulation.Pattern

	if col, ok := core.ParseColor(c.Theme.Alive); ok {
		rc.Theme.Alive = col
	}
	if col, ok := core.ParseColor(c.Theme.Backdrop); ok {
		rc.Theme.Backdrop = col
	}
	if col, ok := core.ParseColor(c.Theme.Highlight); ok {
		rc.Theme.Highlight = col
	}
	return rc
}
