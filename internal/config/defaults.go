package config

import (
	_ "embed"
)

//go:embed defaults/life.yaml
var defaultLifeYAML []byte

// DefaultLifeConfig returns the default simulator configuration.
func DefaultLifeConfig() LifeConfig {
	return LifeConfig{
		Viewport: ViewportConfig{
			Rows:     0,
			Cols:     0,
			Scale:    4,
			CellSize: 2,
		},
		Simulation: SimulationConfig{
			TickRate: 15,
			Workers:  1,
		},
		Theme: ThemeConfig{
			Alive:     "green",
			Backdrop:  "dark_gray",
			Highlight: "bright_green",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultLifeYAML
}
