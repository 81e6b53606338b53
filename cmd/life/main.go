// life is a terminal Game of Life simulator.
//
// Usage:
//
//	life run                 - Open the viewer (optionally seeded with --pattern)
//	life menu                - Pick a seed pattern interactively
//	life patterns            - List available seed patterns
//	life history             - Show recorded runs
//	life serve               - Start SSH server for remote sessions
//	life config              - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--db <path>         - Run history database (default: ~/.life/runs.db)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/patterns"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "life",
	Short: "Conway's Game of Life in your terminal",
	Long: `life simulates Conway's Game of Life on a bounded grid and lets you
pan, zoom and draw on it with the mouse.

Available commands:
  run       - Open the viewer
  menu      - Pick a seed pattern interactively
  patterns  - Show all seed patterns
  history   - View recorded runs
  serve     - Start SSH server for remote sessions
  config    - Print the effective configuration

Examples:
  life run
  life run --pattern gosper-glider-gun --running
  life menu
  life serve --ssh :2222
  life history --longest`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "life",
			Level:           level,
		})
		registerUserPatterns()
		return nil
	},
	RunE: runViewer,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.life/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addViewerFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// registerUserPatterns adds patterns from ~/.life/patterns to the registry.
func registerUserPatterns() {
	dir := patterns.DefaultDir()
	n, errs := patterns.NewLoader(dir).RegisterAll()
	for _, err := range errs {
		logger.Warn("skipping user pattern", "error", err)
	}
	if n > 0 {
		logger.Debug("registered user patterns", "count", n, "dir", dir)
	}
}

// loadRuntime reads the config file and sizes the viewport to the terminal.
func loadRuntime() (core.RuntimeConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return core.RuntimeConfig{}, err
	}
	rc := cfg.Runtime()

	rc.ScreenW, rc.ScreenH = 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	return rc, nil
}
