package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a seed pattern, then open the viewer",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to open the viewer with the
selected seed. Press Esc in the viewer to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Start
  Tab          - Run history
  Q            - Quit

Examples:
  life menu
  life menu --db ./runs.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	rc, err := loadRuntime()
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(rc)
		if err != nil {
			return err
		}

		// Update config with any size changes
		rc = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsHistory {
			goBack, histErr := tui.RunHistory(store, rc.ScreenW, rc.ScreenH)
			if histErr != nil {
				return histErr
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from history
		}

		cfg := rc
		cfg.Pattern = menuResult.PatternID
		if err := tui.Run(cfg, store); err != nil {
			// A seed that does not fit is not fatal; pick another one.
			logger.Error("could not start viewer", "pattern", cfg.Pattern, "error", err)
		}

		// Loop back to menu
	}
}
