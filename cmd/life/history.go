package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagLimit       int
	flagLongest     bool
	flagInteractive bool
	flagClear       bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded runs",
	Long: `Display the runs recorded when a viewer session ends.

Only summaries are stored: seed pattern, grid size, generations reached,
peak and final population. Grid contents are never saved.

Examples:
  life history
  life history --longest --limit 5
  life history --interactive
  life history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	historyCmd.Flags().BoolVar(&flagLongest, "longest", false, "Order by generations reached instead of date")
	historyCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a full-screen table")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runHistory(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	if flagInteractive && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		_, err := tui.RunHistory(store, width, height)
		return err
	}

	var runs []storage.RunEntry
	if flagLongest {
		runs, err = store.LongestRuns(flagLimit)
	} else {
		runs, err = store.RecentRuns(flagLimit)
	}
	if err != nil {
		return err
	}

	title := "Recent runs"
	if flagLongest {
		title = "Longest runs"
	}
	fmt.Println(title)
	fmt.Println()
	fmt.Println(tui.RenderRunsTable(runs))

	stats, err := store.Stats()
	if err == nil && stats.Runs > 0 {
		fmt.Println()
		fmt.Printf("%d runs, %d generations total, longest %d, average %.1f, peak population %d\n",
			stats.Runs, stats.TotalGenerations, stats.MaxGenerations, stats.AvgGenerations, stats.MaxPopulation)
	}
	return nil
}
