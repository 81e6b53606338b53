package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/patterns"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List all available seed patterns",
	Long: `Shows every seed pattern: the built-in library plus any YAML files
found in ~/.life/patterns.`,
	Args: cobra.NoArgs,
	Run:  runPatterns,
}

func runPatterns(_ *cobra.Command, _ []string) {
	list := patterns.List()

	if len(list) == 0 {
		fmt.Println("No patterns available.")
		return
	}

	fmt.Println("Available patterns:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxKindLen := 4
	for _, p := range list {
		maxIDLen = max(maxIDLen, len(p.ID))
		maxKindLen = max(maxKindLen, len(p.Kind))
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %-7s  %s\n", maxIDLen, "ID", maxKindLen, "Kind", "Size", "Name")
	fmt.Printf("  %-*s  %-*s  %-7s  %s\n", maxIDLen, "--", maxKindLen, "----", "----", "----")

	for _, p := range list {
		rows, cols := p.Size()
		fmt.Printf("  %-*s  %-*s  %-7s  %s\n",
			maxIDLen, p.ID, maxKindLen, p.Kind, fmt.Sprintf("%dx%d", cols, rows), p.Name)
	}

	fmt.Println()
	fmt.Println("Run 'life run --pattern <id>' to start from a pattern.")
}
