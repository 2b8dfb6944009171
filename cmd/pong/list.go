package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available variants",
	Long:  `Shows a list of all Pong variants.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %-8s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Preset", "Description")
	fmt.Printf("  %-*s  %-*s  %-8s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "------", "-----------")

	// Print variants
	for _, g := range games {
		preset, _ := pong.PresetFor(g.ID)
		fmt.Printf("  %-*s  %-*s  %-8s  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, preset, g.Description)
	}

	fmt.Println()
	fmt.Println("Run 'pong play <id>' to play a variant.")
}
