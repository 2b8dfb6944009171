package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Pong with a variant picker menu",
	Long: `Start Pong in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
Leaving a match with Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Tab          - Match history
  Q            - Quit

Examples:
  pong menu
  pong menu --fps 30`,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	rate, err := tickRate(cmd, pong.IDModern)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger("pong")
	if err != nil {
		return err
	}
	defer closeLog()

	// Open match history
	store, err := storage.OpenMemory("")
	if err != nil {
		logger.Warn("match history unavailable", "error", err)
		store = nil
	}

	runErr := tui.RunSession(tui.SessionConfig{
		Store:      store,
		Runtime:    runtimeConfig(rate),
		ConfigPath: flagConfig,
		Session:    newSessionID(),
		Logger:     logger,
	})

	// Cleanup
	if store != nil {
		store.Close()
	}

	return runErr
}
