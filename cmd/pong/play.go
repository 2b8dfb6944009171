package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start a match of the given variant (default: pong).

Controls:
  W/S        - Left paddle
  Up/Down    - Right paddle
  Space      - Restart (after match over)
  P          - Pause
  ?          - More keys
  Esc/Q      - Quit

Variants:
  pong          - Box collisions, first to the configured score
  pong-classic  - Round ball, deflecting paddles, random serve, first to 30
  pong-endless  - No score limit

Examples:
  pong play
  pong play pong-classic --seed 42
  pong play --config ./my-pong.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := variantArg(args)
	if err := checkVariant(gameID); err != nil {
		return err
	}

	rate, err := tickRate(cmd, gameID)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger("pong")
	if err != nil {
		return err
	}
	defer closeLog()

	// Create game instance
	game, err := registry.Create(gameID, registry.Options{
		ConfigPath: flagConfig,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	// Open match history
	store, err := storage.OpenMemory("")
	if err != nil {
		logger.Warn("match history unavailable", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	session := newSessionID()
	runErr := tui.Run(game, store, runtimeConfig(rate), tui.GameOptions{
		Session: session,
		Logger:  logger,
	})

	if store != nil {
		printMatches(store, session)
		store.Close()
	}

	return runErr
}

// printMatches lists the matches finished during this run.
func printMatches(store *storage.Store, session string) {
	matches, err := store.MatchesBySession(session)
	if err != nil || len(matches) == 0 {
		return
	}

	fmt.Println("Matches:")
	fmt.Println()
	fmt.Printf("  %-4s  %-9s  %-6s  %s\n", "#", "Score", "Winner", "Finished")
	fmt.Printf("  %-4s  %-9s  %-6s  %s\n", "-", "-----", "------", "--------")

	for i, rec := range matches {
		winner := rec.Winner
		if winner == "" {
			winner = "-"
		}
		score := fmt.Sprintf("%d - %d", rec.LeftScore, rec.RightScore)
		fmt.Printf("  %-4d  %-9s  %-6s  %s\n", i+1, score, winner, rec.FinishedAt.Format("15:04:05"))
	}
}
