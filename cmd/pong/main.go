// pong is a two-player terminal Pong.
//
// Usage:
//
//	pong list                - List available variants
//	pong play [variant]      - Play a variant (default: pong)
//	pong menu                - Start menu to pick variants interactively
//	pong serve               - Start SSH server, one local session per connection
//	pong config [variant]    - Print the effective configuration (--preset to override)
//
// Global flags:
//
//	--fps <rate>      - Override the configured tick rate
//	--seed <value>    - Set RNG seed for reproducible serves
//	--config <path>   - Use a custom pong.yaml
//	--log-file <path> - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong - two players, one terminal",
	Long: `Pong is the classic two-paddle game for the terminal.
The left player uses W/S, the right player the arrow keys.

Available commands:
  list     - Show all available variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server
  config   - Print the effective configuration

Examples:
  pong play
  pong play pong-classic
  pong menu --fps 30
  pong serve --ssh :2222
  pong config pong-endless`,
	SilenceUsage:  true,
	SilenceErrors: true, // main prints them
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (overrides host.tick_rate from the config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom pong.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// checkVariant reports an unknown variant ID.
func checkVariant(id string) error {
	if !registry.Exists(id) {
		return fmt.Errorf("unknown variant %q (run 'pong list' to see available variants)", id)
	}
	return nil
}

// variantArg returns the variant named on the command line, pong by default.
func variantArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return pong.IDModern
}

// openLogger returns the logger for a run. The TUI owns the terminal, so
// without --log-file everything is discarded.
func openLogger(prefix string) (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}

// checkFPS applies the bound the config enforces on host.tick_rate.
func checkFPS(fps int) error {
	if fps < 1 || fps > config.MaxTickRate {
		return fmt.Errorf("--fps must be in [1, %d], got %d", config.MaxTickRate, fps)
	}
	return nil
}

// tickRate picks --fps when given, the variant's configured rate otherwise.
func tickRate(cmd *cobra.Command, variant string) (int, error) {
	if cmd.Flags().Changed("fps") {
		if err := checkFPS(flagFPS); err != nil {
			return 0, err
		}
		return flagFPS, nil
	}
	cfg, err := pong.LoadConfig(variant, flagConfig)
	if err != nil {
		return 0, err
	}
	return cfg.Host.TickRate, nil
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig(rate int) core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: rate,
		Seed:     flagSeed,
	}
}

// presetNames lists the preset names for help texts.
func presetNames() string {
	presets := config.Presets()
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

// newSessionID tags the matches of one local run.
func newSessionID() string {
	return "local-" + uuid.NewString()[:8]
}
