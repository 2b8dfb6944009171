package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

var flagPreset string

var configCmd = &cobra.Command{
	Use:   "config [variant]",
	Short: "Print the effective configuration",
	Long: `Print the configuration a variant plays with, after the config file
search and the variant's preset. The output is valid pong.yaml.

Config search order:
  --config <path>
  ~/.pong/configs/pong.yaml
  ./configs/pong.yaml
  built-in defaults

Examples:
  pong config
  pong config pong-classic > ~/.pong/configs/pong.yaml
  pong config --preset endless`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagPreset, "preset", "",
		"Apply this preset instead of the variant's ("+presetNames()+")")
}

func runConfig(cmd *cobra.Command, args []string) error {
	gameID := variantArg(args)
	if err := checkVariant(gameID); err != nil {
		return err
	}

	preset := ""
	if cmd.Flags().Changed("preset") {
		preset = flagPreset
	}

	cfg, label, err := effectiveConfig(gameID, preset, flagConfig)
	if err != nil {
		return err
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}

	fmt.Printf("# %s, source: %s\n", label, cfg.Source)
	fmt.Print(string(data))
	return nil
}

// effectiveConfig loads the config for a variant, or for a preset when one
// is named, and validates it. label describes what was applied.
func effectiveConfig(variant, preset, path string) (cfg config.PongConfig, label string, err error) {
	if preset == "" {
		cfg, err = pong.LoadConfig(variant, path)
		label = "variant: " + variant
	} else {
		var p config.Preset
		p, err = config.ParsePreset(preset)
		if err != nil {
			return cfg, "", err
		}
		cfg, err = config.LoadPong(path)
		config.ApplyPreset(&cfg, p)
		label = "preset: " + string(p)
	}
	if err != nil {
		return cfg, "", err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, "", err
	}
	return cfg, label, nil
}
