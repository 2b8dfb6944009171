package pong

import (
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// Registered game IDs.
const (
	IDModern  = "pong"
	IDClassic = "pong-classic"
	IDEndless = "pong-endless"
)

type variant struct {
	info   registry.GameInfo
	preset config.Preset
}

var variants = []variant{
	{
		info: registry.GameInfo{
			ID:          IDModern,
			Title:       "Pong",
			Description: "Two players, box collisions, first to the configured score",
		},
		preset: config.PresetModern,
	},
	{
		info: registry.GameInfo{
			ID:          IDClassic,
			Title:       "Pong Classic",
			Description: "Round ball, deflecting paddles, random serve, first to 30",
		},
		preset: config.PresetClassic,
	},
	{
		info: registry.GameInfo{
			ID:          IDEndless,
			Title:       "Pong Endless",
			Description: "No score limit",
		},
		preset: config.PresetEndless,
	},
}

// PresetFor returns the preset a registered variant plays with.
func PresetFor(id string) (config.Preset, bool) {
	for _, v := range variants {
		if v.info.ID == id {
			return v.preset, true
		}
	}
	return "", false
}

// LoadConfig loads the config from path (or the default locations) and applies
// the variant's preset.
func LoadConfig(id, path string) (config.PongConfig, error) {
	cfg, err := config.LoadPong(path)
	if err != nil {
		return cfg, err
	}
	if preset, ok := PresetFor(id); ok {
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}

// Register the variants with the registry
func init() {
	for _, v := range variants {
		info := v.info
		registry.Register(info, func(opts registry.Options) (registry.Game, error) {
			cfg, err := LoadConfig(info.ID, opts.ConfigPath)
			if err != nil {
				return nil, err
			}
			if opts.Logger != nil {
				opts.Logger.Debug("config loaded", "game", info.ID, "source", cfg.Source)
			}
			return New(info.ID, info.Title, cfg, opts.Logger)
		})
	}
}
