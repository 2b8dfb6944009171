package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-pong/internal/match"
)

// Preset is a named rule set applied on top of the loaded config.
type Preset string

const (
	// PresetModern plays the loaded config unchanged.
	PresetModern Preset = "modern"
	// PresetClassic plays first-to-30 with a round ball, deflection and a random serve.
	PresetClassic Preset = "classic"
	// PresetEndless never ends the match.
	PresetEndless Preset = "endless"
)

// ClassicWinScore is the win threshold of the classic rules.
const ClassicWinScore = 30

// Presets lists the presets in menu order.
func Presets() []Preset {
	return []Preset{PresetModern, PresetClassic, PresetEndless}
}

// ParsePreset parses a preset name. An empty name means modern.
func ParsePreset(s string) (Preset, error) {
	switch p := Preset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PresetModern, nil
	case PresetModern, PresetClassic, PresetEndless:
		return p, nil
	default:
		return PresetModern, fmt.Errorf("config: unknown preset %q", s)
	}
}

// ApplyPreset modifies the config based on a preset.
func ApplyPreset(cfg *PongConfig, preset Preset) {
	switch preset {
	case PresetClassic:
		cfg.Rules.Collision = match.CollideCircle.String()
		cfg.Rules.Deflect = true
		cfg.Rules.DeflectAmount = match.DefaultDeflectAmount
		cfg.Rules.WinScore = ClassicWinScore
		cfg.Rules.RandomServe = true
	case PresetEndless:
		cfg.Rules.Collision = match.CollideRect.String()
		cfg.Rules.WinScore = 0
	}
}
