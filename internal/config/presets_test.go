package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    Preset
		wantErr bool
	}{
		{"", PresetModern, false},
		{"modern", PresetModern, false},
		{"Classic", PresetClassic, false},
		{" endless ", PresetEndless, false},
		{"hard", PresetModern, true},
	}

	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset    Preset
		collision string
		winScore  int
		deflect   bool
		random    bool
	}{
		{PresetModern, "rect", 10, false, false},
		{PresetClassic, "circle", 30, true, true},
		{PresetEndless, "rect", 0, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultPongConfig()
			ApplyPreset(&cfg, tt.preset)

			assert.Equal(t, tt.collision, cfg.Rules.Collision)
			assert.Equal(t, tt.winScore, cfg.Rules.WinScore)
			assert.Equal(t, tt.deflect, cfg.Rules.Deflect)
			assert.Equal(t, tt.random, cfg.Rules.RandomServe)
			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestApplyModernKeepsLoadedRules(t *testing.T) {
	cfg := DefaultPongConfig()
	cfg.Rules.WinScore = 5
	cfg.Rules.Collision = "circle"

	ApplyPreset(&cfg, PresetModern)
	assert.Equal(t, 5, cfg.Rules.WinScore)
	assert.Equal(t, "circle", cfg.Rules.Collision)
}

func TestPresetsOrder(t *testing.T) {
	assert.Equal(t, []Preset{PresetModern, PresetClassic, PresetEndless}, Presets())
}
