// Package config provides YAML-based configuration loading and match presets
// for the Pong platform.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pong/internal/match"
)

// PongConfig contains all configuration for a Pong match and its host.
type PongConfig struct {
	Playfield PongPlayfield `yaml:"playfield"`
	Paddle    PongPaddle    `yaml:"paddle"`
	Ball      PongBall      `yaml:"ball"`
	Rules     PongRules     `yaml:"rules"`
	Host      PongHost      `yaml:"host"`

	// Source is the file the config was read from, or "embedded"/"builtin".
	Source string `yaml:"-"`
}

// PongPlayfield defines the simulated field in playfield units.
type PongPlayfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PongPaddle defines paddle geometry and speed.
type PongPaddle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Inset  float64 `yaml:"inset"` // Distance from the side edge
	Speed  float64 `yaml:"speed"` // Units per tick
}

// PongBall defines ball size and speed.
type PongBall struct {
	Size     float64 `yaml:"size"`
	Speed    float64 `yaml:"speed"`     // Per-axis serve speed
	MaxSpeed float64 `yaml:"max_speed"` // Velocity magnitude bound
}

// PongRules defines scoring and collision behaviour.
type PongRules struct {
	WinScore      int     `yaml:"win_score"` // 0 = endless
	Collision     string  `yaml:"collision"` // "rect" or "circle"
	Deflect       bool    `yaml:"deflect"`
	DeflectAmount float64 `yaml:"deflect_amount"`
	RandomServe   bool    `yaml:"random_serve"`
}

// PongHost defines how the terminal host drives the engine.
type PongHost struct {
	TickRate     int `yaml:"tick_rate"`      // Ticks per second
	KeyHoldTicks int `yaml:"key_hold_ticks"` // Ticks a key press keeps a paddle moving
}

// Settings converts the config into engine settings.
func (c PongConfig) Settings(seed int64) (match.Settings, error) {
	policy, err := match.ParseCollisionPolicy(c.Rules.Collision)
	if err != nil {
		return match.Settings{}, fmt.Errorf("config: rules.collision: %w", err)
	}

	s := match.Settings{
		FieldW:        c.Playfield.Width,
		FieldH:        c.Playfield.Height,
		PaddleW:       c.Paddle.Width,
		PaddleH:       c.Paddle.Height,
		PaddleInset:   c.Paddle.Inset,
		PaddleSpeed:   c.Paddle.Speed,
		BallSize:      c.Ball.Size,
		BallSpeed:     c.Ball.Speed,
		MaxBallSpeed:  c.Ball.MaxSpeed,
		WinScore:      c.Rules.WinScore,
		Collision:     policy,
		Deflect:       c.Rules.Deflect,
		DeflectAmount: c.Rules.DeflectAmount,
		RandomServe:   c.Rules.RandomServe,
		Seed:          seed,
	}
	if err := s.Validate(); err != nil {
		return match.Settings{}, fmt.Errorf("config: %w", err)
	}
	return s, nil
}

// Validate checks the match settings and the host section.
func (c PongConfig) Validate() error {
	if _, err := c.Settings(0); err != nil {
		return err
	}
	if c.Host.TickRate <= 0 || c.Host.TickRate > MaxTickRate {
		return fmt.Errorf("config: host.tick_rate must be in [1, %d], got %d", MaxTickRate, c.Host.TickRate)
	}
	if c.Host.KeyHoldTicks <= 0 {
		return fmt.Errorf("config: host.key_hold_ticks must be positive, got %d", c.Host.KeyHoldTicks)
	}
	return nil
}

// Marshal returns the config as YAML.
func (c PongConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}
