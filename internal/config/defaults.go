package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-pong/internal/match"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// Host defaults.
const (
	DefaultTickRate     = 60
	DefaultKeyHoldTicks = 20
	MaxTickRate         = 240
)

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Playfield: PongPlayfield{
			Width:  match.DefaultFieldWidth,
			Height: match.DefaultFieldHeight,
		},
		Paddle: PongPaddle{
			Width:  match.DefaultPaddleWidth,
			Height: match.DefaultPaddleHeight,
			Inset:  match.DefaultPaddleInset,
			Speed:  match.DefaultPaddleSpeed,
		},
		Ball: PongBall{
			Size:     match.DefaultBallSize,
			Speed:    match.DefaultBallSpeed,
			MaxSpeed: match.DefaultMaxBallSpeed,
		},
		Rules: PongRules{
			WinScore:      match.DefaultWinScore,
			Collision:     match.CollideRect.String(),
			DeflectAmount: match.DefaultDeflectAmount,
		},
		Host: PongHost{
			TickRate:     DefaultTickRate,
			KeyHoldTicks: DefaultKeyHoldTicks,
		},
		Source: "builtin",
	}
}

// DefaultYAML returns the embedded default pong.yaml.
func DefaultYAML() []byte {
	return defaultPongYAML
}
