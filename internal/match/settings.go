package match

import (
	"errors"
	"fmt"
	"math"
)

// Default physics, in playfield units per tick.
const (
	DefaultFieldWidth    = 800
	DefaultFieldHeight   = 600
	DefaultPaddleWidth   = 20
	DefaultPaddleHeight  = 100
	DefaultPaddleInset   = 20 // Distance from the side edge
	DefaultPaddleSpeed   = 5
	DefaultBallSize      = 30
	DefaultBallSpeed     = 5
	DefaultMaxBallSpeed  = 10
	DefaultWinScore      = 10
	DefaultDeflectAmount = 0.306
)

// ErrInvalidSettings is wrapped by every error returned from Settings.Validate.
var ErrInvalidSettings = errors.New("match: invalid settings")

// Settings fixes the physics and rules of a match.
type Settings struct {
	FieldW float64
	FieldH float64

	PaddleW     float64
	PaddleH     float64
	PaddleInset float64
	PaddleSpeed float64

	BallSize     float64 // Side of the ball's bounding box
	BallSpeed    float64 // Per-axis serve speed
	MaxBallSpeed float64 // Bound on the velocity magnitude

	// WinScore ends the match when a side reaches it; 0 plays forever.
	WinScore int

	Collision CollisionPolicy

	// Deflect adds DeflectAmount to vy and then inverts it on every paddle hit.
	Deflect       bool
	DeflectAmount float64

	// RandomServe draws the serve direction from a generator seeded once with Seed.
	// Otherwise every match starts toward the bottom-right.
	RandomServe bool
	Seed        int64
}

// DefaultSettings returns the 800x600 rules with a first-to-10 match.
func DefaultSettings() Settings {
	return Settings{
		FieldW:        DefaultFieldWidth,
		FieldH:        DefaultFieldHeight,
		PaddleW:       DefaultPaddleWidth,
		PaddleH:       DefaultPaddleHeight,
		PaddleInset:   DefaultPaddleInset,
		PaddleSpeed:   DefaultPaddleSpeed,
		BallSize:      DefaultBallSize,
		BallSpeed:     DefaultBallSpeed,
		MaxBallSpeed:  DefaultMaxBallSpeed,
		WinScore:      DefaultWinScore,
		Collision:     CollideRect,
		DeflectAmount: DefaultDeflectAmount,
	}
}

// Validate reports the first setting that cannot produce a playable match.
func (s Settings) Validate() error {
	switch {
	case s.FieldW <= 0 || s.FieldH <= 0:
		return invalid("playfield must be positive, got %vx%v", s.FieldW, s.FieldH)
	case s.PaddleW <= 0 || s.PaddleH <= 0:
		return invalid("paddle must be positive, got %vx%v", s.PaddleW, s.PaddleH)
	case s.PaddleH > s.FieldH:
		return invalid("paddle height %v exceeds playfield height %v", s.PaddleH, s.FieldH)
	case s.PaddleInset < 0:
		return invalid("paddle inset must not be negative, got %v", s.PaddleInset)
	case 2*(s.PaddleInset+s.PaddleW)+s.BallSize > s.FieldW:
		return invalid("paddles and ball do not fit in playfield width %v", s.FieldW)
	case s.PaddleSpeed < 0:
		return invalid("paddle speed must not be negative, got %v", s.PaddleSpeed)
	case s.BallSize <= 0 || s.BallSize >= s.FieldH:
		return invalid("ball size must be in (0, %v), got %v", s.FieldH, s.BallSize)
	case s.BallSpeed <= 0:
		return invalid("ball speed must be positive, got %v", s.BallSpeed)
	case s.MaxBallSpeed < s.BallSpeed*math.Sqrt2:
		return invalid("max ball speed %v is below the serve speed %.3f", s.MaxBallSpeed, s.BallSpeed*math.Sqrt2)
	case s.WinScore < 0:
		return invalid("win score must not be negative, got %d", s.WinScore)
	case s.Collision != CollideRect && s.Collision != CollideCircle:
		return invalid("unknown collision policy %v", s.Collision)
	case math.IsNaN(s.DeflectAmount) || math.IsInf(s.DeflectAmount, 0):
		return invalid("deflect amount must be finite")
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidSettings, fmt.Sprintf(format, args...))
}
