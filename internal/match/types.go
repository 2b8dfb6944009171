// Package match implements the Pong match simulation: two paddles, one ball,
// the score, and the Playing/MatchOver state machine.
//
// The engine advances in fixed ticks and performs no I/O. A host drives it
// once per frame:
//
//	engine.SetPaddleIntent(match.Player, match.Up)
//	result := engine.Step()
//	snap := engine.Snapshot()
//
// All positions are top-left corners in playfield units, with y growing down.
package match

import (
	"fmt"
	"strings"
)

// Side identifies a paddle.
type Side int

const (
	Player   Side = iota // Left paddle
	Opponent             // Right paddle
)

// String returns "left" or "right".
func (s Side) String() string {
	switch s {
	case Player:
		return "left"
	case Opponent:
		return "right"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Other returns the opposite side.
func (s Side) Other() Side {
	if s == Player {
		return Opponent
	}
	return Player
}

func (s Side) valid() bool {
	return s == Player || s == Opponent
}

// Direction is a paddle intent. Its value is the sign of the resulting
// vertical velocity.
type Direction int

const (
	Up   Direction = -1
	Stop Direction = 0
	Down Direction = 1
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Stop:
		return "stop"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

func (d Direction) valid() bool {
	return d >= Up && d <= Down
}

// State is the match state.
type State int

const (
	Playing State = iota
	MatchOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	if s == MatchOver {
		return "match over"
	}
	return "playing"
}

// CollisionPolicy selects the ball-paddle contact test.
type CollisionPolicy int

const (
	// CollideRect treats the ball as its bounding box (AABB overlap).
	CollideRect CollisionPolicy = iota
	// CollideCircle treats the ball as the circle inscribed in its bounding
	// box and tests it against the closest point of the paddle.
	CollideCircle
)

// String returns the name used in configuration files.
func (p CollisionPolicy) String() string {
	switch p {
	case CollideRect:
		return "rect"
	case CollideCircle:
		return "circle"
	default:
		return fmt.Sprintf("CollisionPolicy(%d)", int(p))
	}
}

// ParseCollisionPolicy parses "rect" or "circle". An empty string means rect.
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rect":
		return CollideRect, nil
	case "circle":
		return CollideCircle, nil
	default:
		return CollideRect, fmt.Errorf("match: unknown collision policy %q", s)
	}
}

// EventKind classifies what happened during a tick.
type EventKind int

const (
	EventWallBounce EventKind = iota
	EventPaddleHit
	EventPoint
	EventMatchOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventWallBounce:
		return "wall bounce"
	case EventPaddleHit:
		return "paddle hit"
	case EventPoint:
		return "point"
	case EventMatchOver:
		return "match over"
	default:
		return "unknown"
	}
}

// Event is something the host may want to log or animate.
// Side is the paddle that was hit, the side that scored, or the winner;
// it is meaningless for wall bounces.
type Event struct {
	Kind EventKind
	Side Side
}
