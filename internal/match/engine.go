package match

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Paddle is one paddle. X and Y are its top-left corner.
type Paddle struct {
	X, Y float64
	W, H float64
	VY   float64 // One of -speed, 0, +speed
}

// Box returns the paddle's bounding box.
func (p Paddle) Box() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Ball is the ball. X and Y are the top-left corner of its bounding box.
type Ball struct {
	X, Y   float64
	Size   float64
	VX, VY float64
}

// Box returns the ball's bounding box.
func (b Ball) Box() core.Box {
	return core.Box{X: b.X, Y: b.Y, W: b.Size, H: b.Size}
}

// Circle returns the circle inscribed in the ball's bounding box.
func (b Ball) Circle() core.Circle {
	r := b.Size / 2
	return core.Circle{X: b.X + r, Y: b.Y + r, R: r}
}

// Speed returns the magnitude of the ball's velocity.
func (b Ball) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

// StepResult reports the outcome of a single tick.
type StepResult struct {
	Tick   uint64
	State  State
	Events []Event
}

// Has reports whether an event of the given kind happened during the tick.
func (r StepResult) Has(kind EventKind) bool {
	for _, ev := range r.Events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}

// Engine owns the state of one match. It is not safe for concurrent use;
// each host session owns its own engine.
type Engine struct {
	settings Settings
	rng      *rand.Rand // nil unless RandomServe

	fieldW float64
	fieldH float64

	paddles [2]Paddle
	ball    Ball
	score   [2]int

	state     State
	winner    Side
	hasWinner bool
	tick      uint64

	events []Event
}

// New validates the settings and returns an engine initialized on the
// settings' playfield.
func New(settings Settings) (*Engine, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{settings: settings}
	if settings.RandomServe {
		e.rng = rand.New(rand.NewSource(settings.Seed))
	}
	e.Initialize(settings.FieldW, settings.FieldH)
	return e, nil
}

// Initialize starts a fresh match on a w x h playfield: paddles centered
// vertically at the inset from each side, the ball centered and served,
// score 0:0, state Playing.
//
// Initialize panics if the paddles and the ball do not fit in the playfield.
func (e *Engine) Initialize(w, h float64) {
	s := e.settings
	if w <= 0 || h <= 0 || s.PaddleH > h || s.BallSize >= h ||
		2*(s.PaddleInset+s.PaddleW)+s.BallSize > w {
		panic(fmt.Sprintf("match: playfield %vx%v cannot hold paddles and ball", w, h))
	}

	e.fieldW = w
	e.fieldH = h
	e.reset()
}

func (e *Engine) reset() {
	s := e.settings
	paddleY := (e.fieldH - s.PaddleH) / 2

	e.paddles[Player] = Paddle{X: s.PaddleInset, Y: paddleY, W: s.PaddleW, H: s.PaddleH}
	e.paddles[Opponent] = Paddle{
		X: e.fieldW - s.PaddleInset - s.PaddleW,
		Y: paddleY,
		W: s.PaddleW,
		H: s.PaddleH,
	}

	e.ball = Ball{Size: s.BallSize}
	e.centerBall()
	e.ball.VX, e.ball.VY = e.serve()

	e.score = [2]int{}
	e.state = Playing
	e.winner = Player
	e.hasWinner = false
	e.tick = 0
}

// serve returns the opening velocity.
func (e *Engine) serve() (vx, vy float64) {
	speed := e.settings.BallSpeed
	if e.rng == nil {
		return speed, speed
	}

	vx, vy = speed, speed
	if e.rng.Intn(2) == 0 {
		vx = -vx
	}
	if e.rng.Intn(2) == 0 {
		vy = -vy
	}
	return vx, vy
}

func (e *Engine) centerBall() {
	e.ball.X = (e.fieldW - e.ball.Size) / 2
	e.ball.Y = (e.fieldH - e.ball.Size) / 2
}

// SetPaddleIntent sets the vertical velocity of a paddle to dir times the
// paddle speed. The intent holds until it is changed.
//
// SetPaddleIntent panics on an unknown side or direction.
func (e *Engine) SetPaddleIntent(side Side, dir Direction) {
	if !side.valid() {
		panic(fmt.Sprintf("match: invalid side %d", int(side)))
	}
	if !dir.valid() {
		panic(fmt.Sprintf("match: invalid direction %d", int(dir)))
	}
	e.paddles[side].VY = float64(dir) * e.settings.PaddleSpeed
}

// Step advances the match by one tick. It is a no-op once the match is over.
func (e *Engine) Step() StepResult {
	if e.state == MatchOver {
		return StepResult{Tick: e.tick, State: e.state}
	}

	e.tick++
	e.events = e.events[:0]

	e.movePaddles()
	e.ball.X += e.ball.VX
	e.ball.Y += e.ball.VY
	e.bounceWalls()
	e.bouncePaddles()
	if scorer, ok := e.checkScore(); ok {
		e.checkWin(scorer)
	}

	var events []Event
	if len(e.events) > 0 {
		events = make([]Event, len(e.events))
		copy(events, e.events)
	}
	return StepResult{Tick: e.tick, State: e.state, Events: events}
}

func (e *Engine) movePaddles() {
	maxY := e.fieldH - e.settings.PaddleH
	for i := range e.paddles {
		p := &e.paddles[i]
		p.Y = core.ClampF(p.Y+p.VY, 0, maxY)
	}
}

// bounceWalls reflects the ball off the top and bottom edges. The ball must
// be moving toward the wall it crossed, so it cannot stick to an edge.
func (e *Engine) bounceWalls() {
	b := &e.ball
	if (b.Y < 0 && b.VY < 0) || (b.Y+b.Size > e.fieldH && b.VY > 0) {
		b.VY = -b.VY
		e.clampSpeed()
		e.emit(EventWallBounce, Player)
	}
}

// bouncePaddles reflects the ball off the paddle it is moving toward.
// At most one paddle can be hit per tick.
func (e *Engine) bouncePaddles() {
	b := &e.ball
	var side Side
	switch {
	case b.VX < 0:
		side = Player
	case b.VX > 0:
		side = Opponent
	default:
		return
	}

	if !e.touches(e.paddles[side]) {
		return
	}

	b.VX = -b.VX
	if e.settings.Deflect {
		b.VY += e.settings.DeflectAmount
		b.VY = -b.VY
	}
	e.clampSpeed()
	e.emit(EventPaddleHit, side)
}

func (e *Engine) touches(p Paddle) bool {
	if e.settings.Collision == CollideCircle {
		return e.ball.Circle().IntersectsBox(p.Box())
	}
	return e.ball.Box().Intersects(p.Box())
}

// clampSpeed scales the ball velocity down to MaxBallSpeed, keeping its direction.
func (e *Engine) clampSpeed() {
	speed := e.ball.Speed()
	limit := e.settings.MaxBallSpeed
	if speed <= limit {
		return
	}
	k := limit / speed
	e.ball.VX *= k
	e.ball.VY *= k
}

// checkScore awards a point when the ball leaves the playfield sideways, then
// re-centers the ball and sends it back the way it came.
func (e *Engine) checkScore() (Side, bool) {
	var scorer Side
	switch {
	case e.ball.X < 0:
		scorer = Opponent
	case e.ball.X+e.ball.Size > e.fieldW:
		scorer = Player
	default:
		return Player, false
	}

	e.score[scorer]++
	e.centerBall()
	e.ball.VX = -e.ball.VX
	e.ball.VY = -e.ball.VY
	e.emit(EventPoint, scorer)
	return scorer, true
}

func (e *Engine) checkWin(scorer Side) {
	target := e.settings.WinScore
	if target <= 0 {
		return
	}
	s := e.score[scorer]
	if s >= target && s >= e.score[scorer.Other()] {
		e.state = MatchOver
		e.winner = scorer
		e.hasWinner = true
		e.emit(EventMatchOver, scorer)
	}
}

func (e *Engine) emit(kind EventKind, side Side) {
	e.events = append(e.events, Event{Kind: kind, Side: side})
}

// RequestRestart starts a new match on the same playfield. It only has an
// effect once the match is over and reports whether the match was restarted.
func (e *Engine) RequestRestart() bool {
	if e.state != MatchOver {
		return false
	}
	e.reset()
	return true
}

// State returns the current match state.
func (e *Engine) State() State {
	return e.state
}

// Score returns the points of one side.
func (e *Engine) Score(side Side) int {
	if !side.valid() {
		panic(fmt.Sprintf("match: invalid side %d", int(side)))
	}
	return e.score[side]
}

// Winner returns the winning side once the match is over.
func (e *Engine) Winner() (Side, bool) {
	return e.winner, e.hasWinner
}

// Tick returns the number of ticks simulated since the match started.
func (e *Engine) Tick() uint64 {
	return e.tick
}

// Settings returns the settings the engine was built with.
func (e *Engine) Settings() Settings {
	return e.settings
}
