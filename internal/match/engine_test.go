package match

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, mutate func(*Settings)) *Engine {
	t.Helper()
	s := DefaultSettings()
	if mutate != nil {
		mutate(&s)
	}
	e, err := New(s)
	require.NoError(t, err)
	return e
}

func stepN(e *Engine, n int) []StepResult {
	results := make([]StepResult, 0, n)
	for range n {
		results = append(results, e.Step())
	}
	return results
}

func countEvents(results []StepResult, kind EventKind) int {
	n := 0
	for _, r := range results {
		for _, ev := range r.Events {
			if ev.Kind == kind {
				n++
			}
		}
	}
	return n
}

func TestNewInitialState(t *testing.T) {
	e := newEngine(t, nil)
	snap := e.Snapshot()

	assert.Equal(t, Playing, snap.State)
	assert.Equal(t, [2]int{0, 0}, snap.Score)
	assert.False(t, snap.HasWinner)
	assert.Equal(t, uint64(0), snap.Tick)
	assert.Equal(t, 800.0, snap.FieldW)
	assert.Equal(t, 600.0, snap.FieldH)

	left := snap.Paddle(Player)
	assert.Equal(t, Paddle{X: 20, Y: 250, W: 20, H: 100}, left)
	right := snap.Paddle(Opponent)
	assert.Equal(t, Paddle{X: 760, Y: 250, W: 20, H: 100}, right)

	assert.Equal(t, Ball{X: 385, Y: 285, Size: 30, VX: 5, VY: 5}, snap.Ball)
}

func TestNewRejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"zero width", func(s *Settings) { s.FieldW = 0 }},
		{"negative height", func(s *Settings) { s.FieldH = -1 }},
		{"paddle taller than field", func(s *Settings) { s.PaddleH = 700 }},
		{"zero paddle width", func(s *Settings) { s.PaddleW = 0 }},
		{"negative inset", func(s *Settings) { s.PaddleInset = -1 }},
		{"field too narrow", func(s *Settings) { s.FieldW = 100 }},
		{"zero ball", func(s *Settings) { s.BallSize = 0 }},
		{"zero ball speed", func(s *Settings) { s.BallSpeed = 0 }},
		{"max speed below serve", func(s *Settings) { s.MaxBallSpeed = 7 }},
		{"negative win score", func(s *Settings) { s.WinScore = -1 }},
		{"unknown collision", func(s *Settings) { s.Collision = CollisionPolicy(9) }},
		{"nan deflect", func(s *Settings) { s.DeflectAmount = math.NaN() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			_, err := New(s)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSettings)
		})
	}
}

func TestDefaultSettingsValid(t *testing.T) {
	require.NoError(t, DefaultSettings().Validate())
}

func TestPaddleClampedToField(t *testing.T) {
	e := newEngine(t, nil)
	e.SetPaddleIntent(Player, Up)
	e.SetPaddleIntent(Opponent, Down)

	for range 60 {
		e.Step()
		snap := e.Snapshot()
		for _, p := range snap.Paddles {
			assert.GreaterOrEqual(t, p.Y, 0.0)
			assert.LessOrEqual(t, p.Y, 500.0)
		}
	}

	snap := e.Snapshot()
	assert.Equal(t, 0.0, snap.Paddle(Player).Y)
	assert.Equal(t, 500.0, snap.Paddle(Opponent).Y)
}

func TestPaddleIntentStop(t *testing.T) {
	e := newEngine(t, nil)
	e.SetPaddleIntent(Player, Down)
	e.Step()
	e.SetPaddleIntent(Player, Stop)
	e.Step()

	p := e.Snapshot().Paddle(Player)
	assert.Equal(t, 255.0, p.Y)
	assert.Equal(t, 0.0, p.VY)
}

func TestWallBounce(t *testing.T) {
	e := newEngine(t, nil)

	results := stepN(e, 57)
	assert.Zero(t, countEvents(results, EventWallBounce))

	r := e.Step()
	assert.True(t, r.Has(EventWallBounce))

	ball := e.Snapshot().Ball
	assert.Equal(t, 575.0, ball.Y)
	assert.Equal(t, 5.0, ball.VX)
	assert.Equal(t, -5.0, ball.VY)

	// Moving away from the wall it does not bounce again.
	r = e.Step()
	assert.False(t, r.Has(EventWallBounce))
	assert.Equal(t, 570.0, e.Snapshot().Ball.Y)
}

func TestTopWallBounce(t *testing.T) {
	e := newEngine(t, nil)
	e.ball.Y = 3
	e.ball.VY = -5

	r := e.Step()
	assert.True(t, r.Has(EventWallBounce))
	assert.Equal(t, 5.0, e.ball.VY)
}

func TestDefaultScenario(t *testing.T) {
	e := newEngine(t, nil)

	results := stepN(e, 77)
	assert.Equal(t, [2]int{0, 0}, e.Snapshot().Score)
	assert.Zero(t, countEvents(results, EventPaddleHit))
	assert.Equal(t, 1, countEvents(results, EventWallBounce))

	ball := e.Snapshot().Ball
	require.Equal(t, 5.0, ball.VX)
	require.Equal(t, -5.0, ball.VY)

	r := e.Step()
	require.True(t, r.Has(EventPoint))
	assert.Equal(t, []Event{{Kind: EventPoint, Side: Player}}, r.Events)
	assert.Equal(t, uint64(78), r.Tick)
	assert.Equal(t, Playing, r.State)

	snap := e.Snapshot()
	assert.Equal(t, 1, snap.Score[Player])
	assert.Equal(t, 0, snap.Score[Opponent])
	assert.Equal(t, 385.0, snap.Ball.X)
	assert.Equal(t, 285.0, snap.Ball.Y)
	assert.Equal(t, -5.0, snap.Ball.VX)
	assert.Equal(t, 5.0, snap.Ball.VY)
}

func TestScoreLeftEdge(t *testing.T) {
	e := newEngine(t, nil)
	e.ball.X = 2
	e.ball.Y = 100
	e.ball.VX = -5
	e.ball.VY = 2

	r := e.Step()
	assert.Equal(t, []Event{{Kind: EventPoint, Side: Opponent}}, r.Events)
	assert.Equal(t, 1, e.Score(Opponent))
	assert.Equal(t, 0, e.Score(Player))
	assert.Equal(t, Ball{X: 385, Y: 285, Size: 30, VX: 5, VY: -2}, e.ball)
}

func TestPaddleHitRight(t *testing.T) {
	e := newEngine(t, nil)
	e.ball.X = 731
	e.ball.Y = 285
	e.ball.VX = 5
	e.ball.VY = 0

	results := stepN(e, 5)
	assert.Equal(t, 1, countEvents(results, EventPaddleHit))
	assert.Equal(t, []Event{{Kind: EventPaddleHit, Side: Opponent}}, results[0].Events)
	assert.Equal(t, -5.0, e.ball.VX)
	assert.Equal(t, 0.0, e.ball.VY)
}

func TestPaddleHitLeft(t *testing.T) {
	e := newEngine(t, nil)
	e.ball.X = 44
	e.ball.Y = 285
	e.ball.VX = -5
	e.ball.VY = 0

	r := e.Step()
	assert.Equal(t, []Event{{Kind: EventPaddleHit, Side: Player}}, r.Events)
	assert.Equal(t, 5.0, e.ball.VX)
}

func TestPaddleEdgeContactIsNotAHit(t *testing.T) {
	e := newEngine(t, nil)
	// Moves to 730, so the right edge lands exactly on the paddle face at 760.
	e.ball.X = 725
	e.ball.Y = 285
	e.ball.VX = 5
	e.ball.VY = 0

	r := e.Step()
	assert.False(t, r.Has(EventPaddleHit))
	assert.Equal(t, 730.0, e.ball.X)
}

func TestPaddleHitOncePerContact(t *testing.T) {
	e := newEngine(t, nil)
	// Ball buried in the left paddle.
	e.ball.X = 30
	e.ball.Y = 285
	e.ball.VX = -5
	e.ball.VY = 0

	results := stepN(e, 3)
	assert.Equal(t, 1, countEvents(results, EventPaddleHit))
	assert.Equal(t, 5.0, e.ball.VX)
	assert.Equal(t, 35.0, e.ball.X)
}

func TestWallAndPaddleSameTick(t *testing.T) {
	e := newEngine(t, nil)
	e.paddles[Opponent].Y = 0
	e.ball.X = 731
	e.ball.Y = 2
	e.ball.VX = 5
	e.ball.VY = -5

	r := e.Step()
	assert.Equal(t, []Event{
		{Kind: EventWallBounce, Side: Player},
		{Kind: EventPaddleHit, Side: Opponent},
	}, r.Events)
	assert.Equal(t, -5.0, e.ball.VX)
	assert.Equal(t, 5.0, e.ball.VY)
}

func TestDeflect(t *testing.T) {
	e := newEngine(t, func(s *Settings) {
		s.Deflect = true
		s.DeflectAmount = 0.306
	})
	e.ball.X = 731
	e.ball.Y = 250
	e.ball.VX = 5
	e.ball.VY = 5

	r := e.Step()
	require.True(t, r.Has(EventPaddleHit))
	assert.Equal(t, -5.0, e.ball.VX)
	assert.InDelta(t, -5.306, e.ball.VY, 1e-9)
}

func TestSpeedClampedAfterReflection(t *testing.T) {
	e := newEngine(t, nil)
	e.ball.X = 44
	e.ball.Y = 265
	e.ball.VX = -20
	e.ball.VY = 20

	r := e.Step()
	require.True(t, r.Has(EventPaddleHit))
	assert.InDelta(t, 10.0, e.ball.Speed(), 1e-9)
	assert.InDelta(t, 10/math.Sqrt2, e.ball.VX, 1e-9)
	assert.InDelta(t, 10/math.Sqrt2, e.ball.VY, 1e-9)
}

func TestCollisionPolicies(t *testing.T) {
	// The ball's box clips the paddle's top-left corner but the inscribed
	// circle stays clear of it.
	tests := []struct {
		policy CollisionPolicy
		hit    bool
	}{
		{CollideRect, true},
		{CollideCircle, false},
	}

	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			e := newEngine(t, func(s *Settings) { s.Collision = tt.policy })
			e.ball.X = 730
			e.ball.Y = 217
			e.ball.VX = 5
			e.ball.VY = 5

			r := e.Step()
			assert.Equal(t, tt.hit, r.Has(EventPaddleHit))
		})
	}
}

func TestCircleHitsPaddleFace(t *testing.T) {
	e := newEngine(t, func(s *Settings) { s.Collision = CollideCircle })
	e.ball.X = 731
	e.ball.Y = 285
	e.ball.VX = 5
	e.ball.VY = 0

	r := e.Step()
	assert.True(t, r.Has(EventPaddleHit))
}

func TestWinTransition(t *testing.T) {
	e := newEngine(t, nil)
	e.score = [2]int{9, 3}

	results := stepN(e, 78)
	last := results[len(results)-1]
	assert.Equal(t, MatchOver, last.State)
	assert.Equal(t, []Event{
		{Kind: EventPoint, Side: Player},
		{Kind: EventMatchOver, Side: Player},
	}, last.Events)

	winner, ok := e.Winner()
	require.True(t, ok)
	assert.Equal(t, Player, winner)
	assert.Equal(t, 10, e.Score(Player))

	before := e.Snapshot()
	r := e.Step()
	assert.Equal(t, MatchOver, r.State)
	assert.Empty(t, r.Events)
	assert.Equal(t, before, e.Snapshot())
}

func TestNoWinWhileBehind(t *testing.T) {
	e := newEngine(t, nil)
	e.score = [2]int{9, 12}

	stepN(e, 78)
	assert.Equal(t, Playing, e.State())
	assert.Equal(t, 10, e.Score(Player))
	_, ok := e.Winner()
	assert.False(t, ok)
}

func TestOpponentWinsThroughLeftEdge(t *testing.T) {
	e := newEngine(t, nil)
	e.score = [2]int{5, 9}
	e.ball.X = 2
	e.ball.Y = 100
	e.ball.VX = -5
	e.ball.VY = 2

	r := e.Step()
	assert.Equal(t, MatchOver, r.State)
	assert.Equal(t, []Event{
		{Kind: EventPoint, Side: Opponent},
		{Kind: EventMatchOver, Side: Opponent},
	}, r.Events)
	assert.Equal(t, [2]int{5, 10}, e.Snapshot().Score)

	winner, ok := e.Winner()
	require.True(t, ok)
	assert.Equal(t, Opponent, winner)

	before := e.Snapshot()
	r = e.Step()
	assert.Empty(t, r.Events)
	assert.Equal(t, before, e.Snapshot())
}

func TestWinOnTieAtThreshold(t *testing.T) {
	e := newEngine(t, nil)
	e.score = [2]int{10, 9}
	e.ball.X = 2
	e.ball.Y = 100
	e.ball.VX = -5
	e.ball.VY = 2

	r := e.Step()
	assert.Equal(t, []Event{
		{Kind: EventPoint, Side: Opponent},
		{Kind: EventMatchOver, Side: Opponent},
	}, r.Events)
	assert.Equal(t, MatchOver, e.State())
	assert.Equal(t, [2]int{10, 10}, e.Snapshot().Score)

	winner, ok := e.Winner()
	require.True(t, ok)
	assert.Equal(t, Opponent, winner)
}

func TestEndlessMatch(t *testing.T) {
	e := newEngine(t, func(s *Settings) { s.WinScore = 0 })
	e.score = [2]int{100, 0}

	stepN(e, 78)
	assert.Equal(t, Playing, e.State())
	assert.Equal(t, 101, e.Score(Player))
}

func TestRequestRestart(t *testing.T) {
	e := newEngine(t, nil)

	before := e.Snapshot()
	assert.False(t, e.RequestRestart())
	assert.Equal(t, before, e.Snapshot())

	e.score = [2]int{9, 0}
	e.SetPaddleIntent(Opponent, Up)
	stepN(e, 78)
	require.Equal(t, MatchOver, e.State())

	assert.True(t, e.RequestRestart())
	snap := e.Snapshot()
	assert.Equal(t, Playing, snap.State)
	assert.Equal(t, [2]int{0, 0}, snap.Score)
	assert.False(t, snap.HasWinner)
	assert.Equal(t, uint64(0), snap.Tick)
	assert.Equal(t, Ball{X: 385, Y: 285, Size: 30, VX: 5, VY: 5}, snap.Ball)
	assert.Equal(t, Paddle{X: 760, Y: 250, W: 20, H: 100}, snap.Paddle(Opponent))
}

func TestInitializeResizesField(t *testing.T) {
	e := newEngine(t, nil)
	e.Initialize(400, 300)

	snap := e.Snapshot()
	assert.Equal(t, 400.0, snap.FieldW)
	assert.Equal(t, 300.0, snap.FieldH)
	assert.Equal(t, 360.0, snap.Paddle(Opponent).X)
	assert.Equal(t, 100.0, snap.Paddle(Player).Y)
	assert.Equal(t, 185.0, snap.Ball.X)
	assert.Equal(t, 135.0, snap.Ball.Y)
}

func TestPanics(t *testing.T) {
	e := newEngine(t, nil)

	assert.Panics(t, func() { e.SetPaddleIntent(Side(2), Up) })
	assert.Panics(t, func() { e.SetPaddleIntent(Player, Direction(2)) })
	assert.Panics(t, func() { e.Initialize(0, 600) })
	assert.Panics(t, func() { e.Initialize(800, 50) })
	assert.Panics(t, func() { e.Score(Side(-1)) })
	assert.NotPanics(t, func() { e.SetPaddleIntent(Opponent, Stop) })
}

func TestSnapshotIsACopy(t *testing.T) {
	e := newEngine(t, nil)
	snap := e.Snapshot()

	e.SetPaddleIntent(Player, Down)
	e.Step()
	assert.Equal(t, 385.0, snap.Ball.X)
	assert.Equal(t, 250.0, snap.Paddles[Player].Y)

	snap.Paddles[Opponent].Y = 0
	snap.Score[Player] = 7
	assert.Equal(t, 250.0, e.Snapshot().Paddle(Opponent).Y)
	assert.Equal(t, 0, e.Score(Player))
}

func TestStepEventsAreNotShared(t *testing.T) {
	e := newEngine(t, nil)
	e.ball.Y = 3
	e.ball.VY = -5

	first := e.Step()
	require.Len(t, first.Events, 1)
	e.Step()
	assert.Equal(t, EventWallBounce, first.Events[0].Kind)
}

func TestRandomServeIsSeeded(t *testing.T) {
	seeded := func(s *Settings) {
		s.RandomServe = true
		s.Seed = 42
	}
	a := newEngine(t, seeded)
	b := newEngine(t, seeded)

	for range 5 {
		ba, bb := a.Snapshot().Ball, b.Snapshot().Ball
		assert.Equal(t, ba, bb)
		assert.Equal(t, 5.0, math.Abs(ba.VX))
		assert.Equal(t, 5.0, math.Abs(ba.VY))

		a.state, b.state = MatchOver, MatchOver
		require.True(t, a.RequestRestart())
		require.True(t, b.RequestRestart())
	}
}

func TestParseCollisionPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    CollisionPolicy
		wantErr bool
	}{
		{"", CollideRect, false},
		{"rect", CollideRect, false},
		{" Circle ", CollideCircle, false},
		{"hexagon", CollideRect, true},
	}

	for _, tt := range tests {
		got, err := ParseCollisionPolicy(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestSideOther(t *testing.T) {
	assert.Equal(t, Opponent, Player.Other())
	assert.Equal(t, Player, Opponent.Other())
	assert.Equal(t, "left", Player.String())
	assert.Equal(t, "right", Opponent.String())
}
