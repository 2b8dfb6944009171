// Package pong adapts the match engine to the platform's Game interface:
// key actions become paddle intents, engine state becomes a cell-grid frame.
// Both paddles are driven by local players.
package pong

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/match"
)

// Game implements registry.Game on top of a match.Engine.
type Game struct {
	id    string
	title string

	cfg      config.PongConfig
	settings match.Settings
	engine   *match.Engine
	runtime  core.RuntimeConfig

	// Terminals report key presses but never releases, so a press keeps its
	// paddle moving for holdTicks ticks unless repeated.
	latches   [2]intentLatch
	holdTicks int

	paused bool
	rally  int // Paddle hits since the last point
	logger *log.Logger
}

// New creates a game with the given registry identity and config.
// A nil logger discards all output.
func New(id, title string, cfg config.PongConfig, logger *log.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	settings, err := cfg.Settings(0)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		id:        id,
		title:     title,
		cfg:       cfg,
		settings:  settings,
		holdTicks: cfg.Host.KeyHoldTicks,
		logger:    logger.With("game", id),
	}
	g.Reset(core.DefaultConfig())
	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.PongConfig {
	return g.cfg
}

// Reset starts a fresh match. The runtime seed drives the random serve.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	s := g.settings
	s.Seed = runtime.Seed
	engine, err := match.New(s)
	if err != nil {
		// Settings were validated in New; only the seed differs.
		panic(err)
	}

	g.engine = engine
	g.latches = [2]intentLatch{}
	g.paused = false
	g.rally = 0

	applied := engine.Settings()
	g.logger.Debug("match started",
		"seed", applied.Seed,
		"win_score", applied.WinScore,
		"collision", applied.Collision,
		"random_serve", applied.RandomServe)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && g.engine.State() == match.Playing {
		g.paused = !g.paused
	}

	if in.Has(core.ActionRestart) && g.engine.RequestRestart() {
		g.latches = [2]intentLatch{}
		g.paused = false
		g.rally = 0
		g.logger.Info("match restarted")
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.engine.SetPaddleIntent(match.Player,
		g.latches[match.Player].update(in.Has(core.ActionLeftUp), in.Has(core.ActionLeftDown), g.holdTicks))
	g.engine.SetPaddleIntent(match.Opponent,
		g.latches[match.Opponent].update(in.Has(core.ActionRightUp), in.Has(core.ActionRightDown), g.holdTicks))

	result := g.engine.Step()
	g.logEvents(result)

	return core.StepResult{State: g.State()}
}

func (g *Game) logEvents(result match.StepResult) {
	if result.Has(match.EventPaddleHit) {
		g.rally++
	}

	for _, ev := range result.Events {
		switch ev.Kind {
		case match.EventPoint:
			g.logger.Debug("point",
				"side", ev.Side,
				"left", g.engine.Score(match.Player),
				"right", g.engine.Score(match.Opponent),
				"rally", g.rally,
				"tick", result.Tick)
			g.rally = 0
		case match.EventMatchOver:
			g.logger.Info("match over",
				"winner", ev.Side,
				"left", g.engine.Score(match.Player),
				"right", g.engine.Score(match.Opponent),
				"ticks", result.Tick)
		}
	}
}

// Snapshot returns the engine state.
func (g *Game) Snapshot() match.Snapshot {
	return g.engine.Snapshot()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	state := core.GameState{
		LeftScore:  g.engine.Score(match.Player),
		RightScore: g.engine.Score(match.Opponent),
		Tick:       g.engine.Tick(),
		GameOver:   g.engine.State() == match.MatchOver,
		Paused:     g.paused,
	}
	if winner, ok := g.engine.Winner(); ok {
		state.Winner = winner.String()
	}
	return state
}

// intentLatch turns repeated key presses into a held direction.
type intentLatch struct {
	dir  match.Direction
	left int // Ticks until the intent lapses to Stop
}

func (l *intentLatch) update(up, down bool, hold int) match.Direction {
	switch {
	case up && down:
		l.dir, l.left = match.Stop, 0
	case up:
		l.dir, l.left = match.Up, hold
	case down:
		l.dir, l.left = match.Down, hold
	}

	if l.left <= 0 {
		l.dir = match.Stop
		return match.Stop
	}
	l.left--
	return l.dir
}
