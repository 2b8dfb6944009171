package match

// Snapshot is a read-only copy of the match state for rendering.
// It shares no memory with the engine.
type Snapshot struct {
	Tick   uint64
	FieldW float64
	FieldH float64

	Paddles [2]Paddle // Indexed by Side
	Ball    Ball
	Score   [2]int // Indexed by Side

	State     State
	Winner    Side // Valid only when HasWinner
	HasWinner bool
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Tick:      e.tick,
		FieldW:    e.fieldW,
		FieldH:    e.fieldH,
		Paddles:   e.paddles,
		Ball:      e.ball,
		Score:     e.score,
		State:     e.state,
		Winner:    e.winner,
		HasWinner: e.hasWinner,
	}
}

// Paddle returns the paddle of one side.
func (s Snapshot) Paddle(side Side) Paddle {
	return s.Paddles[side]
}
