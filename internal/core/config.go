package core

// RuntimeConfig is what the platform hands a game when it (re)starts it.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second; pacing only, physics counts ticks
	Seed     int64 // Seed for the serve generator
}

// DefaultConfig returns a RuntimeConfig sized for a classic 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the platform-facing summary of a running game.
type GameState struct {
	LeftScore  int
	RightScore int
	Winner     string // "left" or "right" once GameOver is set
	Tick       uint64
	GameOver   bool
	Paused     bool
}

// StepResult is returned by Game.Step after each frame.
type StepResult struct {
	State GameState
}
