package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the session has ended
	Paused   bool // Whether the game is paused
	TimeLeft int  // Seconds left on the countdown, -1 when the mode has none
}

// EventKind identifies something the platform may want to react to.
type EventKind int

const (
	// EventTimeUp: the countdown expired and the session is over.
	EventTimeUp EventKind = iota + 1
	// EventHardcoreReset: the countdown expired and the game restarted.
	EventHardcoreReset
	// EventNoMoves: the board is stuck and loss detection is enabled.
	EventNoMoves
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventTimeUp:
		return "time_up"
	case EventHardcoreReset:
		return "hardcore_reset"
	case EventNoMoves:
		return "no_moves"
	default:
		return "unknown"
	}
}

// Event is emitted by a game during a step.
// Score and MaxTile describe the attempt the event closes.
type Event struct {
	Kind    EventKind
	Score   int
	MaxTile int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
