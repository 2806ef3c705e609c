package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateStuck       GameStateType = "no_moves"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and
// for presentation layers that do not draw through core.Screen.
type Snapshot struct {
	Tick     uint64        `json:"tick"`
	Mode     string        `json:"mode"`
	Score    int           `json:"score"`
	Grid     Grid          `json:"grid"`
	MaxTile  int           `json:"max_tile"`
	TimeLeft int           `json:"time_left"` // -1 when the mode has no timer
	State    GameStateType `json:"state"`
	Notice   string        `json:"notice,omitempty"`
}

// Snapshot returns the current game snapshot.
func (s *Session) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case s.tooSmall:
		state = StatePausedSmall
	case s.over:
		state = StateGameOver
	case s.paused:
		state = StatePaused
	case s.stuck:
		state = StateStuck
	}

	notice := s.notice
	if s.over {
		notice = s.overMessage()
	}

	return Snapshot{
		Tick:     s.tick,
		Mode:     string(s.mode),
		Score:    s.score,
		Grid:     s.grid,
		MaxTile:  s.grid.MaxTile(),
		TimeLeft: s.timeLeft,
		State:    state,
		Notice:   notice,
	}
}
