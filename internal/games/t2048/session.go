package t2048

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Notices shown after a countdown expires or the board locks up.
const (
	noticeHardcoreTimeUp = "Time's up! Restarting Hardcore Mode."
	noticeHardcoreStuck  = "No moves left! Restarting Hardcore Mode."
)

// Package-level rules used by registry factories.
var rules = config.Default()

// SetRules sets the rules used by sessions created through the registry.
func SetRules(cfg config.GameConfig) {
	rules = cfg
}

// Rules returns the rules used by sessions created through the registry.
func Rules() config.GameConfig {
	return rules
}

func init() {
	for _, m := range Modes() {
		registry.Register(string(m), func() registry.Game {
			return New(m)
		})
	}
}

// Session is one game of 2048 in a given mode: grid, score and countdown.
// All state is owned here; the platform drives it with Step.
type Session struct {
	mode    Mode
	rules   config.GameConfig
	rng     *rand.Rand
	spawner *Spawner
	tick    uint64

	tickRate int
	grid     Grid
	score    int

	// Countdown, in whole seconds; -1 when the mode has no timer.
	timeLeft int
	subTicks int // ticks since the last whole second

	// Screen dimensions
	screenW int
	screenH int

	over       bool
	overReason core.EventKind
	paused     bool
	tooSmall   bool
	stuck      bool // no move can change the grid

	notice      string
	noticeTicks int
	lastGain    int
	gainTicks   int

	pending []core.Event
}

// New creates a session in the given mode using the package rules.
func New(mode Mode) *Session {
	return NewWithRules(mode, rules)
}

// NewWithRules creates a session with explicit rules.
func NewWithRules(mode Mode, cfg config.GameConfig) *Session {
	return &Session{
		mode:     mode,
		rules:    cfg,
		timeLeft: -1,
	}
}

// ID returns the game identifier, which is the mode name.
func (s *Session) ID() string {
	return string(s.mode)
}

// Title returns the display name.
func (s *Session) Title() string {
	return "2048 - " + s.mode.Title()
}

// Mode returns the session mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Reset initializes/restarts the game.
func (s *Session) Reset(cfg core.RuntimeConfig) {
	s.rng = rand.New(rand.NewSource(cfg.Seed))
	s.spawner = NewSpawner(s.rng, s.rules.Spawn.FourProbability)
	s.tick = 0
	s.tickRate = cfg.TickRate
	if s.tickRate <= 0 {
		s.tickRate = core.DefaultConfig().TickRate
	}
	s.screenW = cfg.ScreenW
	s.screenH = cfg.ScreenH
	s.paused = false
	s.notice = ""
	s.noticeTicks = 0
	s.pending = nil

	s.newGame()
	s.checkScreenSize()
}

// newGame clears the board and score, restarts the countdown and seeds two tiles.
func (s *Session) newGame() {
	s.grid.Reset()
	s.score = 0
	s.over = false
	s.overReason = 0
	s.stuck = false
	s.lastGain = 0
	s.gainTicks = 0
	s.timeLeft = s.mode.Countdown(s.rules)
	s.subTicks = 0

	s.spawner.Spawn(&s.grid)
	s.spawner.Spawn(&s.grid)
}

// checkScreenSize checks if the screen is large enough.
func (s *Session) checkScreenSize() {
	s.tooSmall = s.screenW < minScreenW || s.screenH < minScreenH
}

// Step advances the game by one tick.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	s.tick++

	if s.tooSmall {
		return s.result()
	}

	if in.Has(core.ActionPause) {
		s.TogglePause()
	}

	if s.paused {
		return s.result()
	}

	s.decayFlashes()

	if s.over {
		// Restart is performed by the platform through Reset
		return s.result()
	}

	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if !in.Has(a) {
			continue
		}
		dir, _ := DirectionFromAction(a)
		s.Move(dir)
		break // one move per tick
	}

	if !s.over {
		s.advanceClock()
	}

	return s.result()
}

// TogglePause pauses or resumes a pausable mode and returns whether the
// session is now paused. Timer modes and finished sessions ignore it.
func (s *Session) TogglePause() bool {
	if s.mode.Pausable() && !s.over {
		s.paused = !s.paused
	}
	return s.paused
}

// Move slides the board. When the board changed it adds the merge score,
// spawns a tile and, in hardcore, restarts the per-move countdown.
// Returns whether the board changed. Moves while paused or after the
// session ended are ignored.
func (s *Session) Move(dir Direction) bool {
	if s.over || s.paused || s.tooSmall {
		return false
	}

	gained, changed := s.grid.Move(dir)
	if !changed {
		return false
	}

	s.score += gained
	if gained > 0 {
		s.lastGain = gained
		s.gainTicks = s.tickRate
	}

	s.spawner.Spawn(&s.grid)

	if s.mode == ModeHardcore {
		s.timeLeft = s.mode.Countdown(s.rules)
		s.subTicks = 0
	}

	s.checkStuck()
	return true
}

// checkStuck applies the loss policy after the board changed.
func (s *Session) checkStuck() {
	s.stuck = !s.grid.CanMove()
	if !s.stuck || !s.rules.Rules.DetectLoss {
		return
	}

	switch s.mode {
	case ModeClassic, ModeTimed:
		s.end(core.EventNoMoves)
	case ModeHardcore:
		s.restartHardcore(noticeHardcoreStuck)
	case ModeInfinite:
		// never ends
	}
}

// advanceClock counts ticks into seconds and handles countdown expiry.
func (s *Session) advanceClock() {
	if s.timeLeft < 0 {
		return
	}

	s.subTicks++
	if s.subTicks < s.tickRate {
		return
	}
	s.subTicks = 0
	s.timeLeft--

	if s.timeLeft > 0 {
		return
	}

	switch s.mode {
	case ModeTimed:
		s.timeLeft = 0
		s.end(core.EventTimeUp)
	case ModeHardcore:
		s.restartHardcore(noticeHardcoreTimeUp)
	}
}

// end finishes the session and reports the final score.
func (s *Session) end(reason core.EventKind) {
	s.over = true
	s.overReason = reason
	s.pending = append(s.pending, core.Event{Kind: reason, Score: s.score, MaxTile: s.grid.MaxTile()})
}

// restartHardcore reports the expired attempt and starts a fresh game.
func (s *Session) restartHardcore(notice string) {
	s.pending = append(s.pending, core.Event{Kind: core.EventHardcoreReset, Score: s.score, MaxTile: s.grid.MaxTile()})
	s.newGame()
	s.notice = notice
	s.noticeTicks = s.rules.Rules.HardcoreNoticeSeconds * s.tickRate
}

// decayFlashes counts down transient HUD messages.
func (s *Session) decayFlashes() {
	if s.noticeTicks > 0 {
		s.noticeTicks--
		if s.noticeTicks == 0 {
			s.notice = ""
		}
	}
	if s.gainTicks > 0 {
		s.gainTicks--
		if s.gainTicks == 0 {
			s.lastGain = 0
		}
	}
}

func (s *Session) result() core.StepResult {
	events := s.pending
	s.pending = nil
	return core.StepResult{State: s.State(), Events: events}
}

// State returns the current game state.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.score,
		GameOver: s.over,
		Paused:   s.paused || s.tooSmall,
		TimeLeft: s.timeLeft,
	}
}

// Grid returns a copy of the board.
func (s *Session) Grid() Grid {
	return s.grid
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// MaxTile returns the largest tile on the board.
func (s *Session) MaxTile() int {
	return s.grid.MaxTile()
}

// TimeLeft returns the countdown in seconds, or -1 without a timer.
func (s *Session) TimeLeft() int {
	return s.timeLeft
}

// Notice returns the transient notice, if any.
func (s *Session) Notice() string {
	return s.notice
}

// Resize updates the screen dimensions without restarting the game.
func (s *Session) Resize(width, height int) {
	s.screenW = width
	s.screenH = height
	s.checkScreenSize()
}

// overMessage describes why the session ended.
func (s *Session) overMessage() string {
	switch s.overReason {
	case core.EventTimeUp:
		return fmt.Sprintf("Game Over! Final Score: %d", s.score)
	case core.EventNoMoves:
		return fmt.Sprintf("No moves left! Final Score: %d", s.score)
	default:
		return fmt.Sprintf("Final Score: %d", s.score)
	}
}
