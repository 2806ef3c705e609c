package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Reasons recorded with a saved score.
const (
	reasonAbandoned = "abandoned"
)

// maxTiler is implemented by games that can report their largest tile.
type maxTiler interface {
	MaxTile() int
}

// GameModel runs one game: it owns the tick loop, maps keys to actions and
// records scores. Back-to-menu is reported to the parent through BackToMenu.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	gen        uint64
	quitting   bool
	backToMenu bool
	scoreSaved bool // final score of the current session already recorded
}

// NewGameModel creates a game model. The game is reset immediately so the
// first frame is drawable before the first tick arrives.
// store and logger may be nil.
func NewGameModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	game.Reset(cfg)

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		keyMapper:  NewKeyMapper(),
		gen:        nextGen(),
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick(msg)
	}
	return m, nil
}

// handleKey processes keyboard input. Quit, back and restart act at once;
// everything else is queued for the next tick.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)

	switch {
	case isQuit:
		m.saveAbandoned()
		m.quitting = true
		m.gen = 0
		return m, tea.Quit

	case action == core.ActionBack:
		m.saveAbandoned()
		m.backToMenu = true
		m.gen = 0 // stops the loop
		return m, nil

	case action == core.ActionRestart:
		return m.restart()

	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// restart starts a fresh session with a new seed and a new tick loop.
func (m GameModel) restart() (tea.Model, tea.Cmd) {
	m.saveAbandoned()

	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.inputFrame.Clear()
	m.gen = nextGen()

	return m, tickCmd(m.config.TickRate, m.gen)
}

// handleResize adapts the screen buffer and the game to the new size.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	m.gameState = m.game.State()

	return m, nil
}

// handleTick processes simulation ticks from the live loop only.
func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || m.gen == 0 {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.recordEvents(result.Events)
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate, m.gen)
}

// recordEvents saves the scores of sessions and attempts that just ended.
func (m *GameModel) recordEvents(events []core.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case core.EventTimeUp, core.EventNoMoves:
			m.saveScore(ev.Kind.String(), ev.Score, ev.MaxTile)
			m.scoreSaved = true
		case core.EventHardcoreReset:
			m.saveScore(ev.Kind.String(), ev.Score, ev.MaxTile)
		}
	}
}

// saveAbandoned records the score of a session the player is leaving.
func (m *GameModel) saveAbandoned() {
	state := m.game.State()
	if state.GameOver || m.scoreSaved {
		return
	}

	maxTile := 0
	if mt, ok := m.game.(maxTiler); ok {
		maxTile = mt.MaxTile()
	}
	m.saveScore(reasonAbandoned, state.Score, maxTile)
	m.scoreSaved = true
}

// saveScore stores a positive score. Failures are logged and otherwise ignored.
func (m *GameModel) saveScore(reason string, score, maxTile int) {
	if m.store == nil || score <= 0 {
		return
	}

	_, err := m.store.SaveScore(storage.ScoreRecord{
		Mode:    m.game.ID(),
		Score:   score,
		MaxTile: maxTile,
		Reason:  reason,
	})
	if err != nil && m.logger != nil {
		m.logger.Warn("could not save score", "mode", m.game.ID(), "error", err)
	}
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state as of the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}
