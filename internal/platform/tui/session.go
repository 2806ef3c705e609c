package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// view identifies the active screen of a session.
type view int

const (
	viewMenu view = iota
	viewGame
	viewScores
)

// SessionModel manages the full flow for one player: menu -> game -> menu,
// plus the scoreboard. Used for local terminals and for SSH sessions.
type SessionModel struct {
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	view       view
	menu       MenuModel
	game       GameModel
	scoreboard ScoreboardModel
	active     *activeGame // shared by all copies of the model
	quitting   bool
	err        error
}

// activeGame tracks the game in progress so its score can be recorded when
// the program is stopped from outside, e.g. by an SSH disconnect, which
// never reaches Update.
type activeGame struct {
	mu   sync.Mutex
	game *GameModel
}

func (a *activeGame) set(g GameModel) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.game = &g
}

func (a *activeGame) clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.game = nil
}

func (a *activeGame) saveAbandoned() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.game != nil {
		a.game.saveAbandoned()
	}
}

// NewSessionModel creates a session that starts at the menu, or directly in
// startMode when it is non-empty. store and logger may be nil.
func NewSessionModel(store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, startMode string) SessionModel {
	m := SessionModel{
		store:  store,
		logger: logger,
		config: cfg,
		view:   viewMenu,
		menu:   NewMenuModel(store, cfg.ScreenW, cfg.ScreenH),
		active: &activeGame{},
	}

	if startMode != "" {
		if err := m.startGame(startMode); err != nil {
			m.err = err
		}
	}

	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.err != nil {
		return tea.Quit
	}
	if m.view == viewGame {
		return m.game.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// startGame creates the selected mode and switches to it.
func (m *SessionModel) startGame(modeID string) error {
	game, err := registry.Create(modeID)
	if err != nil {
		return err
	}

	// A zero seed picks a fresh one per game
	m.enterGame(NewGameModel(game, m.store, m.logger, m.config))
	return nil
}

func (m *SessionModel) enterGame(g GameModel) {
	m.game = g
	m.view = viewGame
	m.active.set(g)
}

// showMenu rebuilds the menu so best scores are current.
func (m *SessionModel) showMenu() tea.Cmd {
	m.menu = NewMenuModel(m.store, m.config.ScreenW, m.config.ScreenH)
	m.view = viewMenu
	m.active.clear()
	return m.menu.Init()
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		// Late tick from a game that already ended
		return m, nil
	}

	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scoreboard = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.view = viewScores
		return m, m.scoreboard.Init()

	case m.menu.Selected() != nil:
		if err := m.startGame(m.menu.Selected().ModeID); err != nil {
			// Shouldn't happen since menu only shows registered modes
			if m.logger != nil {
				m.logger.Error("cannot start game", "error", err)
			}
			return m, m.showMenu()
		}
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = gameModel
		m.active.set(gameModel)
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		return m, m.showMenu()
	}

	return m, cmd
}

// updateScores handles updates on the scoreboard.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scoreboard.IsGoingBack() {
		return m, m.showMenu()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting || m.err != nil {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.game.View()
	case viewScores:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// SaveAbandoned records the score of a game still in progress. Call it
// after the program has stopped; a game already recorded is skipped.
func (m SessionModel) SaveAbandoned() {
	m.active.saveAbandoned()
}

// Err returns the error that prevented the session from starting, if any.
func (m SessionModel) Err() error {
	return m.err
}

// Run starts a local Bubble Tea program at the menu, or in startMode.
func Run(store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, startMode string) error {
	model := NewSessionModel(store, logger, cfg, startMode)
	if err := model.Err(); err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	model.SaveAbandoned()
	return err
}
