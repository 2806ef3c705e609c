package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

func newTestSessionModel(t *testing.T, startMode string) SessionModel {
	t.Helper()
	return NewSessionModel(nil, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, startMode)
}

func send(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, want SessionModel", next)
	}
	return sm, cmd
}

func TestSessionMenuListsModes(t *testing.T) {
	m := newTestSessionModel(t, "")

	view := m.View()
	for _, want := range []string{"Classic Mode", "Timed Mode", "Hardcore Mode", "Infinite Mode"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu missing %q:\n%s", want, view)
		}
	}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := newTestSessionModel(t, "")

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewGame {
		t.Fatalf("view = %v, want game", m.view)
	}
	if cmd == nil {
		t.Error("starting a game should start its tick loop")
	}
	if m.game.game.ID() != "timed" {
		t.Errorf("started %q, want timed", m.game.game.ID())
	}
	if !strings.Contains(m.View(), "Timed Mode") {
		t.Error("game view should show the mode title")
	}

	gen := m.game.gen
	m, _ = send(t, m, runeKey('b'))
	if m.view != viewMenu {
		t.Fatalf("view = %v, want menu after back", m.view)
	}

	// A tick from the abandoned loop is harmless
	m, cmd = send(t, m, TickMsg{Gen: gen})
	if cmd != nil || m.view != viewMenu {
		t.Error("stale tick should be dropped at the menu")
	}
}

func TestSessionNumberKeySelectsMode(t *testing.T) {
	m := newTestSessionModel(t, "")

	m, _ = send(t, m, runeKey('3'))
	if m.view != viewGame || m.game.game.ID() != "hardcore" {
		t.Fatalf("key 3 should start hardcore, view = %v", m.view)
	}
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	m := newTestSessionModel(t, "")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != viewScores {
		t.Fatalf("view = %v, want scores", m.view)
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("scoreboard title missing")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.scoreboard.SelectedMode() != "timed" {
		t.Errorf("tab should move to the next mode, got %q", m.scoreboard.SelectedMode())
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu {
		t.Errorf("view = %v, want menu after esc", m.view)
	}
}

func TestSessionStartMode(t *testing.T) {
	m := newTestSessionModel(t, "infinite")
	if m.Err() != nil {
		t.Fatalf("Err() = %v", m.Err())
	}
	if m.view != viewGame {
		t.Fatalf("view = %v, want game", m.view)
	}
	if m.Init() == nil {
		t.Error("Init should start the tick loop")
	}

	bad := newTestSessionModel(t, "zen")
	if bad.Err() == nil {
		t.Error("unknown start mode should fail")
	}
}

func TestSessionQuit(t *testing.T) {
	m := newTestSessionModel(t, "classic")

	m, cmd := send(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestSessionResizeReachesGame(t *testing.T) {
	m := newTestSessionModel(t, "classic")

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 20, Height: 8})
	if !strings.Contains(m.View(), "too small") {
		t.Errorf("small window message missing:\n%s", m.View())
	}

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	if !strings.Contains(m.View(), "Classic Mode") {
		t.Error("game should be drawn again after growing the window")
	}
}

// newStoredSession returns a session with a scores database, playing g.
func newStoredSession(t *testing.T, g *countingGame) (SessionModel, *storage.Store) {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	m := NewSessionModel(store, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, "")
	m.enterGame(newTestGameModel(t, g, store))
	return m, store
}

func TestSessionSaveAbandonedAfterProgramStops(t *testing.T) {
	g := &countingGame{}
	m, store := newStoredSession(t, g)

	g.score = 512
	m, _ = send(t, m, TickMsg{Gen: m.game.gen})

	// The program is stopped without a final Update, as on disconnect
	m.SaveAbandoned()
	m.SaveAbandoned()

	scores, err := store.TopScores("classic", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("got %d scores, want 1: %+v", len(scores), scores)
	}
	if scores[0].Score != 512 || scores[0].Reason != reasonAbandoned || scores[0].MaxTile != 64 {
		t.Errorf("score = %+v, want abandoned 512", scores[0])
	}
}

func TestSessionSaveAbandonedSkipsRecordedGames(t *testing.T) {
	tests := []struct {
		name  string
		drive func(*testing.T, SessionModel, *countingGame) SessionModel
		want  int
	}{
		{
			name: "quit already saved",
			drive: func(t *testing.T, m SessionModel, _ *countingGame) SessionModel {
				m, _ = send(t, m, runeKey('q'))
				return m
			},
			want: 1,
		},
		{
			name: "back to menu",
			drive: func(t *testing.T, m SessionModel, _ *countingGame) SessionModel {
				m, _ = send(t, m, runeKey('b'))
				return m
			},
			want: 1,
		},
		{
			name: "game over",
			drive: func(t *testing.T, m SessionModel, g *countingGame) SessionModel {
				g.over = true
				m, _ = send(t, m, TickMsg{Gen: m.game.gen})
				return m
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &countingGame{score: 200}
			m, store := newStoredSession(t, g)

			m = tt.drive(t, m, g)
			m.SaveAbandoned()

			scores, err := store.TopScores("classic", 10)
			if err != nil {
				t.Fatalf("TopScores: %v", err)
			}
			if len(scores) != tt.want {
				t.Errorf("got %d scores, want %d: %+v", len(scores), tt.want, scores)
			}
		})
	}
}
