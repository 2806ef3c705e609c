package t2048

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-2048/internal/config"
)

// Mode represents the game mode. Modes differ only in timer and loss policy.
type Mode string

const (
	ModeClassic  Mode = "classic"
	ModeTimed    Mode = "timed"
	ModeHardcore Mode = "hardcore"
	ModeInfinite Mode = "infinite"
)

// Modes returns all modes in menu order.
func Modes() []Mode {
	return []Mode{ModeClassic, ModeTimed, ModeHardcore, ModeInfinite}
}

// ParseMode converts a mode name (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes() {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("t2048: unknown mode %q", s)
}

// Title returns the display name, e.g. "Hardcore Mode".
func (m Mode) Title() string {
	if m == "" {
		return "Mode"
	}
	return strings.ToUpper(string(m[:1])) + string(m[1:]) + " Mode"
}

// Description returns a one-line summary for menus.
func (m Mode) Description(rules config.GameConfig) string {
	switch m {
	case ModeClassic:
		return "No timer, play at your own pace"
	case ModeTimed:
		return fmt.Sprintf("Score as much as you can in %d seconds", rules.Timers.TimedSeconds)
	case ModeHardcore:
		return fmt.Sprintf("Move within %d seconds or start over", rules.Timers.HardcoreSeconds)
	case ModeInfinite:
		return "No timer, the game never ends"
	default:
		return ""
	}
}

// Countdown returns the starting countdown in seconds, or -1 if the mode
// has no timer.
func (m Mode) Countdown(rules config.GameConfig) int {
	switch m {
	case ModeTimed:
		return rules.Timers.TimedSeconds
	case ModeHardcore:
		return rules.Timers.HardcoreSeconds
	default:
		return -1
	}
}

// HasTimer reports whether the mode runs a countdown.
func (m Mode) HasTimer() bool {
	return m == ModeTimed || m == ModeHardcore
}

// Pausable reports whether the player may pause. Timer modes cannot pause.
func (m Mode) Pausable() bool {
	return !m.HasTimer()
}
