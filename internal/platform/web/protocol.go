package web

import (
	"strings"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// Client message types.
const (
	msgKey     = "key"
	msgRestart = "restart"
	msgMode    = "mode"
)

// Server message types.
const (
	msgState = "state"
	msgError = "error"
)

// clientMessage is sent by the browser.
type clientMessage struct {
	Type string `json:"type"`
	Key  string `json:"key,omitempty"`  // KeyboardEvent.key, e.g. "ArrowUp" or "w"
	Mode string `json:"mode,omitempty"` // for type "mode"
}

// stateMessage carries a full snapshot of the session.
type stateMessage struct {
	Type    string `json:"type"`
	Session string `json:"session"`
	Title   string `json:"title"`
	Best    int    `json:"best"`
	t2048.Snapshot
}

// errorMessage reports a rejected client message. The session is unaffected.
type errorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// keyAction maps a browser key name to an action. Unknown keys map to
// ActionNone and never move tiles.
func keyAction(key string) core.Action {
	switch key {
	case "ArrowUp":
		return core.ActionUp
	case "ArrowDown":
		return core.ActionDown
	case "ArrowLeft":
		return core.ActionLeft
	case "ArrowRight":
		return core.ActionRight
	}

	switch strings.ToLower(key) {
	case "w":
		return core.ActionUp
	case "s":
		return core.ActionDown
	case "a":
		return core.ActionLeft
	case "d":
		return core.ActionRight
	case "p":
		return core.ActionPause
	case "r":
		return core.ActionRestart
	}

	return core.ActionNone
}
