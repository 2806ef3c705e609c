package web

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

func TestKeyAction(t *testing.T) {
	tests := []struct {
		key  string
		want core.Action
	}{
		{"ArrowUp", core.ActionUp},
		{"ArrowDown", core.ActionDown},
		{"ArrowLeft", core.ActionLeft},
		{"ArrowRight", core.ActionRight},
		{"w", core.ActionUp},
		{"W", core.ActionUp},
		{"a", core.ActionLeft},
		{"S", core.ActionDown},
		{"d", core.ActionRight},
		{"p", core.ActionPause},
		{"r", core.ActionRestart},
		{"Enter", core.ActionNone},
		{"x", core.ActionNone},
		{"", core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := keyAction(tt.key); got != tt.want {
				t.Errorf("keyAction(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestStateMessageFlattensSnapshot(t *testing.T) {
	msg := stateMessage{
		Type:    msgState,
		Session: "abc",
		Best:    512,
		Snapshot: t2048.Snapshot{
			Mode:     "timed",
			Score:    64,
			Grid:     t2048.Grid{{2, 4, 0, 0}},
			TimeLeft: 42,
			State:    t2048.StatePlaying,
		},
	}

	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	s := string(data)
	for _, want := range []string{
		`"type":"state"`, `"best":512`, `"mode":"timed"`, `"score":64`,
		`"time_left":42`, `"grid":[[2,4,0,0],[0,0,0,0]`, `"state":"playing"`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("encoded message missing %s: %s", want, s)
		}
	}
}
