package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveRules(t *testing.T) {
	dir := t.TempDir()
	custom := filepath.Join(dir, "rules.yaml")
	if err := os.WriteFile(custom, []byte("timers:\n  timed_seconds: 30\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	tests := []struct {
		name         string
		path         string
		difficulty   string
		wantTimed    int
		wantHardcore int
		wantFour     float64
		wantErr      bool
	}{
		{"custom file", custom, "", 30, 10, 0.10, false},
		{"custom file easy", custom, "easy", 30, 10, 0.05, false},
		{"hard preset overrides timers", custom, "hard", 45, 7, 0.25, false},
		{"unknown difficulty", custom, "insane", 0, 0, 0, true},
		{"missing file", filepath.Join(dir, "nope.yaml"), "", 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules, err := resolveRules(tt.path, tt.difficulty)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveRules: %v", err)
			}
			if rules.Timers.TimedSeconds != tt.wantTimed {
				t.Errorf("timed = %d, want %d", rules.Timers.TimedSeconds, tt.wantTimed)
			}
			if rules.Timers.HardcoreSeconds != tt.wantHardcore {
				t.Errorf("hardcore = %d, want %d", rules.Timers.HardcoreSeconds, tt.wantHardcore)
			}
			if rules.Spawn.FourProbability != tt.wantFour {
				t.Errorf("four probability = %v, want %v", rules.Spawn.FourProbability, tt.wantFour)
			}
		})
	}
}

func TestModesListsAllModes(t *testing.T) {
	var buf bytes.Buffer
	modesCmd.SetOut(&buf)
	defer modesCmd.SetOut(nil)

	runModes(modesCmd, nil)

	out := buf.String()
	for _, id := range []string{"classic", "timed", "hardcore", "infinite"} {
		if !strings.Contains(out, id) {
			t.Errorf("modes output missing %q:\n%s", id, out)
		}
	}
}

func TestScoresRejectsUnknownMode(t *testing.T) {
	flagDBPath = filepath.Join(t.TempDir(), "scores.db")

	if err := runScores(scoresCmd, []string{"zen"}); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestScoresEmptyTable(t *testing.T) {
	flagDBPath = filepath.Join(t.TempDir(), "scores.db")

	var buf bytes.Buffer
	scoresCmd.SetOut(&buf)
	defer scoresCmd.SetOut(nil)

	if err := runScores(scoresCmd, []string{"timed"}); err != nil {
		t.Fatalf("runScores: %v", err)
	}
	if !strings.Contains(buf.String(), "No scores recorded yet.") {
		t.Errorf("output = %q", buf.String())
	}
}
