package t2048

import (
	"math/rand"
	"testing"
)

func TestMergeLeft(t *testing.T) {
	tests := []struct {
		name     string
		input    [Size]int
		expected [Size]int
		score    int
	}{
		{
			name:     "merge then slide",
			input:    [Size]int{2, 2, 4, 0},
			expected: [Size]int{4, 4, 0, 0},
			score:    4,
		},
		{
			name:     "two independent pairs",
			input:    [Size]int{2, 2, 2, 2},
			expected: [Size]int{4, 4, 0, 0},
			score:    8,
		},
		{
			name:     "merge across compacted gap",
			input:    [Size]int{2, 0, 2, 4},
			expected: [Size]int{4, 4, 0, 0},
			score:    4,
		},
		{
			name:     "merge with trailing tile",
			input:    [Size]int{2, 2, 2, 0},
			expected: [Size]int{4, 2, 0, 0},
			score:    4,
		},
		{
			name:     "no merge possible",
			input:    [Size]int{2, 4, 8, 16},
			expected: [Size]int{2, 4, 8, 16},
			score:    0,
		},
		{
			name:     "slide with gap",
			input:    [Size]int{0, 0, 2, 2},
			expected: [Size]int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "already compacted",
			input:    [Size]int{4, 2, 0, 0},
			expected: [Size]int{4, 2, 0, 0},
			score:    0,
		},
		{
			name:     "empty row",
			input:    [Size]int{0, 0, 0, 0},
			expected: [Size]int{0, 0, 0, 0},
			score:    0,
		},
		{
			name:     "single tile",
			input:    [Size]int{0, 4, 0, 0},
			expected: [Size]int{4, 0, 0, 0},
			score:    0,
		},
		{
			name:     "merged tile does not merge again",
			input:    [Size]int{4, 4, 8, 0},
			expected: [Size]int{8, 8, 0, 0},
			score:    8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, score := mergeLeft(tt.input)
			if result != tt.expected {
				t.Errorf("mergeLeft(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if score != tt.score {
				t.Errorf("mergeLeft(%v) score = %d, want %d", tt.input, score, tt.score)
			}
		})
	}
}

func TestSlideLeft(t *testing.T) {
	board := Grid{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	expected := Grid{
		{4, 0, 0, 0},
		{8, 0, 0, 0},
		{4, 4, 0, 0},
		{2, 0, 0, 0},
	}

	result, score, changed := Slide(board, DirLeft)

	if result != expected {
		t.Errorf("Slide left: got\n%v\nwant\n%v", result, expected)
	}
	if !changed {
		t.Error("Slide left should indicate board changed")
	}
	if score != 4+8+8 {
		t.Errorf("Slide left score = %d, want 20", score)
	}
}

func TestSlideRight(t *testing.T) {
	board := Grid{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	expected := Grid{
		{0, 0, 0, 4},
		{0, 0, 0, 8},
		{0, 0, 4, 4},
		{0, 0, 0, 2},
	}

	result, _, changed := Slide(board, DirRight)

	if result != expected {
		t.Errorf("Slide right: got\n%v\nwant\n%v", result, expected)
	}
	if !changed {
		t.Error("Slide right should indicate board changed")
	}
}

func TestSlideUp(t *testing.T) {
	board := Grid{
		{2, 4, 2, 0},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 2},
	}

	expected := Grid{
		{4, 8, 4, 2},
		{0, 0, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	result, score, changed := Slide(board, DirUp)

	if result != expected {
		t.Errorf("Slide up: got\n%v\nwant\n%v", result, expected)
	}
	if !changed {
		t.Error("Slide up should indicate board changed")
	}
	if score != 4+8+4+4 {
		t.Errorf("Slide up score = %d, want 20", score)
	}
}

func TestSlideDown(t *testing.T) {
	board := Grid{
		{2, 4, 2, 2},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 0},
	}

	expected := Grid{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 4, 0},
		{4, 8, 4, 2},
	}

	result, _, changed := Slide(board, DirDown)

	if result != expected {
		t.Errorf("Slide down: got\n%v\nwant\n%v", result, expected)
	}
	if !changed {
		t.Error("Slide down should indicate board changed")
	}
}

func TestSlideUpDownMergeOrder(t *testing.T) {
	// Three equal tiles in a column: the pair nearest the wall merges.
	board := Grid{
		{2, 0, 0, 0},
		{2, 0, 0, 0},
		{2, 0, 0, 0},
		{0, 0, 0, 0},
	}

	up, _, _ := Slide(board, DirUp)
	if up[0][0] != 4 || up[1][0] != 2 || up[2][0] != 0 {
		t.Errorf("Slide up column = %v, want [4 2 0 0]", column(up, 0))
	}

	down, _, _ := Slide(board, DirDown)
	if down[3][0] != 4 || down[2][0] != 2 || down[1][0] != 0 {
		t.Errorf("Slide down column = %v, want [0 0 2 4]", column(down, 0))
	}
}

func TestNoChangeOnCompactedBoard(t *testing.T) {
	board := Grid{
		{4, 2, 0, 0},
		{8, 0, 0, 0},
		{0, 0, 0, 0},
		{2, 4, 8, 16},
	}

	result, score, changed := Slide(board, DirLeft)

	if changed {
		t.Error("Slide left should not change already left-aligned tiles")
	}
	if score != 0 {
		t.Errorf("score = %d, want 0", score)
	}
	if result != board {
		t.Error("unchanged slide should return the same grid")
	}
}

func TestSlideUnknownDirection(t *testing.T) {
	board := Grid{{2, 2, 0, 0}}
	result, score, changed := Slide(board, Direction(42))
	if changed || score != 0 || result != board {
		t.Error("unknown direction should be a no-op")
	}
}

func TestRotateRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for range 200 {
		g := randomGrid(rng)

		if got := RotateCounterClockwise(RotateClockwise(g)); got != g {
			t.Fatalf("CCW(CW(g)) != g\n%v\n%v", got, g)
		}
		if got := RotateClockwise(RotateCounterClockwise(g)); got != g {
			t.Fatalf("CW(CCW(g)) != g\n%v\n%v", got, g)
		}

		four := g
		for range 4 {
			four = RotateClockwise(four)
		}
		if four != g {
			t.Fatalf("four clockwise rotations should be identity")
		}
	}
}

func TestRotateClockwiseMapping(t *testing.T) {
	g := Grid{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	}

	expected := Grid{
		{13, 9, 5, 1},
		{14, 10, 6, 2},
		{15, 11, 7, 3},
		{16, 12, 8, 4},
	}

	if got := RotateClockwise(g); got != expected {
		t.Errorf("RotateClockwise:\n%v\nwant\n%v", got, expected)
	}
}

func TestScoreNeverDecreases(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	g := Grid{}
	sp := NewSpawner(rng, 0.1)
	sp.Spawn(&g)
	sp.Spawn(&g)

	total := 0
	for range 500 {
		dir := Direction(rng.Intn(4))
		gained, changed := g.Move(dir)
		if gained < 0 {
			t.Fatalf("gained %d < 0", gained)
		}
		total += gained
		if changed {
			sp.Spawn(&g)
		}
	}

	if total == 0 {
		t.Error("500 random moves should produce at least one merge")
	}
}

func TestLeftThenRightIsNotInverse(t *testing.T) {
	g := Grid{{2, 2, 0, 0}}
	left, _, _ := Slide(g, DirLeft)
	back, _, _ := Slide(left, DirRight)
	if back == g {
		t.Error("merges are lossy: right after left should not restore the grid")
	}
}

func randomGrid(rng *rand.Rand) Grid {
	var g Grid
	for r := range Size {
		for c := range Size {
			if rng.Intn(3) > 0 {
				g[r][c] = 1 << (1 + rng.Intn(11))
			}
		}
	}
	return g
}

func column(g Grid, c int) [Size]int {
	var col [Size]int
	for r := range Size {
		col[r] = g[r][c]
	}
	return col
}
