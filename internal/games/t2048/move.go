package t2048

import "github.com/vovakirdan/tui-2048/internal/core"

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// DirectionFromAction maps a directional action to a Direction.
func DirectionFromAction(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	default:
		return 0, false
	}
}

// Slide performs a move in the given direction without touching the input.
// Returns the new grid, score gained, and whether the grid changed.
//
// Only left is implemented directly; the other directions transform the
// grid so that the wanted direction becomes left, slide, and transform back.
func Slide(g Grid, dir Direction) (Grid, int, bool) {
	switch dir {
	case DirLeft:
		return slideLeft(g)
	case DirRight:
		return slideVia(g, reverseRows, reverseRows)
	case DirUp:
		return slideVia(g, RotateCounterClockwise, RotateClockwise)
	case DirDown:
		return slideVia(g, RotateClockwise, RotateCounterClockwise)
	default:
		return g, 0, false
	}
}

func slideVia(g Grid, pre, post func(Grid) Grid) (Grid, int, bool) {
	slid, gained, changed := slideLeft(pre(g))
	return post(slid), gained, changed
}

// slideLeft applies mergeLeft to every row.
func slideLeft(g Grid) (Grid, int, bool) {
	var out Grid
	total := 0
	changed := false

	for r := range Size {
		row, gained := mergeLeft(g[r])
		out[r] = row
		total += gained
		if row != g[r] {
			changed = true
		}
	}

	return out, total, changed
}

// mergeLeft compacts a row, merges equal neighbours once each, compacts
// again and pads with zeros on the right.
func mergeLeft(row [Size]int) ([Size]int, int) {
	tiles := compact(row[:])
	gained := 0

	for i := 0; i < len(tiles)-1; i++ {
		if tiles[i] == tiles[i+1] {
			tiles[i] *= 2
			gained += tiles[i]
			tiles[i+1] = 0
			i++ // the merged tile is done for this move
		}
	}

	var out [Size]int
	copy(out[:], compact(tiles))
	return out, gained
}

// compact returns the non-zero values in order.
func compact(row []int) []int {
	out := make([]int, 0, len(row))
	for _, v := range row {
		if v != 0 {
			out = append(out, v)
		}
	}
	return out
}

// reverseRows mirrors the grid horizontally.
func reverseRows(g Grid) Grid {
	var out Grid
	for r := range Size {
		for c := range Size {
			out[r][Size-1-c] = g[r][c]
		}
	}
	return out
}

// RotateClockwise rotates the grid 90° clockwise: (r, c) -> (c, Size-1-r).
func RotateClockwise(g Grid) Grid {
	var out Grid
	for r := range Size {
		for c := range Size {
			out[c][Size-1-r] = g[r][c]
		}
	}
	return out
}

// RotateCounterClockwise rotates the grid 90° counter-clockwise: (r, c) -> (Size-1-c, r).
func RotateCounterClockwise(g Grid) Grid {
	var out Grid
	for r := range Size {
		for c := range Size {
			out[Size-1-c][r] = g[r][c]
		}
	}
	return out
}
