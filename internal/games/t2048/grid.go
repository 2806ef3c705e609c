// Package t2048 implements the 2048 sliding-tile puzzle with classic, timed,
// hardcore and infinite modes.
package t2048

// Size is the board dimension. The board is always Size x Size.
const Size = 4

// Grid holds tile values indexed as [row][col]. Zero means empty.
type Grid [Size][Size]int

// Pos addresses a single cell.
type Pos struct {
	Row, Col int
}

// Cell returns the value at (row, col).
func (g *Grid) Cell(row, col int) int {
	return g[row][col]
}

// Reset empties every cell.
func (g *Grid) Reset() {
	*g = Grid{}
}

// Move slides the grid in place and returns the merge score and whether
// any tile moved.
func (g *Grid) Move(dir Direction) (gained int, changed bool) {
	next, gained, changed := Slide(*g, dir)
	if changed {
		*g = next
	}
	return gained, changed
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func (g *Grid) EmptyCells() []Pos {
	var cells []Pos
	for r := range Size {
		for c := range Size {
			if g[r][c] == 0 {
				cells = append(cells, Pos{Row: r, Col: c})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func (g *Grid) HasEmptyCell() bool {
	for r := range Size {
		for c := range Size {
			if g[r][c] == 0 {
				return true
			}
		}
	}
	return false
}

// HasPossibleMerge returns true if any two adjacent tiles are equal.
func (g *Grid) HasPossibleMerge() bool {
	for r := range Size {
		for c := range Size {
			val := g[r][c]
			if val == 0 {
				continue
			}
			if c < Size-1 && g[r][c+1] == val {
				return true
			}
			if r < Size-1 && g[r+1][c] == val {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if at least one direction would change the grid.
func (g *Grid) CanMove() bool {
	return g.HasEmptyCell() || g.HasPossibleMerge()
}

// MaxTile returns the highest tile value on the grid.
func (g *Grid) MaxTile() int {
	maxVal := 0
	for r := range Size {
		for c := range Size {
			maxVal = max(maxVal, g[r][c])
		}
	}
	return maxVal
}
