package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 4

	boardW = Size*cellWidth + 1  // +1 for right border
	boardH = Size*cellHeight + 1 // +1 for bottom border

	minScreenW = boardW + 4
	minScreenH = hudHeight + boardH + 3
)

// tileColors maps tile values to colors; larger values use the last entry.
var tileColors = []struct {
	upTo  int
	color core.Color
}{
	{2, core.ColorWhite},
	{4, core.ColorBrightWhite},
	{8, core.ColorYellow},
	{16, core.ColorOrange},
	{32, core.ColorRed},
	{64, core.ColorBrightRed},
	{128, core.ColorBrightYellow},
	{256, core.ColorGreen},
	{512, core.ColorBrightGreen},
	{1024, core.ColorCyan},
	{2048, core.ColorBrightCyan},
	{4096, core.ColorMagenta},
}

// TileColor returns the display color of a tile value.
func TileColor(value int) core.Color {
	for _, tc := range tileColors {
		if value <= tc.upTo {
			return tc.color
		}
	}
	return core.ColorBrightMagenta
}

// Render draws the game state to the screen.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	if s.tooSmall {
		s.renderTooSmall(dst)
		return
	}

	boardX := (s.screenW - boardW) / 2
	boardY := hudHeight + 1

	s.renderHUD(dst, boardX)
	s.renderBoard(dst, boardX, boardY)
	s.renderFooter(dst, boardX, boardY+boardH)
	s.renderOverlays(dst, core.NewRect(boardX, boardY, boardW, boardH))
}

// renderTooSmall shows a "window too small" message.
func (s *Session) renderTooSmall(dst *core.Screen) {
	y := s.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// renderHUD draws the title, mode, score and timer.
func (s *Session) renderHUD(dst *core.Screen, boardX int) {
	title := "2048"
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	modeStr := s.mode.Title()
	dst.DrawText(boardX+(boardW-len(modeStr))/2, 1, modeStr)

	scoreStr := fmt.Sprintf("Score: %d", s.score)
	dst.DrawText(boardX, 2, scoreStr)
	if s.lastGain > 0 {
		dst.DrawTextColored(boardX+len(scoreStr)+1, 2, fmt.Sprintf("+%d", s.lastGain), core.ColorBrightGreen)
	}

	// Timer only in timer modes
	if s.timeLeft >= 0 {
		timeStr := fmt.Sprintf("Time: %d", s.timeLeft)
		color := core.ColorDefault
		if s.timeLeft <= 3 {
			color = core.ColorBrightRed
		}
		dst.DrawTextColored(boardX+boardW-len(timeStr), 2, timeStr, color)
	} else {
		maxStr := fmt.Sprintf("Max: %d", s.grid.MaxTile())
		dst.DrawText(boardX+boardW-len(maxStr), 2, maxStr)
	}

	if s.notice != "" {
		dst.DrawTextColored(boardX+(boardW-len(s.notice))/2, 3, s.notice, core.ColorBrightRed)
	}
}

// renderBoard draws the grid lines and tiles.
func (s *Session) renderBoard(dst *core.Screen, boardX, boardY int) {
	for y := range Size + 1 {
		for x := range Size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			dst.SetColored(px, py, junction(x, y), core.ColorGray)

			if x < Size {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if y < Size {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	for r := range Size {
		for c := range Size {
			val := s.grid.Cell(r, c)
			if val == 0 {
				continue
			}

			cellX := boardX + c*cellWidth + 1
			cellY := boardY + r*cellHeight + 1

			valStr := strconv.Itoa(val)
			padLeft := max((cellWidth-1-len(valStr))/2, 0)
			dst.DrawTextColored(cellX+padLeft, cellY, valStr, TileColor(val))
		}
	}
}

// junction picks the box-drawing rune for a grid intersection.
func junction(x, y int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == Size:
		return '┐'
	case y == Size && x == 0:
		return '└'
	case y == Size && x == Size:
		return '┘'
	case y == 0:
		return '┬'
	case y == Size:
		return '┴'
	case x == 0:
		return '├'
	case x == Size:
		return '┤'
	default:
		return '┼'
	}
}

// renderFooter draws the controls and the stuck-board hint.
func (s *Session) renderFooter(dst *core.Screen, boardX, y int) {
	if s.stuck && !s.over {
		hint := "No moves left"
		dst.DrawTextColored(boardX+(boardW-len(hint))/2, y+1, hint, core.ColorGray)
	}
	dst.DrawTextCentered(y+2, s.Controls())
}

// renderOverlays draws game state overlays.
func (s *Session) renderOverlays(dst *core.Screen, board core.Rect) {
	if s.paused {
		drawOverlay(dst, board, "PAUSED", "Press P to resume")
		return
	}

	if s.over {
		heading := "GAME OVER"
		if s.overReason == core.EventTimeUp {
			heading = "TIME'S UP"
		}
		drawOverlay(dst, board, heading, s.overMessage(), "R: Restart  B: Menu")
	}
}

// drawOverlay draws a boxed, centered text overlay on top of the board.
func drawOverlay(dst *core.Screen, board core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	cx, cy := board.Center()
	box := core.CenteredRect(cx, cy, maxLen+4, len(lines)+2)

	dst.FillRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(cx-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (s *Session) Controls() string {
	if s.mode.Pausable() {
		return "Arrows/WASD: Move | P: Pause | B: Menu | Q: Quit"
	}
	return "Arrows/WASD: Move | B: Menu | Q: Quit"
}
