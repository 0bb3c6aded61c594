package frogger

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Characters used for terminal rendering.
const (
	RiverChar    = '~'
	PlatformChar = '='
	TurtleChar   = 'O'
	GoalChar     = '▒'
	VehicleChar  = '█'
	CoinChar     = '$'
	ActorChar    = '@'
)

// hudHeight is the number of screen rows above the board.
const hudHeight = 1

// GridSize returns the board size in terminal cells. Each world cell is two
// columns wide and one row high so that squares look square.
func (r *Rules) GridSize() (cols, rows int) {
	cell := r.Cell()
	return int(r.Width()/cell) * 2, int(r.Height() / cell)
}

// MinScreen returns the smallest screen Render can draw the board on.
func (r *Rules) MinScreen() (w, h int) {
	cols, rows := r.GridSize()
	return cols, rows + hudHeight
}

// Render draws the HUD and board for w onto dst.
func (r *Rules) Render(w World, dst *core.Screen) {
	dst.Clear()

	minW, minH := r.MinScreen()
	if dst.Width() < minW || dst.Height() < minH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("need %dx%d", minW, minH))
		return
	}

	cols, rows := r.GridSize()
	ox := (dst.Width() - cols) / 2
	oy := hudHeight
	board := core.NewRect(ox, oy, cols, rows)

	dst.DrawText(ox, 0, fmt.Sprintf("Score: %d", w.Score))
	level := fmt.Sprintf("Level %d", w.DifficultyLevel)
	dst.DrawText(ox+(cols-len(level))/2, 0, level)
	high := fmt.Sprintf("Best: %d", w.HighScore)
	dst.DrawText(board.Right()-len(high), 0, high)

	r.drawEntity(dst, board, w.River, RiverChar)
	for _, e := range w.Platforms {
		r.drawEntity(dst, board, e, PlatformChar)
	}
	for _, e := range w.CyclingPlatforms {
		if e.Colour == ColourTransparent {
			continue
		}
		r.drawEntity(dst, board, e, TurtleChar)
	}
	for _, e := range w.Goals {
		r.drawEntity(dst, board, e, GoalChar)
	}
	for _, e := range w.Vehicles {
		r.drawEntity(dst, board, e, VehicleChar)
	}
	for _, e := range w.Collectibles {
		r.drawEntity(dst, board, e, CoinChar)
	}
	r.drawEntity(dst, board, w.Actor, ActorChar)

	if w.GameOver {
		drawCenteredMessage(dst, board, "GAME OVER", fmt.Sprintf("Score %d  |  Press Space to restart", w.Score))
	}
}

// cellRect projects an entity onto the board, clipped to it.
func (r *Rules) cellRect(board core.Rect, e Entity) core.Rect {
	sx := float64(board.W) / r.Width()
	sy := float64(board.H) / r.Height()

	x0 := core.Clamp(int(math.Floor(e.X*sx)), 0, board.W)
	x1 := core.Clamp(int(math.Ceil((e.X+e.Width)*sx)), 0, board.W)
	y0 := core.Clamp(int(math.Floor(e.Y*sy)), 0, board.H)
	y1 := core.Clamp(int(math.Ceil((e.Y+e.Height)*sy)), 0, board.H)
	return core.NewRect(board.X+x0, board.Y+y0, x1-x0, y1-y0)
}

func (r *Rules) drawEntity(dst *core.Screen, board core.Rect, e Entity, ch rune) {
	c, ok := core.ParseColor(e.Colour)
	if !ok {
		c = core.ColorDefault
	}
	dst.DrawRect(r.cellRect(board, e), ch, c)
}

// drawCenteredMessage draws a message box in the center of the board.
func drawCenteredMessage(dst *core.Screen, board core.Rect, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect(board.X+(board.W-boxW)/2, board.Y+(board.H-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawTextColored(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorBrightRed)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
