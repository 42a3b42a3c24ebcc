// Package render draws the board on a tcell screen. Only cells that
// changed since the last frame are touched.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/maxwellkuo47/termsnake/internal/snake"
)

const (
	snakeGlyph = 'S'
	appleGlyph = 'A'
)

type Renderer struct {
	screen tcell.Screen
	board  snake.Board

	defStyle    tcell.Style
	snakeStyle  tcell.Style
	appleStyle  tcell.Style
	borderStyle tcell.Style
}

func New(screen tcell.Screen, board snake.Board) *Renderer {
	defStyle := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)
	return &Renderer{
		screen:      screen,
		board:       board,
		defStyle:    defStyle,
		snakeStyle:  defStyle.Foreground(tcell.ColorGreen),
		appleStyle:  defStyle.Foreground(tcell.ColorRed),
		borderStyle: defStyle,
	}
}

// DrawBoard clears the screen and draws the border around the board.
func (r *Renderer) DrawBoard() {
	r.screen.SetStyle(r.defStyle)
	r.screen.HideCursor()
	r.screen.Clear()

	right, bottom := r.board.Cols+1, r.board.Rows+1
	for x := 1; x < right; x++ {
		r.screen.SetContent(x, 0, tcell.RuneHLine, nil, r.borderStyle)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, nil, r.borderStyle)
	}
	for y := 1; y < bottom; y++ {
		r.screen.SetContent(0, y, tcell.RuneVLine, nil, r.borderStyle)
		r.screen.SetContent(right, y, tcell.RuneVLine, nil, r.borderStyle)
	}
	r.screen.SetContent(0, 0, tcell.RuneULCorner, nil, r.borderStyle)
	r.screen.SetContent(right, 0, tcell.RuneURCorner, nil, r.borderStyle)
	r.screen.SetContent(0, bottom, tcell.RuneLLCorner, nil, r.borderStyle)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, r.borderStyle)
	r.screen.Show()
}

// Draw erases what prev showed and cur no longer does, then draws cur.
// Draws come after erases so a cell in both ends up showing cur.
func (r *Renderer) Draw(prev, cur snake.Frame) {
	keep := make(map[snake.Cell]struct{}, len(cur.Snake)+1)
	for _, c := range cur.Snake {
		keep[c] = struct{}{}
	}
	keep[cur.Apple] = struct{}{}

	for _, c := range prev.Snake {
		if _, ok := keep[c]; !ok {
			r.set(c, ' ', r.defStyle)
		}
	}
	if _, ok := keep[prev.Apple]; !ok {
		r.set(prev.Apple, ' ', r.defStyle)
	}

	for _, c := range cur.Snake {
		r.set(c, snakeGlyph, r.snakeStyle)
	}
	r.set(cur.Apple, appleGlyph, r.appleStyle)

	if cur.Score > prev.Score {
		_ = r.screen.Beep()
	}
	r.text(2, 0, fmt.Sprintf(" score %d  length %d ", cur.Score, len(cur.Snake)), r.borderStyle)
	r.screen.Show()
}

// GameOver prints a banner across the middle of the board.
func (r *Renderer) GameOver(reason string, score int) {
	msg := fmt.Sprintf(" %s - score %d ", reason, score)
	x := 1 + (r.board.Cols-len(msg))/2
	if x < 1 {
		x = 1
	}
	r.text(x, 1+r.board.Rows/2, msg, r.defStyle.Reverse(true))
	r.screen.Show()
}

func (r *Renderer) set(c snake.Cell, glyph rune, style tcell.Style) {
	if !r.board.Contains(c) {
		return
	}
	r.screen.SetContent(1+c.Col, 1+c.Row, glyph, nil, style)
}

// text writes s from x, clipped to the inside of the border.
func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		if x > r.board.Cols {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
