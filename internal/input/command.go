package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/maxwellkuo47/termsnake/internal/snake"
)

type Command int

const (
	TurnUp Command = iota + 1
	TurnDown
	TurnLeft
	TurnRight
	Quit
)

// Heading maps a turn command to its heading. Quit has none.
func (c Command) Heading() (snake.Heading, bool) {
	switch c {
	case TurnUp:
		return snake.Up, true
	case TurnDown:
		return snake.Down, true
	case TurnLeft:
		return snake.Left, true
	case TurnRight:
		return snake.Right, true
	}
	return 0, false
}

func (c Command) String() string {
	switch c {
	case TurnUp:
		return "turn-up"
	case TurnDown:
		return "turn-down"
	case TurnLeft:
		return "turn-left"
	case TurnRight:
		return "turn-right"
	case Quit:
		return "quit"
	}
	return "unknown"
}

// Translate maps a key press to a command: w/a/s/d or the arrow keys
// turn, q quits. Ctrl-C also quits because raw mode swallows SIGINT.
func Translate(ev *tcell.EventKey) (Command, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return TurnUp, true
	case tcell.KeyDown:
		return TurnDown, true
	case tcell.KeyLeft:
		return TurnLeft, true
	case tcell.KeyRight:
		return TurnRight, true
	case tcell.KeyCtrlC:
		return Quit, true
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'w':
			return TurnUp, true
		case 's':
			return TurnDown, true
		case 'a':
			return TurnLeft, true
		case 'd':
			return TurnRight, true
		case 'q':
			return Quit, true
		}
	}
	return 0, false
}
