package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/maxwellkuo47/termsnake/internal/snake"
	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Command
		ok   bool
	}{
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), TurnUp, true},
		{"W", tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModShift), TurnUp, true},
		{"s", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), TurnDown, true},
		{"a", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), TurnLeft, true},
		{"d", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), TurnRight, true},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), Quit, true},
		{"up arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), TurnUp, true},
		{"down arrow", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), TurnDown, true},
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), TurnLeft, true},
		{"right arrow", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), TurnRight, true},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), Quit, true},
		{"x", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), 0, false},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), 0, false},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Translate(tt.ev)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommandHeading(t *testing.T) {
	for cmd, want := range map[Command]snake.Heading{
		TurnUp:    snake.Up,
		TurnDown:  snake.Down,
		TurnLeft:  snake.Left,
		TurnRight: snake.Right,
	} {
		h, ok := cmd.Heading()
		assert.True(t, ok, cmd.String())
		assert.Equal(t, want, h, cmd.String())
	}

	_, ok := Quit.Heading()
	assert.False(t, ok)
}
