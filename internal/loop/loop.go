// Package loop drives a game: updates on a fixed tick, renders on its
// own cadence, both from one goroutine that owns the game state.
package loop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang/glog"
	"github.com/maxwellkuo47/termsnake/internal/input"
	"github.com/maxwellkuo47/termsnake/internal/snake"
)

// ErrQuit ends the loop when the player asks to leave.
var ErrQuit = errors.New("quit")

// Queue hands over the commands received since the previous call
// without waiting.
type Queue interface {
	Drain() []input.Command
}

type Painter interface {
	Draw(prev, cur snake.Frame)
}

// Outcome describes how a run ended. Reason is ErrQuit, a snake game
// over error, or the context error.
type Outcome struct {
	Reason error
	Score  int
	Length int
	Ticks  int
}

type Driver struct {
	game    *snake.Game
	queue   Queue
	painter Painter
	tick    time.Duration
	frame   time.Duration
	ticks   int
}

func New(game *snake.Game, queue Queue, painter Painter, tick, frame time.Duration) *Driver {
	return &Driver{
		game:    game,
		queue:   queue,
		painter: painter,
		tick:    tick,
		frame:   frame,
	}
}

// Run blocks until the game ends, the player quits or ctx is done. The
// error is only set for faults that are not a normal end of the game.
func (d *Driver) Run(ctx context.Context) (Outcome, error) {
	tick := time.NewTicker(d.tick)
	defer tick.Stop()
	frame := time.NewTicker(d.frame)
	defer frame.Stop()

	d.render()
	for {
		select {
		case <-ctx.Done():
			return d.outcome(ctx.Err()), nil
		case <-frame.C:
			d.render()
		case <-tick.C:
			reason, err := d.update()
			if err != nil {
				return d.outcome(nil), err
			}
			if reason != nil {
				d.render()
				return d.outcome(reason), nil
			}
		}
	}
}

// update drains the input queue and advances the game once. A Quit
// anywhere in the drained commands stops before the snake moves.
func (d *Driver) update() (reason error, err error) {
	var turns []snake.Heading
	for _, cmd := range d.queue.Drain() {
		if cmd == input.Quit {
			return ErrQuit, nil
		}
		if h, ok := cmd.Heading(); ok {
			turns = append(turns, h)
		}
	}

	step, err := d.game.Tick(turns)
	switch {
	case err == nil:
		d.ticks++
		glog.V(1).Infof("tick %d: turns=%v move=%s heading=%s head=%s", d.ticks, turns, step.Move, step.Heading, d.game.Head())
		return nil, nil
	case snake.IsGameOver(err):
		glog.V(1).Infof("tick %d: %v moving %s", d.ticks+1, err, step.Move)
		return err, nil
	default:
		return nil, fmt.Errorf("tick %d: %w", d.ticks+1, err)
	}
}

func (d *Driver) render() {
	d.painter.Draw(d.game.Previous(), d.game.Frame())
	d.game.Rendered()
}

func (d *Driver) outcome(reason error) Outcome {
	return Outcome{
		Reason: reason,
		Score:  d.game.Score(),
		Length: d.game.Len(),
		Ticks:  d.ticks,
	}
}
