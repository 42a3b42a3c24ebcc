// Package config holds the runtime settings of a game and derives the
// board size from the terminal.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/maxwellkuo47/termsnake/internal/snake"
	"golang.org/x/term"
)

var ErrInvalidConfig = errors.New("invalid configuration")

const (
	DefaultLevel = 5
	MinLevel     = 1
	MaxLevel     = 10
	DefaultFPS   = 30
	MaxFPS       = 240

	// used when the terminal size cannot be read
	DefaultRows = 20
	DefaultCols = 40

	// border cells taken from each axis of the terminal
	border = 2

	// fastest tick a level can pick; an explicit --tick may go lower
	MinLevelTick = 30 * time.Millisecond
)

type Config struct {
	Level     int           // speed level, picks Tick when Tick is zero
	Tick      time.Duration // explicit update interval
	FPS       int           // render frames per second
	Rows      int           // board rows, 0 derives from the terminal
	Cols      int           // board columns, 0 derives from the terminal
	Seed      int64         // apple RNG seed, 0 is time based
	LogDir    string        // glog output directory
	Verbosity int           // glog V level
}

func Default() Config {
	return Config{
		Level: DefaultLevel,
		FPS:   DefaultFPS,
	}
}

// Validate checks ranges. The board is checked once it is resolved.
func (c Config) Validate() error {
	if c.Level < MinLevel || c.Level > MaxLevel {
		return fmt.Errorf("%w: level %d not in %d..%d", ErrInvalidConfig, c.Level, MinLevel, MaxLevel)
	}
	if c.Tick < 0 {
		return fmt.Errorf("%w: negative tick %s", ErrInvalidConfig, c.Tick)
	}
	if c.FPS <= 0 || c.FPS > MaxFPS {
		return fmt.Errorf("%w: fps %d not in 1..%d", ErrInvalidConfig, c.FPS, MaxFPS)
	}
	if c.Rows < 0 || c.Cols < 0 {
		return fmt.Errorf("%w: negative board size %dx%d", ErrInvalidConfig, c.Rows, c.Cols)
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("%w: negative verbosity %d", ErrInvalidConfig, c.Verbosity)
	}
	return nil
}

// TickInterval is Tick when set, otherwise the interval for Level.
func (c Config) TickInterval() time.Duration {
	if c.Tick > 0 {
		return c.Tick
	}
	return TickForLevel(c.Level)
}

func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// TickForLevel maps level 1 to 365ms, dropping 40ms per level, and never
// goes below MinLevelTick.
func TickForLevel(level int) time.Duration {
	tick := time.Millisecond * time.Duration(405-level*40)
	if tick < MinLevelTick {
		return MinLevelTick
	}
	return tick
}

// Board resolves the board size: explicit rows and cols win, anything
// left at zero comes from the terminal on fd.
func (c Config) Board(fd int) (snake.Board, error) {
	rows, cols := c.Rows, c.Cols
	if rows == 0 || cols == 0 {
		tr, tc := BoardFromTerminal(fd)
		if rows == 0 {
			rows = tr
		}
		if cols == 0 {
			cols = tc
		}
	}
	b := snake.Board{Rows: rows, Cols: cols}
	if b.Rows < 1 || b.Cols <= snake.InitialLength {
		return b, fmt.Errorf("%w: board %dx%d too small, need at least 1x%d", ErrInvalidConfig, b.Rows, b.Cols, snake.InitialLength+1)
	}
	return b, nil
}

// BoardFromTerminal returns the terminal size minus the border, or the
// 20x40 default when the size cannot be read.
func BoardFromTerminal(fd int) (rows, cols int) {
	width, height, err := term.GetSize(fd)
	if err != nil {
		return DefaultRows, DefaultCols
	}
	return boardFromSize(width, height)
}

func boardFromSize(width, height int) (rows, cols int) {
	if width <= border || height <= border {
		return DefaultRows, DefaultCols
	}
	return height - border, width - border
}
