package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/maxwellkuo47/termsnake/internal/config"
	"github.com/maxwellkuo47/termsnake/internal/loop"
	"github.com/maxwellkuo47/termsnake/internal/snake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func parseArgs(t *testing.T, args ...string) config.Config {
	t.Helper()
	var got config.Config
	cmd := newCommand()
	cmd.Action = func(_ context.Context, cmd *cli.Command) error {
		got = configFromCommand(cmd)
		return nil
	}
	require.NoError(t, cmd.Run(context.Background(), append([]string{"termsnake"}, args...)))
	return got
}

func TestCommandFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		assert.Equal(t, config.Default(), parseArgs(t))
	})

	t.Run("flags", func(t *testing.T) {
		got := parseArgs(t, "--level", "7", "--tick", "150ms", "--rows", "12", "--cols", "30", "--seed", "99", "--verbosity", "2")
		assert.Equal(t, 7, got.Level)
		assert.Equal(t, 150*time.Millisecond, got.Tick)
		assert.Equal(t, 12, got.Rows)
		assert.Equal(t, 30, got.Cols)
		assert.Equal(t, int64(99), got.Seed)
		assert.Equal(t, 2, got.Verbosity)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("SNAKE_FPS", "60")
		t.Setenv("SNAKE_LOG_DIR", "/tmp/termsnake")
		got := parseArgs(t)
		assert.Equal(t, 60, got.FPS)
		assert.Equal(t, "/tmp/termsnake", got.LogDir)
	})

	t.Run("flag beats environment", func(t *testing.T) {
		t.Setenv("SNAKE_LEVEL", "3")
		assert.Equal(t, 9, parseArgs(t, "--level", "9").Level)
	})
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "out of bounds", describe(snake.ErrOutOfBounds))
	assert.Equal(t, "snake bite", describe(snake.ErrSnakeBite))
	assert.Equal(t, "board full", describe(snake.ErrBoardFull))
	assert.Equal(t, "quit", describe(loop.ErrQuit))
	assert.Equal(t, "interrupted", describe(context.Canceled))
}

func testApp(t *testing.T, conf config.Config) (*app, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	a, err := gameInit(conf, -1, func() (tcell.Screen, error) { return s, nil })
	require.NoError(t, err)
	a.hold = 0
	return a, s
}

func TestPlayQuit(t *testing.T) {
	conf := config.Default()
	conf.Rows, conf.Cols = 10, 20
	conf.Tick = 5 * time.Millisecond
	conf.Seed = 1
	a, s := testApp(t, conf)
	assert.Equal(t, snake.Board{Rows: 10, Cols: 20}, a.board)

	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	out, err := a.play(context.Background())
	require.NoError(t, err)
	assert.ErrorIs(t, out.Reason, loop.ErrQuit)
}

func TestPlayGameOver(t *testing.T) {
	conf := config.Default()
	conf.Rows, conf.Cols = 3, 8
	conf.Tick = 2 * time.Millisecond
	conf.Seed = 1
	a, _ := testApp(t, conf)

	out, err := a.play(context.Background())
	require.NoError(t, err)
	assert.ErrorIs(t, out.Reason, snake.ErrOutOfBounds)
	assert.Equal(t, 3, out.Ticks)
}

func TestGameInitRejectsSmallBoard(t *testing.T) {
	conf := config.Default()
	conf.Rows, conf.Cols = 4, 5
	_, err := gameInit(conf, -1, func() (tcell.Screen, error) {
		t.Fatal("screen created for an invalid board")
		return nil, nil
	})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func bannerAt(s tcell.Screen, board snake.Board, msg string) string {
	x := 1 + (board.Cols-len(msg))/2
	got := make([]rune, 0, len(msg))
	for i := range msg {
		ch, _, _, _ := s.GetContent(x+i, 1+board.Rows/2)
		got = append(got, ch)
	}
	return string(got)
}

func TestFinishBanner(t *testing.T) {
	conf := config.Default()
	conf.Rows, conf.Cols = 9, 40
	conf.Seed = 1

	tests := []struct {
		name   string
		reason error
		banner string
	}{
		{"quit", loop.ErrQuit, " quit - score 0 "},
		{"snake bite", snake.ErrSnakeBite, " snake bite - score 0 "},
		{"board full", snake.ErrBoardFull, " board full - score 0 "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, s := testApp(t, conf)
			t.Cleanup(s.Fini)
			a.renderer.DrawBoard()
			a.finish(context.Background(), loop.Outcome{Reason: tt.reason})
			assert.Equal(t, tt.banner, bannerAt(s, a.board, tt.banner))
		})
	}

	t.Run("interrupt shows nothing", func(t *testing.T) {
		a, s := testApp(t, conf)
		t.Cleanup(s.Fini)
		a.renderer.DrawBoard()
		a.finish(context.Background(), loop.Outcome{Reason: context.Canceled})
		msg := " interrupted - score 0 "
		assert.Equal(t, strings.Repeat(" ", len(msg)), bannerAt(s, a.board, msg))
	})
}
