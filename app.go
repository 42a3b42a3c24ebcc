package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/maxwellkuo47/termsnake/internal/config"
	"github.com/maxwellkuo47/termsnake/internal/input"
	"github.com/maxwellkuo47/termsnake/internal/loop"
	"github.com/maxwellkuo47/termsnake/internal/render"
	"github.com/maxwellkuo47/termsnake/internal/snake"
)

const gameOverHold = 1500 * time.Millisecond

type app struct {
	conf     config.Config
	runID    string
	seed     int64
	board    snake.Board
	screen   tcell.Screen
	game     *snake.Game
	queue    *input.Queue
	renderer *render.Renderer
	hold     time.Duration
	wg       sync.WaitGroup
}

func run(ctx context.Context, conf config.Config) error {
	if err := conf.Validate(); err != nil {
		return err
	}
	if err := setupLogging(conf); err != nil {
		return err
	}
	defer glog.Flush()

	app, err := gameInit(conf, int(os.Stdout.Fd()), tcell.NewScreen)
	if err != nil {
		return err
	}
	out, err := app.play(ctx)
	if err != nil {
		glog.Errorf("run %s: %v", app.runID, err)
		return err
	}
	glog.Infof("run %s: %s after %d ticks, score %d, length %d", app.runID, describe(out.Reason), out.Ticks, out.Score, out.Length)
	fmt.Printf("%s: score %d, length %d\n", describe(out.Reason), out.Score, out.Length)
	return nil
}

// setupLogging points glog at files so nothing is written over the
// alternate screen.
func setupLogging(conf config.Config) error {
	if conf.LogDir != "" {
		if err := os.MkdirAll(conf.LogDir, 0o755); err != nil {
			return fmt.Errorf("creating log dir: %w", err)
		}
		if err := flag.Set("log_dir", conf.LogDir); err != nil {
			return err
		}
	}
	if err := flag.Set("stderrthreshold", "FATAL"); err != nil {
		return err
	}
	if err := flag.Set("v", strconv.Itoa(conf.Verbosity)); err != nil {
		return err
	}
	return flag.CommandLine.Parse(nil)
}

func gameInit(conf config.Config, fd int, newScreen func() (tcell.Screen, error)) (*app, error) {
	app := &app{
		conf:  conf,
		runID: uuid.NewString(),
		seed:  conf.Seed,
		queue: input.NewQueue(),
		hold:  gameOverHold,
	}
	if app.seed == 0 {
		app.seed = time.Now().UnixNano()
	}

	var err error
	app.board, err = conf.Board(fd)
	if err != nil {
		return nil, err
	}
	app.game, err = snake.New(app.board, rand.New(rand.NewSource(app.seed)))
	if err != nil {
		return nil, fmt.Errorf("starting game: %w", err)
	}

	app.screen, err = newScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err = app.screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	app.renderer = render.New(app.screen, app.board)

	glog.Infof("run %s: board %dx%d, tick %s, %d fps, seed %d",
		app.runID, app.board.Rows, app.board.Cols, conf.TickInterval(), conf.FPS, app.seed)
	return app, nil
}

// play runs the game until it ends and restores the terminal, also when
// the loop panics.
func (app *app) play(ctx context.Context) (loop.Outcome, error) {
	defer func() {
		maybePanic := recover()
		app.screen.Fini()
		if maybePanic != nil {
			panic(maybePanic)
		}
		app.wg.Wait()
	}()

	app.renderer.DrawBoard()

	app.wg.Add(1)
	go func() {
		defer app.wg.Done()
		input.NewSource(app.screen, app.queue).Listen()
	}()

	driver := loop.New(app.game, app.queue, app.renderer, app.conf.TickInterval(), app.conf.FrameInterval())
	out, err := driver.Run(ctx)
	if err != nil {
		return out, err
	}

	app.finish(ctx, out)
	return out, nil
}

// finish shows the banner for a game over or a quit. Only a game over is
// held on screen; the player asked to leave on a quit.
func (app *app) finish(ctx context.Context, out loop.Outcome) {
	gameOver := snake.IsGameOver(out.Reason)
	if !gameOver && !errors.Is(out.Reason, loop.ErrQuit) {
		return
	}
	app.renderer.GameOver(describe(out.Reason), out.Score)
	if !gameOver {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(app.hold):
	}
}

func describe(reason error) string {
	switch {
	case errors.Is(reason, snake.ErrOutOfBounds):
		return "out of bounds"
	case errors.Is(reason, snake.ErrSnakeBite):
		return "snake bite"
	case errors.Is(reason, snake.ErrBoardFull):
		return "board full"
	case errors.Is(reason, loop.ErrQuit):
		return "quit"
	case errors.Is(reason, context.Canceled):
		return "interrupted"
	case reason == nil:
		return "stopped"
	}
	return reason.Error()
}
