// Command termsnake plays snake in the terminal.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/maxwellkuo47/termsnake/internal/config"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("loading .env: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newCommand().Run(ctx, os.Args)
	stop()
	if err != nil {
		log.Fatalf("%+v", err)
	}
}

func newCommand() *cli.Command {
	def := config.Default()
	return &cli.Command{
		Name:      "termsnake",
		Usage:     "play snake in the terminal",
		UsageText: "termsnake [options]\n\nw/a/s/d or arrow keys turn, q quits",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "level",
				Value:   def.Level,
				Usage:   "game speed 1 (365ms tick) to 10 (30ms tick)",
				Sources: cli.EnvVars("SNAKE_LEVEL"),
			},
			&cli.DurationFlag{
				Name:    "tick",
				Usage:   "update interval, overrides --level",
				Sources: cli.EnvVars("SNAKE_TICK"),
			},
			&cli.IntFlag{
				Name:    "fps",
				Value:   def.FPS,
				Usage:   "frames drawn per second",
				Sources: cli.EnvVars("SNAKE_FPS"),
			},
			&cli.IntFlag{
				Name:    "rows",
				Usage:   "board rows (0 fits the terminal)",
				Sources: cli.EnvVars("SNAKE_ROWS"),
			},
			&cli.IntFlag{
				Name:    "cols",
				Usage:   "board columns (0 fits the terminal)",
				Sources: cli.EnvVars("SNAKE_COLS"),
			},
			&cli.Int64Flag{
				Name:    "seed",
				Usage:   "apple placement seed (0 uses the clock)",
				Sources: cli.EnvVars("SNAKE_SEED"),
			},
			&cli.StringFlag{
				Name:    "log-dir",
				Usage:   "directory for log files (default is the system temp dir)",
				Sources: cli.EnvVars("SNAKE_LOG_DIR"),
			},
			&cli.IntFlag{
				Name:    "verbosity",
				Usage:   "log verbosity, 1 logs every tick, 2 every key",
				Sources: cli.EnvVars("SNAKE_VERBOSITY"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, configFromCommand(cmd))
		},
	}
}

func configFromCommand(cmd *cli.Command) config.Config {
	return config.Config{
		Level:     cmd.Int("level"),
		Tick:      cmd.Duration("tick"),
		FPS:       cmd.Int("fps"),
		Rows:      cmd.Int("rows"),
		Cols:      cmd.Int("cols"),
		Seed:      cmd.Int64("seed"),
		LogDir:    cmd.String("log-dir"),
		Verbosity: cmd.Int("verbosity"),
	}
}
