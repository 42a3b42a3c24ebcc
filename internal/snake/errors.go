package snake

import "errors"

// Game over conditions. They end the run but are not faults.
var (
	ErrOutOfBounds = errors.New("out of bounds")
	ErrSnakeBite   = errors.New("snake bite")
	ErrBoardFull   = errors.New("board full")
)

// IsGameOver reports whether err ends the game normally.
func IsGameOver(err error) bool {
	return errors.Is(err, ErrOutOfBounds) ||
		errors.Is(err, ErrSnakeBite) ||
		errors.Is(err, ErrBoardFull)
}
