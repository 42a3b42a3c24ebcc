package snake

import (
	"fmt"
	"math/rand"
	"slices"
)

const (
	InitialLength  = 5
	PointsPerApple = 10

	// independent row/col draws tried before falling back to a scan of
	// the free cells
	appleDraws = 8
)

// NoApple is the apple position once the board is full. It lies off the
// board so nothing draws it.
var NoApple = Cell{Row: -1, Col: -1}

// Frame is a copy of everything the renderer needs from one tick.
type Frame struct {
	Snake []Cell
	Apple Cell
	Score int
}

// Game owns the board, the snake and the apple. It is not safe for
// concurrent use; a single loop goroutine drives it.
type Game struct {
	board   Board
	body    []Cell // tail first, head last
	apple   Cell
	heading Heading
	score   int
	random  *rand.Rand
	prev    Frame
}

// New starts a game with a five cell snake along the top row facing
// right and an apple on a free cell.
func New(board Board, random *rand.Rand) (*Game, error) {
	if board.Rows < 1 || board.Cols < InitialLength {
		return nil, fmt.Errorf("board %dx%d cannot hold the initial snake", board.Rows, board.Cols)
	}
	body := make([]Cell, InitialLength)
	for i := range body {
		body[i] = Cell{Row: 0, Col: i}
	}
	return newGame(board, body, Right, random)
}

func newGame(board Board, body []Cell, heading Heading, random *rand.Rand) (*Game, error) {
	g := &Game{
		board:   board,
		body:    body,
		heading: heading,
		random:  random,
	}
	if err := g.newApple(); err != nil {
		return nil, fmt.Errorf("placing first apple: %w", err)
	}
	g.prev = g.Frame()
	return g, nil
}

func (g *Game) Board() Board { return g.board }
func (g *Game) Heading() Heading { return g.heading }
func (g *Game) Apple() Cell { return g.apple }
func (g *Game) Score() int { return g.score }
func (g *Game) Len() int { return len(g.body) }
func (g *Game) Head() Cell { return g.body[len(g.body)-1] }

// Body returns a copy of the snake, tail first.
func (g *Game) Body() []Cell {
	return append([]Cell(nil), g.body...)
}

// Tick resolves the queued turns, advances the snake once and applies
// the resulting heading.
func (g *Game) Tick(turns []Heading) (Step, error) {
	step := Resolve(g.heading, turns)
	if err := g.Advance(step.Move); err != nil {
		return step, err
	}
	g.heading = step.Heading
	return step, nil
}

// Advance moves the head one cell along h. Eating the apple grows the
// snake and places a new apple; otherwise the tail follows the head.
func (g *Game) Advance(h Heading) error {
	next, err := g.board.Next(g.Head(), h)
	if err != nil {
		return err
	}
	ate, err := g.enter(next)
	if err != nil {
		return err
	}
	if !ate {
		g.body = append(g.body[1:], next)
		return nil
	}
	g.body = append(g.body, next)
	g.score += PointsPerApple
	return g.newApple()
}

// enter decides what happens when the head moves into c. Every body
// cell counts, the tail included, since the tail only leaves after the
// head has moved.
func (g *Game) enter(c Cell) (ate bool, err error) {
	if c == g.apple {
		return true, nil
	}
	if slices.Contains(g.body, c) {
		return false, ErrSnakeBite
	}
	return false, nil
}

// newApple places the apple uniformly at random on a cell the snake does
// not occupy.
func (g *Game) newApple() error {
	free := g.board.Area() - len(g.body)
	if free <= 0 {
		g.apple = NoApple
		return ErrBoardFull
	}
	occupied := make(map[Cell]struct{}, len(g.body))
	for _, c := range g.body {
		occupied[c] = struct{}{}
	}

	for i := 0; i < appleDraws; i++ {
		c := Cell{
			Row: g.random.Intn(g.board.Rows),
			Col: g.random.Intn(g.board.Cols),
		}
		if _, ok := occupied[c]; !ok {
			g.apple = c
			return nil
		}
	}

	n := g.random.Intn(free)
	for row := 0; row < g.board.Rows; row++ {
		for col := 0; col < g.board.Cols; col++ {
			c := Cell{Row: row, Col: col}
			if _, ok := occupied[c]; ok {
				continue
			}
			if n == 0 {
				g.apple = c
				return nil
			}
			n--
		}
	}
	g.apple = NoApple
	return ErrBoardFull
}

// Frame snapshots the current state.
func (g *Game) Frame() Frame {
	return Frame{
		Snake: g.Body(),
		Apple: g.apple,
		Score: g.score,
	}
}

// Previous returns the frame recorded by the last call to Rendered.
func (g *Game) Previous() Frame {
	return g.prev
}

// Rendered records the current state as drawn.
func (g *Game) Rendered() {
	g.prev = g.Frame()
}
