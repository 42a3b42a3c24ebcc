package snake

import "fmt"

type Cell struct {
	Row int
	Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Board is the fixed grid. It never changes after the game starts.
type Board struct {
	Rows int
	Cols int
}

func (b Board) Area() int {
	return b.Rows * b.Cols
}

func (b Board) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < b.Rows && c.Col >= 0 && c.Col < b.Cols
}

// Next returns the cell one step from c along h, or ErrOutOfBounds when
// that step leaves the board. Both the zero edge and the far edge are
// checked before the coordinate moves.
func (b Board) Next(c Cell, h Heading) (Cell, error) {
	switch h {
	case Up:
		if c.Row == 0 {
			return c, ErrOutOfBounds
		}
		c.Row--
	case Down:
		if c.Row >= b.Rows-1 {
			return c, ErrOutOfBounds
		}
		c.Row++
	case Left:
		if c.Col == 0 {
			return c, ErrOutOfBounds
		}
		c.Col--
	case Right:
		if c.Col >= b.Cols-1 {
			return c, ErrOutOfBounds
		}
		c.Col++
	default:
		return c, fmt.Errorf("unknown heading %d", int(h))
	}
	return c, nil
}
