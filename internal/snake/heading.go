package snake

// Heading is a direction of motion. Opposite headings are negatives of
// each other, so a reversal is detected with a single comparison.
type Heading int

const (
	Right Heading = iota - 2
	Down
	_
	Up
	Left
)

// Headings lists every valid heading.
var Headings = []Heading{Up, Down, Left, Right}

func (h Heading) Opposite() Heading {
	return -h
}

func (h Heading) Valid() bool {
	switch h {
	case Up, Down, Left, Right:
		return true
	}
	return false
}

func (h Heading) String() string {
	switch h {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// IsValidTurn reports whether the snake may switch from current to
// proposed. Only an exact reversal is rejected; keeping the same heading
// is a valid turn.
func IsValidTurn(current, proposed Heading) bool {
	return proposed.Valid() && proposed != current.Opposite()
}
