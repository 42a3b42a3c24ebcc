package snake

// Step is the effective action of one tick: the snake advances one cell
// along Move and then keeps Heading for the following ticks.
type Step struct {
	Move    Heading
	Heading Heading
}

// Resolve reduces the turns queued since the previous tick to a single
// Step. Only the last two turns matter: when both chain legally from the
// current heading the snake moves along the first and faces the second
// without a second advance. Anything illegal is dropped and the snake
// keeps going straight.
func Resolve(current Heading, turns []Heading) Step {
	straight := Step{Move: current, Heading: current}

	switch n := len(turns); n {
	case 0:
		return straight
	case 1:
		if IsValidTurn(current, turns[0]) {
			return Step{Move: turns[0], Heading: turns[0]}
		}
		return straight
	default:
		a, b := turns[n-2], turns[n-1]
		if IsValidTurn(current, a) && IsValidTurn(a, b) {
			return Step{Move: a, Heading: b}
		}
		return straight
	}
}
