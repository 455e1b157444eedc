package rules

// MaxNeighbors is the size of the Moore neighborhood
const MaxNeighbors = 8

// State is the state of a single cell. The zero value is Dead.
type State uint8

const (
	Dead State = iota
	Alive
)

const (
	aliveGlyph = 'x'
	deadGlyph  = ' '
)

// Rune returns the display glyph for the state
func (s State) Rune() rune {
	if s == Alive {
		return aliveGlyph
	}
	return deadGlyph
}

func (s State) String() string {
	return string(s.Rune())
}

/*
NextState applies Conway's Game of Life rules to determine the next state of a cell.

	<= 1 neighbors: dies (underpopulation)
	>= 4 neighbors: dies (overpopulation)
	   3 neighbors: lives (survival or reproduction)
	   2 neighbors: keeps its current state

Counts above MaxNeighbors cannot occur on a Moore neighborhood.
*/
func NextState(current State, liveNeighbors uint) State {
	switch {
	case liveNeighbors <= 1:
		return Dead
	case liveNeighbors >= 4:
		return Dead
	case liveNeighbors == 3:
		return Alive
	}
	return current
}
