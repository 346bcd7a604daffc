package battleship

type PositionState uint8

const (
	PositionStateEmpty PositionState = iota
	PositionStateShip
	PositionStateHit
	PositionStateMiss
)

func (p PositionState) String() string {
	switch p {
	case PositionStateShip:
		return "ship"
	case PositionStateHit:
		return "hit"
	case PositionStateMiss:
		return "miss"
	default:
		return "empty"
	}
}

func (p PositionState) IsShot() bool {
	return p == PositionStateHit || p == PositionStateMiss
}

type Coordinates struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewCoordinates(row, col int) Coordinates {
	return Coordinates{Row: row, Col: col}
}

// Returns the 8 surrounding coordinates, not clipped to any board.
func (c Coordinates) Neighbours() []Coordinates {
	neighbours := make([]Coordinates, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			neighbours = append(neighbours, NewCoordinates(c.Row+dr, c.Col+dc))
		}
	}
	return neighbours
}

type Grid [][]PositionState

// Creates a new grid of gridSize x gridSize
// with every position PositionStateEmpty
func NewGrid(gridSize int) Grid {
	grid := make(Grid, gridSize)

	for i := 0; i < gridSize; i++ {
		grid[i] = make([]PositionState, gridSize)
	}
	return grid
}

func (g Grid) at(c Coordinates) PositionState {
	return g[c.Row][c.Col]
}

func (g Grid) set(c Coordinates, state PositionState) {
	g[c.Row][c.Col] = state
}

func (g Grid) clone() Grid {
	cp := make(Grid, len(g))
	for i := range g {
		cp[i] = make([]PositionState, len(g[i]))
		copy(cp[i], g[i])
	}
	return cp
}

// BoardView is a read-only snapshot of a board for display.
// Unrevealed ship positions appear as PositionStateEmpty.
type BoardView Grid
