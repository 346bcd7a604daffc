package battleship

import (
	cerr "github.com/saeidalz13/shipkombat/internal/error"
)

type ShotResult uint8

const (
	ShotResultMiss ShotResult = iota
	ShotResultHit
	ShotResultSunk
)

func (r ShotResult) String() string {
	switch r {
	case ShotResultHit:
		return "hit"
	case ShotResultSunk:
		return "sunk"
	default:
		return "miss"
	}
}

type Board struct {
	size     int
	grid     Grid
	ships    []*Ship
	reserved map[Coordinates]struct{}
}

func NewBoard(size int) (*Board, error) {
	if size < 1 {
		return nil, cerr.ErrBoardSize(size)
	}

	return &Board{
		size:     size,
		grid:     NewGrid(size),
		ships:    make([]*Ship, 0, len(CanonicalFleet)),
		reserved: make(map[Coordinates]struct{}, size*size),
	}, nil
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) InBounds(c Coordinates) bool {
	return c.Row >= 0 && c.Row < b.size && c.Col >= 0 && c.Col < b.size
}

// Coordinates off the board read as PositionStateEmpty.
func (b *Board) State(c Coordinates) PositionState {
	if !b.InBounds(c) {
		return PositionStateEmpty
	}
	return b.grid.at(c)
}

// Returns the placed ships in placement order.
func (b *Board) Ships() []*Ship {
	ships := make([]*Ship, len(b.ships))
	copy(ships, b.ships)
	return ships
}

func (b *Board) OccupiedCells() []Coordinates {
	cells := make([]Coordinates, 0, len(b.ships)*2)
	for _, ship := range b.ships {
		cells = append(cells, ship.Cells()...)
	}
	return cells
}

// AddShip places ship on the board. Either every cell of the
// ship is placed or the board is left untouched.
func (b *Board) AddShip(ship *Ship) error {
	if ship.placed {
		return cerr.ErrShipAlreadyPlaced
	}

	cells := ship.Cells()
	for _, cell := range cells {
		if !b.InBounds(cell) {
			return cerr.ErrShipOutOfBounds(ship.bow.Row, ship.bow.Col, ship.length)
		}
	}
	for _, cell := range cells {
		if _, prs := b.reserved[cell]; prs {
			return cerr.ErrShipTooClose(ship.bow.Row, ship.bow.Col, ship.length)
		}
	}

	for _, cell := range cells {
		b.grid.set(cell, PositionStateShip)
		b.reserve(cell)
		for _, n := range cell.Neighbours() {
			if b.InBounds(n) {
				b.reserve(n)
			}
		}
	}
	ship.placed = true
	b.ships = append(b.ships, ship)
	return nil
}

func (b *Board) reserve(c Coordinates) {
	b.reserved[c] = struct{}{}
}

func (b *Board) Shot(c Coordinates) (ShotResult, error) {
	if !b.InBounds(c) {
		return ShotResultMiss, cerr.ErrRowOrColOutOfGridBound(c.Row, c.Col)
	}

	state := b.grid.at(c)
	if state.IsShot() {
		return ShotResultMiss, cerr.ErrPositionAlreadyShot(c.Row, c.Col)
	}

	if state == PositionStateEmpty {
		b.grid.set(c, PositionStateMiss)
		return ShotResultMiss, nil
	}

	b.grid.set(c, PositionStateHit)
	// Separation guarantees a single owner
	for _, ship := range b.ships {
		if !ship.occupies(c) {
			continue
		}
		ship.gotHit()
		if ship.IsSunk() {
			return ShotResultSunk, nil
		}
		break
	}
	return ShotResultHit, nil
}

// A board without ships counts as sunk.
func (b *Board) AllShipsSunk() bool {
	for _, ship := range b.ships {
		if !ship.IsSunk() {
			return false
		}
	}
	return true
}

func (b *Board) ShipsRemaining() int {
	remaining := 0
	for _, ship := range b.ships {
		if !ship.IsSunk() {
			remaining++
		}
	}
	return remaining
}

func (b *Board) Render(revealShips bool) BoardView {
	view := b.grid.clone()
	if revealShips {
		return BoardView(view)
	}

	for _, row := range view {
		for i, state := range row {
			if state == PositionStateShip {
				row[i] = PositionStateEmpty
			}
		}
	}
	return BoardView(view)
}
