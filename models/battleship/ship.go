package battleship

import (
	cerr "github.com/saeidalz13/shipkombat/internal/error"
)

type Orientation uint8

const (
	OrientationVertical Orientation = iota
	OrientationHorizontal
)

func (o Orientation) String() string {
	if o == OrientationHorizontal {
		return "horizontal"
	}
	return "vertical"
}

type Ship struct {
	bow           Coordinates
	length        int
	orientation   Orientation
	remainingHits int
	placed        bool
}

func NewShip(bow Coordinates, length int, orientation Orientation) (*Ship, error) {
	if length < 1 {
		return nil, cerr.ErrShipLength(length)
	}

	return &Ship{
		bow:           bow,
		length:        length,
		orientation:   orientation,
		remainingHits: length,
	}, nil
}

func (sh *Ship) Bow() Coordinates {
	return sh.bow
}

func (sh *Ship) Length() int {
	return sh.length
}

func (sh *Ship) Orientation() Orientation {
	return sh.orientation
}

func (sh *Ship) RemainingHits() int {
	return sh.remainingHits
}

func (sh *Ship) IsSunk() bool {
	return sh.remainingHits == 0
}

// Horizontal ships extend along the column axis,
// vertical ones along the row axis.
func (sh *Ship) Cells() []Coordinates {
	cells := make([]Coordinates, 0, sh.length)
	for i := 0; i < sh.length; i++ {
		if sh.orientation == OrientationHorizontal {
			cells = append(cells, NewCoordinates(sh.bow.Row, sh.bow.Col+i))
		} else {
			cells = append(cells, NewCoordinates(sh.bow.Row+i, sh.bow.Col))
		}
	}
	return cells
}

func (sh *Ship) occupies(c Coordinates) bool {
	for _, cell := range sh.Cells() {
		if cell == c {
			return true
		}
	}
	return false
}

func (sh *Ship) gotHit() {
	sh.remainingHits--
}
