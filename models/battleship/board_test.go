package battleship

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerr "github.com/saeidalz13/shipkombat/internal/error"
)

func mustShip(t *testing.T, row, col, length int, orientation Orientation) *Ship {
	t.Helper()
	ship, err := NewShip(NewCoordinates(row, col), length, orientation)
	require.NoError(t, err)
	return ship
}

func mustBoard(t *testing.T, size int) *Board {
	t.Helper()
	board, err := NewBoard(size)
	require.NoError(t, err)
	return board
}

func chebyshev(a, b Coordinates) int {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return max(dr, dc)
}

func assertSeparated(t *testing.T, board *Board) {
	t.Helper()
	ships := board.Ships()
	for i := range ships {
		for j := i + 1; j < len(ships); j++ {
			for _, a := range ships[i].Cells() {
				for _, b := range ships[j].Cells() {
					assert.GreaterOrEqual(t, chebyshev(a, b), 2, "ships %d and %d touch at %v/%v", i, j, a, b)
				}
			}
		}
	}
}

func TestNewBoardInvalidSize(t *testing.T) {
	_, err := NewBoard(0)
	assert.ErrorIs(t, err, cerr.ErrInvalidBoardSize)
}

func TestAddShipTooClose(t *testing.T) {
	board := mustBoard(t, DefaultBoardSize)
	require.NoError(t, board.AddShip(mustShip(t, 0, 0, 3, OrientationHorizontal)))

	tests := []struct {
		name string
		ship *Ship
	}{
		{name: "diagonal neighbour", ship: mustShip(t, 1, 1, 1, OrientationHorizontal)},
		{name: "orthogonal neighbour", ship: mustShip(t, 0, 3, 1, OrientationHorizontal)},
		{name: "overlapping", ship: mustShip(t, 0, 1, 2, OrientationVertical)},
		{name: "corner diagonal", ship: mustShip(t, 1, 3, 2, OrientationVertical)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := board.AddShip(test.ship)
			require.ErrorIs(t, err, cerr.ErrTooClose)

			var placementErr *cerr.PlacementError
			require.True(t, errors.As(err, &placementErr))
			assert.Equal(t, test.ship.Length(), placementErr.Length)
			assert.Len(t, board.Ships(), 1)
		})
	}

	require.NoError(t, board.AddShip(mustShip(t, 2, 1, 1, OrientationHorizontal)))
	assert.Len(t, board.Ships(), 2)
	assertSeparated(t, board)
}

func TestAddShipOutOfBounds(t *testing.T) {
	tests := []struct {
		name string
		ship *Ship
	}{
		{name: "horizontal past last column", ship: mustShip(t, 0, 4, 3, OrientationHorizontal)},
		{name: "vertical past last row", ship: mustShip(t, 5, 0, 2, OrientationVertical)},
		{name: "negative bow", ship: mustShip(t, -1, 2, 1, OrientationHorizontal)},
		{name: "bow outside", ship: mustShip(t, 2, 6, 1, OrientationVertical)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			board := mustBoard(t, DefaultBoardSize)
			require.NoError(t, board.AddShip(mustShip(t, 3, 3, 1, OrientationHorizontal)))
			before := board.Render(true)

			err := board.AddShip(test.ship)
			assert.ErrorIs(t, err, cerr.ErrOutOfBounds)
			assert.NotErrorIs(t, err, cerr.ErrTooClose)
			assert.Len(t, board.Ships(), 1)
			assert.Equal(t, before, board.Render(true))
		})
	}
}

func TestAddShipTwice(t *testing.T) {
	ship := mustShip(t, 0, 0, 2, OrientationHorizontal)
	require.NoError(t, mustBoard(t, DefaultBoardSize).AddShip(ship))

	err := mustBoard(t, DefaultBoardSize).AddShip(ship)
	assert.ErrorIs(t, err, cerr.ErrShipAlreadyPlaced)
}

func TestAddShipMarksCells(t *testing.T) {
	board := mustBoard(t, DefaultBoardSize)
	ship := mustShip(t, 2, 5, 3, OrientationVertical)
	require.NoError(t, board.AddShip(ship))

	for _, cell := range ship.Cells() {
		assert.Equal(t, PositionStateShip, board.State(cell))
	}
	assert.Equal(t, PositionStateEmpty, board.State(NewCoordinates(1, 5)))
	assert.ElementsMatch(t, ship.Cells(), board.OccupiedCells())
}

func TestShotSinksShip(t *testing.T) {
	board := mustBoard(t, DefaultBoardSize)
	require.NoError(t, board.AddShip(mustShip(t, 0, 0, 3, OrientationHorizontal)))
	require.NoError(t, board.AddShip(mustShip(t, 2, 1, 1, OrientationHorizontal)))

	tests := []struct {
		name     string
		at       Coordinates
		expected ShotResult
	}{
		{name: "bow", at: NewCoordinates(0, 0), expected: ShotResultHit},
		{name: "middle", at: NewCoordinates(0, 1), expected: ShotResultHit},
		{name: "stern", at: NewCoordinates(0, 2), expected: ShotResultSunk},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result, err := board.Shot(test.at)
			require.NoError(t, err)
			assert.Equal(t, test.expected, result)
			assert.Equal(t, PositionStateHit, board.State(test.at))
		})
	}

	ships := board.Ships()
	assert.Equal(t, 0, ships[0].RemainingHits())
	assert.Equal(t, 1, ships[1].RemainingHits())
	assert.False(t, board.AllShipsSunk())
	assert.Equal(t, 1, board.ShipsRemaining())

	_, err := board.Shot(NewCoordinates(0, 0))
	assert.ErrorIs(t, err, cerr.ErrAlreadyShot)

	result, err := board.Shot(NewCoordinates(2, 1))
	require.NoError(t, err)
	assert.Equal(t, ShotResultSunk, result)
	assert.True(t, board.AllShipsSunk())
}

func TestShotMiss(t *testing.T) {
	board := mustBoard(t, DefaultBoardSize)
	at := NewCoordinates(4, 4)

	result, err := board.Shot(at)
	require.NoError(t, err)
	assert.Equal(t, ShotResultMiss, result)
	assert.Equal(t, PositionStateMiss, board.State(at))

	_, err = board.Shot(at)
	assert.ErrorIs(t, err, cerr.ErrAlreadyShot)
	assert.Equal(t, PositionStateMiss, board.State(at))
}

func TestShotOutOfBounds(t *testing.T) {
	board := mustBoard(t, DefaultBoardSize)
	require.NoError(t, board.AddShip(mustShip(t, 0, 0, 3, OrientationHorizontal)))

	for _, at := range []Coordinates{
		NewCoordinates(-1, 0),
		NewCoordinates(0, -1),
		NewCoordinates(6, 0),
		NewCoordinates(0, 6),
		NewCoordinates(100, 100),
	} {
		_, err := board.Shot(at)
		assert.ErrorIs(t, err, cerr.ErrOutOfBounds, "shot at %v", at)
	}
	assert.Equal(t, 3, board.Ships()[0].RemainingHits())
}

func TestAllShipsSunk(t *testing.T) {
	board := mustBoard(t, DefaultBoardSize)
	assert.True(t, board.AllShipsSunk(), "a board without ships has nothing afloat")

	require.NoError(t, board.AddShip(mustShip(t, 1, 1, 2, OrientationVertical)))
	assert.False(t, board.AllShipsSunk())

	_, err := board.Shot(NewCoordinates(1, 1))
	require.NoError(t, err)
	assert.False(t, board.AllShipsSunk())

	_, err = board.Shot(NewCoordinates(2, 1))
	require.NoError(t, err)
	assert.True(t, board.AllShipsSunk())
}

func TestStateOutOfBounds(t *testing.T) {
	board := mustBoard(t, DefaultBoardSize)
	require.NoError(t, board.AddShip(mustShip(t, 0, 0, 1, OrientationHorizontal)))

	for _, at := range []Coordinates{{-1, 0}, {0, -1}, {6, 0}, {0, 6}} {
		assert.Equal(t, PositionStateEmpty, board.State(at), "state at %v", at)
	}
	assert.Equal(t, PositionStateShip, board.State(NewCoordinates(0, 0)))
}

func TestRender(t *testing.T) {
	board := mustBoard(t, 3)
	require.NoError(t, board.AddShip(mustShip(t, 0, 0, 2, OrientationHorizontal)))
	_, _ = board.Shot(NewCoordinates(0, 0))
	_, _ = board.Shot(NewCoordinates(2, 2))

	revealed := BoardView{
		{PositionStateHit, PositionStateShip, PositionStateEmpty},
		{PositionStateEmpty, PositionStateEmpty, PositionStateEmpty},
		{PositionStateEmpty, PositionStateEmpty, PositionStateMiss},
	}
	hidden := BoardView{
		{PositionStateHit, PositionStateEmpty, PositionStateEmpty},
		{PositionStateEmpty, PositionStateEmpty, PositionStateEmpty},
		{PositionStateEmpty, PositionStateEmpty, PositionStateMiss},
	}
	assert.Equal(t, revealed, board.Render(true))
	assert.Equal(t, hidden, board.Render(false))

	view := board.Render(true)
	view[1][1] = PositionStateShip
	assert.Equal(t, PositionStateEmpty, board.State(NewCoordinates(1, 1)), "render must not share the grid")
}
