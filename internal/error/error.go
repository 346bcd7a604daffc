package error

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds       = errors.New("coordinates out of board bound")
	ErrTooClose          = errors.New("ships must be at least one cell apart")
	ErrAlreadyShot       = errors.New("position already shot")
	ErrMalformedInput    = errors.New("malformed input")
	ErrInvalidShipLength = errors.New("ship length must be at least 1")
	ErrShipAlreadyPlaced = errors.New("ship is already placed on a board")
	ErrInvalidFleet      = errors.New("fleet cannot be placed on this board")
	ErrInvalidBoardSize  = errors.New("board size must be positive")
	ErrInvalidStage      = errors.New("stage must be either dev or prod")
	ErrGameNotSetUp      = errors.New("game boards are not set up")
	ErrMatchNotFinished  = errors.New("match has no winner yet")
)

// PlacementError is returned when a ship cannot be added to a board.
// It unwraps to either ErrOutOfBounds or ErrTooClose.
type PlacementError struct {
	Row    int
	Col    int
	Length int
	Err    error
}

func (p *PlacementError) Error() string {
	return fmt.Sprintf("cannot place ship of length %d at row: %d col: %d: %v", p.Length, p.Row+1, p.Col+1, p.Err)
}

func (p *PlacementError) Unwrap() error {
	return p.Err
}

func ErrShipOutOfBounds(row, col, length int) error {
	return &PlacementError{Row: row, Col: col, Length: length, Err: ErrOutOfBounds}
}

func ErrShipTooClose(row, col, length int) error {
	return &PlacementError{Row: row, Col: col, Length: length, Err: ErrTooClose}
}

func ErrRowOrColOutOfGridBound(row, col int) error {
	return fmt.Errorf("%w\trow: %d\tcol: %d", ErrOutOfBounds, row+1, col+1)
}

func ErrPositionAlreadyShot(row, col int) error {
	return fmt.Errorf("%w\trow: %d\tcol: %d", ErrAlreadyShot, row+1, col+1)
}

func ErrInputTokenCount(expected, got int) error {
	return fmt.Errorf("%w: expected %d numbers, got %d", ErrMalformedInput, expected, got)
}

func ErrInputNotInt(token string) error {
	return fmt.Errorf("%w: not an integer: %q", ErrMalformedInput, token)
}

func ErrInputTooLong(limit int) error {
	return fmt.Errorf("%w: line longer than %d characters", ErrMalformedInput, limit)
}

func ErrInputOrientation(token string) error {
	return fmt.Errorf("%w: orientation must be 0 or 1, got %q", ErrMalformedInput, token)
}

func ErrShipLength(length int) error {
	return fmt.Errorf("%w, got %d", ErrInvalidShipLength, length)
}

func ErrFleet(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidFleet, reason)
}

func ErrBoardSize(size int) error {
	return fmt.Errorf("%w, got %d", ErrInvalidBoardSize, size)
}

func ErrStage(stage string) error {
	return fmt.Errorf("%w, got %q", ErrInvalidStage, stage)
}

// IsRecoverable reports whether err is one the turn loop retries on.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrOutOfBounds) ||
		errors.Is(err, ErrTooClose) ||
		errors.Is(err, ErrAlreadyShot) ||
		errors.Is(err, ErrMalformedInput)
}
