package api

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	cerr "github.com/saeidalz13/shipkombat/internal/error"
	mb "github.com/saeidalz13/shipkombat/models/battleship"
)

const (
	OrientationFlagHorizontal string = "1"
	OrientationFlagVertical   string = "0"

	// Longer lines are drained and rejected as malformed
	maxLineLength int = 1024
)

// Console reads the user's moves line by line and prints
// the match as text. Coordinates are 1-indexed on both ends.
type Console struct {
	reader *bufio.Reader
	out    io.Writer
}

var (
	_ mb.InteractiveInput = (*Console)(nil)
	_ mb.Display          = (*Console)(nil)
)

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

func (c *Console) Greet() {
	c.println("Welcome to ShipKombat!")
	c.println("Place your ships first: bow coordinates, then orientation.")
	c.println("Orientation: 1 - horizontal, 0 - vertical.")
	c.println("")
}

func (c *Console) ReadPlacement(shipLength int) (mb.Coordinates, mb.Orientation, error) {
	c.printf("\nPlace a ship of length %d.\n", shipLength)
	line, err := c.prompt("Bow coordinates (e.g. 1 1): ")
	if err != nil {
		return mb.Coordinates{}, 0, err
	}
	bow, err := ParseCoordinates(line)
	if err != nil {
		return mb.Coordinates{}, 0, err
	}

	line, err = c.prompt("Orientation (1 horizontal, 0 vertical): ")
	if err != nil {
		return mb.Coordinates{}, 0, err
	}
	orientation, err := ParseOrientation(line)
	if err != nil {
		return mb.Coordinates{}, 0, err
	}
	return bow, orientation, nil
}

func (c *Console) ReadShot() (mb.Coordinates, error) {
	line, err := c.prompt("Shot coordinates (e.g. 1 3): ")
	if err != nil {
		return mb.Coordinates{}, err
	}
	return ParseCoordinates(line)
}

func (c *Console) ReportError(err error) {
	c.printf("Error: %v. Try again.\n", err)
}

func (c *Console) ShowPlacement(own mb.BoardView) {
	c.write(RenderBoard(own))
}

func (c *Console) ShowBoards(own, enemy mb.BoardView) {
	c.println("\nYour board:")
	c.write(RenderBoard(own))
	c.println("\nEnemy board:")
	c.write(RenderBoard(enemy))
}

func (c *Console) ShowShot(shooter string, at mb.Coordinates, result mb.ShotResult) {
	if shooter == mb.WinnerAi {
		c.printf("Computer fires at (%d, %d): %s\n", at.Row+1, at.Col+1, result)
		return
	}
	c.printf("You fire at (%d, %d): %s\n", at.Row+1, at.Col+1, result)
}

func (c *Console) ShowOutcome(state mb.MatchState, shipsAfloat int) {
	switch state {
	case mb.MatchStateUserWon:
		c.println("Congratulations! You won!")
	case mb.MatchStateAiWon:
		c.println("YOU LOSE! :(")
	default:
		return
	}
	c.printf("Ships still afloat: %d\n", shipsAfloat)
}

// Returns io.EOF once the input is exhausted. A final line
// without a trailing newline is still returned.
func (c *Console) prompt(text string) (string, error) {
	c.write(text)

	var line []byte
	tooLong := false
	for {
		chunk, err := c.reader.ReadSlice('\n')
		if !tooLong {
			line = append(line, chunk...)
			if len(line) > maxLineLength {
				tooLong = true
				line = nil
			}
		}
		if err == bufio.ErrBufferFull {
			continue
		}
		if err != nil && (err != io.EOF || (len(line) == 0 && !tooLong)) {
			return "", err
		}
		break
	}

	if tooLong {
		return "", cerr.ErrInputTooLong(maxLineLength)
	}
	return strings.TrimRight(string(line), "\r\n"), nil
}

func (c *Console) write(s string) {
	_, _ = io.WriteString(c.out, s)
}

func (c *Console) println(s string) {
	c.write(s + "\n")
}

func (c *Console) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(c.out, format, a...)
}

// ParseCoordinates turns "row col" (1-indexed) into 0-indexed coordinates.
// Bounds are left to the board.
func ParseCoordinates(line string) (mb.Coordinates, error) {
	tokens := strings.Fields(line)
	if len(tokens) != 2 {
		return mb.Coordinates{}, cerr.ErrInputTokenCount(2, len(tokens))
	}

	row, err := strconv.Atoi(tokens[0])
	if err != nil {
		return mb.Coordinates{}, cerr.ErrInputNotInt(tokens[0])
	}
	col, err := strconv.Atoi(tokens[1])
	if err != nil {
		return mb.Coordinates{}, cerr.ErrInputNotInt(tokens[1])
	}
	return mb.NewCoordinates(row-1, col-1), nil
}

func ParseOrientation(line string) (mb.Orientation, error) {
	switch flag := strings.TrimSpace(line); flag {
	case OrientationFlagHorizontal:
		return mb.OrientationHorizontal, nil
	case OrientationFlagVertical:
		return mb.OrientationVertical, nil
	default:
		return 0, cerr.ErrInputOrientation(flag)
	}
}
