package battleship

import (
	"github.com/google/uuid"
	cerr "github.com/saeidalz13/shipkombat/internal/error"
)

// Player produces shots against an opponent's board. How the
// coordinates are obtained is the only thing that differs
// between variants; Game.Move resolves them.
type Player interface {
	Uuid() string
	Name() string
	NextShot(boardSize int) (Coordinates, error)
	ShotRejected(at Coordinates, err error)
}

// Random is satisfied by *math/rand.Rand.
type Random interface {
	Intn(n int) int
}

// InteractiveInput is the outside collaborator feeding a human
// player. Malformed input is returned as cerr.ErrMalformedInput,
// anything else ends the match.
type InteractiveInput interface {
	ReadPlacement(shipLength int) (Coordinates, Orientation, error)
	ReadShot() (Coordinates, error)
	ReportError(err error)
	ShowPlacement(own BoardView)
}

var (
	_ Player = (*InteractivePlayer)(nil)
	_ Player = (*AutomatedPlayer)(nil)
)

type InteractivePlayer struct {
	uuid  string
	name  string
	input InteractiveInput
}

func NewInteractivePlayer(name string, input InteractiveInput) *InteractivePlayer {
	return &InteractivePlayer{
		uuid:  uuid.NewString()[:10],
		name:  name,
		input: input,
	}
}

func (ip *InteractivePlayer) Uuid() string {
	return ip.uuid
}

func (ip *InteractivePlayer) Name() string {
	return ip.name
}

// PlaceFleet fills board with one ship per length in fleet. A ship that
// cannot be built or placed is reported and asked for again.
func (ip *InteractivePlayer) PlaceFleet(board *Board, fleet []int) error {
	ip.input.ShowPlacement(board.Render(true))

	for _, length := range fleet {
		for {
			bow, orientation, err := ip.input.ReadPlacement(length)
			if err != nil {
				if cerr.IsRecoverable(err) {
					ip.input.ReportError(err)
					continue
				}
				return err
			}

			ship, err := NewShip(bow, length, orientation)
			if err != nil {
				return err
			}
			if err := board.AddShip(ship); err != nil {
				ip.input.ReportError(err)
				continue
			}

			ip.input.ShowPlacement(board.Render(true))
			break
		}
	}
	return nil
}

func (ip *InteractivePlayer) NextShot(boardSize int) (Coordinates, error) {
	return ip.input.ReadShot()
}

func (ip *InteractivePlayer) ShotRejected(at Coordinates, err error) {
	ip.input.ReportError(err)
}

// AutomatedPlayer fires at uniformly random cells. It keeps no
// record of earlier shots; repeats are rejected by the board
// and resampled by Game.Move.
type AutomatedPlayer struct {
	uuid   string
	name   string
	random Random
}

func NewAutomatedPlayer(name string, random Random) *AutomatedPlayer {
	return &AutomatedPlayer{
		uuid:   uuid.NewString()[:10],
		name:   name,
		random: random,
	}
}

func (ap *AutomatedPlayer) Uuid() string {
	return ap.uuid
}

func (ap *AutomatedPlayer) Name() string {
	return ap.name
}

func (ap *AutomatedPlayer) NextShot(boardSize int) (Coordinates, error) {
	return NewCoordinates(ap.random.Intn(boardSize), ap.random.Intn(boardSize)), nil
}

func (ap *AutomatedPlayer) ShotRejected(Coordinates, error) {}
