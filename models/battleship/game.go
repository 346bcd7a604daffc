package battleship

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	cerr "github.com/saeidalz13/shipkombat/internal/error"
)

const (
	DefaultBoardSize int = 6

	// Random draws per ship before the whole board is restarted
	maxPlacementAttempts int = 2000
)

// CanonicalFleet holds the ship lengths placed in every match, in placement order.
var CanonicalFleet = []int{3, 2, 2, 1, 1, 1, 1}

type MatchState uint8

const (
	MatchStateUserTurn MatchState = iota
	MatchStateAiTurn
	MatchStateUserWon
	MatchStateAiWon
)

func (s MatchState) String() string {
	switch s {
	case MatchStateAiTurn:
		return "ai_turn"
	case MatchStateUserWon:
		return "user_won"
	case MatchStateAiWon:
		return "ai_won"
	default:
		return "user_turn"
	}
}

func (s MatchState) IsOver() bool {
	return s == MatchStateUserWon || s == MatchStateAiWon
}

const (
	WinnerUser = "user"
	WinnerAi   = "ai"
)

// Display renders the match for the human player. Boards are always
// shown from the user's side, before the automated turn as well: own is
// the user's board revealed, enemy the automated board with ships hidden.
type Display interface {
	ShowBoards(own, enemy BoardView)
	ShowShot(shooter string, at Coordinates, result ShotResult)
	// shipsAfloat counts the winner's ships that were never sunk
	ShowOutcome(state MatchState, shipsAfloat int)
}

type nopDisplay struct{}

func (nopDisplay) ShowBoards(BoardView, BoardView)          {}
func (nopDisplay) ShowShot(string, Coordinates, ShotResult) {}
func (nopDisplay) ShowOutcome(MatchState, int)              {}

type Game struct {
	uuid      uuid.UUID
	size      int
	fleet     []int
	random    Random
	display   Display
	logger    *log.Logger
	user      *InteractivePlayer
	ai        *AutomatedPlayer
	userBoard *Board
	aiBoard   *Board
	state     MatchState
	turns     int
	shots     map[string]int
}

type Option func(*Game) error

func WithBoardSize(size int) Option {
	return func(g *Game) error {
		if size < 1 {
			return cerr.ErrBoardSize(size)
		}
		g.size = size
		return nil
	}
}

func WithFleet(fleet []int) Option {
	return func(g *Game) error {
		g.fleet = append([]int(nil), fleet...)
		return nil
	}
}

func WithRandom(random Random) Option {
	return func(g *Game) error {
		g.random = random
		return nil
	}
}

func WithDisplay(display Display) Option {
	return func(g *Game) error {
		g.display = display
		return nil
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(g *Game) error {
		g.logger = logger
		return nil
	}
}

func NewGame(input InteractiveInput, optFuncs ...Option) (*Game, error) {
	game := Game{
		uuid:    uuid.New(),
		size:    DefaultBoardSize,
		fleet:   CanonicalFleet,
		display: nopDisplay{},
		state:   MatchStateUserTurn,
		shots:   make(map[string]int, 2),
	}
	for _, opt := range optFuncs {
		if err := opt(&game); err != nil {
			return nil, err
		}
	}
	if err := ValidateFleet(game.fleet, game.size); err != nil {
		return nil, err
	}

	if game.random == nil {
		game.random = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if game.logger == nil {
		game.logger = log.Default()
	}
	game.logger = game.logger.With("game", game.Code())

	game.user = NewInteractivePlayer(WinnerUser, input)
	game.ai = NewAutomatedPlayer(WinnerAi, game.random)
	return &game, nil
}

func (g *Game) Uuid() uuid.UUID {
	return g.uuid
}

// Short code used in logs and on screen
func (g *Game) Code() string {
	return g.uuid.String()[:6]
}

func (g *Game) State() MatchState {
	return g.state
}

func (g *Game) Turns() int {
	return g.turns
}

func (g *Game) UserBoard() *Board {
	return g.userBoard
}

func (g *Game) AiBoard() *Board {
	return g.aiBoard
}

// ValidateFleet rejects fleets that no random placement could ever satisfy.
func ValidateFleet(fleet []int, size int) error {
	if len(fleet) == 0 {
		return cerr.ErrFleet("fleet is empty")
	}

	total := 0
	for _, length := range fleet {
		if length < 1 || length > size {
			return cerr.ErrFleet(fmt.Sprintf("ship length %d does not fit a board of size %d", length, size))
		}
		total += length
	}
	if total > size*size {
		return cerr.ErrFleet(fmt.Sprintf("%d ship cells exceed %d board cells", total, size*size))
	}
	return nil
}

// RandomBoard places fleet at random positions. Each ship gets up to
// maxPlacementAttempts draws; when they run out the board is discarded
// and built again from empty, as many times as it takes.
func RandomBoard(random Random, fleet []int, size int) (*Board, error) {
	if err := ValidateFleet(fleet, size); err != nil {
		return nil, err
	}
	board, _ := randomBoard(random, fleet, size)
	return board, nil
}

// Returns the board and the number of restarts it took.
func randomBoard(random Random, fleet []int, size int) (*Board, int) {
	for restarts := 0; ; restarts++ {
		if board, ok := tryRandomBoard(random, fleet, size); ok {
			return board, restarts
		}
	}
}

func tryRandomBoard(random Random, fleet []int, size int) (*Board, bool) {
	// size is validated by the caller
	board, _ := NewBoard(size)
	for _, length := range fleet {
		if !tryPlaceRandomShip(random, board, length) {
			return nil, false
		}
	}
	return board, true
}

func tryPlaceRandomShip(random Random, board *Board, length int) bool {
	for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
		orientation := Orientation(random.Intn(2))
		bow := NewCoordinates(random.Intn(board.size), random.Intn(board.size))

		ship, err := NewShip(bow, length, orientation)
		if err != nil {
			return false
		}
		if board.AddShip(ship) == nil {
			return true
		}
	}
	return false
}

// Setup generates the automated board and lets the user place their fleet.
func (g *Game) Setup() error {
	aiBoard, restarts := randomBoard(g.random, g.fleet, g.size)
	g.logger.Debug("automated board generated", "restarts", restarts)

	userBoard, err := NewBoard(g.size)
	if err != nil {
		return err
	}
	if err := g.user.PlaceFleet(userBoard, g.fleet); err != nil {
		return err
	}

	g.aiBoard = aiBoard
	g.userBoard = userBoard
	g.state = MatchStateUserTurn
	g.logger.Debug("fleets placed", "ships", len(g.fleet), "user", g.user.Uuid(), "ai", g.ai.Uuid())
	return nil
}

// Move asks shooter for coordinates until one resolves on enemy.
// A hit does not grant another shot; the caller hands the turn over.
func (g *Game) Move(shooter Player, enemy *Board) (ShotResult, error) {
	for {
		at, err := shooter.NextShot(enemy.Size())
		if err != nil {
			if cerr.IsRecoverable(err) {
				shooter.ShotRejected(at, err)
				continue
			}
			return ShotResultMiss, err
		}

		result, err := enemy.Shot(at)
		if err != nil {
			if cerr.IsRecoverable(err) {
				shooter.ShotRejected(at, err)
				continue
			}
			return ShotResultMiss, err
		}

		g.shots[shooter.Name()]++
		g.logger.Debug("shot resolved", "player", shooter.Uuid(), "row", at.Row, "col", at.Col, "result", result)
		g.display.ShowShot(shooter.Name(), at, result)
		return result, nil
	}
}

// Step plays a single turn and returns the state after it.
func (g *Game) Step() (MatchState, error) {
	if g.userBoard == nil || g.aiBoard == nil {
		return g.state, cerr.ErrGameNotSetUp
	}
	if g.state.IsOver() {
		return g.state, nil
	}

	g.display.ShowBoards(g.userBoard.Render(true), g.aiBoard.Render(false))

	switch g.state {
	case MatchStateUserTurn:
		if _, err := g.Move(g.user, g.aiBoard); err != nil {
			return g.state, err
		}
		g.state = MatchStateAiTurn
		if g.aiBoard.AllShipsSunk() {
			g.state = MatchStateUserWon
		}

	case MatchStateAiTurn:
		if _, err := g.Move(g.ai, g.userBoard); err != nil {
			return g.state, err
		}
		g.state = MatchStateUserTurn
		if g.userBoard.AllShipsSunk() {
			g.state = MatchStateAiWon
		}
	}

	g.turns++
	g.logger.Debug("turn played", "turn", g.turns, "state", g.state)
	return g.state, nil
}

// Play runs the whole match and returns its terminal state.
func (g *Game) Play() (MatchState, error) {
	if err := g.Setup(); err != nil {
		return g.state, err
	}

	for !g.state.IsOver() {
		if _, err := g.Step(); err != nil {
			return g.state, err
		}
	}

	g.display.ShowOutcome(g.state, g.ShipsAfloat())
	g.logger.Info("match finished", "state", g.state, "turns", g.turns)
	return g.state, nil
}

// ShipsAfloat returns how many of the winner's ships survived,
// zero while the match is still running.
func (g *Game) ShipsAfloat() int {
	switch g.state {
	case MatchStateUserWon:
		return g.userBoard.ShipsRemaining()
	case MatchStateAiWon:
		return g.aiBoard.ShipsRemaining()
	}
	return 0
}

type MatchSummary struct {
	GameUuid  uuid.UUID
	Winner    string
	Turns     int
	UserShots int
	AiShots   int
	BoardSize int
	UserBoard BoardView
	AiBoard   BoardView
}

func (g *Game) Summary() MatchSummary {
	summary := MatchSummary{
		GameUuid:  g.uuid,
		Turns:     g.turns,
		UserShots: g.shots[g.user.Name()],
		AiShots:   g.shots[g.ai.Name()],
		BoardSize: g.size,
	}

	switch g.state {
	case MatchStateUserWon:
		summary.Winner = WinnerUser
	case MatchStateAiWon:
		summary.Winner = WinnerAi
	}

	if g.userBoard != nil {
		summary.UserBoard = g.userBoard.Render(true)
	}
	if g.aiBoard != nil {
		summary.AiBoard = g.aiBoard.Render(true)
	}
	return summary
}
