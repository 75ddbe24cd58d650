package battleship

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-engine/internal/error"
)

const (
	PlayerMatchStatusLost      = -1
	PlayerMatchStatusUndefined = 0
	PlayerMatchStatusWon       = 1
)

const (
	defaultHumanName    = "Player"
	defaultComputerName = "Computer"
)

type GameConfig struct {
	HumanName    string
	ComputerName string

	// Used as-is unless RandomFleet is set. Empty means the default fleet.
	HumanFleet    []ShipPlacement
	ComputerFleet []ShipPlacement

	// RandomFleet places ships of FleetLengths (default fleet lengths when
	// empty) at random for both sides.
	RandomFleet  bool
	FleetLengths []int

	Rand *rand.Rand
}

// Game pairs a human with the computer and alternates turns between them,
// human first. A Game must be driven by a single goroutine.
type Game struct {
	uuid          string
	createdAt     time.Time
	human         *Player
	computer      *Player
	currentPlayer *Player
	winner        *Player
}

func NewGame(cfg GameConfig) (*Game, error) {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	humanName := cfg.HumanName
	if humanName == "" {
		humanName = defaultHumanName
	}
	computerName := cfg.ComputerName
	if computerName == "" {
		computerName = defaultComputerName
	}

	humanFleet, computerFleet, err := cfg.fleets(rng)
	if err != nil {
		return nil, err
	}

	human := NewPlayer(humanName, false)
	computer := NewPlayer(computerName, true, WithRand(rng))

	if err := PlaceFleet(human.Gameboard(), humanFleet); err != nil {
		return nil, fmt.Errorf("human fleet: %w", err)
	}
	if err := PlaceFleet(computer.Gameboard(), computerFleet); err != nil {
		return nil, fmt.Errorf("computer fleet: %w", err)
	}

	return &Game{
		uuid:          uuid.NewString()[:6],
		createdAt:     time.Now(),
		human:         human,
		computer:      computer,
		currentPlayer: human,
	}, nil
}

func (cfg GameConfig) fleets(rng *rand.Rand) ([]ShipPlacement, []ShipPlacement, error) {
	if !cfg.RandomFleet {
		humanFleet, computerFleet := cfg.HumanFleet, cfg.ComputerFleet
		if len(humanFleet) == 0 {
			humanFleet = DefaultHumanFleet()
		}
		if len(computerFleet) == 0 {
			computerFleet = DefaultComputerFleet()
		}
		return humanFleet, computerFleet, nil
	}

	lengths := cfg.FleetLengths
	if len(lengths) == 0 {
		lengths = DefaultFleetLengths()
	}

	humanFleet, err := RandomFleet(lengths, rng)
	if err != nil {
		return nil, nil, fmt.Errorf("human fleet: %w", err)
	}
	computerFleet, err := RandomFleet(lengths, rng)
	if err != nil {
		return nil, nil, fmt.Errorf("computer fleet: %w", err)
	}
	return humanFleet, computerFleet, nil
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) CreatedAt() time.Time {
	return g.createdAt
}

func (g *Game) Human() *Player {
	return g.human
}

func (g *Game) Computer() *Player {
	return g.computer
}

func (g *Game) CurrentPlayer() *Player {
	return g.currentPlayer
}

// Winner is nil while the game is running.
func (g *Game) Winner() *Player {
	return g.winner
}

func (g *Game) IsFinished() bool {
	return g.winner != nil
}

func (g *Game) opponent(p *Player) *Player {
	if p == g.human {
		return g.computer
	}
	return g.human
}

func (g *Game) MatchStatus(p *Player) int {
	switch g.winner {
	case nil:
		return PlayerMatchStatusUndefined
	case p:
		return PlayerMatchStatusWon
	default:
		return PlayerMatchStatusLost
	}
}

// HandleAttack plays the human's turn against the computer's board. A failed
// attack keeps the turn with the human so they can pick other coordinates.
func (g *Game) HandleAttack(x, y int) (AttackOutcome, error) {
	if err := g.checkTurn(g.human); err != nil {
		return AttackOutcome{}, err
	}

	outcome, err := g.human.Attack(g.computer.Gameboard(), x, y)
	if err != nil {
		return AttackOutcome{}, err
	}

	g.endTurn()
	return outcome, nil
}

// ComputerTurn lets the computer pick a target on the human's board.
func (g *Game) ComputerTurn() (AttackOutcome, error) {
	if err := g.checkTurn(g.computer); err != nil {
		return AttackOutcome{}, err
	}

	coords, err := g.computer.ComputerPlay()
	if err != nil {
		return AttackOutcome{}, err
	}

	outcome, err := g.human.Gameboard().ReceiveAttack(coords.X, coords.Y)
	if err != nil {
		return AttackOutcome{}, err
	}

	g.endTurn()
	return outcome, nil
}

func (g *Game) checkTurn(p *Player) error {
	if g.IsFinished() {
		return cerr.ErrGameOver(g.uuid)
	}
	if g.currentPlayer != p {
		return cerr.ErrTurn(p.Name())
	}
	return nil
}

// endTurn declares the current player the winner once the opponent's fleet is
// gone, otherwise passes the turn.
func (g *Game) endTurn() {
	opponent := g.opponent(g.currentPlayer)
	if opponent.Gameboard().AllShipsSunk() {
		g.winner = g.currentPlayer
		return
	}
	g.currentPlayer = opponent
}
