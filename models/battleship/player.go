package battleship

import (
	"math/rand/v2"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-engine/internal/error"
)

type PlayerOption func(*Player)

// WithRand sets the source the computer uses to pick targets.
func WithRand(rng *rand.Rand) PlayerOption {
	return func(p *Player) {
		p.rng = rng
	}
}

type Player struct {
	uuid       string
	name       string
	isComputer bool
	gameboard  *Gameboard

	// Only used when isComputer is set.
	attackedCoordinates map[Coordinates]struct{}
	untried             []Coordinates
	rng                 *rand.Rand
}

func NewPlayer(name string, isComputer bool, opts ...PlayerOption) *Player {
	p := &Player{
		uuid:       uuid.NewString()[:10],
		name:       name,
		isComputer: isComputer,
		gameboard:  NewGameboard(),
	}

	if isComputer {
		p.attackedCoordinates = make(map[Coordinates]struct{}, BoardSize*BoardSize)
		p.untried = AllCoordinates()
	}

	for _, opt := range opts {
		opt(p)
	}
	if p.rng == nil {
		p.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return p
}

func (p *Player) Uuid() string {
	return p.uuid
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) IsComputer() bool {
	return p.isComputer
}

func (p *Player) Gameboard() *Gameboard {
	return p.gameboard
}

// Attack fires at the target board on behalf of a human player.
func (p *Player) Attack(target *Gameboard, x, y int) (AttackOutcome, error) {
	if p.isComputer {
		return AttackOutcome{}, cerr.ErrAttackByComputer(p.name)
	}
	return target.ReceiveAttack(x, y)
}

// ComputerPlay picks a cell this player has never tried, uniformly at random
// among the cells left. It fails once all cells of the board have been used.
func (p *Player) ComputerPlay() (Coordinates, error) {
	if !p.isComputer {
		return Coordinates{}, cerr.ErrComputerPlayByHuman(p.name)
	}
	if len(p.untried) == 0 {
		return Coordinates{}, cerr.ErrNoTargetsLeft(p.name)
	}

	idx := p.rng.IntN(len(p.untried))
	coords := p.untried[idx]

	last := len(p.untried) - 1
	p.untried[idx] = p.untried[last]
	p.untried = p.untried[:last]

	p.attackedCoordinates[coords] = struct{}{}
	return coords, nil
}

func (p *Player) HasAttacked(coords Coordinates) bool {
	_, prs := p.attackedCoordinates[coords]
	return prs
}

// RemainingTargets is the number of cells the computer has not tried yet.
func (p *Player) RemainingTargets() int {
	return len(p.untried)
}
