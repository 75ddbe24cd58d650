package battleship

import (
	cerr "github.com/saeidalz13/battleship-engine/internal/error"
)

// AttackOutcome describes how a single attack was resolved.
type AttackOutcome struct {
	Coordinates Coordinates
	Hit         bool
	Sunk        bool
	// ShipLength is zero for a miss.
	ShipLength int
}

// Gameboard owns the ships placed on it and the ordered record of missed attacks.
type Gameboard struct {
	size          int
	ships         []*Ship
	missedAttacks []Coordinates
}

func NewGameboard() *Gameboard {
	return &Gameboard{
		size:          BoardSize,
		ships:         make([]*Ship, 0, 2),
		missedAttacks: make([]Coordinates, 0, BoardSize),
	}
}

func (gb *Gameboard) Size() int {
	return gb.size
}

func (gb *Gameboard) isCellEmpty(x, y int) bool {
	return gb.ShipAt(x, y) == nil
}

// PlaceShip records a fresh ship with the template's length starting at (x, y),
// extending along y when isVertical and along x otherwise. The template is not
// kept. Nothing is recorded when any cell is out of bounds or already taken.
func (gb *Gameboard) PlaceShip(template *Ship, x, y int, isVertical bool) error {
	if !IsInBounds(x, y) {
		return cerr.ErrPlacementOutOfGridBound(x, y)
	}
	if template == nil {
		return cerr.ErrShipLength(0, BoardSize)
	}

	newShip, err := NewShip(template.Length())
	if err != nil {
		return err
	}

	coords := make([]Coordinates, 0, newShip.length)
	for i := 0; i < newShip.length; i++ {
		newX, newY := x+i, y
		if isVertical {
			newX, newY = x, y+i
		}

		if !IsInBounds(newX, newY) {
			return cerr.ErrPlacementOutOfGridBound(newX, newY)
		}
		if !gb.isCellEmpty(newX, newY) {
			return cerr.ErrPlacementOverlap(newX, newY)
		}
		coords = append(coords, NewCoordinates(newX, newY))
	}

	newShip.coordinates = coords
	gb.ships = append(gb.ships, newShip)
	return nil
}

// ReceiveAttack resolves an attack on (x, y). A ship on the cell takes a hit;
// otherwise the cell is appended to the miss record, even if it is already there.
func (gb *Gameboard) ReceiveAttack(x, y int) (AttackOutcome, error) {
	if !IsInBounds(x, y) {
		return AttackOutcome{}, cerr.ErrXorYOutOfGridBound(x, y)
	}

	outcome := AttackOutcome{Coordinates: NewCoordinates(x, y)}

	attackedShip := gb.ShipAt(x, y)
	if attackedShip == nil {
		gb.missedAttacks = append(gb.missedAttacks, outcome.Coordinates)
		return outcome, nil
	}

	attackedShip.Hit()
	outcome.Hit = true
	outcome.Sunk = attackedShip.IsSunk()
	outcome.ShipLength = attackedShip.Length()
	return outcome, nil
}

// AllShipsSunk is true for a board without ships.
func (gb *Gameboard) AllShipsSunk() bool {
	for _, ship := range gb.ships {
		if !ship.IsSunk() {
			return false
		}
	}
	return true
}

// ShipAt returns the ship occupying (x, y) or nil.
func (gb *Gameboard) ShipAt(x, y int) *Ship {
	for _, ship := range gb.ships {
		if ship.occupies(x, y) {
			return ship
		}
	}
	return nil
}

// Ships returns the placed ships in placement order.
func (gb *Gameboard) Ships() []*Ship {
	ships := make([]*Ship, len(gb.ships))
	copy(ships, gb.ships)
	return ships
}

func (gb *Gameboard) MissedAttacks() []Coordinates {
	missed := make([]Coordinates, len(gb.missedAttacks))
	copy(missed, gb.missedAttacks)
	return missed
}
