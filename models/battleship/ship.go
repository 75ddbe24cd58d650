package battleship

import (
	cerr "github.com/saeidalz13/battleship-engine/internal/error"
)

const (
	ShipLengthBattleship = 4
	ShipLengthCruiser    = 3
)

type Ship struct {
	length      int
	hits        int
	coordinates []Coordinates
}

func NewShip(length int) (*Ship, error) {
	if length <= 0 || length > BoardSize {
		return nil, cerr.ErrShipLength(length, BoardSize)
	}

	return &Ship{
		length: length,
		hits:   0,
	}, nil
}

// MustNewShip is NewShip for fleet lengths known at compile time.
func MustNewShip(length int) *Ship {
	ship, err := NewShip(length)
	if err != nil {
		panic(err)
	}
	return ship
}

// Hit is a no-op once the ship is sunk, so hits never exceed length.
func (sh *Ship) Hit() {
	if sh.IsSunk() {
		return
	}
	sh.hits++
}

func (sh *Ship) IsSunk() bool {
	return sh.hits == sh.length
}

func (sh *Ship) Length() int {
	return sh.length
}

func (sh *Ship) Hits() int {
	return sh.hits
}

// Coordinates returns a copy of the occupied cells. Empty until the ship is placed.
func (sh *Ship) Coordinates() []Coordinates {
	coords := make([]Coordinates, len(sh.coordinates))
	copy(coords, sh.coordinates)
	return coords
}

func (sh *Ship) occupies(x, y int) bool {
	for _, c := range sh.coordinates {
		if c.X == x && c.Y == y {
			return true
		}
	}
	return false
}
