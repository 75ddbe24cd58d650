package battleship

import (
	"fmt"
	"math/rand/v2"
)

// maxPlacementAttempts bounds the random search for a free spot per ship.
const maxPlacementAttempts = 1000

type ShipPlacement struct {
	Length     int  `json:"length"`
	X          int  `json:"x"`
	Y          int  `json:"y"`
	IsVertical bool `json:"is_vertical"`
}

// DefaultFleetLengths is one battleship and one cruiser per side.
func DefaultFleetLengths() []int {
	return []int{ShipLengthBattleship, ShipLengthCruiser}
}

func DefaultHumanFleet() []ShipPlacement {
	return []ShipPlacement{
		{Length: ShipLengthBattleship, X: 0, Y: 0, IsVertical: false},
		{Length: ShipLengthCruiser, X: 2, Y: 3, IsVertical: true},
	}
}

func DefaultComputerFleet() []ShipPlacement {
	return []ShipPlacement{
		{Length: ShipLengthBattleship, X: 5, Y: 5, IsVertical: false},
		{Length: ShipLengthCruiser, X: 7, Y: 1, IsVertical: true},
	}
}

// PlaceFleet places every ship of the fleet in order and stops at the first
// failure. Ships placed before the failure stay on the board.
func PlaceFleet(gb *Gameboard, fleet []ShipPlacement) error {
	for i, placement := range fleet {
		ship, err := NewShip(placement.Length)
		if err != nil {
			return fmt.Errorf("fleet ship %d: %w", i, err)
		}
		if err := gb.PlaceShip(ship, placement.X, placement.Y, placement.IsVertical); err != nil {
			return fmt.Errorf("fleet ship %d: %w", i, err)
		}
	}
	return nil
}

// RandomFleet finds a non-overlapping random placement for ships of the given lengths.
func RandomFleet(lengths []int, rng *rand.Rand) ([]ShipPlacement, error) {
	scratch := NewGameboard()
	fleet := make([]ShipPlacement, 0, len(lengths))

	for i, length := range lengths {
		ship, err := NewShip(length)
		if err != nil {
			return nil, fmt.Errorf("fleet ship %d: %w", i, err)
		}

		placed := false
		for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
			placement := ShipPlacement{
				Length:     length,
				X:          rng.IntN(BoardSize),
				Y:          rng.IntN(BoardSize),
				IsVertical: rng.IntN(2) == 1,
			}
			if err := scratch.PlaceShip(ship, placement.X, placement.Y, placement.IsVertical); err != nil {
				continue
			}
			fleet = append(fleet, placement)
			placed = true
			break
		}

		if !placed {
			return nil, fmt.Errorf("fleet ship %d: no free spot for length %d after %d attempts", i, length, maxPlacementAttempts)
		}
	}

	return fleet, nil
}
