package battleship

import "fmt"

// BoardSize is the width and height of every gameboard.
const BoardSize int = 10

const (
	GridValidLowerBound = 0
	GridValidUpperBound = BoardSize - 1
)

type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCoordinates(x, y int) Coordinates {
	return Coordinates{X: x, Y: y}
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// IsInBounds reports whether (x, y) lies on the board.
func IsInBounds(x, y int) bool {
	return x >= GridValidLowerBound && x <= GridValidUpperBound &&
		y >= GridValidLowerBound && y <= GridValidUpperBound
}

// AllCoordinates returns every cell of the board, row by row.
func AllCoordinates() []Coordinates {
	coords := make([]Coordinates, 0, BoardSize*BoardSize)
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			coords = append(coords, NewCoordinates(x, y))
		}
	}
	return coords
}
