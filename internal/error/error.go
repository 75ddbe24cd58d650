package error

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPlacement     = errors.New("invalid ship placement")
	ErrOutOfBounds          = errors.New("coordinates out of board bounds")
	ErrInvalidShipLength    = errors.New("invalid ship length")
	ErrCoordinatesExhausted = errors.New("every board coordinate has already been attacked")
	ErrPlayerIsComputer     = errors.New("player is controlled by the computer")
	ErrPlayerNotComputer    = errors.New("player is not controlled by the computer")
	ErrNotPlayerTurn        = errors.New("not this player's turn")
	ErrGameFinished         = errors.New("game is already finished")
	ErrGameNotExists        = errors.New("game does not exist")
)

func ErrShipLength(length, maxLength int) error {
	return fmt.Errorf("%w: must be between 1 and %d\tgot: %d", ErrInvalidShipLength, maxLength, length)
}

func ErrPlacementOutOfGridBound(x, y int) error {
	return fmt.Errorf("%w: ship cell is out of game grid bound\tx: %d\ty: %d", ErrInvalidPlacement, x, y)
}

func ErrPlacementOverlap(x, y int) error {
	return fmt.Errorf("%w: current position in grid already taken\tx: %d\ty: %d", ErrInvalidPlacement, x, y)
}

func ErrXorYOutOfGridBound(x, y int) error {
	return fmt.Errorf("%w: incoming x or y is out of game grid bound\tx: %d\ty: %d", ErrOutOfBounds, x, y)
}

func ErrAttackByComputer(name string) error {
	return fmt.Errorf("%w: %s picks its own targets", ErrPlayerIsComputer, name)
}

func ErrComputerPlayByHuman(name string) error {
	return fmt.Errorf("%w: %s must provide attack coordinates", ErrPlayerNotComputer, name)
}

func ErrNoTargetsLeft(name string) error {
	return fmt.Errorf("%w: player: %s", ErrCoordinatesExhausted, name)
}

func ErrTurn(name string) error {
	return fmt.Errorf("%w: %s", ErrNotPlayerTurn, name)
}

func ErrGameOver(gameUuid string) error {
	return fmt.Errorf("%w, uuid: %s", ErrGameFinished, gameUuid)
}

func ErrGameNotFound(gameUuid string) error {
	return fmt.Errorf("%w, uuid: %s", ErrGameNotExists, gameUuid)
}

func ErrNilPayload() error {
	return fmt.Errorf("the payload is nil or could not be decoded")
}
