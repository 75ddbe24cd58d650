package error

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorsWrapSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{name: "ship length", err: ErrShipLength(0, 10), sentinel: ErrInvalidShipLength},
		{name: "placement bound", err: ErrPlacementOutOfGridBound(11, 0), sentinel: ErrInvalidPlacement},
		{name: "placement overlap", err: ErrPlacementOverlap(2, 3), sentinel: ErrInvalidPlacement},
		{name: "attack bound", err: ErrXorYOutOfGridBound(-1, 5), sentinel: ErrOutOfBounds},
		{name: "computer attack", err: ErrAttackByComputer("Rock"), sentinel: ErrPlayerIsComputer},
		{name: "human computer play", err: ErrComputerPlayByHuman("John"), sentinel: ErrPlayerNotComputer},
		{name: "exhausted", err: ErrNoTargetsLeft("Rock"), sentinel: ErrCoordinatesExhausted},
		{name: "turn", err: ErrTurn("John"), sentinel: ErrNotPlayerTurn},
		{name: "game over", err: ErrGameOver("abc123"), sentinel: ErrGameFinished},
		{name: "game not found", err: ErrGameNotFound("abc123"), sentinel: ErrGameNotExists},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.True(t, errors.Is(test.err, test.sentinel), "expected %v to wrap %v", test.err, test.sentinel)
		})
	}
}

func TestErrorMessagesCarryCoordinates(t *testing.T) {
	err := ErrXorYOutOfGridBound(-1, 5)
	assert.Contains(t, err.Error(), "x: -1")
	assert.Contains(t, err.Error(), "y: 5")

	assert.False(t, errors.Is(ErrPlacementOverlap(1, 1), ErrOutOfBounds))
}
