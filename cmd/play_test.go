package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	mb "github.com/saeidalz13/battleship-engine/models/battleship"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunGameHumanWins(t *testing.T) {
	game, err := mb.NewGame(mb.GameConfig{HumanName: "John"})
	require.NoError(t, err)

	input := strings.Join([]string{
		"5 5", "6 5", "bogus", "7 5", "8 5",
		"42 0",
		"7 1", "7 2", "7 3",
	}, "\n")

	var out bytes.Buffer
	require.NoError(t, runGame(context.Background(), strings.NewReader(input), &out, game))

	assert.True(t, game.IsFinished())
	assert.Same(t, game.Human(), game.Winner())
	assert.Contains(t, out.String(), "expected two numbers")
	assert.Contains(t, out.String(), "invalid attack")
	assert.Contains(t, out.String(), "sunk a ship of length 4")
	assert.Contains(t, out.String(), "John wins!")
}

func TestRunGameQuit(t *testing.T) {
	game, err := mb.NewGame(mb.GameConfig{})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, runGame(context.Background(), strings.NewReader("0 9\nquit\n"), &out, game))

	assert.False(t, game.IsFinished())
	assert.Contains(t, out.String(), "(0,9) miss")
}

func TestParseTarget(t *testing.T) {
	tests := []struct {
		line    string
		x, y    int
		wantErr bool
	}{
		{line: "3 4", x: 3, y: 4},
		{line: "  -1   5 ", x: -1, y: 5},
		{line: "3", wantErr: true},
		{line: "a b", wantErr: true},
		{line: "1 2 3", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.line, func(t *testing.T) {
			x, y, err := parseTarget(test.line)
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.x, x)
			assert.Equal(t, test.y, y)
		})
	}
}
