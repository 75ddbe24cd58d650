package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	mb "github.com/saeidalz13/battleship-engine/models/battleship"
)

// runGame reads "x y" targets from in until someone wins, the input ends or
// the player types "quit".
func runGame(ctx context.Context, in io.Reader, out io.Writer, game *mb.Game) error {
	scanner := bufio.NewScanner(in)

	fmt.Fprintf(out, "%s vs %s. Enter a target as \"x y\" with values from %d to %d.\n",
		game.Human().Name(), game.Computer().Name(), mb.GridValidLowerBound, mb.GridValidUpperBound)
	for _, ship := range game.Human().Gameboard().Ships() {
		fmt.Fprintf(out, "your ship of length %d: %v\n", ship.Length(), ship.Coordinates())
	}

	for !game.IsFinished() {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "quit" {
			return nil
		}

		x, y, err := parseTarget(line)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}

		outcome, err := game.HandleAttack(x, y)
		if err != nil {
			fmt.Fprintf(out, "invalid attack: %v\n", err)
			continue
		}
		report(out, "you", outcome)
		if game.IsFinished() {
			break
		}

		outcome, err = game.ComputerTurn()
		if err != nil {
			return err
		}
		report(out, game.Computer().Name(), outcome)
	}

	fmt.Fprintf(out, "%s wins!\n", game.Winner().Name())
	return nil
}

func parseTarget(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected two numbers, got %q", line)
	}

	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid x: %w", err)
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid y: %w", err)
	}
	return x, y, nil
}

func report(out io.Writer, who string, outcome mb.AttackOutcome) {
	switch {
	case outcome.Sunk:
		fmt.Fprintf(out, "%s: %s hit and sunk a ship of length %d\n", who, outcome.Coordinates, outcome.ShipLength)
	case outcome.Hit:
		fmt.Fprintf(out, "%s: %s hit\n", who, outcome.Coordinates)
	default:
		fmt.Fprintf(out, "%s: %s miss\n", who, outcome.Coordinates)
	}
}
