package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/saeidalz13/battleship-engine/api"
	"github.com/saeidalz13/battleship-engine/internal/config"
	"github.com/saeidalz13/battleship-engine/internal/logging"
	mb "github.com/saeidalz13/battleship-engine/models/battleship"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "battleship",
		Usage: "play battleship against the computer",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Value: ".env",
				Usage: "env file loaded outside prod; a missing file is ignored",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "serve games over websocket at GET /battleship",
				Action: serve,
			},
			{
				Name:  "play",
				Usage: "play a game in the terminal",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Value: "Player", Usage: "your name"},
					&cli.BoolFlag{Name: "random-fleet", Usage: "place both fleets at random"},
				},
				Action: play,
			},
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup(cmd *cli.Command) (config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(cmd.String("env-file"))
	if err != nil {
		return config.Config{}, zerolog.Nop(), err
	}
	return cfg, logging.New(cfg.LogLevel, cfg.Stage), nil
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	gameManager := mb.NewBattleshipGameManager(
		mb.WithMaxGameAge(cfg.GameMaxAge),
		mb.WithCleanupInterval(cfg.CleanupInterval),
		mb.WithLogger(logger),
	)
	go gameManager.CleanupPeriodically(ctx)

	server := api.NewServer(
		gameManager,
		api.WithPort(cfg.Port),
		api.WithStage(cfg.Stage),
		api.WithLogger(logger),
		api.WithRandomFleet(cfg.RandomFleet),
	)
	return server.Run(ctx)
}

func play(ctx context.Context, cmd *cli.Command) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	game, err := mb.NewGame(mb.GameConfig{
		HumanName:   cmd.String("name"),
		RandomFleet: cmd.Bool("random-fleet") || cfg.RandomFleet,
	})
	if err != nil {
		return err
	}
	logger.Debug().Str("game", game.Uuid()).Msg("game created")

	return runGame(ctx, os.Stdin, os.Stdout, game)
}
