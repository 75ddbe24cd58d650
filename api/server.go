package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	mb "github.com/saeidalz13/battleship-engine/models/battleship"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

const (
	defaultPort     int           = 9191
	shutdownTimeout time.Duration = time.Second * 5
)

type Server struct {
	port        int
	stage       string
	randomFleet bool
	logger      zerolog.Logger
	GameManager *mb.BattleshipGameManager
}

type Option func(*Server) error

func NewServer(gameManager *mb.BattleshipGameManager, optFuncs ...Option) *Server {
	server := Server{
		port:        defaultPort,
		stage:       StageDev,
		logger:      zerolog.Nop(),
		GameManager: gameManager,
	}
	for _, opt := range optFuncs {
		if err := opt(&server); err != nil {
			panic(err)
		}
	}
	return &server
}

func WithPort(port int) Option {
	return func(s *Server) error {
		if port <= 0 || port > 65535 {
			return fmt.Errorf("invalid port: %d", port)
		}
		s.port = port
		return nil
	}
}

func WithStage(stage string) Option {
	return func(s *Server) error {
		if stage != StageProd && stage != StageDev {
			return fmt.Errorf("invalid type of development stage: %s", stage)
		}
		s.stage = stage
		return nil
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) error {
		s.logger = logger
		return nil
	}
}

// WithRandomFleet places both fleets at random unless the client sends its own.
func WithRandomFleet(randomFleet bool) Option {
	return func(s *Server) error {
		s.randomFleet = randomFleet
		return nil
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /battleship", NewRequestProcessor(s.GameManager, s.logger, s.stage, s.randomFleet))
	return mux
}

// Run serves until ctx is cancelled, then shuts the listener down.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:    fmt.Sprintf("0.0.0.0:%d", s.port),
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Int("port", s.port).Str("stage", s.stage).Msg("listening")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
