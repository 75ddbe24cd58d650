package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	mb "github.com/saeidalz13/battleship-engine/models/battleship"
	mc "github.com/saeidalz13/battleship-engine/models/connection"
)

// RequestProcessor runs one human-vs-computer game per websocket connection.
type RequestProcessor struct {
	gameManager mb.GameManager
	logger      zerolog.Logger
	randomFleet bool
	upgrader    websocket.Upgrader
}

func NewRequestProcessor(gameManager mb.GameManager, logger zerolog.Logger, stage string, randomFleet bool) RequestProcessor {
	upgrader := websocket.Upgrader{
		// good average time since this is not a high-latency operation such as video streaming
		HandshakeTimeout: time.Second * 5,

		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}
	// prod keeps gorilla's same-origin check
	if stage == StageDev {
		upgrader.CheckOrigin = func(r *http.Request) bool { return true }
	}

	return RequestProcessor{
		gameManager: gameManager,
		logger:      logger,
		randomFleet: randomFleet,
		upgrader:    upgrader,
	}
}

func (rp RequestProcessor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := rp.upgrader.Upgrade(w, r, nil)
	if err != nil {
		rp.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	rp.logger.Info().Str("remote_addr", conn.RemoteAddr().String()).Msg("a new connection established")
	rp.processSessionRequests(conn)
}

func (rp RequestProcessor) processSessionRequests(conn *websocket.Conn) {
	var sessionGame *mb.Game
	logger := rp.logger.With().Str("remote_addr", conn.RemoteAddr().String()).Logger()

	defer func() {
		if sessionGame != nil {
			rp.gameManager.TerminateGame(sessionGame.Uuid())
		}
		_ = conn.Close()
		logger.Info().Msg("connection closed")
	}()

sessionLoop:
	for {
		// A WebSocket frame can be one of 6 types: text=1, binary=2, ping=9, pong=10, close=8 and continuation=0
		// https://www.rfc-editor.org/rfc/rfc6455.html#section-11.8
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn().Err(err).Msg("unexpected close")
			}
			break sessionLoop
		}

		code, ok := fetchCode(payload)
		if !ok {
			msg := mc.NewMessage[mc.NoPayload](mc.CodeSignalAbsent)
			msg.AddError("incoming req payload must contain 'code' field", "")
			if err := conn.WriteJSON(msg); err != nil {
				break sessionLoop
			}
			continue sessionLoop
		}

		switch code {

		// A new game replaces the one this connection was playing, if any
		case mc.CodeCreateGame:
			game, respMsg := NewRequest(payload).HandleCreateGame(rp.gameManager, rp.randomFleet)
			if game != nil {
				if sessionGame != nil {
					rp.gameManager.TerminateGame(sessionGame.Uuid())
				}
				sessionGame = game
				logger = logger.With().Str("game", game.Uuid()).Logger()
				logger.Info().Msg("game created")
			}

			if err := conn.WriteJSON(respMsg); err != nil {
				break sessionLoop
			}

		// The human attacks, then the computer answers on the same
		// connection unless the human already won.
		case mc.CodeAttack:
			respMsg := NewRequest(payload).HandleAttack(sessionGame)
			if err := conn.WriteJSON(respMsg); err != nil {
				break sessionLoop
			}
			if respMsg.Error != nil {
				continue sessionLoop
			}

			if sessionGame.IsFinished() {
				logger.Info().Str("winner", sessionGame.Winner().Name()).Msg("game over")
				if err := conn.WriteJSON(NewEndGameMessage(sessionGame)); err != nil {
					break sessionLoop
				}
				continue sessionLoop
			}

			computerMsg := HandleComputerTurn(sessionGame)
			if computerMsg.Error != nil {
				logger.Error().Str("details", computerMsg.Error.ErrorDetails).Msg("computer turn failed")
			}
			if err := conn.WriteJSON(computerMsg); err != nil {
				break sessionLoop
			}

			if sessionGame.IsFinished() {
				logger.Info().Str("winner", sessionGame.Winner().Name()).Msg("game over")
				if err := conn.WriteJSON(NewEndGameMessage(sessionGame)); err != nil {
					break sessionLoop
				}
			}

		default:
			respInvalidSignal := mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal)
			respInvalidSignal.AddError("", "invalid code in the incoming payload")
			if err := conn.WriteJSON(respInvalidSignal); err != nil {
				break sessionLoop
			}
		}
	}
}

// fetchCode reports false when the payload is not JSON or has no "code" field.
func fetchCode(payload []byte) (uint8, bool) {
	var probe struct {
		Code *uint8 `json:"code"`
	}
	if err := json.Unmarshal(payload, &probe); err != nil || probe.Code == nil {
		return 0, false
	}
	return *probe.Code, true
}
