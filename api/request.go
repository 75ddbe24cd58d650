package api

import (
	"encoding/json"

	mb "github.com/saeidalz13/battleship-engine/models/battleship"
	mc "github.com/saeidalz13/battleship-engine/models/connection"
)

const (
	msgInvalidPayload = "invalid payload"
	msgNoGame         = "no game in this session, create one first"
	msgAttackFailed   = "attack operation failed"
)

// Every incoming valid request will have this structure
type Request struct {
	payload []byte
}

func NewRequest(payload ...[]byte) Request {
	var req Request
	if len(payload) != 0 {
		req.payload = payload[0]
	}
	return req
}

func (r Request) HandleCreateGame(gameManager mb.GameManager, randomFleet bool) (*mb.Game, mc.Message[mc.RespCreateGame]) {
	resp := mc.NewMessage[mc.RespCreateGame](mc.CodeCreateGame)

	var reqCreateGame mc.Message[mc.ReqCreateGame]
	if err := json.Unmarshal(r.payload, &reqCreateGame); err != nil {
		resp.AddError(err.Error(), msgInvalidPayload)
		return nil, resp
	}

	cfg := mb.GameConfig{
		HumanName:   reqCreateGame.Payload.PlayerName,
		HumanFleet:  reqCreateGame.Payload.Fleet,
		RandomFleet: reqCreateGame.Payload.RandomFleet || (randomFleet && len(reqCreateGame.Payload.Fleet) == 0),
	}

	game, err := gameManager.CreateGame(cfg)
	if err != nil {
		resp.AddError(err.Error(), "failed to create the game")
		return nil, resp
	}

	resp.AddPayload(mc.RespCreateGame{
		GameUuid:   game.Uuid(),
		PlayerUuid: game.Human().Uuid(),
		Fleet:      mc.NewRespShips(game.Human().Gameboard().Ships()),
	})
	return game, resp
}

func (r Request) HandleAttack(game *mb.Game) mc.Message[mc.RespAttack] {
	resp := mc.NewMessage[mc.RespAttack](mc.CodeAttack)
	if game == nil {
		resp.AddError("", msgNoGame)
		return resp
	}

	var reqAttack mc.Message[mc.ReqAttack]
	if err := json.Unmarshal(r.payload, &reqAttack); err != nil {
		resp.AddError(err.Error(), msgInvalidPayload)
		return resp
	}

	outcome, err := game.HandleAttack(reqAttack.Payload.X, reqAttack.Payload.Y)
	if err != nil {
		resp.AddError(err.Error(), msgAttackFailed)
		return resp
	}

	// the human moves again only after the computer played
	resp.AddPayload(mc.NewRespAttack(outcome, false))
	return resp
}

func HandleComputerTurn(game *mb.Game) mc.Message[mc.RespAttack] {
	resp := mc.NewMessage[mc.RespAttack](mc.CodeComputerAttack)

	outcome, err := game.ComputerTurn()
	if err != nil {
		resp.AddError(err.Error(), msgAttackFailed)
		return resp
	}

	resp.AddPayload(mc.NewRespAttack(outcome, !game.IsFinished()))
	return resp
}

// NewEndGameMessage reports the result from the human's point of view.
func NewEndGameMessage(game *mb.Game) mc.Message[mc.RespEndGame] {
	resp := mc.NewMessage[mc.RespEndGame](mc.CodeEndGame)
	if !game.IsFinished() {
		resp.AddError("", "game is still running")
		return resp
	}

	resp.AddPayload(mc.RespEndGame{
		Winner:            game.Winner().Name(),
		PlayerMatchStatus: game.MatchStatus(game.Human()),
	})
	return resp
}
