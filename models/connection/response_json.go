package connection

import (
	mb "github.com/saeidalz13/battleship-engine/models/battleship"
)

type RespShip struct {
	Length      int              `json:"length"`
	Coordinates []mb.Coordinates `json:"coordinates"`
}

type RespCreateGame struct {
	GameUuid   string     `json:"game_uuid"`
	PlayerUuid string     `json:"player_uuid"`
	Fleet      []RespShip `json:"fleet"`
}

type RespAttack struct {
	X          int  `json:"x"`
	Y          int  `json:"y"`
	Hit        bool `json:"hit"`
	Sunk       bool `json:"sunk"`
	ShipLength int  `json:"ship_length,omitempty"`
	IsTurn     bool `json:"is_turn"`
}

type RespEndGame struct {
	Winner            string `json:"winner"`
	PlayerMatchStatus int    `json:"player_match_status"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}

func NewRespShips(ships []*mb.Ship) []RespShip {
	fleet := make([]RespShip, 0, len(ships))
	for _, ship := range ships {
		fleet = append(fleet, RespShip{Length: ship.Length(), Coordinates: ship.Coordinates()})
	}
	return fleet
}

// NewRespAttack reports an outcome; isTurn tells the receiver whether it moves next.
func NewRespAttack(outcome mb.AttackOutcome, isTurn bool) RespAttack {
	return RespAttack{
		X:          outcome.Coordinates.X,
		Y:          outcome.Coordinates.Y,
		Hit:        outcome.Hit,
		Sunk:       outcome.Sunk,
		ShipLength: outcome.ShipLength,
		IsTurn:     isTurn,
	}
}
