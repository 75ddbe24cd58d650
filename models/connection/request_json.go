package connection

import (
	mb "github.com/saeidalz13/battleship-engine/models/battleship"
)

type ReqCreateGame struct {
	PlayerName  string `json:"player_name"`
	RandomFleet bool   `json:"random_fleet"`

	// Ignored when RandomFleet is set. Empty means the default fleet.
	Fleet []mb.ShipPlacement `json:"fleet,omitempty"`
}

type ReqAttack struct {
	X int `json:"x"`
	Y int `json:"y"`
}
