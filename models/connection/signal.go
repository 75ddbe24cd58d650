package connection

const (
	CodeCreateGame uint8 = iota
	CodeAttack

	// Sent by the server after it played the computer's turn
	CodeComputerAttack
	CodeEndGame
	CodeInvalidSignal

	// if the req msg does not contain "code" field
	CodeSignalAbsent
)

type Signal struct {
	Code uint8 `json:"code"`
}

func NewSignal(code uint8) Signal {
	return Signal{Code: code}
}
