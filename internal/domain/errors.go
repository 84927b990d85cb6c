package domain

import "errors"

// Rule violations surfaced by the engine. Rejections happen before any
// state change, so the session layer can relay them to the offending
// client and keep the match running. ErrDeckExhausted is the exception:
// a penalty draw that runs short reports it after drawing what existed.
var (
	ErrInvalidCard        = errors.New("invalid card: color and type do not pair")
	ErrInvalidPlayerCount = errors.New("invalid game: must be between 2 and 15 players")
	ErrInvalidSeat        = errors.New("invalid player: index out of range")
	ErrNotYourTurn        = errors.New("invalid player: not their turn")
	ErrIndexOutOfRange    = errors.New("invalid card: index out of range")
	ErrCardNotPlayable    = errors.New("invalid card: not playable on current card")
	ErrMissingColorChoice = errors.New("invalid new_color: must be red, yellow, green or blue")
	ErrGameOver           = errors.New("game is over")
	ErrDeckExhausted      = errors.New("deck exhausted")
)
