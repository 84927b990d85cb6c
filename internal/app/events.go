package app

// EventKind identifies emitted game events for the port layer to dispatch.
type EventKind string

const (
	EventGameStarted EventKind = "start"
	EventStateUpdate EventKind = "state_update"
	EventGameOver    EventKind = "game_over"
)

// Event is a game event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []int // seat indexes; empty means broadcast to all seats
}

// GameStartedPayload is sent once, privately, to each seat when the
// session begins.
type GameStartedPayload struct {
	Type     string `json:"type"`
	PlayerID int    `json:"player_id"`
}

// GameOverPayload names the winning seat.
type GameOverPayload struct {
	Type   string `json:"type"`
	Winner int    `json:"winner"`
}
