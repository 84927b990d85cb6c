package nakama

import (
	"encoding/json"
	"fmt"

	"uno/internal/app"
)

// playMessage is the inbound action payload:
//
//	{"type": "play", "card": <index or null>, "new_color": <color or null>}
//
// A null card means the player draws/picks up.
type playMessage struct {
	Type     string  `json:"type"`
	Card     *int    `json:"card"`
	NewColor *string `json:"new_color"`
}

// waitMessage is sent while the lobby has not reached the required player
// count.
type waitMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// errorMessage is sent only to the client whose action was rejected.
type errorMessage struct {
	Error string `json:"error"`
}

// decodePlayRequest parses and validates an inbound play action.
func decodePlayRequest(data []byte) (app.PlayRequest, error) {
	var msg playMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return app.PlayRequest{}, fmt.Errorf("malformed message: %w", err)
	}
	if msg.Type != "play" {
		return app.PlayRequest{}, fmt.Errorf("malformed message: unknown type %q", msg.Type)
	}
	req := app.PlayRequest{Card: msg.Card}
	if msg.NewColor != nil {
		req.NewColor = *msg.NewColor
	}
	return req, nil
}

// eventOpCode maps an app event kind to its wire opcode.
func eventOpCode(kind app.EventKind) (int64, bool) {
	switch kind {
	case app.EventGameStarted:
		return OpGameStarted, true
	case app.EventStateUpdate:
		return OpStateUpdate, true
	case app.EventGameOver:
		return OpGameOver, true
	}
	return 0, false
}
