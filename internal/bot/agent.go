package bot

import (
	"math/rand"
	"time"

	"uno/internal/domain"
)

// Agent represents an autonomous bot player bound to a seat identity.
type Agent struct {
	ID       string
	Name     string
	Strategy Brain
}

// NewAgent creates a bot agent for the given bot user ID.
func NewAgent(userID string) *Agent {
	return &Agent{
		ID:       userID,
		Name:     GetBotDisplayName(userID),
		Strategy: &BasicBot{rng: rand.New(rand.NewSource(time.Now().UnixNano()))},
	}
}

// PlayAtSeat asks the agent to calculate a move for the given seat.
func (a *Agent) PlayAtSeat(game *domain.Game, seat int) (Move, error) {
	var player *domain.Player
	for _, p := range game.Players {
		if p.Seat == seat {
			player = p
			break
		}
	}
	if player == nil {
		return Move{Draw: true}, nil
	}
	return a.Strategy.CalculateMove(game, player)
}
