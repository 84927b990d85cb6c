package app

import (
	"math/rand"
	"time"

	"uno/internal/domain"
)

// MinPlayersToStartGame is the smallest lobby that can start a game.
const MinPlayersToStartGame = 2

// PlayRequest is a decoded inbound play action. A nil Card means the
// player draws/picks up. NewColor is required when the indexed card is
// black.
type PlayRequest struct {
	Card     *int   `json:"card"`
	NewColor string `json:"new_color"`
}

// Service contains Uno use-cases operating on domain state.
type Service struct {
	rng *rand.Rand
}

// NewService constructs a Service with the provided rng or a time-seeded
// default.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng}
}

// StartGame deals a new game for the given number of seats and emits the
// per-seat start notification plus everyone's initial view.
func (s *Service) StartGame(players int) (*domain.Game, []Event, error) {
	game, err := domain.NewGame(players, s.rng)
	if err != nil {
		return nil, nil, err
	}

	events := make([]Event, 0, players*2)
	for seat := 0; seat < players; seat++ {
		events = append(events, Event{
			Kind:       EventGameStarted,
			Payload:    GameStartedPayload{Type: string(EventGameStarted), PlayerID: seat},
			Recipients: []int{seat},
		})
	}
	events = append(events, stateUpdates(game)...)
	return game, events, nil
}

// Play applies one player action to the game. On success it emits fresh
// per-seat views, plus a game_over broadcast when the action ended the
// game. Rule violations are returned unchanged for the port layer to
// relay to the sender; the game state is untouched by them.
func (s *Service) Play(game *domain.Game, seat int, req PlayRequest) ([]Event, error) {
	var color domain.Color
	if req.NewColor != "" {
		parsed, ok := domain.ParseColor(req.NewColor)
		if !ok {
			return nil, domain.ErrMissingColorChoice
		}
		color = parsed
	}

	if err := game.Play(seat, req.Card, color); err != nil {
		return nil, err
	}

	events := stateUpdates(game)
	if game.Over() {
		events = append(events, Event{
			Kind:    EventGameOver,
			Payload: GameOverPayload{Type: string(EventGameOver), Winner: game.Winner.Seat},
		})
	}
	return events, nil
}

func stateUpdates(game *domain.Game) []Event {
	events := make([]Event, 0, len(game.Players))
	for _, p := range game.Players {
		events = append(events, Event{
			Kind:       EventStateUpdate,
			Payload:    ViewFor(game, p.Seat),
			Recipients: []int{p.Seat},
		})
	}
	return events
}
