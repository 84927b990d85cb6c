package app

import (
	"errors"
	"testing"

	"uno/internal/domain"
)

func intPtr(i int) *int { return &i }

func startGame(t *testing.T, players int) (*Service, *domain.Game) {
	t.Helper()
	svc := NewService(nil)
	game, _, err := svc.StartGame(players)
	if err != nil {
		t.Fatalf("StartGame: %v", err)
	}
	return svc, game
}

func TestStartGameEvents(t *testing.T) {
	svc := NewService(nil)
	game, events, err := svc.StartGame(3)
	if err != nil {
		t.Fatalf("StartGame: %v", err)
	}
	if game == nil {
		t.Fatal("StartGame returned nil game")
	}

	var starts, updates int
	for _, ev := range events {
		switch ev.Kind {
		case EventGameStarted:
			payload, ok := ev.Payload.(GameStartedPayload)
			if !ok {
				t.Fatalf("start payload type %T", ev.Payload)
			}
			if len(ev.Recipients) != 1 || ev.Recipients[0] != payload.PlayerID {
				t.Errorf("start event recipients = %v, payload seat %d", ev.Recipients, payload.PlayerID)
			}
			starts++
		case EventStateUpdate:
			view, ok := ev.Payload.(View)
			if !ok {
				t.Fatalf("state payload type %T", ev.Payload)
			}
			if len(ev.Recipients) != 1 || ev.Recipients[0] != view.You {
				t.Errorf("state event recipients = %v, view seat %d", ev.Recipients, view.You)
			}
			updates++
		default:
			t.Errorf("unexpected event kind %q", ev.Kind)
		}
	}
	if starts != 3 || updates != 3 {
		t.Errorf("got %d start and %d state events, want 3 and 3", starts, updates)
	}
}

func TestStartGameTooFewPlayers(t *testing.T) {
	svc := NewService(nil)
	if _, _, err := svc.StartGame(1); !errors.Is(err, domain.ErrInvalidPlayerCount) {
		t.Errorf("StartGame(1) error = %v, want ErrInvalidPlayerCount", err)
	}
}

func TestPlayRuleViolationEmitsNothing(t *testing.T) {
	svc, game := startGame(t, 2)
	wrongSeat := (game.CurrentSeat() + 1) % 2

	events, err := svc.Play(game, wrongSeat, PlayRequest{Card: intPtr(0)})
	if !errors.Is(err, domain.ErrNotYourTurn) {
		t.Fatalf("Play error = %v, want ErrNotYourTurn", err)
	}
	if len(events) != 0 {
		t.Errorf("got %d events, want 0", len(events))
	}
}

func TestPlayRejectsUnknownColor(t *testing.T) {
	svc, game := startGame(t, 2)

	_, err := svc.Play(game, game.CurrentSeat(), PlayRequest{Card: intPtr(0), NewColor: "magenta"})
	if !errors.Is(err, domain.ErrMissingColorChoice) {
		t.Fatalf("Play error = %v, want ErrMissingColorChoice", err)
	}
}

func TestPlayDrawEmitsViews(t *testing.T) {
	svc, game := startGame(t, 2)
	seat := game.CurrentSeat()

	events, err := svc.Play(game, seat, PlayRequest{})
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	for _, ev := range events {
		if ev.Kind != EventStateUpdate {
			t.Errorf("event kind = %q, want state_update", ev.Kind)
		}
	}
	if got := len(game.Players[seat].Hand); got != domain.HandSize+1 {
		t.Errorf("hand size = %d, want %d", got, domain.HandSize+1)
	}
}

func TestPlayGameOverEvent(t *testing.T) {
	svc := NewService(nil)
	game := &domain.Game{
		Discard: []domain.Card{{Color: domain.ColorRed, Kind: domain.KindNumber, Value: 5}},
		Players: []*domain.Player{
			{Seat: 0, Hand: []domain.Card{{Color: domain.ColorRed, Kind: domain.KindNumber, Value: 7}}},
			{Seat: 1, Hand: []domain.Card{{Color: domain.ColorBlue, Kind: domain.KindNumber, Value: 3}}},
		},
		Cycle: domain.NewTurnCycle([]int{0, 1}),
	}
	game.Cycle.Advance()

	events, err := svc.Play(game, 0, PlayRequest{Card: intPtr(0)})
	if err != nil {
		t.Fatalf("Play: %v", err)
	}

	var over *GameOverPayload
	for _, ev := range events {
		if ev.Kind != EventGameOver {
			continue
		}
		payload, ok := ev.Payload.(GameOverPayload)
		if !ok {
			t.Fatalf("game_over payload type %T", ev.Payload)
		}
		if len(ev.Recipients) != 0 {
			t.Errorf("game_over recipients = %v, want broadcast", ev.Recipients)
		}
		over = &payload
	}
	if over == nil {
		t.Fatal("no game_over event emitted")
	}
	if over.Winner != 0 {
		t.Errorf("Winner = %d, want 0", over.Winner)
	}
}
