package app

import (
	"reflect"
	"testing"

	"uno/internal/domain"
)

func TestViewForHidesOtherHands(t *testing.T) {
	game, err := domain.NewGame(3, nil)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	for seat := 0; seat < 3; seat++ {
		view := ViewFor(game, seat)

		if view.You != seat {
			t.Errorf("seat %d: You = %d", seat, view.You)
		}
		if got := len(view.Hand); got != len(game.Players[seat].Hand) {
			t.Errorf("seat %d: len(Hand) = %d, want %d", seat, got, len(game.Players[seat].Hand))
		}
		if got := len(view.Players); got != 3 {
			t.Fatalf("seat %d: len(Players) = %d, want 3", seat, got)
		}
		for _, pv := range view.Players {
			if got := len(game.Players[pv.ID].Hand); pv.HandCount != got {
				t.Errorf("seat %d: player %d HandCount = %d, want %d", seat, pv.ID, pv.HandCount, got)
			}
		}
	}
}

func TestViewForSharedFields(t *testing.T) {
	game, err := domain.NewGame(2, nil)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	view := ViewFor(game, 1)
	if view.Type != "state_update" {
		t.Errorf("Type = %q, want %q", view.Type, "state_update")
	}
	want := CardView{Color: "red", Type: "5"}
	if view.CurrentCard != want {
		t.Errorf("CurrentCard = %v, want %v", view.CurrentCard, want)
	}
	if view.CurrentColor != "red" {
		t.Errorf("CurrentColor = %q, want %q", view.CurrentColor, "red")
	}
	if view.CurrentPlayer != 0 {
		t.Errorf("CurrentPlayer = %d, want 0", view.CurrentPlayer)
	}
}

func TestViewForIsPure(t *testing.T) {
	game, err := domain.NewGame(2, nil)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	first := ViewFor(game, 0)
	second := ViewFor(game, 0)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated projections differ: %v vs %v", first, second)
	}
	if got := game.CardCount(); got != domain.DeckSize {
		t.Errorf("CardCount() = %d, want %d", got, domain.DeckSize)
	}
}
