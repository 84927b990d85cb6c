package app

import "uno/internal/domain"

// CardView is a card as clients see it. Type uses the wire vocabulary:
// "0".."9", "skip", "reverse", "+2", "wildcard", "+4".
type CardView struct {
	Color string `json:"color"`
	Type  string `json:"type"`
}

// PlayerView summarizes an opponent: identity and hand size only.
type PlayerView struct {
	ID        int `json:"id"`
	HandCount int `json:"hand_count"`
}

// View is the restricted projection of a game sent to one recipient. The
// recipient's own hand is included in full; every other hand appears only
// as a count.
type View struct {
	Type          string       `json:"type"`
	CurrentCard   CardView     `json:"current_card"`
	CurrentColor  string       `json:"current_color"`
	CurrentPlayer int          `json:"current_player"`
	You           int          `json:"you"`
	Hand          []CardView   `json:"hand"`
	Players       []PlayerView `json:"players"`
}

func toCardView(c domain.Card) CardView {
	return CardView{Color: string(c.Color), Type: c.Label()}
}

// ViewFor derives the view of game appropriate for the given seat. It is
// pure: same inputs, same output, no mutation.
func ViewFor(game *domain.Game, seat int) View {
	view := View{
		Type:          string(EventStateUpdate),
		CurrentCard:   toCardView(game.CurrentCard()),
		CurrentColor:  string(game.EffectiveColor()),
		CurrentPlayer: game.CurrentSeat(),
		You:           seat,
		Hand:          []CardView{},
		Players:       make([]PlayerView, 0, len(game.Players)),
	}
	for _, p := range game.Players {
		view.Players = append(view.Players, PlayerView{ID: p.Seat, HandCount: len(p.Hand)})
		if p.Seat == seat {
			for _, c := range p.Hand {
				view.Hand = append(view.Hand, toCardView(c))
			}
		}
	}
	return view
}
