package domain

import "math/rand"

// DeckSize is the size of a full Uno deck.
const DeckSize = 108

// NewDeck returns the complete 108-card deck. With a non-nil rng the deck
// is shuffled; with nil it is returned in reversed build order, which
// keeps dealing deterministic for tests.
//
// Per color: one 0, two each of 1-9, two each of skip/reverse/+2 (25
// cards), plus four wildcards and four +4s.
func NewDeck(rng *rand.Rand) []Card {
	deck := make([]Card, 0, DeckSize)
	for _, color := range Colors {
		deck = append(deck, Card{Color: color, Kind: KindNumber, Value: 0})
		for round := 0; round < 2; round++ {
			for v := 1; v <= 9; v++ {
				deck = append(deck, Card{Color: color, Kind: KindNumber, Value: v})
			}
		}
		for round := 0; round < 2; round++ {
			deck = append(deck,
				Card{Color: color, Kind: KindSkip},
				Card{Color: color, Kind: KindReverse},
				Card{Color: color, Kind: KindDrawTwo},
			)
		}
	}
	for i := 0; i < 4; i++ {
		deck = append(deck,
			Card{Color: ColorBlack, Kind: KindWild},
			Card{Color: ColorBlack, Kind: KindWildDrawFour},
		)
	}

	if rng != nil {
		rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	} else {
		for i, j := 0, len(deck)-1; i < j; i, j = i+1, j-1 {
			deck[i], deck[j] = deck[j], deck[i]
		}
	}
	return deck
}
