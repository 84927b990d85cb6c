package domain

import "math/rand"

// HandSize is the number of cards dealt to each player at game start.
const HandSize = 7

// Player is one seat in a game. Seats are stable 0-based indexes and
// survive disconnects; the session layer owns the mapping from network
// identity to seat.
type Player struct {
	Seat int
	Hand []Card
}

// Game is the authoritative rule engine for one Uno match: draw pile,
// discard pile, players and turn cycle. All mutation goes through Play.
type Game struct {
	Draw    []Card // top of the draw pile is the last element
	Discard []Card // top of the discard pile is the last element

	// TempColor is the color assigned to the discard top when it is a
	// wild card. ColorNone otherwise.
	TempColor Color

	Players []*Player
	Cycle   *TurnCycle
	Winner  *Player // nil until the game is over

	rng *rand.Rand
}

// NewGame deals a fresh game for the given number of players. A nil rng
// produces the deterministic unshuffled deck and skips the random color
// pick for a black first discard (it stays red, the first color).
func NewGame(players int, rng *rand.Rand) (*Game, error) {
	if players < 2 || players > 15 {
		return nil, ErrInvalidPlayerCount
	}

	g := &Game{
		Draw: NewDeck(rng),
		rng:  rng,
	}

	seats := make([]int, players)
	for seat := 0; seat < players; seat++ {
		p := &Player{Seat: seat, Hand: make([]Card, 0, HandSize)}
		for i := 0; i < HandSize; i++ {
			p.Hand = append(p.Hand, g.popDraw())
		}
		g.Players = append(g.Players, p)
		seats[seat] = seat
	}

	// Flip the first discard. If it is black it gets a color straight
	// away so the opening play has something to match against; its other
	// effects do not fire.
	g.Discard = append(g.Discard, g.popDraw())
	if g.CurrentCard().Color == ColorBlack {
		g.TempColor = Colors[0]
		if rng != nil {
			g.TempColor = Colors[rng.Intn(len(Colors))]
		}
	}

	g.Cycle = NewTurnCycle(seats)
	g.Cycle.Advance()
	return g, nil
}

// CurrentCard returns the discard top: the most recently played card.
func (g *Game) CurrentCard() Card {
	return g.Discard[len(g.Discard)-1]
}

// EffectiveColor returns the color the next play must match: the discard
// top's temporary color when set, else its true color.
func (g *Game) EffectiveColor() Color {
	if g.TempColor != ColorNone {
		return g.TempColor
	}
	return g.CurrentCard().Color
}

// CurrentSeat returns the seat whose turn it is.
func (g *Game) CurrentSeat() int {
	seat, _ := g.Cycle.Current()
	return seat
}

// Over reports whether a winner has been decided.
func (g *Game) Over() bool {
	return g.Winner != nil
}

// Play is the single validated transition of the engine.
//
// A nil cardIndex means the player draws one card and forfeits the turn.
// Otherwise the indexed hand card is played; newColor is required when
// that card is black and ignored otherwise. All rejections happen before
// any state changes.
func (g *Game) Play(seat int, cardIndex *int, newColor Color) error {
	if g.Winner != nil {
		return ErrGameOver
	}
	if seat < 0 || seat >= len(g.Players) {
		return ErrInvalidSeat
	}
	player := g.Players[seat]
	if g.CurrentSeat() != seat {
		return ErrNotYourTurn
	}

	if cardIndex == nil {
		// Picking up is a full turn.
		if g.available() < 1 {
			return ErrDeckExhausted
		}
		g.drawInto(player, 1)
		g.Cycle.Advance()
		return nil
	}

	idx := *cardIndex
	if idx < 0 || idx >= len(player.Hand) {
		return ErrIndexOutOfRange
	}
	card := player.Hand[idx]
	if !Playable(g.CurrentCard(), g.EffectiveColor(), card) {
		return ErrCardNotPlayable
	}
	if card.Color == ColorBlack {
		if _, ok := ParseColor(string(newColor)); !ok {
			return ErrMissingColorChoice
		}
	}

	// Move the card from hand to discard top.
	player.Hand = append(player.Hand[:idx], player.Hand[idx+1:]...)
	g.Discard = append(g.Discard, card)
	if card.Color == ColorBlack {
		g.TempColor = newColor
	} else {
		g.TempColor = ColorNone
	}

	var drawErr error
	switch card.Kind {
	case KindSkip:
		g.Cycle.Advance()
	case KindReverse:
		g.Cycle.Reverse()
	case KindDrawTwo:
		g.Cycle.Advance()
		drawErr = g.drawInto(g.Players[g.CurrentSeat()], 2)
	case KindWildDrawFour:
		g.Cycle.Advance()
		drawErr = g.drawInto(g.Players[g.CurrentSeat()], 4)
	case KindWild, KindNumber:
		// No extra effect.
	}

	if len(player.Hand) == 0 {
		g.Winner = player
		return drawErr
	}
	g.Cycle.Advance()
	return drawErr
}

// CardCount returns the total number of cards across piles and hands.
// It is DeckSize at all times for a well-formed game.
func (g *Game) CardCount() int {
	n := len(g.Draw) + len(g.Discard)
	for _, p := range g.Players {
		n += len(p.Hand)
	}
	return n
}

// available is the number of cards that can still be drawn: the draw pile
// plus the reshufflable part of the discard pile (everything but its top).
func (g *Game) available() int {
	return len(g.Draw) + len(g.Discard) - 1
}

// drawInto moves up to n cards from the draw pile into the player's hand,
// reshuffling the discard pile (minus its top) into the draw pile when it
// runs dry. Returns ErrDeckExhausted if fewer than n cards existed; the
// cards that were available have still been drawn.
func (g *Game) drawInto(player *Player, n int) error {
	for i := 0; i < n; i++ {
		if len(g.Draw) == 0 {
			g.reshuffle()
		}
		if len(g.Draw) == 0 {
			return ErrDeckExhausted
		}
		player.Hand = append(player.Hand, g.popDraw())
	}
	return nil
}

// reshuffle folds the discard pile, excluding the current card, back into
// the draw pile so long games with heavy penalty chains stay alive.
func (g *Game) reshuffle() {
	if len(g.Discard) <= 1 {
		return
	}
	top := g.Discard[len(g.Discard)-1]
	g.Draw = append(g.Draw, g.Discard[:len(g.Discard)-1]...)
	g.Discard = g.Discard[:0]
	g.Discard = append(g.Discard, top)
	if g.rng != nil {
		g.rng.Shuffle(len(g.Draw), func(i, j int) { g.Draw[i], g.Draw[j] = g.Draw[j], g.Draw[i] })
	}
}

func (g *Game) popDraw() Card {
	card := g.Draw[len(g.Draw)-1]
	g.Draw = g.Draw[:len(g.Draw)-1]
	return card
}
