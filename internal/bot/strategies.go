package bot

import (
	"math/rand"

	"uno/internal/domain"
)

// BasicBot plays the first playable card in its hand and draws otherwise.
// Black cards get a random color.
type BasicBot struct {
	rng *rand.Rand
}

// CalculateMove scans the hand for a playable card.
func (b *BasicBot) CalculateMove(game *domain.Game, player *domain.Player) (Move, error) {
	top := game.CurrentCard()
	topColor := game.EffectiveColor()
	for i, card := range player.Hand {
		if !domain.Playable(top, topColor, card) {
			continue
		}
		move := Move{CardIndex: i}
		if card.Color == domain.ColorBlack {
			move.NewColor = domain.Colors[b.rng.Intn(len(domain.Colors))]
		}
		return move, nil
	}
	return Move{Draw: true}, nil
}
