package bot

import "uno/internal/domain"

// Move represents the decision made by the AI: either draw, or play the
// card at CardIndex (with NewColor set when that card is black).
type Move struct {
	Draw      bool
	CardIndex int
	NewColor  domain.Color
}

// Brain is the interface all bot strategies implement.
type Brain interface {
	CalculateMove(game *domain.Game, player *domain.Player) (Move, error)
}
