package ports

import "context"

// PlayerStats is the persisted per-player record.
type PlayerStats struct {
	UserID       string `json:"user_id"`
	TotalPlayed  int64  `json:"total_played"`
	TotalWins    int64  `json:"total_wins"`
	TotalDefeats int64  `json:"total_defeats"`
}

// StatsPort records and reads win/loss statistics. The engine only needs
// RecordResult at game over; reads serve the stats RPC.
type StatsPort interface {
	// RecordResult increments the player's counters for one finished
	// game. won=true counts a win, otherwise a defeat.
	RecordResult(ctx context.Context, userID string, won bool) error

	// GetStats returns the player's record, creating a zeroed one if the
	// player has never finished a game.
	GetStats(ctx context.Context, userID string) (PlayerStats, error)
}
