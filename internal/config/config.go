package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// GameConfig holds the tunable match settings loaded at module init.
type GameConfig struct {
	// PlayersToStart is how many connected players a lobby waits for
	// before dealing.
	PlayersToStart int `json:"players_to_start"`
	// BotsEnabled allows AI agents to fill lobbies and take over
	// abandoned seats.
	BotsEnabled bool `json:"bots_enabled"`
	// BotMinDelaySeconds/BotMaxDelaySeconds bound how long a bot waits
	// before acting on its turn.
	BotMinDelaySeconds int `json:"bot_min_delay_sec"`
	BotMaxDelaySeconds int `json:"bot_max_delay_sec"`
	// BotAutoFillDelaySeconds is how long a solo human lobby waits
	// before bots fill the remaining seats.
	BotAutoFillDelaySeconds int `json:"bot_auto_fill_delay_sec"`
	// SeatTakeoverDelaySeconds is how long a disconnected player's turn
	// may stall before a bot takes over the seat. Zero disables takeover
	// and the game waits indefinitely.
	SeatTakeoverDelaySeconds int `json:"seat_takeover_delay_sec"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration, or nil when no
// config file was loaded.
func GetGameConfig() *GameConfig {
	return cfg
}
