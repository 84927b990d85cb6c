package config

import "testing"

func TestLoadGameConfig(t *testing.T) {
	if err := LoadGameConfig("../../data/game_config.json"); err != nil {
		t.Fatalf("LoadGameConfig: %v", err)
	}

	cfg := GetGameConfig()
	if cfg == nil {
		t.Fatal("GetGameConfig() = nil after successful load")
	}
	if cfg.PlayersToStart != 2 {
		t.Errorf("PlayersToStart = %d, want 2", cfg.PlayersToStart)
	}
	if !cfg.BotsEnabled {
		t.Error("BotsEnabled = false, want true")
	}
	if cfg.BotMinDelaySeconds <= 0 || cfg.BotMaxDelaySeconds < cfg.BotMinDelaySeconds {
		t.Errorf("bot delays = [%d, %d], want a positive range", cfg.BotMinDelaySeconds, cfg.BotMaxDelaySeconds)
	}

	// Repeated loads return the cached result regardless of path.
	if err := LoadGameConfig("does_not_exist.json"); err != nil {
		t.Fatalf("second LoadGameConfig: %v", err)
	}
	if GetGameConfig() != cfg {
		t.Error("config reloaded instead of cached")
	}
}
