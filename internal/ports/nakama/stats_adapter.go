package nakama

import (
	"context"
	"encoding/json"
	"fmt"

	"uno/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

const (
	statsCollection = "player_stats"
	statsKey        = "record_v1"
)

// NakamaStatsAdapter implements ports.StatsPort on Nakama storage. One
// object per user holds the running counters; writes use the read version
// so concurrent match ends cannot clobber each other.
type NakamaStatsAdapter struct {
	nk runtime.NakamaModule
}

// NewNakamaStatsAdapter creates a new stats adapter.
func NewNakamaStatsAdapter(nk runtime.NakamaModule) *NakamaStatsAdapter {
	return &NakamaStatsAdapter{nk: nk}
}

// GetStats returns the player's record; a zeroed record when none exists.
func (a *NakamaStatsAdapter) GetStats(ctx context.Context, userID string) (ports.PlayerStats, error) {
	stats, _, err := a.read(ctx, userID)
	return stats, err
}

// RecordResult increments the player's counters for one finished game.
func (a *NakamaStatsAdapter) RecordResult(ctx context.Context, userID string, won bool) error {
	stats, version, err := a.read(ctx, userID)
	if err != nil {
		return err
	}

	stats.TotalPlayed++
	if won {
		stats.TotalWins++
	} else {
		stats.TotalDefeats++
	}

	value, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal player stats: %w", err)
	}

	writes := []*runtime.StorageWrite{
		{
			Collection:      statsCollection,
			Key:             statsKey,
			UserID:          userID,
			Value:           string(value),
			Version:         version,
			PermissionRead:  runtime.STORAGE_PERMISSION_OWNER_READ,
			PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
		},
	}
	if _, err := a.nk.StorageWrite(ctx, writes); err != nil {
		return fmt.Errorf("failed to write player stats: %w", err)
	}
	return nil
}

// EnsureRecord creates the zeroed record for a new account. Creation uses
// the "*" version so an existing record is never overwritten.
func (a *NakamaStatsAdapter) EnsureRecord(ctx context.Context, userID string) error {
	value, err := json.Marshal(ports.PlayerStats{UserID: userID})
	if err != nil {
		return fmt.Errorf("failed to marshal player stats: %w", err)
	}

	writes := []*runtime.StorageWrite{
		{
			Collection:      statsCollection,
			Key:             statsKey,
			UserID:          userID,
			Value:           string(value),
			Version:         "*",
			PermissionRead:  runtime.STORAGE_PERMISSION_OWNER_READ,
			PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
		},
	}
	if _, err := a.nk.StorageWrite(ctx, writes); err != nil {
		return fmt.Errorf("failed to create player stats: %w", err)
	}
	return nil
}

func (a *NakamaStatsAdapter) read(ctx context.Context, userID string) (ports.PlayerStats, string, error) {
	if userID == "" {
		return ports.PlayerStats{}, "", fmt.Errorf("userID is required")
	}

	reads := []*runtime.StorageRead{
		{Collection: statsCollection, Key: statsKey, UserID: userID},
	}
	objects, err := a.nk.StorageRead(ctx, reads)
	if err != nil {
		return ports.PlayerStats{}, "", fmt.Errorf("failed to read player stats: %w", err)
	}
	if len(objects) == 0 {
		return ports.PlayerStats{UserID: userID}, "", nil
	}

	var stats ports.PlayerStats
	if err := json.Unmarshal([]byte(objects[0].Value), &stats); err != nil {
		return ports.PlayerStats{}, "", fmt.Errorf("failed to unmarshal player stats: %w", err)
	}
	if stats.UserID == "" {
		stats.UserID = userID
	}
	return stats, objects[0].Version, nil
}

var _ ports.StatsPort = (*NakamaStatsAdapter)(nil)
