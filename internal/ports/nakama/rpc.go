package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/heroiclabs/nakama-common/runtime"
)

// QuickMatchRequest optionally carries the desired lobby size.
type QuickMatchRequest struct {
	Players int `json:"players"`
}

// QuickMatchResponse is the payload returned to clients when requesting a
// lobby-capable match.
type QuickMatchResponse struct {
	MatchID string `json:"match_id"`
	IsNew   bool   `json:"is_new"`
}

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer) error {
	if err := initializer.RegisterRpc(RpcQuickMatch, rpcQuickMatch); err != nil {
		return err
	}
	return initializer.RegisterRpc(RpcPlayerStats, rpcPlayerStats)
}

func rpcQuickMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var request QuickMatchRequest
	if payload != "" {
		if err := json.Unmarshal([]byte(payload), &request); err != nil {
			logger.Warn("rpcQuickMatch: Bad payload: %v", err)
		}
	}

	// Find any open Uno lobby.
	query := "+label.open:>=1 +label.game:uno +label.phase:lobby"

	limit := 10
	authoritative := true
	minSize := 0
	maxSize := 16

	matches, err := nk.MatchList(ctx, limit, authoritative, "", &minSize, &maxSize, query)
	if err != nil {
		logger.Error("MatchList error: %v", err)
		return "", err
	}

	if len(matches) > 0 {
		resp := QuickMatchResponse{MatchID: matches[0].MatchId, IsNew: false}
		b, _ := json.Marshal(resp)
		return string(b), nil
	}

	// Create a new match; seat assignment happens in MatchJoin
	// (server-authoritative).
	params := map[string]interface{}{}
	if request.Players > 0 {
		params["players"] = float64(request.Players)
	}
	matchID, err := nk.MatchCreate(ctx, MatchNameUno, params)
	if err != nil {
		logger.Error("MatchCreate error: %v", err)
		return "", err
	}

	resp := QuickMatchResponse{MatchID: matchID, IsNew: true}
	b, _ := json.Marshal(resp)
	return string(b), nil
}

// rpcPlayerStats returns the caller's win/loss record.
func rpcPlayerStats(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if userID == "" {
		return "", runtime.NewError("rpc requires an authenticated user", 16)
	}

	stats, err := NewNakamaStatsAdapter(nk).GetStats(ctx, userID)
	if err != nil {
		logger.Error("rpcPlayerStats: Failed to read stats for %s: %v", userID, err)
		return "", err
	}

	b, err := json.Marshal(stats)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
