package nakama

const (
	// RpcQuickMatch is the RPC id clients call to find or create a
	// lobby-capable match.
	RpcQuickMatch = "quick_match"

	// RpcPlayerStats is the RPC id clients call to read their own
	// win/loss record.
	RpcPlayerStats = "player_stats"

	// MatchNameUno is the authoritative match handler name registered
	// with Nakama.
	MatchNameUno = "uno_match"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpPlayCard int64 = 1

	// Server -> Client
	OpWait        int64 = 101
	OpGameStarted int64 = 102
	OpStateUpdate int64 = 103
	OpGameOver    int64 = 104
	OpGameError   int64 = 105
)
