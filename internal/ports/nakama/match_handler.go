package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"math/rand"
	"strconv"

	"uno/internal/app"
	"uno/internal/bot"
	"uno/internal/config"
	"uno/internal/domain"
	"uno/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

const (
	defaultPlayersToStart    = 2
	defaultBotMinDelay       = 1
	defaultBotMaxDelay       = 3
	defaultBotAutoFillDelay  = 5
	defaultSeatTakeoverDelay = 30

	waitForPlayersMessage = "Please wait until another client connects to the game."
)

// Label advertises the match for listing queries.
type Label struct {
	Open  int    `json:"open"`
	Game  string `json:"game"`
	Phase string `json:"phase"`
}

// MatchState holds the authoritative runtime state for one Uno match.
type MatchState struct {
	Seats     []string                    // seat index -> user ID, "" when empty
	Presences map[string]runtime.Presence // user ID -> presence for targeted messaging

	App   *app.Service
	Game  *domain.Game // nil while in lobby
	Stats ports.StatsPort

	PlayersToStart int

	BotsEnabled       bool
	BotMinDelay       int
	BotMaxDelay       int
	BotAutoFillDelay  int
	SeatTakeoverDelay int
	Bots              map[string]*bot.Agent

	Tick                 int64
	BotWaitUntil         int64
	LastSinglePlayerTick int64
	DisconnectedSince    map[int]int64 // seat -> tick the presence dropped

	StatsRecorded bool
}

// GetOpenSeatsCount returns the number of unoccupied seats.
func (ms *MatchState) GetOpenSeatsCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat == "" {
			count++
		}
	}
	return count
}

// GetOccupiedSeatCount returns the number of occupied seats.
func (ms *MatchState) GetOccupiedSeatCount() int {
	return len(ms.Seats) - ms.GetOpenSeatsCount()
}

// GetHumanPlayerCount returns the number of seats held by humans.
func (ms *MatchState) GetHumanPlayerCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" && !bot.IsBot(seat) {
			count++
		}
	}
	return count
}

// seatOf returns the seat index held by the user, or -1.
func seatOf(seats []string, userID string) int {
	for i, uid := range seats {
		if uid == userID {
			return i
		}
	}
	return -1
}

// findFirstHumanSeat returns the first seat index with a human occupant or
// -1 if none exist.
func findFirstHumanSeat(seats []string) int {
	for i, userID := range seats {
		if userID != "" && !bot.IsBot(userID) {
			return i
		}
	}
	return -1
}

// shouldTerminateNoHumans returns true when there are no humans in the match.
func shouldTerminateNoHumans(seats []string) bool {
	return findFirstHumanSeat(seats) == -1
}

type matchHandler struct{}

func newMatchHandler() *matchHandler {
	return &matchHandler{}
}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing match handler.")

	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("MatchInit: Could not load game config: %v", err)
	}
	if err := bot.LoadIdentities("data/bot_identities.json"); err != nil {
		logger.Warn("MatchInit: Could not load bot identities: %v", err)
	}

	state := &MatchState{
		Presences:         make(map[string]runtime.Presence),
		App:               app.NewService(nil),
		Stats:             NewNakamaStatsAdapter(nk),
		Bots:              make(map[string]*bot.Agent),
		DisconnectedSince: make(map[int]int64),
		PlayersToStart:    defaultPlayersToStart,
		BotMinDelay:       defaultBotMinDelay,
		BotMaxDelay:       defaultBotMaxDelay,
		BotAutoFillDelay:  defaultBotAutoFillDelay,
		SeatTakeoverDelay: defaultSeatTakeoverDelay,
	}

	if cfg := config.GetGameConfig(); cfg != nil {
		if cfg.PlayersToStart >= app.MinPlayersToStartGame {
			state.PlayersToStart = cfg.PlayersToStart
		}
		state.BotsEnabled = cfg.BotsEnabled
		if cfg.BotMinDelaySeconds > 0 {
			state.BotMinDelay = cfg.BotMinDelaySeconds
		}
		if cfg.BotMaxDelaySeconds > 0 {
			state.BotMaxDelay = cfg.BotMaxDelaySeconds
		}
		if cfg.BotAutoFillDelaySeconds > 0 {
			state.BotAutoFillDelay = cfg.BotAutoFillDelaySeconds
		}
		if cfg.SeatTakeoverDelaySeconds > 0 {
			state.SeatTakeoverDelay = cfg.SeatTakeoverDelaySeconds
		}
	}

	// Match creation params and environment variables override the file.
	if v, ok := params["players"].(float64); ok && int(v) >= app.MinPlayersToStartGame {
		state.PlayersToStart = int(v)
	}
	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	if val, ok := env["uno_players_to_start"]; ok {
		if i, err := strconv.Atoi(val); err == nil && i >= app.MinPlayersToStartGame {
			state.PlayersToStart = i
		}
	}
	if val, ok := env["uno_bots_enabled"]; ok {
		state.BotsEnabled = val == "true"
	}
	if val, ok := env["uno_bot_min_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotMinDelay = i
		}
	}
	if val, ok := env["uno_bot_max_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotMaxDelay = i
		}
	}
	if val, ok := env["uno_bot_auto_fill_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotAutoFillDelay = i
		}
	}
	if val, ok := env["uno_seat_takeover_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.SeatTakeoverDelay = i
		}
	}

	state.Seats = make([]string, state.PlayersToStart)

	labelBytes, err := json.Marshal(Label{Open: state.GetOpenSeatsCount(), Game: "uno", Phase: "lobby"})
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}

	tickRate := 1
	return state, tickRate, string(labelBytes)
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// A player whose seat survived a disconnect may always rejoin.
	if seatOf(matchState.Seats, presence.GetUserId()) >= 0 {
		return state, true, ""
	}

	if matchState.Game != nil {
		return state, false, "match_in_progress"
	}

	if matchState.GetOpenSeatsCount() <= 0 {
		hasBot := false
		for _, seat := range matchState.Seats {
			if bot.IsBot(seat) {
				hasBot = true
				break
			}
		}
		if !hasBot {
			return state, false, "match_full"
		}
	}

	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p

		// Reconnect: the seat and hand are intact, resend the private view.
		if seat := seatOf(matchState.Seats, p.GetUserId()); seat >= 0 {
			delete(matchState.DisconnectedSince, seat)
			if matchState.Game != nil {
				mh.sendSeatState(matchState, dispatcher, logger, seat)
			}
			continue
		}

		assigned := -1
		for i, seatUserId := range matchState.Seats {
			if seatUserId == "" {
				matchState.Seats[i] = p.GetUserId()
				assigned = i
				break
			}
		}
		if assigned < 0 {
			for i, seatUserId := range matchState.Seats {
				if bot.IsBot(seatUserId) {
					logger.Info("MatchJoin: Replacing bot %s with human %s in seat %d", seatUserId, p.GetUserId(), i)
					delete(matchState.Bots, seatUserId)
					matchState.Seats[i] = p.GetUserId()
					assigned = i
					break
				}
			}
		}
		if assigned < 0 {
			logger.Warn("MatchJoin: User %s joined but no seat was available.", p.GetUserId())
			continue
		}

		if matchState.Game == nil && matchState.GetOccupiedSeatCount() < matchState.PlayersToStart {
			mh.sendWait(matchState, dispatcher, logger, p)
		}
	}

	mh.maybeStartGame(matchState, dispatcher, logger)
	mh.updateLabel(matchState, dispatcher, logger)

	return matchState
}

// MatchLeave keeps the seat and hand of a player who drops mid-game; the
// game waits on that seat (or hands it to a bot after the takeover delay)
// rather than forfeiting. Lobby seats are freed immediately.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())

		seat := seatOf(matchState.Seats, p.GetUserId())
		if seat < 0 {
			continue
		}
		if matchState.Game == nil {
			matchState.Seats[seat] = ""
			logger.Debug("MatchLeave: User %s left, seat %d freed.", p.GetUserId(), seat)
		} else {
			matchState.DisconnectedSince[seat] = tick
			logger.Debug("MatchLeave: User %s disconnected, seat %d retained.", p.GetUserId(), seat)
		}
	}

	if shouldTerminateNoHumans(matchState.Seats) {
		logger.Info("MatchLeave: Terminating match with no humans.")
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)

	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpPlayCard:
			mh.handlePlay(ctx, matchState, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	if matchState.BotsEnabled {
		mh.processBots(ctx, matchState, dispatcher, logger)
	}

	return matchState
}

func (mh *matchHandler) handlePlay(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	seat := seatOf(state.Seats, senderID)
	if seat < 0 {
		logger.Warn("handlePlay: Message from user %s without a seat.", senderID)
		return
	}

	if state.Game == nil {
		mh.sendError(state, dispatcher, logger, senderID, "game has not started")
		return
	}

	req, err := decodePlayRequest(msg.GetData())
	if err != nil {
		logger.Warn("handlePlay: User %s sent a bad payload: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, err.Error())
		return
	}

	events, err := state.App.Play(state.Game, seat, req)
	if err != nil {
		logger.Warn("handlePlay: User %s (seat %d) rejected: %v", senderID, seat, err)
		mh.sendError(state, dispatcher, logger, senderID, err.Error())
		return
	}

	mh.dispatchEvents(state, dispatcher, logger, events)
	mh.afterPlay(ctx, state, dispatcher, logger)
}

// afterPlay handles terminal bookkeeping once a successful transition has
// been broadcast: statistics and label downgrades.
func (mh *matchHandler) afterPlay(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.Game == nil || !state.Game.Over() {
		return
	}
	mh.recordResults(ctx, state, logger)
	mh.updateLabel(state, dispatcher, logger)
}

func (mh *matchHandler) recordResults(ctx context.Context, state *MatchState, logger runtime.Logger) {
	if state.StatsRecorded || state.Stats == nil {
		return
	}
	state.StatsRecorded = true

	winnerSeat := state.Game.Winner.Seat
	for seat, userID := range state.Seats {
		if userID == "" || bot.IsBot(userID) {
			continue
		}
		if err := state.Stats.RecordResult(ctx, userID, seat == winnerSeat); err != nil {
			logger.Error("recordResults: Failed to record result for %s: %v", userID, err)
		}
	}
}

func (mh *matchHandler) processBots(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	// Auto-fill the lobby with bots when a single human has been waiting
	// long enough.
	if state.Game == nil {
		humanCount := state.GetHumanPlayerCount()
		if humanCount == 1 {
			if state.LastSinglePlayerTick == 0 {
				state.LastSinglePlayerTick = state.Tick
				logger.Debug("processBots: Single player detected, starting auto-fill timer.")
			}

			if state.Tick-state.LastSinglePlayerTick >= int64(state.BotAutoFillDelay) {
				added := false
				for i, seat := range state.Seats {
					if seat == "" {
						identity := bot.GetBotIdentity(i)
						state.Seats[i] = identity.UserID
						state.Bots[identity.UserID] = bot.NewAgent(identity.UserID)
						logger.Info("processBots: Added bot %s (%s) to seat %d", identity.DisplayName, identity.UserID, i)
						added = true
					}
				}
				if added {
					mh.maybeStartGame(state, dispatcher, logger)
					mh.updateLabel(state, dispatcher, logger)
				}
				state.LastSinglePlayerTick = 0
			}
		} else {
			state.LastSinglePlayerTick = 0
		}
		return
	}

	if state.Game.Over() {
		return
	}

	// In-game: act for bot seats, and for abandoned human seats once the
	// takeover delay has elapsed.
	currentSeat := state.Game.CurrentSeat()
	currentUserID := state.Seats[currentSeat]

	actAsBot := bot.IsBot(currentUserID)
	if !actAsBot {
		since, disconnected := state.DisconnectedSince[currentSeat]
		if disconnected && state.SeatTakeoverDelay > 0 && state.Tick-since >= int64(state.SeatTakeoverDelay) {
			actAsBot = true
		}
	}
	if !actAsBot {
		state.BotWaitUntil = 0
		return
	}

	if state.BotWaitUntil == 0 {
		delay := state.BotMinDelay
		if state.BotMaxDelay > state.BotMinDelay {
			delay += rand.Intn(state.BotMaxDelay - state.BotMinDelay + 1)
		}
		state.BotWaitUntil = state.Tick + int64(delay)
		logger.Debug("processBots: Seat %d (user %s) will act at tick %d", currentSeat, currentUserID, state.BotWaitUntil)
		return
	}
	if state.Tick < state.BotWaitUntil {
		return
	}
	state.BotWaitUntil = 0

	agent, exists := state.Bots[currentUserID]
	if !exists {
		agent = bot.NewAgent(currentUserID)
		state.Bots[currentUserID] = agent
	}

	move, err := agent.PlayAtSeat(state.Game, currentSeat)
	if err != nil {
		logger.Error("processBots: Seat %d failed to calculate move: %v", currentSeat, err)
		return
	}

	req := app.PlayRequest{NewColor: string(move.NewColor)}
	if !move.Draw {
		idx := move.CardIndex
		req.Card = &idx
	}

	events, err := state.App.Play(state.Game, currentSeat, req)
	if err != nil {
		logger.Error("processBots: Seat %d move rejected: %v", currentSeat, err)
		return
	}
	mh.dispatchEvents(state, dispatcher, logger, events)
	mh.afterPlay(ctx, state, dispatcher, logger)
}

// maybeStartGame deals a new game once the lobby holds the configured
// player count.
func (mh *matchHandler) maybeStartGame(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.Game != nil {
		return
	}
	if state.GetOccupiedSeatCount() < state.PlayersToStart {
		return
	}

	game, events, err := state.App.StartGame(state.PlayersToStart)
	if err != nil {
		logger.Error("maybeStartGame: Failed to start game: %v", err)
		return
	}
	state.Game = game
	state.StatsRecorded = false

	logger.Info("maybeStartGame: Game started with %d players.", state.PlayersToStart)
	mh.dispatchEvents(state, dispatcher, logger, events)
}

// sendSeatState resends the start notice and current view to one seat,
// used when a player reconnects mid-game.
func (mh *matchHandler) sendSeatState(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, seat int) {
	events := []app.Event{
		{
			Kind:       app.EventGameStarted,
			Payload:    app.GameStartedPayload{Type: string(app.EventGameStarted), PlayerID: seat},
			Recipients: []int{seat},
		},
		{
			Kind:       app.EventStateUpdate,
			Payload:    app.ViewFor(state.Game, seat),
			Recipients: []int{seat},
		},
	}
	mh.dispatchEvents(state, dispatcher, logger, events)
}

func (mh *matchHandler) sendWait(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, presence runtime.Presence) {
	payload, err := json.Marshal(waitMessage{Type: "wait", Message: waitForPlayersMessage})
	if err != nil {
		logger.Error("sendWait: Failed to marshal wait message: %v", err)
		return
	}
	if err := dispatcher.BroadcastMessage(OpWait, payload, []runtime.Presence{presence}, nil, true); err != nil {
		logger.Error("sendWait: Broadcast failed: %v", err)
	}
}

// dispatchEvents converts app events to opcode broadcasts. Targeted events
// whose recipients are all unconnected (bots, dropped seats) are skipped
// rather than leaked to everyone.
func (mh *matchHandler) dispatchEvents(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, events []app.Event) {
	for _, ev := range events {
		opCode, ok := eventOpCode(ev.Kind)
		if !ok {
			logger.Warn("dispatchEvents: Unknown event kind: %v", ev.Kind)
			continue
		}

		payload, err := json.Marshal(ev.Payload)
		if err != nil {
			logger.Error("dispatchEvents: Failed to marshal event %v: %v", ev.Kind, err)
			continue
		}

		var recipients []runtime.Presence
		if len(ev.Recipients) > 0 {
			for _, seat := range ev.Recipients {
				if seat < 0 || seat >= len(state.Seats) {
					continue
				}
				if p, ok := state.Presences[state.Seats[seat]]; ok {
					recipients = append(recipients, p)
				}
			}
			if len(recipients) == 0 {
				continue
			}
		}

		if err := dispatcher.BroadcastMessage(opCode, payload, recipients, nil, true); err != nil {
			logger.Error("dispatchEvents: Broadcast failed for event %v: %v", ev.Kind, err)
		}
	}
}

// sendError reports a rejected action to the offending client only.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, message string) {
	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("sendError: Cannot send error to %s: presence not found", userID)
		return
	}

	payload, err := json.Marshal(errorMessage{Error: message})
	if err != nil {
		logger.Error("sendError: Failed to marshal error message: %v", err)
		return
	}
	if err := dispatcher.BroadcastMessage(OpGameError, payload, []runtime.Presence{presence}, nil, true); err != nil {
		logger.Error("sendError: Broadcast failed: %v", err)
	}
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	phase := "lobby"
	if state.Game != nil {
		phase = "playing"
		if state.Game.Over() {
			phase = "ended"
		}
	}

	labelBytes, err := json.Marshal(Label{Open: state.GetOpenSeatsCount(), Game: "uno", Phase: phase})
	if err != nil {
		logger.Error("updateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(string(labelBytes)); err != nil {
		logger.Error("updateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: Match terminated for reason %d", reason)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
