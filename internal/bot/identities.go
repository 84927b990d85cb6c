package bot

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
)

// BotIdentity describes one entry of the bot profile pool.
type BotIdentity struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

var (
	botIdentities     []BotIdentity
	botIDMap          map[string]bool
	botDisplayNameMap map[string]string
	identityMu        sync.Mutex
	loadOnce          sync.Once
	loadErr           error
)

// LoadIdentities loads the bot profiles from the given path. Identities
// without a user ID get a generated one; a missing file is not fatal,
// identities are then generated on demand.
func LoadIdentities(path string) error {
	loadOnce.Do(func() {
		botIDMap = make(map[string]bool)
		botDisplayNameMap = make(map[string]string)

		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read bot identities: %w", err)
			return
		}
		if err := json.Unmarshal(data, &botIdentities); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal bot identities: %w", err)
			return
		}
		for i := range botIdentities {
			if botIdentities[i].UserID == "" {
				botIdentities[i].UserID = newBotUserID()
			}
			mapIdentity(botIdentities[i])
		}
	})
	return loadErr
}

func mapIdentity(identity BotIdentity) {
	botIDMap[identity.UserID] = true
	name := identity.DisplayName
	if name == "" {
		name = identity.Username
	}
	botDisplayNameMap[identity.UserID] = name
}

// newBotUserID mints a user ID that cannot collide with a Nakama account.
func newBotUserID() string {
	return "bot-" + uuid.NewString()
}

// GetBotIdentity returns an identity for a bot by index, generating fresh
// ones when the pool is empty or exhausted.
func GetBotIdentity(index int) BotIdentity {
	identityMu.Lock()
	defer identityMu.Unlock()
	if botIDMap == nil {
		botIDMap = make(map[string]bool)
		botDisplayNameMap = make(map[string]string)
	}
	if index < len(botIdentities) {
		return botIdentities[index]
	}
	identity := BotIdentity{
		UserID:      newBotUserID(),
		DisplayName: fmt.Sprintf("AI Player %d", index),
	}
	botIdentities = append(botIdentities, identity)
	mapIdentity(identity)
	return identity
}

// GetBotDisplayName returns the display name for a bot ID, or an empty
// string if not a bot.
func GetBotDisplayName(userID string) string {
	if botDisplayNameMap == nil {
		return ""
	}
	return botDisplayNameMap[userID]
}

// IsBot reports whether the given user ID belongs to the bot pool.
func IsBot(userID string) bool {
	if botIDMap == nil {
		return false
	}
	return botIDMap[userID]
}
