package nakama

import (
	"context"
	"database/sql"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

// AfterAuthenticateDevice is triggered after an account is authenticated.
// It initializes the win/loss record for new accounts.
func AfterAuthenticateDevice(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, out *api.Session, in *api.AuthenticateDeviceRequest) error {
	if !out.Created {
		return nil
	}

	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if userID == "" {
		logger.Warn("AfterAuthenticateDevice: Missing user id in context, skipping stats init.")
		return nil
	}

	logger.Info("Onboarding new user %s", userID)
	if err := NewNakamaStatsAdapter(nk).EnsureRecord(ctx, userID); err != nil {
		logger.Error("AfterAuthenticateDevice: Failed to init stats for user %s: %v", userID, err)
		return err
	}
	return nil
}
