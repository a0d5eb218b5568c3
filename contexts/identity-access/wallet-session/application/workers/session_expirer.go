package workers

import (
	"context"
	"log/slog"

	"github.com/En0rm0s/Blockchain/contexts/identity-access/wallet-session/ports"
)

// SessionExpirer reaps sessions past their expiry so stale tokens do not
// accumulate in the store. Expiry itself is enforced at resolve time; this
// worker only reclaims storage.
type SessionExpirer struct {
	Sessions ports.SessionRepository
	Clock    ports.Clock
	Logger   *slog.Logger
}

func (w SessionExpirer) RunOnce(ctx context.Context) error {
	removed, err := w.Sessions.DeleteExpiredSessions(ctx, w.Clock.Now())
	if err != nil {
		if w.Logger != nil {
			w.Logger.Error("session reap failed",
				"event", "wallet_session_reap_failed",
				"module", "identity-access/wallet-session",
				"layer", "worker",
				"error", err.Error(),
			)
		}
		return err
	}
	if removed > 0 && w.Logger != nil {
		w.Logger.Info("expired sessions removed",
			"event", "wallet_sessions_expired",
			"module", "identity-access/wallet-session",
			"layer", "worker",
			"removed", removed,
		)
	}
	return nil
}
