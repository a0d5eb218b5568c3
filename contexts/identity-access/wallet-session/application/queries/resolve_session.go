package queries

import (
	"context"
	"log/slog"

	domainerrors "github.com/En0rm0s/Blockchain/contexts/identity-access/wallet-session/domain/errors"
	"github.com/En0rm0s/Blockchain/contexts/identity-access/wallet-session/ports"
)

type ResolveSessionQuery struct {
	Token string
}

type ResolveSessionResult struct {
	Address string
}

type ResolveSessionUseCase struct {
	Sessions ports.SessionRepository
	Clock    ports.Clock
	Logger   *slog.Logger
}

// Execute maps a bearer token to the wallet address it authenticates.
// Expired sessions are reported distinctly from unknown tokens.
func (u ResolveSessionUseCase) Execute(ctx context.Context, query ResolveSessionQuery) (ResolveSessionResult, error) {
	if query.Token == "" {
		return ResolveSessionResult{}, domainerrors.ErrSessionNotFound
	}

	session, found, err := u.Sessions.GetSession(ctx, query.Token)
	if err != nil {
		return ResolveSessionResult{}, err
	}
	if !found {
		return ResolveSessionResult{}, domainerrors.ErrSessionNotFound
	}
	if session.Expired(u.Clock.Now()) {
		return ResolveSessionResult{}, domainerrors.ErrSessionExpired
	}
	return ResolveSessionResult{Address: session.Address}, nil
}
