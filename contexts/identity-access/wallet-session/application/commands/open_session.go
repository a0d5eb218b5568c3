package commands

import (
	"context"
	"log/slog"
	"time"

	application "github.com/En0rm0s/Blockchain/contexts/identity-access/wallet-session/application"
	"github.com/En0rm0s/Blockchain/contexts/identity-access/wallet-session/domain/entities"
	domainerrors "github.com/En0rm0s/Blockchain/contexts/identity-access/wallet-session/domain/errors"
	"github.com/En0rm0s/Blockchain/contexts/identity-access/wallet-session/ports"
)

const defaultSessionTTL = 24 * time.Hour

type OpenSessionCommand struct {
	Address string
}

type OpenSessionResult struct {
	Session entities.Session
}

type OpenSessionUseCase struct {
	Accounts ports.AccountRepository
	Sessions ports.SessionRepository
	Clock    ports.Clock
	Tokens   ports.TokenGenerator
	TTL      time.Duration
	Logger   *slog.Logger
}

// Execute issues a bearer token for a registered address. The token stays
// valid until its TTL elapses or the session is closed.
func (u OpenSessionUseCase) Execute(ctx context.Context, cmd OpenSessionCommand) (OpenSessionResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if cmd.Address == "" {
		return OpenSessionResult{}, domainerrors.ErrInvalidAddress
	}

	_, found, err := u.Accounts.GetAccount(ctx, cmd.Address)
	if err != nil {
		return OpenSessionResult{}, err
	}
	if !found {
		return OpenSessionResult{}, domainerrors.ErrAccountNotFound
	}

	token, err := u.Tokens.NewToken(ctx)
	if err != nil {
		return OpenSessionResult{}, err
	}

	ttl := u.TTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	now := u.Clock.Now()
	session := entities.Session{
		Token:     token,
		Address:   cmd.Address,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	if err := u.Sessions.PutSession(ctx, session); err != nil {
		return OpenSessionResult{}, err
	}

	logger.Info("session opened",
		"event", "session_opened",
		"module", "identity-access/wallet-session",
		"layer", "application",
		"address", cmd.Address,
		"expires_at", session.ExpiresAt,
	)
	return OpenSessionResult{Session: session}, nil
}
