package commands

import (
	"context"
	"log/slog"

	application "github.com/En0rm0s/Blockchain/contexts/identity-access/wallet-session/application"
	domainerrors "github.com/En0rm0s/Blockchain/contexts/identity-access/wallet-session/domain/errors"
	"github.com/En0rm0s/Blockchain/contexts/identity-access/wallet-session/ports"
)

type CloseSessionCommand struct {
	Token string
}

type CloseSessionUseCase struct {
	Sessions ports.SessionRepository
	Logger   *slog.Logger
}

// Execute revokes a session token immediately.
func (u CloseSessionUseCase) Execute(ctx context.Context, cmd CloseSessionCommand) error {
	logger := application.ResolveLogger(u.Logger)
	if cmd.Token == "" {
		return domainerrors.ErrSessionNotFound
	}

	deleted, err := u.Sessions.DeleteSession(ctx, cmd.Token)
	if err != nil {
		return err
	}
	if !deleted {
		return domainerrors.ErrSessionNotFound
	}

	logger.Info("session closed",
		"event", "session_closed",
		"module", "identity-access/wallet-session",
		"layer", "application",
	)
	return nil
}
