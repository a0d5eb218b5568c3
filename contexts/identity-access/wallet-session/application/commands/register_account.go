package commands

import (
	"context"
	"log/slog"
	"strings"

	application "github.com/En0rm0s/Blockchain/contexts/identity-access/wallet-session/application"
	"github.com/En0rm0s/Blockchain/contexts/identity-access/wallet-session/domain/entities"
	domainerrors "github.com/En0rm0s/Blockchain/contexts/identity-access/wallet-session/domain/errors"
	"github.com/En0rm0s/Blockchain/contexts/identity-access/wallet-session/ports"
)

type RegisterAccountCommand struct {
	Address     string
	DisplayName string
}

type RegisterAccountResult struct {
	Account entities.Account
}

type RegisterAccountUseCase struct {
	Accounts ports.AccountRepository
	Clock    ports.Clock
	Logger   *slog.Logger
}

// Execute registers a wallet address. Addresses are unique; registering an
// existing one fails rather than overwriting its profile.
func (u RegisterAccountUseCase) Execute(ctx context.Context, cmd RegisterAccountCommand) (RegisterAccountResult, error) {
	logger := application.ResolveLogger(u.Logger)

	address := strings.TrimSpace(cmd.Address)
	if address == "" {
		return RegisterAccountResult{}, domainerrors.ErrInvalidAddress
	}
	displayName := strings.TrimSpace(cmd.DisplayName)
	if displayName == "" {
		return RegisterAccountResult{}, domainerrors.ErrInvalidDisplayName
	}

	account := entities.Account{
		Address:     address,
		DisplayName: displayName,
		CreatedAt:   u.Clock.Now(),
	}
	if err := u.Accounts.CreateAccount(ctx, account); err != nil {
		logger.Warn("account registration rejected",
			"event", "account_registration_rejected",
			"module", "identity-access/wallet-session",
			"layer", "application",
			"address", address,
			"error", err.Error(),
		)
		return RegisterAccountResult{}, err
	}

	logger.Info("account registered",
		"event", "account_registered",
		"module", "identity-access/wallet-session",
		"layer", "application",
		"address", address,
	)
	return RegisterAccountResult{Account: account}, nil
}
