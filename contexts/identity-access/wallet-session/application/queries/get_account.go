package queries

import (
	"context"
	"log/slog"

	"github.com/En0rm0s/Blockchain/contexts/identity-access/wallet-session/domain/entities"
	domainerrors "github.com/En0rm0s/Blockchain/contexts/identity-access/wallet-session/domain/errors"
	"github.com/En0rm0s/Blockchain/contexts/identity-access/wallet-session/ports"
)

type GetAccountQuery struct {
	Address string
}

type GetAccountResult struct {
	Account entities.Account
}

type GetAccountUseCase struct {
	Accounts ports.AccountRepository
	Logger   *slog.Logger
}

func (u GetAccountUseCase) Execute(ctx context.Context, query GetAccountQuery) (GetAccountResult, error) {
	if query.Address == "" {
		return GetAccountResult{}, domainerrors.ErrInvalidAddress
	}
	account, found, err := u.Accounts.GetAccount(ctx, query.Address)
	if err != nil {
		return GetAccountResult{}, err
	}
	if !found {
		return GetAccountResult{}, domainerrors.ErrAccountNotFound
	}
	return GetAccountResult{Account: account}, nil
}
