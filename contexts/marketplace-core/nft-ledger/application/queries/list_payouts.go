package queries

import (
	"context"
	"log/slog"

	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/domain/entities"
	domainerrors "github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/domain/errors"
	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/ports"
)

type ListPayoutsQuery struct {
	Account string
	Limit   int
	Offset  int
}

type ListPayoutsResult struct {
	Payouts []entities.Payout
}

type ListPayoutsUseCase struct {
	Store  ports.LedgerStore
	Logger *slog.Logger
}

// Execute returns the payment history credited to one account, newest first.
func (u ListPayoutsUseCase) Execute(ctx context.Context, query ListPayoutsQuery) (ListPayoutsResult, error) {
	if query.Account == "" {
		return ListPayoutsResult{}, domainerrors.ErrInvalidAddress
	}
	limit := query.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := query.Offset
	if offset < 0 {
		offset = 0
	}

	var result ListPayoutsResult
	err := u.Store.View(ctx, func(r ports.LedgerReader) error {
		payouts, err := r.ListPayoutsByAccount(ctx, query.Account, limit, offset)
		if err != nil {
			return err
		}
		result.Payouts = payouts
		return nil
	})
	if err != nil {
		return ListPayoutsResult{}, err
	}
	return result, nil
}
