package queries

import (
	"context"
	"log/slog"

	domainerrors "github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/domain/errors"
	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/ports"
)

type IsForSaleQuery struct {
	TokenID uint64
}

type IsForSaleResult struct {
	ForSale bool
	Price   int64
}

type IsForSaleUseCase struct {
	Store  ports.LedgerStore
	Logger *slog.Logger
}

func (u IsForSaleUseCase) Execute(ctx context.Context, query IsForSaleQuery) (IsForSaleResult, error) {
	var result IsForSaleResult
	err := u.Store.View(ctx, func(r ports.LedgerReader) error {
		token, found, err := r.Token(ctx, query.TokenID)
		if err != nil {
			return err
		}
		if !found {
			return domainerrors.ErrTokenNotFound
		}
		result.ForSale = token.ForSale
		result.Price = token.Price
		return nil
	})
	if err != nil {
		return IsForSaleResult{}, err
	}
	return result, nil
}
