package queries

import (
	"context"
	"log/slog"

	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/domain/entities"
	domainerrors "github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/domain/errors"
	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/ports"
)

type GetTokenQuery struct {
	TokenID uint64
}

type GetTokenResult struct {
	Token entities.Token
}

type GetTokenUseCase struct {
	Store  ports.LedgerStore
	Logger *slog.Logger
}

func (u GetTokenUseCase) Execute(ctx context.Context, query GetTokenQuery) (GetTokenResult, error) {
	var result GetTokenResult
	err := u.Store.View(ctx, func(r ports.LedgerReader) error {
		token, found, err := r.Token(ctx, query.TokenID)
		if err != nil {
			return err
		}
		if !found {
			return domainerrors.ErrTokenNotFound
		}
		result.Token = token
		return nil
	})
	if err != nil {
		return GetTokenResult{}, err
	}
	return result, nil
}
