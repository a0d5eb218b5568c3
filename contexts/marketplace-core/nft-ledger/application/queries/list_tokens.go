package queries

import (
	"context"
	"log/slog"

	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/domain/entities"
	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/ports"
)

type ListTokensQuery struct {
	Offset int
	Limit  int
}

type ListTokensResult struct {
	Tokens []entities.Token
	Total  uint64
}

type ListTokensUseCase struct {
	Store  ports.LedgerStore
	Logger *slog.Logger
}

func (u ListTokensUseCase) Execute(ctx context.Context, query ListTokensQuery) (ListTokensResult, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := query.Offset
	if offset < 0 {
		offset = 0
	}

	var result ListTokensResult
	err := u.Store.View(ctx, func(r ports.LedgerReader) error {
		state, err := r.State(ctx)
		if err != nil {
			return err
		}
		tokens, err := r.ListTokens(ctx, offset, limit)
		if err != nil {
			return err
		}
		result.Tokens = tokens
		result.Total = state.NextID
		return nil
	})
	if err != nil {
		return ListTokensResult{}, err
	}
	return result, nil
}
