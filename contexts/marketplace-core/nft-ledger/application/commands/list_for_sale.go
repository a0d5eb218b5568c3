package commands

import (
	"context"
	"log/slog"

	application "github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/application"
	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/domain/entities"
	domainerrors "github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/domain/errors"
	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/ports"
)

type ListForSaleCommand struct {
	Caller  string
	TokenID uint64
	Price   int64
}

type ListForSaleResult struct {
	Token entities.Token
}

type ListForSaleUseCase struct {
	Store  ports.LedgerStore
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

func (u ListForSaleUseCase) Execute(ctx context.Context, cmd ListForSaleCommand) (ListForSaleResult, error) {
	logger := application.ResolveLogger(u.Logger)

	var listed entities.Token
	err := u.Store.Update(ctx, func(tx ports.LedgerTx) error {
		token, found, err := tx.Token(ctx, cmd.TokenID)
		if err != nil {
			return err
		}
		if !found {
			return domainerrors.ErrTokenNotFound
		}
		if token.Owner != cmd.Caller {
			return domainerrors.ErrNotOwner
		}
		if token.ForSale {
			return domainerrors.ErrAlreadyListed
		}
		if cmd.Price <= 0 {
			return domainerrors.ErrInvalidPrice
		}

		now := resolveNow(u.Clock)
		token.ForSale = true
		token.Price = cmd.Price
		token.UpdatedAt = now
		if err := tx.PutToken(ctx, token); err != nil {
			return err
		}
		listed = token

		return appendLedgerEvent(ctx, tx, u.IDGen, eventTokenListed, tokenKey(token.TokenID), now, map[string]any{
			"token_id": token.TokenID,
			"owner":    token.Owner,
			"price":    token.Price,
		})
	})
	if err != nil {
		return ListForSaleResult{}, err
	}

	logger.Info("token listed for sale",
		"event", "token_listed",
		"module", "marketplace-core/nft-ledger",
		"layer", "application",
		"token_id", listed.TokenID,
		"owner", listed.Owner,
		"price", listed.Price,
	)
	return ListForSaleResult{Token: listed}, nil
}
