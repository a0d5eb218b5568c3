package commands

import (
	"context"
	"log/slog"

	application "github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/application"
	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/domain/entities"
	domainerrors "github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/domain/errors"
	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/ports"
)

type CancelSaleCommand struct {
	Caller  string
	TokenID uint64
}

type CancelSaleResult struct {
	Token entities.Token
}

type CancelSaleUseCase struct {
	Store  ports.LedgerStore
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

func (u CancelSaleUseCase) Execute(ctx context.Context, cmd CancelSaleCommand) (CancelSaleResult, error) {
	logger := application.ResolveLogger(u.Logger)

	var cancelled entities.Token
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
		if !token.ForSale {
			return domainerrors.ErrNotListed
		}

		now := resolveNow(u.Clock)
		token.ForSale = false
		token.Price = 0
		token.UpdatedAt = now
		if err := tx.PutToken(ctx, token); err != nil {
			return err
		}
		cancelled = token

		return appendLedgerEvent(ctx, tx, u.IDGen, eventTokenSaleCancelled, tokenKey(token.TokenID), now, map[string]any{
			"token_id": token.TokenID,
			"owner":    token.Owner,
		})
	})
	if err != nil {
		return CancelSaleResult{}, err
	}

	logger.Info("token sale cancelled",
		"event", "token_sale_cancelled",
		"module", "marketplace-core/nft-ledger",
		"layer", "application",
		"token_id", cancelled.TokenID,
		"owner", cancelled.Owner,
	)
	return CancelSaleResult{Token: cancelled}, nil
}
