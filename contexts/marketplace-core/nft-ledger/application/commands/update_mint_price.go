package commands

import (
	"context"
	"log/slog"

	application "github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/application"
	domainerrors "github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/domain/errors"
	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/ports"
)

type UpdateMintPriceCommand struct {
	Caller   string
	NewPrice int64
}

type UpdateMintPriceUseCase struct {
	Store  ports.LedgerStore
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

func (u UpdateMintPriceUseCase) Execute(ctx context.Context, cmd UpdateMintPriceCommand) error {
	logger := application.ResolveLogger(u.Logger)
	if cmd.NewPrice < 0 {
		return domainerrors.ErrNegativeMintPrice
	}

	err := u.Store.Update(ctx, func(tx ports.LedgerTx) error {
		state, err := tx.State(ctx)
		if err != nil {
			return err
		}
		if cmd.Caller != state.Admin {
			return domainerrors.ErrNotAdmin
		}

		now := resolveNow(u.Clock)
		state.MintPrice = cmd.NewPrice
		if err := tx.PutState(ctx, state); err != nil {
			return err
		}

		return appendLedgerEvent(ctx, tx, u.IDGen, eventMintPriceUpdated, state.Admin, now, map[string]any{
			"mint_price": cmd.NewPrice,
		})
	})
	if err != nil {
		return err
	}

	logger.Info("mint price updated",
		"event", "ledger_mint_price_updated",
		"module", "marketplace-core/nft-ledger",
		"layer", "application",
		"mint_price", cmd.NewPrice,
	)
	return nil
}
