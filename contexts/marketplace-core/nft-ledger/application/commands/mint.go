package commands

import (
	"context"
	"log/slog"

	application "github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/application"
	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/domain/entities"
	domainerrors "github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/domain/errors"
	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/ports"
)

type MintTokenCommand struct {
	Caller   string
	Payment  int64
	Metadata string
}

type MintTokenResult struct {
	Token entities.Token
}

type MintTokenUseCase struct {
	Store  ports.LedgerStore
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

// Execute creates a new token owned and authored by the caller. The full
// payment is retained by the ledger as collected fees.
func (u MintTokenUseCase) Execute(ctx context.Context, cmd MintTokenCommand) (MintTokenResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if cmd.Caller == "" {
		return MintTokenResult{}, domainerrors.ErrInvalidAddress
	}

	var minted entities.Token
	err := u.Store.Update(ctx, func(tx ports.LedgerTx) error {
		state, err := tx.State(ctx)
		if err != nil {
			return err
		}
		if state.Paused {
			return domainerrors.ErrLedgerPaused
		}
		if cmd.Payment != state.MintPrice {
			return domainerrors.ErrMintPriceMismatch
		}

		now := resolveNow(u.Clock)
		minted = entities.Token{
			TokenID:   state.NextID,
			Metadata:  cmd.Metadata,
			Author:    cmd.Caller,
			Owner:     cmd.Caller,
			MintedAt:  now,
			UpdatedAt: now,
		}
		if err := tx.PutToken(ctx, minted); err != nil {
			return err
		}

		state.NextID++
		state.CollectedFees += cmd.Payment
		if err := tx.PutState(ctx, state); err != nil {
			return err
		}

		return appendLedgerEvent(ctx, tx, u.IDGen, eventTokenMinted, tokenKey(minted.TokenID), now, map[string]any{
			"token_id": minted.TokenID,
			"author":   minted.Author,
			"payment":  cmd.Payment,
		})
	})
	if err != nil {
		logger.Warn("mint rejected",
			"event", "mint_rejected",
			"module", "marketplace-core/nft-ledger",
			"layer", "application",
			"caller", cmd.Caller,
			"error", err.Error(),
		)
		return MintTokenResult{}, err
	}

	logger.Info("token minted",
		"event", "token_minted",
		"module", "marketplace-core/nft-ledger",
		"layer", "application",
		"token_id", minted.TokenID,
		"author", minted.Author,
		"payment", cmd.Payment,
	)
	return MintTokenResult{Token: minted}, nil
}
