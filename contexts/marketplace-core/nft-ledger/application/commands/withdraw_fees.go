package commands

import (
	"context"
	"log/slog"

	application "github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/application"
	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/domain/entities"
	domainerrors "github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/domain/errors"
	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/ports"
)

type WithdrawFeesCommand struct {
	Caller string
}

type WithdrawFeesResult struct {
	Amount int64
	Payout entities.Payout
}

type WithdrawFeesUseCase struct {
	Store  ports.LedgerStore
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

// Execute pays the full fee accumulator to the admin and resets it to zero.
func (u WithdrawFeesUseCase) Execute(ctx context.Context, cmd WithdrawFeesCommand) (WithdrawFeesResult, error) {
	logger := application.ResolveLogger(u.Logger)

	var result WithdrawFeesResult
	err := u.Store.Update(ctx, func(tx ports.LedgerTx) error {
		state, err := tx.State(ctx)
		if err != nil {
			return err
		}
		if cmd.Caller != state.Admin {
			return domainerrors.ErrNotAdmin
		}
		if state.CollectedFees <= 0 {
			return domainerrors.ErrNoFeesToWithdraw
		}

		now := resolveNow(u.Clock)
		amount := state.CollectedFees

		payoutID, err := u.IDGen.NewID(ctx)
		if err != nil {
			return err
		}
		payout := entities.Payout{
			PayoutID:   payoutID,
			Account:    state.Admin,
			Amount:     amount,
			Kind:       entities.PayoutKindFeeWithdrawal,
			OccurredAt: now,
		}
		if err := tx.AppendPayout(ctx, payout); err != nil {
			return err
		}

		state.CollectedFees = 0
		if err := tx.PutState(ctx, state); err != nil {
			return err
		}

		result = WithdrawFeesResult{Amount: amount, Payout: payout}
		return appendLedgerEvent(ctx, tx, u.IDGen, eventFeesWithdrawn, state.Admin, now, map[string]any{
			"admin":  state.Admin,
			"amount": amount,
		})
	})
	if err != nil {
		return WithdrawFeesResult{}, err
	}

	logger.Info("collected fees withdrawn",
		"event", "ledger_fees_withdrawn",
		"module", "marketplace-core/nft-ledger",
		"layer", "application",
		"admin", cmd.Caller,
		"amount", result.Amount,
	)
	return result, nil
}
