package commands

import (
	"context"
	"log/slog"

	application "github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/application"
	domainerrors "github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/domain/errors"
	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/ports"
)

type SetPauseCommand struct {
	Caller string
	Paused bool
}

type SetPauseUseCase struct {
	Store  ports.LedgerStore
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

// Execute toggles the gate that disables mint and buy. Idempotent: setting
// the current value again is allowed.
func (u SetPauseUseCase) Execute(ctx context.Context, cmd SetPauseCommand) error {
	logger := application.ResolveLogger(u.Logger)

	err := u.Store.Update(ctx, func(tx ports.LedgerTx) error {
		state, err := tx.State(ctx)
		if err != nil {
			return err
		}
		if cmd.Caller != state.Admin {
			return domainerrors.ErrNotAdmin
		}

		now := resolveNow(u.Clock)
		state.Paused = cmd.Paused
		if err := tx.PutState(ctx, state); err != nil {
			return err
		}

		return appendLedgerEvent(ctx, tx, u.IDGen, eventLedgerPaused, state.Admin, now, map[string]any{
			"paused": cmd.Paused,
		})
	})
	if err != nil {
		return err
	}

	logger.Info("ledger pause updated",
		"event", "ledger_pause_updated",
		"module", "marketplace-core/nft-ledger",
		"layer", "application",
		"paused", cmd.Paused,
	)
	return nil
}
