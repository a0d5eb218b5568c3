package commands

import (
	"context"
	"log/slog"

	application "github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/application"
	domainerrors "github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/domain/errors"
	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/ports"
)

type TransferAdminCommand struct {
	Caller   string
	NewAdmin string
}

type TransferAdminUseCase struct {
	Store  ports.LedgerStore
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

// Execute hands the admin role over. The previous admin loses all privileges
// the moment the call commits.
func (u TransferAdminUseCase) Execute(ctx context.Context, cmd TransferAdminCommand) error {
	logger := application.ResolveLogger(u.Logger)
	if cmd.NewAdmin == "" {
		return domainerrors.ErrInvalidAddress
	}

	err := u.Store.Update(ctx, func(tx ports.LedgerTx) error {
		state, err := tx.State(ctx)
		if err != nil {
			return err
		}
		if cmd.Caller != state.Admin {
			return domainerrors.ErrNotAdmin
		}
		if cmd.NewAdmin == state.Admin {
			return domainerrors.ErrSameAdmin
		}

		now := resolveNow(u.Clock)
		previous := state.Admin
		state.Admin = cmd.NewAdmin
		if err := tx.PutState(ctx, state); err != nil {
			return err
		}

		return appendLedgerEvent(ctx, tx, u.IDGen, eventAdminTransferred, state.Admin, now, map[string]any{
			"previous_admin": previous,
			"new_admin":      state.Admin,
		})
	})
	if err != nil {
		return err
	}

	logger.Info("admin transferred",
		"event", "ledger_admin_transferred",
		"module", "marketplace-core/nft-ledger",
		"layer", "application",
		"previous_admin", cmd.Caller,
		"new_admin", cmd.NewAdmin,
	)
	return nil
}
