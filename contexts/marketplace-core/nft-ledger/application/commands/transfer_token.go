package commands

import (
	"context"
	"log/slog"

	application "github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/application"
	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/domain/entities"
	domainerrors "github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/domain/errors"
	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/ports"
)

type TransferTokenCommand struct {
	Caller   string
	Payment  int64
	TokenID  uint64
	NewOwner string
}

type TransferTokenResult struct {
	Token entities.Token
}

type TransferTokenUseCase struct {
	Store  ports.LedgerStore
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

// Execute moves ownership without payment. Listed tokens must be delisted
// first so a pending sale can never be bypassed.
func (u TransferTokenUseCase) Execute(ctx context.Context, cmd TransferTokenCommand) (TransferTokenResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if cmd.NewOwner == "" {
		return TransferTokenResult{}, domainerrors.ErrInvalidAddress
	}

	var transferred entities.Token
	err := u.Store.Update(ctx, func(tx ports.LedgerTx) error {
		token, found, err := tx.Token(ctx, cmd.TokenID)
		if err != nil {
			return err
		}
		if !found {
			return domainerrors.ErrTokenNotFound
		}
		if cmd.Payment != 0 {
			return domainerrors.ErrPaymentNotAllowed
		}
		if token.Owner != cmd.Caller {
			return domainerrors.ErrNotOwner
		}
		if cmd.NewOwner == cmd.Caller {
			return domainerrors.ErrSelfTransfer
		}
		if token.ForSale {
			return domainerrors.ErrListedForTransfer
		}

		now := resolveNow(u.Clock)
		token.Owner = cmd.NewOwner
		token.UpdatedAt = now
		if err := tx.PutToken(ctx, token); err != nil {
			return err
		}
		transferred = token

		return appendLedgerEvent(ctx, tx, u.IDGen, eventTokenTransferred, tokenKey(token.TokenID), now, map[string]any{
			"token_id":  token.TokenID,
			"from":      cmd.Caller,
			"new_owner": token.Owner,
		})
	})
	if err != nil {
		return TransferTokenResult{}, err
	}

	logger.Info("token transferred",
		"event", "token_transferred",
		"module", "marketplace-core/nft-ledger",
		"layer", "application",
		"token_id", transferred.TokenID,
		"from", cmd.Caller,
		"new_owner", transferred.Owner,
	)
	return TransferTokenResult{Token: transferred}, nil
}
