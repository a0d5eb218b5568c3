package commands

import (
	"context"
	"log/slog"

	application "github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/application"
	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/domain/entities"
	domainerrors "github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/domain/errors"
	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/ports"
)

type UpdateAuthorCommand struct {
	Caller    string
	TokenID   uint64
	NewAuthor string
}

type UpdateAuthorResult struct {
	Token entities.Token
}

type UpdateAuthorUseCase struct {
	Store  ports.LedgerStore
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

// Execute redirects future royalty payouts. Only the current author may move
// the entitlement, and only to a different address.
func (u UpdateAuthorUseCase) Execute(ctx context.Context, cmd UpdateAuthorCommand) (UpdateAuthorResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if cmd.NewAuthor == "" {
		return UpdateAuthorResult{}, domainerrors.ErrInvalidAddress
	}

	var updated entities.Token
	err := u.Store.Update(ctx, func(tx ports.LedgerTx) error {
		token, found, err := tx.Token(ctx, cmd.TokenID)
		if err != nil {
			return err
		}
		if !found {
			return domainerrors.ErrTokenNotFound
		}
		if token.Author != cmd.Caller {
			return domainerrors.ErrNotAuthor
		}
		if cmd.NewAuthor == cmd.Caller {
			return domainerrors.ErrSameAuthor
		}

		now := resolveNow(u.Clock)
		token.Author = cmd.NewAuthor
		token.UpdatedAt = now
		if err := tx.PutToken(ctx, token); err != nil {
			return err
		}
		updated = token

		return appendLedgerEvent(ctx, tx, u.IDGen, eventAuthorUpdated, tokenKey(token.TokenID), now, map[string]any{
			"token_id":   token.TokenID,
			"new_author": token.Author,
		})
	})
	if err != nil {
		return UpdateAuthorResult{}, err
	}

	logger.Info("token author updated",
		"event", "token_author_updated",
		"module", "marketplace-core/nft-ledger",
		"layer", "application",
		"token_id", updated.TokenID,
		"new_author", updated.Author,
	)
	return UpdateAuthorResult{Token: updated}, nil
}
