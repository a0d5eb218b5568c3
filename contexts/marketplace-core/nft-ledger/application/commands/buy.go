package commands

import (
	"context"
	"log/slog"

	application "github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/application"
	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/domain/entities"
	domainerrors "github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/domain/errors"
	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/domain/services"
	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/ports"
)

type BuyTokenCommand struct {
	Caller  string
	Payment int64
	TokenID uint64
}

type BuyTokenResult struct {
	Token  entities.Token
	Seller string
	Author string
	Split  services.SaleSplit
}

type BuyTokenUseCase struct {
	Store  ports.LedgerStore
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

// Execute settles a sale in one atomic call: royalty to the author, the
// remainder after the platform fee to the seller, ownership to the buyer.
func (u BuyTokenUseCase) Execute(ctx context.Context, cmd BuyTokenCommand) (BuyTokenResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if cmd.Caller == "" {
		return BuyTokenResult{}, domainerrors.ErrInvalidAddress
	}

	var result BuyTokenResult
	err := u.Store.Update(ctx, func(tx ports.LedgerTx) error {
		state, err := tx.State(ctx)
		if err != nil {
			return err
		}
		if state.Paused {
			return domainerrors.ErrLedgerPaused
		}
		token, found, err := tx.Token(ctx, cmd.TokenID)
		if err != nil {
			return err
		}
		if !found {
			return domainerrors.ErrTokenNotFound
		}
		if !token.ForSale {
			return domainerrors.ErrNotListed
		}
		if cmd.Caller == token.Owner {
			return domainerrors.ErrOwnTokenPurchase
		}
		if cmd.Payment != token.Price {
			return domainerrors.ErrSalePriceMismatch
		}

		now := resolveNow(u.Clock)
		split := services.SplitSalePrice(token.Price, state.RoyaltyPercent, state.PlatformFeePercent)
		seller := token.Owner
		tokenID := token.TokenID

		royaltyID, err := u.IDGen.NewID(ctx)
		if err != nil {
			return err
		}
		if err := tx.AppendPayout(ctx, entities.Payout{
			PayoutID:   royaltyID,
			Account:    token.Author,
			Amount:     split.Royalty,
			Kind:       entities.PayoutKindRoyalty,
			TokenID:    &tokenID,
			OccurredAt: now,
		}); err != nil {
			return err
		}
		proceedsID, err := u.IDGen.NewID(ctx)
		if err != nil {
			return err
		}
		if err := tx.AppendPayout(ctx, entities.Payout{
			PayoutID:   proceedsID,
			Account:    seller,
			Amount:     split.SellerAmount,
			Kind:       entities.PayoutKindSaleProceeds,
			TokenID:    &tokenID,
			OccurredAt: now,
		}); err != nil {
			return err
		}

		state.CollectedFees += split.PlatformFee
		if err := tx.PutState(ctx, state); err != nil {
			return err
		}

		price := token.Price
		token.Owner = cmd.Caller
		token.ForSale = false
		token.Price = 0
		token.UpdatedAt = now
		if err := tx.PutToken(ctx, token); err != nil {
			return err
		}

		result = BuyTokenResult{
			Token:  token,
			Seller: seller,
			Author: token.Author,
			Split:  split,
		}
		return appendLedgerEvent(ctx, tx, u.IDGen, eventTokenSold, tokenKey(token.TokenID), now, map[string]any{
			"token_id":      token.TokenID,
			"buyer":         cmd.Caller,
			"seller":        seller,
			"author":        token.Author,
			"price":         price,
			"royalty":       split.Royalty,
			"platform_fee":  split.PlatformFee,
			"seller_amount": split.SellerAmount,
		})
	})
	if err != nil {
		logger.Warn("buy rejected",
			"event", "buy_rejected",
			"module", "marketplace-core/nft-ledger",
			"layer", "application",
			"token_id", cmd.TokenID,
			"caller", cmd.Caller,
			"error", err.Error(),
		)
		return BuyTokenResult{}, err
	}

	logger.Info("token sold",
		"event", "token_sold",
		"module", "marketplace-core/nft-ledger",
		"layer", "application",
		"token_id", result.Token.TokenID,
		"buyer", result.Token.Owner,
		"seller", result.Seller,
		"royalty", result.Split.Royalty,
		"platform_fee", result.Split.PlatformFee,
		"seller_amount", result.Split.SellerAmount,
	)
	return result, nil
}
