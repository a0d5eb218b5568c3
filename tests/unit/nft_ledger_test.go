package unit

import (
	"context"
	"errors"
	"testing"

	nftledger "github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger"
	ledgererrors "github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/domain/errors"
	ledgerhttp "github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/transport/http"
)

const (
	mintPrice = int64(1_000_000)
	salePrice = int64(10_000_000)
)

func newLedgerModule(t *testing.T) nftledger.Module {
	t.Helper()
	module, err := nftledger.NewInMemoryModule("admin", mintPrice, 5, 2, nil)
	if err != nil {
		t.Fatalf("new ledger module: %v", err)
	}
	return module
}

func mustMint(t *testing.T, module nftledger.Module, caller string) ledgerhttp.TokenDTO {
	t.Helper()
	resp, err := module.Handler.MintHandler(context.Background(), caller, mintPrice, ledgerhttp.MintTokenRequest{
		Metadata: "ipfs://clip-" + caller,
	})
	if err != nil {
		t.Fatalf("mint for %s failed: %v", caller, err)
	}
	return resp.Data
}

func TestMintAssignsSequentialIDsAndRetainsPayment(t *testing.T) {
	module := newLedgerModule(t)
	ctx := context.Background()

	first := mustMint(t, module, "alice")
	second := mustMint(t, module, "bob")

	if first.TokenID != 0 || second.TokenID != 1 {
		t.Fatalf("expected ids 0 and 1, got %d and %d", first.TokenID, second.TokenID)
	}
	if first.Owner != "alice" || first.Author != "alice" {
		t.Fatalf("minter must be both owner and author: %+v", first)
	}
	if first.ForSale {
		t.Fatalf("fresh token must not be for sale")
	}

	summary, err := module.Handler.LedgerSummaryHandler(ctx)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.Data.TotalTokens != 2 {
		t.Fatalf("expected 2 tokens, got %d", summary.Data.TotalTokens)
	}
	if summary.Data.CollectedFees != 2*mintPrice {
		t.Fatalf("expected collected fees %d, got %d", 2*mintPrice, summary.Data.CollectedFees)
	}
}

func TestMintRejectsWrongPayment(t *testing.T) {
	module := newLedgerModule(t)
	ctx := context.Background()

	for _, payment := range []int64{0, mintPrice - 1, mintPrice + 1} {
		_, err := module.Handler.MintHandler(ctx, "alice", payment, ledgerhttp.MintTokenRequest{})
		if !errors.Is(err, ledgererrors.ErrMintPriceMismatch) {
			t.Fatalf("payment %d: expected mint price mismatch, got %v", payment, err)
		}
	}

	summary, err := module.Handler.LedgerSummaryHandler(ctx)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.Data.TotalTokens != 0 || summary.Data.CollectedFees != 0 {
		t.Fatalf("rejected mints must leave no trace: %+v", summary.Data)
	}
}

func TestBuySettlesRoyaltyProceedsAndPlatformFee(t *testing.T) {
	module := newLedgerModule(t)
	ctx := context.Background()

	token := mustMint(t, module, "alice")
	if _, err := module.Handler.ListForSaleHandler(ctx, "alice", token.TokenID, ledgerhttp.ListForSaleRequest{Price: salePrice}); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	resp, err := module.Handler.BuyHandler(ctx, "bob", salePrice, token.TokenID)
	if err != nil {
		t.Fatalf("buy failed: %v", err)
	}
	sale := resp.Data
	if sale.Royalty != 500_000 || sale.PlatformFee != 200_000 || sale.SellerAmount != 9_300_000 {
		t.Fatalf("unexpected split: %+v", sale)
	}
	if sale.Token.Owner != "bob" || sale.Token.ForSale {
		t.Fatalf("token must move to buyer and delist: %+v", sale.Token)
	}
	if sale.Seller != "alice" || sale.Author != "alice" {
		t.Fatalf("unexpected settlement parties: %+v", sale)
	}

	summary, err := module.Handler.LedgerSummaryHandler(ctx)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.Data.CollectedFees != mintPrice+200_000 {
		t.Fatalf("expected collected fees %d, got %d", mintPrice+200_000, summary.Data.CollectedFees)
	}

	payouts, err := module.Handler.ListPayoutsHandler(ctx, "alice", 10, 0)
	if err != nil {
		t.Fatalf("payouts failed: %v", err)
	}
	// alice was seller and author, so she collects both cuts.
	var total int64
	for _, payout := range payouts.Data {
		total += payout.Amount
	}
	if total != 9_800_000 {
		t.Fatalf("expected alice credited 9800000, got %d", total)
	}
}

func TestBuyTinyPriceRemainderStaysWithSeller(t *testing.T) {
	module := newLedgerModule(t)
	ctx := context.Background()

	token := mustMint(t, module, "alice")
	if _, err := module.Handler.ListForSaleHandler(ctx, "alice", token.TokenID, ledgerhttp.ListForSaleRequest{Price: 1}); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	resp, err := module.Handler.BuyHandler(ctx, "bob", 1, token.TokenID)
	if err != nil {
		t.Fatalf("buy failed: %v", err)
	}
	if resp.Data.Royalty != 0 || resp.Data.PlatformFee != 0 || resp.Data.SellerAmount != 1 {
		t.Fatalf("1-unit sale must floor cuts to zero: %+v", resp.Data)
	}
}

func TestBuyGuards(t *testing.T) {
	module := newLedgerModule(t)
	ctx := context.Background()

	token := mustMint(t, module, "alice")

	if _, err := module.Handler.BuyHandler(ctx, "bob", salePrice, token.TokenID); !errors.Is(err, ledgererrors.ErrNotListed) {
		t.Fatalf("expected not listed, got %v", err)
	}
	if _, err := module.Handler.BuyHandler(ctx, "bob", salePrice, 99); !errors.Is(err, ledgererrors.ErrTokenNotFound) {
		t.Fatalf("expected token not found, got %v", err)
	}

	if _, err := module.Handler.ListForSaleHandler(ctx, "alice", token.TokenID, ledgerhttp.ListForSaleRequest{Price: salePrice}); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if _, err := module.Handler.BuyHandler(ctx, "alice", salePrice, token.TokenID); !errors.Is(err, ledgererrors.ErrOwnTokenPurchase) {
		t.Fatalf("expected own token purchase, got %v", err)
	}
	if _, err := module.Handler.BuyHandler(ctx, "bob", salePrice-1, token.TokenID); !errors.Is(err, ledgererrors.ErrSalePriceMismatch) {
		t.Fatalf("expected sale price mismatch, got %v", err)
	}

	// Failed purchases must not move the token.
	got, err := module.Handler.GetTokenHandler(ctx, token.TokenID)
	if err != nil {
		t.Fatalf("get token failed: %v", err)
	}
	if got.Data.Owner != "alice" || !got.Data.ForSale {
		t.Fatalf("token changed after rejected buys: %+v", got.Data)
	}
}

func TestListingGuards(t *testing.T) {
	module := newLedgerModule(t)
	ctx := context.Background()

	token := mustMint(t, module, "alice")

	if _, err := module.Handler.ListForSaleHandler(ctx, "bob", token.TokenID, ledgerhttp.ListForSaleRequest{Price: salePrice}); !errors.Is(err, ledgererrors.ErrNotOwner) {
		t.Fatalf("expected not owner, got %v", err)
	}
	if _, err := module.Handler.ListForSaleHandler(ctx, "alice", token.TokenID, ledgerhttp.ListForSaleRequest{Price: 0}); !errors.Is(err, ledgererrors.ErrInvalidPrice) {
		t.Fatalf("expected invalid price, got %v", err)
	}
	if _, err := module.Handler.ListForSaleHandler(ctx, "alice", token.TokenID, ledgerhttp.ListForSaleRequest{Price: -5}); !errors.Is(err, ledgererrors.ErrInvalidPrice) {
		t.Fatalf("expected invalid price for negative, got %v", err)
	}
	if _, err := module.Handler.ListForSaleHandler(ctx, "alice", token.TokenID, ledgerhttp.ListForSaleRequest{Price: salePrice}); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if _, err := module.Handler.ListForSaleHandler(ctx, "alice", token.TokenID, ledgerhttp.ListForSaleRequest{Price: salePrice}); !errors.Is(err, ledgererrors.ErrAlreadyListed) {
		t.Fatalf("expected already listed, got %v", err)
	}
}

func TestCancelSaleClearsListing(t *testing.T) {
	module := newLedgerModule(t)
	ctx := context.Background()

	token := mustMint(t, module, "alice")
	if _, err := module.Handler.CancelSaleHandler(ctx, "alice", token.TokenID); !errors.Is(err, ledgererrors.ErrNotListed) {
		t.Fatalf("expected not listed, got %v", err)
	}

	if _, err := module.Handler.ListForSaleHandler(ctx, "alice", token.TokenID, ledgerhttp.ListForSaleRequest{Price: salePrice}); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if _, err := module.Handler.CancelSaleHandler(ctx, "bob", token.TokenID); !errors.Is(err, ledgererrors.ErrNotOwner) {
		t.Fatalf("expected not owner, got %v", err)
	}

	resp, err := module.Handler.CancelSaleHandler(ctx, "alice", token.TokenID)
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if resp.Data.ForSale || resp.Data.Price != 0 {
		t.Fatalf("cancel must clear listing: %+v", resp.Data)
	}
}

func TestTransferRules(t *testing.T) {
	module := newLedgerModule(t)
	ctx := context.Background()

	token := mustMint(t, module, "alice")

	if _, err := module.Handler.TransferHandler(ctx, "alice", 10, token.TokenID, ledgerhttp.TransferTokenRequest{NewOwner: "bob"}); !errors.Is(err, ledgererrors.ErrPaymentNotAllowed) {
		t.Fatalf("expected payment not allowed, got %v", err)
	}
	if _, err := module.Handler.TransferHandler(ctx, "bob", 0, token.TokenID, ledgerhttp.TransferTokenRequest{NewOwner: "carol"}); !errors.Is(err, ledgererrors.ErrNotOwner) {
		t.Fatalf("expected not owner, got %v", err)
	}
	if _, err := module.Handler.TransferHandler(ctx, "alice", 0, token.TokenID, ledgerhttp.TransferTokenRequest{NewOwner: "alice"}); !errors.Is(err, ledgererrors.ErrSelfTransfer) {
		t.Fatalf("expected self transfer rejection, got %v", err)
	}

	if _, err := module.Handler.ListForSaleHandler(ctx, "alice", token.TokenID, ledgerhttp.ListForSaleRequest{Price: salePrice}); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if _, err := module.Handler.TransferHandler(ctx, "alice", 0, token.TokenID, ledgerhttp.TransferTokenRequest{NewOwner: "bob"}); !errors.Is(err, ledgererrors.ErrListedForTransfer) {
		t.Fatalf("expected listed-token rejection, got %v", err)
	}
	if _, err := module.Handler.CancelSaleHandler(ctx, "alice", token.TokenID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	resp, err := module.Handler.TransferHandler(ctx, "alice", 0, token.TokenID, ledgerhttp.TransferTokenRequest{NewOwner: "bob"})
	if err != nil {
		t.Fatalf("transfer failed: %v", err)
	}
	if resp.Data.Owner != "bob" {
		t.Fatalf("expected bob as owner, got %s", resp.Data.Owner)
	}
	if resp.Data.Author != "alice" {
		t.Fatalf("transfer must not change the author, got %s", resp.Data.Author)
	}
}

func TestRoyaltyFollowsAuthorAcrossResales(t *testing.T) {
	module := newLedgerModule(t)
	ctx := context.Background()

	token := mustMint(t, module, "alice")
	if _, err := module.Handler.ListForSaleHandler(ctx, "alice", token.TokenID, ledgerhttp.ListForSaleRequest{Price: salePrice}); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if _, err := module.Handler.BuyHandler(ctx, "bob", salePrice, token.TokenID); err != nil {
		t.Fatalf("first buy failed: %v", err)
	}

	// bob resells; alice still authored the token and keeps collecting royalty.
	if _, err := module.Handler.ListForSaleHandler(ctx, "bob", token.TokenID, ledgerhttp.ListForSaleRequest{Price: salePrice}); err != nil {
		t.Fatalf("relist failed: %v", err)
	}
	resp, err := module.Handler.BuyHandler(ctx, "carol", salePrice, token.TokenID)
	if err != nil {
		t.Fatalf("second buy failed: %v", err)
	}
	if resp.Data.Author != "alice" || resp.Data.Seller != "bob" {
		t.Fatalf("unexpected resale parties: %+v", resp.Data)
	}
	if resp.Data.Royalty != 500_000 {
		t.Fatalf("expected royalty 500000 on resale, got %d", resp.Data.Royalty)
	}
}

func TestUpdateAuthorRedirectsFutureRoyalties(t *testing.T) {
	module := newLedgerModule(t)
	ctx := context.Background()

	token := mustMint(t, module, "alice")

	if _, err := module.Handler.UpdateAuthorHandler(ctx, "bob", token.TokenID, ledgerhttp.UpdateAuthorRequest{NewAuthor: "carol"}); !errors.Is(err, ledgererrors.ErrNotAuthor) {
		t.Fatalf("expected not author, got %v", err)
	}
	if _, err := module.Handler.UpdateAuthorHandler(ctx, "alice", token.TokenID, ledgerhttp.UpdateAuthorRequest{NewAuthor: "alice"}); !errors.Is(err, ledgererrors.ErrSameAuthor) {
		t.Fatalf("expected same author rejection, got %v", err)
	}

	if _, err := module.Handler.UpdateAuthorHandler(ctx, "alice", token.TokenID, ledgerhttp.UpdateAuthorRequest{NewAuthor: "dora"}); err != nil {
		t.Fatalf("update author failed: %v", err)
	}

	if _, err := module.Handler.ListForSaleHandler(ctx, "alice", token.TokenID, ledgerhttp.ListForSaleRequest{Price: salePrice}); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	resp, err := module.Handler.BuyHandler(ctx, "bob", salePrice, token.TokenID)
	if err != nil {
		t.Fatalf("buy failed: %v", err)
	}
	if resp.Data.Author != "dora" {
		t.Fatalf("royalty must go to the new author, got %s", resp.Data.Author)
	}

	payouts, err := module.Handler.ListPayoutsHandler(ctx, "dora", 10, 0)
	if err != nil {
		t.Fatalf("payouts failed: %v", err)
	}
	if len(payouts.Data) != 1 || payouts.Data[0].Amount != 500_000 {
		t.Fatalf("expected one 500000 royalty for dora, got %+v", payouts.Data)
	}
}

func TestPauseGatesMintAndBuyOnly(t *testing.T) {
	module := newLedgerModule(t)
	ctx := context.Background()

	token := mustMint(t, module, "alice")
	if _, err := module.Handler.SetPauseHandler(ctx, "alice", ledgerhttp.SetPauseRequest{Paused: true}); !errors.Is(err, ledgererrors.ErrNotAdmin) {
		t.Fatalf("expected not admin, got %v", err)
	}
	if _, err := module.Handler.SetPauseHandler(ctx, "admin", ledgerhttp.SetPauseRequest{Paused: true}); err != nil {
		t.Fatalf("pause failed: %v", err)
	}

	if _, err := module.Handler.MintHandler(ctx, "bob", mintPrice, ledgerhttp.MintTokenRequest{}); !errors.Is(err, ledgererrors.ErrLedgerPaused) {
		t.Fatalf("expected paused mint rejection, got %v", err)
	}

	// Listing, cancelling, and transfers stay live while paused.
	if _, err := module.Handler.ListForSaleHandler(ctx, "alice", token.TokenID, ledgerhttp.ListForSaleRequest{Price: salePrice}); err != nil {
		t.Fatalf("list while paused failed: %v", err)
	}
	if _, err := module.Handler.BuyHandler(ctx, "bob", salePrice, token.TokenID); !errors.Is(err, ledgererrors.ErrLedgerPaused) {
		t.Fatalf("expected paused buy rejection, got %v", err)
	}
	if _, err := module.Handler.CancelSaleHandler(ctx, "alice", token.TokenID); err != nil {
		t.Fatalf("cancel while paused failed: %v", err)
	}
	if _, err := module.Handler.TransferHandler(ctx, "alice", 0, token.TokenID, ledgerhttp.TransferTokenRequest{NewOwner: "bob"}); err != nil {
		t.Fatalf("transfer while paused failed: %v", err)
	}

	if _, err := module.Handler.SetPauseHandler(ctx, "admin", ledgerhttp.SetPauseRequest{Paused: false}); err != nil {
		t.Fatalf("resume failed: %v", err)
	}
	if _, err := module.Handler.MintHandler(ctx, "bob", mintPrice, ledgerhttp.MintTokenRequest{}); err != nil {
		t.Fatalf("mint after resume failed: %v", err)
	}
}

func TestWithdrawFeesEmptiesAccumulator(t *testing.T) {
	module := newLedgerModule(t)
	ctx := context.Background()

	mustMint(t, module, "alice")

	if _, err := module.Handler.WithdrawFeesHandler(ctx, "alice"); !errors.Is(err, ledgererrors.ErrNotAdmin) {
		t.Fatalf("expected not admin, got %v", err)
	}

	resp, err := module.Handler.WithdrawFeesHandler(ctx, "admin")
	if err != nil {
		t.Fatalf("withdraw failed: %v", err)
	}
	if resp.Data.Amount != mintPrice || resp.Data.Admin != "admin" {
		t.Fatalf("unexpected withdrawal: %+v", resp.Data)
	}

	if _, err := module.Handler.WithdrawFeesHandler(ctx, "admin"); !errors.Is(err, ledgererrors.ErrNoFeesToWithdraw) {
		t.Fatalf("expected empty accumulator rejection, got %v", err)
	}

	summary, err := module.Handler.LedgerSummaryHandler(ctx)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.Data.CollectedFees != 0 {
		t.Fatalf("accumulator must be zero after withdrawal, got %d", summary.Data.CollectedFees)
	}
}

func TestAdminHandoverMovesAllPrivileges(t *testing.T) {
	module := newLedgerModule(t)
	ctx := context.Background()

	if _, err := module.Handler.TransferAdminHandler(ctx, "alice", ledgerhttp.TransferAdminRequest{NewAdmin: "alice"}); !errors.Is(err, ledgererrors.ErrNotAdmin) {
		t.Fatalf("expected not admin, got %v", err)
	}
	if _, err := module.Handler.TransferAdminHandler(ctx, "admin", ledgerhttp.TransferAdminRequest{NewAdmin: "admin"}); !errors.Is(err, ledgererrors.ErrSameAdmin) {
		t.Fatalf("expected same admin rejection, got %v", err)
	}
	if _, err := module.Handler.TransferAdminHandler(ctx, "admin", ledgerhttp.TransferAdminRequest{NewAdmin: "root"}); err != nil {
		t.Fatalf("admin handover failed: %v", err)
	}

	if _, err := module.Handler.SetPauseHandler(ctx, "admin", ledgerhttp.SetPauseRequest{Paused: true}); !errors.Is(err, ledgererrors.ErrNotAdmin) {
		t.Fatalf("old admin must lose privileges, got %v", err)
	}
	if _, err := module.Handler.UpdateMintPriceHandler(ctx, "root", ledgerhttp.UpdateMintPriceRequest{NewPrice: 5}); err != nil {
		t.Fatalf("new admin must hold privileges: %v", err)
	}

	summary, err := module.Handler.LedgerSummaryHandler(ctx)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.Data.Admin != "root" || summary.Data.MintPrice != 5 {
		t.Fatalf("unexpected state after handover: %+v", summary.Data)
	}
}

func TestUpdateMintPriceValidation(t *testing.T) {
	module := newLedgerModule(t)
	ctx := context.Background()

	if _, err := module.Handler.UpdateMintPriceHandler(ctx, "admin", ledgerhttp.UpdateMintPriceRequest{NewPrice: -1}); !errors.Is(err, ledgererrors.ErrNegativeMintPrice) {
		t.Fatalf("expected negative mint price rejection, got %v", err)
	}
	if _, err := module.Handler.UpdateMintPriceHandler(ctx, "admin", ledgerhttp.UpdateMintPriceRequest{NewPrice: 0}); err != nil {
		t.Fatalf("zero mint price must be allowed: %v", err)
	}
	if _, err := module.Handler.MintHandler(ctx, "alice", 0, ledgerhttp.MintTokenRequest{}); err != nil {
		t.Fatalf("free mint failed: %v", err)
	}
}

func TestTokensAreIsolated(t *testing.T) {
	module := newLedgerModule(t)
	ctx := context.Background()

	first := mustMint(t, module, "alice")
	second := mustMint(t, module, "alice")

	if _, err := module.Handler.ListForSaleHandler(ctx, "alice", first.TokenID, ledgerhttp.ListForSaleRequest{Price: salePrice}); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	status, err := module.Handler.IsForSaleHandler(ctx, second.TokenID)
	if err != nil {
		t.Fatalf("for-sale check failed: %v", err)
	}
	if status.Data.ForSale {
		t.Fatalf("listing one token must not list its sibling")
	}

	if _, err := module.Handler.BuyHandler(ctx, "bob", salePrice, first.TokenID); err != nil {
		t.Fatalf("buy failed: %v", err)
	}
	got, err := module.Handler.GetTokenHandler(ctx, second.TokenID)
	if err != nil {
		t.Fatalf("get token failed: %v", err)
	}
	if got.Data.Owner != "alice" {
		t.Fatalf("sibling token changed owner: %+v", got.Data)
	}
}
