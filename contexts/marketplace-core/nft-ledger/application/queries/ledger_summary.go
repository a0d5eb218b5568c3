package queries

import (
	"context"
	"log/slog"

	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/ports"
)

type LedgerSummaryResult struct {
	TotalTokens        uint64
	Admin              string
	MintPrice          int64
	RoyaltyPercent     int
	PlatformFeePercent int
	CollectedFees      int64
	Paused             bool
}

type LedgerSummaryUseCase struct {
	Store  ports.LedgerStore
	Logger *slog.Logger
}

// Execute returns the ledger-wide counters. TotalTokens equals the next
// token id: ids are sequential from zero and never reused.
func (u LedgerSummaryUseCase) Execute(ctx context.Context) (LedgerSummaryResult, error) {
	var result LedgerSummaryResult
	err := u.Store.View(ctx, func(r ports.LedgerReader) error {
		state, err := r.State(ctx)
		if err != nil {
			return err
		}
		result = LedgerSummaryResult{
			TotalTokens:        state.NextID,
			Admin:              state.Admin,
			MintPrice:          state.MintPrice,
			RoyaltyPercent:     state.RoyaltyPercent,
			PlatformFeePercent: state.PlatformFeePercent,
			CollectedFees:      state.CollectedFees,
			Paused:             state.Paused,
		}
		return nil
	})
	if err != nil {
		return LedgerSummaryResult{}, err
	}
	return result, nil
}
