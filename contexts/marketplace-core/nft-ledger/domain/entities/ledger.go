package entities

import domainerrors "github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/domain/errors"

// LedgerState is the singleton marketplace state. RoyaltyPercent and
// PlatformFeePercent are fixed at construction; MintPrice and Admin are
// mutable through admin operations only.
type LedgerState struct {
	Admin              string
	MintPrice          int64
	RoyaltyPercent     int
	PlatformFeePercent int
	CollectedFees      int64
	Paused             bool
	NextID             uint64
}

// NewLedgerState validates construction parameters. The percent invariant
// royalty + platform < 100 guarantees the seller share is never negative.
func NewLedgerState(admin string, mintPrice int64, royaltyPercent int, platformFeePercent int) (LedgerState, error) {
	if admin == "" {
		return LedgerState{}, domainerrors.ErrInvalidAddress
	}
	if mintPrice < 0 {
		return LedgerState{}, domainerrors.ErrNegativeMintPrice
	}
	if royaltyPercent < 0 || platformFeePercent < 0 {
		return LedgerState{}, domainerrors.ErrFeePercentOutOfRange
	}
	if royaltyPercent+platformFeePercent >= 100 {
		return LedgerState{}, domainerrors.ErrFeePercentOutOfRange
	}
	return LedgerState{
		Admin:              admin,
		MintPrice:          mintPrice,
		RoyaltyPercent:     royaltyPercent,
		PlatformFeePercent: platformFeePercent,
	}, nil
}
