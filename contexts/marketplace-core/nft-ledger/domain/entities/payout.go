package entities

import "time"

type PayoutKind string

const (
	PayoutKindRoyalty       PayoutKind = "royalty"
	PayoutKindSaleProceeds  PayoutKind = "sale_proceeds"
	PayoutKindFeeWithdrawal PayoutKind = "fee_withdrawal"
)

// Payout records one outgoing payment effect. TokenID is nil for fee
// withdrawals, which are not tied to a single token.
type Payout struct {
	PayoutID   string
	Account    string
	Amount     int64
	Kind       PayoutKind
	TokenID    *uint64
	OccurredAt time.Time
}
