package postgresadapter

import (
	"time"

	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/domain/entities"
)

type ledgerStateModel struct {
	ID                 int    `gorm:"column:id;primaryKey"`
	Admin              string `gorm:"column:admin"`
	MintPrice          int64  `gorm:"column:mint_price"`
	RoyaltyPercent     int    `gorm:"column:royalty_percent"`
	PlatformFeePercent int    `gorm:"column:platform_fee_percent"`
	CollectedFees      int64  `gorm:"column:collected_fees"`
	Paused             bool   `gorm:"column:paused"`
	NextID             uint64 `gorm:"column:next_id"`
}

func (ledgerStateModel) TableName() string { return "ledger_state" }

func (m ledgerStateModel) toEntity() entities.LedgerState {
	return entities.LedgerState{
		Admin:              m.Admin,
		MintPrice:          m.MintPrice,
		RoyaltyPercent:     m.RoyaltyPercent,
		PlatformFeePercent: m.PlatformFeePercent,
		CollectedFees:      m.CollectedFees,
		Paused:             m.Paused,
		NextID:             m.NextID,
	}
}

func stateModelFromEntity(state entities.LedgerState) ledgerStateModel {
	return ledgerStateModel{
		ID:                 ledgerStateID,
		Admin:              state.Admin,
		MintPrice:          state.MintPrice,
		RoyaltyPercent:     state.RoyaltyPercent,
		PlatformFeePercent: state.PlatformFeePercent,
		CollectedFees:      state.CollectedFees,
		Paused:             state.Paused,
		NextID:             state.NextID,
	}
}

type tokenModel struct {
	TokenID   uint64    `gorm:"column:token_id;primaryKey;autoIncrement:false"`
	Metadata  string    `gorm:"column:metadata"`
	Author    string    `gorm:"column:author;index"`
	Owner     string    `gorm:"column:owner;index"`
	Price     int64     `gorm:"column:price"`
	ForSale   bool      `gorm:"column:for_sale"`
	MintedAt  time.Time `gorm:"column:minted_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (tokenModel) TableName() string { return "ledger_tokens" }

func (m tokenModel) toEntity() entities.Token {
	return entities.Token{
		TokenID:   m.TokenID,
		Metadata:  m.Metadata,
		Author:    m.Author,
		Owner:     m.Owner,
		Price:     m.Price,
		ForSale:   m.ForSale,
		MintedAt:  m.MintedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func tokenModelFromEntity(token entities.Token) tokenModel {
	return tokenModel{
		TokenID:   token.TokenID,
		Metadata:  token.Metadata,
		Author:    token.Author,
		Owner:     token.Owner,
		Price:     token.Price,
		ForSale:   token.ForSale,
		MintedAt:  token.MintedAt.UTC(),
		UpdatedAt: token.UpdatedAt.UTC(),
	}
}

type payoutModel struct {
	Seq        int64     `gorm:"column:seq;primaryKey;autoIncrement"`
	PayoutID   string    `gorm:"column:payout_id;uniqueIndex"`
	Account    string    `gorm:"column:account;index"`
	Amount     int64     `gorm:"column:amount"`
	Kind       string    `gorm:"column:kind"`
	TokenID    *uint64   `gorm:"column:token_id"`
	OccurredAt time.Time `gorm:"column:occurred_at"`
}

func (payoutModel) TableName() string { return "ledger_payouts" }

func (m payoutModel) toEntity() entities.Payout {
	return entities.Payout{
		PayoutID:   m.PayoutID,
		Account:    m.Account,
		Amount:     m.Amount,
		Kind:       entities.PayoutKind(m.Kind),
		TokenID:    m.TokenID,
		OccurredAt: m.OccurredAt,
	}
}

func payoutModelFromEntity(payout entities.Payout) payoutModel {
	return payoutModel{
		PayoutID:   payout.PayoutID,
		Account:    payout.Account,
		Amount:     payout.Amount,
		Kind:       string(payout.Kind),
		TokenID:    payout.TokenID,
		OccurredAt: payout.OccurredAt.UTC(),
	}
}

type outboxModel struct {
	OutboxID     string     `gorm:"column:outbox_id;primaryKey"`
	EventType    string     `gorm:"column:event_type"`
	PartitionKey string     `gorm:"column:partition_key"`
	Payload      []byte     `gorm:"column:payload"`
	Status       string     `gorm:"column:status;index"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	PublishedAt  *time.Time `gorm:"column:published_at"`
}

func (outboxModel) TableName() string { return "ledger_outbox" }
