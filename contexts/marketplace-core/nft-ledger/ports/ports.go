package ports

import (
	"context"
	"time"

	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/domain/entities"
	"github.com/En0rm0s/Blockchain/internal/shared/events"
)

type EventEnvelope = events.Envelope

type LedgerReader interface {
	State(ctx context.Context) (entities.LedgerState, error)
	Token(ctx context.Context, tokenID uint64) (entities.Token, bool, error)
	ListTokens(ctx context.Context, offset int, limit int) ([]entities.Token, error)
	ListPayoutsByAccount(ctx context.Context, account string, limit int, offset int) ([]entities.Payout, error)
}

// LedgerTx is the mutation surface available inside one atomic call. Writes
// are only observable after the enclosing Update commits.
type LedgerTx interface {
	LedgerReader
	PutState(ctx context.Context, state entities.LedgerState) error
	PutToken(ctx context.Context, token entities.Token) error
	AppendPayout(ctx context.Context, payout entities.Payout) error
	AppendOutbox(ctx context.Context, envelope EventEnvelope) error
}

// LedgerStore serializes access to the single ledger instance. Update is the
// transaction boundary: fn runs with exclusive access, commits only when it
// returns nil, and no partial mutation survives an error.
type LedgerStore interface {
	View(ctx context.Context, fn func(LedgerReader) error) error
	Update(ctx context.Context, fn func(LedgerTx) error) error
}

type OutboxMessage struct {
	OutboxID     string
	EventType    string
	PartitionKey string
	Payload      []byte
	CreatedAt    time.Time
}

type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error
}

type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
