package memory

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/domain/entities"
	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/ports"

	"github.com/google/uuid"
)

const (
	outboxStatusPending   = "pending"
	outboxStatusPublished = "published"
)

// Store is the in-memory ledger. A single RWMutex gives the single-writer
// discipline the ledger requires: Update runs alone, View runs shared.
// Update works on a snapshot and swaps it in only when the callback
// succeeds, so a failed call leaves no partial writes behind.
type Store struct {
	mu      sync.RWMutex
	state   entities.LedgerState
	tokens  map[uint64]entities.Token
	payouts []entities.Payout
	outbox  []outboxRecord
}

type outboxRecord struct {
	Message     ports.OutboxMessage
	Status      string
	PublishedAt *time.Time
}

func NewStore(state entities.LedgerState) *Store {
	return &Store{
		state:  state,
		tokens: make(map[uint64]entities.Token),
	}
}

func (s *Store) View(ctx context.Context, fn func(ports.LedgerReader) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&snapshot{
		state:   s.state,
		tokens:  s.tokens,
		payouts: s.payouts,
	})
}

func (s *Store) Update(ctx context.Context, fn func(ports.LedgerTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tokens := make(map[uint64]entities.Token, len(s.tokens))
	for id, token := range s.tokens {
		tokens[id] = token
	}
	tx := &txn{
		snapshot: snapshot{
			state:   s.state,
			tokens:  tokens,
			payouts: s.payouts,
		},
	}
	if err := fn(tx); err != nil {
		return err
	}

	s.state = tx.state
	s.tokens = tx.tokens
	s.payouts = append(s.payouts, tx.appendedPayouts...)
	s.outbox = append(s.outbox, tx.appendedOutbox...)
	return nil
}

// snapshot implements the read surface over one consistent view.
type snapshot struct {
	state   entities.LedgerState
	tokens  map[uint64]entities.Token
	payouts []entities.Payout
}

func (v *snapshot) State(_ context.Context) (entities.LedgerState, error) {
	return v.state, nil
}

func (v *snapshot) Token(_ context.Context, tokenID uint64) (entities.Token, bool, error) {
	token, ok := v.tokens[tokenID]
	return token, ok, nil
}

func (v *snapshot) ListTokens(_ context.Context, offset int, limit int) ([]entities.Token, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	items := make([]entities.Token, 0, len(v.tokens))
	for _, token := range v.tokens {
		items = append(items, token)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].TokenID < items[j].TokenID
	})
	if offset >= len(items) {
		return []entities.Token{}, nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return append([]entities.Token(nil), items[offset:end]...), nil
}

func (v *snapshot) ListPayoutsByAccount(_ context.Context, account string, limit int, offset int) ([]entities.Payout, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	// payouts are stored in commit order; walk backwards for newest first.
	items := make([]entities.Payout, 0)
	skipped := 0
	for i := len(v.payouts) - 1; i >= 0 && len(items) < limit; i-- {
		if v.payouts[i].Account != account {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		items = append(items, v.payouts[i])
	}
	return items, nil
}

// txn buffers writes on top of a snapshot until commit.
type txn struct {
	snapshot
	appendedPayouts []entities.Payout
	appendedOutbox  []outboxRecord
}

func (t *txn) ListPayoutsByAccount(ctx context.Context, account string, limit int, offset int) ([]entities.Payout, error) {
	combined := snapshot{
		state:   t.state,
		tokens:  t.tokens,
		payouts: append(append([]entities.Payout(nil), t.payouts...), t.appendedPayouts...),
	}
	return combined.ListPayoutsByAccount(ctx, account, limit, offset)
}

func (t *txn) PutState(_ context.Context, state entities.LedgerState) error {
	t.state = state
	return nil
}

func (t *txn) PutToken(_ context.Context, token entities.Token) error {
	t.tokens[token.TokenID] = token
	return nil
}

func (t *txn) AppendPayout(_ context.Context, payout entities.Payout) error {
	t.appendedPayouts = append(t.appendedPayouts, payout)
	return nil
}

func (t *txn) AppendOutbox(_ context.Context, envelope ports.EventEnvelope) error {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	t.appendedOutbox = append(t.appendedOutbox, outboxRecord{
		Message: ports.OutboxMessage{
			OutboxID:     envelope.EventID,
			EventType:    envelope.EventType,
			PartitionKey: envelope.PartitionKey,
			Payload:      payload,
			CreatedAt:    envelope.OccurredAt.UTC(),
		},
		Status: outboxStatusPending,
	})
	return nil
}

func (s *Store) ListPendingOutbox(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 100
	}
	items := make([]ports.OutboxMessage, 0)
	for _, row := range s.outbox {
		if row.Status != outboxStatusPending {
			continue
		}
		items = append(items, row.Message)
		if len(items) == limit {
			break
		}
	}
	return items, nil
}

func (s *Store) MarkOutboxPublished(_ context.Context, outboxID string, publishedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.outbox {
		if s.outbox[i].Message.OutboxID != outboxID {
			continue
		}
		ts := publishedAt.UTC()
		s.outbox[i].Status = outboxStatusPublished
		s.outbox[i].PublishedAt = &ts
		return nil
	}
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
