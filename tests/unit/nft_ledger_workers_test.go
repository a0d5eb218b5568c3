package unit

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/application/workers"
	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/ports"
	ledgerhttp "github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/transport/http"
)

type capturingPublisher struct {
	mu     sync.Mutex
	topics []string
	events []ports.EventEnvelope
}

func (p *capturingPublisher) Publish(_ context.Context, topic string, event ports.EventEnvelope) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
	p.events = append(p.events, event)
	return nil
}

func TestOutboxRelayPublishesPendingLedgerEvents(t *testing.T) {
	module := newLedgerModule(t)
	ctx := context.Background()

	token := mustMint(t, module, "alice")
	if _, err := module.Handler.ListForSaleHandler(ctx, "alice", token.TokenID, ledgerhttp.ListForSaleRequest{Price: salePrice}); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if _, err := module.Handler.BuyHandler(ctx, "bob", salePrice, token.TokenID); err != nil {
		t.Fatalf("buy failed: %v", err)
	}

	publisher := &capturingPublisher{}
	relay := workers.OutboxRelay{
		Outbox:    module.Store,
		Publisher: publisher,
		Clock:     module.Store,
		Topic:     "marketplace.ledger",
		BatchSize: 10,
	}
	if err := relay.RunOnce(ctx); err != nil {
		t.Fatalf("relay run failed: %v", err)
	}

	if len(publisher.events) != 3 {
		t.Fatalf("expected 3 published events, got %d", len(publisher.events))
	}
	for _, topic := range publisher.topics {
		if topic != "marketplace.ledger" {
			t.Fatalf("unexpected topic %s", topic)
		}
	}

	types := map[string]bool{}
	for _, event := range publisher.events {
		types[event.EventType] = true
		if event.SourceService != "marketplace-core/nft-ledger" {
			t.Fatalf("unexpected source_service %s", event.SourceService)
		}
		if event.PartitionKey == "" {
			t.Fatalf("event %s missing partition key", event.EventType)
		}
	}
	for _, expected := range []string{"token.minted", "token.listed", "token.sold"} {
		if !types[expected] {
			t.Fatalf("missing event type %s, got %v", expected, types)
		}
	}

	var sold map[string]any
	for _, event := range publisher.events {
		if event.EventType != "token.sold" {
			continue
		}
		if err := json.Unmarshal(event.Data, &sold); err != nil {
			t.Fatalf("decode token.sold payload: %v", err)
		}
	}
	if buyer, _ := sold["buyer"].(string); buyer != "bob" {
		t.Fatalf("token.sold payload missing buyer: %v", sold)
	}

	// A second pass must find nothing pending.
	publisher.events = nil
	if err := relay.RunOnce(ctx); err != nil {
		t.Fatalf("second relay run failed: %v", err)
	}
	if len(publisher.events) != 0 {
		t.Fatalf("relay republished events: %d", len(publisher.events))
	}
}
