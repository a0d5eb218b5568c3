package commands

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/ports"
)

const sourceService = "marketplace-core/nft-ledger"

const (
	eventTokenMinted        = "token.minted"
	eventTokenListed        = "token.listed"
	eventTokenSaleCancelled = "token.sale_cancelled"
	eventTokenSold          = "token.sold"
	eventTokenTransferred   = "token.transferred"
	eventAuthorUpdated      = "token.author_updated"
	eventFeesWithdrawn      = "ledger.fees_withdrawn"
	eventLedgerPaused       = "ledger.paused"
	eventMintPriceUpdated   = "ledger.mint_price_updated"
	eventAdminTransferred   = "ledger.admin_transferred"
)

// appendLedgerEvent writes an outbox row inside the caller's transaction, so
// the event commits or aborts together with the state change it describes.
func appendLedgerEvent(
	ctx context.Context,
	tx ports.LedgerTx,
	idGen ports.IDGenerator,
	eventType string,
	partitionKey string,
	occurredAt time.Time,
	data map[string]any,
) error {
	eventID, err := idGen.NewID(ctx)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return tx.AppendOutbox(ctx, ports.EventEnvelope{
		EventID:       eventID,
		EventType:     eventType,
		OccurredAt:    occurredAt.UTC(),
		SourceService: sourceService,
		TraceID:       eventID,
		SchemaVersion: 1,
		PartitionKey:  partitionKey,
		Data:          payload,
	})
}

func tokenKey(tokenID uint64) string {
	return strconv.FormatUint(tokenID, 10)
}

func resolveNow(clock ports.Clock) time.Time {
	if clock == nil {
		return time.Now().UTC()
	}
	return clock.Now().UTC()
}
