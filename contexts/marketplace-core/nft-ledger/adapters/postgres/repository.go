package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/domain/entities"
	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	ledgerStateID = 1

	outboxStatusPending   = "pending"
	outboxStatusPublished = "published"
)

var errStateNotInitialized = errors.New("ledger state is not initialized")

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

// Migrate creates the ledger tables. Intended for bootstrap and tests;
// production schema changes go through regular migrations.
func (r *Repository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(
		&ledgerStateModel{},
		&tokenModel{},
		&payoutModel{},
		&outboxModel{},
	)
}

// EnsureState seeds the singleton state row when absent. An existing row
// wins: construction parameters never overwrite a live ledger.
func (r *Repository) EnsureState(ctx context.Context, state entities.LedgerState) error {
	row := stateModelFromEntity(state)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).
		Error
}

func (r *Repository) View(ctx context.Context, fn func(ports.LedgerReader) error) error {
	return fn(&reader{db: r.db.WithContext(ctx)})
}

// Update wraps one ledger call in a database transaction and takes a row
// lock on the singleton state row, serializing all mutating calls into the
// globally ordered sequence the ledger semantics assume.
func (r *Repository) Update(ctx context.Context, fn func(ports.LedgerTx) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row ledgerStateModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", ledgerStateID).
			First(&row).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errStateNotInitialized
			}
			return err
		}
		return fn(&writer{reader: reader{db: tx}, db: tx})
	})
}

type reader struct {
	db *gorm.DB
}

func (r *reader) State(_ context.Context) (entities.LedgerState, error) {
	var row ledgerStateModel
	err := r.db.Where("id = ?", ledgerStateID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.LedgerState{}, errStateNotInitialized
		}
		return entities.LedgerState{}, err
	}
	return row.toEntity(), nil
}

func (r *reader) Token(_ context.Context, tokenID uint64) (entities.Token, bool, error) {
	var row tokenModel
	err := r.db.Where("token_id = ?", tokenID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Token{}, false, nil
		}
		return entities.Token{}, false, err
	}
	return row.toEntity(), true, nil
}

func (r *reader) ListTokens(_ context.Context, offset int, limit int) ([]entities.Token, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var rows []tokenModel
	if err := r.db.Model(&tokenModel{}).
		Order("token_id ASC").
		Offset(offset).
		Limit(limit).
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]entities.Token, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *reader) ListPayoutsByAccount(_ context.Context, account string, limit int, offset int) ([]entities.Payout, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var rows []payoutModel
	if err := r.db.Model(&payoutModel{}).
		Where("account = ?", account).
		Order("seq DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]entities.Payout, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

type writer struct {
	reader
	db *gorm.DB
}

func (w *writer) PutState(_ context.Context, state entities.LedgerState) error {
	row := stateModelFromEntity(state)
	return w.db.Save(&row).Error
}

func (w *writer) PutToken(_ context.Context, token entities.Token) error {
	row := tokenModelFromEntity(token)
	return w.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token_id"}},
			UpdateAll: true,
		}).
		Create(&row).
		Error
}

func (w *writer) AppendPayout(_ context.Context, payout entities.Payout) error {
	row := payoutModelFromEntity(payout)
	return w.db.Create(&row).Error
}

func (w *writer) AppendOutbox(_ context.Context, envelope ports.EventEnvelope) error {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	row := outboxModel{
		OutboxID:     envelope.EventID,
		EventType:    envelope.EventType,
		PartitionKey: envelope.PartitionKey,
		Payload:      payload,
		Status:       outboxStatusPending,
		CreatedAt:    envelope.OccurredAt.UTC(),
	}
	return w.db.Create(&row).Error
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		limit = 100
	}
	var rows []outboxModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", outboxStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]ports.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.OutboxMessage{
			OutboxID:     row.OutboxID,
			EventType:    row.EventType,
			PartitionKey: row.PartitionKey,
			Payload:      row.Payload,
			CreatedAt:    row.CreatedAt,
		})
	}
	return items, nil
}

func (r *Repository) MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&outboxModel{}).
		Where("outbox_id = ?", outboxID).
		Updates(map[string]any{
			"status":       outboxStatusPublished,
			"published_at": publishedAt.UTC(),
		}).
		Error
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
