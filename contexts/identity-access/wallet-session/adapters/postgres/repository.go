package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/En0rm0s/Blockchain/contexts/identity-access/wallet-session/domain/entities"
	domainerrors "github.com/En0rm0s/Blockchain/contexts/identity-access/wallet-session/domain/errors"
)

// Repository persists wallet accounts and sessions in Postgres through GORM.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	return &Repository{db: db, logger: logger}
}

func (r *Repository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&accountModel{}, &sessionModel{})
}

func (r *Repository) CreateAccount(ctx context.Context, account entities.Account) error {
	model := accountModel{
		Address:     account.Address,
		DisplayName: account.DisplayName,
		CreatedAt:   account.CreatedAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAccountExists
		}
		return err
	}
	return nil
}

func (r *Repository) GetAccount(ctx context.Context, address string) (entities.Account, bool, error) {
	var model accountModel
	err := r.db.WithContext(ctx).First(&model, "address = ?", address).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Account{}, false, nil
	}
	if err != nil {
		return entities.Account{}, false, err
	}
	return model.toEntity(), true, nil
}

func (r *Repository) PutSession(ctx context.Context, session entities.Session) error {
	model := sessionModel{
		Token:     session.Token,
		Address:   session.Address,
		CreatedAt: session.CreatedAt.UTC(),
		ExpiresAt: session.ExpiresAt.UTC(),
	}
	return r.db.WithContext(ctx).Save(&model).Error
}

func (r *Repository) GetSession(ctx context.Context, token string) (entities.Session, bool, error) {
	var model sessionModel
	err := r.db.WithContext(ctx).First(&model, "token = ?", token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Session{}, false, nil
	}
	if err != nil {
		return entities.Session{}, false, err
	}
	return model.toEntity(), true, nil
}

func (r *Repository) DeleteSession(ctx context.Context, token string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&sessionModel{}, "token = ?", token)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *Repository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int, error) {
	result := r.db.WithContext(ctx).Delete(&sessionModel{}, "expires_at <= ?", now.UTC())
	if result.Error != nil {
		return 0, result.Error
	}
	return int(result.RowsAffected), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
