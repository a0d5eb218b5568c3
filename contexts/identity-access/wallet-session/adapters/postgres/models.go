package postgresadapter

import (
	"time"

	"github.com/En0rm0s/Blockchain/contexts/identity-access/wallet-session/domain/entities"
)

type accountModel struct {
	Address     string    `gorm:"column:address;primaryKey"`
	DisplayName string    `gorm:"column:display_name"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (accountModel) TableName() string { return "wallet_accounts" }

func (m accountModel) toEntity() entities.Account {
	return entities.Account{
		Address:     m.Address,
		DisplayName: m.DisplayName,
		CreatedAt:   m.CreatedAt,
	}
}

type sessionModel struct {
	Token     string    `gorm:"column:token;primaryKey"`
	Address   string    `gorm:"column:address;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
	ExpiresAt time.Time `gorm:"column:expires_at;index"`
}

func (sessionModel) TableName() string { return "wallet_sessions" }

func (m sessionModel) toEntity() entities.Session {
	return entities.Session{
		Token:     m.Token,
		Address:   m.Address,
		CreatedAt: m.CreatedAt,
		ExpiresAt: m.ExpiresAt,
	}
}
