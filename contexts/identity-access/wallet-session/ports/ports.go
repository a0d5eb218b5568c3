package ports

import (
	"context"
	"time"

	"github.com/En0rm0s/Blockchain/contexts/identity-access/wallet-session/domain/entities"
)

type AccountRepository interface {
	CreateAccount(ctx context.Context, account entities.Account) error
	GetAccount(ctx context.Context, address string) (entities.Account, bool, error)
}

type SessionRepository interface {
	PutSession(ctx context.Context, session entities.Session) error
	GetSession(ctx context.Context, token string) (entities.Session, bool, error)
	DeleteSession(ctx context.Context, token string) (bool, error)
	// DeleteExpiredSessions removes sessions whose expiry is at or before now
	// and reports how many were removed.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int, error)
}

type Clock interface {
	Now() time.Time
}

type TokenGenerator interface {
	NewToken(ctx context.Context) (string, error)
}
