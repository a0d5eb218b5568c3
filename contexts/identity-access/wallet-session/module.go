package walletsession

import (
	"log/slog"
	"time"

	httpadapter "github.com/En0rm0s/Blockchain/contexts/identity-access/wallet-session/adapters/http"
	"github.com/En0rm0s/Blockchain/contexts/identity-access/wallet-session/adapters/memory"
	"github.com/En0rm0s/Blockchain/contexts/identity-access/wallet-session/application/commands"
	"github.com/En0rm0s/Blockchain/contexts/identity-access/wallet-session/application/queries"
	"github.com/En0rm0s/Blockchain/contexts/identity-access/wallet-session/ports"
)

// Module is the composition surface for wallet sessions. Runtime wiring
// consumes Handler; Store is exposed for tests/inspection when in-memory
// adapters are used.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Accounts   ports.AccountRepository
	Sessions   ports.SessionRepository
	Clock      ports.Clock
	Tokens     ports.TokenGenerator
	SessionTTL time.Duration
	Logger     *slog.Logger
}

// NewModule wires the wallet-session use cases against explicit ports.
func NewModule(deps Dependencies) Module {
	handler := httpadapter.Handler{
		Register: commands.RegisterAccountUseCase{
			Accounts: deps.Accounts,
			Clock:    deps.Clock,
			Logger:   deps.Logger,
		},
		OpenSession: commands.OpenSessionUseCase{
			Accounts: deps.Accounts,
			Sessions: deps.Sessions,
			Clock:    deps.Clock,
			Tokens:   deps.Tokens,
			TTL:      deps.SessionTTL,
			Logger:   deps.Logger,
		},
		CloseSession: commands.CloseSessionUseCase{
			Sessions: deps.Sessions,
			Logger:   deps.Logger,
		},
		ResolveSession: queries.ResolveSessionUseCase{
			Sessions: deps.Sessions,
			Clock:    deps.Clock,
			Logger:   deps.Logger,
		},
		GetAccount: queries.GetAccountUseCase{
			Accounts: deps.Accounts,
			Logger:   deps.Logger,
		},
		Logger: deps.Logger,
	}
	return Module{Handler: handler}
}

// NewInMemoryModule wires wallet sessions against the in-memory store.
func NewInMemoryModule(sessionTTL time.Duration, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Accounts:   store,
		Sessions:   store,
		Clock:      store,
		Tokens:     store,
		SessionTTL: sessionTTL,
		Logger:     logger,
	})
	module.Store = store
	return module
}
