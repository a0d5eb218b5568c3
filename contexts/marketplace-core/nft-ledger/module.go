package nftledger

import (
	"log/slog"

	httpadapter "github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/adapters/http"
	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/adapters/memory"
	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/application/commands"
	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/application/queries"
	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/domain/entities"
	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/ports"
)

// Module is the composition surface for the ledger. Runtime wiring consumes
// Handler; Store is exposed for tests/inspection when in-memory adapters are
// used.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Store       ports.LedgerStore
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

// NewModule wires the ledger use cases against explicit ports.
func NewModule(deps Dependencies) Module {
	handler := httpadapter.Handler{
		Mint: commands.MintTokenUseCase{
			Store:  deps.Store,
			Clock:  deps.Clock,
			IDGen:  deps.IDGenerator,
			Logger: deps.Logger,
		},
		ListForSale: commands.ListForSaleUseCase{
			Store:  deps.Store,
			Clock:  deps.Clock,
			IDGen:  deps.IDGenerator,
			Logger: deps.Logger,
		},
		CancelSale: commands.CancelSaleUseCase{
			Store:  deps.Store,
			Clock:  deps.Clock,
			IDGen:  deps.IDGenerator,
			Logger: deps.Logger,
		},
		Buy: commands.BuyTokenUseCase{
			Store:  deps.Store,
			Clock:  deps.Clock,
			IDGen:  deps.IDGenerator,
			Logger: deps.Logger,
		},
		Transfer: commands.TransferTokenUseCase{
			Store:  deps.Store,
			Clock:  deps.Clock,
			IDGen:  deps.IDGenerator,
			Logger: deps.Logger,
		},
		UpdateAuthor: commands.UpdateAuthorUseCase{
			Store:  deps.Store,
			Clock:  deps.Clock,
			IDGen:  deps.IDGenerator,
			Logger: deps.Logger,
		},
		WithdrawFees: commands.WithdrawFeesUseCase{
			Store:  deps.Store,
			Clock:  deps.Clock,
			IDGen:  deps.IDGenerator,
			Logger: deps.Logger,
		},
		SetPause: commands.SetPauseUseCase{
			Store:  deps.Store,
			Clock:  deps.Clock,
			IDGen:  deps.IDGenerator,
			Logger: deps.Logger,
		},
		UpdateMintPrice: commands.UpdateMintPriceUseCase{
			Store:  deps.Store,
			Clock:  deps.Clock,
			IDGen:  deps.IDGenerator,
			Logger: deps.Logger,
		},
		TransferAdmin: commands.TransferAdminUseCase{
			Store:  deps.Store,
			Clock:  deps.Clock,
			IDGen:  deps.IDGenerator,
			Logger: deps.Logger,
		},
		GetToken:      queries.GetTokenUseCase{Store: deps.Store, Logger: deps.Logger},
		LedgerSummary: queries.LedgerSummaryUseCase{Store: deps.Store, Logger: deps.Logger},
		IsForSale:     queries.IsForSaleUseCase{Store: deps.Store, Logger: deps.Logger},
		ListTokens:    queries.ListTokensUseCase{Store: deps.Store, Logger: deps.Logger},
		ListPayouts:   queries.ListPayoutsUseCase{Store: deps.Store, Logger: deps.Logger},
		Logger:        deps.Logger,
	}

	return Module{Handler: handler}
}

// NewInMemoryModule wires the ledger against the in-memory store. The fee
// percents are fixed for the lifetime of the store and validated here.
func NewInMemoryModule(admin string, mintPrice int64, royaltyPercent, platformFeePercent int, logger *slog.Logger) (Module, error) {
	state, err := entities.NewLedgerState(admin, mintPrice, royaltyPercent, platformFeePercent)
	if err != nil {
		return Module{}, err
	}
	store := memory.NewStore(state)
	module := NewModule(Dependencies{
		Store:       store,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module, nil
}
