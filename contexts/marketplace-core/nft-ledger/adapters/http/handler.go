package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/application/commands"
	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/application/queries"
	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/domain/entities"
	httptransport "github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/transport/http"
)

// Handler adapts the ledger use cases to transport DTOs. Caller identity and
// attached payment arrive resolved from the platform layer; the handler
// never inspects how they were established.
type Handler struct {
	Mint            commands.MintTokenUseCase
	ListForSale     commands.ListForSaleUseCase
	CancelSale      commands.CancelSaleUseCase
	Buy             commands.BuyTokenUseCase
	Transfer        commands.TransferTokenUseCase
	UpdateAuthor    commands.UpdateAuthorUseCase
	WithdrawFees    commands.WithdrawFeesUseCase
	SetPause        commands.SetPauseUseCase
	UpdateMintPrice commands.UpdateMintPriceUseCase
	TransferAdmin   commands.TransferAdminUseCase
	GetToken        queries.GetTokenUseCase
	LedgerSummary   queries.LedgerSummaryUseCase
	IsForSale       queries.IsForSaleUseCase
	ListTokens      queries.ListTokensUseCase
	ListPayouts     queries.ListPayoutsUseCase
	Logger          *slog.Logger
}

// MintHandler godoc
// @Summary Mint a token
// @Description Creates a new token owned and authored by the caller. The attached payment must equal the current mint price.
// @Tags nft-ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Payment-Amount header int true "Attached payment in micro-units"
// @Param request body httptransport.MintTokenRequest true "Mint request"
// @Success 200 {object} httptransport.TokenResponse
// @Failure 402 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /v1/tokens [post]
func (h Handler) MintHandler(ctx context.Context, caller string, payment int64, req httptransport.MintTokenRequest) (httptransport.TokenResponse, error) {
	result, err := h.Mint.Execute(ctx, commands.MintTokenCommand{
		Caller:   caller,
		Payment:  payment,
		Metadata: req.Metadata,
	})
	if err != nil {
		return httptransport.TokenResponse{}, err
	}
	return httptransport.TokenResponse{Status: "success", Data: toTokenDTO(result.Token)}, nil
}

// ListForSaleHandler godoc
// @Summary List a token for sale
// @Description Marks a token as for sale at a positive price. Owner only.
// @Tags nft-ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param token_id path int true "Token id"
// @Param request body httptransport.ListForSaleRequest true "Listing price"
// @Success 200 {object} httptransport.TokenResponse
// @Failure 402 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /v1/tokens/{token_id}/list [post]
func (h Handler) ListForSaleHandler(ctx context.Context, caller string, tokenID uint64, req httptransport.ListForSaleRequest) (httptransport.TokenResponse, error) {
	result, err := h.ListForSale.Execute(ctx, commands.ListForSaleCommand{
		Caller:  caller,
		TokenID: tokenID,
		Price:   req.Price,
	})
	if err != nil {
		return httptransport.TokenResponse{}, err
	}
	return httptransport.TokenResponse{Status: "success", Data: toTokenDTO(result.Token)}, nil
}

// CancelSaleHandler godoc
// @Summary Cancel a sale
// @Description Delists a token. Owner only; the token must currently be for sale.
// @Tags nft-ledger
// @Produce json
// @Security BearerAuth
// @Param token_id path int true "Token id"
// @Success 200 {object} httptransport.TokenResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /v1/tokens/{token_id}/cancel [post]
func (h Handler) CancelSaleHandler(ctx context.Context, caller string, tokenID uint64) (httptransport.TokenResponse, error) {
	result, err := h.CancelSale.Execute(ctx, commands.CancelSaleCommand{
		Caller:  caller,
		TokenID: tokenID,
	})
	if err != nil {
		return httptransport.TokenResponse{}, err
	}
	return httptransport.TokenResponse{Status: "success", Data: toTokenDTO(result.Token)}, nil
}

// BuyHandler godoc
// @Summary Buy a listed token
// @Description Settles a sale atomically: royalty to the author, proceeds to the seller, platform fee to the ledger, ownership to the caller.
// @Tags nft-ledger
// @Produce json
// @Security BearerAuth
// @Param token_id path int true "Token id"
// @Param X-Payment-Amount header int true "Attached payment; must equal the listed price"
// @Success 200 {object} httptransport.BuyTokenResponse
// @Failure 402 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /v1/tokens/{token_id}/buy [post]
func (h Handler) BuyHandler(ctx context.Context, caller string, payment int64, tokenID uint64) (httptransport.BuyTokenResponse, error) {
	result, err := h.Buy.Execute(ctx, commands.BuyTokenCommand{
		Caller:  caller,
		Payment: payment,
		TokenID: tokenID,
	})
	if err != nil {
		return httptransport.BuyTokenResponse{}, err
	}
	return httptransport.BuyTokenResponse{
		Status: "success",
		Data: httptransport.SaleDTO{
			Token:        toTokenDTO(result.Token),
			Buyer:        result.Token.Owner,
			Seller:       result.Seller,
			Author:       result.Author,
			Royalty:      result.Split.Royalty,
			PlatformFee:  result.Split.PlatformFee,
			SellerAmount: result.Split.SellerAmount,
		},
	}, nil
}

// TransferHandler godoc
// @Summary Transfer a token
// @Description Moves ownership without payment. Owner only; listed tokens must be delisted first.
// @Tags nft-ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param token_id path int true "Token id"
// @Param request body httptransport.TransferTokenRequest true "New owner address"
// @Success 200 {object} httptransport.TokenResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 402 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /v1/tokens/{token_id}/transfer [post]
func (h Handler) TransferHandler(ctx context.Context, caller string, payment int64, tokenID uint64, req httptransport.TransferTokenRequest) (httptransport.TokenResponse, error) {
	result, err := h.Transfer.Execute(ctx, commands.TransferTokenCommand{
		Caller:   caller,
		Payment:  payment,
		TokenID:  tokenID,
		NewOwner: req.NewOwner,
	})
	if err != nil {
		return httptransport.TokenResponse{}, err
	}
	return httptransport.TokenResponse{Status: "success", Data: toTokenDTO(result.Token)}, nil
}

// UpdateAuthorHandler godoc
// @Summary Update the royalty address
// @Description Redirects future royalties to a new address. Current author only.
// @Tags nft-ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param token_id path int true "Token id"
// @Param request body httptransport.UpdateAuthorRequest true "New author address"
// @Success 200 {object} httptransport.TokenResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /v1/tokens/{token_id}/author [post]
func (h Handler) UpdateAuthorHandler(ctx context.Context, caller string, tokenID uint64, req httptransport.UpdateAuthorRequest) (httptransport.TokenResponse, error) {
	result, err := h.UpdateAuthor.Execute(ctx, commands.UpdateAuthorCommand{
		Caller:    caller,
		TokenID:   tokenID,
		NewAuthor: req.NewAuthor,
	})
	if err != nil {
		return httptransport.TokenResponse{}, err
	}
	return httptransport.TokenResponse{Status: "success", Data: toTokenDTO(result.Token)}, nil
}

// WithdrawFeesHandler godoc
// @Summary Withdraw collected fees
// @Description Pays the full fee accumulator to the admin. Admin only.
// @Tags nft-ledger
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httptransport.WithdrawFeesResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /v1/admin/withdrawals [post]
func (h Handler) WithdrawFeesHandler(ctx context.Context, caller string) (httptransport.WithdrawFeesResponse, error) {
	result, err := h.WithdrawFees.Execute(ctx, commands.WithdrawFeesCommand{Caller: caller})
	if err != nil {
		return httptransport.WithdrawFeesResponse{}, err
	}
	resp := httptransport.WithdrawFeesResponse{Status: "success"}
	resp.Data.Admin = result.Payout.Account
	resp.Data.Amount = result.Amount
	return resp, nil
}

// SetPauseHandler godoc
// @Summary Pause or resume the ledger
// @Description Toggles the gate disabling mint and buy. Admin only.
// @Tags nft-ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body httptransport.SetPauseRequest true "Pause flag"
// @Success 200 {object} httptransport.StatusResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Router /v1/admin/pause [post]
func (h Handler) SetPauseHandler(ctx context.Context, caller string, req httptransport.SetPauseRequest) (httptransport.StatusResponse, error) {
	if err := h.SetPause.Execute(ctx, commands.SetPauseCommand{Caller: caller, Paused: req.Paused}); err != nil {
		return httptransport.StatusResponse{}, err
	}
	return httptransport.StatusResponse{Status: "success"}, nil
}

// UpdateMintPriceHandler godoc
// @Summary Update the mint price
// @Description Sets the payment required by future mints. Admin only.
// @Tags nft-ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body httptransport.UpdateMintPriceRequest true "New mint price"
// @Success 200 {object} httptransport.StatusResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Router /v1/admin/mint-price [post]
func (h Handler) UpdateMintPriceHandler(ctx context.Context, caller string, req httptransport.UpdateMintPriceRequest) (httptransport.StatusResponse, error) {
	if err := h.UpdateMintPrice.Execute(ctx, commands.UpdateMintPriceCommand{Caller: caller, NewPrice: req.NewPrice}); err != nil {
		return httptransport.StatusResponse{}, err
	}
	return httptransport.StatusResponse{Status: "success"}, nil
}

// TransferAdminHandler godoc
// @Summary Transfer the admin role
// @Description Reassigns all admin privileges to a different address. Admin only.
// @Tags nft-ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body httptransport.TransferAdminRequest true "New admin address"
// @Success 200 {object} httptransport.StatusResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Router /v1/admin/transfer [post]
func (h Handler) TransferAdminHandler(ctx context.Context, caller string, req httptransport.TransferAdminRequest) (httptransport.StatusResponse, error) {
	if err := h.TransferAdmin.Execute(ctx, commands.TransferAdminCommand{Caller: caller, NewAdmin: req.NewAdmin}); err != nil {
		return httptransport.StatusResponse{}, err
	}
	return httptransport.StatusResponse{Status: "success"}, nil
}

// GetTokenHandler godoc
// @Summary Get a token
// @Description Returns the full token record.
// @Tags nft-ledger
// @Produce json
// @Param token_id path int true "Token id"
// @Success 200 {object} httptransport.TokenResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /v1/tokens/{token_id} [get]
func (h Handler) GetTokenHandler(ctx context.Context, tokenID uint64) (httptransport.TokenResponse, error) {
	result, err := h.GetToken.Execute(ctx, queries.GetTokenQuery{TokenID: tokenID})
	if err != nil {
		return httptransport.TokenResponse{}, err
	}
	return httptransport.TokenResponse{Status: "success", Data: toTokenDTO(result.Token)}, nil
}

// LedgerSummaryHandler godoc
// @Summary Ledger summary
// @Description Returns ledger-wide counters, including the total token count.
// @Tags nft-ledger
// @Produce json
// @Success 200 {object} httptransport.LedgerSummaryResponse
// @Router /v1/ledger [get]
func (h Handler) LedgerSummaryHandler(ctx context.Context) (httptransport.LedgerSummaryResponse, error) {
	result, err := h.LedgerSummary.Execute(ctx)
	if err != nil {
		return httptransport.LedgerSummaryResponse{}, err
	}
	resp := httptransport.LedgerSummaryResponse{Status: "success"}
	resp.Data.TotalTokens = result.TotalTokens
	resp.Data.Admin = result.Admin
	resp.Data.MintPrice = result.MintPrice
	resp.Data.RoyaltyPercent = result.RoyaltyPercent
	resp.Data.PlatformFeePercent = result.PlatformFeePercent
	resp.Data.CollectedFees = result.CollectedFees
	resp.Data.Paused = result.Paused
	return resp, nil
}

// IsForSaleHandler godoc
// @Summary Check sale status
// @Description Returns whether a token is currently listed and at what price.
// @Tags nft-ledger
// @Produce json
// @Param token_id path int true "Token id"
// @Success 200 {object} httptransport.IsForSaleResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /v1/tokens/{token_id}/for-sale [get]
func (h Handler) IsForSaleHandler(ctx context.Context, tokenID uint64) (httptransport.IsForSaleResponse, error) {
	result, err := h.IsForSale.Execute(ctx, queries.IsForSaleQuery{TokenID: tokenID})
	if err != nil {
		return httptransport.IsForSaleResponse{}, err
	}
	resp := httptransport.IsForSaleResponse{Status: "success"}
	resp.Data.TokenID = tokenID
	resp.Data.ForSale = result.ForSale
	resp.Data.Price = result.Price
	return resp, nil
}

// ListTokensHandler godoc
// @Summary List tokens
// @Description Returns tokens ordered by id with offset pagination.
// @Tags nft-ledger
// @Produce json
// @Param offset query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {object} httptransport.ListTokensResponse
// @Router /v1/tokens [get]
func (h Handler) ListTokensHandler(ctx context.Context, offset int, limit int) (httptransport.ListTokensResponse, error) {
	result, err := h.ListTokens.Execute(ctx, queries.ListTokensQuery{Offset: offset, Limit: limit})
	if err != nil {
		return httptransport.ListTokensResponse{}, err
	}
	resp := httptransport.ListTokensResponse{
		Status: "success",
		Total:  result.Total,
		Data:   make([]httptransport.TokenDTO, 0, len(result.Tokens)),
	}
	for _, token := range result.Tokens {
		resp.Data = append(resp.Data, toTokenDTO(token))
	}
	return resp, nil
}

// ListPayoutsHandler godoc
// @Summary Payout history
// @Description Returns payments credited to one account, newest first.
// @Tags nft-ledger
// @Produce json
// @Param address path string true "Account address"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} httptransport.ListPayoutsResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Router /v1/accounts/{address}/payouts [get]
func (h Handler) ListPayoutsHandler(ctx context.Context, account string, limit int, offset int) (httptransport.ListPayoutsResponse, error) {
	result, err := h.ListPayouts.Execute(ctx, queries.ListPayoutsQuery{
		Account: account,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		return httptransport.ListPayoutsResponse{}, err
	}
	resp := httptransport.ListPayoutsResponse{
		Status: "success",
		Data:   make([]httptransport.PayoutDTO, 0, len(result.Payouts)),
	}
	for _, payout := range result.Payouts {
		resp.Data = append(resp.Data, httptransport.PayoutDTO{
			PayoutID:   payout.PayoutID,
			Account:    payout.Account,
			Amount:     payout.Amount,
			Kind:       string(payout.Kind),
			TokenID:    payout.TokenID,
			OccurredAt: payout.OccurredAt.UTC().Format(time.RFC3339),
		})
	}
	return resp, nil
}

func toTokenDTO(token entities.Token) httptransport.TokenDTO {
	return httptransport.TokenDTO{
		TokenID:   token.TokenID,
		Metadata:  token.Metadata,
		Author:    token.Author,
		Owner:     token.Owner,
		Price:     token.Price,
		ForSale:   token.ForSale,
		MintedAt:  token.MintedAt.UTC().Format(time.RFC3339),
		UpdatedAt: token.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
