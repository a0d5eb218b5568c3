package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"github.com/En0rm0s/Blockchain/contexts/identity-access/wallet-session/application/commands"
	"github.com/En0rm0s/Blockchain/contexts/identity-access/wallet-session/application/queries"
	httptransport "github.com/En0rm0s/Blockchain/contexts/identity-access/wallet-session/transport/http"
)

type Handler struct {
	Register       commands.RegisterAccountUseCase
	OpenSession    commands.OpenSessionUseCase
	CloseSession   commands.CloseSessionUseCase
	ResolveSession queries.ResolveSessionUseCase
	GetAccount     queries.GetAccountUseCase
	Logger         *slog.Logger
}

// RegisterAccountHandler godoc
// @Summary Register a wallet address
// @Tags wallet-session
// @Accept json
// @Produce json
// @Param request body httptransport.RegisterAccountRequest true "Account details"
// @Success 200 {object} httptransport.AccountResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /v1/accounts [post]
func (h Handler) RegisterAccountHandler(ctx context.Context, req httptransport.RegisterAccountRequest) (httptransport.AccountResponse, error) {
	result, err := h.Register.Execute(ctx, commands.RegisterAccountCommand{
		Address:     req.Address,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		return httptransport.AccountResponse{}, err
	}
	return httptransport.AccountResponse{
		Status: "success",
		Data: httptransport.AccountDTO{
			Address:     result.Account.Address,
			DisplayName: result.Account.DisplayName,
			CreatedAt:   result.Account.CreatedAt.UTC().Format(time.RFC3339),
		},
	}, nil
}

// OpenSessionHandler godoc
// @Summary Open a session
// @Description Issues a bearer token for a registered wallet address.
// @Tags wallet-session
// @Accept json
// @Produce json
// @Param request body httptransport.OpenSessionRequest true "Wallet address"
// @Success 200 {object} httptransport.SessionResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /v1/sessions [post]
func (h Handler) OpenSessionHandler(ctx context.Context, req httptransport.OpenSessionRequest) (httptransport.SessionResponse, error) {
	result, err := h.OpenSession.Execute(ctx, commands.OpenSessionCommand{Address: req.Address})
	if err != nil {
		return httptransport.SessionResponse{}, err
	}
	resp := httptransport.SessionResponse{Status: "success"}
	resp.Data.Token = result.Session.Token
	resp.Data.Address = result.Session.Address
	resp.Data.ExpiresAt = result.Session.ExpiresAt.UTC().Format(time.RFC3339)
	return resp, nil
}

// CloseSessionHandler godoc
// @Summary Close the current session
// @Tags wallet-session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httptransport.StatusResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /v1/sessions [delete]
func (h Handler) CloseSessionHandler(ctx context.Context, token string) (httptransport.StatusResponse, error) {
	if err := h.CloseSession.Execute(ctx, commands.CloseSessionCommand{Token: token}); err != nil {
		return httptransport.StatusResponse{}, err
	}
	return httptransport.StatusResponse{Status: "success"}, nil
}

// GetAccountHandler godoc
// @Summary Get an account
// @Tags wallet-session
// @Produce json
// @Param address path string true "Wallet address"
// @Success 200 {object} httptransport.AccountResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /v1/accounts/{address} [get]
func (h Handler) GetAccountHandler(ctx context.Context, address string) (httptransport.AccountResponse, error) {
	result, err := h.GetAccount.Execute(ctx, queries.GetAccountQuery{Address: address})
	if err != nil {
		return httptransport.AccountResponse{}, err
	}
	return httptransport.AccountResponse{
		Status: "success",
		Data: httptransport.AccountDTO{
			Address:     result.Account.Address,
			DisplayName: result.Account.DisplayName,
			CreatedAt:   result.Account.CreatedAt.UTC().Format(time.RFC3339),
		},
	}, nil
}

// ResolveAddress maps a bearer token to its wallet address. The platform
// auth middleware calls this before dispatching ledger operations.
func (h Handler) ResolveAddress(ctx context.Context, token string) (string, error) {
	result, err := h.ResolveSession.Execute(ctx, queries.ResolveSessionQuery{Token: token})
	if err != nil {
		return "", err
	}
	return result.Address, nil
}
