package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	walletsession "github.com/En0rm0s/Blockchain/contexts/identity-access/wallet-session"
	walleterrors "github.com/En0rm0s/Blockchain/contexts/identity-access/wallet-session/domain/errors"
	wallethttp "github.com/En0rm0s/Blockchain/contexts/identity-access/wallet-session/transport/http"
	nftledger "github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger"
	ledgererrors "github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/domain/errors"
	ledgerhttp "github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/transport/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/En0rm0s/Blockchain/internal/platform/httpserver/docs"
)

type Server struct {
	mux    *http.ServeMux
	logger *slog.Logger
	addr   string
	ledger nftledger.Module
	wallet walletsession.Module
}

func New(
	ledger nftledger.Module,
	wallet walletsession.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:    http.NewServeMux(),
		logger: logger,
		addr:   addr,
		ledger: ledger,
		wallet: wallet,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the routing table for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /v1/accounts", s.handleRegisterAccount)
	s.mux.HandleFunc("GET /v1/accounts/{address}", s.handleGetAccount)
	s.mux.HandleFunc("GET /v1/accounts/{address}/payouts", s.handleListPayouts)
	s.mux.HandleFunc("POST /v1/sessions", s.handleOpenSession)
	s.mux.HandleFunc("DELETE /v1/sessions", s.handleCloseSession)

	s.mux.HandleFunc("GET /v1/ledger", s.handleLedgerSummary)
	s.mux.HandleFunc("GET /v1/tokens", s.handleListTokens)
	s.mux.HandleFunc("GET /v1/tokens/{token_id}", s.handleGetToken)
	s.mux.HandleFunc("GET /v1/tokens/{token_id}/for-sale", s.handleIsForSale)

	s.mux.HandleFunc("POST /v1/tokens", s.handleMint)
	s.mux.HandleFunc("POST /v1/tokens/{token_id}/list", s.handleListForSale)
	s.mux.HandleFunc("POST /v1/tokens/{token_id}/cancel", s.handleCancelSale)
	s.mux.HandleFunc("POST /v1/tokens/{token_id}/buy", s.handleBuy)
	s.mux.HandleFunc("POST /v1/tokens/{token_id}/transfer", s.handleTransfer)
	s.mux.HandleFunc("POST /v1/tokens/{token_id}/author", s.handleUpdateAuthor)

	s.mux.HandleFunc("POST /v1/admin/withdrawals", s.handleWithdrawFees)
	s.mux.HandleFunc("POST /v1/admin/pause", s.handleSetPause)
	s.mux.HandleFunc("POST /v1/admin/mint-price", s.handleUpdateMintPrice)
	s.mux.HandleFunc("POST /v1/admin/transfer", s.handleTransferAdmin)
}

func (s *Server) handleRegisterAccount(w http.ResponseWriter, r *http.Request) {
	var req wallethttp.RegisterAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeWalletError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.wallet.Handler.RegisterAccountHandler(r.Context(), req)
	if err != nil {
		writeWalletDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetAccount(w http.ResponseWriter, r *http.Request) {
	resp, err := s.wallet.Handler.GetAccountHandler(r.Context(), r.PathValue("address"))
	if err != nil {
		writeWalletDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleOpenSession(w http.ResponseWriter, r *http.Request) {
	var req wallethttp.OpenSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeWalletError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.wallet.Handler.OpenSessionHandler(r.Context(), req)
	if err != nil {
		writeWalletDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCloseSession(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		writeWalletError(w, http.StatusUnauthorized, "missing_token", "Authorization bearer token is required")
		return
	}
	resp, err := s.wallet.Handler.CloseSessionHandler(r.Context(), token)
	if err != nil {
		writeWalletDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLedgerSummary(w http.ResponseWriter, r *http.Request) {
	resp, err := s.ledger.Handler.LedgerSummaryHandler(r.Context())
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListTokens(w http.ResponseWriter, r *http.Request) {
	offset, ok := queryInt(w, r, "offset")
	if !ok {
		return
	}
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}
	resp, err := s.ledger.Handler.ListTokensHandler(r.Context(), offset, limit)
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetToken(w http.ResponseWriter, r *http.Request) {
	tokenID, ok := pathTokenID(w, r)
	if !ok {
		return
	}
	resp, err := s.ledger.Handler.GetTokenHandler(r.Context(), tokenID)
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleIsForSale(w http.ResponseWriter, r *http.Request) {
	tokenID, ok := pathTokenID(w, r)
	if !ok {
		return
	}
	resp, err := s.ledger.Handler.IsForSaleHandler(r.Context(), tokenID)
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListPayouts(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}
	offset, ok := queryInt(w, r, "offset")
	if !ok {
		return
	}
	resp, err := s.ledger.Handler.ListPayoutsHandler(r.Context(), r.PathValue("address"), limit, offset)
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMint(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	payment, ok := paymentAmount(w, r)
	if !ok {
		return
	}
	var req ledgerhttp.MintTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLedgerError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.ledger.Handler.MintHandler(r.Context(), caller, payment, req)
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListForSale(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	tokenID, ok := pathTokenID(w, r)
	if !ok {
		return
	}
	var req ledgerhttp.ListForSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLedgerError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.ledger.Handler.ListForSaleHandler(r.Context(), caller, tokenID, req)
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCancelSale(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	tokenID, ok := pathTokenID(w, r)
	if !ok {
		return
	}
	resp, err := s.ledger.Handler.CancelSaleHandler(r.Context(), caller, tokenID)
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBuy(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	payment, ok := paymentAmount(w, r)
	if !ok {
		return
	}
	tokenID, ok := pathTokenID(w, r)
	if !ok {
		return
	}
	resp, err := s.ledger.Handler.BuyHandler(r.Context(), caller, payment, tokenID)
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTransfer(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	payment, ok := paymentAmount(w, r)
	if !ok {
		return
	}
	tokenID, ok := pathTokenID(w, r)
	if !ok {
		return
	}
	var req ledgerhttp.TransferTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLedgerError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.ledger.Handler.TransferHandler(r.Context(), caller, payment, tokenID, req)
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateAuthor(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	tokenID, ok := pathTokenID(w, r)
	if !ok {
		return
	}
	var req ledgerhttp.UpdateAuthorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLedgerError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.ledger.Handler.UpdateAuthorHandler(r.Context(), caller, tokenID, req)
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleWithdrawFees(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	resp, err := s.ledger.Handler.WithdrawFeesHandler(r.Context(), caller)
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSetPause(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	var req ledgerhttp.SetPauseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLedgerError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.ledger.Handler.SetPauseHandler(r.Context(), caller, req)
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateMintPrice(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	var req ledgerhttp.UpdateMintPriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLedgerError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.ledger.Handler.UpdateMintPriceHandler(r.Context(), caller, req)
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTransferAdmin(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	var req ledgerhttp.TransferAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLedgerError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.ledger.Handler.TransferAdminHandler(r.Context(), caller, req)
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// authenticate resolves the bearer session to a wallet address. Writes the
// error response itself so handlers can bail with a plain bool check.
func (s *Server) authenticate(w http.ResponseWriter, r *http.Request) (string, bool) {
	token := bearerToken(r)
	if token == "" {
		writeLedgerError(w, http.StatusUnauthorized, "missing_token", "Authorization bearer token is required")
		return "", false
	}
	caller, err := s.wallet.Handler.ResolveAddress(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, walleterrors.ErrSessionNotFound):
			writeLedgerError(w, http.StatusUnauthorized, "invalid_session", "session token is not recognized")
		case errors.Is(err, walleterrors.ErrSessionExpired):
			writeLedgerError(w, http.StatusUnauthorized, "session_expired", "session token has expired")
		default:
			writeLedgerError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		}
		return "", false
	}
	return caller, true
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// paymentAmount reads the payment attached to a call. A missing header means
// no payment was attached.
func paymentAmount(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := strings.TrimSpace(r.Header.Get("X-Payment-Amount"))
	if raw == "" {
		return 0, true
	}
	amount, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || amount < 0 {
		writeLedgerError(w, http.StatusBadRequest, "invalid_payment", "X-Payment-Amount must be a non-negative integer")
		return 0, false
	}
	return amount, true
}

func pathTokenID(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	tokenID, err := strconv.ParseUint(r.PathValue("token_id"), 10, 64)
	if err != nil {
		writeLedgerError(w, http.StatusBadRequest, "invalid_token_id", "token_id must be a non-negative integer")
		return 0, false
	}
	return tokenID, true
}

func queryInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		writeLedgerError(w, http.StatusBadRequest, "invalid_"+name, name+" must be an integer")
		return 0, false
	}
	return value, true
}

func writeLedgerDomainError(w http.ResponseWriter, err error) {
	switch ledgererrors.Kind(err) {
	case ledgererrors.KindUnauthorized:
		writeLedgerError(w, http.StatusForbidden, "unauthorized", err.Error())
	case ledgererrors.KindNotFound:
		writeLedgerError(w, http.StatusNotFound, "not_found", err.Error())
	case ledgererrors.KindInvalidState:
		writeLedgerError(w, http.StatusConflict, "invalid_state", err.Error())
	case ledgererrors.KindInvalidAmount:
		writeLedgerError(w, http.StatusPaymentRequired, "invalid_amount", err.Error())
	case ledgererrors.KindInvalidInput:
		writeLedgerError(w, http.StatusBadRequest, "invalid_input", err.Error())
	default:
		writeLedgerError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeWalletDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, walleterrors.ErrAccountExists):
		writeWalletError(w, http.StatusConflict, "account_exists", err.Error())
	case errors.Is(err, walleterrors.ErrAccountNotFound):
		writeWalletError(w, http.StatusNotFound, "account_not_found", err.Error())
	case errors.Is(err, walleterrors.ErrSessionNotFound):
		writeWalletError(w, http.StatusNotFound, "session_not_found", err.Error())
	case errors.Is(err, walleterrors.ErrSessionExpired):
		writeWalletError(w, http.StatusUnauthorized, "session_expired", err.Error())
	case errors.Is(err, walleterrors.ErrInvalidAddress),
		errors.Is(err, walleterrors.ErrInvalidDisplayName):
		writeWalletError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeWalletError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeLedgerError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, ledgerhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeWalletError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, wallethttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
