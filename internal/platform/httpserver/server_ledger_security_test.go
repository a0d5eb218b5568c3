package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	walletsession "github.com/En0rm0s/Blockchain/contexts/identity-access/wallet-session"
	nftledger "github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	ledger, err := nftledger.NewInMemoryModule("admin", 1_000_000, 5, 2, nil)
	if err != nil {
		t.Fatalf("ledger module: %v", err)
	}
	wallet := walletsession.NewInMemoryModule(time.Hour, nil)
	return New(ledger, wallet, nil, ":0")
}

// openSession registers an address and returns a live bearer token for it.
func openSession(t *testing.T, server *Server, address string) string {
	t.Helper()

	register := httptest.NewRequest(http.MethodPost, "/v1/accounts",
		bytes.NewReader([]byte(`{"address":"`+address+`","display_name":"`+address+`"}`)))
	register.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, register)
	if rr.Code != http.StatusOK {
		t.Fatalf("register %s: expected 200, got %d body=%s", address, rr.Code, rr.Body.String())
	}

	open := httptest.NewRequest(http.MethodPost, "/v1/sessions",
		bytes.NewReader([]byte(`{"address":"`+address+`"}`)))
	open.Header.Set("Content-Type", "application/json")
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, open)
	if rr.Code != http.StatusOK {
		t.Fatalf("open session %s: expected 200, got %d body=%s", address, rr.Code, rr.Body.String())
	}

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode session response: %v", err)
	}
	return resp.Data.Token
}

func TestMintRequiresBearerToken(t *testing.T) {
	server := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/v1/tokens", bytes.NewReader([]byte(`{"metadata":"ipfs://x"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Payment-Amount", "1000000")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestMintRejectsUnknownSessionToken(t *testing.T) {
	server := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/v1/tokens", bytes.NewReader([]byte(`{"metadata":"ipfs://x"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer not-a-session")
	req.Header.Set("X-Payment-Amount", "1000000")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestMintRejectsMalformedPaymentHeader(t *testing.T) {
	server := newTestServer(t)
	token := openSession(t, server, "alice")

	req := httptest.NewRequest(http.MethodPost, "/v1/tokens", bytes.NewReader([]byte(`{"metadata":"ipfs://x"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Payment-Amount", "a-lot")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestMintWithWrongPaymentReturns402(t *testing.T) {
	server := newTestServer(t)
	token := openSession(t, server, "alice")

	req := httptest.NewRequest(http.MethodPost, "/v1/tokens", bytes.NewReader([]byte(`{"metadata":"ipfs://x"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Payment-Amount", "999999")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusPaymentRequired {
		t.Fatalf("expected 402, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestAdminRoutesForbiddenForNonAdmin(t *testing.T) {
	server := newTestServer(t)
	token := openSession(t, server, "alice")

	routes := []struct {
		path string
		body string
	}{
		{"/v1/admin/withdrawals", `{}`},
		{"/v1/admin/pause", `{"paused":true}`},
		{"/v1/admin/mint-price", `{"new_price":5}`},
		{"/v1/admin/transfer", `{"new_admin":"mallory"}`},
	}
	for _, route := range routes {
		req := httptest.NewRequest(http.MethodPost, route.path, bytes.NewReader([]byte(route.body)))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		rr := httptest.NewRecorder()
		server.mux.ServeHTTP(rr, req)

		if rr.Code != http.StatusForbidden {
			t.Fatalf("%s: expected 403, got %d body=%s", route.path, rr.Code, rr.Body.String())
		}
	}
}

func TestMintListBuyEndToEnd(t *testing.T) {
	server := newTestServer(t)
	alice := openSession(t, server, "alice")
	bob := openSession(t, server, "bob")

	mint := httptest.NewRequest(http.MethodPost, "/v1/tokens", bytes.NewReader([]byte(`{"metadata":"ipfs://clip"}`)))
	mint.Header.Set("Content-Type", "application/json")
	mint.Header.Set("Authorization", "Bearer "+alice)
	mint.Header.Set("X-Payment-Amount", "1000000")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, mint)
	if rr.Code != http.StatusOK {
		t.Fatalf("mint: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	list := httptest.NewRequest(http.MethodPost, "/v1/tokens/0/list", bytes.NewReader([]byte(`{"price":10000000}`)))
	list.Header.Set("Content-Type", "application/json")
	list.Header.Set("Authorization", "Bearer "+alice)
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, list)
	if rr.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	buy := httptest.NewRequest(http.MethodPost, "/v1/tokens/0/buy", nil)
	buy.Header.Set("Authorization", "Bearer "+bob)
	buy.Header.Set("X-Payment-Amount", "10000000")
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, buy)
	if rr.Code != http.StatusOK {
		t.Fatalf("buy: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var sale struct {
		Data struct {
			Royalty      int64 `json:"royalty"`
			PlatformFee  int64 `json:"platform_fee"`
			SellerAmount int64 `json:"seller_amount"`
			Token        struct {
				Owner string `json:"owner"`
			} `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &sale); err != nil {
		t.Fatalf("decode buy response: %v", err)
	}
	if sale.Data.Token.Owner != "bob" {
		t.Fatalf("expected bob as owner, got %s", sale.Data.Token.Owner)
	}
	if sale.Data.Royalty != 500000 || sale.Data.PlatformFee != 200000 || sale.Data.SellerAmount != 9300000 {
		t.Fatalf("unexpected split: %+v", sale.Data)
	}

	status := httptest.NewRequest(http.MethodGet, "/v1/tokens/0/for-sale", nil)
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, status)
	if rr.Code != http.StatusOK {
		t.Fatalf("for-sale: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestGetUnknownTokenReturns404(t *testing.T) {
	server := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/v1/tokens/42", nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestInvalidTokenIDReturns400(t *testing.T) {
	server := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/v1/tokens/abc", nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}
