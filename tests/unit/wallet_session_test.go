package unit

import (
	"context"
	"errors"
	"testing"
	"time"

	walletsession "github.com/En0rm0s/Blockchain/contexts/identity-access/wallet-session"
	walleterrors "github.com/En0rm0s/Blockchain/contexts/identity-access/wallet-session/domain/errors"
	"github.com/En0rm0s/Blockchain/contexts/identity-access/wallet-session/application/workers"
	wallethttp "github.com/En0rm0s/Blockchain/contexts/identity-access/wallet-session/transport/http"
)

func TestWalletSessionLifecycle(t *testing.T) {
	module := walletsession.NewInMemoryModule(time.Hour, nil)
	ctx := context.Background()

	if _, err := module.Handler.RegisterAccountHandler(ctx, wallethttp.RegisterAccountRequest{Address: "", DisplayName: "Alice"}); !errors.Is(err, walleterrors.ErrInvalidAddress) {
		t.Fatalf("expected invalid address, got %v", err)
	}
	if _, err := module.Handler.RegisterAccountHandler(ctx, wallethttp.RegisterAccountRequest{Address: "alice", DisplayName: " "}); !errors.Is(err, walleterrors.ErrInvalidDisplayName) {
		t.Fatalf("expected invalid display name, got %v", err)
	}

	if _, err := module.Handler.RegisterAccountHandler(ctx, wallethttp.RegisterAccountRequest{Address: "alice", DisplayName: "Alice"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := module.Handler.RegisterAccountHandler(ctx, wallethttp.RegisterAccountRequest{Address: "alice", DisplayName: "Imposter"}); !errors.Is(err, walleterrors.ErrAccountExists) {
		t.Fatalf("expected duplicate rejection, got %v", err)
	}

	if _, err := module.Handler.OpenSessionHandler(ctx, wallethttp.OpenSessionRequest{Address: "bob"}); !errors.Is(err, walleterrors.ErrAccountNotFound) {
		t.Fatalf("expected unknown account rejection, got %v", err)
	}

	session, err := module.Handler.OpenSessionHandler(ctx, wallethttp.OpenSessionRequest{Address: "alice"})
	if err != nil {
		t.Fatalf("open session failed: %v", err)
	}
	address, err := module.Handler.ResolveAddress(ctx, session.Data.Token)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if address != "alice" {
		t.Fatalf("expected alice, got %s", address)
	}

	if _, err := module.Handler.CloseSessionHandler(ctx, session.Data.Token); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if _, err := module.Handler.ResolveAddress(ctx, session.Data.Token); !errors.Is(err, walleterrors.ErrSessionNotFound) {
		t.Fatalf("expected closed session rejection, got %v", err)
	}
	if _, err := module.Handler.CloseSessionHandler(ctx, session.Data.Token); !errors.Is(err, walleterrors.ErrSessionNotFound) {
		t.Fatalf("expected double close rejection, got %v", err)
	}
}

func TestWalletSessionExpiry(t *testing.T) {
	// A negative TTL would never be configured, so drive expiry with a
	// sub-second TTL and the expirer worker.
	module := walletsession.NewInMemoryModule(time.Nanosecond, nil)
	ctx := context.Background()

	if _, err := module.Handler.RegisterAccountHandler(ctx, wallethttp.RegisterAccountRequest{Address: "alice", DisplayName: "Alice"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	session, err := module.Handler.OpenSessionHandler(ctx, wallethttp.OpenSessionRequest{Address: "alice"})
	if err != nil {
		t.Fatalf("open session failed: %v", err)
	}

	time.Sleep(time.Millisecond)
	if _, err := module.Handler.ResolveAddress(ctx, session.Data.Token); !errors.Is(err, walleterrors.ErrSessionExpired) {
		t.Fatalf("expected expired session, got %v", err)
	}

	expirer := workers.SessionExpirer{Sessions: module.Store, Clock: module.Store}
	if err := expirer.RunOnce(ctx); err != nil {
		t.Fatalf("expirer failed: %v", err)
	}
	if _, err := module.Handler.ResolveAddress(ctx, session.Data.Token); !errors.Is(err, walleterrors.ErrSessionNotFound) {
		t.Fatalf("expected reaped session to be gone, got %v", err)
	}
}
