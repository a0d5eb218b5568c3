package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/En0rm0s/Blockchain/contexts/identity-access/wallet-session/domain/entities"
	domainerrors "github.com/En0rm0s/Blockchain/contexts/identity-access/wallet-session/domain/errors"
)

// Store keeps accounts and sessions in process memory. It satisfies the
// account, session, clock, and token generator ports for development and
// tests.
type Store struct {
	mu       sync.RWMutex
	accounts map[string]entities.Account
	sessions map[string]entities.Session
}

func NewStore() *Store {
	return &Store{
		accounts: make(map[string]entities.Account),
		sessions: make(map[string]entities.Session),
	}
}

func (s *Store) CreateAccount(_ context.Context, account entities.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[account.Address]; exists {
		return domainerrors.ErrAccountExists
	}
	s.accounts[account.Address] = account
	return nil
}

func (s *Store) GetAccount(_ context.Context, address string) (entities.Account, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, found := s.accounts[address]
	return account, found, nil
}

func (s *Store) PutSession(_ context.Context, session entities.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Token] = session
	return nil
}

func (s *Store) GetSession(_ context.Context, token string) (entities.Session, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, found := s.sessions[token]
	return session, found, nil
}

func (s *Store) DeleteSession(_ context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, found := s.sessions[token]; !found {
		return false, nil
	}
	delete(s.sessions, token)
	return true, nil
}

func (s *Store) DeleteExpiredSessions(_ context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for token, session := range s.sessions {
		if session.Expired(now) {
			delete(s.sessions, token)
			removed++
		}
	}
	return removed, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewToken(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
