package auth

import (
	"context"
	"sync"
	"time"

	domain "github.com/donaldgifford/grocery-prices/pkg/types"
)

// Token is a cached vendor access token.
type Token struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// TokenStore persists vendor tokens between requests. Implementations must
// be safe for concurrent use. Get reports ok=false on a miss.
type TokenStore interface {
	Get(ctx context.Context, vendor domain.VendorID) (Token, bool, error)
	Put(ctx context.Context, vendor domain.VendorID, tok Token) error
	Delete(ctx context.Context, vendor domain.VendorID) error
}

// MemoryStore is a process-local TokenStore.
type MemoryStore struct {
	mu     sync.RWMutex
	tokens map[domain.VendorID]Token
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tokens: make(map[domain.VendorID]Token)}
}

// Get implements TokenStore.
func (s *MemoryStore) Get(_ context.Context, vendor domain.VendorID) (Token, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tok, ok := s.tokens[vendor]
	return tok, ok, nil
}

// Put implements TokenStore.
func (s *MemoryStore) Put(_ context.Context, vendor domain.VendorID, tok Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[vendor] = tok
	return nil
}

// Delete implements TokenStore.
func (s *MemoryStore) Delete(_ context.Context, vendor domain.VendorID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, vendor)
	return nil
}

var _ TokenStore = (*MemoryStore)(nil)
