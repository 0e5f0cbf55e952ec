package cartstore

import (
	"context"
	"sync"
	"time"

	"github.com/arganshop/backend/internal/domain/checkout"
)

// sessionEntry holds one stored cart with its expiration
type sessionEntry struct {
	cart      checkout.Cart
	expiresAt time.Time
}

// MemoryStore implements checkout.Store using an in-memory map. It is
// suitable for single-instance deployments and testing; carts are lost on
// restart and not shared across instances.
type MemoryStore struct {
	mu        sync.RWMutex
	sessions  map[string]sessionEntry
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewMemoryStore creates a new in-memory cart store. It starts a background
// goroutine that evicts expired sessions.
func NewMemoryStore() *MemoryStore {
	store := &MemoryStore{
		sessions: make(map[string]sessionEntry),
		stopChan: make(chan struct{}),
	}

	store.wg.Add(1)
	go store.cleanupLoop()

	return store
}

// Get returns the cart for the given session token, or an empty cart when
// the token is unknown or expired
func (s *MemoryStore) Get(ctx context.Context, token string) (*checkout.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, exists := s.sessions[token]
	if !exists || time.Now().After(e.expiresAt) {
		return checkout.NewCart(), nil
	}

	// Copy out so callers cannot mutate the stored cart without Put
	cart := e.cart
	cart.Lines = append([]checkout.CartLine(nil), e.cart.Lines...)
	return &cart, nil
}

// Put stores the cart under the given session token with the given TTL
func (s *MemoryStore) Put(ctx context.Context, token string, cart *checkout.Cart, ttl time.Duration) error {
	stored := *cart
	stored.Lines = append([]checkout.CartLine(nil), cart.Lines...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = sessionEntry{
		cart:      stored,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Delete removes the cart for the given session token
func (s *MemoryStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

// Close stops the cleanup goroutine. Safe to call multiple times.
func (s *MemoryStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stopChan)
		s.wg.Wait()
	})
	return nil
}

// cleanupLoop periodically removes expired sessions
func (s *MemoryStore) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.cleanup()
		}
	}
}

func (s *MemoryStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for token, e := range s.sessions {
		if now.After(e.expiresAt) {
			delete(s.sessions, token)
		}
	}
}

// Size returns the number of stored sessions (for testing/monitoring)
func (s *MemoryStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Ensure MemoryStore implements checkout.Store
var _ checkout.Store = (*MemoryStore)(nil)
