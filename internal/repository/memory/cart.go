package memory

import (
	"context"
	"sync"
	"time"

	"github.com/PIYUSHDHAUNDIYAL/Nexin/internal/domain"
	apperrors "github.com/PIYUSHDHAUNDIYAL/Nexin/pkg/errors"
)

// entry pairs a stored cart with its last-access time for idle eviction.
type entry struct {
	cart     *domain.Cart
	lastSeen time.Time
}

// CartStore implements repository.CartStore with an in-process map. Carts are
// session-scoped and deliberately not durable: a restart starts every session
// with an empty cart. Idle sessions are evicted by a background sweep.
type CartStore struct {
	mu      sync.RWMutex
	carts   map[string]*entry
	ttl     time.Duration
	nowFunc func() time.Time // injectable clock for testing
}

// NewCartStore creates an in-memory cart store. Carts untouched for longer
// than ttl are evicted; a zero ttl disables eviction. The background sweep
// stops when the given context is canceled.
func NewCartStore(ctx context.Context, ttl time.Duration) *CartStore {
	s := &CartStore{
		carts:   make(map[string]*entry),
		ttl:     ttl,
		nowFunc: time.Now,
	}
	if ttl > 0 {
		go s.sweepLoop(ctx)
	}
	return s
}

// Get retrieves a cart by session id. The returned cart is a copy; callers
// mutate it and write it back with Save.
func (s *CartStore) Get(_ context.Context, sessionID string) (*domain.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.carts[sessionID]
	if !ok {
		return nil, apperrors.NotFound("cart", sessionID)
	}

	return copyCart(e.cart), nil
}

// Save stores the cart, overwriting any existing cart for the session.
func (s *CartStore) Save(_ context.Context, cart *domain.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[cart.SessionID] = &entry{
		cart:     copyCart(cart),
		lastSeen: s.nowFunc(),
	}
	return nil
}

// Delete removes the cart for the session. Deleting an absent cart is not an
// error.
func (s *CartStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
	return nil
}

// Len returns the number of stored carts (used in tests).
func (s *CartStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.carts)
}

// sweepLoop periodically evicts carts idle for longer than the TTL.
func (s *CartStore) sweepLoop(ctx context.Context) {
	ticker := time.NewTicker(s.ttl)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

// sweep evicts all carts whose lastSeen is older than the TTL.
func (s *CartStore) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.nowFunc()
	for sid, e := range s.carts {
		if now.Sub(e.lastSeen) > s.ttl {
			delete(s.carts, sid)
		}
	}
}

// copyCart returns a deep copy so callers never share item slices with the
// store.
func copyCart(c *domain.Cart) *domain.Cart {
	dup := *c
	dup.Items = make([]domain.CartItem, len(c.Items))
	copy(dup.Items, c.Items)
	return &dup
}
