package repository

import (
	"context"

	"github.com/PIYUSHDHAUNDIYAL/Nexin/internal/domain"
)

// ProductRepository defines read access to the external product table.
type ProductRepository interface {
	// ListAll returns every product in the catalog.
	ListAll(ctx context.Context) ([]domain.Product, error)

	// GetByID returns a single product, or a not-found error.
	GetByID(ctx context.Context, id string) (*domain.Product, error)

	// GetByIDs returns the products whose ids are in the given set. Missing
	// ids are silently omitted from the result.
	GetByIDs(ctx context.Context, ids []string) ([]domain.Product, error)
}

// WishlistRepository persists a session's wishlist as an ordered set of
// product ids under a fixed per-session key.
type WishlistRepository interface {
	// Get reads the wishlist ids, defaulting to empty when the key is absent
	// or the stored payload is unparseable.
	Get(ctx context.Context, sessionID string) ([]string, error)

	// Save overwrites the full wishlist for the session.
	Save(ctx context.Context, sessionID string, ids []string) error
}

// RecentlyViewedRepository persists a session's recently-viewed product ids,
// ordered most-recent-first, under a fixed per-session key.
type RecentlyViewedRepository interface {
	// Get reads the recently-viewed ids, defaulting to empty when the key is
	// absent or the stored payload is unparseable.
	Get(ctx context.Context, sessionID string) ([]string, error)

	// Save overwrites the full recently-viewed list for the session.
	Save(ctx context.Context, sessionID string, ids []string) error
}

// CartStore holds session carts. Carts are session-scoped and are not
// expected to survive a restart.
type CartStore interface {
	// Get retrieves a cart by session id, or a not-found error.
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)

	// Save stores the cart, overwriting any existing cart for the session.
	Save(ctx context.Context, cart *domain.Cart) error

	// Delete removes the cart for the session.
	Delete(ctx context.Context, sessionID string) error
}
