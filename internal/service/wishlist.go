package service

import (
	"context"
	"fmt"
	"log/slog"

	apperrors "github.com/PIYUSHDHAUNDIYAL/Nexin/pkg/errors"

	"github.com/PIYUSHDHAUNDIYAL/Nexin/internal/domain"
	"github.com/PIYUSHDHAUNDIYAL/Nexin/internal/event"
	"github.com/PIYUSHDHAUNDIYAL/Nexin/internal/repository"
)

// ProductsGetter resolves a set of product ids. CatalogService satisfies it.
type ProductsGetter interface {
	GetProducts(ctx context.Context, ids []string) ([]domain.Product, error)
}

// ToggleResult reports the outcome of a wishlist toggle.
type ToggleResult struct {
	ProductID  string   `json:"product_id"`
	Wishlisted bool     `json:"wishlisted"`
	ProductIDs []string `json:"product_ids"`
}

// WishlistService implements the business logic for per-session wishlists.
// A wishlist is an ordered set of product ids persisted as a whole on every
// mutation.
type WishlistService struct {
	repo     repository.WishlistRepository
	products ProductsGetter
	producer *event.Producer
	logger   *slog.Logger
}

// NewWishlistService creates a new wishlist service.
func NewWishlistService(repo repository.WishlistRepository, products ProductsGetter, producer *event.Producer, logger *slog.Logger) *WishlistService {
	return &WishlistService{
		repo:     repo,
		products: products,
		producer: producer,
		logger:   logger,
	}
}

// Toggle flips the membership of the given product id in the session's
// wishlist: absent ids are appended, present ids are removed. The list keeps
// insertion order and is persisted immediately.
func (s *WishlistService) Toggle(ctx context.Context, sessionID, productID string) (*ToggleResult, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}

	ids, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get wishlist: %w", err)
	}

	added := true
	next := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		if id == productID {
			added = false
			continue
		}
		next = append(next, id)
	}
	if added {
		next = append(next, productID)
	}

	if err := s.repo.Save(ctx, sessionID, next); err != nil {
		return nil, fmt.Errorf("save wishlist: %w", err)
	}

	if err := s.producer.PublishWishlistUpdated(ctx, sessionID, productID, added, next); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish wishlist.updated event",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "wishlist toggled",
		slog.String("session_id", sessionID),
		slog.String("product_id", productID),
		slog.Bool("added", added),
	)

	return &ToggleResult{
		ProductID:  productID,
		Wishlisted: added,
		ProductIDs: next,
	}, nil
}

// Contains reports whether the given product id is in the session's wishlist.
func (s *WishlistService) Contains(ctx context.Context, sessionID, productID string) (bool, error) {
	ids, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return false, fmt.Errorf("get wishlist: %w", err)
	}
	for _, id := range ids {
		if id == productID {
			return true, nil
		}
	}
	return false, nil
}

// List resolves the session's wishlist to full product records, keeping the
// wishlist's insertion order. Ids no longer present in the catalog are
// dropped without being removed from the stored list.
func (s *WishlistService) List(ctx context.Context, sessionID string) ([]domain.Product, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}

	ids, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get wishlist: %w", err)
	}
	if len(ids) == 0 {
		return []domain.Product{}, nil
	}

	products, err := s.products.GetProducts(ctx, ids)
	if err != nil {
		return nil, err
	}

	return reorderByIDs(products, ids), nil
}

// reorderByIDs returns products sorted to follow the order of ids. Ids with
// no matching product are skipped.
func reorderByIDs(products []domain.Product, ids []string) []domain.Product {
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	out := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out
}
