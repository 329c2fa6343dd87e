package service

import (
	"context"
	"fmt"
	"log/slog"

	apperrors "github.com/PIYUSHDHAUNDIYAL/Nexin/pkg/errors"

	"github.com/PIYUSHDHAUNDIYAL/Nexin/internal/domain"
	"github.com/PIYUSHDHAUNDIYAL/Nexin/internal/repository"
)

// MaxRecentlyViewed bounds the per-session recently-viewed list.
const MaxRecentlyViewed = 10

// RecentlyViewedService tracks the products a session has viewed, most recent
// first, capped at MaxRecentlyViewed with no duplicates.
type RecentlyViewedService struct {
	repo     repository.RecentlyViewedRepository
	products ProductsGetter
	logger   *slog.Logger
}

// NewRecentlyViewedService creates a new recently-viewed service.
func NewRecentlyViewedService(repo repository.RecentlyViewedRepository, products ProductsGetter, logger *slog.Logger) *RecentlyViewedService {
	return &RecentlyViewedService{
		repo:     repo,
		products: products,
		logger:   logger,
	}
}

// RecordView puts the given product id at the front of the session's
// recently-viewed list. An id already present moves to the front; the oldest
// entry falls off when the cap is exceeded. Persisted immediately.
func (s *RecentlyViewedService) RecordView(ctx context.Context, sessionID, productID string) error {
	if sessionID == "" {
		return apperrors.InvalidInput("session id is required")
	}
	if productID == "" {
		return apperrors.InvalidInput("product id is required")
	}

	ids, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("get recently viewed: %w", err)
	}

	next := make([]string, 0, len(ids)+1)
	next = append(next, productID)
	for _, id := range ids {
		if id == productID {
			continue
		}
		next = append(next, id)
	}
	if len(next) > MaxRecentlyViewed {
		next = next[:MaxRecentlyViewed]
	}

	if err := s.repo.Save(ctx, sessionID, next); err != nil {
		return fmt.Errorf("save recently viewed: %w", err)
	}

	s.logger.DebugContext(ctx, "view recorded",
		slog.String("session_id", sessionID),
		slog.String("product_id", productID),
	)

	return nil
}

// List resolves the session's recently-viewed ids to full product records in
// most-recent-first order. excludeID removes the currently-viewed product
// from the result; pass the empty string to exclude nothing. Ids no longer in
// the catalog are dropped.
func (s *RecentlyViewedService) List(ctx context.Context, sessionID, excludeID string) ([]domain.Product, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}

	ids, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get recently viewed: %w", err)
	}

	if excludeID != "" {
		filtered := ids[:0]
		for _, id := range ids {
			if id != excludeID {
				filtered = append(filtered, id)
			}
		}
		ids = filtered
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
