// Package service implements the business logic for the storefront:
// catalog browsing, per-session cart and wishlist state, recently-viewed
// tracking, and recommendation resolution.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	apperrors "github.com/PIYUSHDHAUNDIYAL/Nexin/pkg/errors"

	"github.com/PIYUSHDHAUNDIYAL/Nexin/internal/domain"
	"github.com/PIYUSHDHAUNDIYAL/Nexin/internal/repository"
)

// CatalogService serves the product catalog from a periodically refreshed
// in-memory snapshot. Filtering, sorting, and search all derive from the
// snapshot rather than hitting the database per request. A refresh failure
// keeps serving the previous snapshot.
type CatalogService struct {
	repo   repository.ProductRepository
	logger *slog.Logger
	ttl    time.Duration

	mu        sync.RWMutex
	snapshot  []domain.Product
	fetchedAt time.Time
	loaded    bool

	nowFunc func() time.Time
}

// NewCatalogService creates a new catalog service. ttl controls how long a
// snapshot is served before the next read triggers a refresh; zero means
// every read refreshes.
func NewCatalogService(repo repository.ProductRepository, logger *slog.Logger, ttl time.Duration) *CatalogService {
	return &CatalogService{
		repo:    repo,
		logger:  logger,
		ttl:     ttl,
		nowFunc: time.Now,
	}
}

// Browse returns the catalog filtered by category and search text and sorted
// by the given price order. Filters compose conjunctively; search matches
// name or category case-insensitively.
func (s *CatalogService) Browse(ctx context.Context, searchText, category string, order domain.SortOrder) ([]domain.Product, error) {
	if order == "" {
		order = domain.SortNone
	}
	if !domain.IsValidSortOrder(string(order)) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("invalid sort order %q", order))
	}
	if category == "" {
		category = domain.CategoryAll
	}

	catalog, err := s.currentSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	return domain.Derive(catalog, searchText, category, order), nil
}

// Categories returns the distinct category names present in the catalog,
// prefixed with the "All" pseudo-category, in first-seen catalog order.
func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	catalog, err := s.currentSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	return domain.DeriveCategories(catalog), nil
}

// GetProduct fetches a single product by id directly from the repository.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	return product, nil
}

// GetProducts resolves a set of product ids to full records. Missing ids are
// omitted; order is unspecified.
func (s *CatalogService) GetProducts(ctx context.Context, ids []string) ([]domain.Product, error) {
	if len(ids) == 0 {
		return []domain.Product{}, nil
	}

	products, err := s.repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}

	return products, nil
}

// Invalidate drops the current snapshot so the next read refetches.
func (s *CatalogService) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = false
	s.snapshot = nil
}

// currentSnapshot returns the cached catalog, refreshing it when stale. When
// the refresh fails and a previous snapshot exists, the stale snapshot is
// served and the failure logged.
func (s *CatalogService) currentSnapshot(ctx context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	if s.loaded && s.nowFunc().Sub(s.fetchedAt) < s.ttl {
		snap := s.snapshot
		s.mu.RUnlock()
		return snap, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another request may have refreshed while we waited for the lock.
	if s.loaded && s.nowFunc().Sub(s.fetchedAt) < s.ttl {
		return s.snapshot, nil
	}

	products, err := s.repo.ListAll(ctx)
	if err != nil {
		if s.loaded {
			s.logger.WarnContext(ctx, "catalog refresh failed, serving stale snapshot",
				slog.Int("stale_count", len(s.snapshot)),
				slog.String("error", err.Error()),
			)
			return s.snapshot, nil
		}
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	s.snapshot = products
	s.fetchedAt = s.nowFunc()
	s.loaded = true

	s.logger.DebugContext(ctx, "catalog snapshot refreshed",
		slog.Int("product_count", len(products)),
	)

	return s.snapshot, nil
}
