package service

import (
	"context"
	"log/slog"

	apperrors "github.com/PIYUSHDHAUNDIYAL/Nexin/pkg/errors"

	"github.com/PIYUSHDHAUNDIYAL/Nexin/internal/domain"
)

// RelatedIDsClient returns ranked related product ids for a product.
// recommender.Client satisfies it.
type RelatedIDsClient interface {
	RelatedIDs(ctx context.Context, productID string) ([]string, error)
}

// RecommendationService resolves similarity recommendations for a product.
// The remote recommendation call is non-critical: any failure degrades to an
// empty result rather than an error.
type RecommendationService struct {
	client   RelatedIDsClient
	products ProductsGetter
	logger   *slog.Logger
}

// NewRecommendationService creates a new recommendation service.
func NewRecommendationService(client RelatedIDsClient, products ProductsGetter, logger *slog.Logger) *RecommendationService {
	return &RecommendationService{
		client:   client,
		products: products,
		logger:   logger,
	}
}

// Recommend returns the products related to the given product id, in the
// remote service's rank order. A failed or rejected remote call (including an
// open circuit breaker) yields an empty slice and no error; a failed catalog
// resolution of the returned ids is a real error.
func (s *RecommendationService) Recommend(ctx context.Context, productID string) ([]domain.Product, error) {
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}

	ids, err := s.client.RelatedIDs(ctx, productID)
	if err != nil {
		s.logger.WarnContext(ctx, "recommendation fetch failed, returning empty",
			slog.String("product_id", productID),
			slog.String("error", err.Error()),
		)
		return []domain.Product{}, nil
	}
	if len(ids) == 0 {
		return []domain.Product{}, nil
	}

	products, err := s.products.GetProducts(ctx, ids)
	if err != nil {
		return nil, err
	}

	// The batched lookup is order-agnostic; restore the service's ranking.
	return reorderByIDs(products, ids), nil
}
