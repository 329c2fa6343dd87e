package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/PIYUSHDHAUNDIYAL/Nexin/internal/domain"
	"github.com/PIYUSHDHAUNDIYAL/Nexin/internal/event"
)

// ProductDetail is the composed product-detail view: the product itself plus
// its non-critical enrichments.
type ProductDetail struct {
	Product         domain.Product   `json:"product"`
	Wishlisted      bool             `json:"wishlisted"`
	Recommendations []domain.Product `json:"recommendations"`
	RecentlyViewed  []domain.Product `json:"recently_viewed"`
}

// ProductDetailService composes the product-detail view. The base product
// fetch is the only hard dependency; view tracking, recommendations,
// recently-viewed resolution, and wishlist membership all degrade silently.
type ProductDetailService struct {
	catalog         *CatalogService
	recommendations *RecommendationService
	recentlyViewed  *RecentlyViewedService
	wishlist        *WishlistService
	producer        *event.Producer
	logger          *slog.Logger
}

// NewProductDetailService creates a new product detail service.
func NewProductDetailService(
	catalog *CatalogService,
	recommendations *RecommendationService,
	recentlyViewed *RecentlyViewedService,
	wishlist *WishlistService,
	producer *event.Producer,
	logger *slog.Logger,
) *ProductDetailService {
	return &ProductDetailService{
		catalog:         catalog,
		recommendations: recommendations,
		recentlyViewed:  recentlyViewed,
		wishlist:        wishlist,
		producer:        producer,
		logger:          logger,
	}
}

// GetProductDetail fetches the product, records the view, and enriches the
// result with recommendations, the session's other recently-viewed products,
// and wishlist membership. The view is recorded before the recently-viewed
// list is read so the current product is already front of the stored list;
// it is then excluded from the returned one. Recommendation and
// recently-viewed resolution are independent once the product is known and
// run concurrently.
func (s *ProductDetailService) GetProductDetail(ctx context.Context, sessionID, productID string) (*ProductDetail, error) {
	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := s.recentlyViewed.RecordView(ctx, sessionID, productID); err != nil {
		s.logger.WarnContext(ctx, "failed to record product view",
			slog.String("session_id", sessionID),
			slog.String("product_id", productID),
			slog.String("error", err.Error()),
		)
	}

	if err := s.producer.PublishProductViewed(ctx, sessionID, *product); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish product.viewed event",
			slog.String("product_id", productID),
			slog.String("error", err.Error()),
		)
	}

	detail := &ProductDetail{
		Product:         *product,
		Recommendations: []domain.Product{},
		RecentlyViewed:  []domain.Product{},
	}

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		recs, err := s.recommendations.Recommend(ctx, productID)
		if err != nil {
			s.logger.WarnContext(ctx, "failed to resolve recommendations",
				slog.String("product_id", productID),
				slog.String("error", err.Error()),
			)
			return
		}
		detail.Recommendations = recs
	}()

	go func() {
		defer wg.Done()
		recent, err := s.recentlyViewed.List(ctx, sessionID, productID)
		if err != nil {
			s.logger.WarnContext(ctx, "failed to resolve recently viewed",
				slog.String("session_id", sessionID),
				slog.String("error", err.Error()),
			)
			return
		}
		detail.RecentlyViewed = recent
	}()

	go func() {
		defer wg.Done()
		wishlisted, err := s.wishlist.Contains(ctx, sessionID, productID)
		if err != nil {
			s.logger.WarnContext(ctx, "failed to check wishlist membership",
				slog.String("session_id", sessionID),
				slog.String("error", err.Error()),
			)
			return
		}
		detail.Wishlisted = wishlisted
	}()

	wg.Wait()

	return detail, nil
}
