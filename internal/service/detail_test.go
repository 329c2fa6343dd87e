package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/PIYUSHDHAUNDIYAL/Nexin/pkg/errors"
)

type detailFixture struct {
	productRepo  *mockProductRepository
	recClient    *mockRelatedIDsClient
	recentRepo   *mockIDListRepository
	wishlistRepo *mockIDListRepository
	svc          *ProductDetailService
}

func newDetailFixture(t *testing.T) *detailFixture {
	t.Helper()

	f := &detailFixture{
		productRepo:  new(mockProductRepository),
		recClient:    new(mockRelatedIDsClient),
		recentRepo:   new(mockIDListRepository),
		wishlistRepo: new(mockIDListRepository),
	}

	logger := newTestLogger()
	producer := newTestProducer(t)
	getter := newStubProductsGetter()

	catalog := NewCatalogService(f.productRepo, logger, time.Minute)
	recs := NewRecommendationService(f.recClient, getter, logger)
	recent := NewRecentlyViewedService(f.recentRepo, getter, logger)
	wishlist := NewWishlistService(f.wishlistRepo, getter, producer, logger)

	f.svc = NewProductDetailService(catalog, recs, recent, wishlist, producer, logger)
	return f
}

func TestGetProductDetail_ComposesAllEnrichments(t *testing.T) {
	f := newDetailFixture(t)
	p1 := sampleCatalog()[0]

	f.productRepo.On("GetByID", mock.Anything, "p1").Return(&p1, nil)
	f.recentRepo.On("Get", mock.Anything, "sess-1").Return([]string{"p3", "p1"}, nil)
	f.recentRepo.On("Save", mock.Anything, "sess-1", []string{"p1", "p3"}).Return(nil)
	f.recClient.On("RelatedIDs", mock.Anything, "p1").Return([]string{"p2", "p4"}, nil)
	f.wishlistRepo.On("Get", mock.Anything, "sess-1").Return([]string{"p1"}, nil)

	detail, err := f.svc.GetProductDetail(context.Background(), "sess-1", "p1")
	require.NoError(t, err)

	assert.Equal(t, "Trail Shoe", detail.Product.Name)
	assert.True(t, detail.Wishlisted)

	require.Len(t, detail.Recommendations, 2)
	assert.Equal(t, "p2", detail.Recommendations[0].ID)
	assert.Equal(t, "p4", detail.Recommendations[1].ID)

	// The viewed product itself is excluded from the returned list.
	require.Len(t, detail.RecentlyViewed, 1)
	assert.Equal(t, "p3", detail.RecentlyViewed[0].ID)

	f.recentRepo.AssertExpectations(t)
}

func TestGetProductDetail_ProductNotFound(t *testing.T) {
	f := newDetailFixture(t)

	f.productRepo.On("GetByID", mock.Anything, "nope").Return(nil, apperrors.NotFound("product", "nope"))

	_, err := f.svc.GetProductDetail(context.Background(), "sess-1", "nope")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetProductDetail_EnrichmentFailuresDegrade(t *testing.T) {
	f := newDetailFixture(t)
	p1 := sampleCatalog()[0]

	f.productRepo.On("GetByID", mock.Anything, "p1").Return(&p1, nil)
	f.recentRepo.On("Get", mock.Anything, "sess-1").Return(nil, errors.New("redis down"))
	f.recClient.On("RelatedIDs", mock.Anything, "p1").Return(nil, errors.New("recommender down"))
	f.wishlistRepo.On("Get", mock.Anything, "sess-1").Return(nil, errors.New("redis down"))

	detail, err := f.svc.GetProductDetail(context.Background(), "sess-1", "p1")
	require.NoError(t, err)

	assert.Equal(t, "p1", detail.Product.ID)
	assert.False(t, detail.Wishlisted)
	assert.Empty(t, detail.Recommendations)
	assert.Empty(t, detail.RecentlyViewed)
}
