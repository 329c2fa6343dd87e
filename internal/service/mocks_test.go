package service

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/mock"

	pkgkafka "github.com/PIYUSHDHAUNDIYAL/Nexin/pkg/kafka"

	"github.com/PIYUSHDHAUNDIYAL/Nexin/internal/domain"
	"github.com/PIYUSHDHAUNDIYAL/Nexin/internal/event"
)

// --- Mock Repositories ---

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) ListAll(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *mockProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *mockProductRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

type mockIDListRepository struct {
	mock.Mock
}

func (m *mockIDListRepository) Get(ctx context.Context, sessionID string) ([]string, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockIDListRepository) Save(ctx context.Context, sessionID string, ids []string) error {
	args := m.Called(ctx, sessionID, ids)
	return args.Error(0)
}

type mockCartStore struct {
	mock.Mock
}

func (m *mockCartStore) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cart), args.Error(1)
}

func (m *mockCartStore) Save(ctx context.Context, cart *domain.Cart) error {
	args := m.Called(ctx, cart)
	return args.Error(0)
}

func (m *mockCartStore) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type mockRelatedIDsClient struct {
	mock.Mock
}

func (m *mockRelatedIDsClient) RelatedIDs(ctx context.Context, productID string) ([]string, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// --- Test Helpers ---

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// newTestProducer returns an event producer whose publishes fail silently
// (no broker is running); publish failures never fail the operation.
func newTestProducer(t *testing.T) *event.Producer {
	t.Helper()
	logger := newTestLogger()
	kafkaCfg := pkgkafka.DefaultProducerConfig([]string{"localhost:9092"})
	kafkaProducer := pkgkafka.NewProducer(kafkaCfg, logger)
	t.Cleanup(func() { _ = kafkaProducer.Close() })
	return event.NewProducer(kafkaProducer, logger)
}

func sampleCatalog() []domain.Product {
	return []domain.Product{
		{ID: "p1", Name: "Trail Shoe", Category: "Shoes", Price: 8999},
		{ID: "p2", Name: "Canvas Sneaker", Category: "Shoes", Price: 4999},
		{ID: "p3", Name: "Wool Jacket", Category: "Jackets", Price: 15999},
		{ID: "p4", Name: "Rain Shell", Category: "Jackets", Price: 12999},
	}
}
