package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/PIYUSHDHAUNDIYAL/Nexin/pkg/errors"

	"github.com/PIYUSHDHAUNDIYAL/Nexin/internal/domain"
	"github.com/PIYUSHDHAUNDIYAL/Nexin/internal/event"
	"github.com/PIYUSHDHAUNDIYAL/Nexin/internal/repository"
)

// ProductGetter resolves a single product by id. CatalogService satisfies it.
type ProductGetter interface {
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
}

// CheckoutResult is returned by a successful checkout request.
type CheckoutResult struct {
	ConfirmationID string `json:"confirmation_id"`
	ItemCount      int    `json:"item_count"`
	TotalAmount    int64  `json:"total_amount"`
}

// CartService implements the business logic for session cart operations.
// Carts are keyed by session id and held in memory only.
type CartService struct {
	store    repository.CartStore
	products ProductGetter
	producer *event.Producer
	logger   *slog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(store repository.CartStore, products ProductGetter, producer *event.Producer, logger *slog.Logger) *CartService {
	return &CartService{
		store:    store,
		products: products,
		producer: producer,
		logger:   logger,
	}
}

// GetCart retrieves the cart for a session. If no cart exists, returns an
// empty cart without creating one.
func (s *CartService) GetCart(ctx context.Context, sessionID string) (*domain.Cart, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}

	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return s.newEmptyCart(sessionID), nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}

	return cart, nil
}

// AddProduct adds one unit of the given product to the session's cart. The
// product's current attributes are snapshotted into the cart item; if the
// product is already present its quantity is incremented instead.
func (s *CartService) AddProduct(ctx context.Context, sessionID, productID string) (*domain.Cart, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}

	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.AddProduct(*product)

	if err := s.saveAndPublish(ctx, cart); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "product added to cart",
		slog.String("session_id", sessionID),
		slog.String("product_id", productID),
	)

	return cart, nil
}

// IncreaseQuantity increments the quantity of the item for the given product
// id. An id not present in the cart is a no-op.
func (s *CartService) IncreaseQuantity(ctx context.Context, sessionID, productID string) (*domain.Cart, error) {
	return s.mutateItem(ctx, sessionID, productID, "cart quantity increased", func(cart *domain.Cart) bool {
		return cart.IncreaseQuantity(productID)
	})
}

// DecreaseQuantity decrements the quantity of the item for the given product
// id, removing the item when the quantity would reach zero. An id not present
// in the cart is a no-op.
func (s *CartService) DecreaseQuantity(ctx context.Context, sessionID, productID string) (*domain.Cart, error) {
	return s.mutateItem(ctx, sessionID, productID, "cart quantity decreased", func(cart *domain.Cart) bool {
		return cart.DecreaseQuantity(productID)
	})
}

// RemoveProduct removes the item for the given product id regardless of its
// quantity. An id not present in the cart is a no-op.
func (s *CartService) RemoveProduct(ctx context.Context, sessionID, productID string) (*domain.Cart, error) {
	return s.mutateItem(ctx, sessionID, productID, "product removed from cart", func(cart *domain.Cart) bool {
		return cart.RemoveProduct(productID)
	})
}

// ClearCart removes the session's cart entirely.
func (s *CartService) ClearCart(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return apperrors.InvalidInput("session id is required")
	}

	if err := s.store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}

	empty := s.newEmptyCart(sessionID)
	if err := s.producer.PublishCartUpdated(ctx, empty); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.updated event",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "cart cleared",
		slog.String("session_id", sessionID),
	)

	return nil
}

// Checkout validates that the session's cart is non-empty, emits a
// checkout.requested event with a generated confirmation id, and clears the
// cart. Payment and order persistence are handled downstream.
func (s *CartService) Checkout(ctx context.Context, sessionID string) (*CheckoutResult, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}

	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, apperrors.InvalidInput("cart is empty")
	}

	result := &CheckoutResult{
		ConfirmationID: uuid.New().String(),
		ItemCount:      cart.ItemCount(),
		TotalAmount:    cart.TotalAmount(),
	}

	if err := s.producer.PublishCheckoutRequested(ctx, result.ConfirmationID, cart); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish checkout.requested event",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()),
		)
	}

	if err := s.store.Delete(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("clear cart after checkout: %w", err)
	}

	s.logger.InfoContext(ctx, "checkout requested",
		slog.String("session_id", sessionID),
		slog.String("confirmation_id", result.ConfirmationID),
		slog.Int("item_count", result.ItemCount),
		slog.Int64("total_amount", result.TotalAmount),
	)

	return result, nil
}

// mutateItem applies an item-level mutation to the session's cart. When the
// mutation reports the product was not present, the cart is returned
// unchanged and nothing is saved.
func (s *CartService) mutateItem(ctx context.Context, sessionID, productID, logMsg string, fn func(*domain.Cart) bool) (*domain.Cart, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}

	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !fn(cart) {
		return cart, nil
	}

	if err := s.saveAndPublish(ctx, cart); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, logMsg,
		slog.String("session_id", sessionID),
		slog.String("product_id", productID),
	)

	return cart, nil
}

func (s *CartService) saveAndPublish(ctx context.Context, cart *domain.Cart) error {
	cart.UpdatedAt = time.Now().UTC()

	if err := s.store.Save(ctx, cart); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}

	if err := s.producer.PublishCartUpdated(ctx, cart); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.updated event",
			slog.String("session_id", cart.SessionID),
			slog.String("error", err.Error()),
		)
	}

	return nil
}

func (s *CartService) newEmptyCart(sessionID string) *domain.Cart {
	now := time.Now().UTC()
	return &domain.Cart{
		SessionID: sessionID,
		Items:     []domain.CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
