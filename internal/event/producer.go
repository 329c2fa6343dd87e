// Package event publishes storefront domain events to Kafka.
package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/PIYUSHDHAUNDIYAL/Nexin/internal/domain"
	pkgkafka "github.com/PIYUSHDHAUNDIYAL/Nexin/pkg/kafka"
)

// Kafka topics for storefront domain events.
var (
	TopicProductViewed     = pkgkafka.Topic("product", "viewed")
	TopicCartUpdated       = pkgkafka.Topic("cart", "updated")
	TopicWishlistUpdated   = pkgkafka.Topic("wishlist", "updated")
	TopicCheckoutRequested = pkgkafka.Topic("checkout", "requested")
)

// Aggregate type constants.
const (
	AggregateTypeSession = "session"
	AggregateTypeProduct = "product"
)

// Source identifier for events originating from the storefront service.
const SourceStorefront = "storefront-service"

// ProductViewedData is the payload for a product.viewed event.
type ProductViewedData struct {
	SessionID string `json:"session_id"`
	ProductID string `json:"product_id"`
	Category  string `json:"category"`
}

// CartUpdatedData is the payload for a cart.updated event.
type CartUpdatedData struct {
	SessionID   string         `json:"session_id"`
	Items       []CartItemData `json:"items"`
	ItemCount   int            `json:"item_count"`
	TotalAmount int64          `json:"total_amount"`
}

// CartItemData is the item payload within cart and checkout events.
type CartItemData struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

// WishlistUpdatedData is the payload for a wishlist.updated event.
type WishlistUpdatedData struct {
	SessionID  string   `json:"session_id"`
	ProductID  string   `json:"product_id"`
	Added      bool     `json:"added"`
	ProductIDs []string `json:"product_ids"`
}

// CheckoutRequestedData is the payload for a checkout.requested event.
type CheckoutRequestedData struct {
	ConfirmationID string         `json:"confirmation_id"`
	SessionID      string         `json:"session_id"`
	Items          []CartItemData `json:"items"`
	TotalAmount    int64          `json:"total_amount"`
}

// Producer publishes storefront domain events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new event producer for the storefront service.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishProductViewed publishes a product.viewed event.
func (p *Producer) PublishProductViewed(ctx context.Context, sessionID string, product domain.Product) error {
	data := ProductViewedData{
		SessionID: sessionID,
		ProductID: product.ID,
		Category:  product.Category,
	}

	event, err := pkgkafka.NewEvent(TopicProductViewed, product.ID, AggregateTypeProduct, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create product.viewed event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicProductViewed, event); err != nil {
		return fmt.Errorf("publish product.viewed event: %w", err)
	}

	p.logger.DebugContext(ctx, "published product.viewed event",
		slog.String("session_id", sessionID),
		slog.String("product_id", product.ID),
	)

	return nil
}

// PublishCartUpdated publishes a cart.updated event.
func (p *Producer) PublishCartUpdated(ctx context.Context, cart *domain.Cart) error {
	data := CartUpdatedData{
		SessionID:   cart.SessionID,
		Items:       cartItems(cart.Items),
		ItemCount:   cart.ItemCount(),
		TotalAmount: cart.TotalAmount(),
	}

	event, err := pkgkafka.NewEvent(TopicCartUpdated, cart.SessionID, AggregateTypeSession, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create cart.updated event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCartUpdated, event); err != nil {
		return fmt.Errorf("publish cart.updated event: %w", err)
	}

	p.logger.DebugContext(ctx, "published cart.updated event",
		slog.String("session_id", cart.SessionID),
		slog.Int("item_count", cart.ItemCount()),
	)

	return nil
}

// PublishWishlistUpdated publishes a wishlist.updated event.
func (p *Producer) PublishWishlistUpdated(ctx context.Context, sessionID, productID string, added bool, ids []string) error {
	data := WishlistUpdatedData{
		SessionID:  sessionID,
		ProductID:  productID,
		Added:      added,
		ProductIDs: ids,
	}

	event, err := pkgkafka.NewEvent(TopicWishlistUpdated, sessionID, AggregateTypeSession, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create wishlist.updated event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicWishlistUpdated, event); err != nil {
		return fmt.Errorf("publish wishlist.updated event: %w", err)
	}

	p.logger.DebugContext(ctx, "published wishlist.updated event",
		slog.String("session_id", sessionID),
		slog.String("product_id", productID),
		slog.Bool("added", added),
	)

	return nil
}

// PublishCheckoutRequested publishes a checkout.requested event.
func (p *Producer) PublishCheckoutRequested(ctx context.Context, confirmationID string, cart *domain.Cart) error {
	data := CheckoutRequestedData{
		ConfirmationID: confirmationID,
		SessionID:      cart.SessionID,
		Items:          cartItems(cart.Items),
		TotalAmount:    cart.TotalAmount(),
	}

	event, err := pkgkafka.NewEvent(TopicCheckoutRequested, cart.SessionID, AggregateTypeSession, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create checkout.requested event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCheckoutRequested, event); err != nil {
		return fmt.Errorf("publish checkout.requested event: %w", err)
	}

	p.logger.DebugContext(ctx, "published checkout.requested event",
		slog.String("session_id", cart.SessionID),
		slog.String("confirmation_id", confirmationID),
	)

	return nil
}

func cartItems(items []domain.CartItem) []CartItemData {
	out := make([]CartItemData, len(items))
	for i, item := range items {
		out[i] = CartItemData{
			ProductID: item.ID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		}
	}
	return out
}
