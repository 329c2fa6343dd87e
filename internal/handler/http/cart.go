package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/PIYUSHDHAUNDIYAL/Nexin/pkg/httputil"
	"github.com/PIYUSHDHAUNDIYAL/Nexin/pkg/validator"

	"github.com/PIYUSHDHAUNDIYAL/Nexin/internal/domain"
	"github.com/PIYUSHDHAUNDIYAL/Nexin/internal/service"
)

// CartHandler handles HTTP requests for cart and checkout endpoints.
type CartHandler struct {
	service *service.CartService
	logger  *slog.Logger
}

// NewCartHandler creates a new cart HTTP handler.
func NewCartHandler(svc *service.CartService, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		service: svc,
		logger:  logger,
	}
}

// AddItemRequest is the JSON request body for adding a product to the cart.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// AddItemResponse wraps the updated cart with a hint that the client should
// open its cart drawer after a successful add.
type AddItemResponse struct {
	Cart     *domain.Cart `json:"cart"`
	OpenCart bool         `json:"open_cart"`
}

// GetCart handles GET /api/v1/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := sessionIDFromContext(r.Context())

	cart, err := h.service.GetCart(r.Context(), sessionID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: cart})
}

// AddItem handles POST /api/v1/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := sessionIDFromContext(r.Context())

	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	cart, err := h.service.AddProduct(r.Context(), sessionID, req.ProductID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: AddItemResponse{Cart: cart, OpenCart: true}})
}

// IncreaseQuantity handles POST /api/v1/cart/items/{productId}/increase
func (h *CartHandler) IncreaseQuantity(w http.ResponseWriter, r *http.Request) {
	h.mutateItem(w, r, h.service.IncreaseQuantity)
}

// DecreaseQuantity handles POST /api/v1/cart/items/{productId}/decrease
func (h *CartHandler) DecreaseQuantity(w http.ResponseWriter, r *http.Request) {
	h.mutateItem(w, r, h.service.DecreaseQuantity)
}

// RemoveItem handles DELETE /api/v1/cart/items/{productId}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	h.mutateItem(w, r, h.service.RemoveProduct)
}

// ClearCart handles DELETE /api/v1/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := sessionIDFromContext(r.Context())

	if err := h.service.ClearCart(r.Context(), sessionID); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: map[string]string{"status": "cleared"}})
}

// Checkout handles POST /api/v1/checkout
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := sessionIDFromContext(r.Context())

	result, err := h.service.Checkout(r.Context(), sessionID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: result})
}

func (h *CartHandler) mutateItem(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, sessionID, productID string) (*domain.Cart, error)) {
	sessionID, _ := sessionIDFromContext(r.Context())

	productID := chi.URLParam(r, "productId")
	if productID == "" {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "productId is required"},
		})
		return
	}

	cart, err := op(r.Context(), sessionID, productID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: cart})
}
