package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/PIYUSHDHAUNDIYAL/Nexin/pkg/httputil"

	"github.com/PIYUSHDHAUNDIYAL/Nexin/internal/service"
)

// ProductHandler handles HTTP requests for the product detail endpoint.
type ProductHandler struct {
	service *service.ProductDetailService
	logger  *slog.Logger
}

// NewProductHandler creates a new product HTTP handler.
func NewProductHandler(svc *service.ProductDetailService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: svc,
		logger:  logger,
	}
}

// GetProduct handles GET /api/v1/products/{productId}
//
// The response composes the product with its recommendations, the session's
// other recently-viewed products, and wishlist membership. Fetching the
// detail also records the view for the session.
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDFromContext(r.Context())
	if !ok {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "X-Session-ID header is required"},
		})
		return
	}

	productID := chi.URLParam(r, "productId")

	detail, err := h.service.GetProductDetail(r.Context(), sessionID, productID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: detail})
}
