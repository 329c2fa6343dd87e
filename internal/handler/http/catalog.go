// Package http exposes the storefront REST API.
package http

import (
	"errors"
	"log/slog"
	"net/http"

	apperrors "github.com/PIYUSHDHAUNDIYAL/Nexin/pkg/errors"
	"github.com/PIYUSHDHAUNDIYAL/Nexin/pkg/httputil"

	"github.com/PIYUSHDHAUNDIYAL/Nexin/internal/domain"
	"github.com/PIYUSHDHAUNDIYAL/Nexin/internal/service"
)

// CatalogHandler handles HTTP requests for catalog browsing endpoints.
type CatalogHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog HTTP handler.
func NewCatalogHandler(svc *service.CatalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: svc,
		logger:  logger,
	}
}

// ProductListResponse is the JSON payload for a derived product listing.
type ProductListResponse struct {
	Products []domain.Product `json:"products"`
	Count    int              `json:"count"`
	Category string           `json:"category"`
	Search   string           `json:"search,omitempty"`
	Sort     string           `json:"sort"`
}

// ListProducts handles GET /api/v1/products?search=&category=&sort=
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	search := q.Get("search")
	category := q.Get("category")
	order := domain.SortOrder(q.Get("sort"))

	if category == "" {
		category = domain.CategoryAll
	}
	if order == "" {
		order = domain.SortNone
	}

	products, err := h.service.Browse(r.Context(), search, category, order)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidInput) {
			httputil.WriteError(w, r, err, h.logger)
			return
		}
		// The catalog being unreachable degrades to an empty listing.
		h.logger.WarnContext(r.Context(), "catalog unavailable, serving empty listing",
			slog.String("error", err.Error()),
		)
		products = []domain.Product{}
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: ProductListResponse{
		Products: products,
		Count:    len(products),
		Category: category,
		Search:   search,
		Sort:     string(order),
	}})
}

// ListCategories handles GET /api/v1/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		h.logger.WarnContext(r.Context(), "catalog unavailable, serving default categories",
			slog.String("error", err.Error()),
		)
		categories = []string{domain.CategoryAll}
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: map[string][]string{
		"categories": categories,
	}})
}
