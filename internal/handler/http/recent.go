package http

import (
	"log/slog"
	"net/http"

	"github.com/PIYUSHDHAUNDIYAL/Nexin/pkg/httputil"

	"github.com/PIYUSHDHAUNDIYAL/Nexin/internal/service"
)

// RecentlyViewedHandler handles HTTP requests for the recently-viewed endpoint.
type RecentlyViewedHandler struct {
	service *service.RecentlyViewedService
	logger  *slog.Logger
}

// NewRecentlyViewedHandler creates a new recently-viewed HTTP handler.
func NewRecentlyViewedHandler(svc *service.RecentlyViewedService, logger *slog.Logger) *RecentlyViewedHandler {
	return &RecentlyViewedHandler{
		service: svc,
		logger:  logger,
	}
}

// List handles GET /api/v1/recently-viewed?exclude=
func (h *RecentlyViewedHandler) List(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := sessionIDFromContext(r.Context())
	excludeID := r.URL.Query().Get("exclude")

	products, err := h.service.List(r.Context(), sessionID, excludeID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: map[string]any{
		"products": products,
		"count":    len(products),
	}})
}
