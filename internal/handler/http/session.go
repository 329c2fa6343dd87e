package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/PIYUSHDHAUNDIYAL/Nexin/pkg/httputil"
	"github.com/PIYUSHDHAUNDIYAL/Nexin/pkg/validator"

	"github.com/PIYUSHDHAUNDIYAL/Nexin/internal/domain"
)

// SessionHandler handles HTTP requests for session-level endpoints.
type SessionHandler struct {
	logger *slog.Logger
}

// NewSessionHandler creates a new session HTTP handler.
func NewSessionHandler(logger *slog.Logger) *SessionHandler {
	return &SessionHandler{logger: logger}
}

// NavigateRequest is the JSON request body for a navigation transition.
type NavigateRequest struct {
	Page  string `json:"page" validate:"required"`
	Value string `json:"value"`
}

// Navigate handles POST /api/v1/session/navigate
//
// It resolves a requested page transition to the concrete view the client
// should render. Unknown pages fall back to home rather than failing.
func (h *SessionHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	var req NavigateRequest
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

	view := domain.Navigate(req.Page, req.Value)

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: view})
}
