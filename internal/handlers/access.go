// internal/handlers/access.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dakshilalbetrios/curtain-be/internal/core/domain"
	"github.com/dakshilalbetrios/curtain-be/internal/core/ports"
	"github.com/dakshilalbetrios/curtain-be/internal/handlers/middleware"
)

// AccessHandler handles customer collection access HTTP requests
type AccessHandler struct {
	service ports.CollectionService
	logger  *slog.Logger
}

// NewAccessHandler creates a new access handler
func NewAccessHandler(service ports.CollectionService, logger *slog.Logger) *AccessHandler {
	return &AccessHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "access")),
	}
}

// GrantAccessRequest represents the request body for granting access
type GrantAccessRequest struct {
	CollectionIDs []int64             `json:"collection_ids"`
	Status        domain.AccessStatus `json:"status,omitempty"`
}

// GrantAccess handles POST /api/v1/users/{id}/collections
func (h *AccessHandler) GrantAccess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := middleware.ActorFrom(ctx)

	customerID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req GrantAccessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.GrantAccess(ctx, nil, customerID, req.CollectionIDs, req.Status, actor)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to grant collection access",
			slog.Int64("customer_user_id", customerID),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	status := http.StatusCreated
	if len(result.Access) == 0 {
		status = http.StatusConflict
	}
	respondJSON(w, h.logger, status, result)
}

// ListCustomerAccess handles GET /api/v1/users/{id}/collections
func (h *AccessHandler) ListCustomerAccess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	customerID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid user ID")
		return
	}

	status := domain.AccessStatus(r.URL.Query().Get("status"))
	access, err := h.service.ListCustomerAccess(ctx, customerID, status)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list collection access",
			slog.Int64("customer_user_id", customerID),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{"data": access})
}

// BulkUpdateAccessRequest represents the request body for a bulk access
// update
type BulkUpdateAccessRequest struct {
	Updates []domain.AccessUpdate `json:"updates"`
}

// BulkUpdateAccess handles PUT /api/v1/users/{id}/collections/bulk
func (h *AccessHandler) BulkUpdateAccess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := middleware.ActorFrom(ctx)

	customerID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req BulkUpdateAccessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.BulkUpdateAccess(ctx, nil, customerID, req.Updates, actor)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to update collection access",
			slog.Int64("customer_user_id", customerID),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, result)
}
