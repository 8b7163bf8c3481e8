// internal/handlers/collection.go
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

// CollectionHandler handles collection HTTP requests
type CollectionHandler struct {
	service ports.CollectionService
	stock   ports.StockService
	logger  *slog.Logger
}

// NewCollectionHandler creates a new collection handler
func NewCollectionHandler(service ports.CollectionService, stock ports.StockService, logger *slog.Logger) *CollectionHandler {
	return &CollectionHandler{
		service: service,
		stock:   stock,
		logger:  logger.With(slog.String("handler", "collection")),
	}
}

// CreateCollection handles POST /api/v1/collections
func (h *CollectionHandler) CreateCollection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := middleware.ActorFrom(ctx)

	var c domain.Collection
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.service.CreateCollection(ctx, nil, &c, actor)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create collection",
			slog.String("name", c.Name),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, created)
}

// GetCollection handles GET /api/v1/collections/{id}
func (h *CollectionHandler) GetCollection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid collection ID")
		return
	}

	c, err := h.service.GetCollection(ctx, id)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get collection",
			slog.Int64("collection_id", id),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, c)
}

// ListCollections handles GET /api/v1/collections
func (h *CollectionHandler) ListCollections(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	collections, err := h.service.ListCollections(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list collections",
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{"data": collections})
}

// UpdateCollectionRequest represents the request body for updating a
// collection
type UpdateCollectionRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UpdateCollection handles PUT /api/v1/collections/{id}
func (h *CollectionHandler) UpdateCollection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := middleware.ActorFrom(ctx)

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid collection ID")
		return
	}

	var req UpdateCollectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	c, err := h.service.UpdateCollection(ctx, nil, id, req.Name, req.Description, actor)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to update collection",
			slog.Int64("collection_id", id),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, c)
}

// DeleteCollection handles DELETE /api/v1/collections/{id}
func (h *CollectionHandler) DeleteCollection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid collection ID")
		return
	}

	if err := h.service.DeleteCollection(ctx, nil, id); err != nil {
		h.logger.ErrorContext(ctx, "failed to delete collection",
			slog.Int64("collection_id", id),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"message":       "Collection deleted successfully",
		"collection_id": id,
	})
}

// StockUnitRowError reports why one row of a bulk create was rejected
type StockUnitRowError struct {
	SrNo  string `json:"sr_no"`
	Error string `json:"error"`
}

// CreateStockUnits handles POST /api/v1/collections/{id}/stock-units.
// Each row is created in its own transaction; failures are collected per
// row so one bad serial number does not sink the rest of the batch.
func (h *CollectionHandler) CreateStockUnits(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := middleware.ActorFrom(ctx)

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid collection ID")
		return
	}

	var units []domain.StockUnit
	if err := json.NewDecoder(r.Body).Decode(&units); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(units) == 0 {
		respondError(w, h.logger, http.StatusBadRequest, "At least one stock unit is required")
		return
	}

	if _, err := h.service.GetCollection(ctx, id); err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	created := make([]*domain.StockUnit, 0, len(units))
	rowErrors := make([]StockUnitRowError, 0)
	for i := range units {
		unit := units[i]
		unit.CollectionID = id

		row, err := h.stock.CreateStockUnit(ctx, nil, &unit, actor)
		if err != nil {
			h.logger.WarnContext(ctx, "failed to create stock unit",
				slog.Int64("collection_id", id),
				slog.String("sr_no", unit.SrNo),
				slog.String("error", err.Error()))
			rowErrors = append(rowErrors, StockUnitRowError{SrNo: unit.SrNo, Error: err.Error()})
			continue
		}
		created = append(created, row)
	}

	status := http.StatusCreated
	if len(created) == 0 {
		status = http.StatusConflict
	}
	respondJSON(w, h.logger, status, map[string]interface{}{
		"created": created,
		"errors":  rowErrors,
	})
}
