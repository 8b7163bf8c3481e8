// internal/handlers/stock.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/dakshilalbetrios/curtain-be/internal/core/domain"
	"github.com/dakshilalbetrios/curtain-be/internal/core/ports"
	"github.com/dakshilalbetrios/curtain-be/internal/handlers/middleware"
)

// StockHandler handles stock unit and movement HTTP requests
type StockHandler struct {
	service ports.StockService
	logger  *slog.Logger
}

// NewStockHandler creates a new stock handler
func NewStockHandler(service ports.StockService, logger *slog.Logger) *StockHandler {
	return &StockHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "stock")),
	}
}

// GetStockUnit handles GET /api/v1/stock-units/{id}
func (h *StockHandler) GetStockUnit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid stock unit ID")
		return
	}

	unit, err := h.service.GetStockUnit(ctx, id)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get stock unit",
			slog.Int64("stock_unit_id", id),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, unit)
}

// UpdateStockUnit handles PATCH /api/v1/stock-units/{id}
func (h *StockHandler) UpdateStockUnit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := middleware.ActorFrom(ctx)

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid stock unit ID")
		return
	}

	var patch domain.StockUnitPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	unit, err := h.service.UpdateStockUnit(ctx, nil, id, patch, actor)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to update stock unit",
			slog.Int64("stock_unit_id", id),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, unit)
}

// DeleteStockUnit handles DELETE /api/v1/stock-units/{id}
func (h *StockHandler) DeleteStockUnit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid stock unit ID")
		return
	}

	if err := h.service.DeleteStockUnit(ctx, nil, id); err != nil {
		h.logger.ErrorContext(ctx, "failed to delete stock unit",
			slog.Int64("stock_unit_id", id),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"message":       "Stock unit deleted successfully",
		"stock_unit_id": id,
	})
}

// MovementRequest represents the request body for a stock movement
type MovementRequest struct {
	Action   domain.MovementAction `json:"action"`
	Quantity decimal.Decimal       `json:"quantity"`
	Message  string                `json:"message,omitempty"`
}

// CreateMovement handles POST /api/v1/stock-units/{id}/movements
func (h *StockHandler) CreateMovement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := middleware.ActorFrom(ctx)

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid stock unit ID")
		return
	}

	var req MovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	unit, err := h.service.ApplyDelta(ctx, nil, domain.StockDelta{
		StockUnitID: id,
		Action:      req.Action,
		Quantity:    req.Quantity,
		Reason:      req.Message,
		ActorID:     &actor.ID,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to apply stock movement",
			slog.Int64("stock_unit_id", id),
			slog.String("action", string(req.Action)),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	h.logger.InfoContext(ctx, "stock movement applied",
		slog.Int64("stock_unit_id", id),
		slog.String("action", string(req.Action)),
		slog.String("quantity", req.Quantity.String()))

	respondJSON(w, h.logger, http.StatusCreated, unit)
}

// ListMovements handles GET /api/v1/stock-units/{id}/movements
func (h *StockHandler) ListMovements(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid stock unit ID")
		return
	}

	movements, err := h.service.ListMovements(ctx, id)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list stock movements",
			slog.Int64("stock_unit_id", id),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{"data": movements})
}
