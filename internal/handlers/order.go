// internal/handlers/order.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/dakshilalbetrios/curtain-be/internal/core/domain"
	"github.com/dakshilalbetrios/curtain-be/internal/core/ports"
	"github.com/dakshilalbetrios/curtain-be/internal/handlers/middleware"
)

// OrderHandler handles order HTTP requests
type OrderHandler struct {
	service ports.OrderService
	logger  *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(service ports.OrderService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "order")),
	}
}

// CreateOrderRequest represents the request body for creating an order
type CreateOrderRequest struct {
	Items []domain.NewOrderItem `json:"order_items"`
}

// CreateOrder handles POST /api/v1/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := middleware.ActorFrom(ctx)

	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.service.CreateOrder(ctx, nil, req.Items, actor)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create order",
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	h.logger.InfoContext(ctx, "order created",
		slog.Int64("order_id", order.ID),
		slog.Int("items", len(order.Items)))

	respondJSON(w, h.logger, http.StatusCreated, order)
}

// UpdateOrderRequest represents the request body for updating an order's
// line items
type UpdateOrderRequest struct {
	Items []domain.OrderItemOp `json:"order_items"`
}

// UpdateOrder handles PUT /api/v1/orders/{id}
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := middleware.ActorFrom(ctx)

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var req UpdateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.service.UpdateOrder(ctx, nil, id, req.Items, actor)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to update order",
			slog.Int64("order_id", id),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, order)
}

// UpdateStatusRequest represents the request body for a status change
type UpdateStatusRequest struct {
	Status            domain.OrderStatus `json:"status"`
	CourierTrackingNo *string            `json:"courier_tracking_no,omitempty"`
	CourierCompany    *string            `json:"courier_company,omitempty"`
}

// UpdateStatus handles PATCH /api/v1/orders/{id}/status
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := middleware.ActorFrom(ctx)

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	courier := domain.CourierInfo{
		TrackingNo: req.CourierTrackingNo,
		Company:    req.CourierCompany,
	}

	order, err := h.service.UpdateStatus(ctx, nil, id, req.Status, courier, actor)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to update order status",
			slog.Int64("order_id", id),
			slog.String("status", string(req.Status)),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	h.logger.InfoContext(ctx, "order status updated",
		slog.Int64("order_id", id),
		slog.String("status", string(req.Status)))

	respondJSON(w, h.logger, http.StatusOK, order)
}

// DeleteOrder handles DELETE /api/v1/orders/{id}
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid order ID")
		return
	}

	if err := h.service.DeleteOrder(ctx, nil, id); err != nil {
		h.logger.ErrorContext(ctx, "failed to delete order",
			slog.Int64("order_id", id),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"message":  "Order deleted successfully",
		"order_id": id,
	})
}

// GetOrder handles GET /api/v1/orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := middleware.ActorFrom(ctx)

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid order ID")
		return
	}

	order, err := h.service.GetOrder(ctx, id, actor)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order",
			slog.Int64("order_id", id),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, order)
}

// ListOrders handles GET /api/v1/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := middleware.ActorFrom(ctx)

	params := h.parseListParams(r)

	result, err := h.service.ListOrders(ctx, params, actor)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list orders",
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, result)
}

// parseListParams parses query parameters for listing orders
func (h *OrderHandler) parseListParams(r *http.Request) ports.OrderListParams {
	params := ports.OrderListParams{
		Page:      1,
		PageSize:  20,
		SortBy:    "created_at",
		SortOrder: "desc",
	}

	if page := r.URL.Query().Get("page"); page != "" {
		if p, err := strconv.Atoi(page); err == nil && p > 0 {
			params.Page = p
		}
	}

	if limit := r.URL.Query().Get("limit"); limit != "" {
		if l, err := strconv.Atoi(limit); err == nil && l > 0 {
			if l > 100 {
				params.PageSize = 100
			} else {
				params.PageSize = l
			}
		}
	}

	if statuses := r.URL.Query().Get("status"); statuses != "" {
		for _, s := range strings.Split(statuses, ",") {
			status := domain.OrderStatus(strings.ToUpper(strings.TrimSpace(s)))
			if status.Valid() {
				params.Statuses = append(params.Statuses, status)
			}
		}
	}

	params.Overdue = r.URL.Query().Get("overdue") == "true"

	if sortBy := r.URL.Query().Get("sort"); sortBy != "" {
		params.SortBy = sortBy
	}
	if order := r.URL.Query().Get("order"); order == "asc" || order == "desc" {
		params.SortOrder = order
	}

	return params
}
