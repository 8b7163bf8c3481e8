// internal/core/ports/order_repository.go
package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dakshilalbetrios/curtain-be/internal/core/domain"
)

// OrderListParams holds filters and pagination for listing orders.
type OrderListParams struct {
	Statuses  []domain.OrderStatus
	CreatedBy *int64
	// Overdue narrows to non-terminal orders older than the threshold.
	Overdue      bool
	OverdueAfter time.Time
	SortBy       string
	SortOrder    string
	Page         int
	PageSize     int
}

// OrderListResult is one page of orders with items populated.
type OrderListResult struct {
	Orders     []domain.Order `json:"data"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalCount int64          `json:"total_count"`
	TotalPages int            `json:"total_pages"`
}

// OrderRepository is the persistence port for order rows.
type OrderRepository interface {
	Create(ctx context.Context, q Querier, order *domain.Order) error
	FindByID(ctx context.Context, q Querier, id int64) (*domain.Order, error)
	UpdateStatus(ctx context.Context, q Querier, id int64, status domain.OrderStatus, courier domain.CourierInfo, actorID *int64) (bool, error)
	// MarkStockReversed stamps stock_reversed_at if and only if it is still
	// unset. The returned bool is whether this call won the stamp, i.e.
	// whether the caller should perform the reversal.
	MarkStockReversed(ctx context.Context, q Querier, id int64, at time.Time) (bool, error)
	Delete(ctx context.Context, q Querier, id int64) error
	List(ctx context.Context, q Querier, params OrderListParams) (*OrderListResult, error)
}

// OrderItemRepository is the persistence port for order line items.
type OrderItemRepository interface {
	CreateBulk(ctx context.Context, q Querier, items []domain.OrderItem) error
	FindByID(ctx context.Context, q Querier, id int64) (*domain.OrderItem, error)
	FindByOrder(ctx context.Context, q Querier, orderID int64) ([]domain.OrderItem, error)
	UpdateQuantity(ctx context.Context, q Querier, id int64, quantity decimal.Decimal, actorID *int64) error
	Delete(ctx context.Context, q Querier, id int64) error
	DeleteByOrder(ctx context.Context, q Querier, orderID int64) error
}
