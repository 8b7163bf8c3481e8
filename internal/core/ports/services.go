// internal/core/ports/services.go
package ports

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/dakshilalbetrios/curtain-be/internal/core/domain"
)

// Every service operation below follows the same transaction convention: a
// nil tx makes the operation open and own its transaction; a non-nil tx
// joins the caller's transaction, which the caller commits or rolls back.

// StockService is the sole authorized mutator of current_stock. Each
// quantity change is paired with a ledger entry in the same transaction.
type StockService interface {
	ApplyDelta(ctx context.Context, tx pgx.Tx, delta domain.StockDelta) (*domain.StockUnit, error)
	CreateStockUnit(ctx context.Context, tx pgx.Tx, unit *domain.StockUnit, actor domain.Actor) (*domain.StockUnit, error)
	UpdateStockUnit(ctx context.Context, tx pgx.Tx, id int64, patch domain.StockUnitPatch, actor domain.Actor) (*domain.StockUnit, error)
	DeleteStockUnit(ctx context.Context, tx pgx.Tx, id int64) error
	GetStockUnit(ctx context.Context, id int64) (*domain.StockUnit, error)
	ListMovements(ctx context.Context, stockUnitID int64) ([]domain.StockMovement, error)

	// InvalidateUnits drops cached units. Services that mutate stock inside
	// a joined transaction call this after their own commit.
	InvalidateUnits(ctx context.Context, unitIDs ...int64)
}

// OrderService orchestrates the order aggregate, delegating every stock
// effect to the StockService.
type OrderService interface {
	CreateOrder(ctx context.Context, tx pgx.Tx, items []domain.NewOrderItem, actor domain.Actor) (*domain.Order, error)
	UpdateOrder(ctx context.Context, tx pgx.Tx, orderID int64, ops []domain.OrderItemOp, actor domain.Actor) (*domain.Order, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, orderID int64, status domain.OrderStatus, courier domain.CourierInfo, actor domain.Actor) (*domain.Order, error)
	DeleteOrder(ctx context.Context, tx pgx.Tx, orderID int64) error
	GetOrder(ctx context.Context, orderID int64, actor domain.Actor) (*domain.Order, error)
	ListOrders(ctx context.Context, params OrderListParams, actor domain.Actor) (*OrderListResult, error)
}

// AccessBatchResult carries the grants that were written plus per-collection
// failures, mirroring the bulk serial number create.
type AccessBatchResult struct {
	Access []domain.CollectionAccess `json:"access"`
	Errors []string                  `json:"errors"`
}

// CollectionService owns collections, their nested stock units, and the
// customer visibility grants pointing at them.
type CollectionService interface {
	CreateCollection(ctx context.Context, tx pgx.Tx, c *domain.Collection, actor domain.Actor) (*domain.Collection, error)
	GetCollection(ctx context.Context, id int64) (*domain.Collection, error)
	ListCollections(ctx context.Context) ([]domain.Collection, error)
	UpdateCollection(ctx context.Context, tx pgx.Tx, id int64, name, description string, actor domain.Actor) (*domain.Collection, error)
	DeleteCollection(ctx context.Context, tx pgx.Tx, id int64) error

	// GrantAccess grants one customer visibility into each listed
	// collection, collecting per-collection failures instead of aborting
	// the batch.
	GrantAccess(ctx context.Context, tx pgx.Tx, customerID int64, collectionIDs []int64, status domain.AccessStatus, actor domain.Actor) (*AccessBatchResult, error)
	ListCustomerAccess(ctx context.Context, customerID int64, status domain.AccessStatus) ([]domain.CollectionAccess, error)
	BulkUpdateAccess(ctx context.Context, tx pgx.Tx, customerID int64, updates []domain.AccessUpdate, actor domain.Actor) (*AccessBatchResult, error)
}
