// internal/adapters/db/order_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/dakshilalbetrios/curtain-be/internal/core/domain"
	"github.com/dakshilalbetrios/curtain-be/internal/core/ports"
)

const orderColumns = `id, status, courier_tracking_no, courier_company, stock_reversed_at, created_by, created_at, updated_by, updated_at`

// orderRepository implements ports.OrderRepository
type orderRepository struct {
	logger *slog.Logger
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(logger *slog.Logger) ports.OrderRepository {
	return &orderRepository{
		logger: logger.With(slog.String("repository", "order")),
	}
}

// Create inserts a new order row
func (r *orderRepository) Create(ctx context.Context, q ports.Querier, order *domain.Order) error {
	query := `
		INSERT INTO orders (status, created_by)
		VALUES ($1, $2)
		RETURNING id, created_at`

	err := q.QueryRow(ctx, query, order.Status, order.CreatedBy).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.DebugContext(ctx, "order created", slog.Int64("order_id", order.ID))
	return nil
}

// FindByID retrieves an order by ID, without items
func (r *orderRepository) FindByID(ctx context.Context, q ports.Querier, id int64) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	order := &domain.Order{}
	err := scanOrder(q.QueryRow(ctx, query, id), order)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	return order, nil
}

// UpdateStatus sets the order's status and courier details. Courier fields
// only overwrite when provided. The returned bool is whether the order row
// exists.
func (r *orderRepository) UpdateStatus(ctx context.Context, q ports.Querier, id int64, status domain.OrderStatus, courier domain.CourierInfo, actorID *int64) (bool, error) {
	query := `
		UPDATE orders
		SET status = $2,
			courier_tracking_no = COALESCE($3, courier_tracking_no),
			courier_company = COALESCE($4, courier_company),
			updated_by = $5,
			updated_at = $6
		WHERE id = $1`

	tag, err := q.Exec(ctx, query, id, status, courier.TrackingNo, courier.Company, actorID, time.Now())
	if err != nil {
		return false, fmt.Errorf("failed to update order status: %w", err)
	}

	if tag.RowsAffected() > 0 {
		r.logger.DebugContext(ctx, "order status updated",
			slog.Int64("order_id", id),
			slog.String("status", string(status)))
	}

	return tag.RowsAffected() > 0, nil
}

// MarkStockReversed stamps stock_reversed_at exactly once. Whichever caller
// matches the IS NULL row wins and owns the reversal; later callers see no
// row changed and skip it.
func (r *orderRepository) MarkStockReversed(ctx context.Context, q ports.Querier, id int64, at time.Time) (bool, error) {
	query := `UPDATE orders SET stock_reversed_at = $2 WHERE id = $1 AND stock_reversed_at IS NULL`

	tag, err := q.Exec(ctx, query, id, at)
	if err != nil {
		return false, fmt.Errorf("failed to mark stock reversed: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Delete removes an order row
func (r *orderRepository) Delete(ctx context.Context, q ports.Querier, id int64) error {
	tag, err := q.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: order %d", domain.ErrNotFound, id)
	}

	r.logger.InfoContext(ctx, "order deleted", slog.Int64("order_id", id))
	return nil
}

// List retrieves orders with filtering and pagination, items populated per
// page
func (r *orderRepository) List(ctx context.Context, q ports.Querier, params ports.OrderListParams) (*ports.OrderListResult, error) {
	qb := squirrel.Select(
		"id", "status", "courier_tracking_no", "courier_company", "stock_reversed_at",
		"created_by", "created_at", "updated_by", "updated_at",
	).From("orders").
		PlaceholderFormat(squirrel.Dollar)

	if len(params.Statuses) > 0 {
		qb = qb.Where(squirrel.Eq{"status": params.Statuses})
	}
	if params.CreatedBy != nil {
		qb = qb.Where(squirrel.Eq{"created_by": *params.CreatedBy})
	}
	if params.Overdue {
		qb = qb.Where(squirrel.Eq{"status": domain.OverdueStatuses}).
			Where(squirrel.Lt{"created_at": params.OverdueAfter})
	}

	// Count before pagination
	countQb := qb.Column("COUNT(*) OVER()").Limit(1)
	countSQL, countArgs, err := countQb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build count query: %w", err)
	}

	var totalCount int64
	err = q.QueryRow(ctx, countSQL, countArgs...).Scan(&totalCount)
	if err != nil && err != pgx.ErrNoRows {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	orderBy := "created_at DESC"
	if params.SortBy != "" {
		direction := "DESC"
		if params.SortOrder == "asc" {
			direction = "ASC"
		}
		switch params.SortBy {
		case "status":
			orderBy = fmt.Sprintf("status %s, created_at DESC", direction)
		case "updated":
			orderBy = fmt.Sprintf("updated_at %s NULLS LAST", direction)
		default:
			orderBy = fmt.Sprintf("created_at %s", direction)
		}
	}
	qb = qb.OrderBy(orderBy)

	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	qb = qb.Limit(uint64(pageSize)).Offset(uint64((page - 1) * pageSize))

	listSQL, listArgs, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := scanOrder(rows, &order); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	if err := r.attachItems(ctx, q, orders); err != nil {
		return nil, err
	}

	totalPages := int((totalCount + int64(pageSize) - 1) / int64(pageSize))

	return &ports.OrderListResult{
		Orders:     orders,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}, nil
}

// attachItems loads the line items for one page of orders in a single query
func (r *orderRepository) attachItems(ctx context.Context, q ports.Querier, orders []domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]int64, len(orders))
	byID := make(map[int64]*domain.Order, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
		byID[orders[i].ID] = &orders[i]
	}

	query := `
		SELECT oi.id, oi.order_id, oi.stock_unit_id, oi.quantity, su.sr_no, su.unit,
			oi.created_by, oi.created_at, oi.updated_by, oi.updated_at
		FROM order_items oi
		JOIN stock_units su ON su.id = oi.stock_unit_id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.id ASC`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		err := rows.Scan(
			&item.ID, &item.OrderID, &item.StockUnitID, &item.Quantity,
			&item.SrNo, &item.Unit,
			&item.CreatedBy, &item.CreatedAt, &item.UpdatedBy, &item.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to scan order item: %w", err)
		}
		if order, ok := byID[item.OrderID]; ok {
			order.Items = append(order.Items, item)
		}
	}
	return rows.Err()
}

func scanOrder(row pgx.Row, order *domain.Order) error {
	return row.Scan(
		&order.ID, &order.Status,
		&order.CourierTrackingNo, &order.CourierCompany, &order.StockReversedAt,
		&order.CreatedBy, &order.CreatedAt, &order.UpdatedBy, &order.UpdatedAt,
	)
}
