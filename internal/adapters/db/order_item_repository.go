// internal/adapters/db/order_item_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/dakshilalbetrios/curtain-be/internal/core/domain"
	"github.com/dakshilalbetrios/curtain-be/internal/core/ports"
)

// orderItemRepository implements ports.OrderItemRepository
type orderItemRepository struct {
	logger *slog.Logger
}

// NewOrderItemRepository creates a new order item repository
func NewOrderItemRepository(logger *slog.Logger) ports.OrderItemRepository {
	return &orderItemRepository{
		logger: logger.With(slog.String("repository", "order_item")),
	}
}

// CreateBulk inserts line items in one batch round trip
func (r *orderItemRepository) CreateBulk(ctx context.Context, q ports.Querier, items []domain.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		INSERT INTO order_items (order_id, stock_unit_id, quantity, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	batch := &pgx.Batch{}
	for i := range items {
		batch.Queue(query, items[i].OrderID, items[i].StockUnitID, items[i].Quantity, items[i].CreatedBy)
	}

	br := q.SendBatch(ctx, batch)
	defer br.Close()

	for i := range items {
		if err := br.QueryRow().Scan(&items[i].ID, &items[i].CreatedAt); err != nil {
			return fmt.Errorf("failed to create order item %d: %w", i, err)
		}
	}

	r.logger.DebugContext(ctx, "order items created",
		slog.Int64("order_id", items[0].OrderID),
		slog.Int("count", len(items)))

	return nil
}

// FindByID retrieves one line item with its unit's serial number
func (r *orderItemRepository) FindByID(ctx context.Context, q ports.Querier, id int64) (*domain.OrderItem, error) {
	query := `
		SELECT oi.id, oi.order_id, oi.stock_unit_id, oi.quantity, su.sr_no, su.unit,
			oi.created_by, oi.created_at, oi.updated_by, oi.updated_at
		FROM order_items oi
		JOIN stock_units su ON su.id = oi.stock_unit_id
		WHERE oi.id = $1`

	item := &domain.OrderItem{}
	err := q.QueryRow(ctx, query, id).Scan(
		&item.ID, &item.OrderID, &item.StockUnitID, &item.Quantity,
		&item.SrNo, &item.Unit,
		&item.CreatedBy, &item.CreatedAt, &item.UpdatedBy, &item.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find order item: %w", err)
	}

	return item, nil
}

// FindByOrder retrieves all line items of one order
func (r *orderItemRepository) FindByOrder(ctx context.Context, q ports.Querier, orderID int64) ([]domain.OrderItem, error) {
	query := `
		SELECT oi.id, oi.order_id, oi.stock_unit_id, oi.quantity, su.sr_no, su.unit,
			oi.created_by, oi.created_at, oi.updated_by, oi.updated_at
		FROM order_items oi
		JOIN stock_units su ON su.id = oi.stock_unit_id
		WHERE oi.order_id = $1
		ORDER BY oi.id ASC`

	rows, err := q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		err := rows.Scan(
			&item.ID, &item.OrderID, &item.StockUnitID, &item.Quantity,
			&item.SrNo, &item.Unit,
			&item.CreatedBy, &item.CreatedAt, &item.UpdatedBy, &item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, nil
}

// UpdateQuantity sets a line item's quantity
func (r *orderItemRepository) UpdateQuantity(ctx context.Context, q ports.Querier, id int64, quantity decimal.Decimal, actorID *int64) error {
	query := `UPDATE order_items SET quantity = $2, updated_by = $3, updated_at = $4 WHERE id = $1`

	tag, err := q.Exec(ctx, query, id, quantity, actorID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update order item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: order item %d", domain.ErrNotFound, id)
	}

	return nil
}

// Delete removes one line item
func (r *orderItemRepository) Delete(ctx context.Context, q ports.Querier, id int64) error {
	tag, err := q.Exec(ctx, `DELETE FROM order_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete order item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: order item %d", domain.ErrNotFound, id)
	}

	return nil
}

// DeleteByOrder removes all line items of one order
func (r *orderItemRepository) DeleteByOrder(ctx context.Context, q ports.Querier, orderID int64) error {
	tag, err := q.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("failed to delete order items: %w", err)
	}

	r.logger.DebugContext(ctx, "order items deleted",
		slog.Int64("order_id", orderID),
		slog.Int64("count", tag.RowsAffected()))

	return nil
}
