// internal/core/services/order.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dakshilalbetrios/curtain-be/internal/core/domain"
	"github.com/dakshilalbetrios/curtain-be/internal/core/ports"
)

// OrderService owns the order aggregate. Every stock effect is delegated to
// the stock service inside the surrounding transaction, so an order mutation
// either lands completely or not at all.
type OrderService struct {
	db          ports.Database
	orders      ports.OrderRepository
	items       ports.OrderItemRepository
	units       ports.StockUnitRepository
	stock       ports.StockService
	overdueDays int
	logger      *slog.Logger
}

// Statically assert that *OrderService implements the OrderService interface.
var _ ports.OrderService = (*OrderService)(nil)

// NewOrderService creates a new order service.
func NewOrderService(db ports.Database, orders ports.OrderRepository, items ports.OrderItemRepository, units ports.StockUnitRepository, stock ports.StockService, overdueDays int, logger *slog.Logger) *OrderService {
	return &OrderService{
		db:          db,
		orders:      orders,
		items:       items,
		units:       units,
		stock:       stock,
		overdueDays: overdueDays,
		logger:      logger.With(slog.String("service", "order")),
	}
}

// CreateOrder creates a PENDING order with its line items and reserves stock
// for each item, all in one transaction. Any failure leaves no order, no
// item, and no movement behind.
func (s *OrderService) CreateOrder(ctx context.Context, tx pgx.Tx, items []domain.NewOrderItem, actor domain.Actor) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: at least one order item is required", domain.ErrInvalidInput)
	}
	for i := range items {
		if err := items[i].Validate(); err != nil {
			return nil, err
		}
	}

	var order *domain.Order
	err := within(ctx, s.db, tx, func(q pgx.Tx) error {
		// Resolve every unit up front so a bad reference surfaces as a
		// not-found error instead of a foreign key violation on the insert.
		for _, item := range items {
			if err := s.resolveStockUnit(ctx, q, item.StockUnitID); err != nil {
				return err
			}
		}

		order = &domain.Order{
			Status:    domain.OrderPending,
			CreatedBy: &actor.ID,
		}
		if err := s.orders.Create(ctx, q, order); err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		rows := make([]domain.OrderItem, 0, len(items))
		for _, item := range items {
			rows = append(rows, domain.OrderItem{
				OrderID:     order.ID,
				StockUnitID: item.StockUnitID,
				Quantity:    item.Quantity,
				CreatedBy:   &actor.ID,
			})
		}
		if err := s.items.CreateBulk(ctx, q, rows); err != nil {
			return fmt.Errorf("failed to create order items: %w", err)
		}

		for _, item := range items {
			_, err := s.stock.ApplyDelta(ctx, q, domain.StockDelta{
				StockUnitID: item.StockUnitID,
				Action:      domain.MovementOut,
				Quantity:    item.Quantity,
				Reason:      fmt.Sprintf("Order #%d - %s units sold", order.ID, item.Quantity),
				ActorID:     &actor.ID,
			})
			if err != nil {
				return err
			}
		}

		loaded, err := s.items.FindByOrder(ctx, q, order.ID)
		if err != nil {
			return err
		}
		order.Items = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}

	if tx == nil {
		ids := make([]int64, 0, len(items))
		for _, item := range items {
			ids = append(ids, item.StockUnitID)
		}
		s.stock.InvalidateUnits(ctx, ids...)
	}

	s.logger.InfoContext(ctx, "order created",
		slog.Int64("order_id", order.ID),
		slog.Int("items", len(order.Items)),
		slog.Int64("created_by", actor.ID))

	return order, nil
}

// UpdateOrder applies tagged create/update/delete item operations in the
// order the caller supplied them. A failure on any operation rolls back the
// whole update.
func (s *OrderService) UpdateOrder(ctx context.Context, tx pgx.Tx, orderID int64, ops []domain.OrderItemOp, actor domain.Actor) (*domain.Order, error) {
	if len(ops) == 0 {
		return nil, fmt.Errorf("%w: at least one item operation is required", domain.ErrInvalidInput)
	}
	for i := range ops {
		if err := ops[i].Validate(); err != nil {
			return nil, err
		}
	}

	var order *domain.Order
	var touched []int64
	err := within(ctx, s.db, tx, func(q pgx.Tx) error {
		existing, err := s.orders.FindByID(ctx, q, orderID)
		if err != nil {
			return err
		}
		if existing == nil {
			return fmt.Errorf("%w: order %d", domain.ErrNotFound, orderID)
		}
		if existing.Status.Terminal() {
			return fmt.Errorf("%w: order %d is %s", domain.ErrInvalidStatusTransition, orderID, existing.Status)
		}

		for _, op := range ops {
			var unitID int64
			switch op.Action {
			case domain.ItemOpCreate:
				unitID, err = s.applyItemCreate(ctx, q, orderID, op, actor)
			case domain.ItemOpUpdate:
				unitID, err = s.applyItemUpdate(ctx, q, orderID, op, actor)
			case domain.ItemOpDelete:
				unitID, err = s.applyItemDelete(ctx, q, orderID, op, actor)
			}
			if err != nil {
				return err
			}
			touched = append(touched, unitID)
		}

		order = existing
		order.UpdatedBy = &actor.ID
		order.Items, err = s.items.FindByOrder(ctx, q, orderID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if tx == nil {
		s.stock.InvalidateUnits(ctx, touched...)
	}

	s.logger.InfoContext(ctx, "order updated",
		slog.Int64("order_id", orderID),
		slog.Int("item_ops", len(ops)))

	return order, nil
}

// resolveStockUnit confirms a referenced unit exists within the current
// transaction.
func (s *OrderService) resolveStockUnit(ctx context.Context, q pgx.Tx, unitID int64) error {
	unit, err := s.units.FindByID(ctx, q, unitID)
	if err != nil {
		return err
	}
	if unit == nil {
		return fmt.Errorf("%w: stock unit %d", domain.ErrNotFound, unitID)
	}
	return nil
}

func (s *OrderService) applyItemCreate(ctx context.Context, q pgx.Tx, orderID int64, op domain.OrderItemOp, actor domain.Actor) (int64, error) {
	if err := s.resolveStockUnit(ctx, q, op.StockUnitID); err != nil {
		return 0, err
	}

	rows := []domain.OrderItem{{
		OrderID:     orderID,
		StockUnitID: op.StockUnitID,
		Quantity:    op.Quantity,
		CreatedBy:   &actor.ID,
	}}
	if err := s.items.CreateBulk(ctx, q, rows); err != nil {
		return 0, fmt.Errorf("failed to create order item: %w", err)
	}

	_, err := s.stock.ApplyDelta(ctx, q, domain.StockDelta{
		StockUnitID: op.StockUnitID,
		Action:      domain.MovementOut,
		Quantity:    op.Quantity,
		Reason:      fmt.Sprintf("Order #%d - %s units sold", orderID, op.Quantity),
		ActorID:     &actor.ID,
	})
	return op.StockUnitID, err
}

func (s *OrderService) applyItemUpdate(ctx context.Context, q pgx.Tx, orderID int64, op domain.OrderItemOp, actor domain.Actor) (int64, error) {
	current, err := s.items.FindByID(ctx, q, op.ID)
	if err != nil {
		return 0, err
	}
	if current == nil || current.OrderID != orderID {
		return 0, fmt.Errorf("%w: order item %d", domain.ErrNotFound, op.ID)
	}

	diff := op.Quantity.Sub(current.Quantity)
	switch {
	case diff.IsPositive():
		_, err = s.stock.ApplyDelta(ctx, q, domain.StockDelta{
			StockUnitID: current.StockUnitID,
			Action:      domain.MovementOut,
			Quantity:    diff,
			Reason:      fmt.Sprintf("Order #%d updated - %s additional units sold", orderID, diff),
			ActorID:     &actor.ID,
		})
	case diff.IsNegative():
		_, err = s.stock.ApplyDelta(ctx, q, domain.StockDelta{
			StockUnitID: current.StockUnitID,
			Action:      domain.MovementIn,
			Quantity:    diff.Abs(),
			Reason:      fmt.Sprintf("Order #%d updated - %s units restored", orderID, diff.Abs()),
			ActorID:     &actor.ID,
		})
	}
	if err != nil {
		return 0, err
	}

	return current.StockUnitID, s.items.UpdateQuantity(ctx, q, op.ID, op.Quantity, &actor.ID)
}

func (s *OrderService) applyItemDelete(ctx context.Context, q pgx.Tx, orderID int64, op domain.OrderItemOp, actor domain.Actor) (int64, error) {
	current, err := s.items.FindByID(ctx, q, op.ID)
	if err != nil {
		return 0, err
	}
	if current == nil || current.OrderID != orderID {
		return 0, fmt.Errorf("%w: order item %d", domain.ErrNotFound, op.ID)
	}

	_, err = s.stock.ApplyDelta(ctx, q, domain.StockDelta{
		StockUnitID: current.StockUnitID,
		Action:      domain.MovementIn,
		Quantity:    current.Quantity,
		Reason:      fmt.Sprintf("Order #%d item deleted - %s units restored", orderID, current.Quantity),
		ActorID:     &actor.ID,
	})
	if err != nil {
		return 0, err
	}

	return current.StockUnitID, s.items.Delete(ctx, q, op.ID)
}

// UpdateStatus moves an order through the state machine. Cancellation
// restores each item's reservation exactly once: the stock_reversed_at stamp
// guards repeat cancels and delete-after-cancel.
func (s *OrderService) UpdateStatus(ctx context.Context, tx pgx.Tx, orderID int64, status domain.OrderStatus, courier domain.CourierInfo, actor domain.Actor) (*domain.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, status)
	}

	var order *domain.Order
	var reversed []int64
	err := within(ctx, s.db, tx, func(q pgx.Tx) error {
		existing, err := s.orders.FindByID(ctx, q, orderID)
		if err != nil {
			return err
		}
		if existing == nil {
			return fmt.Errorf("%w: order %d", domain.ErrNotFound, orderID)
		}
		if !existing.Status.CanTransitionTo(status) {
			return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidStatusTransition, existing.Status, status)
		}

		if _, err := s.orders.UpdateStatus(ctx, q, orderID, status, courier, &actor.ID); err != nil {
			return fmt.Errorf("failed to update order status: %w", err)
		}

		if status == domain.OrderCancelled {
			reversed, err = s.reverseOrderStock(ctx, q, orderID, &actor.ID,
				"Order #%d cancelled - %s units restored")
			if err != nil {
				return err
			}
		}

		order, err = s.orders.FindByID(ctx, q, orderID)
		if err != nil {
			return err
		}
		order.Items, err = s.items.FindByOrder(ctx, q, orderID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if tx == nil && len(reversed) > 0 {
		s.stock.InvalidateUnits(ctx, reversed...)
	}

	s.logger.InfoContext(ctx, "order status updated",
		slog.Int64("order_id", orderID),
		slog.String("status", string(status)))

	return order, nil
}

// DeleteOrder restores any outstanding reservation, removes the line items
// and then the order row. An order whose stock was already reversed by a
// cancel is not restored again.
func (s *OrderService) DeleteOrder(ctx context.Context, tx pgx.Tx, orderID int64) error {
	var reversed []int64
	err := within(ctx, s.db, tx, func(q pgx.Tx) error {
		existing, err := s.orders.FindByID(ctx, q, orderID)
		if err != nil {
			return err
		}
		if existing == nil {
			return fmt.Errorf("%w: order %d", domain.ErrNotFound, orderID)
		}

		actorID := existing.UpdatedBy
		if actorID == nil {
			actorID = existing.CreatedBy
		}
		reversed, err = s.reverseOrderStock(ctx, q, orderID, actorID,
			"Order #%d deleted - %s units restored")
		if err != nil {
			return err
		}

		if err := s.items.DeleteByOrder(ctx, q, orderID); err != nil {
			return fmt.Errorf("failed to delete order items: %w", err)
		}
		if err := s.orders.Delete(ctx, q, orderID); err != nil {
			return fmt.Errorf("failed to delete order: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if tx == nil && len(reversed) > 0 {
		s.stock.InvalidateUnits(ctx, reversed...)
	}

	s.logger.InfoContext(ctx, "order deleted", slog.Int64("order_id", orderID))
	return nil
}

// reverseOrderStock applies an IN reversal for every line item, but only if
// this call wins the stock_reversed_at stamp. msgFormat takes the order id
// and the item quantity.
func (s *OrderService) reverseOrderStock(ctx context.Context, q pgx.Tx, orderID int64, actorID *int64, msgFormat string) ([]int64, error) {
	won, err := s.orders.MarkStockReversed(ctx, q, orderID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to mark stock reversed: %w", err)
	}
	if !won {
		// Already reversed by an earlier cancel or delete.
		return nil, nil
	}

	items, err := s.items.FindByOrder(ctx, q, orderID)
	if err != nil {
		return nil, err
	}
	unitIDs := make([]int64, 0, len(items))
	for _, item := range items {
		_, err := s.stock.ApplyDelta(ctx, q, domain.StockDelta{
			StockUnitID: item.StockUnitID,
			Action:      domain.MovementIn,
			Quantity:    item.Quantity,
			Reason:      fmt.Sprintf(msgFormat, orderID, item.Quantity),
			ActorID:     actorID,
		})
		if err != nil {
			return nil, err
		}
		unitIDs = append(unitIDs, item.StockUnitID)
	}
	return unitIDs, nil
}

// GetOrder returns one order with its items. Customers may only read their
// own orders.
func (s *OrderService) GetOrder(ctx context.Context, orderID int64, actor domain.Actor) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, s.db, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: order %d", domain.ErrNotFound, orderID)
	}
	if actor.Role == domain.RoleCustomer && (order.CreatedBy == nil || *order.CreatedBy != actor.ID) {
		return nil, fmt.Errorf("%w: order %d", domain.ErrUnauthorized, orderID)
	}

	order.Items, err = s.items.FindByOrder(ctx, s.db, orderID)
	if err != nil {
		return nil, err
	}
	return order, nil
}

// ListOrders returns a filtered page of orders. Customers are always scoped
// to their own orders; the overdue filter selects non-terminal orders older
// than the configured day threshold.
func (s *OrderService) ListOrders(ctx context.Context, params ports.OrderListParams, actor domain.Actor) (*ports.OrderListResult, error) {
	if actor.Role == domain.RoleCustomer {
		params.CreatedBy = &actor.ID
	}
	if params.Overdue {
		params.Statuses = append([]domain.OrderStatus(nil), domain.OverdueStatuses...)
		params.OverdueAfter = time.Now().AddDate(0, 0, -s.overdueDays)
	}
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.PageSize <= 0 {
		params.PageSize = 20
	}

	return s.orders.List(ctx, s.db, params)
}
