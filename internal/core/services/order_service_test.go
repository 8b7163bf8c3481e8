// internal/core/services/order_service_test.go
package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dakshilalbetrios/curtain-be/internal/core/domain"
	"github.com/dakshilalbetrios/curtain-be/internal/core/ports"
	"github.com/dakshilalbetrios/curtain-be/internal/core/services"
	"github.com/dakshilalbetrios/curtain-be/test/helpers"
	"github.com/dakshilalbetrios/curtain-be/test/mocks"
)

type orderMocks struct {
	db     *mocks.MockDatabase
	orders *mocks.MockOrderRepository
	items  *mocks.MockOrderItemRepository
	units  *mocks.MockStockUnitRepository
	stock  *mocks.MockStockService
}

func newOrderService(t *testing.T) (*services.OrderService, *orderMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := &orderMocks{
		db:     mocks.NewMockDatabase(ctrl),
		orders: mocks.NewMockOrderRepository(ctrl),
		items:  mocks.NewMockOrderItemRepository(ctrl),
		units:  mocks.NewMockStockUnitRepository(ctrl),
		stock:  mocks.NewMockStockService(ctrl),
	}

	m.db.EXPECT().
		Transaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(pgx.Tx) error) error {
			return fn(nil)
		}).
		AnyTimes()

	m.stock.EXPECT().
		InvalidateUnits(gomock.Any(), gomock.Any()).
		AnyTimes()

	svc := services.NewOrderService(m.db, m.orders, m.items, m.units, m.stock, 7, helpers.TestLogger())
	return svc, m
}

func TestOrderService_CreateOrder(t *testing.T) {
	actor := helpers.AdminActor()

	t.Run("creates_order_items_and_reserves_stock", func(t *testing.T) {
		svc, m := newOrderService(t)

		items := []domain.NewOrderItem{
			{StockUnitID: 1, Quantity: decimal.RequireFromString("12.50")},
			{StockUnitID: 2, Quantity: decimal.NewFromInt(3)},
		}

		m.units.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(helpers.CreateTestStockUnit(), nil).
			Times(2)
		m.orders.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, q interface{}, order *domain.Order) error {
				assert.Equal(t, domain.OrderPending, order.Status)
				order.ID = 10
				return nil
			})
		m.items.EXPECT().
			CreateBulk(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, q interface{}, rows []domain.OrderItem) error {
				require.Len(t, rows, 2)
				assert.Equal(t, int64(10), rows[0].OrderID)
				return nil
			})
		m.stock.EXPECT().
			ApplyDelta(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, tx pgx.Tx, delta domain.StockDelta) (*domain.StockUnit, error) {
				assert.Equal(t, domain.MovementOut, delta.Action)
				if delta.StockUnitID == 1 {
					assert.Equal(t, "Order #10 - 12.5 units sold", delta.Reason)
				}
				return helpers.CreateTestStockUnit(), nil
			}).
			Times(2)
		m.items.EXPECT().
			FindByOrder(gomock.Any(), gomock.Any(), int64(10)).
			Return([]domain.OrderItem{{ID: 1, OrderID: 10}, {ID: 2, OrderID: 10}}, nil)

		order, err := svc.CreateOrder(context.Background(), nil, items, actor)
		require.NoError(t, err)
		assert.Equal(t, int64(10), order.ID)
		assert.Len(t, order.Items, 2)
	})

	t.Run("insufficient_stock_aborts_whole_order", func(t *testing.T) {
		svc, m := newOrderService(t)

		items := []domain.NewOrderItem{
			{StockUnitID: 1, Quantity: decimal.NewFromInt(500)},
		}

		m.units.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), int64(1)).
			Return(helpers.CreateTestStockUnit(), nil)
		m.orders.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, q interface{}, order *domain.Order) error {
				order.ID = 11
				return nil
			})
		m.items.EXPECT().
			CreateBulk(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		m.stock.EXPECT().
			ApplyDelta(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, domain.ErrInsufficientStock)

		_, err := svc.CreateOrder(context.Background(), nil, items, actor)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	})

	t.Run("unknown_stock_unit_maps_to_not_found", func(t *testing.T) {
		svc, m := newOrderService(t)

		items := []domain.NewOrderItem{
			{StockUnitID: 1, Quantity: decimal.NewFromInt(2)},
			{StockUnitID: 2, Quantity: decimal.NewFromInt(2)},
			{StockUnitID: 999, Quantity: decimal.NewFromInt(2)},
		}

		m.units.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), int64(1)).
			Return(helpers.CreateTestStockUnit(), nil)
		m.units.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), int64(2)).
			Return(helpers.CreateTestStockUnit(), nil)
		m.units.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), int64(999)).
			Return(nil, nil)
		// No Create or CreateBulk expectations: the bad reference must stop
		// the order before any row is written.

		_, err := svc.CreateOrder(context.Background(), nil, items, actor)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("empty_order_rejected", func(t *testing.T) {
		svc, _ := newOrderService(t)

		_, err := svc.CreateOrder(context.Background(), nil, nil, actor)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("zero_quantity_item_rejected", func(t *testing.T) {
		svc, _ := newOrderService(t)

		items := []domain.NewOrderItem{{StockUnitID: 1, Quantity: decimal.Zero}}

		_, err := svc.CreateOrder(context.Background(), nil, items, actor)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestOrderService_UpdateOrder(t *testing.T) {
	actor := helpers.AdminActor()

	t.Run("quantity_increase_sells_the_difference", func(t *testing.T) {
		svc, m := newOrderService(t)

		ops := []domain.OrderItemOp{{
			Action:   domain.ItemOpUpdate,
			ID:       5,
			Quantity: decimal.NewFromInt(8),
		}}

		m.orders.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), int64(10)).
			Return(helpers.CreateTestOrder([]int64{1}, func(o *domain.Order) { o.ID = 10 }), nil)
		m.items.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), int64(5)).
			Return(&domain.OrderItem{ID: 5, OrderID: 10, StockUnitID: 1, Quantity: decimal.NewFromInt(5)}, nil)
		m.stock.EXPECT().
			ApplyDelta(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, tx pgx.Tx, delta domain.StockDelta) (*domain.StockUnit, error) {
				assert.Equal(t, domain.MovementOut, delta.Action)
				assert.True(t, delta.Quantity.Equal(decimal.NewFromInt(3)))
				return helpers.CreateTestStockUnit(), nil
			})
		m.items.EXPECT().
			UpdateQuantity(gomock.Any(), gomock.Any(), int64(5), decimal.NewFromInt(8), &actor.ID).
			Return(nil)
		m.items.EXPECT().
			FindByOrder(gomock.Any(), gomock.Any(), int64(10)).
			Return([]domain.OrderItem{{ID: 5, OrderID: 10, Quantity: decimal.NewFromInt(8)}}, nil)

		order, err := svc.UpdateOrder(context.Background(), nil, 10, ops, actor)
		require.NoError(t, err)
		assert.True(t, order.Items[0].Quantity.Equal(decimal.NewFromInt(8)))
	})

	t.Run("quantity_decrease_restores_the_difference", func(t *testing.T) {
		svc, m := newOrderService(t)

		ops := []domain.OrderItemOp{{
			Action:   domain.ItemOpUpdate,
			ID:       5,
			Quantity: decimal.NewFromInt(2),
		}}

		m.orders.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), int64(10)).
			Return(helpers.CreateTestOrder([]int64{1}, func(o *domain.Order) { o.ID = 10 }), nil)
		m.items.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), int64(5)).
			Return(&domain.OrderItem{ID: 5, OrderID: 10, StockUnitID: 1, Quantity: decimal.NewFromInt(5)}, nil)
		m.stock.EXPECT().
			ApplyDelta(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, tx pgx.Tx, delta domain.StockDelta) (*domain.StockUnit, error) {
				assert.Equal(t, domain.MovementIn, delta.Action)
				assert.True(t, delta.Quantity.Equal(decimal.NewFromInt(3)))
				return helpers.CreateTestStockUnit(), nil
			})
		m.items.EXPECT().
			UpdateQuantity(gomock.Any(), gomock.Any(), int64(5), decimal.NewFromInt(2), &actor.ID).
			Return(nil)
		m.items.EXPECT().
			FindByOrder(gomock.Any(), gomock.Any(), int64(10)).
			Return([]domain.OrderItem{{ID: 5, OrderID: 10, Quantity: decimal.NewFromInt(2)}}, nil)

		_, err := svc.UpdateOrder(context.Background(), nil, 10, ops, actor)
		require.NoError(t, err)
	})

	t.Run("delete_op_restores_full_quantity", func(t *testing.T) {
		svc, m := newOrderService(t)

		ops := []domain.OrderItemOp{{Action: domain.ItemOpDelete, ID: 5}}

		m.orders.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), int64(10)).
			Return(helpers.CreateTestOrder([]int64{1}, func(o *domain.Order) { o.ID = 10 }), nil)
		m.items.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), int64(5)).
			Return(&domain.OrderItem{ID: 5, OrderID: 10, StockUnitID: 1, Quantity: decimal.NewFromInt(5)}, nil)
		m.stock.EXPECT().
			ApplyDelta(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, tx pgx.Tx, delta domain.StockDelta) (*domain.StockUnit, error) {
				assert.Equal(t, domain.MovementIn, delta.Action)
				assert.True(t, delta.Quantity.Equal(decimal.NewFromInt(5)))
				return helpers.CreateTestStockUnit(), nil
			})
		m.items.EXPECT().
			Delete(gomock.Any(), gomock.Any(), int64(5)).
			Return(nil)
		m.items.EXPECT().
			FindByOrder(gomock.Any(), gomock.Any(), int64(10)).
			Return(nil, nil)

		_, err := svc.UpdateOrder(context.Background(), nil, 10, ops, actor)
		require.NoError(t, err)
	})

	t.Run("create_op_with_unknown_unit_rejected", func(t *testing.T) {
		svc, m := newOrderService(t)

		ops := []domain.OrderItemOp{{
			Action:      domain.ItemOpCreate,
			StockUnitID: 999,
			Quantity:    decimal.NewFromInt(1),
		}}

		m.orders.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), int64(10)).
			Return(helpers.CreateTestOrder([]int64{1}, func(o *domain.Order) { o.ID = 10 }), nil)
		m.units.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), int64(999)).
			Return(nil, nil)

		_, err := svc.UpdateOrder(context.Background(), nil, 10, ops, actor)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("item_from_another_order_rejected", func(t *testing.T) {
		svc, m := newOrderService(t)

		ops := []domain.OrderItemOp{{Action: domain.ItemOpDelete, ID: 5}}

		m.orders.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), int64(10)).
			Return(helpers.CreateTestOrder([]int64{1}, func(o *domain.Order) { o.ID = 10 }), nil)
		m.items.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), int64(5)).
			Return(&domain.OrderItem{ID: 5, OrderID: 99, StockUnitID: 1, Quantity: decimal.NewFromInt(5)}, nil)

		_, err := svc.UpdateOrder(context.Background(), nil, 10, ops, actor)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("terminal_order_cannot_be_edited", func(t *testing.T) {
		svc, m := newOrderService(t)

		ops := []domain.OrderItemOp{{
			Action:      domain.ItemOpCreate,
			StockUnitID: 1,
			Quantity:    decimal.NewFromInt(1),
		}}

		m.orders.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), int64(10)).
			Return(helpers.CreateTestOrder([]int64{1}, func(o *domain.Order) {
				o.ID = 10
				o.Status = domain.OrderDelivered
			}), nil)

		_, err := svc.UpdateOrder(context.Background(), nil, 10, ops, actor)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
	})
}

func TestOrderService_UpdateStatus(t *testing.T) {
	actor := helpers.AdminActor()

	t.Run("pending_to_approved", func(t *testing.T) {
		svc, m := newOrderService(t)

		pending := helpers.CreateTestOrder([]int64{1}, func(o *domain.Order) { o.ID = 10 })
		approved := helpers.CreateTestOrder([]int64{1}, func(o *domain.Order) {
			o.ID = 10
			o.Status = domain.OrderApproved
		})

		gomock.InOrder(
			m.orders.EXPECT().
				FindByID(gomock.Any(), gomock.Any(), int64(10)).
				Return(pending, nil),
			m.orders.EXPECT().
				UpdateStatus(gomock.Any(), gomock.Any(), int64(10), domain.OrderApproved, domain.CourierInfo{}, &actor.ID).
				Return(true, nil),
			m.orders.EXPECT().
				FindByID(gomock.Any(), gomock.Any(), int64(10)).
				Return(approved, nil),
			m.items.EXPECT().
				FindByOrder(gomock.Any(), gomock.Any(), int64(10)).
				Return(approved.Items, nil),
		)

		order, err := svc.UpdateStatus(context.Background(), nil, 10, domain.OrderApproved, domain.CourierInfo{}, actor)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderApproved, order.Status)
	})

	t.Run("cancel_restores_stock_once", func(t *testing.T) {
		svc, m := newOrderService(t)

		pending := helpers.CreateTestOrder([]int64{1, 2}, func(o *domain.Order) { o.ID = 10 })

		m.orders.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), int64(10)).
			Return(pending, nil).
			Times(2)
		m.orders.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), int64(10), domain.OrderCancelled, domain.CourierInfo{}, &actor.ID).
			Return(true, nil)
		m.orders.EXPECT().
			MarkStockReversed(gomock.Any(), gomock.Any(), int64(10), gomock.Any()).
			Return(true, nil)
		m.items.EXPECT().
			FindByOrder(gomock.Any(), gomock.Any(), int64(10)).
			Return(pending.Items, nil).
			Times(2)
		m.stock.EXPECT().
			ApplyDelta(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, tx pgx.Tx, delta domain.StockDelta) (*domain.StockUnit, error) {
				assert.Equal(t, domain.MovementIn, delta.Action)
				assert.Contains(t, delta.Reason, "Order #10 cancelled")
				return helpers.CreateTestStockUnit(), nil
			}).
			Times(2)

		_, err := svc.UpdateStatus(context.Background(), nil, 10, domain.OrderCancelled, domain.CourierInfo{}, actor)
		require.NoError(t, err)
	})

	t.Run("cancel_after_reversal_does_not_restore_again", func(t *testing.T) {
		svc, m := newOrderService(t)

		reversedAt := time.Now().Add(-time.Hour)
		pending := helpers.CreateTestOrder([]int64{1}, func(o *domain.Order) {
			o.ID = 10
			o.StockReversedAt = &reversedAt
		})

		m.orders.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), int64(10)).
			Return(pending, nil).
			Times(2)
		m.orders.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), int64(10), domain.OrderCancelled, domain.CourierInfo{}, &actor.ID).
			Return(true, nil)
		m.orders.EXPECT().
			MarkStockReversed(gomock.Any(), gomock.Any(), int64(10), gomock.Any()).
			Return(false, nil)
		m.items.EXPECT().
			FindByOrder(gomock.Any(), gomock.Any(), int64(10)).
			Return(pending.Items, nil)
		// No ApplyDelta expectation: losing the reversal stamp means no
		// restore happens.

		_, err := svc.UpdateStatus(context.Background(), nil, 10, domain.OrderCancelled, domain.CourierInfo{}, actor)
		require.NoError(t, err)
	})

	t.Run("invalid_transition_rejected", func(t *testing.T) {
		svc, m := newOrderService(t)

		pending := helpers.CreateTestOrder([]int64{1}, func(o *domain.Order) { o.ID = 10 })

		m.orders.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), int64(10)).
			Return(pending, nil)

		_, err := svc.UpdateStatus(context.Background(), nil, 10, domain.OrderDelivered, domain.CourierInfo{}, actor)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
	})

	t.Run("unknown_status_rejected", func(t *testing.T) {
		svc, _ := newOrderService(t)

		_, err := svc.UpdateStatus(context.Background(), nil, 10, "LOST", domain.CourierInfo{}, actor)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestOrderService_DeleteOrder(t *testing.T) {
	t.Run("restores_outstanding_reservation_then_deletes", func(t *testing.T) {
		svc, m := newOrderService(t)

		order := helpers.CreateTestOrder([]int64{1}, func(o *domain.Order) { o.ID = 10 })

		m.orders.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), int64(10)).
			Return(order, nil)
		m.orders.EXPECT().
			MarkStockReversed(gomock.Any(), gomock.Any(), int64(10), gomock.Any()).
			Return(true, nil)
		m.items.EXPECT().
			FindByOrder(gomock.Any(), gomock.Any(), int64(10)).
			Return(order.Items, nil)
		m.stock.EXPECT().
			ApplyDelta(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, tx pgx.Tx, delta domain.StockDelta) (*domain.StockUnit, error) {
				assert.Equal(t, domain.MovementIn, delta.Action)
				assert.Contains(t, delta.Reason, "Order #10 deleted")
				return helpers.CreateTestStockUnit(), nil
			})
		m.items.EXPECT().
			DeleteByOrder(gomock.Any(), gomock.Any(), int64(10)).
			Return(nil)
		m.orders.EXPECT().
			Delete(gomock.Any(), gomock.Any(), int64(10)).
			Return(nil)

		err := svc.DeleteOrder(context.Background(), nil, 10)
		require.NoError(t, err)
	})

	t.Run("delete_after_cancel_skips_restore", func(t *testing.T) {
		svc, m := newOrderService(t)

		reversedAt := time.Now().Add(-time.Hour)
		order := helpers.CreateTestOrder([]int64{1}, func(o *domain.Order) {
			o.ID = 10
			o.Status = domain.OrderCancelled
			o.StockReversedAt = &reversedAt
		})

		m.orders.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), int64(10)).
			Return(order, nil)
		m.orders.EXPECT().
			MarkStockReversed(gomock.Any(), gomock.Any(), int64(10), gomock.Any()).
			Return(false, nil)
		m.items.EXPECT().
			DeleteByOrder(gomock.Any(), gomock.Any(), int64(10)).
			Return(nil)
		m.orders.EXPECT().
			Delete(gomock.Any(), gomock.Any(), int64(10)).
			Return(nil)

		err := svc.DeleteOrder(context.Background(), nil, 10)
		require.NoError(t, err)
	})

	t.Run("missing_order_maps_to_not_found", func(t *testing.T) {
		svc, m := newOrderService(t)

		m.orders.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), int64(10)).
			Return(nil, nil)

		err := svc.DeleteOrder(context.Background(), nil, 10)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestOrderService_GetOrder(t *testing.T) {
	t.Run("customer_reads_own_order", func(t *testing.T) {
		svc, m := newOrderService(t)

		owner := int64(3)
		order := helpers.CreateTestOrder([]int64{1}, func(o *domain.Order) {
			o.ID = 10
			o.CreatedBy = &owner
		})

		m.orders.EXPECT().
			FindByID(gomock.Any(), m.db, int64(10)).
			Return(order, nil)
		m.items.EXPECT().
			FindByOrder(gomock.Any(), m.db, int64(10)).
			Return(order.Items, nil)

		got, err := svc.GetOrder(context.Background(), 10, domain.Actor{ID: 3, Role: domain.RoleCustomer})
		require.NoError(t, err)
		assert.Equal(t, int64(10), got.ID)
	})

	t.Run("customer_cannot_read_foreign_order", func(t *testing.T) {
		svc, m := newOrderService(t)

		owner := int64(3)
		order := helpers.CreateTestOrder([]int64{1}, func(o *domain.Order) {
			o.ID = 10
			o.CreatedBy = &owner
		})

		m.orders.EXPECT().
			FindByID(gomock.Any(), m.db, int64(10)).
			Return(order, nil)

		_, err := svc.GetOrder(context.Background(), 10, domain.Actor{ID: 4, Role: domain.RoleCustomer})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestOrderService_ListOrders(t *testing.T) {
	t.Run("customer_scope_is_forced", func(t *testing.T) {
		svc, m := newOrderService(t)

		m.orders.EXPECT().
			List(gomock.Any(), m.db, gomock.Any()).
			DoAndReturn(func(ctx context.Context, q interface{}, params ports.OrderListParams) (*ports.OrderListResult, error) {
				require.NotNil(t, params.CreatedBy)
				assert.Equal(t, int64(3), *params.CreatedBy)
				assert.Equal(t, 1, params.Page)
				assert.Equal(t, 20, params.PageSize)
				return &ports.OrderListResult{Page: 1, PageSize: 20}, nil
			})

		_, err := svc.ListOrders(context.Background(), ports.OrderListParams{}, domain.Actor{ID: 3, Role: domain.RoleCustomer})
		require.NoError(t, err)
	})

	t.Run("overdue_filter_sets_statuses_and_cutoff", func(t *testing.T) {
		svc, m := newOrderService(t)

		m.orders.EXPECT().
			List(gomock.Any(), m.db, gomock.Any()).
			DoAndReturn(func(ctx context.Context, q interface{}, params ports.OrderListParams) (*ports.OrderListResult, error) {
				assert.ElementsMatch(t, domain.OverdueStatuses, params.Statuses)
				cutoff := time.Now().AddDate(0, 0, -7)
				assert.WithinDuration(t, cutoff, params.OverdueAfter, time.Minute)
				return &ports.OrderListResult{}, nil
			})

		_, err := svc.ListOrders(context.Background(), ports.OrderListParams{Overdue: true}, helpers.AdminActor())
		require.NoError(t, err)
	})
}
