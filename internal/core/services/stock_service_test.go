// internal/core/services/stock_service_test.go
package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dakshilalbetrios/curtain-be/internal/core/domain"
	"github.com/dakshilalbetrios/curtain-be/internal/core/services"
	"github.com/dakshilalbetrios/curtain-be/test/helpers"
	"github.com/dakshilalbetrios/curtain-be/test/mocks"
)

type stockMocks struct {
	db        *mocks.MockDatabase
	units     *mocks.MockStockUnitRepository
	movements *mocks.MockStockMovementRepository
	cache     *mocks.MockCache
}

func newStockService(t *testing.T) (*services.StockService, *stockMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := &stockMocks{
		db:        mocks.NewMockDatabase(ctrl),
		units:     mocks.NewMockStockUnitRepository(ctrl),
		movements: mocks.NewMockStockMovementRepository(ctrl),
		cache:     mocks.NewMockCache(ctrl),
	}

	// Own-transaction path: run the closure against a nil tx so the mocked
	// repositories see the call directly.
	m.db.EXPECT().
		Transaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(pgx.Tx) error) error {
			return fn(nil)
		}).
		AnyTimes()

	svc := services.NewStockService(m.db, m.units, m.movements, nil, time.Hour, helpers.TestLogger())
	return svc, m
}

func TestStockService_ApplyDelta(t *testing.T) {
	tests := []struct {
		name          string
		delta         domain.StockDelta
		setupMocks    func(*stockMocks)
		expectedError error
		errorContains string
	}{
		{
			name: "in_delta_applies_and_writes_ledger_entry",
			delta: domain.StockDelta{
				StockUnitID: 1,
				Action:      domain.MovementIn,
				Quantity:    decimal.NewFromInt(10),
			},
			setupMocks: func(m *stockMocks) {
				m.units.EXPECT().
					AdjustStock(gomock.Any(), gomock.Any(), int64(1), decimal.NewFromInt(10)).
					Return(true, nil)
				m.movements.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, q interface{}, mv *domain.StockMovement) error {
						assert.Equal(t, domain.MovementIn, mv.Action)
						assert.True(t, mv.Quantity.Equal(decimal.NewFromInt(10)))
						assert.Equal(t, "Stock added: 10", mv.Message)
						return nil
					})
				m.units.EXPECT().
					FindByID(gomock.Any(), gomock.Any(), int64(1)).
					Return(helpers.CreateTestStockUnit(), nil)
			},
		},
		{
			name: "out_delta_passes_negated_quantity",
			delta: domain.StockDelta{
				StockUnitID: 1,
				Action:      domain.MovementOut,
				Quantity:    decimal.RequireFromString("2.50"),
				Reason:      "Order #9 - 2.5 units sold",
			},
			setupMocks: func(m *stockMocks) {
				m.units.EXPECT().
					AdjustStock(gomock.Any(), gomock.Any(), int64(1), gomock.Any()).
					DoAndReturn(func(ctx context.Context, q interface{}, id int64, delta decimal.Decimal) (bool, error) {
						assert.True(t, delta.Equal(decimal.RequireFromString("-2.50")))
						return true, nil
					})
				m.movements.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, q interface{}, mv *domain.StockMovement) error {
						assert.Equal(t, "Order #9 - 2.5 units sold", mv.Message)
						return nil
					})
				m.units.EXPECT().
					FindByID(gomock.Any(), gomock.Any(), int64(1)).
					Return(helpers.CreateTestStockUnit(), nil)
			},
		},
		{
			name: "insufficient_stock_when_conditional_update_misses",
			delta: domain.StockDelta{
				StockUnitID: 1,
				Action:      domain.MovementOut,
				Quantity:    decimal.NewFromInt(500),
			},
			setupMocks: func(m *stockMocks) {
				m.units.EXPECT().
					AdjustStock(gomock.Any(), gomock.Any(), int64(1), gomock.Any()).
					Return(false, nil)
				m.units.EXPECT().
					FindByID(gomock.Any(), gomock.Any(), int64(1)).
					Return(helpers.CreateTestStockUnit(), nil)
			},
			expectedError: domain.ErrInsufficientStock,
			errorContains: "Available: 100",
		},
		{
			name: "not_found_when_unit_missing",
			delta: domain.StockDelta{
				StockUnitID: 42,
				Action:      domain.MovementOut,
				Quantity:    decimal.NewFromInt(1),
			},
			setupMocks: func(m *stockMocks) {
				m.units.EXPECT().
					AdjustStock(gomock.Any(), gomock.Any(), int64(42), gomock.Any()).
					Return(false, nil)
				m.units.EXPECT().
					FindByID(gomock.Any(), gomock.Any(), int64(42)).
					Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name: "rejects_zero_quantity",
			delta: domain.StockDelta{
				StockUnitID: 1,
				Action:      domain.MovementIn,
				Quantity:    decimal.Zero,
			},
			setupMocks:    func(m *stockMocks) {},
			expectedError: domain.ErrInvalidInput,
			errorContains: "quantity must be greater than 0",
		},
		{
			name: "rejects_unknown_action",
			delta: domain.StockDelta{
				StockUnitID: 1,
				Action:      "SIDEWAYS",
				Quantity:    decimal.NewFromInt(1),
			},
			setupMocks:    func(m *stockMocks) {},
			expectedError: domain.ErrInvalidInput,
		},
		{
			name: "ledger_write_failure_fails_the_delta",
			delta: domain.StockDelta{
				StockUnitID: 1,
				Action:      domain.MovementIn,
				Quantity:    decimal.NewFromInt(5),
			},
			setupMocks: func(m *stockMocks) {
				m.units.EXPECT().
					AdjustStock(gomock.Any(), gomock.Any(), int64(1), gomock.Any()).
					Return(true, nil)
				m.movements.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("connection reset"))
			},
			errorContains: "failed to write stock movement",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newStockService(t)
			tt.setupMocks(m)

			unit, err := svc.ApplyDelta(context.Background(), nil, tt.delta)

			if tt.expectedError != nil || tt.errorContains != "" {
				require.Error(t, err)
				if tt.expectedError != nil {
					assert.ErrorIs(t, err, tt.expectedError)
				}
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
				assert.Nil(t, unit)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, unit)
		})
	}
}

func TestStockService_CreateStockUnit(t *testing.T) {
	actor := helpers.AdminActor()

	t.Run("records_opening_stock_as_in_movement", func(t *testing.T) {
		svc, m := newStockService(t)

		unit := helpers.CreateTestStockUnit(func(u *domain.StockUnit) {
			u.ID = 0
			u.CurrentStock = decimal.RequireFromString("45.50")
		})

		m.units.EXPECT().
			FindBySrNo(gomock.Any(), gomock.Any(), "SR-001").
			Return(nil, nil)
		m.units.EXPECT().
			Create(gomock.Any(), gomock.Any(), unit).
			DoAndReturn(func(ctx context.Context, q interface{}, u *domain.StockUnit) error {
				u.ID = 7
				return nil
			})
		m.movements.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, q interface{}, mv *domain.StockMovement) error {
				assert.Equal(t, int64(7), mv.StockUnitID)
				assert.Equal(t, domain.MovementIn, mv.Action)
				assert.True(t, mv.Quantity.Equal(decimal.RequireFromString("45.50")))
				assert.Equal(t, "Opening stock: 45.5 mtr", mv.Message)
				return nil
			})

		created, err := svc.CreateStockUnit(context.Background(), nil, unit, actor)
		require.NoError(t, err)
		assert.Equal(t, int64(7), created.ID)
		require.NotNil(t, created.CreatedBy)
		assert.Equal(t, actor.ID, *created.CreatedBy)
	})

	t.Run("zero_opening_stock_writes_no_movement", func(t *testing.T) {
		svc, m := newStockService(t)

		unit := helpers.CreateTestStockUnit(func(u *domain.StockUnit) {
			u.ID = 0
			u.CurrentStock = decimal.Zero
		})

		m.units.EXPECT().
			FindBySrNo(gomock.Any(), gomock.Any(), "SR-001").
			Return(nil, nil)
		m.units.EXPECT().
			Create(gomock.Any(), gomock.Any(), unit).
			Return(nil)

		_, err := svc.CreateStockUnit(context.Background(), nil, unit, actor)
		require.NoError(t, err)
	})

	t.Run("duplicate_serial_number_rejected", func(t *testing.T) {
		svc, m := newStockService(t)

		unit := helpers.CreateTestStockUnit(func(u *domain.StockUnit) { u.ID = 0 })

		m.units.EXPECT().
			FindBySrNo(gomock.Any(), gomock.Any(), "SR-001").
			Return(helpers.CreateTestStockUnit(), nil)

		_, err := svc.CreateStockUnit(context.Background(), nil, unit, actor)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("validation_rejects_missing_sr_no", func(t *testing.T) {
		svc, _ := newStockService(t)

		unit := helpers.CreateTestStockUnit(func(u *domain.StockUnit) { u.SrNo = "" })

		_, err := svc.CreateStockUnit(context.Background(), nil, unit, actor)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestStockService_UpdateStockUnit(t *testing.T) {
	actor := helpers.AdminActor()

	t.Run("renames_serial_number_when_free", func(t *testing.T) {
		svc, m := newStockService(t)

		newSr := "SR-099"
		patch := domain.StockUnitPatch{SrNo: &newSr}

		m.units.EXPECT().
			FindBySrNo(gomock.Any(), gomock.Any(), "SR-099").
			Return(nil, nil)
		m.units.EXPECT().
			UpdateFields(gomock.Any(), gomock.Any(), int64(1), patch, &actor.ID).
			Return(helpers.CreateTestStockUnit(func(u *domain.StockUnit) { u.SrNo = newSr }), nil)

		unit, err := svc.UpdateStockUnit(context.Background(), nil, 1, patch, actor)
		require.NoError(t, err)
		assert.Equal(t, "SR-099", unit.SrNo)
	})

	t.Run("rename_to_taken_serial_number_rejected", func(t *testing.T) {
		svc, m := newStockService(t)

		newSr := "SR-002"
		patch := domain.StockUnitPatch{SrNo: &newSr}

		m.units.EXPECT().
			FindBySrNo(gomock.Any(), gomock.Any(), "SR-002").
			Return(helpers.CreateTestStockUnit(func(u *domain.StockUnit) { u.ID = 2 }), nil)

		_, err := svc.UpdateStockUnit(context.Background(), nil, 1, patch, actor)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("empty_patch_rejected", func(t *testing.T) {
		svc, _ := newStockService(t)

		_, err := svc.UpdateStockUnit(context.Background(), nil, 1, domain.StockUnitPatch{}, actor)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("missing_unit_maps_to_not_found", func(t *testing.T) {
		svc, m := newStockService(t)

		min := decimal.NewFromInt(5)
		patch := domain.StockUnitPatch{MinStock: &min}

		m.units.EXPECT().
			UpdateFields(gomock.Any(), gomock.Any(), int64(9), patch, &actor.ID).
			Return(nil, nil)

		_, err := svc.UpdateStockUnit(context.Background(), nil, 9, patch, actor)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestStockService_DeleteStockUnit(t *testing.T) {
	t.Run("deletes_ledger_before_unit", func(t *testing.T) {
		svc, m := newStockService(t)

		m.units.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), int64(1)).
			Return(helpers.CreateTestStockUnit(), nil)
		ledger := m.movements.EXPECT().
			DeleteByStockUnit(gomock.Any(), gomock.Any(), int64(1)).
			Return(nil)
		m.units.EXPECT().
			Delete(gomock.Any(), gomock.Any(), int64(1)).
			Return(nil).
			After(ledger)

		err := svc.DeleteStockUnit(context.Background(), nil, 1)
		require.NoError(t, err)
	})

	t.Run("missing_unit_maps_to_not_found", func(t *testing.T) {
		svc, m := newStockService(t)

		m.units.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), int64(1)).
			Return(nil, nil)

		err := svc.DeleteStockUnit(context.Background(), nil, 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestStockService_GetStockUnit_Cache(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mocks.NewMockDatabase(ctrl)
	units := mocks.NewMockStockUnitRepository(ctrl)
	movements := mocks.NewMockStockMovementRepository(ctrl)
	cache := mocks.NewMockCache(ctrl)

	svc := services.NewStockService(db, units, movements, cache, time.Hour, helpers.TestLogger())

	t.Run("cache_miss_loads_and_stores", func(t *testing.T) {
		cache.EXPECT().
			Get(gomock.Any(), "stock:unit:1", gomock.Any()).
			Return(errors.New("cache miss"))
		units.EXPECT().
			FindByID(gomock.Any(), db, int64(1)).
			Return(helpers.CreateTestStockUnit(), nil)
		cache.EXPECT().
			Set(gomock.Any(), "stock:unit:1", gomock.Any(), time.Hour).
			Return(nil)

		unit, err := svc.GetStockUnit(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "SR-001", unit.SrNo)
	})

	t.Run("cache_hit_skips_repository", func(t *testing.T) {
		cache.EXPECT().
			Get(gomock.Any(), "stock:unit:1", gomock.Any()).
			DoAndReturn(func(ctx context.Context, key string, dest interface{}) error {
				*dest.(*domain.StockUnit) = *helpers.CreateTestStockUnit()
				return nil
			})

		unit, err := svc.GetStockUnit(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), unit.ID)
	})

	t.Run("missing_unit_maps_to_not_found", func(t *testing.T) {
		cache.EXPECT().
			Get(gomock.Any(), "stock:unit:5", gomock.Any()).
			Return(errors.New("cache miss"))
		units.EXPECT().
			FindByID(gomock.Any(), db, int64(5)).
			Return(nil, nil)

		_, err := svc.GetStockUnit(context.Background(), 5)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestStockService_ListMovements(t *testing.T) {
	svc, m := newStockService(t)

	m.units.EXPECT().
		FindByID(gomock.Any(), m.db, int64(1)).
		Return(helpers.CreateTestStockUnit(), nil)
	m.movements.EXPECT().
		FindByStockUnit(gomock.Any(), m.db, int64(1)).
		Return([]domain.StockMovement{
			{ID: 2, StockUnitID: 1, Action: domain.MovementOut, Quantity: decimal.NewFromInt(5)},
			{ID: 1, StockUnitID: 1, Action: domain.MovementIn, Quantity: decimal.NewFromInt(100)},
		}, nil)

	movements, err := svc.ListMovements(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, movements, 2)
	assert.Equal(t, int64(2), movements[0].ID)
}
