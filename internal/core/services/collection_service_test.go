// internal/core/services/collection_service_test.go
package services_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dakshilalbetrios/curtain-be/internal/core/domain"
	"github.com/dakshilalbetrios/curtain-be/internal/core/services"
	"github.com/dakshilalbetrios/curtain-be/test/helpers"
	"github.com/dakshilalbetrios/curtain-be/test/mocks"
)

type collectionMocks struct {
	db          *mocks.MockDatabase
	collections *mocks.MockCollectionRepository
	units       *mocks.MockStockUnitRepository
	access      *mocks.MockCollectionAccessRepository
	stock       *mocks.MockStockService
}

func newCollectionService(t *testing.T) (*services.CollectionService, *collectionMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := &collectionMocks{
		db:          mocks.NewMockDatabase(ctrl),
		collections: mocks.NewMockCollectionRepository(ctrl),
		units:       mocks.NewMockStockUnitRepository(ctrl),
		access:      mocks.NewMockCollectionAccessRepository(ctrl),
		stock:       mocks.NewMockStockService(ctrl),
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

	svc := services.NewCollectionService(m.db, m.collections, m.units, m.access, m.stock, helpers.TestLogger())
	return svc, m
}

func TestCollectionService_CreateCollection(t *testing.T) {
	actor := helpers.AdminActor()

	t.Run("creates_collection_with_nested_units", func(t *testing.T) {
		svc, m := newCollectionService(t)

		input := helpers.CreateTestCollection(2, func(c *domain.Collection) { c.ID = 0 })

		m.collections.EXPECT().
			FindByName(gomock.Any(), gomock.Any(), "Aurora Sheer").
			Return(nil, nil)
		m.collections.EXPECT().
			Create(gomock.Any(), gomock.Any(), input).
			DoAndReturn(func(ctx context.Context, q interface{}, c *domain.Collection) error {
				c.ID = 4
				return nil
			})
		m.stock.EXPECT().
			CreateStockUnit(gomock.Any(), gomock.Any(), gomock.Any(), actor).
			DoAndReturn(func(ctx context.Context, tx pgx.Tx, unit *domain.StockUnit, a domain.Actor) (*domain.StockUnit, error) {
				assert.Equal(t, int64(4), unit.CollectionID)
				return unit, nil
			}).
			Times(2)

		created, err := svc.CreateCollection(context.Background(), nil, input, actor)
		require.NoError(t, err)
		assert.Equal(t, int64(4), created.ID)
		assert.Len(t, created.StockUnits, 2)
	})

	t.Run("duplicate_name_rejected", func(t *testing.T) {
		svc, m := newCollectionService(t)

		input := helpers.CreateTestCollection(0, func(c *domain.Collection) { c.ID = 0 })

		m.collections.EXPECT().
			FindByName(gomock.Any(), gomock.Any(), "Aurora Sheer").
			Return(helpers.CreateTestCollection(0), nil)

		_, err := svc.CreateCollection(context.Background(), nil, input, actor)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("missing_name_rejected", func(t *testing.T) {
		svc, _ := newCollectionService(t)

		input := &domain.Collection{}

		_, err := svc.CreateCollection(context.Background(), nil, input, actor)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("failing_unit_aborts_collection", func(t *testing.T) {
		svc, m := newCollectionService(t)

		input := helpers.CreateTestCollection(1, func(c *domain.Collection) { c.ID = 0 })

		m.collections.EXPECT().
			FindByName(gomock.Any(), gomock.Any(), "Aurora Sheer").
			Return(nil, nil)
		m.collections.EXPECT().
			Create(gomock.Any(), gomock.Any(), input).
			Return(nil)
		m.stock.EXPECT().
			CreateStockUnit(gomock.Any(), gomock.Any(), gomock.Any(), actor).
			Return(nil, domain.ErrAlreadyExists)

		_, err := svc.CreateCollection(context.Background(), nil, input, actor)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	})
}

func TestCollectionService_GetCollection(t *testing.T) {
	t.Run("loads_units", func(t *testing.T) {
		svc, m := newCollectionService(t)

		m.collections.EXPECT().
			FindByID(gomock.Any(), m.db, int64(1)).
			Return(helpers.CreateTestCollection(0), nil)
		m.units.EXPECT().
			FindByCollection(gomock.Any(), m.db, int64(1)).
			Return([]domain.StockUnit{*helpers.CreateTestStockUnit()}, nil)

		c, err := svc.GetCollection(context.Background(), 1)
		require.NoError(t, err)
		assert.Len(t, c.StockUnits, 1)
	})

	t.Run("missing_collection_maps_to_not_found", func(t *testing.T) {
		svc, m := newCollectionService(t)

		m.collections.EXPECT().
			FindByID(gomock.Any(), m.db, int64(1)).
			Return(nil, nil)

		_, err := svc.GetCollection(context.Background(), 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCollectionService_UpdateCollection(t *testing.T) {
	actor := helpers.AdminActor()

	t.Run("rename_to_free_name", func(t *testing.T) {
		svc, m := newCollectionService(t)

		m.collections.EXPECT().
			FindByName(gomock.Any(), gomock.Any(), "Velvet Royale").
			Return(nil, nil)
		m.collections.EXPECT().
			Update(gomock.Any(), gomock.Any(), int64(1), "Velvet Royale", "heavy", &actor.ID).
			Return(helpers.CreateTestCollection(0, func(c *domain.Collection) { c.Name = "Velvet Royale" }), nil)

		c, err := svc.UpdateCollection(context.Background(), nil, 1, "Velvet Royale", "heavy", actor)
		require.NoError(t, err)
		assert.Equal(t, "Velvet Royale", c.Name)
	})

	t.Run("rename_to_taken_name_rejected", func(t *testing.T) {
		svc, m := newCollectionService(t)

		m.collections.EXPECT().
			FindByName(gomock.Any(), gomock.Any(), "Velvet Royale").
			Return(helpers.CreateTestCollection(0, func(c *domain.Collection) { c.ID = 2 }), nil)

		_, err := svc.UpdateCollection(context.Background(), nil, 1, "Velvet Royale", "", actor)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	})
}

func TestCollectionService_DeleteCollection(t *testing.T) {
	t.Run("cascades_through_stock_service", func(t *testing.T) {
		svc, m := newCollectionService(t)

		m.collections.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), int64(1)).
			Return(helpers.CreateTestCollection(0), nil)
		m.access.EXPECT().
			DeleteByCollection(gomock.Any(), gomock.Any(), int64(1)).
			Return(nil)
		m.units.EXPECT().
			FindByCollection(gomock.Any(), gomock.Any(), int64(1)).
			Return([]domain.StockUnit{
				*helpers.CreateTestStockUnit(),
				*helpers.CreateTestStockUnit(func(u *domain.StockUnit) { u.ID = 2 }),
			}, nil)
		m.stock.EXPECT().
			DeleteStockUnit(gomock.Any(), gomock.Any(), int64(1)).
			Return(nil)
		m.stock.EXPECT().
			DeleteStockUnit(gomock.Any(), gomock.Any(), int64(2)).
			Return(nil)
		m.collections.EXPECT().
			Delete(gomock.Any(), gomock.Any(), int64(1)).
			Return(nil)

		err := svc.DeleteCollection(context.Background(), nil, 1)
		require.NoError(t, err)
	})

	t.Run("missing_collection_maps_to_not_found", func(t *testing.T) {
		svc, m := newCollectionService(t)

		m.collections.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), int64(1)).
			Return(nil, nil)

		err := svc.DeleteCollection(context.Background(), nil, 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCollectionService_GrantAccess(t *testing.T) {
	actor := helpers.AdminActor()

	t.Run("grants_new_access_defaulting_to_active", func(t *testing.T) {
		svc, m := newCollectionService(t)

		m.collections.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), int64(1)).
			Return(helpers.CreateTestCollection(0), nil)
		m.access.EXPECT().
			FindByCustomerAndCollection(gomock.Any(), gomock.Any(), int64(7), int64(1)).
			Return(nil, nil)
		m.access.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, q interface{}, a *domain.CollectionAccess) error {
				assert.Equal(t, domain.AccessActive, a.Status)
				assert.Equal(t, int64(7), a.CustomerUserID)
				a.ID = 11
				return nil
			})

		result, err := svc.GrantAccess(context.Background(), nil, 7, []int64{1}, "", actor)
		require.NoError(t, err)
		assert.Len(t, result.Access, 1)
		assert.Empty(t, result.Errors)
	})

	t.Run("revives_grant_with_different_status", func(t *testing.T) {
		svc, m := newCollectionService(t)

		existing := &domain.CollectionAccess{
			ID:             11,
			CustomerUserID: 7,
			CollectionID:   1,
			Status:         domain.AccessInactive,
		}

		m.collections.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), int64(1)).
			Return(helpers.CreateTestCollection(0), nil)
		m.access.EXPECT().
			FindByCustomerAndCollection(gomock.Any(), gomock.Any(), int64(7), int64(1)).
			Return(existing, nil)
		m.access.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), int64(11), domain.AccessActive, &actor.ID).
			Return(&domain.CollectionAccess{ID: 11, Status: domain.AccessActive}, nil)

		result, err := svc.GrantAccess(context.Background(), nil, 7, []int64{1}, domain.AccessActive, actor)
		require.NoError(t, err)
		require.Len(t, result.Access, 1)
		assert.Equal(t, domain.AccessActive, result.Access[0].Status)
	})

	t.Run("collects_per_collection_errors", func(t *testing.T) {
		svc, m := newCollectionService(t)

		m.collections.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), int64(1)).
			Return(helpers.CreateTestCollection(0), nil)
		m.collections.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), int64(99)).
			Return(nil, nil)
		m.access.EXPECT().
			FindByCustomerAndCollection(gomock.Any(), gomock.Any(), int64(7), int64(1)).
			Return(&domain.CollectionAccess{ID: 11, Status: domain.AccessActive}, nil)

		result, err := svc.GrantAccess(context.Background(), nil, 7, []int64{1, 99}, domain.AccessActive, actor)
		require.NoError(t, err)
		assert.Empty(t, result.Access)
		assert.Len(t, result.Errors, 2)
		assert.Contains(t, result.Errors, "access already granted for collection 1")
		assert.Contains(t, result.Errors, "collection 99 not found")
	})

	t.Run("empty_batch_rejected", func(t *testing.T) {
		svc, _ := newCollectionService(t)

		_, err := svc.GrantAccess(context.Background(), nil, 7, nil, domain.AccessActive, actor)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("unknown_status_rejected", func(t *testing.T) {
		svc, _ := newCollectionService(t)

		_, err := svc.GrantAccess(context.Background(), nil, 7, []int64{1}, "PAUSED", actor)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestCollectionService_ListCustomerAccess(t *testing.T) {
	t.Run("filters_by_status", func(t *testing.T) {
		svc, m := newCollectionService(t)

		m.access.EXPECT().
			FindByCustomer(gomock.Any(), m.db, int64(7), domain.AccessActive).
			Return([]domain.CollectionAccess{{ID: 11, CollectionID: 1, Status: domain.AccessActive}}, nil)

		access, err := svc.ListCustomerAccess(context.Background(), 7, domain.AccessActive)
		require.NoError(t, err)
		assert.Len(t, access, 1)
	})

	t.Run("invalid_status_rejected", func(t *testing.T) {
		svc, _ := newCollectionService(t)

		_, err := svc.ListCustomerAccess(context.Background(), 7, "PAUSED")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestCollectionService_BulkUpdateAccess(t *testing.T) {
	actor := helpers.AdminActor()

	t.Run("updates_existing_and_creates_missing", func(t *testing.T) {
		svc, m := newCollectionService(t)

		m.collections.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), int64(1)).
			Return(helpers.CreateTestCollection(0), nil)
		m.access.EXPECT().
			FindByCustomerAndCollection(gomock.Any(), gomock.Any(), int64(7), int64(1)).
			Return(&domain.CollectionAccess{ID: 11, CollectionID: 1, Status: domain.AccessActive}, nil)
		m.access.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), int64(11), domain.AccessSuspended, &actor.ID).
			Return(&domain.CollectionAccess{ID: 11, CollectionID: 1, Status: domain.AccessSuspended}, nil)

		m.collections.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), int64(2)).
			Return(helpers.CreateTestCollection(0, func(c *domain.Collection) { c.ID = 2 }), nil)
		m.access.EXPECT().
			FindByCustomerAndCollection(gomock.Any(), gomock.Any(), int64(7), int64(2)).
			Return(nil, nil)
		m.access.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, q interface{}, a *domain.CollectionAccess) error {
				assert.Equal(t, int64(2), a.CollectionID)
				assert.Equal(t, domain.AccessPending, a.Status)
				a.ID = 12
				return nil
			})

		result, err := svc.BulkUpdateAccess(context.Background(), nil, 7, []domain.AccessUpdate{
			{CollectionID: 1, Status: domain.AccessSuspended},
			{CollectionID: 2, Status: domain.AccessPending},
		}, actor)
		require.NoError(t, err)
		assert.Len(t, result.Access, 2)
		assert.Empty(t, result.Errors)
	})

	t.Run("invalid_row_collected_not_fatal", func(t *testing.T) {
		svc, m := newCollectionService(t)

		m.collections.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), int64(1)).
			Return(helpers.CreateTestCollection(0), nil)
		m.access.EXPECT().
			FindByCustomerAndCollection(gomock.Any(), gomock.Any(), int64(7), int64(1)).
			Return(&domain.CollectionAccess{ID: 11, CollectionID: 1, Status: domain.AccessActive}, nil)
		m.access.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), int64(11), domain.AccessExpired, &actor.ID).
			Return(&domain.CollectionAccess{ID: 11, CollectionID: 1, Status: domain.AccessExpired}, nil)

		result, err := svc.BulkUpdateAccess(context.Background(), nil, 7, []domain.AccessUpdate{
			{CollectionID: 0, Status: domain.AccessActive},
			{CollectionID: 1, Status: domain.AccessExpired},
		}, actor)
		require.NoError(t, err)
		assert.Len(t, result.Access, 1)
		assert.Len(t, result.Errors, 1)
	})

	t.Run("empty_batch_rejected", func(t *testing.T) {
		svc, _ := newCollectionService(t)

		_, err := svc.BulkUpdateAccess(context.Background(), nil, 7, nil, actor)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
