// internal/core/services/collection.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/dakshilalbetrios/curtain-be/internal/core/domain"
	"github.com/dakshilalbetrios/curtain-be/internal/core/ports"
)

// CollectionService owns collections and delegates nested stock unit work to
// the stock service so opening balances land in the ledger.
type CollectionService struct {
	db          ports.Database
	collections ports.CollectionRepository
	units       ports.StockUnitRepository
	access      ports.CollectionAccessRepository
	stock       ports.StockService
	logger      *slog.Logger
}

// Statically assert that *CollectionService implements the CollectionService interface.
var _ ports.CollectionService = (*CollectionService)(nil)

// NewCollectionService creates a new collection service.
func NewCollectionService(db ports.Database, collections ports.CollectionRepository, units ports.StockUnitRepository, access ports.CollectionAccessRepository, stock ports.StockService, logger *slog.Logger) *CollectionService {
	return &CollectionService{
		db:          db,
		collections: collections,
		units:       units,
		access:      access,
		stock:       stock,
		logger:      logger.With(slog.String("service", "collection")),
	}
}

// CreateCollection creates a collection and any nested serial numbers in one
// transaction.
func (s *CollectionService) CreateCollection(ctx context.Context, tx pgx.Tx, c *domain.Collection, actor domain.Actor) (*domain.Collection, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	err := within(ctx, s.db, tx, func(q pgx.Tx) error {
		existing, err := s.collections.FindByName(ctx, q, c.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: collection name %s", domain.ErrAlreadyExists, c.Name)
		}

		c.CreatedBy = &actor.ID
		if err := s.collections.Create(ctx, q, c); err != nil {
			return fmt.Errorf("failed to create collection: %w", err)
		}

		created := make([]domain.StockUnit, 0, len(c.StockUnits))
		for i := range c.StockUnits {
			unit := c.StockUnits[i]
			unit.CollectionID = c.ID
			if _, err := s.stock.CreateStockUnit(ctx, q, &unit, actor); err != nil {
				return err
			}
			created = append(created, unit)
		}
		c.StockUnits = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "collection created",
		slog.Int64("collection_id", c.ID),
		slog.String("name", c.Name),
		slog.Int("stock_units", len(c.StockUnits)))

	return c, nil
}

// GetCollection returns a collection with its stock units.
func (s *CollectionService) GetCollection(ctx context.Context, id int64) (*domain.Collection, error) {
	c, err := s.collections.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: collection %d", domain.ErrNotFound, id)
	}

	c.StockUnits, err = s.units.FindByCollection(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListCollections returns all collections without nested units.
func (s *CollectionService) ListCollections(ctx context.Context) ([]domain.Collection, error) {
	return s.collections.List(ctx, s.db)
}

// UpdateCollection edits the collection's name and description.
func (s *CollectionService) UpdateCollection(ctx context.Context, tx pgx.Tx, id int64, name, description string, actor domain.Actor) (*domain.Collection, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}

	var c *domain.Collection
	err := within(ctx, s.db, tx, func(q pgx.Tx) error {
		existing, err := s.collections.FindByName(ctx, q, name)
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != id {
			return fmt.Errorf("%w: collection name %s", domain.ErrAlreadyExists, name)
		}

		c, err = s.collections.Update(ctx, q, id, name, description, &actor.ID)
		if err != nil {
			return err
		}
		if c == nil {
			return fmt.Errorf("%w: collection %d", domain.ErrNotFound, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCollection removes a collection and everything it owns: the
// customer visibility grants, each unit's ledger, then the units, then the
// collection row.
func (s *CollectionService) DeleteCollection(ctx context.Context, tx pgx.Tx, id int64) error {
	var unitIDs []int64
	err := within(ctx, s.db, tx, func(q pgx.Tx) error {
		existing, err := s.collections.FindByID(ctx, q, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return fmt.Errorf("%w: collection %d", domain.ErrNotFound, id)
		}

		if err := s.access.DeleteByCollection(ctx, q, id); err != nil {
			return err
		}

		units, err := s.units.FindByCollection(ctx, q, id)
		if err != nil {
			return err
		}
		for _, unit := range units {
			if err := s.stock.DeleteStockUnit(ctx, q, unit.ID); err != nil {
				return err
			}
			unitIDs = append(unitIDs, unit.ID)
		}

		if err := s.collections.Delete(ctx, q, id); err != nil {
			return fmt.Errorf("failed to delete collection: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if tx == nil && len(unitIDs) > 0 {
		s.stock.InvalidateUnits(ctx, unitIDs...)
	}

	s.logger.InfoContext(ctx, "collection deleted", slog.Int64("collection_id", id))
	return nil
}

// GrantAccess grants one customer visibility into each listed collection.
// Per-collection failures are collected so one bad ID does not sink the
// batch; a grant that already exists with another status is flipped instead
// of duplicated.
func (s *CollectionService) GrantAccess(ctx context.Context, tx pgx.Tx, customerID int64, collectionIDs []int64, status domain.AccessStatus, actor domain.Actor) (*ports.AccessBatchResult, error) {
	if len(collectionIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one collection is required", domain.ErrInvalidInput)
	}
	if status == "" {
		status = domain.AccessActive
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown access status %q", domain.ErrInvalidInput, status)
	}

	result := &ports.AccessBatchResult{Errors: []string{}}
	err := within(ctx, s.db, tx, func(q pgx.Tx) error {
		for _, collectionID := range collectionIDs {
			collection, err := s.collections.FindByID(ctx, q, collectionID)
			if err != nil {
				return err
			}
			if collection == nil {
				result.Errors = append(result.Errors,
					fmt.Sprintf("collection %d not found", collectionID))
				continue
			}

			granted, err := s.upsertAccess(ctx, q, customerID, collectionID, status, actor)
			if err != nil {
				return err
			}
			if granted == nil {
				result.Errors = append(result.Errors,
					fmt.Sprintf("access already granted for collection %d", collectionID))
				continue
			}
			result.Access = append(result.Access, *granted)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "collection access granted",
		slog.Int64("customer_user_id", customerID),
		slog.Int("granted", len(result.Access)),
		slog.Int("errors", len(result.Errors)))

	return result, nil
}

// ListCustomerAccess returns a customer's visibility grants, optionally
// narrowed to one status.
func (s *CollectionService) ListCustomerAccess(ctx context.Context, customerID int64, status domain.AccessStatus) ([]domain.CollectionAccess, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown access status %q", domain.ErrInvalidInput, status)
	}
	return s.access.FindByCustomer(ctx, s.db, customerID, status)
}

// BulkUpdateAccess applies a batch of status changes for one customer,
// creating the grant when none exists yet. Failures are collected per row.
func (s *CollectionService) BulkUpdateAccess(ctx context.Context, tx pgx.Tx, customerID int64, updates []domain.AccessUpdate, actor domain.Actor) (*ports.AccessBatchResult, error) {
	if len(updates) == 0 {
		return nil, fmt.Errorf("%w: at least one access update is required", domain.ErrInvalidInput)
	}

	result := &ports.AccessBatchResult{Errors: []string{}}
	err := within(ctx, s.db, tx, func(q pgx.Tx) error {
		for _, update := range updates {
			if err := update.Validate(); err != nil {
				result.Errors = append(result.Errors, err.Error())
				continue
			}

			collection, err := s.collections.FindByID(ctx, q, update.CollectionID)
			if err != nil {
				return err
			}
			if collection == nil {
				result.Errors = append(result.Errors,
					fmt.Sprintf("collection %d not found", update.CollectionID))
				continue
			}

			existing, err := s.access.FindByCustomerAndCollection(ctx, q, customerID, update.CollectionID)
			if err != nil {
				return err
			}
			if existing != nil {
				updated, err := s.access.UpdateStatus(ctx, q, existing.ID, update.Status, &actor.ID)
				if err != nil {
					return err
				}
				result.Access = append(result.Access, *updated)
				continue
			}

			created := &domain.CollectionAccess{
				CustomerUserID: customerID,
				CollectionID:   update.CollectionID,
				Status:         update.Status,
				CreatedBy:      &actor.ID,
			}
			if err := s.access.Create(ctx, q, created); err != nil {
				return err
			}
			result.Access = append(result.Access, *created)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "collection access updated",
		slog.Int64("customer_user_id", customerID),
		slog.Int("updated", len(result.Access)),
		slog.Int("errors", len(result.Errors)))

	return result, nil
}

// upsertAccess creates a grant or revives an existing one. It returns nil
// when the grant already carries the requested status.
func (s *CollectionService) upsertAccess(ctx context.Context, q pgx.Tx, customerID, collectionID int64, status domain.AccessStatus, actor domain.Actor) (*domain.CollectionAccess, error) {
	existing, err := s.access.FindByCustomerAndCollection(ctx, q, customerID, collectionID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Status == status {
			return nil, nil
		}
		return s.access.UpdateStatus(ctx, q, existing.ID, status, &actor.ID)
	}

	created := &domain.CollectionAccess{
		CustomerUserID: customerID,
		CollectionID:   collectionID,
		Status:         status,
		CreatedBy:      &actor.ID,
	}
	if err := s.access.Create(ctx, q, created); err != nil {
		return nil, err
	}
	return created, nil
}
