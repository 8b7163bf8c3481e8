// internal/core/services/stock.go
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

// StockService is the only authorized path for changing a unit's
// current_stock. Every delta performs a conditional atomic update and writes
// the matching ledger entry inside the same transaction, so the balance and
// the ledger cannot diverge.
type StockService struct {
	db        ports.Database
	units     ports.StockUnitRepository
	movements ports.StockMovementRepository
	cache     ports.Cache
	cacheTTL  time.Duration
	logger    *slog.Logger
}

// Statically assert that *StockService implements the StockService interface.
var _ ports.StockService = (*StockService)(nil)

// NewStockService creates a new stock service. cache may be nil.
func NewStockService(db ports.Database, units ports.StockUnitRepository, movements ports.StockMovementRepository, cache ports.Cache, cacheTTL time.Duration, logger *slog.Logger) *StockService {
	return &StockService{
		db:        db,
		units:     units,
		movements: movements,
		cache:     cache,
		cacheTTL:  cacheTTL,
		logger:    logger.With(slog.String("service", "stock")),
	}
}

// ApplyDelta applies one validated quantity delta and appends the paired
// ledger entry. For OUT deltas the stock update is conditional on
// availability; two concurrent OUTs can never drive the balance negative.
func (s *StockService) ApplyDelta(ctx context.Context, tx pgx.Tx, delta domain.StockDelta) (*domain.StockUnit, error) {
	if err := delta.Validate(); err != nil {
		return nil, err
	}

	var unit *domain.StockUnit
	err := within(ctx, s.db, tx, func(q pgx.Tx) error {
		applied, err := s.units.AdjustStock(ctx, q, delta.StockUnitID, delta.Signed())
		if err != nil {
			return fmt.Errorf("failed to adjust stock: %w", err)
		}
		if !applied {
			// No row changed: either the unit is missing or an OUT
			// exceeded the available balance.
			existing, err := s.units.FindByID(ctx, q, delta.StockUnitID)
			if err != nil {
				return err
			}
			if existing == nil {
				return fmt.Errorf("%w: stock unit %d", domain.ErrNotFound, delta.StockUnitID)
			}
			return fmt.Errorf("%w for %s. Available: %s, Requested: %s",
				domain.ErrInsufficientStock, existing.SrNo, existing.CurrentStock, delta.Quantity)
		}

		message := delta.Reason
		if message == "" {
			message = delta.DefaultMessage()
		}
		movement := &domain.StockMovement{
			StockUnitID: delta.StockUnitID,
			Action:      delta.Action,
			Quantity:    delta.Quantity,
			Message:     message,
			CreatedBy:   delta.ActorID,
		}
		if err := s.movements.Create(ctx, q, movement); err != nil {
			return fmt.Errorf("failed to write stock movement: %w", err)
		}

		unit, err = s.units.FindByID(ctx, q, delta.StockUnitID)
		if err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateUnit(ctx, tx, delta.StockUnitID)

	s.logger.InfoContext(ctx, "stock delta applied",
		slog.Int64("stock_unit_id", delta.StockUnitID),
		slog.String("action", string(delta.Action)),
		slog.String("quantity", delta.Quantity.String()))

	return unit, nil
}

// CreateStockUnit creates a serialized unit under its collection. A non-zero
// opening balance is recorded as an IN movement so the ledger accounts for
// the full balance from day one.
func (s *StockService) CreateStockUnit(ctx context.Context, tx pgx.Tx, unit *domain.StockUnit, actor domain.Actor) (*domain.StockUnit, error) {
	if err := unit.Validate(); err != nil {
		return nil, err
	}

	err := within(ctx, s.db, tx, func(q pgx.Tx) error {
		existing, err := s.units.FindBySrNo(ctx, q, unit.SrNo)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: serial number %s", domain.ErrAlreadyExists, unit.SrNo)
		}

		unit.CreatedBy = &actor.ID
		if err := s.units.Create(ctx, q, unit); err != nil {
			return fmt.Errorf("failed to create stock unit: %w", err)
		}

		if unit.CurrentStock.IsPositive() {
			movement := &domain.StockMovement{
				StockUnitID: unit.ID,
				Action:      domain.MovementIn,
				Quantity:    unit.CurrentStock,
				Message:     fmt.Sprintf("Opening stock: %s %s", unit.CurrentStock, unit.Unit),
				CreatedBy:   &actor.ID,
			}
			if err := s.movements.Create(ctx, q, movement); err != nil {
				return fmt.Errorf("failed to write opening movement: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "stock unit created",
		slog.Int64("stock_unit_id", unit.ID),
		slog.String("sr_no", unit.SrNo))

	return unit, nil
}

// UpdateStockUnit edits non-quantity fields. The patch type cannot carry
// current_stock at all; quantity changes must go through ApplyDelta.
func (s *StockService) UpdateStockUnit(ctx context.Context, tx pgx.Tx, id int64, patch domain.StockUnitPatch, actor domain.Actor) (*domain.StockUnit, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	var unit *domain.StockUnit
	err := within(ctx, s.db, tx, func(q pgx.Tx) error {
		if patch.SrNo != nil {
			existing, err := s.units.FindBySrNo(ctx, q, *patch.SrNo)
			if err != nil {
				return err
			}
			if existing != nil && existing.ID != id {
				return fmt.Errorf("%w: serial number %s", domain.ErrAlreadyExists, *patch.SrNo)
			}
		}

		var err error
		unit, err = s.units.UpdateFields(ctx, q, id, patch, &actor.ID)
		if err != nil {
			return err
		}
		if unit == nil {
			return fmt.Errorf("%w: stock unit %d", domain.ErrNotFound, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateUnit(ctx, tx, id)
	return unit, nil
}

// DeleteStockUnit removes a unit and its ledger. The movements go first so
// the unit is never orphaned mid-delete.
func (s *StockService) DeleteStockUnit(ctx context.Context, tx pgx.Tx, id int64) error {
	err := within(ctx, s.db, tx, func(q pgx.Tx) error {
		existing, err := s.units.FindByID(ctx, q, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return fmt.Errorf("%w: stock unit %d", domain.ErrNotFound, id)
		}

		if err := s.movements.DeleteByStockUnit(ctx, q, id); err != nil {
			return fmt.Errorf("failed to delete movements: %w", err)
		}
		if err := s.units.Delete(ctx, q, id); err != nil {
			return fmt.Errorf("failed to delete stock unit: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidateUnit(ctx, tx, id)

	s.logger.InfoContext(ctx, "stock unit deleted", slog.Int64("stock_unit_id", id))
	return nil
}

// GetStockUnit is a read-through cached lookup.
func (s *StockService) GetStockUnit(ctx context.Context, id int64) (*domain.StockUnit, error) {
	key := stockUnitCacheKey(id)
	if s.cache != nil {
		var cached domain.StockUnit
		if err := s.cache.Get(ctx, key, &cached); err == nil {
			return &cached, nil
		}
	}

	unit, err := s.units.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, fmt.Errorf("%w: stock unit %d", domain.ErrNotFound, id)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, unit, s.cacheTTL); err != nil {
			s.logger.WarnContext(ctx, "failed to cache stock unit",
				slog.Int64("stock_unit_id", id),
				slog.String("error", err.Error()))
		}
	}
	return unit, nil
}

// ListMovements returns a unit's ledger, newest first.
func (s *StockService) ListMovements(ctx context.Context, stockUnitID int64) ([]domain.StockMovement, error) {
	unit, err := s.units.FindByID(ctx, s.db, stockUnitID)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, fmt.Errorf("%w: stock unit %d", domain.ErrNotFound, stockUnitID)
	}
	return s.movements.FindByStockUnit(ctx, s.db, stockUnitID)
}

// invalidateUnit drops the cached unit after a mutation. When joined to a
// caller's transaction the data is not visible yet, so the owner of the
// transaction performs the invalidation instead.
func (s *StockService) invalidateUnit(ctx context.Context, tx pgx.Tx, id int64) {
	if s.cache == nil || tx != nil {
		return
	}
	if err := s.cache.Delete(ctx, stockUnitCacheKey(id)); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate stock unit cache",
			slog.Int64("stock_unit_id", id),
			slog.String("error", err.Error()))
	}
}

// InvalidateUnits drops cached units after a caller-owned transaction has
// committed.
func (s *StockService) InvalidateUnits(ctx context.Context, unitIDs ...int64) {
	for _, id := range unitIDs {
		s.invalidateUnit(ctx, nil, id)
	}
}

func stockUnitCacheKey(id int64) string {
	return fmt.Sprintf("stock:unit:%d", id)
}
