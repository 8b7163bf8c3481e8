// internal/core/ports/stock_repository.go
package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/dakshilalbetrios/curtain-be/internal/core/domain"
)

// StockUnitRepository is the persistence port for serialized stock units.
// Every method runs against the supplied Querier so callers decide the
// transaction scope.
type StockUnitRepository interface {
	Create(ctx context.Context, q Querier, unit *domain.StockUnit) error
	FindByID(ctx context.Context, q Querier, id int64) (*domain.StockUnit, error)
	FindBySrNo(ctx context.Context, q Querier, srNo string) (*domain.StockUnit, error)
	FindByCollection(ctx context.Context, q Querier, collectionID int64) ([]domain.StockUnit, error)
	// AdjustStock applies a signed quantity delta with a conditional update.
	// For a negative delta the update only matches when current_stock covers
	// it; the returned bool is whether a row was changed.
	AdjustStock(ctx context.Context, q Querier, id int64, delta decimal.Decimal) (bool, error)
	UpdateFields(ctx context.Context, q Querier, id int64, patch domain.StockUnitPatch, actorID *int64) (*domain.StockUnit, error)
	Delete(ctx context.Context, q Querier, id int64) error
}

// StockMovementRepository is the persistence port for the append-only
// movement ledger. Entries are immutable; the only delete is the cascade
// that accompanies removing the owning stock unit.
type StockMovementRepository interface {
	Create(ctx context.Context, q Querier, m *domain.StockMovement) error
	FindByStockUnit(ctx context.Context, q Querier, stockUnitID int64) ([]domain.StockMovement, error)
	DeleteByStockUnit(ctx context.Context, q Querier, stockUnitID int64) error
}
