// internal/adapters/db/stock_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/dakshilalbetrios/curtain-be/internal/core/domain"
	"github.com/dakshilalbetrios/curtain-be/internal/core/ports"
)

const stockUnitColumns = `id, collection_id, sr_no, current_stock, min_stock, max_stock, unit, created_by, created_at, updated_by, updated_at`

// stockUnitRepository implements ports.StockUnitRepository
type stockUnitRepository struct {
	logger *slog.Logger
}

// NewStockUnitRepository creates a new stock unit repository
func NewStockUnitRepository(logger *slog.Logger) ports.StockUnitRepository {
	return &stockUnitRepository{
		logger: logger.With(slog.String("repository", "stock_unit")),
	}
}

// Create inserts a new stock unit
func (r *stockUnitRepository) Create(ctx context.Context, q ports.Querier, unit *domain.StockUnit) error {
	query := `
		INSERT INTO stock_units (
			collection_id, sr_no, current_stock, min_stock, max_stock, unit, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err := q.QueryRow(ctx, query,
		unit.CollectionID, unit.SrNo, unit.CurrentStock,
		unit.MinStock, unit.MaxStock, unit.Unit, unit.CreatedBy,
	).Scan(&unit.ID, &unit.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create stock unit: %w", err)
	}

	r.logger.DebugContext(ctx, "stock unit created",
		slog.Int64("stock_unit_id", unit.ID),
		slog.String("sr_no", unit.SrNo))

	return nil
}

// FindByID retrieves a stock unit by ID
func (r *stockUnitRepository) FindByID(ctx context.Context, q ports.Querier, id int64) (*domain.StockUnit, error) {
	query := `SELECT ` + stockUnitColumns + ` FROM stock_units WHERE id = $1`
	return r.scanOne(q.QueryRow(ctx, query, id))
}

// FindBySrNo retrieves a stock unit by its serial number
func (r *stockUnitRepository) FindBySrNo(ctx context.Context, q ports.Querier, srNo string) (*domain.StockUnit, error) {
	query := `SELECT ` + stockUnitColumns + ` FROM stock_units WHERE sr_no = $1`
	return r.scanOne(q.QueryRow(ctx, query, srNo))
}

// FindByCollection retrieves all stock units belonging to a collection
func (r *stockUnitRepository) FindByCollection(ctx context.Context, q ports.Querier, collectionID int64) ([]domain.StockUnit, error) {
	query := `SELECT ` + stockUnitColumns + ` FROM stock_units WHERE collection_id = $1 ORDER BY sr_no ASC`

	rows, err := q.Query(ctx, query, collectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock units: %w", err)
	}
	defer rows.Close()

	var units []domain.StockUnit
	for rows.Next() {
		var unit domain.StockUnit
		if err := scanStockUnit(rows, &unit); err != nil {
			return nil, fmt.Errorf("failed to scan stock unit: %w", err)
		}
		units = append(units, unit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return units, nil
}

// AdjustStock applies a signed quantity delta. The WHERE clause refuses to
// take current_stock below zero, so a concurrent competing adjustment loses
// by matching no row rather than by overwriting a stale read.
func (r *stockUnitRepository) AdjustStock(ctx context.Context, q ports.Querier, id int64, delta decimal.Decimal) (bool, error) {
	query := `
		UPDATE stock_units
		SET current_stock = current_stock + $2, updated_at = $3
		WHERE id = $1 AND current_stock + $2 >= 0`

	tag, err := q.Exec(ctx, query, id, delta, time.Now())
	if err != nil {
		return false, fmt.Errorf("failed to adjust stock: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// UpdateFields applies a partial edit of the unit's non-quantity fields
func (r *stockUnitRepository) UpdateFields(ctx context.Context, q ports.Querier, id int64, patch domain.StockUnitPatch, actorID *int64) (*domain.StockUnit, error) {
	qb := squirrel.Update("stock_units").
		Set("updated_by", actorID).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + stockUnitColumns).
		PlaceholderFormat(squirrel.Dollar)

	if patch.SrNo != nil {
		qb = qb.Set("sr_no", *patch.SrNo)
	}
	if patch.MinStock != nil {
		qb = qb.Set("min_stock", *patch.MinStock)
	}
	if patch.MaxStock != nil {
		qb = qb.Set("max_stock", *patch.MaxStock)
	}
	if patch.Unit != nil {
		qb = qb.Set("unit", *patch.Unit)
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update query: %w", err)
	}

	unit, err := r.scanOne(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, err
	}

	if unit != nil {
		r.logger.DebugContext(ctx, "stock unit updated",
			slog.Int64("stock_unit_id", unit.ID))
	}

	return unit, nil
}

// Delete removes a stock unit row
func (r *stockUnitRepository) Delete(ctx context.Context, q ports.Querier, id int64) error {
	tag, err := q.Exec(ctx, `DELETE FROM stock_units WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete stock unit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: stock unit %d", domain.ErrNotFound, id)
	}

	r.logger.InfoContext(ctx, "stock unit deleted", slog.Int64("stock_unit_id", id))
	return nil
}

func (r *stockUnitRepository) scanOne(row pgx.Row) (*domain.StockUnit, error) {
	unit := &domain.StockUnit{}
	if err := scanStockUnit(row, unit); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan stock unit: %w", err)
	}
	return unit, nil
}

func scanStockUnit(row pgx.Row, unit *domain.StockUnit) error {
	return row.Scan(
		&unit.ID, &unit.CollectionID, &unit.SrNo,
		&unit.CurrentStock, &unit.MinStock, &unit.MaxStock, &unit.Unit,
		&unit.CreatedBy, &unit.CreatedAt, &unit.UpdatedBy, &unit.UpdatedAt,
	)
}
