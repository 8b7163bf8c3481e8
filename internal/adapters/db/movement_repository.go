// internal/adapters/db/movement_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dakshilalbetrios/curtain-be/internal/core/domain"
	"github.com/dakshilalbetrios/curtain-be/internal/core/ports"
)

// stockMovementRepository implements ports.StockMovementRepository
type stockMovementRepository struct {
	logger *slog.Logger
}

// NewStockMovementRepository creates a new stock movement repository
func NewStockMovementRepository(logger *slog.Logger) ports.StockMovementRepository {
	return &stockMovementRepository{
		logger: logger.With(slog.String("repository", "stock_movement")),
	}
}

// Create appends a ledger entry
func (r *stockMovementRepository) Create(ctx context.Context, q ports.Querier, m *domain.StockMovement) error {
	query := `
		INSERT INTO stock_movements (stock_unit_id, action, quantity, message, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := q.QueryRow(ctx, query,
		m.StockUnitID, m.Action, m.Quantity, m.Message, m.CreatedBy,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create stock movement: %w", err)
	}

	r.logger.DebugContext(ctx, "stock movement recorded",
		slog.Int64("stock_unit_id", m.StockUnitID),
		slog.String("action", string(m.Action)),
		slog.String("quantity", m.Quantity.String()))

	return nil
}

// FindByStockUnit returns a unit's ledger, newest first
func (r *stockMovementRepository) FindByStockUnit(ctx context.Context, q ports.Querier, stockUnitID int64) ([]domain.StockMovement, error) {
	query := `
		SELECT id, stock_unit_id, action, quantity, message, created_by, created_at
		FROM stock_movements
		WHERE stock_unit_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := q.Query(ctx, query, stockUnitID)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock movements: %w", err)
	}
	defer rows.Close()

	var movements []domain.StockMovement
	for rows.Next() {
		var m domain.StockMovement
		err := rows.Scan(&m.ID, &m.StockUnitID, &m.Action, &m.Quantity, &m.Message, &m.CreatedBy, &m.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stock movement: %w", err)
		}
		movements = append(movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return movements, nil
}

// DeleteByStockUnit removes a unit's ledger, used only as part of deleting
// the unit itself
func (r *stockMovementRepository) DeleteByStockUnit(ctx context.Context, q ports.Querier, stockUnitID int64) error {
	tag, err := q.Exec(ctx, `DELETE FROM stock_movements WHERE stock_unit_id = $1`, stockUnitID)
	if err != nil {
		return fmt.Errorf("failed to delete stock movements: %w", err)
	}

	r.logger.InfoContext(ctx, "stock movements deleted",
		slog.Int64("stock_unit_id", stockUnitID),
		slog.Int64("count", tag.RowsAffected()))

	return nil
}
