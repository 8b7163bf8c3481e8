// internal/workers/overdue_processor.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/dakshilalbetrios/curtain-be/internal/adapters/db"
)

// OverdueProcessor flags orders that sat in a non-terminal state past the
// delivery window.
type OverdueProcessor struct {
	db          *db.Database
	overdueDays int
	logger      *slog.Logger
}

// NewOverdueProcessor creates a new overdue order processor
func NewOverdueProcessor(db *db.Database, overdueDays int, logger *slog.Logger) *OverdueProcessor {
	return &OverdueProcessor{
		db:          db,
		overdueDays: overdueDays,
		logger:      logger.With(slog.String("processor", "overdue")),
	}
}

// ScanOverdueOrders reports every order still PENDING, APPROVED or SHIPPED
// beyond the configured window
func (p *OverdueProcessor) ScanOverdueOrders(ctx context.Context, t *asynq.Task) error {
	days := p.overdueDays
	if len(t.Payload()) > 0 {
		var payload OverdueScanPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("failed to unmarshal overdue scan payload: %w", err)
		}
		if payload.OverdueDays > 0 {
			days = payload.OverdueDays
		}
	}

	cutoff := time.Now().AddDate(0, 0, -days)
	p.logger.InfoContext(ctx, "scanning for overdue orders",
		slog.Int("overdue_days", days),
		slog.Time("cutoff", cutoff))

	query := `
		SELECT id, status, created_at
		FROM orders
		WHERE status IN ('PENDING', 'APPROVED', 'SHIPPED') AND created_at < $1
		ORDER BY created_at ASC`

	rows, err := p.db.Query(ctx, query, cutoff)
	if err != nil {
		return fmt.Errorf("failed to query overdue orders: %w", err)
	}
	defer rows.Close()

	var count int
	for rows.Next() {
		var (
			id        int64
			status    string
			createdAt time.Time
		)
		if err := rows.Scan(&id, &status, &createdAt); err != nil {
			return fmt.Errorf("failed to scan overdue order: %w", err)
		}

		count++
		p.logger.WarnContext(ctx, "order overdue",
			slog.Int64("order_id", id),
			slog.String("status", status),
			slog.Duration("age", time.Since(createdAt)))
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating overdue orders: %w", err)
	}

	p.logger.InfoContext(ctx, "overdue scan completed", slog.Int("overdue_orders", count))
	return nil
}
