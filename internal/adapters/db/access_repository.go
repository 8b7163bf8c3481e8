// internal/adapters/db/access_repository.go
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dakshilalbetrios/curtain-be/internal/core/domain"
	"github.com/dakshilalbetrios/curtain-be/internal/core/ports"
)

const accessColumns = `id, customer_user_id, collection_id, status, created_by, created_at, updated_by, updated_at`

// collectionAccessRepository implements ports.CollectionAccessRepository
type collectionAccessRepository struct {
	logger *slog.Logger
}

// NewCollectionAccessRepository creates a new collection access repository
func NewCollectionAccessRepository(logger *slog.Logger) ports.CollectionAccessRepository {
	return &collectionAccessRepository{
		logger: logger.With(slog.String("repository", "collection_access")),
	}
}

// Create inserts a new visibility grant. A missing customer surfaces as a
// not-found error instead of a raw foreign key violation.
func (r *collectionAccessRepository) Create(ctx context.Context, q ports.Querier, a *domain.CollectionAccess) error {
	query := `
		INSERT INTO customer_collection_access (customer_user_id, collection_id, status, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := q.QueryRow(ctx, query,
		a.CustomerUserID, a.CollectionID, a.Status, a.CreatedBy,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err, "customer_user_id") {
			return fmt.Errorf("%w: customer %d", domain.ErrNotFound, a.CustomerUserID)
		}
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: access for customer %d and collection %d",
				domain.ErrAlreadyExists, a.CustomerUserID, a.CollectionID)
		}
		return fmt.Errorf("failed to create collection access: %w", err)
	}

	r.logger.DebugContext(ctx, "collection access created",
		slog.Int64("access_id", a.ID),
		slog.Int64("customer_user_id", a.CustomerUserID),
		slog.Int64("collection_id", a.CollectionID))

	return nil
}

// FindByCustomerAndCollection retrieves one grant by its unique pair
func (r *collectionAccessRepository) FindByCustomerAndCollection(ctx context.Context, q ports.Querier, customerID, collectionID int64) (*domain.CollectionAccess, error) {
	query := `SELECT ` + accessColumns + `
		FROM customer_collection_access
		WHERE customer_user_id = $1 AND collection_id = $2`
	return r.scanOne(q.QueryRow(ctx, query, customerID, collectionID))
}

// FindByCustomer lists a customer's grants, optionally narrowed to a status
func (r *collectionAccessRepository) FindByCustomer(ctx context.Context, q ports.Querier, customerID int64, status domain.AccessStatus) ([]domain.CollectionAccess, error) {
	query := `SELECT ` + accessColumns + `
		FROM customer_collection_access
		WHERE customer_user_id = $1`
	args := []interface{}{customerID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY collection_id ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query collection access: %w", err)
	}
	defer rows.Close()

	var access []domain.CollectionAccess
	for rows.Next() {
		var a domain.CollectionAccess
		if err := scanAccess(rows, &a); err != nil {
			return nil, fmt.Errorf("failed to scan collection access: %w", err)
		}
		access = append(access, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return access, nil
}

// UpdateStatus flips one grant's status
func (r *collectionAccessRepository) UpdateStatus(ctx context.Context, q ports.Querier, id int64, status domain.AccessStatus, actorID *int64) (*domain.CollectionAccess, error) {
	query := `
		UPDATE customer_collection_access
		SET status = $2, updated_by = $3, updated_at = $4
		WHERE id = $1
		RETURNING ` + accessColumns

	a, err := r.scanOne(q.QueryRow(ctx, query, id, status, actorID, time.Now()))
	if err != nil {
		return nil, err
	}

	if a != nil {
		r.logger.DebugContext(ctx, "collection access updated",
			slog.Int64("access_id", a.ID),
			slog.String("status", string(a.Status)))
	}

	return a, nil
}

// DeleteByCollection removes every grant pointing at a collection
func (r *collectionAccessRepository) DeleteByCollection(ctx context.Context, q ports.Querier, collectionID int64) error {
	tag, err := q.Exec(ctx, `DELETE FROM customer_collection_access WHERE collection_id = $1`, collectionID)
	if err != nil {
		return fmt.Errorf("failed to delete collection access: %w", err)
	}

	r.logger.InfoContext(ctx, "collection access deleted",
		slog.Int64("collection_id", collectionID),
		slog.Int64("count", tag.RowsAffected()))

	return nil
}

func (r *collectionAccessRepository) scanOne(row pgx.Row) (*domain.CollectionAccess, error) {
	a := &domain.CollectionAccess{}
	if err := scanAccess(row, a); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan collection access: %w", err)
	}
	return a, nil
}

func scanAccess(row pgx.Row, a *domain.CollectionAccess) error {
	return row.Scan(
		&a.ID, &a.CustomerUserID, &a.CollectionID, &a.Status,
		&a.CreatedBy, &a.CreatedAt, &a.UpdatedBy, &a.UpdatedAt,
	)
}

// isForeignKeyViolation reports whether err is a 23503 on a constraint
// involving the named column.
func isForeignKeyViolation(err error, column string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503" && strings.Contains(pgErr.ConstraintName, column)
	}
	return false
}

// isUniqueViolation reports whether err is a 23505.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
