// internal/adapters/db/collection_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dakshilalbetrios/curtain-be/internal/core/domain"
	"github.com/dakshilalbetrios/curtain-be/internal/core/ports"
)

const collectionColumns = `id, name, description, created_by, created_at, updated_by, updated_at`

// collectionRepository implements ports.CollectionRepository
type collectionRepository struct {
	logger *slog.Logger
}

// NewCollectionRepository creates a new collection repository
func NewCollectionRepository(logger *slog.Logger) ports.CollectionRepository {
	return &collectionRepository{
		logger: logger.With(slog.String("repository", "collection")),
	}
}

// Create inserts a new collection
func (r *collectionRepository) Create(ctx context.Context, q ports.Querier, c *domain.Collection) error {
	query := `
		INSERT INTO collections (name, description, created_by)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := q.QueryRow(ctx, query, c.Name, c.Description, c.CreatedBy).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	r.logger.DebugContext(ctx, "collection created",
		slog.Int64("collection_id", c.ID),
		slog.String("name", c.Name))

	return nil
}

// FindByID retrieves a collection by ID
func (r *collectionRepository) FindByID(ctx context.Context, q ports.Querier, id int64) (*domain.Collection, error) {
	query := `SELECT ` + collectionColumns + ` FROM collections WHERE id = $1`
	return r.scanOne(q.QueryRow(ctx, query, id))
}

// FindByName retrieves a collection by its unique name
func (r *collectionRepository) FindByName(ctx context.Context, q ports.Querier, name string) (*domain.Collection, error) {
	query := `SELECT ` + collectionColumns + ` FROM collections WHERE name = $1`
	return r.scanOne(q.QueryRow(ctx, query, name))
}

// List retrieves all collections
func (r *collectionRepository) List(ctx context.Context, q ports.Querier) ([]domain.Collection, error) {
	query := `SELECT ` + collectionColumns + ` FROM collections ORDER BY name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query collections: %w", err)
	}
	defer rows.Close()

	var collections []domain.Collection
	for rows.Next() {
		var c domain.Collection
		if err := scanCollection(rows, &c); err != nil {
			return nil, fmt.Errorf("failed to scan collection: %w", err)
		}
		collections = append(collections, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return collections, nil
}

// Update edits the collection's name and description
func (r *collectionRepository) Update(ctx context.Context, q ports.Querier, id int64, name, description string, actorID *int64) (*domain.Collection, error) {
	query := `
		UPDATE collections
		SET name = $2, description = $3, updated_by = $4, updated_at = $5
		WHERE id = $1
		RETURNING ` + collectionColumns

	c, err := r.scanOne(q.QueryRow(ctx, query, id, name, description, actorID, time.Now()))
	if err != nil {
		return nil, err
	}

	if c != nil {
		r.logger.DebugContext(ctx, "collection updated", slog.Int64("collection_id", c.ID))
	}

	return c, nil
}

// Delete removes a collection row
func (r *collectionRepository) Delete(ctx context.Context, q ports.Querier, id int64) error {
	tag, err := q.Exec(ctx, `DELETE FROM collections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete collection: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: collection %d", domain.ErrNotFound, id)
	}

	r.logger.InfoContext(ctx, "collection deleted", slog.Int64("collection_id", id))
	return nil
}

func (r *collectionRepository) scanOne(row pgx.Row) (*domain.Collection, error) {
	c := &domain.Collection{}
	if err := scanCollection(row, c); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan collection: %w", err)
	}
	return c, nil
}

func scanCollection(row pgx.Row, c *domain.Collection) error {
	return row.Scan(
		&c.ID, &c.Name, &c.Description,
		&c.CreatedBy, &c.CreatedAt, &c.UpdatedBy, &c.UpdatedAt,
	)
}
