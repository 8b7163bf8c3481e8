// internal/core/ports/collection_repository.go
package ports

import (
	"context"

	"github.com/dakshilalbetrios/curtain-be/internal/core/domain"
)

// CollectionRepository is the persistence port for product collections.
type CollectionRepository interface {
	Create(ctx context.Context, q Querier, c *domain.Collection) error
	FindByID(ctx context.Context, q Querier, id int64) (*domain.Collection, error)
	FindByName(ctx context.Context, q Querier, name string) (*domain.Collection, error)
	List(ctx context.Context, q Querier) ([]domain.Collection, error)
	Update(ctx context.Context, q Querier, id int64, name, description string, actorID *int64) (*domain.Collection, error)
	Delete(ctx context.Context, q Querier, id int64) error
}
