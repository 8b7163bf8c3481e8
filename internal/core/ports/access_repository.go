// internal/core/ports/access_repository.go
package ports

import (
	"context"

	"github.com/dakshilalbetrios/curtain-be/internal/core/domain"
)

// CollectionAccessRepository is the persistence port for customer
// collection visibility grants.
type CollectionAccessRepository interface {
	Create(ctx context.Context, q Querier, a *domain.CollectionAccess) error
	FindByCustomerAndCollection(ctx context.Context, q Querier, customerID, collectionID int64) (*domain.CollectionAccess, error)
	// FindByCustomer lists a customer's grants, optionally narrowed to one
	// status. An empty status means all.
	FindByCustomer(ctx context.Context, q Querier, customerID int64, status domain.AccessStatus) ([]domain.CollectionAccess, error)
	UpdateStatus(ctx context.Context, q Querier, id int64, status domain.AccessStatus, actorID *int64) (*domain.CollectionAccess, error)
	// DeleteByCollection removes every grant pointing at a collection, used
	// as part of deleting the collection itself.
	DeleteByCollection(ctx context.Context, q Querier, collectionID int64) error
}
