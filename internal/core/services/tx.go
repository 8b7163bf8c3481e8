// internal/core/services/tx.go
package services

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/dakshilalbetrios/curtain-be/internal/core/ports"
)

// within runs fn inside the supplied transaction when one is given;
// otherwise it opens a transaction owned by this call, committing on success
// and rolling back on the first error. This is the single place the
// join-or-own convention is implemented.
func within(ctx context.Context, db ports.Database, tx pgx.Tx, fn func(q pgx.Tx) error) error {
	if tx != nil {
		return fn(tx)
	}
	return db.Transaction(ctx, fn)
}
