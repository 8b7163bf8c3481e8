// internal/core/ports/database.go
package ports

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the query surface shared by a connection pool and an open
// transaction. Repositories take a Querier so the same code serves both the
// standalone path and a caller-owned transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// Database is the transactional capability the services depend on. A service
// given no transaction opens one through Transaction and owns its
// commit/rollback; a service given one joins it and touches neither.
type Database interface {
	Querier
	Transaction(ctx context.Context, fn func(pgx.Tx) error) error
	Ping(ctx context.Context) error
	Health(ctx context.Context) map[string]interface{}
	Close()
}
