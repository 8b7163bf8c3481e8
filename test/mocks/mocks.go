// test/mocks/mocks.go

// Package mocks contains generated mocks for the application's interfaces.
// To regenerate mocks, run `make mocks` from the root directory.
package mocks

//go:generate mockgen -source=../../internal/core/ports/database.go -destination=database_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/cache.go -destination=cache_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/stock_repository.go -destination=stock_repository_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/collection_repository.go -destination=collection_repository_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/access_repository.go -destination=access_repository_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/order_repository.go -destination=order_repository_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/services.go -destination=services_mock.go -package=mocks
