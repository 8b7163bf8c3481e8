// test/helpers/helpers.go
package helpers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/dakshilalbetrios/curtain-be/internal/adapters/db"
	"github.com/dakshilalbetrios/curtain-be/internal/core/domain"
	"github.com/dakshilalbetrios/curtain-be/internal/pkg/config"
)

// TestDB represents a test database instance
type TestDB struct {
	PgxPool  *pgxpool.Pool
	Database *db.Database
	Resource *dockertest.Resource
	Pool     *dockertest.Pool
	Config   *db.Config
}

// TestRedis represents a test Redis instance
type TestRedis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// SetupTestDB creates a PostgreSQL container for integration tests
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "Could not connect to Docker")

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=test_curtain",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "Could not start PostgreSQL container")

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("Could not purge resource: %s", err)
		}
	})

	dbConfig := &db.Config{
		Host:               "localhost",
		Port:               resource.GetPort("5432/tcp"),
		User:               "test",
		Password:           "test",
		Database:           "test_curtain",
		SSLMode:            "disable",
		MaxConnections:     5,
		MinConnections:     1,
		MaxConnLifetime:    time.Hour,
		MaxConnIdleTime:    time.Minute * 30,
		HealthCheckPeriod:  time.Minute,
		ConnectTimeout:     time.Second * 10,
		EnableQueryLogging: testing.Verbose(),
	}

	// Wait for database to be ready
	var database *db.Database
	err = pool.Retry(func() error {
		ctx := context.Background()
		var err error
		database, err = db.NewDatabase(ctx, dbConfig, TestLogger())
		if err != nil {
			return err
		}
		return database.Ping(ctx)
	})
	require.NoError(t, err, "Could not connect to PostgreSQL")

	// Run embedded migrations
	ctx := context.Background()
	migrationConfig := &db.MigrationConfig{
		DatabaseURL: fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
			dbConfig.User, dbConfig.Password, dbConfig.Host, dbConfig.Port,
			dbConfig.Database, dbConfig.SSLMode),
		TableName:  "schema_migrations",
		SchemaName: "public",
	}

	err = db.RunMigrationsWithRetry(ctx, migrationConfig, TestLogger(), 3)
	require.NoError(t, err, "Could not run migrations")

	return &TestDB{
		PgxPool:  database.Pool(),
		Database: database,
		Resource: resource,
		Pool:     pool,
		Config:   dbConfig,
	}
}

// SetupTestRedis creates a mock Redis instance for testing
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
	})

	return &TestRedis{
		Client: client,
		Server: mr,
	}
}

// LoadTestConfig returns a test configuration
func LoadTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "test-api",
			Environment: "test",
			Version:     "test",
			LogLevel:    "debug",
			LogFormat:   "text",
			Debug:       true,
		},
		Database: config.DatabaseConfig{
			Host:               "localhost",
			Port:               "5432",
			User:               "test",
			Password:           "test",
			Name:               "test_curtain",
			SSLMode:            "disable",
			MaxConnections:     10,
			MinConnections:     2,
			EnableQueryLogging: true,
		},
		Redis: config.RedisConfig{
			Host:     "localhost",
			Port:     "6379",
			DB:       0,
			TTL:      time.Hour,
			PoolSize: 10,
		},
		Orders: config.OrdersConfig{
			OverdueDays: 7,
		},
		Security: config.SecurityConfig{
			RateLimitRequests: 100,
			RateLimitDuration: time.Minute,
			AllowedOrigins:    []string{"*"},
			RequestIDHeader:   "X-Request-ID",
			ActorIDHeader:     "X-User-ID",
			ActorRoleHeader:   "X-User-Role",
		},
		Server: config.ServerConfig{
			Host:         "localhost",
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
	}
}

// AdminActor is the default actor used by tests that need attribution.
func AdminActor() domain.Actor {
	return domain.Actor{ID: 1, Role: domain.RoleAdmin}
}

// CreateTestStockUnit creates a test stock unit
func CreateTestStockUnit(overrides ...func(*domain.StockUnit)) *domain.StockUnit {
	unit := &domain.StockUnit{
		ID:           1,
		CollectionID: 1,
		SrNo:         "SR-001",
		CurrentStock: decimal.NewFromFloat(100.00),
		MinStock:     decimal.NewFromFloat(10.00),
		MaxStock:     decimal.NewFromFloat(500.00),
		Unit:         domain.UnitMeter,
		CreatedAt:    time.Now(),
	}

	for _, override := range overrides {
		override(unit)
	}

	return unit
}

// CreateTestCollection creates a test collection with n stock units
func CreateTestCollection(n int, overrides ...func(*domain.Collection)) *domain.Collection {
	c := &domain.Collection{
		ID:        1,
		Name:      "Aurora Sheer",
		CreatedAt: time.Now(),
	}
	for i := 0; i < n; i++ {
		unit := CreateTestStockUnit(func(u *domain.StockUnit) {
			u.ID = int64(i + 1)
			u.SrNo = fmt.Sprintf("SR-%03d", i+1)
		})
		c.StockUnits = append(c.StockUnits, *unit)
	}

	for _, override := range overrides {
		override(c)
	}

	return c
}

// CreateTestOrder creates a test order with one line item per given stock
// unit ID, each for quantity 5.
func CreateTestOrder(unitIDs []int64, overrides ...func(*domain.Order)) *domain.Order {
	createdBy := int64(1)
	order := &domain.Order{
		ID:        1,
		Status:    domain.OrderPending,
		CreatedBy: &createdBy,
		CreatedAt: time.Now(),
	}
	for i, unitID := range unitIDs {
		order.Items = append(order.Items, domain.OrderItem{
			ID:          int64(i + 1),
			OrderID:     order.ID,
			StockUnitID: unitID,
			Quantity:    decimal.NewFromInt(5),
			CreatedAt:   order.CreatedAt,
		})
	}

	for _, override := range overrides {
		override(order)
	}

	return order
}

// SeedTestUser inserts a user row and returns its ID
func SeedTestUser(t *testing.T, pool *pgxpool.Pool, role domain.Role) int64 {
	t.Helper()

	ctx := context.Background()
	var id int64
	err := pool.QueryRow(ctx,
		`INSERT INTO users (name, mobile_no, password, role)
		 VALUES ($1, $2, 'test', $3) RETURNING id`,
		fmt.Sprintf("Test %s", role),
		fmt.Sprintf("9%09d", time.Now().UnixNano()%1_000_000_000),
		string(role),
	).Scan(&id)
	require.NoError(t, err, "Failed to seed user")
	return id
}

// SeedTestCollection inserts a collection row and returns its ID
func SeedTestCollection(t *testing.T, pool *pgxpool.Pool, name string) int64 {
	t.Helper()

	ctx := context.Background()
	var id int64
	err := pool.QueryRow(ctx,
		`INSERT INTO collections (name, description) VALUES ($1, '') RETURNING id`,
		name,
	).Scan(&id)
	require.NoError(t, err, "Failed to seed collection")
	return id
}

// SeedTestStockUnit inserts a stock unit row and returns its ID
func SeedTestStockUnit(t *testing.T, pool *pgxpool.Pool, collectionID int64, srNo string, stock decimal.Decimal) int64 {
	t.Helper()

	ctx := context.Background()
	var id int64
	err := pool.QueryRow(ctx,
		`INSERT INTO stock_units (collection_id, sr_no, current_stock, min_stock, max_stock, unit)
		 VALUES ($1, $2, $3, 0, 0, 'mtr') RETURNING id`,
		collectionID, srNo, stock,
	).Scan(&id)
	require.NoError(t, err, "Failed to seed stock unit")
	return id
}

// TruncateAllTables truncates all tables in the test database
func TruncateAllTables(t *testing.T, db *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()
	tables := []string{
		"order_items",
		"orders",
		"stock_movements",
		"stock_units",
		"customer_collection_access",
		"collections",
		"users",
	}

	for _, table := range tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err, "Failed to truncate table: %s", table)
	}
}

// AssertEventuallyWithTimeout asserts that a condition is met within a timeout
func AssertEventuallyWithTimeout(t *testing.T, condition func() bool, timeout time.Duration, msg string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(100 * time.Millisecond)
	}

	t.Errorf("Condition not met within %v: %s", timeout, msg)
}
