// cmd/seeder/main.go
//
// Development seeder: loads a small demo dataset (users, collections with
// serialized stock units, and a few orders) through the service layer so
// every seeded quantity is backed by ledger entries.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/dakshilalbetrios/curtain-be/internal/adapters/db"
	redis_a "github.com/dakshilalbetrios/curtain-be/internal/adapters/redis_adapter"
	"github.com/dakshilalbetrios/curtain-be/internal/core/domain"
	"github.com/dakshilalbetrios/curtain-be/internal/core/services"
	"github.com/dakshilalbetrios/curtain-be/internal/pkg/config"
	"github.com/dakshilalbetrios/curtain-be/internal/pkg/logger"
)

type seedUser struct {
	Name   string
	Mobile string
	Role   domain.Role
}

type seedUnit struct {
	SrNo    string
	Opening string
	Min     string
	Max     string
	Unit    domain.UnitOfMeasure
}

type seedCollection struct {
	Name        string
	Description string
	Units       []seedUnit
}

var seedUsers = []seedUser{
	{Name: "Dakshil Shah", Mobile: "9000000001", Role: domain.RoleAdmin},
	{Name: "Warehouse Staff", Mobile: "9000000002", Role: domain.RoleStaff},
	{Name: "Demo Customer", Mobile: "9000000003", Role: domain.RoleCustomer},
}

var seedCollections = []seedCollection{
	{
		Name:        "Aurora Sheer",
		Description: "Lightweight sheer fabric, 140cm width",
		Units: []seedUnit{
			{SrNo: "AUR-001", Opening: "120.50", Min: "20", Max: "200", Unit: domain.UnitMeter},
			{SrNo: "AUR-002", Opening: "85.00", Min: "20", Max: "200", Unit: domain.UnitMeter},
			{SrNo: "AUR-003", Opening: "0", Min: "10", Max: "150", Unit: domain.UnitMeter},
		},
	},
	{
		Name:        "Velvet Royale",
		Description: "Heavy blackout velvet",
		Units: []seedUnit{
			{SrNo: "VEL-101", Opening: "60.25", Min: "15", Max: "120", Unit: domain.UnitMeter},
			{SrNo: "VEL-102", Opening: "42.75", Min: "15", Max: "120", Unit: domain.UnitMeter},
		},
	},
	{
		Name:        "Track Hardware",
		Description: "Ceiling track sets and gliders",
		Units: []seedUnit{
			{SrNo: "TRK-901", Opening: "35", Min: "10", Max: "100", Unit: domain.UnitPiece},
			{SrNo: "TRK-902", Opening: "12", Min: "5", Max: "50", Unit: domain.UnitPiece},
		},
	},
}

func main() {
	migrateFirst := flag.Bool("migrate", true, "run migrations before seeding")
	withOrders := flag.Bool("orders", true, "seed demo orders against the seeded stock")
	flag.Parse()

	slogger := logger.Setup("info", "text")

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if cfg.App.Environment == "production" {
		slogger.Error("refusing to seed a production database")
		os.Exit(1)
	}

	ctx := context.Background()

	if *migrateFirst {
		migrationConfig := &db.MigrationConfig{
			DatabaseURL: cfg.GetDatabaseURL(),
			SourcePath:  cfg.Database.MigrationPath,
			TableName:   "schema_migrations",
			SchemaName:  "public",
		}
		if err := db.RunMigrationsWithRetry(ctx, migrationConfig, slogger, 3); err != nil {
			slogger.Error("failed to run migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	database, err := db.NewDatabase(ctx, &db.Config{
		Host:           cfg.Database.Host,
		Port:           cfg.Database.Port,
		User:           cfg.Database.User,
		Password:       cfg.Database.Password,
		Database:       cfg.Database.Name,
		SSLMode:        cfg.Database.SSLMode,
		MaxConnections: 5,
		MinConnections: 1,
		ConnectTimeout: cfg.Database.ConnectTimeout,
	}, slogger)
	if err != nil {
		slogger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddress(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	cache := redis_a.NewCache(redisClient, slogger)

	unitRepo := db.NewStockUnitRepository(slogger)
	movementRepo := db.NewStockMovementRepository(slogger)
	collectionRepo := db.NewCollectionRepository(slogger)
	accessRepo := db.NewCollectionAccessRepository(slogger)
	orderRepo := db.NewOrderRepository(slogger)
	orderItemRepo := db.NewOrderItemRepository(slogger)

	stockService := services.NewStockService(database, unitRepo, movementRepo, cache, cfg.Redis.TTL, slogger)
	orderService := services.NewOrderService(database, orderRepo, orderItemRepo, unitRepo, stockService, cfg.Orders.OverdueDays, slogger)
	collectionService := services.NewCollectionService(database, collectionRepo, unitRepo, accessRepo, stockService, slogger)

	admin, err := seedDemoUsers(ctx, database, slogger)
	if err != nil {
		slogger.Error("failed to seed users", slog.String("error", err.Error()))
		os.Exit(1)
	}

	unitIDs, err := seedDemoCollections(ctx, collectionService, admin, slogger)
	if err != nil {
		slogger.Error("failed to seed collections", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *withOrders {
		if err := seedDemoOrders(ctx, orderService, unitIDs, admin, slogger); err != nil {
			slogger.Error("failed to seed orders", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	slogger.Info("seeding complete")
}

// seedDemoUsers upserts the demo users and returns the admin actor used to
// attribute everything else.
func seedDemoUsers(ctx context.Context, database *db.Database, slogger *slog.Logger) (domain.Actor, error) {
	var admin domain.Actor
	for _, u := range seedUsers {
		var id int64
		err := database.QueryRow(ctx,
			`INSERT INTO users (name, mobile_no, password, role)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (mobile_no) DO UPDATE SET name = EXCLUDED.name, role = EXCLUDED.role
			 RETURNING id`,
			u.Name, u.Mobile, "changeme-dev-only", string(u.Role),
		).Scan(&id)
		if err != nil {
			return domain.Actor{}, fmt.Errorf("upsert user %s: %w", u.Name, err)
		}
		if u.Role == domain.RoleAdmin && admin.ID == 0 {
			admin = domain.Actor{ID: id, Role: domain.RoleAdmin}
		}
		slogger.Info("seeded user", slog.Int64("id", id), slog.String("role", string(u.Role)))
	}
	return admin, nil
}

// seedDemoCollections creates collections with their units through the
// collection service, skipping ones that already exist. Returns the stock
// unit IDs by sr_no for order seeding.
func seedDemoCollections(ctx context.Context, svc *services.CollectionService, admin domain.Actor, slogger *slog.Logger) (map[string]int64, error) {
	unitIDs := make(map[string]int64)
	for _, sc := range seedCollections {
		c := &domain.Collection{
			Name:        sc.Name,
			Description: sc.Description,
		}
		for _, su := range sc.Units {
			c.StockUnits = append(c.StockUnits, domain.StockUnit{
				SrNo:         su.SrNo,
				CurrentStock: decimal.RequireFromString(su.Opening),
				MinStock:     decimal.RequireFromString(su.Min),
				MaxStock:     decimal.RequireFromString(su.Max),
				Unit:         su.Unit,
			})
		}

		created, err := svc.CreateCollection(ctx, nil, c, admin)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				slogger.Warn("collection already seeded, skipping", slog.String("name", sc.Name))
				continue
			}
			return nil, fmt.Errorf("create collection %s: %w", sc.Name, err)
		}
		for _, u := range created.StockUnits {
			unitIDs[u.SrNo] = u.ID
		}
		slogger.Info("seeded collection",
			slog.String("name", created.Name),
			slog.Int("units", len(created.StockUnits)))
	}
	return unitIDs, nil
}

// seedDemoOrders creates a delivered order and a pending one so the list
// filters have something to show.
func seedDemoOrders(ctx context.Context, svc *services.OrderService, unitIDs map[string]int64, admin domain.Actor, slogger *slog.Logger) error {
	if len(unitIDs) == 0 {
		slogger.Warn("no freshly seeded units, skipping orders")
		return nil
	}

	orders := [][]domain.NewOrderItem{
		{
			{StockUnitID: unitIDs["AUR-001"], Quantity: decimal.RequireFromString("12.50")},
			{StockUnitID: unitIDs["VEL-101"], Quantity: decimal.RequireFromString("8.00")},
		},
		{
			{StockUnitID: unitIDs["TRK-901"], Quantity: decimal.RequireFromString("4")},
		},
	}

	for _, items := range orders {
		valid := items[:0]
		for _, it := range items {
			if it.StockUnitID > 0 {
				valid = append(valid, it)
			}
		}
		if len(valid) == 0 {
			continue
		}
		order, err := svc.CreateOrder(ctx, nil, valid, admin)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		slogger.Info("seeded order",
			slog.Int64("id", order.ID),
			slog.Int("items", len(order.Items)))
	}
	return nil
}
