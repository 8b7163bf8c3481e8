// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/dakshilalbetrios/curtain-be/internal/adapters/db"
	redis_a "github.com/dakshilalbetrios/curtain-be/internal/adapters/redis_adapter"
	"github.com/dakshilalbetrios/curtain-be/internal/core/ports"
	"github.com/dakshilalbetrios/curtain-be/internal/core/services"
	"github.com/dakshilalbetrios/curtain-be/internal/handlers"
	"github.com/dakshilalbetrios/curtain-be/internal/handlers/middleware"
	"github.com/dakshilalbetrios/curtain-be/internal/pkg/config"
	"github.com/dakshilalbetrios/curtain-be/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	slogger := logger.Setup("debug", "json")

	slogger.Info("starting curtain inventory and order system",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
	)

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	slogger = logger.Setup(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("log_level", cfg.App.LogLevel),
	)

	ctx := context.Background()

	deps, err := initializeDependencies(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup()

	if err := runMigrations(ctx, cfg, slogger); err != nil {
		slogger.Error("failed to run migrations", slog.String("error", err.Error()))
		if cfg.App.Environment == "production" {
			os.Exit(1)
		}
	}

	server := setupHTTPServer(cfg, deps, slogger)

	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server",
			slog.String("address", cfg.GetServerAddress()),
		)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		slogger.Info("shutdown signal received",
			slog.String("signal", sig.String()),
		)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}

		slogger.Info("server shutdown complete")
	}
}

// dependencies holds all application dependencies
type dependencies struct {
	database          *db.Database
	redisClient       *redis.Client
	cache             ports.Cache
	stockService      ports.StockService
	orderService      ports.OrderService
	collectionService ports.CollectionService
	stockHandler      *handlers.StockHandler
	orderHandler      *handlers.OrderHandler
	collectionHandler *handlers.CollectionHandler
	accessHandler     *handlers.AccessHandler
	healthHandler     *handlers.HealthHandler
}

func (d *dependencies) cleanup() {
	if d.database != nil {
		d.database.Close()
	}
	if d.redisClient != nil {
		d.redisClient.Close()
	}
}

func initializeDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	logger.Info("connecting to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Name),
	)

	database, err := db.NewDatabase(ctx, &db.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		User:               cfg.Database.User,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Name,
		SSLMode:            cfg.Database.SSLMode,
		MaxConnections:     cfg.Database.MaxConnections,
		MinConnections:     cfg.Database.MinConnections,
		MaxConnLifetime:    cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		EnableQueryLogging: cfg.Database.EnableQueryLogging,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	deps.database = database

	logger.Info("connecting to Redis",
		slog.String("host", cfg.Redis.Host),
		slog.String("port", cfg.Redis.Port),
	)

	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.GetRedisAddress(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		MaxRetries:   cfg.Redis.MaxRetries,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	deps.redisClient = redisClient
	deps.cache = redis_a.NewCache(redisClient, logger)

	// Repositories
	unitRepo := db.NewStockUnitRepository(logger)
	movementRepo := db.NewStockMovementRepository(logger)
	collectionRepo := db.NewCollectionRepository(logger)
	accessRepo := db.NewCollectionAccessRepository(logger)
	orderRepo := db.NewOrderRepository(logger)
	orderItemRepo := db.NewOrderItemRepository(logger)

	// Services
	deps.stockService = services.NewStockService(database, unitRepo, movementRepo, deps.cache, cfg.Redis.TTL, logger)
	deps.orderService = services.NewOrderService(database, orderRepo, orderItemRepo, unitRepo, deps.stockService, cfg.Orders.OverdueDays, logger)
	deps.collectionService = services.NewCollectionService(database, collectionRepo, unitRepo, accessRepo, deps.stockService, logger)

	// Handlers
	deps.stockHandler = handlers.NewStockHandler(deps.stockService, logger)
	deps.orderHandler = handlers.NewOrderHandler(deps.orderService, logger)
	deps.collectionHandler = handlers.NewCollectionHandler(deps.collectionService, deps.stockService, logger)
	deps.accessHandler = handlers.NewAccessHandler(deps.collectionService, logger)
	deps.healthHandler = handlers.NewHealthHandler(database, redisClient, cfg, logger)

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

func setupHTTPServer(cfg *config.Config, deps *dependencies, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()

	// Apply middleware in reverse order (innermost first)
	var handler http.Handler = mux

	if cfg.Security.RateLimitRequests > 0 {
		handler = middleware.RateLimit(cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration)(handler)
	}
	handler = middleware.Recovery(logger)(handler)
	handler = middleware.Logger(logger)(handler)
	handler = middleware.Actor(cfg.Security.ActorIDHeader, cfg.Security.ActorRoleHeader)(handler)
	handler = middleware.RequestID(handler)
	if len(cfg.Security.AllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.Security.AllowedOrigins)(handler)
	}

	registerRoutes(mux, deps)

	return &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        handler,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
}

func registerRoutes(mux *http.ServeMux, deps *dependencies) {
	apiV1 := "/api/v1"

	// Health and readiness endpoints
	mux.HandleFunc("GET /health", deps.healthHandler.Health)
	mux.HandleFunc("GET /ready", deps.healthHandler.Readiness)
	mux.HandleFunc("GET "+apiV1+"/health", deps.healthHandler.Health)

	// Collection endpoints
	mux.HandleFunc("POST "+apiV1+"/collections", deps.collectionHandler.CreateCollection)
	mux.HandleFunc("GET "+apiV1+"/collections", deps.collectionHandler.ListCollections)
	mux.HandleFunc("GET "+apiV1+"/collections/{id}", deps.collectionHandler.GetCollection)
	mux.HandleFunc("PUT "+apiV1+"/collections/{id}", deps.collectionHandler.UpdateCollection)
	mux.HandleFunc("DELETE "+apiV1+"/collections/{id}", deps.collectionHandler.DeleteCollection)
	mux.HandleFunc("POST "+apiV1+"/collections/{id}/stock-units", deps.collectionHandler.CreateStockUnits)

	// Customer collection access endpoints
	mux.HandleFunc("POST "+apiV1+"/users/{id}/collections", deps.accessHandler.GrantAccess)
	mux.HandleFunc("GET "+apiV1+"/users/{id}/collections", deps.accessHandler.ListCustomerAccess)
	mux.HandleFunc("PUT "+apiV1+"/users/{id}/collections/bulk", deps.accessHandler.BulkUpdateAccess)

	// Stock unit and movement endpoints
	mux.HandleFunc("GET "+apiV1+"/stock-units/{id}", deps.stockHandler.GetStockUnit)
	mux.HandleFunc("PATCH "+apiV1+"/stock-units/{id}", deps.stockHandler.UpdateStockUnit)
	mux.HandleFunc("DELETE "+apiV1+"/stock-units/{id}", deps.stockHandler.DeleteStockUnit)
	mux.HandleFunc("POST "+apiV1+"/stock-units/{id}/movements", deps.stockHandler.CreateMovement)
	mux.HandleFunc("GET "+apiV1+"/stock-units/{id}/movements", deps.stockHandler.ListMovements)

	// Order endpoints
	mux.HandleFunc("POST "+apiV1+"/orders", deps.orderHandler.CreateOrder)
	mux.HandleFunc("GET "+apiV1+"/orders", deps.orderHandler.ListOrders)
	mux.HandleFunc("GET "+apiV1+"/orders/{id}", deps.orderHandler.GetOrder)
	mux.HandleFunc("PUT "+apiV1+"/orders/{id}", deps.orderHandler.UpdateOrder)
	mux.HandleFunc("PATCH "+apiV1+"/orders/{id}/status", deps.orderHandler.UpdateStatus)
	mux.HandleFunc("DELETE "+apiV1+"/orders/{id}", deps.orderHandler.DeleteOrder)
}

func runMigrations(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("running database migrations")

	migrationConfig := &db.MigrationConfig{
		DatabaseURL: cfg.GetDatabaseURL(),
		SourcePath:  cfg.Database.MigrationPath,
		TableName:   "schema_migrations",
		SchemaName:  "public",
	}

	return db.RunMigrationsWithRetry(ctx, migrationConfig, logger, 3)
}
