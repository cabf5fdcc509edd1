package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalogo-plus/internal/config"
	"catalogo-plus/internal/database"
	"catalogo-plus/internal/domain"
	"catalogo-plus/internal/logger"
	"catalogo-plus/internal/repository"
	"catalogo-plus/internal/server"
	"catalogo-plus/internal/storage"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func gracefulShutdown(apiServer *server.Server, logger *zap.Logger, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Listen for the interrupt signal.
	<-ctx.Done()

	logger.Info("Shutting down gracefully, press Ctrl+C again to force")
	stop() // Allow Ctrl+C to force shutdown

	// The context is used to inform the server it has 30 seconds to finish
	// the request it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := apiServer.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	// Close server resources
	if err := apiServer.Close(); err != nil {
		logger.Error("Error closing server resources", zap.Error(err))
	}

	logger.Info("Server exiting")

	// Notify the main goroutine that the shutdown is complete
	done <- true
}

// loadProducts reads the catalog from the configured source. With the
// postgres source the database handle is returned so it can be closed on
// shutdown.
func loadProducts(ctx context.Context, cfg *config.Config, log *zap.Logger) ([]domain.Product, database.Service, error) {
	if cfg.Catalog.Source == config.SourceSeed {
		return repository.SeedProducts(), nil, nil
	}

	dbService, err := database.New(ctx, cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	log.Info("Database health check", zap.Any("health", dbService.Health()))

	if err := database.RunMigrations(dbService.DB(), log); err != nil {
		dbService.Close()
		return nil, nil, err
	}

	store := repository.NewProductStore(dbService.DB())
	if cfg.Catalog.Seed {
		inserted, err := repository.SeedIfEmpty(ctx, store, repository.SeedProducts())
		if err != nil {
			dbService.Close()
			return nil, nil, err
		}
		log.Info("Catalog seed", zap.Int("inserted", inserted))
	}

	products, err := store.LoadAll(ctx)
	if err != nil {
		dbService.Close()
		return nil, nil, err
	}
	return products, dbService, nil
}

func run() error {
	flags := config.NewFlagSet(os.Args[0])
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	// Load configuration
	cfg, err := config.Load(flags)
	if err != nil {
		return err
	}

	// Initialize logger
	log, err := logger.New(cfg.Server.Env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	log.Info("Starting catalog API",
		zap.String("env", cfg.Server.Env),
		zap.String("port", cfg.Server.Port),
		zap.String("catalog_source", cfg.Catalog.Source),
		zap.String("storage_backend", cfg.Storage.Backend),
	)

	ctx := context.Background()
	var closers []io.Closer

	products, dbService, err := loadProducts(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	if dbService != nil {
		closers = append(closers, dbService)
	}

	repo, err := repository.NewProductRepository(products)
	if err != nil {
		closeAll(closers, log)
		return fmt.Errorf("invalid catalog: %w", err)
	}
	log.Info("Catalog loaded", zap.Int("products", len(products)))

	deps := server.Dependencies{
		Products: repo,
		Store:    storage.NewMemoryStore(),
	}
	if dbService != nil {
		deps.Health = dbService.Health
	}

	if cfg.NeedsRedis() {
		redisClient, err := storage.NewRedisClient(ctx, cfg.Redis.Addr(), cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			closeAll(closers, log)
			return err
		}
		closers = append(closers, redisClient)
		deps.RedisClient = redisClient

		if cfg.Storage.Backend == config.BackendRedis {
			deps.Store = storage.NewRedisStore(redisClient, cfg.Redis.KeyPrefix)
		}
	}
	deps.Closers = closers

	// Create server
	srv := server.NewServer(cfg, log, deps)

	// Create a done channel to signal when the shutdown is complete
	done := make(chan bool, 1)

	// Run graceful shutdown in a separate goroutine
	go gracefulShutdown(srv, log, done)

	log.Info("Server listening", zap.String("addr", srv.Addr))

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	// Wait for the graceful shutdown to complete
	<-done
	log.Info("Graceful shutdown complete")
	return nil
}

func closeAll(closers []io.Closer, log *zap.Logger) {
	for _, c := range closers {
		if err := c.Close(); err != nil {
			log.Warn("Failed to close resource", zap.Error(err))
		}
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "catalog api: %v\n", err)
		os.Exit(1)
	}
}
