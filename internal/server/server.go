package server

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"catalogo-plus/internal/config"
	custommiddleware "catalogo-plus/internal/middleware"
	"catalogo-plus/internal/repository"
	"catalogo-plus/internal/service"
	"catalogo-plus/internal/storage"
	"catalogo-plus/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Dependencies are the resources the server is built from. Closers are
// released in order when the server closes.
type Dependencies struct {
	Products    repository.ProductRepository
	Store       storage.Store
	RedisClient redis.Cmdable
	Health      func() map[string]string
	Closers     []io.Closer
}

type Server struct {
	*http.Server
	config  *config.Config
	logger  *zap.Logger
	closers []io.Closer
}

func NewServer(cfg *config.Config, logger *zap.Logger, deps Dependencies) *Server {
	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      NewRouter(cfg, logger, deps),
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config:  cfg,
		logger:  logger,
		closers: deps.Closers,
	}

	return server
}

// NewRouter wires middleware, services and handlers into a chi router
func NewRouter(cfg *config.Config, logger *zap.Logger, deps Dependencies) chi.Router {
	router := chi.NewRouter()

	router.Use(custommiddleware.DefaultMiddlewareStack()...)
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.Server.Env == "development"))
	router.Use(custommiddleware.ValidationMiddleware(logger))

	router.NotFound(custommiddleware.NotFoundHandler)
	router.MethodNotAllowed(custommiddleware.MethodNotAllowedHandler)

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		body := map[string]any{"status": "ok"}
		if deps.Health != nil {
			body["database"] = deps.Health()
		}
		custommiddleware.RespondWithJSON(w, http.StatusOK, body)
	})

	// Initialize services
	catalogService := service.NewCatalogService(deps.Products, logger)
	shortlistService := service.NewShortlistService(deps.Products, deps.Store, logger)

	// Initialize handlers
	catalogHandler := transport.NewCatalogHandler(catalogService, logger)
	shortlistHandler := transport.NewShortlistHandler(shortlistService, logger)

	// Register routes
	router.Group(func(r chi.Router) {
		if cfg.RateLimit.Enabled && deps.RedisClient != nil {
			r.Use(custommiddleware.RateLimitMiddleware(deps.RedisClient, custommiddleware.RateLimitConfig{
				RequestsPerWindow: cfg.RateLimit.Requests,
				Window:            time.Duration(cfg.RateLimit.WindowSeconds) * time.Second,
				KeyPrefix:         cfg.Redis.KeyPrefix + ":ratelimit",
			}, logger))
		}

		catalogHandler.RegisterRoutes(r)
		shortlistHandler.RegisterRoutes(r, custommiddleware.ClientIDMiddleware(logger))
	})

	return router
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			s.logger.Error("Failed to close resource", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
