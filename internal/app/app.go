package app

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/digitalbuddiesspune/stylegenz/internal/config"
	"github.com/digitalbuddiesspune/stylegenz/internal/event"
	handler "github.com/digitalbuddiesspune/stylegenz/internal/handler/http"
	"github.com/digitalbuddiesspune/stylegenz/internal/repository/postgres"
	redisrepo "github.com/digitalbuddiesspune/stylegenz/internal/repository/redis"
	"github.com/digitalbuddiesspune/stylegenz/internal/service"
	"github.com/digitalbuddiesspune/stylegenz/pkg/database"
	"github.com/digitalbuddiesspune/stylegenz/pkg/health"
	"github.com/digitalbuddiesspune/stylegenz/pkg/kafka"
	"github.com/digitalbuddiesspune/stylegenz/pkg/logger"
)

//go:embed migrations/*.sql
var migrations embed.FS

// App wires the catalog service together and owns its lifecycle.
type App struct {
	cfg    *config.Config
	logger *slog.Logger

	pool     *pgxpool.Pool
	redis    *goredis.Client
	producer *kafka.Producer
	server   *http.Server
}

// New builds the application: connections, migrations, services, routes.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logger.New(cfg.ServiceName, cfg.LogLevel)

	pool, err := database.NewPostgresPool(ctx, cfg.Postgres(), log)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err := database.RunMigrations(ctx, pool, migrations, "migrations", log); err != nil {
		pool.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	redisClient, err := database.NewRedisClient(ctx, cfg.Redis())
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	var (
		producer  *kafka.Producer
		publisher event.Publisher = event.NoopPublisher{}
	)
	if cfg.KafkaEnabled {
		producer = kafka.NewProducer(kafka.DefaultProducerConfig(cfg.KafkaBrokers), log)
		publisher = event.NewKafkaPublisher(producer, log)
	}

	records := postgres.NewStore(pool)
	wishlists := redisrepo.NewWishlistStore(redisClient)

	catalogSvc := service.NewCatalogService(records, publisher, log)
	wishlistSvc := service.NewWishlistService(wishlists, records, publisher, log)

	checks := health.NewHandler()
	checks.Register("postgres", records.Ping)
	checks.Register("redis", wishlists.Ping)
	if producer != nil {
		checks.Register("kafka", producer.Ping)
	}

	router := handler.NewRouter(
		handler.RouterConfig{
			ServiceName:        cfg.ServiceName,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
			CacheMaxAgeSeconds: cfg.CacheMaxAgeSeconds,
		},
		handler.NewCatalogHandler(catalogSvc, log),
		handler.NewWishlistHandler(wishlistSvc, log),
		checks,
		log,
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &App{
		cfg:      cfg,
		logger:   log,
		pool:     pool,
		redis:    redisClient,
		producer: producer,
		server:   server,
	}, nil
}

// Run serves HTTP until the context is canceled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("http server listening", slog.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	return a.Shutdown()
}

// Shutdown stops the HTTP server and closes every connection.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	var errs []error
	if err := a.server.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown http server: %w", err))
	}
	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close kafka producer: %w", err))
		}
	}
	if err := a.redis.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close redis: %w", err))
	}
	a.pool.Close()

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	a.logger.Info("shutdown complete")
	return nil
}
