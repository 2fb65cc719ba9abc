// Package container provides dependency injection using Uber FX
package container

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/platewise/v1/internal/application/planner"
	"github.com/platewise/v1/internal/infrastructure/ai/openai"
	"github.com/platewise/v1/internal/infrastructure/catalog"
	"github.com/platewise/v1/internal/infrastructure/config"
	"github.com/platewise/v1/internal/infrastructure/http/apiserver"
	"github.com/platewise/v1/internal/infrastructure/monitoring"
	gormRepo "github.com/platewise/v1/internal/infrastructure/persistence/gorm"
	"github.com/platewise/v1/internal/infrastructure/persistence/memory"
	redisRepo "github.com/platewise/v1/internal/infrastructure/persistence/redis"
	"github.com/platewise/v1/internal/infrastructure/persistence/sqlite"
	"github.com/platewise/v1/internal/ports/inbound"
	"github.com/platewise/v1/internal/ports/outbound"
	"github.com/platewise/v1/pkg/healthcheck"
	"github.com/platewise/v1/pkg/logger"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	CacheModule,
	RepositoryModule,
	ServiceModule,
	MonitoringModule,
	HealthModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// DatabaseModule provides the catalog database, seeded from the JSON
// catalog file when the dishes table is empty.
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
		if cfg.Catalog.Source != "database" {
			return nil, nil
		}

		logLevel := sqlite.ParseLogLevel(cfg.Database.LogLevel)
		db, err := sqlite.SetupDatabase(cfg.Database.Path, logLevel)
		if err != nil {
			return nil, fmt.Errorf("failed to setup SQLite database: %w", err)
		}

		if cfg.Catalog.SeedOnStartup {
			seed, err := catalog.LoadFile(cfg.Catalog.Path, log)
			if err != nil {
				log.Warn("Failed to load seed catalog", zap.Error(err))
			} else if err := sqlite.SeedDatabase(db, seed); err != nil {
				log.Warn("Failed to seed database", zap.Error(err))
			}
		}

		log.Info("Connected to SQLite database",
			zap.String("path", cfg.Database.Path),
		)

		return db, nil
	},
)

// CacheModule provides the description cache backend
var CacheModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) outbound.CacheRepository {
		if cfg.Cache.Backend == "redis" {
			client, err := redisRepo.NewClient(cfg.Cache, cfg.RedisAddr())
			if err != nil {
				log.Warn("Redis unavailable, falling back to in-memory cache", zap.Error(err))
				return memory.NewCacheRepository()
			}
			return redisRepo.NewCacheRepository(client, log)
		}
		return memory.NewCacheRepository()
	},
)

// RepositoryModule provides the dish repository, backed by the database
// or read straight from the catalog file.
var RepositoryModule = fx.Provide(
	func(cfg *config.Config, db *gorm.DB, log *zap.Logger) outbound.DishRepository {
		if cfg.Catalog.Source == "database" && db != nil {
			return gormRepo.NewDishRepository(db, log)
		}
		return catalog.NewFileRepository(cfg.Catalog.Path, log)
	},
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	func(cfg *config.Config, cache outbound.CacheRepository, metrics *monitoring.MetricsCollector, log *zap.Logger) outbound.DescriptionService {
		return openai.NewClient(cfg.AI, cache, metrics, log)
	},

	func(
		dishes outbound.DishRepository,
		descriptions outbound.DescriptionService,
		log *zap.Logger,
	) inbound.PlannerService {
		return planner.NewPlanningService(dishes, descriptions, nil, log)
	},
)

// MonitoringModule provides metrics collection
var MonitoringModule = fx.Provide(
	monitoring.NewMetricsCollector,
)

// HealthModule provides the health check registry
var HealthModule = fx.Provide(
	func(
		cfg *config.Config,
		log *zap.Logger,
		db *gorm.DB,
		dishes outbound.DishRepository,
		descriptions outbound.DescriptionService,
	) *healthcheck.HealthCheck {
		hc := healthcheck.New(cfg.App.Name, cfg.App.Version, log)

		if db != nil {
			hc.Register("database", healthcheck.CheckerFunc(func(ctx context.Context) healthcheck.Check {
				started := time.Now()
				sqlDB, err := db.DB()
				if err == nil {
					err = sqlDB.PingContext(ctx)
				}
				if err != nil {
					return healthcheck.NewCheck("database", healthcheck.StatusUnhealthy, err.Error(), started)
				}
				return healthcheck.NewCheck("database", healthcheck.StatusHealthy, "", started)
			}))
		}

		hc.Register("catalog", healthcheck.CheckerFunc(func(ctx context.Context) healthcheck.Check {
			started := time.Now()
			snapshot, err := dishes.Catalog(ctx)
			switch {
			case err != nil:
				return healthcheck.NewCheck("catalog", healthcheck.StatusUnhealthy, err.Error(), started)
			case snapshot.IsEmpty():
				return healthcheck.NewCheck("catalog", healthcheck.StatusDegraded, "catalog is empty", started)
			default:
				return healthcheck.NewCheck("catalog", healthcheck.StatusHealthy, "", started)
			}
		}))

		hc.Register("description_model", healthcheck.CheckerFunc(func(ctx context.Context) healthcheck.Check {
			started := time.Now()
			if !descriptions.Available() {
				return healthcheck.NewCheck("description_model", healthcheck.StatusDegraded,
					"model unreachable, plans use catalog descriptions", started)
			}
			return healthcheck.NewCheck("description_model", healthcheck.StatusHealthy, "", started)
		}))

		return hc
	},
)

// HTTPModule provides the HTTP server
var HTTPModule = fx.Provide(
	apiserver.NewAPIServer,
)

// LifecycleModule provides lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
	server *apiserver.APIServer,
	dishes outbound.DishRepository,
	metrics *monitoring.MetricsCollector,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting Platewise application",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			// Warm the catalog snapshot and publish its size.
			if snapshot, err := dishes.Catalog(ctx); err != nil {
				log.Warn("Catalog not available at startup", zap.Error(err))
			} else {
				metrics.SetCatalogSize(snapshot.Len())
			}

			go func() {
				if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("Failed to start HTTP server", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down Platewise application")

			if err := server.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			if db != nil {
				sqlDB, err := db.DB()
				if err == nil {
					if err := sqlDB.Close(); err != nil {
						log.Error("Failed to close database connection", zap.Error(err))
					}
				}
			}

			_ = log.Sync()

			return nil
		},
	})
}
