package http

import (
	"context"
	"net/http"

	"todoapi/internal/adapter/cache"
	"todoapi/internal/adapter/database/postgres"
	pgrepository "todoapi/internal/adapter/database/postgres/repository"
	"todoapi/internal/adapter/database/sqlite"
	sqliterepository "todoapi/internal/adapter/database/sqlite/repository"
	"todoapi/internal/adapter/http/routes"
	"todoapi/internal/core/port"
	"todoapi/internal/core/telemetry"
	"todoapi/pkg/config"
	apptelemetry "todoapi/pkg/telemetry"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// StartServer assembles the adapters from config and blocks serving
// HTTP. DATABASE_URL switches storage to postgres, REDIS_URL switches
// the list cache to redis; without them the server runs self-contained
// on sqlite and an in-process cache.
func StartServer(ctx context.Context, cfg *config.Config, metrics *apptelemetry.AppMetrics, logger *otelzap.Logger) error {
	var (
		userRepo port.UserRepository
		todoRepo port.TodoRepository
	)

	if cfg.DatabaseURL != "" {
		db, err := postgres.NewDB(ctx, cfg.DatabaseURL, cfg.PostgresMigrationsPath)

		if err != nil {
			return err
		}

		defer db.Close()

		userRepo = pgrepository.NewUserRepository(db)
		todoRepo = pgrepository.NewTodoRepository(db)
	} else {
		db, err := sqlite.NewDB(cfg.DatabasePath, cfg.MigrationsPath)

		if err != nil {
			return err
		}

		defer db.Close()

		userRepo = sqliterepository.NewUserRepository(db)
		todoRepo = sqliterepository.NewTodoRepository(db)
	}

	var todoCache port.TodoCache

	if cfg.RedisURL != "" {
		rdb, err := cache.NewRedisClient(ctx, cfg.RedisURL)

		if err != nil {
			return err
		}

		defer rdb.Close()

		todoCache = cache.NewRedisTodoCache(rdb)
	} else {
		todoCache = cache.NewMemoryTodoCache()
	}

	probe := telemetry.NewOtelProbe("todoapi", metrics)
	container := NewContainer(userRepo, todoRepo, todoCache, probe, logger)

	router := routes.SetupRouter(routes.HandlersConfig{
		AuthHandler: container.AuthHandler,
		TodoHandler: container.TodoHandler,
		UserHandler: container.UserHandler,
	}, metrics, logger)

	logger.Info("Server starting",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.AppEnv),
		zap.Bool("postgres", cfg.DatabaseURL != ""),
		zap.Bool("redis", cfg.RedisURL != ""),
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		<-ctx.Done()
		srv.Shutdown(context.Background())
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
