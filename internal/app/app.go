package app

import (
	"context"
	"fmt"

	"go-talent/internal/config"
	"go-talent/internal/domain"
	"go-talent/internal/employee"
	"go-talent/internal/formoption"
	"go-talent/internal/shared/connection"
	"go-talent/internal/shared/idalloc"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// BuildApp connects the configured infrastructure and mounts every route on
// router. The returned cleanup releases connections and must be called on
// shutdown, also when err is non-nil.
func BuildApp(router *gin.Engine, cfg config.Config) (cleanup func(), err error) {
	logger := zap.L().Named("app")
	var closers []func()
	cleanup = func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	// 1. Setup Infrastructure
	repo, closeRepo, err := newRepository(context.Background(), cfg)
	if err != nil {
		return cleanup, err
	}
	closers = append(closers, closeRepo)
	logger.Info("employee store ready", zap.String("backend", string(cfg.StoreBackend)))

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
		if err != nil {
			return cleanup, err
		}
		closers = append(closers, func() { _ = rdb.Close() })
	}

	publisher := employee.NewNoopEventPublisher()
	if cfg.KafkaBroker != "" {
		writer, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, 5)
		if err != nil {
			return cleanup, err
		}
		closers = append(closers, func() { _ = writer.Close() })
		publisher = employee.NewKafkaEventPublisher(writer)
	}

	// 2. Domain collaborators
	alloc, err := idalloc.New(cfg.AllocatorPolicy)
	if err != nil {
		return cleanup, err
	}

	var locker idalloc.Locker = idalloc.NewLocalLocker()
	lockScope := "process"
	if rdb != nil {
		locker = idalloc.NewRedisLocker(rdb, idalloc.DefaultLockKey)
		lockScope = "redis"
	}
	logger.Info("id allocation configured",
		zap.String("policy", string(alloc.Policy())),
		zap.String("lock", lockScope),
	)

	catalog := formoption.Default()
	if cfg.FormOptionsFile != "" {
		catalog, err = formoption.Load(cfg.FormOptionsFile)
		if err != nil {
			return cleanup, err
		}
		logger.Info("form options loaded", zap.String("file", cfg.FormOptionsFile))
	}

	// 3. Register Modules & Routes
	registerModules(router, moduleDeps{
		repo:      repo,
		rdb:       rdb,
		alloc:     alloc,
		locker:    locker,
		catalog:   catalog,
		publisher: publisher,
		strict:    cfg.StrictFormOptions,
	})

	return cleanup, nil
}

func newRepository(ctx context.Context, cfg config.Config) (employee.Repository, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendMemory:
		var seed []domain.Employee
		if cfg.SeedDemoData {
			seed = employee.DemoEmployees()
		}
		repo := employee.NewMemoryRepository(seed...)
		return repo, func() { _ = repo.Close() }, nil

	case config.BackendDynamoDB:
		client, err := connection.NewDynamoDBClient(ctx, cfg.AWSRegion, cfg.DynamoDBEndpoint)
		if err != nil {
			return nil, nil, err
		}
		repo, err := employee.NewDynamoDBRepository(client, cfg.TableName)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil

	case config.BackendPostgres:
		db, err := connection.ConnectGORMWithRetry(
			cfg.DB.Host,
			cfg.DB.User,
			cfg.DB.Password,
			cfg.DB.Name,
			cfg.DB.Port,
			cfg.DB.SSLMode,
			5,
		)
		if err != nil {
			return nil, nil, err
		}
		if err := employee.AutoMigrate(db); err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		return employee.NewRepository(db), func() { _ = sqlDB.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unsupported store backend %q", cfg.StoreBackend)
	}
}
