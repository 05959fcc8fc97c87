package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/crime_stats/internal/config"
	"github.com/shenikar/crime_stats/internal/repository"
	"github.com/shenikar/crime_stats/internal/service"
	"github.com/shenikar/crime_stats/pkg/logger"
	"github.com/shenikar/crime_stats/pkg/postgres"
	redisclient "github.com/shenikar/crime_stats/pkg/redis"
)

// env - подключения, общие для команд, работающих с данными
type env struct {
	cfg     *config.Config
	log     *logrus.Logger
	db      *pgxpool.Pool
	redis   *goredis.Client
	dataset service.DatasetService
}

// loadConfig читает конфигурацию и создаёт консольный логгер в stderr
func loadConfig(stderr io.Writer) (*config.Config, *logrus.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, logger.NewConsole(cfg.LogLevel, stderr), nil
}

// connect открывает Postgres и Redis. Вебхуки из CLI не публикуются.
func connect(ctx context.Context) (*env, error) {
	cfg, log, err := loadConfig(os.Stderr)
	if err != nil {
		return nil, err
	}

	db, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	rdb, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	repo := repository.NewDatasetRepository(db, rdb, cfg.SnapshotTTL)
	return &env{
		cfg:     cfg,
		log:     log,
		db:      db,
		redis:   rdb,
		dataset: service.NewDatasetService(repo, log, nil),
	}, nil
}

func (e *env) Close() {
	_ = e.redis.Close()
	e.db.Close()
}
