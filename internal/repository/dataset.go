package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/crime_stats/internal/models"
	"github.com/shenikar/crime_stats/internal/service"
)

const snapshotCacheKey = "snapshot:dataset"

// pool - часть pgxpool.Pool, нужная репозиторию
type pool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type DatasetRepository struct {
	db          pool
	redisClient *redis.Client
	snapshotTTL time.Duration
}

func NewDatasetRepository(db *pgxpool.Pool, redisClient *redis.Client, snapshotTTL time.Duration) service.DatasetRepository {
	return &DatasetRepository{
		db:          db,
		redisClient: redisClient,
		snapshotTTL: snapshotTTL,
	}
}

// ListIncidents возвращает все инциденты из бд
func (r *DatasetRepository) ListIncidents(ctx context.Context) ([]models.IncidentRecord, error) {
	query := `
		SELECT
			category,
			occurred_on,
			station_code,
			shift,
			latitude,
			longitude
		FROM incidents
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]models.IncidentRecord, 0)
	for rows.Next() {
		var (
			incident models.IncidentRecord
			category string
			shift    string
		)
		err := rows.Scan(
			&category,
			&incident.OccurredOn,
			&incident.StationCode,
			&shift,
			&incident.Latitude,
			&incident.Longitude,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incident.Category = models.Category(category)
		incident.Shift = models.Shift(shift)
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

// ListNeighborhoods возвращает справочник участков в порядке загрузки
func (r *DatasetRepository) ListNeighborhoods(ctx context.Context) ([]models.NeighborhoodInfo, error) {
	query := `
		SELECT station_code, name, population
		FROM neighborhoods
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list neighborhoods: %w", err)
	}
	defer rows.Close()

	hoods := make([]models.NeighborhoodInfo, 0)
	for rows.Next() {
		var n models.NeighborhoodInfo
		if err := rows.Scan(&n.StationCode, &n.Name, &n.Population); err != nil {
			return nil, fmt.Errorf("failed to scan neighborhood row: %w", err)
		}
		hoods = append(hoods, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in ListNeighborhoods: %w", err)
	}
	return hoods, nil
}

// ImportDataset заменяет справочник районов и инциденты одной транзакцией:
// при любой ошибке в бд остаются прежние данные обеих таблиц
func (r *DatasetRepository) ImportDataset(ctx context.Context, dataset *models.Dataset) (models.ImportResult, error) {
	var result models.ImportResult

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	hoods := make([][]any, len(dataset.Neighborhoods))
	for i, n := range dataset.Neighborhoods {
		hoods[i] = []any{n.StationCode, n.Name, n.Population}
	}
	result.Neighborhoods, err = replaceTable(ctx, tx, "neighborhoods", []string{"station_code", "name", "population"}, hoods)
	if err != nil {
		return models.ImportResult{}, err
	}

	incidents := make([][]any, len(dataset.Incidents))
	for i, inc := range dataset.Incidents {
		incidents[i] = []any{
			string(inc.Category),
			inc.OccurredOn,
			inc.StationCode,
			string(inc.Shift),
			inc.Latitude,
			inc.Longitude,
		}
	}
	columns := []string{"category", "occurred_on", "station_code", "shift", "latitude", "longitude"}
	result.Incidents, err = replaceTable(ctx, tx, "incidents", columns, incidents)
	if err != nil {
		return models.ImportResult{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return models.ImportResult{}, fmt.Errorf("failed to commit dataset import: %w", err)
	}
	return result, nil
}

// replaceTable очищает таблицу и копирует строки внутри переданной транзакции
func replaceTable(ctx context.Context, tx pgx.Tx, table string, columns []string, rows [][]any) (int64, error) {
	if _, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY;", table)); err != nil {
		return 0, fmt.Errorf("failed to truncate %s: %w", table, err)
	}

	copied, err := tx.CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("failed to copy rows into %s: %w", table, err)
	}
	return copied, nil
}

// GetSnapshotFromCache пытается получить исходный набор данных из Redis
func (r *DatasetRepository) GetSnapshotFromCache(ctx context.Context) (*models.Dataset, error) {
	val, err := r.redisClient.Get(ctx, snapshotCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get snapshot from cache: %w", err)
	}

	dataset := &models.Dataset{}
	if err := json.Unmarshal(val, dataset); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot from cache: %w", err)
	}
	return dataset, nil
}

// SetSnapshotCache сохраняет исходный набор данных в Redis
func (r *DatasetRepository) SetSnapshotCache(ctx context.Context, dataset *models.Dataset) error {
	val, err := json.Marshal(dataset)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, snapshotCacheKey, val, r.snapshotTTL).Err(); err != nil {
		return fmt.Errorf("failed to set snapshot in cache: %w", err)
	}
	return nil
}

// InvalidateSnapshotCache удаляет снимок из Redis кэша
func (r *DatasetRepository) InvalidateSnapshotCache(ctx context.Context) error {
	if err := r.redisClient.Del(ctx, snapshotCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate snapshot cache: %w", err)
	}
	return nil
}
