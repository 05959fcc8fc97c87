package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/crime_stats/internal/models"
	"github.com/shenikar/crime_stats/internal/store"
	"github.com/shenikar/crime_stats/internal/webhook"
	"github.com/sirupsen/logrus"
)

// DatasetRepository определяет контракт для работы с бд инцидентов и кэшем снимка
type DatasetRepository interface {
	ListIncidents(ctx context.Context) ([]models.IncidentRecord, error)
	ListNeighborhoods(ctx context.Context) ([]models.NeighborhoodInfo, error)
	ImportDataset(ctx context.Context, dataset *models.Dataset) (models.ImportResult, error)
	GetSnapshotFromCache(ctx context.Context) (*models.Dataset, error)
	SetSnapshotCache(ctx context.Context, dataset *models.Dataset) error
	InvalidateSnapshotCache(ctx context.Context) error
}

// DatasetService определяет контракт загрузки данных в хранилище
type DatasetService interface {
	Load(ctx context.Context) (*store.Store, error)
	Import(ctx context.Context, dataset *models.Dataset) error
}

type datasetService struct {
	repo      DatasetRepository
	logger    *logrus.Logger
	publisher webhook.WebhookPublisher
}

// NewDatasetService создаёт сервис загрузки. publisher может быть nil.
func NewDatasetService(repo DatasetRepository, logger *logrus.Logger, publisher webhook.WebhookPublisher) DatasetService {
	return &datasetService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
	}
}

// Load читает исходные данные (из кэша или бд) и строит неизменяемое хранилище
func (s *datasetService) Load(ctx context.Context) (*store.Store, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dataset",
		"method":  "Load",
	})
	log.Info("Loading incident dataset")

	dataset, err := s.repo.GetSnapshotFromCache(ctx)
	if err != nil {
		// Кэш не обязателен: при ошибке читаем из бд
		log.WithError(err).Warn("Failed to read dataset snapshot from cache")
		dataset = nil
	}

	if dataset == nil {
		dataset, err = s.readDatabase(ctx)
		if err != nil {
			log.WithError(err).Error("Failed to read dataset from repository")
			return nil, fmt.Errorf("service: could not load dataset: %w", err)
		}
		if err := s.repo.SetSnapshotCache(ctx, dataset); err != nil {
			log.WithError(err).Warn("Failed to cache dataset snapshot")
		}
	} else {
		log.Debug("Dataset snapshot served from cache")
	}

	st := store.New(dataset.Incidents, dataset.Neighborhoods)
	stats := st.Stats()

	log = log.WithFields(logrus.Fields{
		"version":       st.Version(),
		"incidents":     stats.Incidents,
		"joined":        stats.Joined,
		"unmatched":     stats.Unmatched,
		"neighborhoods": len(dataset.Neighborhoods),
	})
	if len(stats.DuplicateStations) > 0 {
		log.WithField("duplicate_stations", stats.DuplicateStations).
			Warn("Neighborhood reference has duplicate station codes, incidents are counted once per match")
	}
	log.Info("Incident store built successfully")

	s.notify(ctx, st, len(dataset.Neighborhoods))
	return st, nil
}

func (s *datasetService) readDatabase(ctx context.Context) (*models.Dataset, error) {
	incidents, err := s.repo.ListIncidents(ctx)
	if err != nil {
		return nil, err
	}
	hoods, err := s.repo.ListNeighborhoods(ctx)
	if err != nil {
		return nil, err
	}
	return &models.Dataset{Incidents: incidents, Neighborhoods: hoods}, nil
}

// notify публикует событие о загрузке снимка; ошибка публикации не прерывает загрузку
func (s *datasetService) notify(ctx context.Context, st *store.Store, neighborhoods int) {
	if s.publisher == nil {
		return
	}
	stats := st.Stats()
	event := webhook.DatasetEvent{
		ID:                uuid.New(),
		Version:           st.Version(),
		Records:           stats.Joined,
		Neighborhoods:     neighborhoods,
		Unmatched:         stats.Unmatched,
		DuplicateStations: stats.DuplicateStations,
		LoadedAt:          st.LoadedAt(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WithError(err).WithField("version", st.Version()).Error("Failed to publish dataset event")
	}
}

// Import заменяет данные в бд одной транзакцией и сбрасывает кэш снимка
func (s *datasetService) Import(ctx context.Context, dataset *models.Dataset) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "dataset",
		"method":        "Import",
		"incidents":     len(dataset.Incidents),
		"neighborhoods": len(dataset.Neighborhoods),
	})
	log.Info("Importing dataset")

	// Обе таблицы заменяются атомарно; при ошибке кэш остаётся согласованным с бд
	result, err := s.repo.ImportDataset(ctx, dataset)
	if err != nil {
		log.WithError(err).Error("Failed to import dataset")
		return fmt.Errorf("service: could not import dataset: %w", err)
	}

	if err := s.repo.InvalidateSnapshotCache(ctx); err != nil {
		log.WithError(err).Warn("Failed to invalidate dataset snapshot")
	}

	log.WithFields(logrus.Fields{
		"incidents_copied":     result.Incidents,
		"neighborhoods_copied": result.Neighborhoods,
	}).Info("Dataset imported successfully")
	return nil
}
