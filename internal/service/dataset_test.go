package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/crime_stats/internal/models"
	"github.com/shenikar/crime_stats/internal/service/mocks"
	"github.com/shenikar/crime_stats/internal/webhook"
	webhook_mocks "github.com/shenikar/crime_stats/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestDatasetService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestDatasetService(t *testing.T) (*datasetService, *mocks.MockDatasetRepository, *webhook_mocks.MockWebhookPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockDatasetRepository(ctrl)
	webhookMock := webhook_mocks.NewMockWebhookPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewDatasetService(repoMock, logger, webhookMock)
	return service.(*datasetService), repoMock, webhookMock
}

func testDataset() *models.Dataset {
	return &models.Dataset{
		Incidents: []models.IncidentRecord{
			{Category: models.CategoryBreakIn, OccurredOn: time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC), StationCode: "10", Shift: models.ShiftDay},
			{Category: models.CategoryMischief, OccurredOn: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), StationCode: "99", Shift: models.ShiftNight},
		},
		Neighborhoods: []models.NeighborhoodInfo{
			{StationCode: "10", Name: "Plateau"},
			{StationCode: "10", Name: "Mile End"},
		},
	}
}

func TestLoad_FromCache(t *testing.T) {
	// Подготовка
	service, repoMock, webhookMock := newTestDatasetService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().GetSnapshotFromCache(ctx).Return(testDataset(), nil).Times(1)
	repoMock.EXPECT().ListIncidents(gomock.Any()).Times(0)

	var published webhook.DatasetEvent
	webhookMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, e webhook.DatasetEvent) error {
			published = e
			return nil
		}).
		Times(1)

	// Действие
	st, err := service.Load(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Len(t, st.Records(), 3) // один инцидент размножен дублем участка
	assert.Equal(t, st.Version(), published.Version)
	assert.NotEqual(t, uuid.Nil, published.ID)
	assert.Equal(t, 3, published.Records)
	assert.Equal(t, 1, published.Unmatched)
	assert.Equal(t, []string{"10"}, published.DuplicateStations)
}

func TestLoad_FromDatabase(t *testing.T) {
	// Подготовка
	service, repoMock, webhookMock := newTestDatasetService(t)
	ctx := context.Background()
	dataset := testDataset()

	// Ожидания
	// 1. Промах кеша
	repoMock.EXPECT().GetSnapshotFromCache(ctx).Return(nil, nil).Times(1)
	// 2. Чтение из БД
	repoMock.EXPECT().ListIncidents(ctx).Return(dataset.Incidents, nil).Times(1)
	repoMock.EXPECT().ListNeighborhoods(ctx).Return(dataset.Neighborhoods, nil).Times(1)
	// 3. Запись в кеш
	repoMock.EXPECT().SetSnapshotCache(ctx, dataset).Return(nil).Times(1)
	webhookMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	st, err := service.Load(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, []string{"Plateau", "Mile End"}, st.Neighborhoods())
}

func TestLoad_CacheErrorFallsBackToDatabase(t *testing.T) {
	service, repoMock, webhookMock := newTestDatasetService(t)
	ctx := context.Background()
	dataset := testDataset()

	repoMock.EXPECT().GetSnapshotFromCache(ctx).Return(nil, errors.New("redis down")).Times(1)
	repoMock.EXPECT().ListIncidents(ctx).Return(dataset.Incidents, nil).Times(1)
	repoMock.EXPECT().ListNeighborhoods(ctx).Return(dataset.Neighborhoods, nil).Times(1)
	repoMock.EXPECT().SetSnapshotCache(ctx, gomock.Any()).Return(errors.New("redis down")).Times(1)
	webhookMock.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("redis down")).Times(1)

	st, err := service.Load(ctx)

	require.NoError(t, err)
	assert.Len(t, st.Records(), 3)
}

func TestLoad_DatabaseError(t *testing.T) {
	service, repoMock, webhookMock := newTestDatasetService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetSnapshotFromCache(ctx).Return(nil, nil).Times(1)
	repoMock.EXPECT().ListIncidents(ctx).Return(nil, errors.New("db error")).Times(1)
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	st, err := service.Load(ctx)

	require.Error(t, err)
	assert.Nil(t, st)
	assert.Contains(t, err.Error(), "service: could not load dataset")
}

func TestLoad_WithoutPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockDatasetRepository(ctrl)
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	service := NewDatasetService(repoMock, logger, nil)

	repoMock.EXPECT().GetSnapshotFromCache(gomock.Any()).Return(testDataset(), nil).Times(1)

	st, err := service.Load(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, st)
}

func TestImport_Success(t *testing.T) {
	service, repoMock, _ := newTestDatasetService(t)
	ctx := context.Background()
	dataset := testDataset()

	gomock.InOrder(
		repoMock.EXPECT().ImportDataset(ctx, dataset).Return(models.ImportResult{Incidents: 2, Neighborhoods: 2}, nil),
		repoMock.EXPECT().InvalidateSnapshotCache(ctx).Return(nil),
	)

	err := service.Import(ctx, dataset)

	assert.NoError(t, err)
}

func TestImport_FailureKeepsCache(t *testing.T) {
	service, repoMock, _ := newTestDatasetService(t)
	ctx := context.Background()
	dataset := testDataset()

	// Транзакция откатилась целиком: бд и кэш по-прежнему согласованы
	repoMock.EXPECT().ImportDataset(ctx, dataset).Return(models.ImportResult{}, errors.New("copy failed")).Times(1)
	repoMock.EXPECT().InvalidateSnapshotCache(gomock.Any()).Times(0)

	err := service.Import(ctx, dataset)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "service: could not import dataset")
}

func TestImport_InvalidateErrorIsNotFatal(t *testing.T) {
	service, repoMock, _ := newTestDatasetService(t)
	ctx := context.Background()
	dataset := testDataset()

	repoMock.EXPECT().ImportDataset(ctx, dataset).Return(models.ImportResult{Incidents: 2, Neighborhoods: 2}, nil).Times(1)
	repoMock.EXPECT().InvalidateSnapshotCache(ctx).Return(errors.New("redis down")).Times(1)

	assert.NoError(t, service.Import(ctx, dataset))
}
