package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shenikar/crime_stats/internal/config"
	"github.com/shenikar/crime_stats/internal/models"
	"github.com/shenikar/crime_stats/internal/service/mocks"
	"github.com/shenikar/crime_stats/internal/store"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func fptr(v float64) *float64 { return &v }

func testStore() *store.Store {
	day := func(y int, m time.Month) time.Time { return time.Date(y, m, 10, 0, 0, 0, 0, time.UTC) }
	incidents := []models.IncidentRecord{
		{Category: models.CategoryBreakIn, OccurredOn: day(2019, 4), StationCode: "A1", Shift: models.ShiftDay, Latitude: fptr(45.51), Longitude: fptr(-73.56)},
		{Category: models.CategoryMischief, OccurredOn: day(2020, 7), StationCode: "B1", Shift: models.ShiftNight, Latitude: fptr(45.52), Longitude: fptr(-73.60)},
		{Category: models.CategoryMischief, OccurredOn: day(2019, 4), StationCode: "B1", Shift: models.ShiftDay},
	}
	hoods := []models.NeighborhoodInfo{
		{StationCode: "A1", Name: "A", Population: 1000},
		{StationCode: "B1", Name: "B", Population: 2000},
	}
	return store.New(incidents, hoods)
}

func newTestDashboardService(t *testing.T, observer QueryObserver) *dashboardService {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		DefaultYearMin:       2015,
		DefaultYearMax:       2021,
		DefaultNeighborhoods: []string{"A"},
	}
	return NewDashboardService(testStore(), logger, cfg, observer).(*dashboardService)
}

func scenarioPredicate() models.FilterPredicate {
	return models.NewFilterPredicate(
		[]string{"A"},
		&models.YearRange{Min: 2015, Max: 2021},
		models.Shifts(),
		[]models.Category{models.CategoryBreakIn, models.CategoryMischief},
	)
}

func emptyPredicate() models.FilterPredicate {
	return models.NewFilterPredicate(nil, nil, nil, nil)
}

func TestCategoryCounts_Scenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	observer := mocks.NewMockQueryObserver(ctrl)
	service := newTestDashboardService(t, observer)

	observer.EXPECT().ObserveQuery(ViewKPI, 1, gomock.Any()).Times(1)

	counts, err := service.CategoryCounts(context.Background(), scenarioPredicate())

	require.NoError(t, err)
	require.Len(t, counts, 6)
	assert.Equal(t, 1, counts[models.CategoryBreakIn])
	assert.Equal(t, 0, counts[models.CategoryMischief])
}

func TestCategoryCounts_EmptyFilterReturnsZeros(t *testing.T) {
	ctrl := gomock.NewController(t)
	observer := mocks.NewMockQueryObserver(ctrl)
	service := newTestDashboardService(t, observer)

	// Представление не пересчитывается
	observer.EXPECT().ObserveQuery(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	counts, err := service.CategoryCounts(context.Background(), emptyPredicate())

	require.NoError(t, err)
	require.Len(t, counts, 6)
	for _, c := range models.Categories() {
		assert.Equal(t, 0, counts[c])
	}
}

func TestChartViews_EmptyFilterNoChange(t *testing.T) {
	service := newTestDashboardService(t, nil)
	ctx := context.Background()

	ts, err := service.TimeSeries(ctx, emptyPredicate())
	assert.ErrorIs(t, err, ErrNoChange)
	assert.Nil(t, ts)

	dist, err := service.Distribution(ctx, emptyPredicate())
	assert.ErrorIs(t, err, ErrNoChange)
	assert.Nil(t, dist)

	geo, err := service.GeoPoints(ctx, emptyPredicate())
	assert.ErrorIs(t, err, ErrNoChange)
	assert.Nil(t, geo)
}

func TestTimeSeries_AverageIsCitywide(t *testing.T) {
	service := newTestDashboardService(t, nil)

	ts, err := service.TimeSeries(context.Background(), scenarioPredicate())

	require.NoError(t, err)
	assert.Equal(t, []string{models.AverageColumn, "A"}, ts.Columns)
	require.Len(t, ts.Rows, 1)
	// Апрель 2019: A=1, B=1 -> среднее 1
	assert.Equal(t, []float64{1, 1}, ts.Rows[0].Values)
}

func TestGeoPoints_Scenario(t *testing.T) {
	service := newTestDashboardService(t, nil)

	geo, err := service.GeoPoints(context.Background(), scenarioPredicate())

	require.NoError(t, err)
	require.Len(t, geo.Points, 1)
	assert.Equal(t, 45.51, geo.Points[0].Latitude)
	assert.InDelta(t, 45.51, geo.Bounds.CenterLat, 1e-9)
}

func TestDistribution(t *testing.T) {
	service := newTestDashboardService(t, nil)
	p := models.NewFilterPredicate([]string{"A", "B"}, &models.YearRange{Min: 2015, Max: 2021}, models.Shifts(), models.Categories())

	dist, err := service.Distribution(context.Background(), p)

	require.NoError(t, err)
	assert.Equal(t, []models.DistributionSlice{
		{Category: models.CategoryBreakIn, Count: 1},
		{Category: models.CategoryMischief, Count: 2},
	}, dist)
}

func TestDashboard_AllViews(t *testing.T) {
	service := newTestDashboardService(t, nil)

	result, err := service.Dashboard(context.Background(), scenarioPredicate())

	require.NoError(t, err)
	assert.False(t, result.Unchanged)
	assert.Equal(t, service.store.Version().String(), result.Version)
	assert.Equal(t, 1, result.KPI[models.CategoryBreakIn])
	assert.NotNil(t, result.TimeSeries)
	assert.Len(t, result.Distribution, 1)
	assert.Len(t, result.Map.Points, 1)
}

func TestDashboard_EmptyFilter(t *testing.T) {
	service := newTestDashboardService(t, nil)

	result, err := service.Dashboard(context.Background(), emptyPredicate())

	require.NoError(t, err)
	assert.True(t, result.Unchanged)
	assert.Len(t, result.KPI, 6)
	assert.Nil(t, result.TimeSeries)
	assert.Nil(t, result.Distribution)
	assert.Nil(t, result.Map)
}

func TestDashboard_StoreNotLoaded(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	service := NewDashboardService(nil, logger, &config.Config{}, nil)

	_, err := service.Dashboard(context.Background(), scenarioPredicate())
	assert.ErrorIs(t, err, ErrStoreNotLoaded)

	_, err = service.Options(context.Background())
	assert.ErrorIs(t, err, ErrStoreNotLoaded)
}

func TestDashboard_CanceledContext(t *testing.T) {
	service := newTestDashboardService(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.CategoryCounts(ctx, scenarioPredicate())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOptions(t *testing.T) {
	service := newTestDashboardService(t, nil)

	opts, err := service.Options(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, opts.Neighborhoods)
	assert.Equal(t, models.YearRange{Min: 2019, Max: 2020}, opts.Years)
	assert.Equal(t, models.Categories(), opts.Categories)
	assert.Equal(t, []string{"A"}, opts.Defaults.Neighborhoods)
	require.NotNil(t, opts.Defaults.Years)
	assert.Equal(t, models.YearRange{Min: 2015, Max: 2021}, *opts.Defaults.Years)
	assert.False(t, opts.Defaults.Predicate().IsEmpty())
}
