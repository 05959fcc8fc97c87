package service

import (
	"context"
	"errors"
	"time"

	"github.com/shenikar/crime_stats/internal/config"
	"github.com/shenikar/crime_stats/internal/models"
	"github.com/shenikar/crime_stats/internal/stats"
	"github.com/shenikar/crime_stats/internal/store"
	"github.com/sirupsen/logrus"
)

var (
	// ErrNoChange - фильтр не инициализирован, график или карта остаются без изменений
	ErrNoChange = errors.New("filter is not initialized, view is left unchanged")
	// ErrStoreNotLoaded - запрос пришёл до построения хранилища
	ErrStoreNotLoaded = errors.New("incident store is not loaded")
)

// Имена представлений для логов и метрик
const (
	ViewKPI          = "kpi"
	ViewTimeSeries   = "timeseries"
	ViewDistribution = "distribution"
	ViewMap          = "map"
)

// QueryObserver получает длительность расчёта каждого представления
type QueryObserver interface {
	ObserveQuery(view string, matched int, d time.Duration)
}

// DashboardService определяет контракт расчёта представлений панели
type DashboardService interface {
	CategoryCounts(ctx context.Context, p models.FilterPredicate) (models.CategoryCounts, error)
	TimeSeries(ctx context.Context, p models.FilterPredicate) (*models.TimeSeries, error)
	Distribution(ctx context.Context, p models.FilterPredicate) ([]models.DistributionSlice, error)
	GeoPoints(ctx context.Context, p models.FilterPredicate) (*models.GeoView, error)
	Dashboard(ctx context.Context, p models.FilterPredicate) (*models.Dashboard, error)
	Options(ctx context.Context) (*models.FilterOptions, error)
}

type dashboardService struct {
	store    *store.Store
	logger   *logrus.Logger
	cfg      *config.Config
	observer QueryObserver
}

// NewDashboardService создаёт сервис над загруженным хранилищем. observer может быть nil.
func NewDashboardService(st *store.Store, logger *logrus.Logger, cfg *config.Config, observer QueryObserver) DashboardService {
	return &dashboardService{
		store:    st,
		logger:   logger,
		cfg:      cfg,
		observer: observer,
	}
}

func (s *dashboardService) ready(ctx context.Context) error {
	if s.store == nil {
		return ErrStoreNotLoaded
	}
	return ctx.Err()
}

func (s *dashboardService) observe(view string, matched int, start time.Time) {
	elapsed := time.Since(start)
	if s.observer != nil {
		s.observer.ObserveQuery(view, matched, elapsed)
	}
	s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"view":    view,
		"matched": matched,
		"elapsed": elapsed,
	}).Debug("View computed")
}

// CategoryCounts возвращает счётчики по всем шести категориям.
// При неинициализированном фильтре все счётчики равны нулю.
func (s *dashboardService) CategoryCounts(ctx context.Context, p models.FilterPredicate) (models.CategoryCounts, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	if p.IsEmpty() {
		return stats.CategoryBaseline(), nil
	}

	start := time.Now()
	subset := stats.Filter(s.store.Records(), p)
	counts := stats.CountByCategory(subset)
	s.observe(ViewKPI, len(subset), start)
	return counts, nil
}

// TimeSeries возвращает помесячный ряд по районам и среднее по городу
func (s *dashboardService) TimeSeries(ctx context.Context, p models.FilterPredicate) (*models.TimeSeries, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	if p.IsEmpty() {
		return nil, ErrNoChange
	}

	start := time.Now()
	records := s.store.Records()
	subset := stats.Filter(records, p)
	comparison := stats.Filter(records, p.Citywide())
	ts := stats.TimeSeries(subset, comparison)
	s.observe(ViewTimeSeries, len(subset), start)
	return &ts, nil
}

// Distribution возвращает распределение по категориям без нулевых долей
func (s *dashboardService) Distribution(ctx context.Context, p models.FilterPredicate) ([]models.DistributionSlice, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	if p.IsEmpty() {
		return nil, ErrNoChange
	}

	start := time.Now()
	subset := stats.Filter(s.store.Records(), p)
	dist := stats.Distribution(subset)
	s.observe(ViewDistribution, len(subset), start)
	return dist, nil
}

// GeoPoints возвращает точки для карты и их охват
func (s *dashboardService) GeoPoints(ctx context.Context, p models.FilterPredicate) (*models.GeoView, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	if p.IsEmpty() {
		return nil, ErrNoChange
	}

	start := time.Now()
	subset := stats.Filter(s.store.Records(), p)
	points := stats.GeoPoints(subset)
	s.observe(ViewMap, len(subset), start)
	return &models.GeoView{Points: points, Bounds: stats.Bounds(points)}, nil
}

// Dashboard рассчитывает все представления для одного запроса.
// Каждое представление считается независимо, как отдельный запрос панели.
func (s *dashboardService) Dashboard(ctx context.Context, p models.FilterPredicate) (*models.Dashboard, error) {
	kpi, err := s.CategoryCounts(ctx, p)
	if err != nil {
		return nil, err
	}
	result := &models.Dashboard{
		Version: s.store.Version().String(),
		KPI:     kpi,
	}
	if p.IsEmpty() {
		result.Unchanged = true
		return result, nil
	}

	if result.TimeSeries, err = s.TimeSeries(ctx, p); err != nil {
		return nil, err
	}
	if result.Distribution, err = s.Distribution(ctx, p); err != nil {
		return nil, err
	}
	if result.Map, err = s.GeoPoints(ctx, p); err != nil {
		return nil, err
	}
	return result, nil
}

// Options возвращает доступные значения фильтров и выбор по умолчанию
func (s *dashboardService) Options(ctx context.Context) (*models.FilterOptions, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	defaults := models.YearRange{Min: s.cfg.DefaultYearMin, Max: s.cfg.DefaultYearMax}
	years := defaults
	if bounds, ok := s.store.YearBounds(); ok {
		years = bounds
	}

	return &models.FilterOptions{
		Neighborhoods: s.store.Neighborhoods(),
		Categories:    models.Categories(),
		Shifts:        models.Shifts(),
		Years:         years,
		Defaults: models.Selection{
			Neighborhoods: s.cfg.DefaultNeighborhoods,
			Years:         &defaults,
			Shifts:        models.Shifts(),
			Categories:    models.Categories(),
		},
	}, nil
}
