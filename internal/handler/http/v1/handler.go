package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/crime_stats/internal/models"
	"github.com/shenikar/crime_stats/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	dashboardService service.DashboardService
	logger           *logrus.Logger
	validate         *validator.Validate
}

func NewHandler(dashboardService service.DashboardService, logger *logrus.Logger) *Handler {
	return &Handler{
		dashboardService: dashboardService,
		logger:           logger,
		validate:         newValidator(),
	}
}

// newValidator регистрирует проверки закрытых наборов смен и категорий
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("shift", func(fl validator.FieldLevel) bool {
		_, ok := models.ParseShift(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		_, ok := models.ParseCategory(fl.Field().String())
		return ok
	})
	return v
}

// bindPredicate разбирает и валидирует параметры фильтра.
// При ошибке ответ 400 уже отправлен.
func (h *Handler) bindPredicate(c *gin.Context, log *logrus.Entry) (models.FilterPredicate, bool) {
	var input DashboardQuery
	if err := c.ShouldBindQuery(&input); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return models.FilterPredicate{}, false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return models.FilterPredicate{}, false
	}

	sel, err := QueryToSelection(input)
	if err != nil {
		log.WithError(err).Warn("Invalid filter selection")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return models.FilterPredicate{}, false
	}
	return sel.Predicate(), true
}

// respondError переводит ошибки сервиса в HTTP-статусы
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrNoChange):
		c.Status(http.StatusNoContent)
	case errors.Is(err, service.ErrStoreNotLoaded):
		log.WithError(err).Warn("Store is not loaded yet")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "dataset is not loaded"})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		log.WithError(err).Warn("Request canceled")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "request canceled"})
	default:
		log.WithError(err).Error("Failed to compute view in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Get KPI counts
// @Description Count incidents per category for the filter. All six categories are always present, zero when the filter is not initialized.
// @Tags Dashboard
// @Produce json
// @Param neighborhood query []string false "Neighborhood names" collectionFormat(multi)
// @Param shift query []string false "Shifts (jour, soir, nuit)" collectionFormat(multi)
// @Param category query []string false "Categories" collectionFormat(multi)
// @Param year_min query int false "First year (with year_max)"
// @Param year_max query int false "Last year (with year_min)"
// @Success 200 {object} KPIResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 503 {object} map[string]string "Dataset is not loaded"
// @Router /dashboard/kpi [get]
func (h *Handler) getKPI(c *gin.Context) {
	log := h.logger.WithField("method", "getKPI")
	p, ok := h.bindPredicate(c, log)
	if !ok {
		return
	}

	counts, err := h.dashboardService.CategoryCounts(c.Request.Context(), p)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToKPIResponse(counts))
}

// @Summary Get monthly time series
// @Description Monthly incident counts per selected neighborhood plus the citywide Average column.
// @Tags Dashboard
// @Produce json
// @Param neighborhood query []string false "Neighborhood names" collectionFormat(multi)
// @Param shift query []string false "Shifts (jour, soir, nuit)" collectionFormat(multi)
// @Param category query []string false "Categories" collectionFormat(multi)
// @Param year_min query int false "First year (with year_max)"
// @Param year_max query int false "Last year (with year_min)"
// @Success 200 {object} TimeSeriesResponse
// @Success 204 "Filter is not initialized, chart is left unchanged"
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 503 {object} map[string]string "Dataset is not loaded"
// @Router /dashboard/timeseries [get]
func (h *Handler) getTimeSeries(c *gin.Context) {
	log := h.logger.WithField("method", "getTimeSeries")
	p, ok := h.bindPredicate(c, log)
	if !ok {
		return
	}

	ts, err := h.dashboardService.TimeSeries(c.Request.Context(), p)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToTimeSeriesResponse(ts))
}

// @Summary Get category distribution
// @Description Incident count and share per category present in the filtered subset.
// @Tags Dashboard
// @Produce json
// @Param neighborhood query []string false "Neighborhood names" collectionFormat(multi)
// @Param shift query []string false "Shifts (jour, soir, nuit)" collectionFormat(multi)
// @Param category query []string false "Categories" collectionFormat(multi)
// @Param year_min query int false "First year (with year_max)"
// @Param year_max query int false "Last year (with year_min)"
// @Success 200 {object} DistributionResponse
// @Success 204 "Filter is not initialized, chart is left unchanged"
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 503 {object} map[string]string "Dataset is not loaded"
// @Router /dashboard/distribution [get]
func (h *Handler) getDistribution(c *gin.Context) {
	log := h.logger.WithField("method", "getDistribution")
	p, ok := h.bindPredicate(c, log)
	if !ok {
		return
	}

	dist, err := h.dashboardService.Distribution(c.Request.Context(), p)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToDistributionResponse(dist))
}

// @Summary Get map points
// @Description Coordinates of filtered incidents with the map viewport.
// @Tags Dashboard
// @Produce json
// @Param neighborhood query []string false "Neighborhood names" collectionFormat(multi)
// @Param shift query []string false "Shifts (jour, soir, nuit)" collectionFormat(multi)
// @Param category query []string false "Categories" collectionFormat(multi)
// @Param year_min query int false "First year (with year_max)"
// @Param year_max query int false "Last year (with year_min)"
// @Success 200 {object} MapResponse
// @Success 204 "Filter is not initialized, map is left unchanged"
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 503 {object} map[string]string "Dataset is not loaded"
// @Router /dashboard/map [get]
func (h *Handler) getMap(c *gin.Context) {
	log := h.logger.WithField("method", "getMap")
	p, ok := h.bindPredicate(c, log)
	if !ok {
		return
	}

	view, err := h.dashboardService.GeoPoints(c.Request.Context(), p)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToMapResponse(view))
}

// @Summary Get the whole dashboard
// @Description All views for one filter. Charts and map are omitted with unchanged=true when the filter is not initialized.
// @Tags Dashboard
// @Produce json
// @Param neighborhood query []string false "Neighborhood names" collectionFormat(multi)
// @Param shift query []string false "Shifts (jour, soir, nuit)" collectionFormat(multi)
// @Param category query []string false "Categories" collectionFormat(multi)
// @Param year_min query int false "First year (with year_max)"
// @Param year_max query int false "Last year (with year_min)"
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 503 {object} map[string]string "Dataset is not loaded"
// @Router /dashboard [get]
func (h *Handler) getDashboard(c *gin.Context) {
	log := h.logger.WithField("method", "getDashboard")
	p, ok := h.bindPredicate(c, log)
	if !ok {
		return
	}

	dashboard, err := h.dashboardService.Dashboard(c.Request.Context(), p)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToDashboardResponse(dashboard))
}

// @Summary Get filter options
// @Description Available neighborhoods, categories, shifts and years, with the default selection.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} OptionsResponse
// @Failure 503 {object} map[string]string "Dataset is not loaded"
// @Router /options [get]
func (h *Handler) getOptions(c *gin.Context) {
	log := h.logger.WithField("method", "getOptions")

	opts, err := h.dashboardService.Options(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToOptionsResponse(opts))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
