package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Представления панели
	dashboard := api.Group("/dashboard")
	{
		dashboard.GET("", h.getDashboard)
		dashboard.GET("/kpi", h.getKPI)
		dashboard.GET("/timeseries", h.getTimeSeries)
		dashboard.GET("/distribution", h.getDistribution)
		dashboard.GET("/map", h.getMap)
	}

	// Значения фильтров
	api.GET("/options", h.getOptions)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
