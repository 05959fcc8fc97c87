package v1

import (
	"github.com/shenikar/crime_stats/internal/models"
)

// DashboardQuery DTO с параметрами фильтра панели.
// Все параметры отсутствуют - фильтр не инициализирован.
// @Description DTO с параметрами фильтра панели
type DashboardQuery struct {
	Neighborhoods []string `form:"neighborhood" validate:"dive,required,max=255"`
	Shifts        []string `form:"shift" validate:"dive,shift"`
	Categories    []string `form:"category" validate:"dive,category"`
	YearMin       *int     `form:"year_min" validate:"required_with=YearMax,omitempty,gte=1900,lte=2100"`
	YearMax       *int     `form:"year_max" validate:"required_with=YearMin,omitempty,gte=1900,lte=2100"`
}

// CategoryCountResponse DTO со счётчиком одной категории
// @Description DTO со счётчиком одной категории
type CategoryCountResponse struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// KPIResponse DTO с карточками KPI
// @Description DTO с карточками KPI
type KPIResponse struct {
	Counts []CategoryCountResponse `json:"counts"`
	Total  int                     `json:"total"`
}

// TimeSeriesRowResponse DTO с одной строкой временного ряда
// @Description DTO с одной строкой временного ряда
type TimeSeriesRowResponse struct {
	Month  string    `json:"month" example:"2019-04"`
	Values []float64 `json:"values"`
}

// TimeSeriesResponse DTO с помесячным рядом по районам
// @Description DTO с помесячным рядом по районам
type TimeSeriesResponse struct {
	Columns []string                `json:"columns"`
	Rows    []TimeSeriesRowResponse `json:"rows"`
}

// DistributionSliceResponse DTO с долей одной категории
// @Description DTO с долей одной категории
type DistributionSliceResponse struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Percent  float64 `json:"percent"`
}

// DistributionResponse DTO с распределением по категориям
// @Description DTO с распределением по категориям
type DistributionResponse struct {
	Total  int                         `json:"total"`
	Slices []DistributionSliceResponse `json:"slices"`
}

// GeoPointResponse DTO с точкой на карте
// @Description DTO с точкой на карте
type GeoPointResponse struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Category   string  `json:"category"`
	OccurredOn string  `json:"occurred_on" example:"2019-04-10"`
}

// MapResponse DTO с точками карты и охватом
// @Description DTO с точками карты и охватом
type MapResponse struct {
	Points []GeoPointResponse `json:"points"`
	Bounds models.GeoBounds   `json:"bounds"`
}

// DashboardResponse DTO со всеми представлениями панели
// @Description DTO со всеми представлениями панели
type DashboardResponse struct {
	Version      string                `json:"version"`
	KPI          KPIResponse           `json:"kpi"`
	TimeSeries   *TimeSeriesResponse   `json:"timeseries,omitempty"`
	Distribution *DistributionResponse `json:"distribution,omitempty"`
	Map          *MapResponse          `json:"map,omitempty"`
	Unchanged    bool                  `json:"unchanged"`
}

// YearRangeResponse DTO с диапазоном лет
// @Description DTO с диапазоном лет
type YearRangeResponse struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// SelectionResponse DTO с выбором фильтров по умолчанию
// @Description DTO с выбором фильтров по умолчанию
type SelectionResponse struct {
	Neighborhoods []string           `json:"neighborhoods"`
	Years         *YearRangeResponse `json:"years,omitempty"`
	Shifts        []string           `json:"shifts"`
	Categories    []string           `json:"categories"`
}

// OptionsResponse DTO с допустимыми значениями фильтров
// @Description DTO с допустимыми значениями фильтров
type OptionsResponse struct {
	Neighborhoods []string          `json:"neighborhoods"`
	Categories    []string          `json:"categories"`
	Shifts        []string          `json:"shifts"`
	Years         YearRangeResponse `json:"years"`
	Defaults      SelectionResponse `json:"defaults"`
}
