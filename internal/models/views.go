package models

import "time"

// AverageColumn - имя синтетической колонки со средним по всем районам
const AverageColumn = "Average"

// CategoryCounts - количество инцидентов по каждой категории
type CategoryCounts map[Category]int

// TimeSeries - помесячная таблица: первая колонка Average, далее районы
type TimeSeries struct {
	Columns []string        `json:"columns"`
	Rows    []TimeSeriesRow `json:"rows"`
}

// TimeSeriesRow - одна строка временного ряда, Values выровнены по Columns
type TimeSeriesRow struct {
	Month  time.Time `json:"month"`
	Values []float64 `json:"values"`
}

// DistributionSlice - доля одной категории
type DistributionSlice struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
}

// GeoPoint - точка инцидента для карты
type GeoPoint struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Category   Category  `json:"category"`
	OccurredOn time.Time `json:"occurred_on"`
}

// GeoBounds - охват точек на карте
type GeoBounds struct {
	MinLatitude  float64 `json:"min_latitude"`
	MinLongitude float64 `json:"min_longitude"`
	MaxLatitude  float64 `json:"max_latitude"`
	MaxLongitude float64 `json:"max_longitude"`
	CenterLat    float64 `json:"center_latitude"`
	CenterLon    float64 `json:"center_longitude"`
}

// GeoView - точки карты вместе с охватом
type GeoView struct {
	Points []GeoPoint `json:"points"`
	Bounds GeoBounds  `json:"bounds"`
}

// Dashboard - все представления панели для одного запроса.
// При неинициализированном фильтре графики и карта не пересчитываются (Unchanged).
type Dashboard struct {
	Version      string              `json:"version"`
	KPI          CategoryCounts      `json:"kpi"`
	TimeSeries   *TimeSeries         `json:"timeseries,omitempty"`
	Distribution []DistributionSlice `json:"distribution,omitempty"`
	Map          *GeoView            `json:"map,omitempty"`
	Unchanged    bool                `json:"unchanged"`
}

// FilterOptions - допустимые значения фильтров и выбор по умолчанию
type FilterOptions struct {
	Neighborhoods []string   `json:"neighborhoods"`
	Categories    []Category `json:"categories"`
	Shifts        []Shift    `json:"shifts"`
	Years         YearRange  `json:"years"`
	Defaults      Selection  `json:"defaults"`
}

// Selection - выбранные значения фильтров в исходном виде
type Selection struct {
	Neighborhoods []string   `json:"neighborhoods"`
	Years         *YearRange `json:"years,omitempty"`
	Shifts        []Shift    `json:"shifts"`
	Categories    []Category `json:"categories"`
}

// Predicate строит предикат из выбранных значений
func (s Selection) Predicate() FilterPredicate {
	return NewFilterPredicate(s.Neighborhoods, s.Years, s.Shifts, s.Categories)
}
