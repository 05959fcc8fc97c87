package v1

import (
	"errors"
	"fmt"

	"github.com/shenikar/crime_stats/internal/models"
	"github.com/shenikar/crime_stats/internal/stats"
)

const (
	monthLayout = "2006-01"
	dateLayout  = "2006-01-02"
)

var errYearOrder = errors.New("year_min must not be greater than year_max")

// QueryToSelection преобразует провалидированный DTO запроса в выбор фильтров
func QueryToSelection(q DashboardQuery) (models.Selection, error) {
	sel := models.Selection{Neighborhoods: q.Neighborhoods}

	if q.YearMin != nil && q.YearMax != nil {
		if *q.YearMin > *q.YearMax {
			return models.Selection{}, errYearOrder
		}
		sel.Years = &models.YearRange{Min: *q.YearMin, Max: *q.YearMax}
	}

	for _, raw := range q.Shifts {
		s, ok := models.ParseShift(raw)
		if !ok {
			return models.Selection{}, fmt.Errorf("unknown shift %q", raw)
		}
		sel.Shifts = append(sel.Shifts, s)
	}
	for _, raw := range q.Categories {
		c, ok := models.ParseCategory(raw)
		if !ok {
			return models.Selection{}, fmt.Errorf("unknown category %q", raw)
		}
		sel.Categories = append(sel.Categories, c)
	}
	return sel, nil
}

// ModelToKPIResponse возвращает счётчики в каноническом порядке категорий
func ModelToKPIResponse(counts models.CategoryCounts) KPIResponse {
	resp := KPIResponse{Counts: make([]CategoryCountResponse, 0, len(counts))}
	for _, c := range models.Categories() {
		n := counts[c]
		resp.Counts = append(resp.Counts, CategoryCountResponse{Category: string(c), Count: n})
		resp.Total += n
	}
	return resp
}

func ModelToTimeSeriesResponse(ts *models.TimeSeries) *TimeSeriesResponse {
	resp := &TimeSeriesResponse{
		Columns: ts.Columns,
		Rows:    make([]TimeSeriesRowResponse, len(ts.Rows)),
	}
	for i, row := range ts.Rows {
		resp.Rows[i] = TimeSeriesRowResponse{Month: row.Month.Format(monthLayout), Values: row.Values}
	}
	return resp
}

// ModelToDistributionResponse добавляет к срезам их долю в процентах
func ModelToDistributionResponse(dist []models.DistributionSlice) *DistributionResponse {
	resp := &DistributionResponse{Slices: make([]DistributionSliceResponse, len(dist))}
	for _, s := range dist {
		resp.Total += s.Count
	}
	for i, s := range dist {
		resp.Slices[i] = DistributionSliceResponse{
			Category: string(s.Category),
			Count:    s.Count,
			Percent:  stats.Percent(s, resp.Total),
		}
	}
	return resp
}

func ModelToMapResponse(view *models.GeoView) *MapResponse {
	resp := &MapResponse{
		Points: make([]GeoPointResponse, len(view.Points)),
		Bounds: view.Bounds,
	}
	for i, p := range view.Points {
		resp.Points[i] = GeoPointResponse{
			Latitude:   p.Latitude,
			Longitude:  p.Longitude,
			Category:   string(p.Category),
			OccurredOn: p.OccurredOn.Format(dateLayout),
		}
	}
	return resp
}

// ModelToDashboardResponse преобразует все представления панели в DTO
func ModelToDashboardResponse(d *models.Dashboard) *DashboardResponse {
	resp := &DashboardResponse{
		Version:   d.Version,
		KPI:       ModelToKPIResponse(d.KPI),
		Unchanged: d.Unchanged,
	}
	if d.TimeSeries != nil {
		resp.TimeSeries = ModelToTimeSeriesResponse(d.TimeSeries)
	}
	if !d.Unchanged {
		resp.Distribution = ModelToDistributionResponse(d.Distribution)
	}
	if d.Map != nil {
		resp.Map = ModelToMapResponse(d.Map)
	}
	return resp
}

func ModelToOptionsResponse(opts *models.FilterOptions) *OptionsResponse {
	resp := &OptionsResponse{
		Neighborhoods: opts.Neighborhoods,
		Categories:    categoriesToStrings(opts.Categories),
		Shifts:        shiftsToStrings(opts.Shifts),
		Years:         YearRangeResponse{Min: opts.Years.Min, Max: opts.Years.Max},
		Defaults: SelectionResponse{
			Neighborhoods: opts.Defaults.Neighborhoods,
			Shifts:        shiftsToStrings(opts.Defaults.Shifts),
			Categories:    categoriesToStrings(opts.Defaults.Categories),
		},
	}
	if opts.Defaults.Years != nil {
		resp.Defaults.Years = &YearRangeResponse{Min: opts.Defaults.Years.Min, Max: opts.Defaults.Years.Max}
	}
	return resp
}

func categoriesToStrings(cs []models.Category) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = string(c)
	}
	return out
}

func shiftsToStrings(ss []models.Shift) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = string(s)
	}
	return out
}
