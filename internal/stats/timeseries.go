package stats

import (
	"sort"
	"time"

	"github.com/shenikar/crime_stats/internal/models"
)

// monthlyPivot - счётчики по (месяц, район)
type monthlyPivot struct {
	months        []time.Time
	neighborhoods []string
	cells         map[time.Time]map[string]int
}

// buildPivot группирует записи по месяцу и району. Районы идут в порядке
// первого появления, месяцы - по возрастанию. Записи без района пропускаются.
func buildPivot(records []models.JoinedRecord) monthlyPivot {
	p := monthlyPivot{cells: make(map[time.Time]map[string]int)}
	seen := make(map[string]bool)

	for _, r := range records {
		if r.Neighborhood == "" {
			continue
		}
		if !seen[r.Neighborhood] {
			seen[r.Neighborhood] = true
			p.neighborhoods = append(p.neighborhoods, r.Neighborhood)
		}
		month := r.YearMonth()
		row, ok := p.cells[month]
		if !ok {
			row = make(map[string]int)
			p.cells[month] = row
			p.months = append(p.months, month)
		}
		row[r.Neighborhood]++
	}

	sort.Slice(p.months, func(i, j int) bool {
		return p.months[i].Before(p.months[j])
	})
	return p
}

// mean возвращает среднее по районам, у которых в этом месяце есть записи
func (p monthlyPivot) mean(month time.Time) float64 {
	row := p.cells[month]
	if len(row) == 0 {
		return 0
	}
	total := 0
	for _, n := range row {
		total += n
	}
	return float64(total) / float64(len(row))
}

// TimeSeries строит помесячную таблицу по районам из subset и добавляет
// первой колонку Average, посчитанную по comparison. comparison должен быть
// отфильтрован тем же предикатом без ограничения по районам (см. FilterPredicate.Citywide).
func TimeSeries(subset, comparison []models.JoinedRecord) models.TimeSeries {
	pivot := buildPivot(subset)
	baseline := buildPivot(comparison)

	columns := make([]string, 0, len(pivot.neighborhoods)+1)
	columns = append(columns, models.AverageColumn)
	columns = append(columns, pivot.neighborhoods...)

	rows := make([]models.TimeSeriesRow, 0, len(pivot.months))
	for _, month := range pivot.months {
		values := make([]float64, 0, len(columns))
		values = append(values, baseline.mean(month))
		for _, n := range pivot.neighborhoods {
			values = append(values, float64(pivot.cells[month][n]))
		}
		rows = append(rows, models.TimeSeriesRow{Month: month, Values: values})
	}

	return models.TimeSeries{Columns: columns, Rows: rows}
}
