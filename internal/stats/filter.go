package stats

import "github.com/shenikar/crime_stats/internal/models"

// Filter возвращает записи, удовлетворяющие предикату, в исходном порядке.
// Функция чистая: входной слайс не изменяется.
func Filter(records []models.JoinedRecord, p models.FilterPredicate) []models.JoinedRecord {
	out := make([]models.JoinedRecord, 0)
	for _, r := range records {
		if p.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}
