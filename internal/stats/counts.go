package stats

import "github.com/shenikar/crime_stats/internal/models"

// CategoryBaseline возвращает таблицу всех шести категорий с нулевыми значениями
func CategoryBaseline() models.CategoryCounts {
	baseline := make(models.CategoryCounts, len(models.Categories()))
	for _, c := range models.Categories() {
		baseline[c] = 0
	}
	return baseline
}

// CountByCategory считает записи по категориям и накладывает результат на
// CategoryBaseline, поэтому в ответе всегда присутствуют все шесть категорий.
func CountByCategory(subset []models.JoinedRecord) models.CategoryCounts {
	grouped := make(map[models.Category]int)
	for _, r := range subset {
		grouped[r.Category]++
	}

	counts := CategoryBaseline()
	for c := range counts {
		counts[c] += grouped[c]
	}
	return counts
}
