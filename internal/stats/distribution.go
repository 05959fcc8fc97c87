package stats

import "github.com/shenikar/crime_stats/internal/models"

// Distribution считает количество записей по категориям, присутствующим в
// subset. Отсутствующие категории не добавляются. Порядок - первое появление.
func Distribution(subset []models.JoinedRecord) []models.DistributionSlice {
	index := make(map[models.Category]int)
	slices := make([]models.DistributionSlice, 0)
	for _, r := range subset {
		i, ok := index[r.Category]
		if !ok {
			i = len(slices)
			index[r.Category] = i
			slices = append(slices, models.DistributionSlice{Category: r.Category})
		}
		slices[i].Count++
	}
	return slices
}

// Percent возвращает долю среза от общего числа записей, в процентах
func Percent(slice models.DistributionSlice, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(slice.Count) / float64(total)
}
