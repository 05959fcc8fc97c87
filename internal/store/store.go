package store

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/shenikar/crime_stats/internal/models"
)

// Store - неизменяемый набор инцидентов, присоединённых к справочнику районов.
// Создаётся один раз при загрузке и только читается после этого.
type Store struct {
	version       uuid.UUID
	loadedAt      time.Time
	records       []models.JoinedRecord
	neighborhoods []models.NeighborhoodInfo
	stats         JoinStats
}

// JoinStats - диагностика соединения инцидентов со справочником
type JoinStats struct {
	Incidents         int      `json:"incidents"`
	Joined            int      `json:"joined"`
	Unmatched         int      `json:"unmatched"`
	DuplicateStations []string `json:"duplicate_stations,omitempty"`
}

// New выполняет left join инцидентов со справочником по коду участка и
// возвращает готовое хранилище. Дубликаты кода участка в справочнике
// размножают инцидент по одной копии на каждое совпадение.
func New(records []models.IncidentRecord, neighborhoods []models.NeighborhoodInfo) *Store {
	joined, stats := Join(records, neighborhoods)

	refs := make([]models.NeighborhoodInfo, len(neighborhoods))
	copy(refs, neighborhoods)

	return &Store{
		version:       uuid.New(),
		loadedAt:      time.Now().UTC(),
		records:       joined,
		neighborhoods: refs,
		stats:         stats,
	}
}

// Join соединяет инциденты со справочником (left join по station_code)
func Join(records []models.IncidentRecord, neighborhoods []models.NeighborhoodInfo) ([]models.JoinedRecord, JoinStats) {
	byStation := make(map[string][]models.NeighborhoodInfo, len(neighborhoods))
	for _, n := range neighborhoods {
		byStation[n.StationCode] = append(byStation[n.StationCode], n)
	}

	stats := JoinStats{Incidents: len(records)}
	for code, matches := range byStation {
		if len(matches) > 1 {
			stats.DuplicateStations = append(stats.DuplicateStations, code)
		}
	}
	sort.Strings(stats.DuplicateStations)

	joined := make([]models.JoinedRecord, 0, len(records))
	for _, r := range records {
		matches := byStation[r.StationCode]
		if len(matches) == 0 {
			stats.Unmatched++
			joined = append(joined, models.JoinedRecord{IncidentRecord: r})
			continue
		}
		for _, n := range matches {
			joined = append(joined, models.JoinedRecord{
				IncidentRecord: r,
				Neighborhood:   n.Name,
				Population:     n.Population,
			})
		}
	}
	stats.Joined = len(joined)
	return joined, stats
}

// Records возвращает соединённые записи. Слайс нельзя изменять.
func (s *Store) Records() []models.JoinedRecord {
	return s.records
}

// Neighborhoods возвращает уникальные названия районов в порядке справочника
func (s *Store) Neighborhoods() []string {
	seen := make(map[string]bool, len(s.neighborhoods))
	names := make([]string, 0, len(s.neighborhoods))
	for _, n := range s.neighborhoods {
		if seen[n.Name] {
			continue
		}
		seen[n.Name] = true
		names = append(names, n.Name)
	}
	return names
}

// YearBounds возвращает минимальный и максимальный год в данных
func (s *Store) YearBounds() (models.YearRange, bool) {
	if len(s.records) == 0 {
		return models.YearRange{}, false
	}
	r := models.YearRange{Min: s.records[0].Year(), Max: s.records[0].Year()}
	for _, rec := range s.records[1:] {
		y := rec.Year()
		if y < r.Min {
			r.Min = y
		}
		if y > r.Max {
			r.Max = y
		}
	}
	return r, true
}

// Version - идентификатор загруженного снимка данных
func (s *Store) Version() uuid.UUID {
	return s.version
}

// LoadedAt - время построения хранилища
func (s *Store) LoadedAt() time.Time {
	return s.loadedAt
}

// Stats возвращает диагностику соединения
func (s *Store) Stats() JoinStats {
	return s.stats
}
