package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/encoding/charmap"

	"github.com/shenikar/crime_stats/internal/models"
)

// Колонки открытого набора данных города
const (
	colCategory  = "CATEGORIE"
	colDate      = "DATE"
	colShift     = "QUART"
	colStation   = "PDQ"
	colLatitude  = "LATITUDE"
	colLongitude = "LONGITUDE"

	colRefStation    = "Poste"
	colRefName       = "Quartier"
	colRefPopulation = "Population"
)

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

// Report - итог разбора CSV файла
type Report struct {
	Rows       int `json:"rows"`
	Accepted   int `json:"accepted"`
	Malformed  int `json:"malformed"`
	Duplicates int `json:"duplicates"`
}

// DecodeLatin1 оборачивает reader декодером ISO-8859-1
func DecodeLatin1(r io.Reader) io.Reader {
	return charmap.ISO8859_1.NewDecoder().Reader(r)
}

// header строит индекс колонок и проверяет наличие обязательных
func header(reader *csv.Reader, required ...string) (map[string]int, error) {
	names, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	idx := make(map[string]int, len(names))
	for i, n := range names {
		idx[strings.TrimSpace(strings.TrimPrefix(n, "\ufeff"))] = i
	}
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("missing required column %q", col)
		}
	}
	return idx, nil
}

func field(row []string, idx map[string]int, col string) string {
	i, ok := idx[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// ParseIncidents разбирает CSV с инцидентами. Строки с нераспознанной датой,
// неизвестной категорией или без кода участка отбрасываются, точные дубликаты
// строк пропускаются.
func ParseIncidents(r io.Reader) ([]models.IncidentRecord, Report, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var report Report
	idx, err := header(reader, colCategory, colDate, colStation)
	if err != nil {
		return nil, report, err
	}

	records := make([]models.IncidentRecord, 0)
	seen := make(map[string]bool)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, report, fmt.Errorf("failed to read CSV row %d: %w", report.Rows+2, err)
		}
		report.Rows++

		rec, ok := parseIncident(row, idx)
		if !ok {
			report.Malformed++
			continue
		}

		key := strings.Join(row, "\x1f")
		if seen[key] {
			report.Duplicates++
			continue
		}
		seen[key] = true

		records = append(records, rec)
	}
	report.Accepted = len(records)
	return records, report, nil
}

func parseIncident(row []string, idx map[string]int) (models.IncidentRecord, bool) {
	category, ok := models.ParseCategory(field(row, idx, colCategory))
	if !ok {
		return models.IncidentRecord{}, false
	}
	station := field(row, idx, colStation)
	if station == "" {
		return models.IncidentRecord{}, false
	}
	occurred, ok := parseDate(field(row, idx, colDate))
	if !ok {
		return models.IncidentRecord{}, false
	}

	shift, ok := models.ParseShift(field(row, idx, colShift))
	if !ok {
		shift = models.ShiftAt(occurred)
	}

	return models.IncidentRecord{
		Category:    category,
		OccurredOn:  occurred,
		StationCode: normalizeStation(station),
		Shift:       shift,
		Latitude:    parseCoordinate(field(row, idx, colLatitude)),
		Longitude:   parseCoordinate(field(row, idx, colLongitude)),
	}, true
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseCoordinate(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// normalizeStation приводит "38.0" к "38": в выгрузке PDQ иногда записан как число с плавающей точкой
func normalizeStation(s string) string {
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return s
}

// ParseNeighborhoods разбирает справочник участков и районов. Строки без кода
// участка или названия и строки с нечисловой численностью отбрасываются и
// учитываются в отчёте как Malformed.
func ParseNeighborhoods(r io.Reader) ([]models.NeighborhoodInfo, Report, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var report Report
	idx, err := header(reader, colRefStation, colRefName)
	if err != nil {
		return nil, report, err
	}

	hoods := make([]models.NeighborhoodInfo, 0)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, report, fmt.Errorf("failed to read CSV row %d: %w", report.Rows+2, err)
		}
		report.Rows++

		hood, ok := parseNeighborhood(row, idx)
		if !ok {
			report.Malformed++
			continue
		}
		hoods = append(hoods, hood)
	}
	report.Accepted = len(hoods)
	return hoods, report, nil
}

func parseNeighborhood(row []string, idx map[string]int) (models.NeighborhoodInfo, bool) {
	station := field(row, idx, colRefStation)
	name := field(row, idx, colRefName)
	if station == "" || name == "" {
		return models.NeighborhoodInfo{}, false
	}

	population := 0
	if raw := strings.ReplaceAll(field(row, idx, colRefPopulation), " ", ""); raw != "" {
		var err error
		if population, err = strconv.Atoi(raw); err != nil {
			return models.NeighborhoodInfo{}, false
		}
	}

	return models.NeighborhoodInfo{
		StationCode: normalizeStation(station),
		Name:        name,
		Population:  population,
	}, true
}
