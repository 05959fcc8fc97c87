package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/shenikar/crime_stats/internal/ingest"
	"github.com/shenikar/crime_stats/internal/models"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func writeFile(t *testing.T, name, content string, latin1 bool) string {
	t.Helper()
	data := []byte(content)
	if latin1 {
		encoded, err := charmap.ISO8859_1.NewEncoder().String(content)
		require.NoError(t, err)
		data = []byte(encoded)
	}
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

const (
	testIncidents = "CATEGORIE,DATE,QUART,PDQ,LONGITUDE,LATITUDE\n" +
		"Méfait,2019-04-02,jour,38,-73.56,45.51\n" +
		"Méfait,2019-04-02,jour,38,-73.56,45.51\n" +
		"Inconnu,2019-04-02,jour,38,,\n"
	testNeighborhoods = "Poste,Quartier,Population\n" +
		"38,\"Plateau Mont-Royal, est\",\"104 000\"\n" +
		"20,Verdun,beaucoup\n"
)

func TestReadDataset_Latin1(t *testing.T) {
	incidents := writeFile(t, "incidents.csv", testIncidents, true)
	hoods := writeFile(t, "hoods.csv", testNeighborhoods, true)

	dataset, report, err := readDataset(incidents, hoods, encodingLatin1)

	require.NoError(t, err)
	assert.Equal(t, ingest.Report{Rows: 3, Accepted: 1, Malformed: 1, Duplicates: 1}, report.incidents)
	// строка с нечисловой численностью пропущена, а не прерывает импорт
	assert.Equal(t, ingest.Report{Rows: 2, Accepted: 1, Malformed: 1}, report.neighborhoods)
	require.Len(t, dataset.Incidents, 1)
	assert.Equal(t, models.CategoryMischief, dataset.Incidents[0].Category)
	require.Len(t, dataset.Neighborhoods, 1)
	assert.Equal(t, "Plateau Mont-Royal, est", dataset.Neighborhoods[0].Name)
	assert.Equal(t, 104000, dataset.Neighborhoods[0].Population)
}

func TestReadDataset_UTF8(t *testing.T) {
	incidents := writeFile(t, "incidents.csv", testIncidents, false)
	hoods := writeFile(t, "hoods.csv", testNeighborhoods, false)

	dataset, _, err := readDataset(incidents, hoods, encodingUTF8)

	require.NoError(t, err)
	require.Len(t, dataset.Incidents, 1)
	assert.Equal(t, models.CategoryMischief, dataset.Incidents[0].Category)
}

func TestReadDataset_Errors(t *testing.T) {
	hoods := writeFile(t, "hoods.csv", testNeighborhoods, false)

	_, _, err := readDataset("/does/not/exist.csv", hoods, encodingUTF8)
	assert.ErrorContains(t, err, "failed to open")

	_, _, err = readDataset("a.csv", hoods, "cp1252")
	assert.ErrorContains(t, err, "unknown encoding")

	broken := writeFile(t, "broken.csv", "DATE,PDQ\n2019-01-01,1\n", false)
	_, _, err = readDataset(broken, hoods, encodingUTF8)
	assert.ErrorContains(t, err, "missing required column")
}

func TestPrintImportReport(t *testing.T) {
	var buf bytes.Buffer
	printImportReport(&buf, importReport{
		incidents:     ingest.Report{Rows: 3, Accepted: 1, Malformed: 1, Duplicates: 1},
		neighborhoods: ingest.Report{Rows: 2, Accepted: 2},
	})

	assert.Equal(t, "Incidents: 3 rows, 1 accepted, 1 malformed, 1 duplicates\nNeighborhoods: 2 rows, 2 accepted\n", buf.String())
}

func TestReportFlags_Selection(t *testing.T) {
	defaults := models.Selection{
		Neighborhoods: []string{"Default"},
		Years:         &models.YearRange{Min: 2015, Max: 2021},
		Shifts:        models.Shifts(),
		Categories:    models.Categories(),
	}

	t.Run("no flags uses defaults", func(t *testing.T) {
		sel, err := reportFlags{}.selection(defaults)
		require.NoError(t, err)
		assert.Equal(t, defaults, sel)
	})

	t.Run("explicit filter", func(t *testing.T) {
		f := reportFlags{
			neighborhoods: []string{"Centre-ville (Ville-Marie Ouest), parc du Mont-Royal"},
			shifts:        []string{"nuit"},
			categories:    []string{string(models.CategoryRobbery)},
			yearMin:       2018,
			yearMax:       2020,
		}
		sel, err := f.selection(defaults)
		require.NoError(t, err)
		assert.Equal(t, f.neighborhoods, sel.Neighborhoods)
		assert.Equal(t, []models.Shift{models.ShiftNight}, sel.Shifts)
		assert.Equal(t, []models.Category{models.CategoryRobbery}, sel.Categories)
		assert.Equal(t, &models.YearRange{Min: 2018, Max: 2020}, sel.Years)
	})

	t.Run("neighborhood only keeps other defaults", func(t *testing.T) {
		sel, err := reportFlags{neighborhoods: []string{"Plateau"}}.selection(defaults)
		require.NoError(t, err)
		assert.Equal(t, []string{"Plateau"}, sel.Neighborhoods)
		assert.Equal(t, defaults.Years, sel.Years)
		assert.Equal(t, defaults.Shifts, sel.Shifts)
		assert.Equal(t, defaults.Categories, sel.Categories)
	})

	t.Run("shift only keeps default neighborhoods and years", func(t *testing.T) {
		sel, err := reportFlags{shifts: []string{"soir"}}.selection(defaults)
		require.NoError(t, err)
		assert.Equal(t, defaults.Neighborhoods, sel.Neighborhoods)
		assert.Equal(t, defaults.Years, sel.Years)
		assert.Equal(t, []models.Shift{models.ShiftEvening}, sel.Shifts)
		assert.Equal(t, defaults.Categories, sel.Categories)
		assert.Len(t, defaults.Shifts, 3) // выбор по умолчанию не изменён
	})

	tests := []struct {
		name  string
		flags reportFlags
		want  string
	}{
		{name: "single year bound", flags: reportFlags{yearMin: 2018}, want: "must be set together"},
		{name: "reversed years", flags: reportFlags{yearMin: 2020, yearMax: 2018}, want: "is after"},
		{name: "unknown shift", flags: reportFlags{shifts: []string{"matin"}}, want: "unknown shift"},
		{name: "unknown category", flags: reportFlags{categories: []string{"Fraude"}}, want: "unknown category"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.flags.selection(defaults)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestRenderReport(t *testing.T) {
	counts := models.CategoryCounts{}
	for _, c := range models.Categories() {
		counts[c] = 0
	}
	counts[models.CategoryMischief] = 3
	counts[models.CategoryBreakIn] = 1
	dist := []models.DistributionSlice{
		{Category: models.CategoryMischief, Count: 3},
		{Category: models.CategoryBreakIn, Count: 1},
	}
	sel := models.Selection{
		Neighborhoods: []string{"Plateau"},
		Years:         &models.YearRange{Min: 2015, Max: 2021},
		Shifts:        models.Shifts(),
		Categories:    models.Categories(),
	}

	var buf bytes.Buffer
	renderReport(&buf, sel, counts, dist)
	out := buf.String()

	assert.Contains(t, out, "Neighborhoods: Plateau")
	assert.Contains(t, out, "Years:         2015-2021")
	assert.Contains(t, out, "Shifts:        jour; soir; nuit")
	assert.Regexp(t, `Méfait\s+3\n`, out)
	assert.Regexp(t, `Total\s+4\n`, out)
	assert.Contains(t, out, " 75.0%")
	assert.Contains(t, out, " 25.0%")
}

func TestRenderReport_NoMatches(t *testing.T) {
	var buf bytes.Buffer
	renderReport(&buf, models.Selection{}, models.CategoryCounts{}, nil)

	assert.Contains(t, buf.String(), "Years:         (none)")
	assert.Contains(t, buf.String(), "no incidents match the filter")
}

func TestCommandsStructure(t *testing.T) {
	report := ReportCmd()
	for _, name := range []string{"neighborhood", "shift", "category", "year-min", "year-max"} {
		assert.NotNil(t, report.Flags().Lookup(name), name)
	}
	require.NoError(t, report.Flags().Parse([]string{
		"--neighborhood", "Centre-ville (Ville-Marie Ouest), parc du Mont-Royal",
		"--neighborhood", "Plateau",
	}))
	hoods, err := report.Flags().GetStringArray("neighborhood")
	require.NoError(t, err)
	assert.Len(t, hoods, 2) // запятые внутри названия не разбивают значение

	imp := ImportCmd()
	assert.NotNil(t, imp.Flags().Lookup("incidents"))
	assert.NotNil(t, imp.Flags().Lookup("neighborhoods"))
	assert.Equal(t, encodingLatin1, imp.Flags().Lookup("encoding").DefValue)

	assert.NotNil(t, MigrateCmd().Flags().Lookup("source"))
}
