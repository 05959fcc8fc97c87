package ingest

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/shenikar/crime_stats/internal/models"
)

const incidentsCSV = `CATEGORIE,DATE,QUART,PDQ,X,Y,LONGITUDE,LATITUDE
Introduction,2019-04-02,jour,38.0,295000,5041000,-73.56,45.51
Méfait,2020-07-09,nuit,20,,,,
Méfait,2020-07-09,nuit,20,,,,
Vols qualifiés,2018-01-15 17:30:00,,5,,,-73.6,45.5
Inconnu,2018-01-15,jour,5,,,,
Introduction,not-a-date,jour,5,,,,
Introduction,2018-01-15,jour,,,,,
`

func TestParseIncidents(t *testing.T) {
	records, report, err := ParseIncidents(strings.NewReader(incidentsCSV))
	require.NoError(t, err)

	assert.Equal(t, Report{Rows: 7, Accepted: 3, Malformed: 3, Duplicates: 1}, report)
	require.Len(t, records, 3)

	first := records[0]
	assert.Equal(t, models.CategoryBreakIn, first.Category)
	assert.Equal(t, "38", first.StationCode)
	assert.Equal(t, models.ShiftDay, first.Shift)
	assert.Equal(t, time.Date(2019, 4, 2, 0, 0, 0, 0, time.UTC), first.OccurredOn)
	require.True(t, first.HasCoordinates())
	assert.Equal(t, 45.51, *first.Latitude)

	assert.False(t, records[1].HasCoordinates())

	// Пустой QUART - смена вычисляется по времени
	assert.Equal(t, models.ShiftEvening, records[2].Shift)
}

func TestParseIncidents_MissingColumn(t *testing.T) {
	_, _, err := ParseIncidents(strings.NewReader("CATEGORIE,DATE\nIntroduction,2019-01-01\n"))
	assert.Error(t, err)
}

func TestParseIncidents_Latin1(t *testing.T) {
	encoded, err := charmap.ISO8859_1.NewEncoder().String("CATEGORIE,DATE,QUART,PDQ\nMéfait,2017-02-03,soir,7\n")
	require.NoError(t, err)

	records, _, err := ParseIncidents(DecodeLatin1(strings.NewReader(encoded)))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.CategoryMischief, records[0].Category)
}

func TestParseNeighborhoods(t *testing.T) {
	data := "Poste,Quartier,Population\n38,Plateau-Mont-Royal,104 000\n20.0,Verdun,69000\n,Nowhere,1\n"

	hoods, report, err := ParseNeighborhoods(strings.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, []models.NeighborhoodInfo{
		{StationCode: "38", Name: "Plateau-Mont-Royal", Population: 104000},
		{StationCode: "20", Name: "Verdun", Population: 69000},
	}, hoods)
	assert.Equal(t, Report{Rows: 3, Accepted: 2, Malformed: 1}, report)
}

func TestParseNeighborhoods_InvalidPopulationSkipsRow(t *testing.T) {
	data := "Poste,Quartier,Population\n38,Plateau,many\n20,Verdun,69000\n"

	hoods, report, err := ParseNeighborhoods(strings.NewReader(data))

	require.NoError(t, err)
	assert.Equal(t, []models.NeighborhoodInfo{
		{StationCode: "20", Name: "Verdun", Population: 69000},
	}, hoods)
	assert.Equal(t, Report{Rows: 2, Accepted: 1, Malformed: 1}, report)
}

func TestParseNeighborhoods_MissingColumn(t *testing.T) {
	_, _, err := ParseNeighborhoods(strings.NewReader("Poste,Population\n38,1\n"))
	assert.ErrorContains(t, err, "missing required column")
}
