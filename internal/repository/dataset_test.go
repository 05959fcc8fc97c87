package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shenikar/crime_stats/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTx записывает операции транзакции; остальные методы pgx.Tx не используются
type fakeTx struct {
	pgx.Tx
	failCopyInto string
	statements   []string
	copied       map[string]int64
	committed    bool
	rolledBack   bool
}

func (tx *fakeTx) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	tx.statements = append(tx.statements, sql)
	return pgconn.NewCommandTag("TRUNCATE TABLE"), nil
}

func (tx *fakeTx) CopyFrom(_ context.Context, table pgx.Identifier, _ []string, src pgx.CopyFromSource) (int64, error) {
	if table.Sanitize() == (pgx.Identifier{tx.failCopyInto}).Sanitize() {
		return 0, errors.New("copy failed")
	}
	var n int64
	for src.Next() {
		if _, err := src.Values(); err != nil {
			return n, err
		}
		n++
	}
	tx.copied[table[0]] = n
	return n, src.Err()
}

func (tx *fakeTx) Commit(context.Context) error {
	tx.committed = true
	return nil
}

func (tx *fakeTx) Rollback(context.Context) error {
	if !tx.committed {
		tx.rolledBack = true
	}
	return nil
}

type fakePool struct {
	tx    *fakeTx
	begun int
}

func (p *fakePool) Begin(context.Context) (pgx.Tx, error) {
	p.begun++
	return p.tx, nil
}

func (p *fakePool) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not used")
}

func newTestRepository(failCopyInto string) (*DatasetRepository, *fakePool) {
	db := &fakePool{tx: &fakeTx{failCopyInto: failCopyInto, copied: map[string]int64{}}}
	return &DatasetRepository{db: db, snapshotTTL: time.Hour}, db
}

func testDataset() *models.Dataset {
	lat, lon := 45.5, -73.6
	return &models.Dataset{
		Incidents: []models.IncidentRecord{
			{Category: models.CategoryBreakIn, OccurredOn: time.Date(2019, 4, 2, 0, 0, 0, 0, time.UTC), StationCode: "38", Shift: models.ShiftDay, Latitude: &lat, Longitude: &lon},
			{Category: models.CategoryMischief, OccurredOn: time.Date(2020, 7, 9, 0, 0, 0, 0, time.UTC), StationCode: "20", Shift: models.ShiftNight},
		},
		Neighborhoods: []models.NeighborhoodInfo{
			{StationCode: "38", Name: "Plateau", Population: 104000},
		},
	}
}

func TestImportDataset_SingleTransaction(t *testing.T) {
	repo, db := newTestRepository("")

	result, err := repo.ImportDataset(context.Background(), testDataset())

	require.NoError(t, err)
	assert.Equal(t, models.ImportResult{Incidents: 2, Neighborhoods: 1}, result)
	assert.Equal(t, 1, db.begun)
	assert.Equal(t, []string{
		"TRUNCATE TABLE neighborhoods RESTART IDENTITY;",
		"TRUNCATE TABLE incidents RESTART IDENTITY;",
	}, db.tx.statements)
	assert.True(t, db.tx.committed)
	assert.False(t, db.tx.rolledBack)
}

func TestImportDataset_IncidentsFailureRollsBackBothTables(t *testing.T) {
	repo, db := newTestRepository("incidents")

	result, err := repo.ImportDataset(context.Background(), testDataset())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to copy rows into incidents")
	assert.Equal(t, models.ImportResult{}, result)
	// Справочник уже скопирован в транзакции, но не зафиксирован
	assert.Equal(t, int64(1), db.tx.copied["neighborhoods"])
	assert.False(t, db.tx.committed)
	assert.True(t, db.tx.rolledBack)
}

func TestImportDataset_NeighborhoodsFailureSkipsIncidents(t *testing.T) {
	repo, db := newTestRepository("neighborhoods")

	_, err := repo.ImportDataset(context.Background(), testDataset())

	require.Error(t, err)
	assert.Len(t, db.tx.statements, 1)
	assert.NotContains(t, db.tx.copied, "incidents")
	assert.False(t, db.tx.committed)
	assert.True(t, db.tx.rolledBack)
}
